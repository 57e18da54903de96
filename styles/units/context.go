// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "cogentcore.org/boxcore/math32"

// Context specifies everything about the current context necessary for converting
// the number into specific display-dependent pixels
type Context struct {

	// DPI is the dots per inch of the display
	DPI float32

	// FontEm is the size of the font of the element in raw dots (not points)
	FontEm float32

	// FontRem is the size of the font of the root element in raw dots (not points)
	FontRem float32

	// Vpw is the viewport width in dots
	Vpw float32

	// Vph is the viewport height in dots
	Vph float32

	// Paw is the width of the parent content area in dots
	Paw float32

	// Pah is the height of the parent content area in dots
	Pah float32
}

// Defaults sets default values if none are set
func (uc *Context) Defaults() {
	uc.DPI = PxPerInch
	uc.FontEm = 16
	uc.FontRem = 16
	uc.SetSizes(800, 600, 800, 600)
}

// SetSizes sets the viewport and parent content sizes
func (uc *Context) SetSizes(vw, vh, pw, ph float32) {
	uc.Vpw = vw
	uc.Vph = vh
	uc.Paw = pw
	uc.Pah = ph
}

// SetFont sets the font-based context values, in dots
func (uc *Context) SetFont(em float32) {
	uc.FontEm = em
}

// Dots returns the number of dots for one unit of the given type,
// with percentages resolved along the given dimension.
func (uc *Context) Dots(un Units, d math32.Dims) float32 {
	dpi := uc.DPI
	if dpi == 0 {
		dpi = PxPerInch
	}
	switch un {
	case UnitPx:
		return dpi / PxPerInch
	case UnitPct:
		if d == math32.X {
			return 0.01 * uc.Paw
		}
		return 0.01 * uc.Pah
	case UnitRem:
		return uc.FontRem
	case UnitEm:
		return uc.FontEm
	case UnitVw:
		return 0.01 * uc.Vpw
	case UnitVh:
		return 0.01 * uc.Vph
	case UnitCm:
		return dpi / CmPerInch
	case UnitMm:
		return dpi / MmPerInch
	case UnitIn:
		return dpi
	case UnitPc:
		return dpi / PcPerInch
	case UnitPt:
		return dpi / PtPerInch
	}
	return 1
}

// ToDots converts value in given units into raw display pixels (dots in DPI)
func (uc *Context) ToDots(val float32, un Units, d math32.Dims) float32 {
	return val * uc.Dots(un, d)
}

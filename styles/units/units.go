// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units supports the CSS-style length units (em, px, pt, % etc)
used by computed styles.

The unit is stored along with a value, and can be converted at a later point into
a raw display pixel value using the Context which contains all the necessary reference
values to perform the conversion. Typically the unit value is parsed early from a style
and then converted later once the context is fully resolved. The Value also holds the
converted value (Dots) so it can be used directly without further re-conversion.

'Dots' are used as term for underlying raw display pixels because "Pixel" and the px unit
are actually not conventionally used as raw display pixels in the current HiDPI
environment. See https://developer.mozilla.org/en/docs/Web/CSS/length -- 1 px = 1/96 in
*/
package units

import (
	"fmt"

	"cogentcore.org/boxcore/math32"
)

// standard conversion factors -- Px = DPI-independent pixel instead of actual "dot" raw pixel
const (
	PxPerInch = 96.0
	MmPerInch = 25.4
	CmPerInch = 2.54
	PtPerInch = 72.0
	PcPerInch = 6.0
)

// Units is an enum that represents a unit (px, em, etc)
type Units int32

const (
	// UnitPx = pixels -- 1px = 1/96th of 1in -- these are NOT raw display pixels
	UnitPx Units = iota

	// UnitPct = percentage of the reference size along the axis the value
	// is used on (see [Value.ToDotsDim]); equivalent to CSS %
	UnitPct

	// UnitRem = font size of the root element
	UnitRem

	// UnitEm = font size of the element
	UnitEm

	// UnitVw = 1% of the viewport's width
	UnitVw

	// UnitVh = 1% of the viewport's height
	UnitVh

	// UnitCm = centimeters -- 1cm = 96px/2.54
	UnitCm

	// UnitMm = millimeters -- 1mm = 1/10th of cm
	UnitMm

	// UnitIn = inches -- 1in = 2.54cm = 96px
	UnitIn

	// UnitPc = picas -- 1pc = 1/6th of 1in
	UnitPc

	// UnitPt = points -- 1pt = 1/72th of 1in
	UnitPt

	// UnitDot = actual real display pixels -- generally only use internally
	UnitDot

	unitsN
)

// UnitNames are the CSS names of the units, indexed by [Units].
var UnitNames = [...]string{
	UnitPx:  "px",
	UnitPct: "%",
	UnitRem: "rem",
	UnitEm:  "em",
	UnitVw:  "vw",
	UnitVh:  "vh",
	UnitCm:  "cm",
	UnitMm:  "mm",
	UnitIn:  "in",
	UnitPc:  "pc",
	UnitPt:  "pt",
	UnitDot: "dot",
}

// String returns the CSS name of the unit.
func (u Units) String() string {
	if u < 0 || u >= unitsN {
		return fmt.Sprintf("Units(%d)", int32(u))
	}
	return UnitNames[u]
}

// UnitsValues returns all of the valid units.
func UnitsValues() []Units {
	us := make([]Units, unitsN)
	for i := range us {
		us[i] = Units(i)
	}
	return us
}

// Value and units, and converted value into raw pixels (dots in DPI)
type Value struct {

	// Value is the value in terms of the specified unit
	Value float32

	// Unit is the unit used for the value
	Unit Units

	// Dots is the computed value in raw pixels (dots in DPI)
	Dots float32
}

// New creates a new value with given units
func New(val float32, un Units) Value {
	return Value{Value: val, Unit: un}
}

// Px creates a new value of type [UnitPx].
func Px(val float32) Value { return New(val, UnitPx) }

// Pct creates a new value of type [UnitPct].
func Pct(val float32) Value { return New(val, UnitPct) }

// Em creates a new value of type [UnitEm].
func Em(val float32) Value { return New(val, UnitEm) }

// Rem creates a new value of type [UnitRem].
func Rem(val float32) Value { return New(val, UnitRem) }

// Pt creates a new value of type [UnitPt].
func Pt(val float32) Value { return New(val, UnitPt) }

// Dot creates a new value of type [UnitDot], which is already in raw pixels.
func Dot(val float32) Value { return Value{Value: val, Unit: UnitDot, Dots: val} }

// Zero sets the value to zero
func (v *Value) Zero() {
	v.Value = 0
	v.Dots = 0
}

// IsZero returns whether the value is zero in its own unit.
func (v Value) IsZero() bool {
	return v.Value == 0
}

// String implements the fmt.Stringer interface.
func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.Value, v.Unit)
}

// ToDots converts value to raw display pixels (dots as in DPI), setting also
// the Dots field. Percentages are taken relative to the parent width;
// use [Value.ToDotsDim] for a value that applies to a specific axis.
func (v *Value) ToDots(uc *Context) float32 {
	return v.ToDotsDim(uc, math32.X)
}

// ToDotsDim converts value to raw display pixels, resolving percentages
// against the parent size along the given dimension.
func (v *Value) ToDotsDim(uc *Context, d math32.Dims) float32 {
	v.Dots = uc.ToDots(v.Value, v.Unit, d)
	return v.Dots
}

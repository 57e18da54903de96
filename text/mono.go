// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "github.com/rivo/uniseg"

// Mono is a [Service] on a fixed cell grid: each grapheme takes its
// display width in cells (1 or 2) times the cell width.
// It is deterministic, which makes it the service of choice for tests
// and for terminal output.
type Mono struct {
	// CellWidth is the width of one cell; zero is half the font size.
	CellWidth float32

	// LineHeight is the line height used when the font gives none;
	// zero is 1.25 times the font size.
	LineHeight float32
}

func (m *Mono) cell(f Font) float32 {
	if m.CellWidth > 0 {
		return m.CellWidth
	}
	return f.Size / 2
}

func (m *Mono) lineHeight(f Font) float32 {
	switch {
	case f.LineHeight > 0:
		return f.LineHeight
	case m.LineHeight > 0:
		return m.LineHeight
	}
	return f.Size * 1.25
}

func (m *Mono) layout(s string, f Font) (*lines, error) {
	cw := m.cell(f)
	return layout(s, f, m.lineHeight(f), func(cl string) float32 {
		return cw * float32(uniseg.StringWidth(cl))
	})
}

func (m *Mono) Measure(s string, f Font) (Metrics, error) {
	ls, err := m.layout(s, f)
	if err != nil {
		return Metrics{}, err
	}
	return ls.metrics(), nil
}

func (m *Mono) HitTest(l Layout, x, y float32) (Hit, error) {
	ls, err := m.layout(l.Text, l.Font)
	if err != nil {
		return Hit{}, err
	}
	return ls.hitTest(x, y), nil
}

func (m *Mono) HitTestPosition(l Layout, offset int, trailing bool) (Position, error) {
	ls, err := m.layout(l.Text, l.Font)
	if err != nil {
		return Position{}, err
	}
	return ls.position(offset, trailing), nil
}

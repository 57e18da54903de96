// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles contains the computed style types exchanged with
// an external style resolver, the resolved per-node style snapshot,
// and a bundled stylesheet-based resolver.
package styles

import (
	"image/color"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/styles/sides"
	"cogentcore.org/boxcore/styles/units"
)

// Element is what a [Resolver] sees of a widget.
type Element interface {

	// StyleType is the type selector name of the element, such as "list".
	StyleType() string

	// StyleName is the name of the element, matched by #name selectors.
	StyleName() string

	// InlineStyle returns the inline style declarations of the element.
	InlineStyle() string
}

// Resolver resolves the cascade for one element, returning
// its computed (but not yet inherited or converted) properties.
type Resolver interface {
	Resolve(el Element, sheets []*Sheet) (*Properties, error)
}

// Properties are the computed properties returned by a [Resolver]
// for one element. Display, Position and Visibility may be Inherit;
// a zero FontSize and a nil Color also mean inherit.
type Properties struct {
	Display    Displays
	Position   Positions
	Visibility Visibilities

	// FontSize is the font size; em is relative to the parent font size.
	FontSize units.Value

	// LineHeight is the line height; zero means derived from the font size.
	LineHeight units.Value

	// Color is the text color; nil means inherit.
	Color color.Color

	// Background is the background color; nil means none.
	Background color.Color

	Margin  sides.Values
	Border  sides.Values
	Padding sides.Values
}

// NewProperties returns properties with the CSS initial values:
// block display, static position, inherited visibility, font size and color.
func NewProperties() *Properties {
	return &Properties{
		Display:    DisplayBlock,
		Position:   PositionStatic,
		Visibility: VisibilityInherit,
	}
}

// LineHeightNormal is the line height multiplier applied to the font
// size when no line height is given.
var LineHeightNormal = float32(1.25)

// Style is the resolved style snapshot of a widget, with all inherit
// values resolved and all lengths in dots.
type Style struct {
	Display    Displays
	Position   Positions
	Visibility Visibilities

	// FontSize is the font size in dots.
	FontSize float32

	// LineHeight is the height of one line of text in dots.
	LineHeight float32

	Color      color.RGBA
	Background color.RGBA

	Margin  sides.Floats
	Border  sides.Floats
	Padding sides.Floats
}

// Inherited holds the style fields that children take from their parent
// unless they set them.
type Inherited struct {
	FontSize   float32
	LineHeight float32
	Color      color.RGBA
}

// Defaults sets the root defaults for a style.
func (s *Style) Defaults() {
	*s = Style{
		Display:    DisplayBlock,
		Position:   PositionStatic,
		Visibility: VisibilityVisible,
		FontSize:   16,
		LineHeight: 16 * LineHeightNormal,
		Color:      color.RGBA{0, 0, 0, 255},
	}
}

// Insets returns the border plus padding on each side.
func (s *Style) Insets() sides.Floats {
	return s.Border.Add(s.Padding)
}

// Spacing returns the total of margin, border and padding along a dimension.
func (s *Style) Spacing(d math32.Dims) float32 {
	return s.Margin.Size().Dim(d) + s.Insets().Size().Dim(d)
}

// IsPositioned returns whether the element is absolute or fixed,
// which exempts it from containment in its parent.
func (s *Style) IsPositioned() bool {
	return s.Position == PositionAbsolute || s.Position == PositionFixed
}

// IsVisible returns whether the element enters layout.
func (s *Style) IsVisible() bool {
	return s.Display != DisplayNone && s.Visibility == VisibilityVisible
}

// ContentBox returns the content box of the given border box.
func (s *Style) ContentBox(box math32.Box2) math32.Box2 {
	in := s.Insets()
	return box.Inset(in.Top, in.Right, in.Bottom, in.Left)
}

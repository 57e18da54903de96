// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides flexible representation of box sides,
// with either a single value for all, or different values
// for subsets.
package sides

import (
	"fmt"
	"log/slog"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/styles/units"
)

// Indexes provides names for the Sides in order defined
type Indexes int32

const (
	Top Indexes = iota
	Right
	Bottom
	Left
)

// Sides contains values for each side of a box.
// The struct field names correspond directly to the side values
// (ie: Top = top side value).
type Sides[T any] struct {

	// top value
	Top T

	// right value
	Right T

	// bottom value
	Bottom T

	// left value
	Left T
}

// Set sets the values of the sides from the given list of 0 to 4 values.
// If 0 values are provided, all sides are set to the zero value of the type.
// If 1 value is provided, all sides are set to that value.
// If 2 values are provided, the top and bottom are set to the first value
// and the right and left are set to the second value.
// If 3 values are provided, the top is set to the first value,
// the right and left are set to the second value,
// and the bottom is set to the third value.
// If 4 values are provided, they are set in top, right, bottom, left order.
// This behavior is based on the CSS multi-side setting syntax,
// like that with padding (see https://www.w3schools.com/css/css_padding.asp)
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zval T
		s.SetAll(zval)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.SetVertical(vals[0])
		s.SetHorizontal(vals[1])
	case 3:
		s.Top = vals[0]
		s.SetHorizontal(vals[1])
		s.Bottom = vals[2]
	case 4:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		slog.Error("programmer error: sides.Set: expected 0 to 4 values, but got", "numValues", len(vals))
	}
	return s
}

// Zero sets the values of all of the sides to zero.
func (s *Sides[T]) Zero() *Sides[T] {
	s.Set()
	return s
}

// SetVertical sets the values for the top and bottom sides to the given value
func (s *Sides[T]) SetVertical(val T) *Sides[T] {
	s.Top = val
	s.Bottom = val
	return s
}

// SetHorizontal sets the values for the right and left sides to the given value
func (s *Sides[T]) SetHorizontal(val T) *Sides[T] {
	s.Right = val
	s.Left = val
	return s
}

// SetAll sets the values for all of the sides to the given value
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// AreZero returns whether all of the sides are equal to zero
func AreZero[T comparable](s Sides[T]) bool {
	var zv T
	return s.Top == zv && s.Right == zv && s.Bottom == zv && s.Left == zv
}

// Values contains units.Value values for each side of a box
type Values struct {
	Sides[units.Value]
}

// NewValues is a helper that creates new side values
// and calls Set on them with the given values.
func NewValues(vals ...units.Value) Values {
	sides := Sides[units.Value]{}
	sides.Set(vals...)
	return Values{sides}
}

// SetString sets the sides from a CSS shorthand string such as "4px 1em".
func (sv *Values) SetString(str string) error {
	vals, err := units.ParseValues(str)
	if err != nil {
		return fmt.Errorf("sides.Values.SetString(%q): %w", str, err)
	}
	if len(vals) == 0 || len(vals) > 4 {
		return fmt.Errorf("sides.Values.SetString(%q): expected 1 to 4 values, got %d", str, len(vals))
	}
	sv.Set(vals...)
	return nil
}

// ToDots converts the values for each of the sides
// to raw display pixels (dots) and sets the Dots field for each
// of the values. Top and bottom resolve percentages against the
// height, right and left against the width.
// It returns the dot values as a Floats.
func (sv *Values) ToDots(uc *units.Context) Floats {
	return NewFloats(
		sv.Top.ToDotsDim(uc, math32.Y),
		sv.Right.ToDotsDim(uc, math32.X),
		sv.Bottom.ToDotsDim(uc, math32.Y),
		sv.Left.ToDotsDim(uc, math32.X),
	)
}

// Floats contains float32 values for each side of a box
type Floats struct {
	Sides[float32]
}

// NewFloats is a helper that creates new side floats
// and calls Set on them with the given values.
func NewFloats(vals ...float32) Floats {
	sides := Sides[float32]{}
	sides.Set(vals...)
	return Floats{sides}
}

// Add adds the side floats to the
// other side floats and returns the result
func (sf Floats) Add(other Floats) Floats {
	return NewFloats(
		sf.Top+other.Top,
		sf.Right+other.Right,
		sf.Bottom+other.Bottom,
		sf.Left+other.Left,
	)
}

// Pos returns the position offset caused by the side values (Left, Top)
func (sf Floats) Pos() math32.Vector2 {
	return math32.Vec2(sf.Left, sf.Top)
}

// Size returns the total size the side values take up (Left + Right, Top + Bottom)
func (sf Floats) Size() math32.Vector2 {
	return math32.Vec2(sf.Left+sf.Right, sf.Top+sf.Bottom)
}

// Start returns the leading side along the given dimension (Left or Top).
func (sf Floats) Start(d math32.Dims) float32 {
	if d == math32.X {
		return sf.Left
	}
	return sf.Top
}

// End returns the trailing side along the given dimension (Right or Bottom).
func (sf Floats) End(d math32.Dims) float32 {
	if d == math32.X {
		return sf.Right
	}
	return sf.Bottom
}

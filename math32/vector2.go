// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
)

// Other returns the other dimension, for 2D layouts
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}

// String returns "X" or "Y"
func (d Dims) String() string {
	if d == X {
		return "X"
	}
	return "Y"
}

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// String implements the fmt.Stringer interface.
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Dim returns this vector component
func (v Vector2) Dim(dim Dims) float32 {
	if dim == X {
		return v.X
	}
	return v.Y
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2) SetDim(dim Dims, value float32) {
	if dim == X {
		v.X = value
	} else {
		v.Y = value
	}
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Max returns max of this vector components vs. other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// Min returns min of this vector components vs. other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector2) SetMax(other Vector2) {
	v.X = Max(v.X, other.X)
	v.Y = Max(v.Y, other.Y)
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector2) SetMin(other Vector2) {
	v.X = Min(v.X, other.X)
	v.Y = Min(v.Y, other.Y)
}

// Clamp sets this vector's components to be no less than the corresponding
// components of min and not greater than the corresponding component of max.
// Assumes min < max; if this assumption isn't true, it will not operate correctly.
func (v *Vector2) Clamp(min, max Vector2) {
	v.X = Clamp(v.X, min.X, max.X)
	v.Y = Clamp(v.Y, min.Y, max.Y)
}

// Ceil returns vector with [Ceil] applied to each of this vector's components.
func (v Vector2) Ceil() Vector2 {
	return Vec2(Ceil(v.X), Ceil(v.Y))
}

// ToPoint returns the rounded [image.Point] of this vector.
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(Round(v.X)), int(Round(v.Y)))
}

// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and box package
// for 2D layout geometry.
package math32

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Floating-point limit values.
const (
	MaxFloat32             = math.MaxFloat32
	SmallestNonzeroFloat32 = math.SmallestNonzeroFloat32
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Clamp clamps x to the provided closed interval [a, b].
// If b < a, the result is a.
func Clamp(x, a, b float32) float32 {
	if x > b {
		x = b
	}
	if x < a {
		x = a
	}
	return x
}

// ToFixed converts a float32 value to a fixed.Int26_6
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// FromFixed converts a fixed.Int26_6 to a float32
func FromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2Intersect(t *testing.T) {
	a := B2(0, 0, 100, 100)
	b := B2(50, 20, 150, 80)
	assert.Equal(t, B2(50, 20, 100, 80), a.Intersect(b))
	assert.True(t, a.Intersect(B2(200, 200, 300, 300)).IsEmpty())
	assert.Equal(t, B2(0, 0, 150, 100), a.Union(b))
}

func TestBox2ContainsPoint(t *testing.T) {
	a := B2(10, 10, 20, 20)
	assert.True(t, a.ContainsPoint(Vec2(10, 10)))
	assert.True(t, a.ContainsPoint(Vec2(19.5, 15)))
	assert.False(t, a.ContainsPoint(Vec2(20, 15)))
	assert.False(t, a.ContainsPoint(Vec2(9, 15)))
}

func TestBox2Inset(t *testing.T) {
	a := B2(0, 0, 10, 10)
	assert.Equal(t, B2(1, 2, 7, 6), a.Inset(2, 3, 4, 1))
	collapsed := a.Inset(8, 0, 8, 0)
	assert.Equal(t, float32(8), collapsed.Min.Y)
	assert.Equal(t, float32(8), collapsed.Max.Y)
	assert.Equal(t, image.Rect(0, 0, 10, 10), a.ToRect())
}

func TestDims(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(3), v.Dim(X))
	assert.Equal(t, float32(4), v.Dim(Y))
	assert.Equal(t, Y, X.Other())
	v.SetDim(Y, 7)
	assert.Equal(t, Vec2(3, 7), v)
	assert.Equal(t, float32(2.5), FromFixed(ToFixed(2.5)))
	assert.Equal(t, float32(5), Clamp(9, 0, 5))
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

import (
	"testing"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/styles/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	tests := []struct {
		vals []float32
		want Sides[float32]
	}{
		{nil, Sides[float32]{}},
		{[]float32{1}, Sides[float32]{1, 1, 1, 1}},
		{[]float32{1, 2}, Sides[float32]{1, 2, 1, 2}},
		{[]float32{1, 2, 3}, Sides[float32]{1, 2, 3, 2}},
		{[]float32{1, 2, 3, 4}, Sides[float32]{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		var s Sides[float32]
		s.Set(tt.vals...)
		assert.Equal(t, tt.want, s)
	}
	assert.True(t, AreZero(Sides[float32]{}))
}

func TestValuesToDots(t *testing.T) {
	var sv Values
	require.NoError(t, sv.SetString("10% 2em"))
	var uc units.Context
	uc.Defaults()
	uc.SetSizes(1000, 1000, 200, 100)
	uc.FontEm = 10
	f := sv.ToDots(&uc)
	assert.Equal(t, float32(10), f.Top)
	assert.Equal(t, float32(20), f.Right)
	assert.Equal(t, float32(10), f.Bottom)
	assert.Equal(t, float32(20), f.Left)
	assert.Equal(t, math32.Vec2(40, 20), f.Size())
	assert.Equal(t, float32(20), f.Start(math32.X))
	assert.Equal(t, float32(10), f.End(math32.Y))

	assert.Error(t, sv.SetString("1px 2px 3px 4px 5px"))
	assert.Error(t, sv.SetString("wide"))
}

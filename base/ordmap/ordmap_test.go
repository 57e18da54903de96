// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("b", 2)
	om.Add("a", 1)
	om.Add("c", 3)
	om.Add("a", 10)

	assert.Equal(t, []string{"b", "a", "c"}, om.Keys())
	assert.Equal(t, 10, om.ValueByKey("a"))
	assert.Equal(t, 1, om.IndexByKey("a"))
	assert.Equal(t, -1, om.IndexByKey("z"))

	assert.True(t, om.DeleteKey("b"))
	assert.False(t, om.DeleteKey("b"))
	assert.Equal(t, []string{"a", "c"}, om.Keys())
	assert.Equal(t, 1, om.IndexByKey("c"))

	var keys []string
	for k, v := range om.All() {
		keys = append(keys, k)
		assert.Equal(t, om.ValueByKey(k), v)
	}
	assert.Equal(t, []string{"a", "c"}, keys)

	cl := om.Clone()
	cl.Add("d", 4)
	assert.Equal(t, 2, om.Len())
	assert.Equal(t, 3, cl.Len())

	var nilmap *Map[string, int]
	assert.Equal(t, 0, nilmap.Len())
	_, ok := nilmap.ValueByKeyTry("a")
	assert.False(t, ok)
}

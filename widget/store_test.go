// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertOffsets(t *testing.T) {
	s := NewStore()
	a, err := s.Insert(Root, 0, TypeLabel, LayoutNone)
	require.NoError(t, err)
	b, err := s.Insert(Root, 100, TypeLabel, LayoutNone)
	require.NoError(t, err)
	c, err := s.Insert(Root, 0, TypeButton, LayoutNone)
	require.NoError(t, err)
	d, err := s.Insert(Root, -1, TypeList, LayoutNone)
	require.NoError(t, err)
	assert.Equal(t, []ID{c, a, b, d}, s.Root().Children)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, Root, s.Node(a).Parent)
	assert.Equal(t, 1, s.Index(a))
}

func TestEraseRecursive(t *testing.T) {
	s := NewStore()
	box, _ := s.Insert(Root, 0, TypeContainer, LayoutVBox)
	l1, _ := s.Insert(box, 0, TypeLabel, LayoutNone)
	l2, _ := s.Insert(box, 1, TypeLabel, LayoutNone)
	other, _ := s.Insert(Root, 1, TypeLabel, LayoutNone)

	require.NoError(t, s.Erase(box))
	assert.Nil(t, s.Node(box))
	assert.Nil(t, s.Node(l1))
	assert.Nil(t, s.Node(l2))
	assert.Equal(t, []ID{other}, s.Root().Children)
	assert.Equal(t, 2, s.Len())

	// stale ids are benign
	assert.ErrorIs(t, s.Erase(box), ErrInvalidReference)
	assert.ErrorIs(t, s.Modify(l1, KeyValue, String("x")), ErrInvalidReference)
	_, err := s.Insert(l2, 0, TypeLabel, LayoutNone)
	assert.ErrorIs(t, err, ErrInvalidReference)

	assert.ErrorIs(t, s.Erase(Root), ErrInvalidReference)
	assert.NotNil(t, s.Root())
}

func TestReserveInsertAt(t *testing.T) {
	s := NewStore()
	id := s.Reserve()
	id2 := s.Reserve()
	assert.NotEqual(t, id, id2)
	require.NoError(t, s.InsertAt(id2, Root, 0, TypeLabel, LayoutNone))
	require.NoError(t, s.InsertAt(id, Root, 0, TypeLabel, LayoutNone))
	assert.Equal(t, []ID{id, id2}, s.Root().Children)
	assert.ErrorIs(t, s.InsertAt(id, Root, 0, TypeLabel, LayoutNone), ErrInvalidReference)
}

func TestModifyAttributes(t *testing.T) {
	s := NewStore()
	id, _ := s.Insert(Root, 0, TypeLineEdit, LayoutNone)
	n := s.Node(id)
	n.Actions = []TextAction{{Offset: 0, Length: 1}}
	n.ActionPos = 1
	require.NoError(t, s.Modify(id, KeyValue, String("hello")))
	assert.Equal(t, "hello", n.Value())
	assert.Empty(t, n.Actions)
	assert.Equal(t, 5, n.Edit.Caret)

	require.NoError(t, s.Modify(id, KeyHeight, Number(40)))
	h, ok := n.AttrNumber(KeyHeight)
	assert.True(t, ok)
	assert.Equal(t, 40.0, h)
	_, ok = n.AttrNumber(KeyWidth)
	assert.False(t, ok)

	require.NoError(t, s.Modify(id, KeyEnabled, Bool(false)))
	assert.False(t, n.Is(Enabled))
	assert.Equal(t, []Keys{KeyValue, KeyHeight, KeyEnabled}, n.Attrs.Keys())
	assert.Equal(t, "line-edit", n.StyleType())
}

func TestAttribute(t *testing.T) {
	assert.Equal(t, Number(2.5), ParseAttribute("2.5"))
	assert.Equal(t, Bool(true), ParseAttribute("true"))
	assert.Equal(t, String("auto"), ParseAttribute("auto"))
	assert.Equal(t, "2.5", Number(2.5).AsString())
	assert.Equal(t, ScrollAuto, ScrollPolicy(String("auto"), true))
	assert.Equal(t, ScrollAlways, ScrollPolicy(Bool(true), true))
	assert.Equal(t, ScrollNone, ScrollPolicy(String("auto"), false))

	var k Keys
	require.NoError(t, k.SetString("weight_y"))
	assert.Equal(t, KeyWeightY, k)
	var ty Types
	require.NoError(t, ty.SetString("text-edit"))
	assert.True(t, ty.IsView())
	assert.Error(t, ty.SetString("slider"))
}

func TestScrollAxisClamp(t *testing.T) {
	sa := ScrollAxis{Max: 1000, ViewSize: 100}
	assert.True(t, sa.SetValue(2000))
	assert.Equal(t, float32(900), sa.Value)
	sa.SetValue(-5)
	assert.Equal(t, float32(0), sa.Value)
	sa = ScrollAxis{Max: 50, ViewSize: 100, Value: 10}
	sa.Clamp()
	assert.Equal(t, float32(0), sa.Value)
}

func TestSelectedChild(t *testing.T) {
	s := NewStore()
	tabs, _ := s.Insert(Root, -1, TypeTabs, LayoutTabs)
	n := s.Node(tabs)
	assert.Equal(t, 0, n.SelectedChild())
	s.Insert(tabs, -1, TypeContainer, LayoutNone)
	s.Insert(tabs, -1, TypeContainer, LayoutNone)
	for _, c := range []struct {
		sel  float64
		want int
	}{{1, 1}, {-3, 0}, {7, 1}} {
		s.Modify(tabs, KeySelected, Number(c.sel))
		assert.Equal(t, c.want, n.SelectedChild(), "selected %v", c.sel)
	}
}

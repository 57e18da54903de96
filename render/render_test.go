// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"testing"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(kind widget.ItemKinds, pos, size math32.Vector2, s string) widget.Item {
	return widget.Item{Kind: kind, Pos: pos, Size: size, Text: s, Visible: true, Model: widget.NoModel}
}

// table returns a window with a table of 100x60 at (10, 10) with
// header bands of 20 and a vertical scrollbar.
func table(t *testing.T) (*widget.Store, *widget.Node) {
	s := widget.NewStore()
	s.Root().Box = math32.B2(0, 0, 200, 200)
	id, err := s.Insert(widget.Root, 0, widget.TypeTable, widget.LayoutNone)
	require.NoError(t, err)
	n := s.Node(id)
	n.Box = math32.B2(10, 10, 110, 70)
	n.Level = 1
	n.Bands = math32.Vec2(20, 20)
	n.Flags.Set(true, widget.HasVScroll)
	n.Scroll[math32.Y].Value = 10
	n.SetContent([]widget.Item{
		item(widget.ItemText, math32.Vec2(0, 0), math32.Vec2(40, 20), "a"),
		item(widget.ItemText, math32.Vec2(0, 20), math32.Vec2(40, 20), "b"),
		item(widget.ItemRowHeader, math32.Vec2(0, 0), math32.Vec2(20, 20), "r"),
		item(widget.ItemColHeader, math32.Vec2(0, 0), math32.Vec2(40, 20), "c"),
	})
	n.Items = append(n.Items, item(widget.ItemScrollBg, math32.Vec2(90, 0), math32.Vec2(10, 60), ""))
	return s, n
}

func TestBuildTable(t *testing.T) {
	s, n := table(t)
	l := Build(s, []*widget.Node{s.Root(), n}, &Options{ScrollBarWidth: 10, Focus: widget.NoID})
	require.Len(t, l.Entries, 7)

	assert.Equal(t, EntryBox, l.Entries[0].Kind)
	assert.Equal(t, widget.Root, l.Entries[0].Widget)
	assert.Equal(t, EntryBox, l.Entries[1].Kind)
	assert.Equal(t, n.ID, l.Entries[1].Widget)

	body := math32.B2(30, 30, 100, 70)
	a := l.Entries[2]
	assert.Equal(t, math32.B2(30, 20, 70, 40), a.Rect)
	assert.Equal(t, body, a.Clip)

	rh := l.Entries[4]
	assert.Equal(t, widget.ItemRowHeader, rh.ItemKind)
	assert.Equal(t, math32.B2(10, 20, 30, 40), rh.Rect)
	assert.Equal(t, math32.B2(10, 30, 30, 70), rh.Clip)

	ch := l.Entries[5]
	assert.Equal(t, math32.B2(30, 10, 70, 30), ch.Rect)
	assert.Equal(t, math32.B2(30, 10, 100, 30), ch.Clip)

	bar := l.Entries[6]
	assert.True(t, bar.Overlay)
	assert.Equal(t, math32.B2(100, 10, 110, 70), bar.Rect)
}

func TestHitTest(t *testing.T) {
	s, n := table(t)
	l := Build(s, []*widget.Node{s.Root(), n}, &Options{ScrollBarWidth: 10, Focus: widget.NoID})

	e := l.HitTest(math32.Vec2(105, 50))
	require.NotNil(t, e)
	assert.Equal(t, widget.ItemScrollBg, e.ItemKind)

	// the top of "a" is scrolled under the column header band
	e = l.HitTest(math32.Vec2(40, 25))
	require.NotNil(t, e)
	assert.Equal(t, widget.ItemColHeader, e.ItemKind)

	e = l.HitTest(math32.Vec2(40, 35))
	require.NotNil(t, e)
	assert.Equal(t, "a", e.Text)

	e = l.HitTest(math32.Vec2(150, 150))
	require.NotNil(t, e)
	assert.Equal(t, EntryBox, e.Kind)
	assert.Equal(t, widget.Root, e.Widget)

	assert.Nil(t, l.HitTest(math32.Vec2(300, 300)))
	assert.Len(t, l.Subtree(s, n.ID), 6)
}

func TestCaretAndSelection(t *testing.T) {
	s := widget.NewStore()
	s.Root().Box = math32.B2(0, 0, 200, 200)
	id, _ := s.Insert(widget.Root, 0, widget.TypeLineEdit, widget.LayoutNone)
	n := s.Node(id)
	n.Box = math32.B2(0, 0, 100, 20)
	n.Style.FontSize = 10
	n.Style.LineHeight = 20
	it := item(widget.ItemText, math32.Vec2(0, 0), math32.Vec2(30, 20), "abc")
	it.Editable = true
	n.SetContent([]widget.Item{it})
	n.Flags.Set(true, widget.Focused)
	n.Edit = widget.EditState{Caret: 2, Anchor: 1, CaretOn: true}

	l := Build(s, []*widget.Node{s.Root(), n}, &Options{Focus: id, Text: &text.Mono{}})
	var sel, caret []Entry
	for _, e := range l.Entries {
		switch e.Kind {
		case EntrySelection:
			sel = append(sel, e)
		case EntryCaret:
			caret = append(caret, e)
		}
	}
	require.Len(t, sel, 1)
	assert.Equal(t, math32.B2(5, 0, 10, 20), sel[0].Rect)
	require.Len(t, caret, 1)
	assert.Equal(t, math32.B2(10, 0, 11, 20), caret[0].Rect)
	assert.Equal(t, caret[0], l.Entries[len(l.Entries)-1])

	n.Edit.CaretOn = false
	l = Build(s, []*widget.Node{s.Root(), n}, &Options{Focus: id, Text: &text.Mono{}})
	for _, e := range l.Entries {
		assert.NotEqual(t, EntryCaret, e.Kind)
	}
}

func TestSelectionRects(t *testing.T) {
	rs := SelectionRects(text.Position{X: 5, Y: 0, Height: 10}, text.Position{X: 8, Y: 30, Height: 10}, 50)
	require.Len(t, rs, 3)
	assert.Equal(t, math32.B2(5, 0, 50, 10), rs[0])
	assert.Equal(t, math32.B2(0, 10, 50, 30), rs[1])
	assert.Equal(t, math32.B2(0, 30, 8, 40), rs[2])
}

func TestDraw(t *testing.T) {
	s, n := table(t)
	l := Build(s, []*widget.Node{s.Root(), n}, &Options{ScrollBarWidth: 10, Focus: widget.NoID})
	var r Recorder
	l.Draw(&r)
	var texts []string
	for _, o := range r.Ops {
		if o.Name == "text" {
			texts = append(texts, o.Text)
		}
	}
	assert.Equal(t, []string{"a", "b", "r", "c"}, texts)
	assert.Equal(t, "fill", r.Ops[len(r.Ops)-1].Name)
}

func TestArrow(t *testing.T) {
	m := Arrow(image.Pt(10, 10), false, math32.Y)
	assert.NotZero(t, m.AlphaAt(5, 5).A)
	assert.Zero(t, m.AlphaAt(0, 0).A)
}

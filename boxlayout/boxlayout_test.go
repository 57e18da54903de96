// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boxlayout

import (
	"testing"

	"cogentcore.org/boxcore/cascade"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/settings"
	"cogentcore.org/boxcore/solver"
	"cogentcore.org/boxcore/styles"
	"cogentcore.org/boxcore/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layout(t *testing.T, s *widget.Store, sheet string, size math32.Vector2) *Pass {
	p := New(solver.NewDense(solver.Limits{}), settings.Default())
	relayout(t, p, s, sheet, size)
	return p
}

func relayout(t *testing.T, p *Pass, s *widget.Store, sheet string, size math32.Vector2) {
	sh, err := styles.ParseSheet(sheet)
	require.NoError(t, err)
	cx := &cascade.Context{Resolver: styles.SheetResolver{}, Sheets: []*styles.Sheet{sh}, FontSize: 16}
	cx.Units.Defaults()
	cx.Units.SetSizes(size.X, size.Y, size.X, size.Y)
	require.NoError(t, cascade.Apply(s, cx))
	require.NoError(t, p.Layout(s, size))
	assert.Equal(t, Solved, p.State)
}

func add(s *widget.Store, parent widget.ID, typ widget.Types, layout widget.LayoutModes, attrs ...any) widget.ID {
	id, _ := s.Insert(parent, -1, typ, layout)
	for i := 0; i+1 < len(attrs); i += 2 {
		s.Modify(id, attrs[i].(widget.Keys), attrs[i+1].(widget.Attribute))
	}
	return id
}

func TestVBoxWeights(t *testing.T) {
	s := widget.NewStore()
	a := add(s, widget.Root, widget.TypeContainer, widget.LayoutNone, widget.KeyWeight, widget.Number(1))
	b := add(s, widget.Root, widget.TypeContainer, widget.LayoutNone, widget.KeyWeight, widget.Number(1))
	c := add(s, widget.Root, widget.TypeContainer, widget.LayoutNone, widget.KeyWeight, widget.Number(2))
	layout(t, s, "", math32.Vec2(300, 400))

	assert.Equal(t, math32.B2(0, 0, 300, 400), s.Root().Box)
	heights := []float32{100, 100, 200}
	var y float32
	for i, id := range []widget.ID{a, b, c} {
		box := s.Node(id).Box
		assert.InDelta(t, y, box.Min.Y, 1)
		assert.InDelta(t, heights[i], box.DimSize(math32.Y), 1)
		assert.InDelta(t, 300, box.DimSize(math32.X), 1)
		assert.Equal(t, 1, s.Node(id).Level)
		y += heights[i]
	}
}

func TestExplicitHeightSurvivesResize(t *testing.T) {
	s := widget.NewStore()
	a := add(s, widget.Root, widget.TypeContainer, widget.LayoutNone, widget.KeyHeight, widget.Number(150))
	b := add(s, widget.Root, widget.TypeContainer, widget.LayoutNone)
	p := layout(t, s, "", math32.Vec2(100, 400))
	assert.InDelta(t, 150, s.Node(a).Box.DimSize(math32.Y), 0.01)
	assert.InDelta(t, 250, s.Node(b).Box.DimSize(math32.Y), 0.01)

	relayout(t, p, s, "", math32.Vec2(100, 600))
	assert.InDelta(t, 150, s.Node(a).Box.DimSize(math32.Y), 0.01)
	assert.InDelta(t, 450, s.Node(b).Box.DimSize(math32.Y), 0.01)
}

func TestExplicitLastChild(t *testing.T) {
	s := widget.NewStore()
	a := add(s, widget.Root, widget.TypeContainer, widget.LayoutNone)
	b := add(s, widget.Root, widget.TypeContainer, widget.LayoutNone, widget.KeyHeight, widget.Number(80))
	p := layout(t, s, "", math32.Vec2(100, 400))
	assert.InDelta(t, 320, s.Node(a).Box.DimSize(math32.Y), 0.01, "flexible sibling absorbs")
	assert.InDelta(t, 80, s.Node(b).Box.DimSize(math32.Y), 0.01)

	s.Modify(a, widget.KeyHeight, widget.Number(120))
	relayout(t, p, s, "", math32.Vec2(100, 600))
	assert.InDelta(t, 120, s.Node(a).Box.DimSize(math32.Y), 0.01)
	assert.Equal(t, math32.B2(0, 120, 100, 200), s.Node(b).Box, "slack left at the end")
}

func TestHBoxGapAndSpacing(t *testing.T) {
	s := widget.NewStore()
	row := add(s, widget.Root, widget.TypeContainer, widget.LayoutHBox, widget.KeyGap, widget.Number(10))
	a := add(s, row, widget.TypeContainer, widget.LayoutNone)
	b := add(s, row, widget.TypeContainer, widget.LayoutNone)
	layout(t, s, "#pad { padding: 5px } ", math32.Vec2(210, 50))
	assert.InDelta(t, 0, s.Node(a).Box.Min.X, 0.01)
	assert.InDelta(t, 100, s.Node(a).Box.Max.X, 0.01)
	assert.InDelta(t, 110, s.Node(b).Box.Min.X, 0.01)
	assert.InDelta(t, 210, s.Node(b).Box.Max.X, 0.01)
	assert.Equal(t, float32(50), s.Node(b).Box.Max.Y)

	s.Modify(row, widget.KeyName, widget.String("pad"))
	layout(t, s, "#pad { padding: 5px }", math32.Vec2(210, 50))
	assert.InDelta(t, 5, s.Node(a).Box.Min.X, 0.01)
	assert.InDelta(t, 5, s.Node(a).Box.Min.Y, 0.01)
	assert.InDelta(t, 205, s.Node(b).Box.Max.X, 0.01)
	assert.InDelta(t, 45, s.Node(b).Box.Max.Y, 0.01)
}

func TestMinimumSize(t *testing.T) {
	s := widget.NewStore()
	l := add(s, widget.Root, widget.TypeList, widget.LayoutNone, widget.KeyWeight, widget.Number(0.01))
	add(s, widget.Root, widget.TypeContainer, widget.LayoutNone, widget.KeyWeight, widget.Number(1))
	layout(t, s, "", math32.Vec2(100, 100))
	assert.InDelta(t, 30, s.Node(l).Box.DimSize(math32.Y), 0.01)
}

func TestTabs(t *testing.T) {
	s := widget.NewStore()
	tabs := add(s, widget.Root, widget.TypeTabs, widget.LayoutTabs, widget.KeySelected, widget.Number(1))
	a := add(s, tabs, widget.TypeContainer, widget.LayoutNone)
	b := add(s, tabs, widget.TypeContainer, widget.LayoutNone)
	p := layout(t, s, "", math32.Vec2(200, 100))
	assert.True(t, s.Node(a).Is(widget.Hidden))
	assert.False(t, s.Node(b).Is(widget.Hidden))
	assert.Equal(t, math32.B2(0, 24, 200, 100), s.Node(b).Box)
	assert.Len(t, p.Nodes(), 3)
}

func TestPositioned(t *testing.T) {
	s := widget.NewStore()
	box := add(s, widget.Root, widget.TypeContainer, widget.LayoutNone)
	in := add(s, box, widget.TypeContainer, widget.LayoutNone,
		widget.KeyX, widget.Number(10), widget.KeyY, widget.Number(20),
		widget.KeyWidth, widget.Number(50), widget.KeyHeight, widget.Number(500))
	abs := add(s, box, widget.TypeContainer, widget.LayoutNone, widget.KeyName, widget.String("abs"),
		widget.KeyX, widget.Number(-5), widget.KeyWidth, widget.Number(30), widget.KeyHeight, widget.Number(30))
	layout(t, s, "#abs { position: absolute }", math32.Vec2(200, 100))

	assert.Equal(t, math32.B2(10, 20, 60, 100), s.Node(in).Box, "contained")
	assert.Equal(t, math32.B2(-5, 0, 25, 30), s.Node(abs).Box, "exempt from containment")
}

func TestSplitterBars(t *testing.T) {
	s := widget.NewStore()
	sp := add(s, widget.Root, widget.TypeSplitter, widget.LayoutVBox)
	a := add(s, sp, widget.TypeContainer, widget.LayoutNone, widget.KeyWeight, widget.Number(1))
	add(s, sp, widget.TypeContainer, widget.LayoutNone, widget.KeyWeight, widget.Number(1))
	layout(t, s, "", math32.Vec2(100, 206))
	n := s.Node(sp)
	require.Len(t, n.Overlays(), 1)
	bar := n.Overlays()[0]
	assert.Equal(t, widget.ItemSplitter, bar.Kind)
	assert.Equal(t, a, bar.Child)
	assert.Equal(t, math32.Vec2(0, 100), bar.Pos)
	assert.Equal(t, math32.Vec2(100, 6), bar.Size)
}

func TestContainment(t *testing.T) {
	s := widget.NewStore()
	col := add(s, widget.Root, widget.TypeContainer, widget.LayoutVBox)
	add(s, col, widget.TypeList, widget.LayoutNone)
	row := add(s, col, widget.TypeContainer, widget.LayoutHBox, widget.KeyHeight, widget.Number(300))
	add(s, row, widget.TypeLineEdit, widget.LayoutNone, widget.KeyWidth, widget.Number(1000))
	add(s, row, widget.TypeTextEdit, widget.LayoutNone)
	add(s, col, widget.TypeLabel, widget.LayoutNone)
	p := layout(t, s, "* { margin: 2px; padding: 3px }", math32.Vec2(120, 90))

	for _, n := range p.Nodes() {
		cb := n.ContentBox()
		assert.LessOrEqual(t, cb.Min.X, cb.Max.X)
		assert.LessOrEqual(t, cb.Min.Y, cb.Max.Y)
		if n.ID == widget.Root {
			continue
		}
		pb := s.Node(n.Parent).Box
		assert.True(t, pb.ContainsBox(n.Box), "%v %v not in %v", n, n.Box, pb)
	}
}

func TestOutOfMemoryKeepsBoxes(t *testing.T) {
	s := widget.NewStore()
	a := add(s, widget.Root, widget.TypeContainer, widget.LayoutNone)
	p := layout(t, s, "", math32.Vec2(100, 100))
	before := s.Node(a).Box

	add(s, widget.Root, widget.TypeContainer, widget.LayoutNone)
	p.Solver = solver.NewDense(solver.Limits{MaxVariables: 6})
	err := p.Layout(s, math32.Vec2(50, 50))
	assert.ErrorIs(t, err, solver.ErrOutOfMemory)
	assert.Equal(t, Stale, p.State)
	assert.Equal(t, before, s.Node(a).Box)
}

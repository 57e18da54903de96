// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"fmt"
	"testing"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/settings"
	"cogentcore.org/boxcore/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listNode returns a list of 50 rows of 20px in a 200x100 box.
func listNode() *widget.Node {
	s := widget.NewStore()
	id, _ := s.Insert(widget.Root, 0, widget.TypeList, widget.LayoutNone)
	s.Modify(id, widget.KeyVScroll, widget.String("auto"))
	s.Modify(id, widget.KeyHScroll, widget.String("none"))
	n := s.Node(id)
	n.Box = math32.B2(0, 0, 200, 100)
	items := make([]widget.Item, 50)
	for i := range items {
		items[i] = widget.Item{Kind: widget.ItemText, Text: fmt.Sprintf("item %d", i), Visible: true,
			Pos: math32.Vec2(0, float32(20*i)), Size: math32.Vec2(60, 20)}
	}
	n.SetContent(items)
	return n
}

func TestListScenario(t *testing.T) {
	n := listNode()
	st := settings.Default()
	assert.True(t, Resolve(n, st))
	assert.True(t, n.Is(widget.HasVScroll))
	assert.False(t, n.Is(widget.HasHScroll))

	sa := n.Scroll[math32.Y]
	assert.Equal(t, float32(1000), sa.Max)
	assert.Equal(t, float32(100), sa.ViewSize)
	assert.Equal(t, math32.Max(st.ScrollBarWidth, 100*100/1000), sa.Exp)

	over := n.Overlays()
	require.Len(t, over, 4)
	assert.Equal(t, widget.ItemScrollBg, over[0].Kind)
	assert.Equal(t, math32.Vec2(190, 0), over[0].Pos)
	assert.Equal(t, math32.Vec2(10, 100), over[0].Size)
	assert.Equal(t, math32.Vec2(190, 90), over[2].Pos)
	assert.Equal(t, math32.Vec2(190, 10), over[3].Pos)

	assert.False(t, n.Items[4].Clipped)
	assert.True(t, n.Items[5].Clipped)

	// no topology change the second time
	n.TruncateOverlays()
	assert.False(t, Resolve(n, st))
}

func TestScrollClamp(t *testing.T) {
	n := listNode()
	st := settings.Default()
	Resolve(n, st)
	assert.True(t, Scroll(n, math32.Y, 5000))
	assert.Equal(t, float32(900), n.Scroll[math32.Y].Value)
	assert.False(t, Scroll(n, math32.Y, 10))
	assert.False(t, Scroll(n, math32.X, 10))

	n.TruncateOverlays()
	Resolve(n, st)
	thumb := n.Overlays()[3]
	assert.Equal(t, float32(80), thumb.Pos.Y)
	assert.True(t, n.Items[0].Clipped)
	assert.False(t, n.Items[49].Clipped)

	// content shrinks: the value is clamped before use
	n.SetContent(n.Items[:10])
	Resolve(n, st)
	assert.Equal(t, float32(100), n.Scroll[math32.Y].Value)
	n.SetContent(n.Items[:3])
	Resolve(n, st)
	assert.False(t, n.Is(widget.HasVScroll))
	assert.Equal(t, float32(0), n.Scroll[math32.Y].Value)

	sa := widget.ScrollAxis{Max: 1000, ViewSize: 100, AreaSize: 80, Exp: 10}
	assert.Equal(t, float32(450), FromThumb(&sa, 35))
	assert.Equal(t, float32(900), FromThumb(&sa, 500))
}

func TestNeedTwoPass(t *testing.T) {
	auto := [2]widget.ScrollPolicies{widget.ScrollAuto, widget.ScrollAuto}
	assert.Equal(t, [2]bool{true, true}, Need(auto, math32.Vec2(105, 95), math32.Vec2(100, 100), 10))
	assert.Equal(t, [2]bool{true, true}, Need(auto, math32.Vec2(95, 105), math32.Vec2(100, 100), 10))
	assert.Equal(t, [2]bool{false, true}, Need(auto, math32.Vec2(80, 105), math32.Vec2(100, 100), 10))
	assert.Equal(t, [2]bool{false, false}, Need(auto, math32.Vec2(100, 100), math32.Vec2(100, 100), 10))
	always := [2]widget.ScrollPolicies{widget.ScrollNone, widget.ScrollAlways}
	assert.Equal(t, [2]bool{false, true}, Need(always, math32.Vec2(500, 0), math32.Vec2(100, 100), 10))
}

func TestThumb(t *testing.T) {
	assert.Equal(t, float32(40), Thumb(80, 100, 200, 10))
	assert.Equal(t, float32(10), Thumb(80, 100, 10000, 10))
	assert.Equal(t, float32(80), Thumb(80, 100, 50, 10))
	assert.Equal(t, float32(5), Thumb(5, 100, 10000, 10))
}

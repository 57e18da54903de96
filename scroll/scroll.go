// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scroll decides which scrollbars a widget shows, computes the
// scroll axes and thumb geometry, clamps the scroll values, appends the
// scrollbar parts, and marks the content items outside the view.
package scroll

import (
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/settings"
	"cogentcore.org/boxcore/widget"
)

// Policy returns the scrollbar policy of n along d. Scrolling views
// default to auto; other widgets show no scrollbars unless set.
func Policy(n *widget.Node, d math32.Dims) widget.ScrollPolicies {
	k := widget.KeyHScroll
	if d == math32.Y {
		k = widget.KeyVScroll
	}
	a, has := n.Attr(k)
	if !has && n.Type.IsView() {
		return widget.ScrollAuto
	}
	return widget.ScrollPolicy(a, has)
}

// Need returns which scrollbars to show for the content extent and the
// content box size. Auto bars are decided against the full size, then
// once more for an axis whose view is shrunk by the other bar; the
// result is not iterated further.
func Need(pol [2]widget.ScrollPolicies, ext, size math32.Vector2, bar float32) [2]bool {
	var need [2]bool
	for d := math32.X; d <= math32.Y; d++ {
		need[d] = pol[d] == widget.ScrollAlways || (pol[d] == widget.ScrollAuto && ext.Dim(d) > size.Dim(d))
	}
	for d := math32.X; d <= math32.Y; d++ {
		o := d.Other()
		if !need[d] && pol[d] == widget.ScrollAuto && need[o] && ext.Dim(d) > size.Dim(d)-bar {
			need[d] = true
		}
	}
	return need
}

// Thumb returns the thumb extent: the track area scaled by the visible
// fraction, but at least the bar thickness, and at most the area.
func Thumb(area, view, extent, thickness float32) float32 {
	if area <= 0 {
		return 0
	}
	prop := area * view / math32.Max(math32.Max(view, extent), 1)
	return math32.Min(math32.Max(thickness, prop), area)
}

// Resolve updates the scroll state and scrollbar parts of n, which must
// have a solved box and composed items, and reports whether the shown
// scrollbars changed.
func Resolve(n *widget.Node, st *settings.Settings) bool {
	bar := st.ScrollBarWidth
	size := n.ContentBox().Size()
	ext := n.Extent()
	pol := [2]widget.ScrollPolicies{Policy(n, math32.X), Policy(n, math32.Y)}
	need := Need(pol, ext, size, bar)

	changed := false
	for d := math32.X; d <= math32.Y; d++ {
		if n.Is(widget.HasScroll(d)) != need[d] {
			changed = true
		}
		n.Flags.Set(need[d], widget.HasScroll(d))
	}
	view := n.ViewBox(bar).Size()
	for d := math32.X; d <= math32.Y; d++ {
		o := d.Other()
		sa := &n.Scroll[d]
		sa.Max = ext.Dim(d) - n.Bands.Dim(d)
		sa.ViewSize = view.Dim(d)
		sa.Step = st.ScrollStep
		track := size.Dim(d)
		if need[o] {
			track -= bar
		}
		sa.AreaSize = math32.Max(track-2*bar, 0)
		sa.Exp = Thumb(sa.AreaSize, sa.ViewSize, sa.Max, bar)
		if !need[d] {
			sa.Value = 0
		}
		sa.Clamp()
		if need[d] {
			n.Items = append(n.Items, parts(d, size, track, bar, sa)...)
		}
	}
	clip(n, view)
	return changed
}

// parts returns the background, end buttons and thumb of the bar along d,
// relative to the content box.
func parts(d math32.Dims, size math32.Vector2, track, bar float32, sa *widget.ScrollAxis) []widget.Item {
	o := d.Other()
	at := func(kind widget.ItemKinds, pos, length float32) widget.Item {
		it := widget.Item{Kind: kind, Axis: d, Visible: true, Model: widget.NoModel}
		it.Pos.SetDim(d, pos)
		it.Pos.SetDim(o, size.Dim(o)-bar)
		it.Size.SetDim(d, length)
		it.Size.SetDim(o, bar)
		return it
	}
	return []widget.Item{
		at(widget.ItemScrollBg, 0, track),
		at(widget.ItemScrollMin, 0, bar),
		at(widget.ItemScrollMax, track-bar, bar),
		at(widget.ItemScrollThumb, bar+sa.ThumbPos(), sa.Exp),
	}
}

// clip marks the content items outside the view. Header cells are
// only tested along the axis they scroll on.
func clip(n *widget.Node, view math32.Vector2) {
	scroll := math32.Vec2(n.Scroll[math32.X].Value, n.Scroll[math32.Y].Value)
	for i := range n.Content() {
		it := &n.Items[i]
		r := it.Rect().Translate(scroll.MulScalar(-1))
		switch it.Kind {
		case widget.ItemText:
			it.Clipped = !overlaps(r, view, math32.X) || !overlaps(r, view, math32.Y)
		case widget.ItemRowHeader:
			it.Clipped = !overlaps(r, view, math32.Y)
		case widget.ItemColHeader:
			it.Clipped = !overlaps(r, view, math32.X)
		default:
			it.Clipped = false
		}
	}
}

// overlaps returns whether r overlaps [0, view) along d.
// Zero-size items at the start of the view overlap it.
func overlaps(r math32.Box2, view math32.Vector2, d math32.Dims) bool {
	return r.DimMin(d) < view.Dim(d) && r.DimMax(d) >= 0 && (r.DimMax(d) > 0 || r.DimMin(d) == 0)
}

// Scroll sets the scroll value of n along d by delta and reports
// whether it changed.
func Scroll(n *widget.Node, d math32.Dims, delta float32) bool {
	if !n.Is(widget.HasScroll(d)) {
		return false
	}
	sa := &n.Scroll[d]
	return sa.SetValue(sa.Value + delta)
}

// FromThumb returns the scroll value for a thumb at the given
// offset within the track.
func FromThumb(sa *widget.ScrollAxis, pos float32) float32 {
	free := sa.AreaSize - sa.Exp
	if free <= 0 {
		return 0
	}
	return math32.Clamp(pos, 0, free) / free * sa.MaxValue()
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"log/slog"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/widget"
)

// SelectionColor is the background of selected text.
var SelectionColor = color.RGBA{0, 90, 180, 96}

// edit adds the selection and caret entries of the focused editable widget.
func (b *builder) edit(n *widget.Node, origin math32.Vector2, clip math32.Box2, font text.Font) {
	idx := n.EditItem()
	if idx < 0 || b.opts.Text == nil {
		return
	}
	it := &n.Items[idx]
	l := text.Layout{Text: it.Text, Font: font}
	base := origin.Add(it.Pos)
	add := func(kind widget.ItemKinds, ek EntryKinds, r math32.Box2, bg color.RGBA) {
		b.entries = append(b.entries, Entry{Kind: ek, Widget: n.ID, Item: idx, ItemKind: kind, Level: n.Level,
			Rect: r.Translate(base), Clip: clip, Background: bg, Color: n.Style.Color, Overlay: ek == EntryCaret})
	}
	if n.Edit.HasSelection() {
		start, end := n.Edit.Selection()
		ps, err := b.opts.Text.HitTestPosition(l, start, false)
		pe, err2 := b.opts.Text.HitTestPosition(l, end, false)
		if err != nil || err2 != nil {
			slog.Debug("render: selection not located", "widget", n, "err", err, "err2", err2)
		} else {
			for _, r := range SelectionRects(ps, pe, it.Size.X) {
				add(it.Kind, EntrySelection, r, SelectionColor)
			}
		}
	}
	if !n.Edit.CaretOn {
		return
	}
	pc, err := b.opts.Text.HitTestPosition(l, n.Edit.Caret, false)
	if err != nil {
		slog.Debug("render: caret not located", "widget", n, "err", err)
		return
	}
	add(it.Kind, EntryCaret, math32.B2(pc.X, pc.Y, pc.X+1, pc.Y+pc.Height), n.Style.Color)
}

// SelectionRects returns the highlight rectangles from start to end
// in text-local coordinates, for text of the given width.
func SelectionRects(start, end text.Position, width float32) []math32.Box2 {
	if start.Y == end.Y {
		return []math32.Box2{math32.B2(start.X, start.Y, end.X, start.Y+start.Height)}
	}
	rs := []math32.Box2{math32.B2(start.X, start.Y, math32.Max(width, start.X), start.Y+start.Height)}
	if mid := start.Y + start.Height; mid < end.Y {
		rs = append(rs, math32.B2(0, mid, width, end.Y))
	}
	return append(rs, math32.B2(0, end.Y, end.X, end.Y+end.Height))
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render builds the render list of a solved pass: the boxes
// and items of all widgets in layout in window coordinates, each with
// its clip rectangle, ordered so that ancestors draw before descendants
// and scrollbars and splitter bars draw on top.
package render

import (
	"cmp"
	"image/color"
	"slices"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/styles"
	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/widget"
)

// EntryKinds are the kinds of render list entries.
type EntryKinds int32

const (
	// EntryBox is the box of a widget.
	EntryBox EntryKinds = iota

	// EntryItem is an item of a widget.
	EntryItem

	// EntryCaret is the caret of the focused editable widget.
	EntryCaret

	// EntrySelection is a selection highlight rectangle.
	EntrySelection
)

// Entry is one element of the render list.
type Entry struct {
	Kind   EntryKinds
	Widget widget.ID

	// Item is the item index within the widget, or -1.
	Item     int
	ItemKind widget.ItemKinds

	// Rect is in window coordinates.
	Rect math32.Box2

	// Clip is the clip rectangle in window coordinates.
	Clip math32.Box2

	Level int
	Text  string
	Font  text.Font

	Color      color.RGBA
	Background color.RGBA

	// Overlay is set on entries drawn after all regular content.
	Overlay  bool
	Selected bool
}

// List is an ordered render list.
type List struct {
	Entries []Entry
}

// Options are the inputs of [Build] beyond the widgets.
type Options struct {
	ScrollBarWidth float32

	// Focus is the focused widget, or [widget.NoID].
	Focus widget.ID

	// Text locates the caret and selection of the focused widget.
	Text text.Service
}

// builder holds the state of one [Build].
type builder struct {
	store   *widget.Store
	opts    *Options
	clips   map[widget.ID]math32.Box2
	window  math32.Box2
	entries []Entry
}

// Build builds the render list of the given widgets, which are the
// widgets in layout in pre-order, with solved boxes and resolved scrolling.
func Build(s *widget.Store, nodes []*widget.Node, opts *Options) *List {
	b := &builder{store: s, opts: opts, clips: make(map[widget.ID]math32.Box2), window: s.Root().Box}
	for _, n := range nodes {
		b.widget(n)
	}
	slices.SortStableFunc(b.entries, func(x, y Entry) int {
		if x.Overlay != y.Overlay {
			if x.Overlay {
				return 1
			}
			return -1
		}
		return cmp.Compare(x.Level, y.Level)
	})
	return &List{Entries: b.entries}
}

// outer returns the clip the widget is drawn within.
func (b *builder) outer(n *widget.Node) math32.Box2 {
	if n.ID == widget.Root || n.Style.Position == styles.PositionFixed {
		return b.window
	}
	if pc, ok := b.clips[n.Parent]; ok {
		return pc
	}
	return b.window
}

func (b *builder) widget(n *widget.Node) {
	outer := b.outer(n)
	clip := outer.Intersect(n.Box)
	b.clips[n.ID] = clip
	b.entries = append(b.entries, Entry{Kind: EntryBox, Widget: n.ID, Item: -1, Rect: n.Box, Clip: outer,
		Level: n.Level, Color: n.Style.Color, Background: n.Style.Background})

	bar := b.opts.ScrollBarWidth
	cb := n.ContentBox()
	view := n.ViewBox(bar)
	body := view.Intersect(clip)
	scroll := math32.Vec2(n.Scroll[math32.X].Value, n.Scroll[math32.Y].Value)
	font := text.Font{Size: n.Style.FontSize, LineHeight: n.Style.LineHeight}
	for i := range n.Items {
		it := &n.Items[i]
		if !it.IsDrawn() {
			continue
		}
		e := Entry{Kind: EntryItem, Widget: n.ID, Item: i, ItemKind: it.Kind, Level: n.Level, Text: it.Text,
			Font: font, Color: n.Style.Color, Selected: it.Selected, Overlay: i >= n.NumContent}
		var off math32.Vector2
		switch it.Kind {
		case widget.ItemText:
			off = view.Min.Sub(scroll)
			e.Clip = body
		case widget.ItemRowHeader:
			off = math32.Vec2(cb.Min.X, view.Min.Y-scroll.Y)
			e.Clip = math32.B2(cb.Min.X, view.Min.Y, view.Min.X, view.Max.Y).Intersect(clip)
		case widget.ItemColHeader:
			off = math32.Vec2(view.Min.X-scroll.X, cb.Min.Y)
			e.Clip = math32.B2(view.Min.X, cb.Min.Y, view.Max.X, view.Min.Y).Intersect(clip)
		default:
			off = cb.Min
			e.Clip = clip
		}
		e.Rect = it.Rect().Translate(off)
		b.entries = append(b.entries, e)
	}
	if n.ID == b.opts.Focus && n.Is(widget.Focused) {
		b.edit(n, view.Min.Sub(scroll), body, font)
	}
}

// TextOrigin returns the window position of the scrolled origin of the
// text items of n, as drawn by [Build].
func TextOrigin(n *widget.Node, bar float32) math32.Vector2 {
	scroll := math32.Vec2(n.Scroll[math32.X].Value, n.Scroll[math32.Y].Value)
	return n.ViewBox(bar).Min.Sub(scroll)
}

// HitTest returns the topmost entry containing the point within its clip,
// or nil. Caret and selection entries are never hit.
func (l *List) HitTest(pt math32.Vector2) *Entry {
	for i := len(l.Entries) - 1; i >= 0; i-- {
		e := &l.Entries[i]
		if e.Kind == EntryCaret || e.Kind == EntrySelection {
			continue
		}
		if e.Rect.ContainsPoint(pt) && e.Clip.ContainsPoint(pt) {
			return e
		}
	}
	return nil
}

// Subtree returns the entries of the widget and its descendants, in order.
func (l *List) Subtree(s *widget.Store, id widget.ID) []Entry {
	var es []Entry
	for _, e := range l.Entries {
		if s.IsAncestor(id, e.Widget) {
			es = append(es, e)
		}
	}
	return es
}

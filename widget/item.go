// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"

	"cogentcore.org/boxcore/math32"
)

// ItemKinds are the kinds of drawable sub-elements of a widget.
type ItemKinds int32

const (
	ItemText ItemKinds = iota
	ItemRowHeader
	ItemColHeader
	ItemScrollBg
	ItemScrollMin
	ItemScrollMax
	ItemScrollThumb
	ItemSplitter
	ItemTab
)

var itemKindNames = []string{"text", "row-header", "col-header", "scroll-bg", "scroll-min",
	"scroll-max", "scroll-thumb", "splitter", "tab"}

func (k ItemKinds) String() string {
	if k < 0 || int(k) >= len(itemKindNames) {
		return fmt.Sprintf("ItemKinds(%d)", k)
	}
	return itemKindNames[k]
}

// IsScrollPart returns whether the kind is a part of a scrollbar.
func (k ItemKinds) IsScrollPart() bool {
	return k >= ItemScrollBg && k <= ItemScrollThumb
}

// IsHeader returns whether the kind is a header cell.
func (k ItemKinds) IsHeader() bool {
	return k == ItemRowHeader || k == ItemColHeader
}

// NoModel is the [Item.Model] of an item not bound to a data node.
const NoModel int64 = -1

// Item is a drawable sub-element of a widget. Content items are
// positioned relative to the scrolled origin of the content box;
// scrollbar parts, splitter bars and tabs are relative to the
// content box itself. Item indices are only valid within one pass.
type Item struct {
	Kind ItemKinds

	// Pos and Size are the local geometry.
	Pos  math32.Vector2
	Size math32.Vector2

	Text string

	// Model is the bound data node, or [NoModel].
	Model int64

	// Row and Col are the grid cell of a table item;
	// Row is the row index in other aggregates.
	Row, Col int

	// Level is the tree depth of a tree row.
	Level int

	// Axis is the axis of a scrollbar part.
	Axis math32.Dims

	// Child is the child the item refers to: the selected child of a tab,
	// or the sibling before a splitter bar.
	Child ID

	// Visible is cleared for items whose text could not be measured.
	Visible bool

	// Clipped is set when the item lies outside the view of its widget.
	Clipped bool

	Editable bool
	Selected bool
}

// IsDrawn returns whether the item is visible and in view.
func (it *Item) IsDrawn() bool {
	return it.Visible && !it.Clipped
}

// Rect returns the local rectangle of the item.
func (it *Item) Rect() math32.Box2 {
	return math32.B2Size(it.Pos, it.Size)
}

// ScrollAxis is the scroll state of one axis of a widget.
type ScrollAxis struct {
	// Value is the scroll offset, in [0, MaxValue()].
	Value float32

	// Max is the content extent.
	Max float32

	// ViewSize is the visible size of the content.
	ViewSize float32

	// AreaSize is the length of the track between the end buttons.
	AreaSize float32

	// Step is the amount moved by an end button or an arrow key.
	Step float32

	// Exp is the extent of the thumb along the track.
	Exp float32
}

// MaxValue returns the largest valid scroll value.
func (s *ScrollAxis) MaxValue() float32 {
	return math32.Max(0, s.Max-s.ViewSize)
}

// Clamp clamps the value to [0, MaxValue()].
func (s *ScrollAxis) Clamp() {
	s.Value = math32.Clamp(s.Value, 0, s.MaxValue())
}

// SetValue sets the clamped value and reports whether it changed.
func (s *ScrollAxis) SetValue(v float32) bool {
	old := s.Value
	s.Value = v
	s.Clamp()
	return s.Value != old
}

// ThumbPos returns the offset of the thumb within the track.
func (s *ScrollAxis) ThumbPos() float32 {
	mv := s.MaxValue()
	if mv <= 0 {
		return 0
	}
	return (s.AreaSize - s.Exp) * s.Value / mv
}

// TextAction is one canonical edit of the value of an item:
// the Length bytes at Offset are replaced by Replacement.
type TextAction struct {
	Item        int
	Offset      int
	Length      int
	Replacement string
}

// EditState is the caret and selection of an editable widget.
// Offsets are byte offsets into the value, on grapheme boundaries.
type EditState struct {
	Caret    int
	Trailing bool

	// Anchor is the other end of the selection; equal to Caret when empty.
	Anchor int

	// CaretOn is the blink phase.
	CaretOn bool

	// Typing is set while consecutive typed inserts coalesce.
	Typing bool
}

// Selection returns the ordered selection range.
func (e *EditState) Selection() (start, end int) {
	if e.Anchor < e.Caret {
		return e.Anchor, e.Caret
	}
	return e.Caret, e.Anchor
}

// HasSelection returns whether the selection is non-empty.
func (e *EditState) HasSelection() bool {
	return e.Anchor != e.Caret
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"fmt"

	"cogentcore.org/boxcore/render"
	"cogentcore.org/boxcore/widget"
)

// States are the states of the pointer interaction.
type States int32

const (
	Idle States = iota
	Hovering
	Pressing
	DraggingScrollbar
	DraggingSplitter

	// Editing is the resting state while an editable widget has focus.
	Editing
)

var stateNames = []string{"idle", "hovering", "pressing", "dragging-scrollbar", "dragging-splitter", "editing"}

func (s States) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("States(%d)", s)
	}
	return stateNames[s]
}

// Cursors are the pointer shapes.
type Cursors int32

const (
	CursorArrow Cursors = iota
	CursorPointer
	CursorIBeam

	// CursorResizeRow is shown over splitters between rows,
	// CursorResizeCol over splitters between columns.
	CursorResizeRow
	CursorResizeCol
)

var cursorNames = []string{"arrow", "pointer", "ibeam", "row-resize", "col-resize"}

func (c Cursors) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return fmt.Sprintf("Cursors(%d)", c)
	}
	return cursorNames[c]
}

// Effects are what the window has to redo after an event, as a bit mask.
type Effects int64

const (
	// NeedsLayout marks the pass stale: values, attributes or scroll
	// offsets changed.
	NeedsLayout Effects = 1 << iota

	// NeedsRender rebuilds the render list only.
	NeedsRender
)

// Has returns whether all of the effects in e are set.
func (fx Effects) Has(e Effects) bool { return fx&e == e }

// Target is a widget and an item within it. Item indices are only valid
// within one pass, so targets are revalidated before use.
type Target struct {
	Widget widget.ID

	// Item is the item index, or -1 for the widget box.
	Item int
	Kind widget.ItemKinds
}

// NoTarget is the target of nothing.
var NoTarget = Target{Widget: widget.NoID, Item: -1}

func (t Target) String() string {
	if t.Item < 0 {
		return fmt.Sprintf("%d", t.Widget)
	}
	return fmt.Sprintf("%d/%d:%v", t.Widget, t.Item, t.Kind)
}

// IsValid returns whether the target still refers to an item of
// the same kind in the store.
func (t Target) IsValid(s *widget.Store) bool {
	n := s.Node(t.Widget)
	if n == nil {
		return false
	}
	if t.Item < 0 {
		return true
	}
	return t.Item < len(n.Items) && n.Items[t.Item].Kind == t.Kind
}

// node returns the widget of the target, or nil.
func (t Target) node(s *widget.Store) *widget.Node {
	if !t.IsValid(s) {
		return nil
	}
	return s.Node(t.Widget)
}

// item returns the item of the target, or nil.
func (t Target) item(s *widget.Store) *widget.Item {
	n := t.node(s)
	if n == nil || t.Item < 0 {
		return nil
	}
	return &n.Items[t.Item]
}

func targetOf(e *render.Entry) Target {
	if e == nil {
		return NoTarget
	}
	if e.Kind != render.EntryItem {
		return Target{Widget: e.Widget, Item: -1}
	}
	return Target{Widget: e.Widget, Item: e.Item, Kind: e.ItemKind}
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/solver"
	"cogentcore.org/boxcore/styles"
)

// ID is the dense id of a widget in its [Store].
type ID int32

const (
	// Root is the id of the window widget at the root of every store.
	Root ID = 0

	// NoID refers to no widget.
	NoID ID = -1
)

// Edge variable indexes into [Node.Vars].
const (
	MinX = iota
	MinY
	MaxX
	MaxY
)

// Node is one widget. It is owned by its [Store]; the parent and
// children are referred to by id.
type Node struct {
	ID       ID
	Parent   ID
	Children []ID

	Type   Types
	Layout LayoutModes
	Attrs  Attributes
	Flags  Flags

	// Style is the resolved style snapshot of the last pass.
	Style styles.Style

	// Vars are the solver variables of the four box edges of the current pass.
	Vars [4]solver.Variable

	// Box is the solved border box in window coordinates.
	Box math32.Box2

	// Level is the nesting level in the solved tree; the root is 0.
	Level int

	// Items are the drawable sub-elements. The first NumContent are
	// content items; scrollbar parts and splitter bars follow.
	Items      []Item
	NumContent int

	// Bands are the header band thicknesses:
	// X is the width of the row header band, Y the height of the column header band.
	Bands math32.Vector2

	// Scroll is the scroll state per axis.
	Scroll [2]ScrollAxis

	// Actions is the linear undo stack of text actions,
	// and ActionPos the number of actions currently applied.
	Actions   []TextAction
	ActionPos int

	Edit EditState
}

func (n *Node) String() string {
	return fmt.Sprintf("%v#%d", n.Type, n.ID)
}

// Attr returns the attribute for the key and whether it is set.
func (n *Node) Attr(k Keys) (Attribute, bool) {
	return n.Attrs.ValueByKeyTry(k)
}

// AttrString returns the attribute as a string, empty if unset.
func (n *Node) AttrString(k Keys) string {
	a, _ := n.Attr(k)
	return a.AsString()
}

// AttrNumber returns the attribute as a number and whether it is a set number.
func (n *Node) AttrNumber(k Keys) (float64, bool) {
	a, ok := n.Attr(k)
	if !ok {
		return 0, false
	}
	return a.AsNumber()
}

// SelectedChild returns the index of the selected child of a tabs
// widget, clamped to the children.
func (n *Node) SelectedChild() int {
	f, _ := n.AttrNumber(KeySelected)
	if len(n.Children) == 0 {
		return 0
	}
	return min(max(int(f), 0), len(n.Children)-1)
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(k Keys, v Attribute) {
	n.Attrs.Add(k, v)
}

// Is returns whether the state is set.
func (n *Node) Is(s States) bool { return n.Flags.Has(s) }

// Value returns the value attribute.
func (n *Node) Value() string { return n.AttrString(KeyValue) }

// StyleType implements [styles.Element].
func (n *Node) StyleType() string { return n.Type.String() }

// StyleName implements [styles.Element].
func (n *Node) StyleName() string { return n.AttrString(KeyName) }

// InlineStyle implements [styles.Element].
func (n *Node) InlineStyle() string { return n.AttrString(KeyStyle) }

// ContentBox returns the solved content box.
func (n *Node) ContentBox() math32.Box2 {
	return n.Style.ContentBox(n.Box)
}

// ViewBox returns the content box minus the header bands and
// the space taken by the shown scrollbars: the clip rect of the body.
func (n *Node) ViewBox(barWidth float32) math32.Box2 {
	cb := n.ContentBox()
	cb.Min = cb.Min.Add(n.Bands)
	if n.Is(HasVScroll) {
		cb.Max.X -= barWidth
	}
	if n.Is(HasHScroll) {
		cb.Max.Y -= barWidth
	}
	cb.Max.SetMax(cb.Min)
	return cb
}

// Content returns the content items.
func (n *Node) Content() []Item {
	return n.Items[:n.NumContent]
}

// Overlays returns the scrollbar parts and splitter bars.
func (n *Node) Overlays() []Item {
	return n.Items[n.NumContent:]
}

// SetContent replaces the content items and drops all overlays.
func (n *Node) SetContent(items []Item) {
	n.Items = items
	n.NumContent = len(items)
}

// TruncateOverlays drops the scrollbar parts and splitter bars.
func (n *Node) TruncateOverlays() {
	n.Items = n.Items[:n.NumContent]
}

// EditItem returns the index of the editable text item, or -1.
func (n *Node) EditItem() int {
	for i := range n.Content() {
		if n.Items[i].Editable {
			return i
		}
	}
	return -1
}

// Extent returns the extent of the scrolled content items:
// the maximum of their far edges, extended by the header bands.
func (n *Node) Extent() math32.Vector2 {
	var ext math32.Vector2
	for i := range n.Content() {
		it := &n.Items[i]
		if it.Kind != ItemText || !it.Visible {
			continue
		}
		ext.SetMax(it.Pos.Add(it.Size))
	}
	return ext.Add(n.Bands)
}

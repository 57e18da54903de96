// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/boxcore/bitflag"
	"cogentcore.org/boxcore/math32"
)

// Types are the widget types.
type Types int32

const (
	TypeContainer Types = iota
	TypeWindow
	TypeSplitter
	TypeTabs
	TypeLineEdit
	TypeTextEdit
	TypeCombo
	TypeList
	TypeTree
	TypeTable
	TypeLabel
	TypeButton
)

var typeNames = []string{"container", "window", "splitter", "tabs", "line-edit", "text-edit",
	"combo", "list", "tree", "table", "label", "button"}

// String returns the type selector name of the type, such as "line-edit".
func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Types(%d)", t)
	}
	return typeNames[t]
}

// SetString sets the type from its name.
func (t *Types) SetString(s string) error {
	i := slices.Index(typeNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return fmt.Errorf("widget: unknown type %q", s)
	}
	*t = Types(i)
	return nil
}

// IsView returns whether the type is a scrolling multi-row view,
// which gets a minimum size of three scrollbar thicknesses.
func (t Types) IsView() bool {
	switch t {
	case TypeList, TypeTree, TypeTable, TypeTextEdit:
		return true
	}
	return false
}

// IsAggregate returns whether the type shows one item per data node.
func (t Types) IsAggregate() bool {
	switch t {
	case TypeList, TypeTree, TypeTable, TypeTabs, TypeCombo:
		return true
	}
	return false
}

// IsEditable returns whether the type edits its value as text.
func (t Types) IsEditable() bool {
	return t == TypeLineEdit || t == TypeTextEdit
}

// IsFocusable returns whether the type takes keyboard focus.
func (t Types) IsFocusable() bool {
	return t.IsEditable() || t.IsView() || t == TypeCombo || t == TypeButton
}

// LayoutModes are the ways a widget lays out its children.
type LayoutModes int32

const (
	// LayoutNone places children at their x and y attributes.
	LayoutNone LayoutModes = iota

	// LayoutVBox stacks children top to bottom.
	LayoutVBox

	// LayoutHBox stacks children left to right.
	LayoutHBox

	// LayoutTabs shows the selected child below a tab strip.
	LayoutTabs
)

var layoutNames = []string{"none", "vbox", "hbox", "tabs"}

func (l LayoutModes) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("LayoutModes(%d)", l)
	}
	return layoutNames[l]
}

// SetString sets the layout mode from its name.
func (l *LayoutModes) SetString(s string) error {
	i := slices.Index(layoutNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return fmt.Errorf("widget: unknown layout mode %q", s)
	}
	*l = LayoutModes(i)
	return nil
}

// Dim returns the stacking axis of a box layout: Y for vbox, X otherwise.
func (l LayoutModes) Dim() math32.Dims {
	if l == LayoutVBox || l == LayoutTabs {
		return math32.Y
	}
	return math32.X
}

// States are the state bits of a widget.
type States int32

const (
	// Enabled widgets take input.
	Enabled States = iota

	// Visible widgets resolved to visibility visible and take part in layout.
	Visible

	// HasHScroll is set while the horizontal scrollbar is shown.
	HasHScroll

	// HasVScroll is set while the vertical scrollbar is shown.
	HasVScroll

	// HasRowHeader is set when the items include a row header band.
	HasRowHeader

	// HasColHeader is set when the items include a column header band.
	HasColHeader

	// Hidden is set on the unselected children of a tabs widget.
	Hidden

	// Focused is set on the widget that receives keyboard input.
	Focused
)

// Flags is a set of [States].
type Flags int64

// Has returns whether the state is set.
func (f Flags) Has(s States) bool { return bitflag.Has(int64(f), s) }

// Set sets or clears the given states.
func (f *Flags) Set(on bool, s ...States) { bitflag.SetState((*int64)(f), on, s...) }

// HasScroll returns the scrollbar state bit for the given axis.
func HasScroll(d math32.Dims) States {
	if d == math32.X {
		return HasHScroll
	}
	return HasVScroll
}

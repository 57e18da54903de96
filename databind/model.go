// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package databind projects an external hierarchical data model into
// the items of view widgets, through a filter and a total order.
package databind

import (
	"cogentcore.org/boxcore/bitflag"
)

// NodeID is the id of a data node within its [Model].
type NodeID int64

// NoNode refers to no data node.
const NoNode NodeID = -1

// States are the state bits of a data node.
type States int32

const (
	// Collapsed tree nodes do not show their children.
	Collapsed States = iota

	// Selected nodes are drawn highlighted; a combo shows its selected row.
	Selected

	// Disabled nodes are drawn but take no input.
	Disabled
)

// Flags is a set of [States].
type Flags int64

// Has returns whether the state is set.
func (f Flags) Has(s States) bool { return bitflag.Has(int64(f), s) }

// Set sets or clears the given states.
func (f *Flags) Set(on bool, s ...States) { bitflag.SetState((*int64)(f), on, s...) }

// Node is a snapshot of one data node.
type Node struct {
	ID     NodeID
	Parent NodeID

	// Data is the displayed text.
	Data string

	// RowHeader and ColHeader key the header cells of a table item.
	RowHeader string
	ColHeader string

	Flags    Flags
	Children []NodeID
}

// Model is a hierarchical data model.
type Model interface {

	// Root returns the root node, whose children are the top-level rows.
	Root() NodeID

	// Node returns a snapshot of the node, or an error wrapping
	// widget.ErrInvalidReference for an unknown id.
	Node(id NodeID) (Node, error)

	// Filter returns whether the node is shown.
	Filter(n Node) bool

	// Compare orders siblings; ties keep the model order.
	Compare(a, b Node) int
}

// Observable is a [Model] that notifies observers of mutations.
type Observable interface {
	Observe(fn func()) (cancel func())
}

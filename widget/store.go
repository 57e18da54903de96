// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widget is the widget tree store: an arena of widget nodes
// keyed by dense id, with parent and child links stored as ids,
// typed attributes, and the per-pass items and scroll state
// of each widget.
package widget

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// Store owns the widgets of one window. It is not safe for concurrent
// use, except for [Store.Reserve].
type Store struct {
	nodes []*Node
	next  atomic.Int32
	count int
}

// NewStore returns a new store with a root window widget.
func NewStore() *Store {
	s := &Store{}
	s.next.Store(1)
	root := &Node{ID: Root, Parent: NoID, Type: TypeWindow, Layout: LayoutVBox}
	root.Flags.Set(true, Enabled)
	s.nodes = []*Node{root}
	s.count = 1
	return s
}

// Reserve returns a fresh id for a later [Store.InsertAt]. It is safe
// to call from any goroutine, so that a handle can return the id of a
// widget whose insertion is still queued. Ids are never reused.
func (s *Store) Reserve() ID {
	return ID(s.next.Add(1) - 1)
}

// Node returns the widget with the given id, or nil.
func (s *Store) Node(id ID) *Node {
	if id < 0 || int(id) >= len(s.nodes) {
		return nil
	}
	return s.nodes[id]
}

// Lookup returns the widget with the given id, or an [ErrInvalidReference] error.
func (s *Store) Lookup(id ID) (*Node, error) {
	n := s.Node(id)
	if n == nil {
		return nil, fmt.Errorf("widget %d: %w", id, ErrInvalidReference)
	}
	return n, nil
}

// Root returns the root window widget.
func (s *Store) Root() *Node {
	return s.nodes[Root]
}

// Len returns the number of widgets.
func (s *Store) Len() int {
	return s.count
}

// Insert inserts a new widget as a child of parent at offset, which is
// clamped to the number of children; a negative offset appends.
func (s *Store) Insert(parent ID, offset int, typ Types, layout LayoutModes) (ID, error) {
	if s.Node(parent) == nil {
		return NoID, fmt.Errorf("insert into widget %d: %w", parent, ErrInvalidReference)
	}
	id := s.Reserve()
	return id, s.InsertAt(id, parent, offset, typ, layout)
}

// InsertAt is [Store.Insert] with an id from [Store.Reserve].
func (s *Store) InsertAt(id, parent ID, offset int, typ Types, layout LayoutModes) error {
	p := s.Node(parent)
	if p == nil {
		return fmt.Errorf("insert into widget %d: %w", parent, ErrInvalidReference)
	}
	if id <= Root || s.Node(id) != nil {
		return fmt.Errorf("insert widget %d: id in use: %w", id, ErrInvalidReference)
	}
	for len(s.nodes) <= int(id) {
		s.nodes = append(s.nodes, nil)
	}
	n := &Node{ID: id, Parent: parent, Type: typ, Layout: layout}
	n.Flags.Set(true, Enabled)
	s.nodes[id] = n
	s.count++
	if offset < 0 || offset > len(p.Children) {
		offset = len(p.Children)
	}
	p.Children = slices.Insert(p.Children, offset, id)
	return nil
}

// Modify sets an attribute of a widget. Setting a value resets the
// undo stack of an editable widget, since its actions no longer apply.
func (s *Store) Modify(id ID, key Keys, value Attribute) error {
	n := s.Node(id)
	if n == nil {
		return fmt.Errorf("modify widget %d: %w", id, ErrInvalidReference)
	}
	n.SetAttr(key, value)
	switch key {
	case KeyValue:
		n.Actions, n.ActionPos = nil, 0
		l := len(n.Value())
		n.Edit.Caret, n.Edit.Anchor, n.Edit.Typing = l, l, false
	case KeyEnabled:
		n.Flags.Set(value.AsBool(), Enabled)
	}
	return nil
}

// Erase removes a widget and its subtree, detaching it from its parent.
// The root cannot be erased.
func (s *Store) Erase(id ID) error {
	if id == Root {
		return fmt.Errorf("erase root: %w", ErrInvalidReference)
	}
	n := s.Node(id)
	if n == nil {
		return fmt.Errorf("erase widget %d: %w", id, ErrInvalidReference)
	}
	if p := s.Node(n.Parent); p != nil {
		p.Children = slices.DeleteFunc(p.Children, func(c ID) bool { return c == id })
	}
	s.erase(n)
	return nil
}

func (s *Store) erase(n *Node) {
	for _, c := range n.Children {
		if cn := s.Node(c); cn != nil {
			s.erase(cn)
		}
	}
	s.nodes[n.ID] = nil
	s.count--
}

// Walk calls fn on the subtree at id in pre-order.
// Returning false from fn skips the children of that widget.
func (s *Store) Walk(id ID, fn func(n *Node) bool) {
	n := s.Node(id)
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		s.Walk(c, fn)
	}
}

// IsAncestor returns whether anc is id or one of its ancestors.
func (s *Store) IsAncestor(anc, id ID) bool {
	for n := s.Node(id); n != nil; n = s.Node(n.Parent) {
		if n.ID == anc {
			return true
		}
	}
	return false
}

// Index returns the index of id among the children of its parent, or -1.
func (s *Store) Index(id ID) int {
	n := s.Node(id)
	if n == nil {
		return -1
	}
	p := s.Node(n.Parent)
	if p == nil {
		return -1
	}
	return slices.Index(p.Children, id)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package databind

import (
	"fmt"
	"slices"
	"sync"

	"cogentcore.org/boxcore/widget"
)

// Tree is an in-memory, observable [Model], safe for concurrent use.
// Mutations notify the observers after the lock is released.
type Tree struct {
	// FilterFunc, if set, filters the shown nodes.
	FilterFunc func(n Node) bool

	// CompareFunc, if set, orders siblings.
	CompareFunc func(a, b Node) int

	mu        sync.RWMutex
	nodes     map[NodeID]*Node
	next      NodeID
	observers map[int]func()
	nobs      int
}

// NewTree returns a new tree with an empty root.
func NewTree() *Tree {
	t := &Tree{nodes: make(map[NodeID]*Node), observers: make(map[int]func())}
	t.nodes[0] = &Node{ID: 0, Parent: NoNode}
	t.next = 1
	return t
}

func (t *Tree) Root() NodeID { return 0 }

func (t *Tree) Node(id NodeID) (Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("data node %d: %w", id, widget.ErrInvalidReference)
	}
	cp := *n
	cp.Children = slices.Clone(n.Children)
	return cp, nil
}

func (t *Tree) Filter(n Node) bool {
	if t.FilterFunc == nil {
		return true
	}
	return t.FilterFunc(n)
}

func (t *Tree) Compare(a, b Node) int {
	if t.CompareFunc == nil {
		return 0
	}
	return t.CompareFunc(a, b)
}

// Observe implements [Observable].
func (t *Tree) Observe(fn func()) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := t.nobs
	t.nobs++
	t.observers[key] = fn
	return func() {
		t.mu.Lock()
		delete(t.observers, key)
		t.mu.Unlock()
	}
}

// mutate runs fn under the write lock and then notifies the observers
// if fn succeeded.
func (t *Tree) mutate(fn func() error) error {
	t.mu.Lock()
	err := fn()
	var obs []func()
	if err == nil {
		for _, o := range t.observers {
			obs = append(obs, o)
		}
	}
	t.mu.Unlock()
	for _, o := range obs {
		o()
	}
	return err
}

func (t *Tree) lookup(id NodeID) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("data node %d: %w", id, widget.ErrInvalidReference)
	}
	return n, nil
}

// Add adds a node with the given data as the last child of parent.
func (t *Tree) Add(parent NodeID, data string) (NodeID, error) {
	id := NoNode
	err := t.mutate(func() error {
		p, err := t.lookup(parent)
		if err != nil {
			return err
		}
		id = t.next
		t.next++
		t.nodes[id] = &Node{ID: id, Parent: parent, Data: data}
		p.Children = append(p.Children, id)
		return nil
	})
	return id, err
}

// SetData sets the displayed text of a node.
func (t *Tree) SetData(id NodeID, data string) error {
	return t.mutate(func() error {
		n, err := t.lookup(id)
		if err != nil {
			return err
		}
		n.Data = data
		return nil
	})
}

// SetHeaders sets the row and column header keys of a node.
func (t *Tree) SetHeaders(id NodeID, row, col string) error {
	return t.mutate(func() error {
		n, err := t.lookup(id)
		if err != nil {
			return err
		}
		n.RowHeader, n.ColHeader = row, col
		return nil
	})
}

// SetState sets or clears a state of a node.
func (t *Tree) SetState(id NodeID, on bool, s States) error {
	return t.mutate(func() error {
		n, err := t.lookup(id)
		if err != nil {
			return err
		}
		n.Flags.Set(on, s)
		return nil
	})
}

// Remove removes a node and its subtree.
func (t *Tree) Remove(id NodeID) error {
	return t.mutate(func() error {
		if id == t.Root() {
			return fmt.Errorf("remove root data node: %w", widget.ErrInvalidReference)
		}
		n, err := t.lookup(id)
		if err != nil {
			return err
		}
		if p, ok := t.nodes[n.Parent]; ok {
			p.Children = slices.DeleteFunc(p.Children, func(c NodeID) bool { return c == id })
		}
		t.remove(n)
		return nil
	})
}

func (t *Tree) remove(n *Node) {
	for _, c := range n.Children {
		if cn, ok := t.nodes[c]; ok {
			t.remove(cn)
		}
	}
	delete(t.nodes, n.ID)
}

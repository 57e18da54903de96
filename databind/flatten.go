// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package databind

import (
	"fmt"
	"slices"

	"cogentcore.org/boxcore/widget"
)

// Row is one shown data node in display order.
type Row struct {
	Node  Node
	Level int
}

// Flatten returns the shown nodes of the model in display order:
// the children of each node accepted by Filter, stable sorted by
// Compare. If recurse is set, the children of each row follow it
// depth-first, except under a [Collapsed] node.
//
// A child that is unknown, or that does not name the node as its
// parent, is a [widget.ErrCorruptedState] error.
func Flatten(m Model, recurse bool) ([]Row, error) {
	root, err := m.Node(m.Root())
	if err != nil {
		return nil, err
	}
	var rows []Row
	err = flatten(m, root, 0, recurse, &rows)
	return rows, err
}

func flatten(m Model, n Node, level int, recurse bool, rows *[]Row) error {
	kids, err := Children(m, n)
	if err != nil {
		return err
	}
	for _, c := range kids {
		*rows = append(*rows, Row{Node: c, Level: level})
		if recurse && !c.Flags.Has(Collapsed) {
			if err := flatten(m, c, level+1, recurse, rows); err != nil {
				return err
			}
		}
	}
	return nil
}

// Children returns the shown children of n, filtered and ordered.
func Children(m Model, n Node) ([]Node, error) {
	kids := make([]Node, 0, len(n.Children))
	for _, id := range n.Children {
		c, err := m.Node(id)
		if err != nil {
			return nil, fmt.Errorf("child %d of data node %d: %w", id, n.ID, widget.ErrCorruptedState)
		}
		if c.Parent != n.ID {
			return nil, fmt.Errorf("data node %d is not a child of %d: %w", id, n.ID, widget.ErrCorruptedState)
		}
		if m.Filter(c) {
			kids = append(kids, c)
		}
	}
	slices.SortStableFunc(kids, m.Compare)
	return kids, nil
}

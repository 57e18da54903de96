// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"fmt"

	"cogentcore.org/boxcore/base/ordmap"
	"cogentcore.org/boxcore/databind"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/widget"
)

// band is one row or column of a table grid.
type band struct {
	header string
	size   float32
	offset float32
}

// table lays out one cell per shown data node on a grid keyed by the
// row and column header of the node. Headers are collected in a second
// pass, one cell per distinct key; the row header band is as wide as
// its widest header and the column header band as tall as its tallest.
// Cells are positioned relative to the body, after the bands.
func (cx *Context) table(n *widget.Node) ([]widget.Item, error) {
	m := cx.model(n)
	if m == nil {
		return nil, nil
	}
	rows, err := databind.Flatten(m, false)
	if err != nil {
		return nil, err
	}
	rowBands := ordmap.New[string, *band]()
	colBands := ordmap.New[string, *band]()
	key := func(om *ordmap.Map[string, *band], k, header string) int {
		if i := om.IndexByKey(k); i >= 0 {
			return i
		}
		om.Add(k, &band{header: header})
		return om.Len() - 1
	}

	items := make([]widget.Item, 0, len(rows))
	for _, r := range rows {
		it, err := cx.rowItem(n, r, 0)
		if err != nil {
			return nil, err
		}
		// rows without a header are rows of their own
		rk := r.Node.RowHeader
		if rk == "" {
			rk = fmt.Sprintf("#%d", r.Node.ID)
		}
		it.Row = key(rowBands, rk, r.Node.RowHeader)
		it.Col = key(colBands, r.Node.ColHeader, r.Node.ColHeader)
		rb, cb := rowBands.Order[it.Row].Value, colBands.Order[it.Col].Value
		rb.size = math32.Max(rb.size, it.Size.Y)
		cb.size = math32.Max(cb.size, it.Size.X)
		items = append(items, it)
	}

	// headers, deduplicated by key
	var bands math32.Vector2
	var headers []widget.Item
	for i, kv := range rowBands.Order {
		if kv.Value.header == "" {
			continue
		}
		it, err := cx.measure(n, kv.Value.header)
		if err != nil {
			return nil, err
		}
		it.Kind = widget.ItemRowHeader
		it.Row = i
		kv.Value.size = math32.Max(kv.Value.size, it.Size.Y)
		bands.X = math32.Max(bands.X, it.Size.X)
		headers = append(headers, it)
	}
	for i, kv := range colBands.Order {
		if kv.Value.header == "" {
			continue
		}
		it, err := cx.measure(n, kv.Value.header)
		if err != nil {
			return nil, err
		}
		it.Kind = widget.ItemColHeader
		it.Col = i
		kv.Value.size = math32.Max(kv.Value.size, it.Size.X)
		bands.Y = math32.Max(bands.Y, it.Size.Y)
		headers = append(headers, it)
	}

	var off float32
	for _, kv := range rowBands.Order {
		kv.Value.offset = off
		off += kv.Value.size
	}
	off = 0
	for _, kv := range colBands.Order {
		kv.Value.offset = off
		off += kv.Value.size
	}
	for i := range items {
		it := &items[i]
		it.Pos = math32.Vec2(colBands.Order[it.Col].Value.offset, rowBands.Order[it.Row].Value.offset)
	}
	for i := range headers {
		it := &headers[i]
		if it.Kind == widget.ItemRowHeader {
			rb := rowBands.Order[it.Row].Value
			it.Pos = math32.Vec2(0, rb.offset)
			it.Size = math32.Vec2(bands.X, rb.size)
		} else {
			cb := colBands.Order[it.Col].Value
			it.Pos = math32.Vec2(cb.offset, 0)
			it.Size = math32.Vec2(cb.size, bands.Y)
		}
	}
	n.Bands = bands
	n.Flags.Set(bands.X > 0, widget.HasRowHeader)
	n.Flags.Set(bands.Y > 0, widget.HasColHeader)
	return append(items, headers...), nil
}

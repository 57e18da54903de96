// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compose expands widgets into their content items: the text
// of text-bearing widgets, one row per shown data node of aggregate
// widgets, the header cells and bands of tables, and the tab strip.
package compose

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/boxcore/databind"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/settings"
	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/widget"
)

// Context has the services used to compose items.
type Context struct {
	Text     text.Service
	Binder   *databind.Binder
	Settings *settings.Settings
}

// Font returns the text font of the widget.
func Font(n *widget.Node) text.Font {
	return text.Font{Size: n.Style.FontSize, LineHeight: n.Style.LineHeight}
}

// measure returns a visible item of the measured size of s,
// or a zero-size invisible one if s is unmeasurable.
func (cx *Context) measure(n *widget.Node, s string) (widget.Item, error) {
	it := widget.Item{Kind: widget.ItemText, Text: s, Model: widget.NoModel}
	m, err := cx.Text.Measure(s, Font(n))
	if errors.Is(err, text.ErrUnmeasurable) {
		slog.Debug("compose: unmeasurable text", "widget", n, "text", s)
		return it, nil
	}
	if err != nil {
		return it, err
	}
	it.Size = math32.Vec2(m.Width, m.Height)
	it.Visible = true
	return it, nil
}

// Compose rebuilds the content items of the widget, dropping
// its overlays. Text service failures other than unmeasurable
// text are returned unchanged.
func Compose(s *widget.Store, n *widget.Node, cx *Context) error {
	n.Bands = math32.Vector2{}
	n.Flags.Set(false, widget.HasRowHeader, widget.HasColHeader)
	var items []widget.Item
	var err error
	switch n.Type {
	case widget.TypeLabel, widget.TypeButton, widget.TypeLineEdit, widget.TypeTextEdit:
		var it widget.Item
		it, err = cx.measure(n, n.Value())
		it.Editable = n.Type.IsEditable()
		items = []widget.Item{it}
	case widget.TypeList:
		items, err = cx.rows(n, false)
	case widget.TypeTree:
		items, err = cx.rows(n, true)
	case widget.TypeCombo:
		items, err = cx.combo(n)
	case widget.TypeTable:
		items, err = cx.table(n)
	case widget.TypeTabs:
		items, err = cx.tabs(s, n)
	}
	if err != nil {
		return fmt.Errorf("composing %v: %w", n, err)
	}
	n.SetContent(items)
	return nil
}

func (cx *Context) model(n *widget.Node) databind.Model {
	if cx.Binder == nil {
		return nil
	}
	return cx.Binder.Model(n.ID)
}

func (cx *Context) rowItem(n *widget.Node, row databind.Row, i int) (widget.Item, error) {
	it, err := cx.measure(n, row.Node.Data)
	if err != nil {
		return it, err
	}
	it.Model = int64(row.Node.ID)
	it.Row = i
	it.Level = row.Level
	it.Selected = row.Node.Flags.Has(databind.Selected)
	return it, nil
}

// rows stacks one item per shown data node, indenting tree rows by level.
func (cx *Context) rows(n *widget.Node, tree bool) ([]widget.Item, error) {
	m := cx.model(n)
	if m == nil {
		return nil, nil
	}
	rows, err := databind.Flatten(m, tree)
	if err != nil {
		return nil, err
	}
	items := make([]widget.Item, 0, len(rows))
	var y float32
	for i, r := range rows {
		it, err := cx.rowItem(n, r, i)
		if err != nil {
			return nil, err
		}
		it.Pos = math32.Vec2(float32(r.Level)*cx.Settings.Indent, y)
		y += it.Size.Y
		items = append(items, it)
	}
	return items, nil
}

// combo shows only the selected row: the first row with the
// Selected state, else the row at the selected attribute.
func (cx *Context) combo(n *widget.Node) ([]widget.Item, error) {
	m := cx.model(n)
	if m == nil {
		return nil, nil
	}
	rows, err := databind.Flatten(m, false)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	sel := -1
	for i, r := range rows {
		if r.Node.Flags.Has(databind.Selected) {
			sel = i
			break
		}
	}
	if sel < 0 {
		f, _ := n.AttrNumber(widget.KeySelected)
		sel = min(max(int(f), 0), len(rows)-1)
	}
	it, err := cx.rowItem(n, rows[sel], sel)
	if err != nil {
		return nil, err
	}
	it.Selected = true
	return []widget.Item{it}, nil
}

// tabs lays out the tab strip: one tab per child, labeled by the bound
// model rows if any, else by the label attribute of the child.
func (cx *Context) tabs(s *widget.Store, n *widget.Node) ([]widget.Item, error) {
	labels := make([]string, len(n.Children))
	for i, c := range n.Children {
		if cn := s.Node(c); cn != nil {
			labels[i] = cn.AttrString(widget.KeyLabel)
		}
	}
	var models []int64
	if m := cx.model(n); m != nil {
		rows, err := databind.Flatten(m, false)
		if err != nil {
			return nil, err
		}
		for i, r := range rows {
			if i < len(labels) {
				labels[i] = r.Node.Data
				models = append(models, int64(r.Node.ID))
			}
		}
	}
	sel := n.SelectedChild()
	pad := n.Style.FontSize / 2
	h := cx.Settings.TabStripHeight
	var x float32
	items := make([]widget.Item, 0, len(labels))
	for i, lb := range labels {
		it, err := cx.measure(n, lb)
		if err != nil {
			return nil, err
		}
		it.Kind = widget.ItemTab
		it.Child = n.Children[i]
		if i < len(models) {
			it.Model = models[i]
		}
		it.Row = i
		it.Selected = i == sel
		it.Visible = true
		it.Pos = math32.Vec2(x, 0)
		it.Size = math32.Vec2(it.Size.X+2*pad, h)
		x += it.Size.X
		items = append(items, it)
	}
	return items, nil
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boxlayout turns the widget tree into linear constraints on
// the four box edges of every widget in layout, solves them, and reads
// the solved boxes back.
//
// Constraints come in three bands: dynamic (proportional distribution by
// weight), user (explicit sizes and positions) and system (containment,
// stacking and minimum sizes). Each band is scaled by a decay per nesting
// level so that the constraints of a container win over those of its
// descendants.
package boxlayout

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/settings"
	"cogentcore.org/boxcore/solver"
	"cogentcore.org/boxcore/widget"
)

// PassStates are the states of a layout pass.
type PassStates int32

const (
	// Stale passes must be solved before the boxes are used.
	Stale PassStates = iota

	// Solving is the state during [Pass.Layout].
	Solving

	// Solved passes have current boxes.
	Solved
)

func (ps PassStates) String() string {
	switch ps {
	case Solving:
		return "solving"
	case Solved:
		return "solved"
	}
	return "stale"
}

// Pass is the layout pass of one window, with its own solver.
type Pass struct {
	State    PassStates
	Solver   solver.Solver
	Settings *settings.Settings

	// nodes are the widgets in layout, in pre-order.
	nodes []*widget.Node
	store *widget.Store
}

// New returns a new stale pass using the given solver.
func New(sv solver.Solver, st *settings.Settings) *Pass {
	return &Pass{Solver: sv, Settings: st}
}

// Invalidate marks the pass stale, after a resize, a tree edit
// or a scroll topology change.
func (p *Pass) Invalidate() {
	p.State = Stale
}

// Nodes returns the widgets of the last solved pass, in pre-order.
func (p *Pass) Nodes() []*widget.Node {
	return p.nodes
}

// InLayout returns whether the widget takes part in layout:
// it is visible and not a hidden tab.
func InLayout(n *widget.Node) bool {
	return n != nil && n.Is(widget.Visible) && !n.Is(widget.Hidden)
}

// Layout solves the boxes of all widgets in layout, with the root pinned
// to the window rectangle of the given size. On failure, such as
// [solver.ErrOutOfMemory], the pass is aborted and left stale, and the
// boxes of the previous pass are kept.
func (p *Pass) Layout(s *widget.Store, window math32.Vector2) error {
	p.State = Solving
	p.store = s
	if err := p.layout(s, window); err != nil {
		p.State = Stale
		if errors.Is(err, solver.ErrOutOfMemory) {
			slog.Warn("boxlayout: pass aborted", "err", err)
		}
		return err
	}
	p.State = Solved
	return nil
}

func (p *Pass) layout(s *widget.Store, window math32.Vector2) error {
	p.Solver.Reset()
	p.nodes = p.nodes[:0]
	root := s.Root()
	if err := p.allocate(root, 0); err != nil {
		return err
	}
	pin := [4]float32{0, 0, window.X, window.Y}
	for i, v := range root.Vars {
		if err := p.Solver.Suggest(v, float64(pin[i]), solver.Required); err != nil {
			return err
		}
	}
	for _, n := range p.nodes {
		if err := p.emit(n); err != nil {
			return fmt.Errorf("layout of %v: %w", n, err)
		}
	}
	if err := p.Solver.Solve(); err != nil {
		return err
	}
	for _, n := range p.nodes {
		b := math32.B2(p.Solver.Value(n.Vars[widget.MinX]), p.Solver.Value(n.Vars[widget.MinY]),
			p.Solver.Value(n.Vars[widget.MaxX]), p.Solver.Value(n.Vars[widget.MaxY]))
		b.Max.SetMax(b.Min)
		if pn := s.Node(n.Parent); pn != nil && !n.Style.IsPositioned() {
			b = contain(b, pn.ContentBox())
		}
		n.Box = b
		n.TruncateOverlays()
	}
	for _, n := range p.nodes {
		if n.Type == widget.TypeSplitter {
			p.splitterBars(n)
		}
	}
	return nil
}

// allocate allocates the edge variables of n and its subtree in layout,
// hiding the unselected children of tabs.
func (p *Pass) allocate(n *widget.Node, level int) error {
	n.Level = level
	for i := range n.Vars {
		v, err := p.Solver.NewVariable()
		if err != nil {
			return err
		}
		n.Vars[i] = v
	}
	p.nodes = append(p.nodes, n)
	sel := -1
	if mode(n) == widget.LayoutTabs {
		sel = n.SelectedChild()
	}
	for i, c := range n.Children {
		cn := p.store.Node(c)
		if cn == nil {
			return fmt.Errorf("child %d of %v: %w", c, n, widget.ErrCorruptedState)
		}
		cn.Flags.Set(sel >= 0 && i != sel, widget.Hidden)
		if !InLayout(cn) {
			continue
		}
		if err := p.allocate(cn, level+1); err != nil {
			return err
		}
	}
	return nil
}

// mode returns the layout mode of n; tabs widgets always lay out as tabs.
func mode(n *widget.Node) widget.LayoutModes {
	if n.Type == widget.TypeTabs {
		return widget.LayoutTabs
	}
	return n.Layout
}

// priority returns the band scaled for the nesting level.
func (p *Pass) priority(band float64, level int) float64 {
	return band * math.Pow(p.Settings.PriorityDecay, float64(level))
}

// splitterBars appends a bar overlay in the gap after every child
// but the last, relative to the content box.
func (p *Pass) splitterBars(n *widget.Node) {
	d := n.Layout.Dim()
	o := d.Other()
	cb := n.ContentBox()
	kids := p.flow(n)
	for i := 0; i+1 < len(kids); i++ {
		c := kids[i]
		it := widget.Item{Kind: widget.ItemSplitter, Child: c.ID, Axis: d, Row: i, Visible: true, Model: widget.NoModel}
		it.Pos.SetDim(d, c.Box.DimMax(d)+c.Style.Margin.End(d)-cb.DimMin(d))
		it.Size.SetDim(d, p.gap(n))
		it.Size.SetDim(o, cb.DimSize(o))
		n.Items = append(n.Items, it)
	}
}

// contain clamps b into the container box c, collapsing it
// onto the edge of c where it lies outside.
func contain(b, c math32.Box2) math32.Box2 {
	b.Min.Clamp(c.Min, c.Max)
	b.Max.Clamp(b.Min, c.Max)
	return b
}

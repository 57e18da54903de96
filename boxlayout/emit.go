// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boxlayout

import (
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/solver"
	"cogentcore.org/boxcore/styles"
	"cogentcore.org/boxcore/styles/sides"
	"cogentcore.org/boxcore/widget"
)

func minVar(n *widget.Node, d math32.Dims) solver.Variable { return n.Vars[widget.MinX+int(d)] }
func maxVar(n *widget.Node, d math32.Dims) solver.Variable { return n.Vars[widget.MaxX+int(d)] }

func term(v solver.Variable, coeff float64) solver.Term { return solver.Term{Var: v, Coeff: coeff} }

// emitter adds the constraints of one container at its level.
type emitter struct {
	*Pass
	n *widget.Node
}

// add adds sum(terms) + k  rel  0 at the given band.
func (e *emitter) add(band float64, rel solver.Relations, k float32, terms ...solver.Term) error {
	c, err := e.Solver.NewConstraint(e.priority(band, e.n.Level))
	if err != nil {
		return err
	}
	for _, t := range terms {
		c.AddTerm(t.Var, t.Coeff)
	}
	c.SetRelation(rel).AddConstant(float64(k))
	return e.Solver.Add(c)
}

// size adds max - min - size = 0 along d.
func (e *emitter) size(band float64, c *widget.Node, d math32.Dims, size float32) error {
	return e.add(band, solver.EQ, -size, term(maxVar(c, d), 1), term(minVar(c, d), -1))
}

// flow returns the children in layout that are not positioned.
func (p *Pass) flow(n *widget.Node) []*widget.Node {
	var kids []*widget.Node
	for _, c := range n.Children {
		cn := p.store.Node(c)
		if InLayout(cn) && !cn.Style.IsPositioned() {
			kids = append(kids, cn)
		}
	}
	return kids
}

// gap returns the gap between children of a box layout.
func (p *Pass) gap(n *widget.Node) float32 {
	if n.Type == widget.TypeSplitter {
		return p.Settings.SplitterWidth
	}
	if g, ok := n.AttrNumber(widget.KeyGap); ok {
		return float32(g)
	}
	return p.Settings.Gap
}

// minSize returns the type-dependent minimum size along the stacking axis.
func (p *Pass) minSize(n *widget.Node) float32 {
	switch {
	case n.Type.IsView():
		return 3 * p.Settings.ScrollBarWidth
	case n.Type == widget.TypeLineEdit:
		return p.Settings.ScrollStep
	}
	return 0
}

// explicit returns the explicit width or height of n.
func explicit(n *widget.Node, d math32.Dims) (float32, bool) {
	k := widget.KeyWidth
	if d == math32.Y {
		k = widget.KeyHeight
	}
	v, ok := n.AttrNumber(k)
	if !ok || v < 0 {
		return 0, false
	}
	return float32(v), true
}

// intrinsic returns the content size of n along d, plus its own
// border and padding. Containers measure their flow children.
func (p *Pass) intrinsic(n *widget.Node, d math32.Dims) float32 {
	sz := n.Extent().Dim(d)
	if n.Type == widget.TypeContainer || n.Type == widget.TypeSplitter || n.Type == widget.TypeWindow {
		for _, c := range p.flow(n) {
			cs := p.intrinsic(c, d) + c.Style.Margin.Size().Dim(d)
			if n.Layout.Dim() == d && n.Layout != widget.LayoutNone {
				sz += cs
			} else {
				sz = math32.Max(sz, cs)
			}
		}
	}
	return sz + n.Style.Insets().Size().Dim(d)
}

// Weights returns the normalized weights of the flow children along d:
// intrinsic size plus margin, normalized to sum to one, then with
// explicit weight attributes replacing the normalized values and
// normalized again.
func (p *Pass) Weights(kids []*widget.Node, d math32.Dims) []float64 {
	w := make([]float64, len(kids))
	var sum float64
	for i, c := range kids {
		w[i] = float64(p.intrinsic(c, d) + c.Style.Margin.Size().Dim(d))
		sum += w[i]
	}
	for i := range w {
		if sum > 0 {
			w[i] /= sum
		} else {
			w[i] = 1 / float64(len(w))
		}
	}
	key := widget.KeyWeightX
	if d == math32.Y {
		key = widget.KeyWeightY
	}
	sum = 0
	for i, c := range kids {
		if ew, ok := c.AttrNumber(key); ok && ew >= 0 {
			w[i] = ew
		} else if ew, ok := c.AttrNumber(widget.KeyWeight); ok && ew >= 0 {
			w[i] = ew
		}
		sum += w[i]
	}
	if sum > 0 {
		for i := range w {
			w[i] /= sum
		}
	}
	return w
}

// emit adds the constraints placing the children of n.
func (p *Pass) emit(n *widget.Node) error {
	e := &emitter{Pass: p, n: n}
	var err error
	switch mode(n) {
	case widget.LayoutVBox:
		err = e.box(math32.Y)
	case widget.LayoutHBox:
		err = e.box(math32.X)
	case widget.LayoutTabs:
		err = e.tabs()
	default:
		err = e.none()
	}
	if err != nil {
		return err
	}
	for _, c := range n.Children {
		cn := p.store.Node(c)
		if InLayout(cn) && cn.Style.IsPositioned() {
			if err := e.positioned(cn); err != nil {
				return err
			}
		}
	}
	return nil
}

// box stacks the flow children along d and fills the other axis.
func (e *emitter) box(d math32.Dims) error {
	n := e.n
	kids := e.flow(n)
	if len(kids) == 0 {
		return nil
	}
	o := d.Other()
	in := n.Style.Insets()
	gap := e.gap(n)
	w := e.Weights(kids, d)

	// space taken by spacing, not distributed by weight
	fixed := in.Start(d) + in.End(d) + gap*float32(len(kids)-1)
	for _, c := range kids {
		fixed += c.Style.Margin.Start(d) + c.Style.Margin.End(d)
	}

	// the last child fills to the end unless explicit sizes hold it back;
	// added first so the weights of the others give way on a conflict
	last := kids[len(kids)-1]
	if err := e.add(solver.Dynamic, solver.EQ, in.End(d)+last.Style.Margin.End(d), term(maxVar(last, d), 1), term(maxVar(n, d), -1)); err != nil {
		return err
	}

	var prev *widget.Node
	for i, c := range kids {
		cm := c.Style.Margin
		if err := e.cross(c, o, in); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = e.add(solver.System, solver.EQ, -(in.Start(d) + cm.Start(d)), term(minVar(c, d), 1), term(minVar(n, d), -1))
		} else {
			err = e.add(solver.System, solver.EQ, -(prev.Style.Margin.End(d) + gap + cm.Start(d)), term(minVar(c, d), 1), term(maxVar(prev, d), -1))
		}
		if err != nil {
			return err
		}
		prev = c
		if sz, ok := explicit(c, d); ok {
			if err := e.size(solver.User, c, d, sz); err != nil {
				return err
			}
		}
		if i < len(kids)-1 {
			// max - min = w * (n.max - n.min - fixed)
			if err := e.add(solver.Dynamic, solver.EQ, float32(w[i])*fixed, term(maxVar(c, d), 1), term(minVar(c, d), -1),
				term(maxVar(n, d), -w[i]), term(minVar(n, d), w[i])); err != nil {
				return err
			}
		}
		if err := e.add(solver.System, solver.LE, in.End(d)+cm.End(d), term(maxVar(c, d), 1), term(maxVar(n, d), -1)); err != nil {
			return err
		}
		if m := e.minSize(c); m > 0 {
			if err := e.add(solver.System, solver.GE, -m, term(maxVar(c, d), 1), term(minVar(c, d), -1)); err != nil {
				return err
			}
		}
	}
	return nil
}

// cross places c across the stacking axis: at the content start, filling
// the content box unless an explicit size applies, never past its end.
func (e *emitter) cross(c *widget.Node, o math32.Dims, in sides.Floats) error {
	n := e.n
	cm := c.Style.Margin
	if err := e.add(solver.System, solver.EQ, -(in.Start(o) + cm.Start(o)), term(minVar(c, o), 1), term(minVar(n, o), -1)); err != nil {
		return err
	}
	end := in.End(o) + cm.End(o)
	if err := e.add(solver.System, solver.LE, end, term(maxVar(c, o), 1), term(maxVar(n, o), -1)); err != nil {
		return err
	}
	if sz, ok := explicit(c, o); ok {
		if err := e.size(solver.User, c, o, sz); err != nil {
			return err
		}
	}
	return e.add(solver.Dynamic, solver.EQ, end, term(maxVar(c, o), 1), term(maxVar(n, o), -1))
}

// tabs fills the content box below the tab strip with the selected child.
func (e *emitter) tabs() error {
	n := e.n
	in := n.Style.Insets()
	for _, c := range e.flow(n) {
		cm := c.Style.Margin
		for _, d := range []math32.Dims{math32.X, math32.Y} {
			start := in.Start(d) + cm.Start(d)
			if d == math32.Y {
				start += e.Settings.TabStripHeight
			}
			if err := e.add(solver.System, solver.EQ, -start, term(minVar(c, d), 1), term(minVar(n, d), -1)); err != nil {
				return err
			}
			if err := e.add(solver.System, solver.EQ, in.End(d)+cm.End(d), term(maxVar(c, d), 1), term(maxVar(n, d), -1)); err != nil {
				return err
			}
		}
	}
	return nil
}

// none places each flow child at its x and y attributes within the
// content box, with its explicit or intrinsic size, contained in the
// content box.
func (e *emitter) none() error {
	n := e.n
	in := n.Style.Insets()
	for _, c := range e.flow(n) {
		for _, d := range []math32.Dims{math32.X, math32.Y} {
			if err := e.place(c, d, in.Start(d), minVar(n, d)); err != nil {
				return err
			}
			if err := e.add(solver.System, solver.GE, -in.Start(d), term(minVar(c, d), 1), term(minVar(n, d), -1)); err != nil {
				return err
			}
			if err := e.add(solver.System, solver.LE, in.End(d), term(maxVar(c, d), 1), term(maxVar(n, d), -1)); err != nil {
				return err
			}
		}
	}
	return nil
}

// positioned places an absolute child relative to the content box and
// a fixed child relative to the window, without containment.
func (e *emitter) positioned(c *widget.Node) error {
	in := e.n.Style.Insets()
	for _, d := range []math32.Dims{math32.X, math32.Y} {
		origin := minVar(e.n, d)
		start := in.Start(d)
		if c.Style.Position == styles.PositionFixed {
			origin, start = solver.NoVariable, 0
		}
		if err := e.place(c, d, start, origin); err != nil {
			return err
		}
	}
	return nil
}

// place adds c.min = origin + start + offset + margin and its size along d,
// at user priority. A NoVariable origin is the window origin.
func (e *emitter) place(c *widget.Node, d math32.Dims, start float32, origin solver.Variable) error {
	key := widget.KeyX
	if d == math32.Y {
		key = widget.KeyY
	}
	off, _ := c.AttrNumber(key)
	k := -(start + float32(off) + c.Style.Margin.Start(d))
	terms := []solver.Term{term(minVar(c, d), 1)}
	if origin != solver.NoVariable {
		terms = append(terms, term(origin, -1))
	}
	if err := e.add(solver.User, solver.EQ, k, terms...); err != nil {
		return err
	}
	sz, ok := explicit(c, d)
	if !ok {
		sz = e.intrinsic(c, d)
	}
	return e.size(solver.User, c, d, sz)
}

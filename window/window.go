// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window runs the task that owns one widget tree. The task is
// the only code that touches the tree: other goroutines reach it
// through a [Handle], which posts immutable events to the lock-free
// queue of the window. The task drains the queue, runs its timers,
// and redoes the layout and render passes as the events require.
package window

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/boxcore/boxlayout"
	"cogentcore.org/boxcore/cascade"
	"cogentcore.org/boxcore/compose"
	"cogentcore.org/boxcore/databind"
	"cogentcore.org/boxcore/decl"
	"cogentcore.org/boxcore/events"
	"cogentcore.org/boxcore/interact"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/render"
	"cogentcore.org/boxcore/scroll"
	"cogentcore.org/boxcore/settings"
	"cogentcore.org/boxcore/solver"
	"cogentcore.org/boxcore/styles"
	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/textedit"
	"cogentcore.org/boxcore/widget"
)

// ErrClosed is returned for requests to a closed window.
var ErrClosed = errors.New("window closed")

// Window is the state of one top-level window. Its fields are owned
// by the window task; see [Window.Run] and [Window.Process].
type Window struct {
	Settings *settings.Settings
	Store    *widget.Store

	// Resolver and Sheets resolve the styles of the widgets.
	Resolver styles.Resolver
	Sheets   []*styles.Sheet

	Text    text.Service
	Binder  *databind.Binder
	Pass    *boxlayout.Pass
	Editor  *textedit.Editor
	Manager *interact.Manager

	// List is the render list of the last pass.
	List *render.List

	// Size is the size of the window.
	Size math32.Vector2

	// Rasterizer, if set, is given the render list after every pass.
	Rasterizer render.Rasterizer

	// dirty is set when the render list must be rebuilt.
	dirty bool

	// renders are the render queries waiting for the next pass.
	renders []renderQuery

	queue     events.Queue
	nextBlink time.Time
}

// New returns a new window of the given size, with its own solver
// limited by the settings.
func New(st *settings.Settings, ts text.Service, size math32.Vector2) *Window {
	if st == nil {
		st = settings.Default()
	}
	ed := textedit.New(ts, nil)
	w := &Window{
		Settings: st,
		Store:    widget.NewStore(),
		Resolver: styles.SheetResolver{},
		Text:     ts,
		Binder:   &databind.Binder{},
		Pass:     boxlayout.New(solver.NewDense(solver.Limits{MaxVariables: st.MaxVariables, MaxConstraints: st.MaxConstraints}), st),
		Editor:   ed,
		Manager:  interact.New(st, ed),
		List:     &render.List{},
		Size:     size,
	}
	w.queue.Init()
	h := w.Handle()
	w.Binder.OnChange = func(id widget.ID) {
		h.send(events.NewCustom(modelChanged(id)))
	}
	return w
}

// modelChanged is posted when the model bound to a widget changes.
type modelChanged widget.ID

// Invalidate marks the layout stale.
func (w *Window) Invalidate() {
	w.Pass.Invalidate()
}

func (w *Window) effects(fx interact.Effects) {
	if fx.Has(interact.NeedsLayout) {
		w.Invalidate()
	}
	if fx.Has(interact.NeedsRender) {
		w.dirty = true
	}
}

// Insert inserts a widget with an id from [widget.Store.Reserve].
func (w *Window) Insert(id, parent widget.ID, offset int, typ widget.Types, layout widget.LayoutModes) error {
	if err := w.Store.InsertAt(id, parent, offset, typ, layout); err != nil {
		return benign(err)
	}
	w.Invalidate()
	return nil
}

// Modify sets an attribute of a widget.
func (w *Window) Modify(id widget.ID, key widget.Keys, value widget.Attribute) error {
	if err := w.Store.Modify(id, key, value); err != nil {
		return benign(err)
	}
	w.Invalidate()
	return nil
}

// Erase removes a widget and its subtree, unbinding their models.
func (w *Window) Erase(id widget.ID) error {
	var ids []widget.ID
	w.Store.Walk(id, func(n *widget.Node) bool {
		ids = append(ids, n.ID)
		return true
	})
	if err := w.Store.Erase(id); err != nil {
		return benign(err)
	}
	for _, id := range ids {
		w.Binder.Unbind(id)
	}
	w.Invalidate()
	return nil
}

// Layout replaces the children of a widget with the subtree of sp,
// and applies the layout mode and attributes of sp to the widget.
// An invalid sp leaves the widget and its children as they were.
func (w *Window) Layout(id widget.ID, sp *decl.Spec) error {
	n, err := w.Store.Lookup(id)
	if err != nil {
		return benign(err)
	}
	if err := sp.Validate(); err != nil {
		return fmt.Errorf("layout of widget %d: %w", id, err)
	}
	for _, c := range append([]widget.ID(nil), n.Children...) {
		if err := w.Erase(c); err != nil {
			return err
		}
	}
	w.Invalidate()
	return sp.BuildInto(w.Store, id, w.Binder)
}

// Bind binds a data model to a view widget.
func (w *Window) Bind(id widget.ID, m databind.Model) error {
	if _, err := w.Store.Lookup(id); err != nil {
		return benign(err)
	}
	w.Binder.Bind(id, m)
	w.Invalidate()
	return nil
}

// Resize sets the window size.
func (w *Window) Resize(size math32.Vector2) {
	if size == w.Size {
		return
	}
	w.Size = size
	w.Invalidate()
}

// benign logs a stale reference, which is an expected outcome of
// requests racing with erasures, and returns the error.
func benign(err error) error {
	if errors.Is(err, widget.ErrInvalidReference) {
		slog.Debug("window: stale reference", "err", err)
	}
	return err
}

// Update runs the layout pass if it is stale and rebuilds the render
// list if needed, then answers the waiting render queries. A failed
// pass keeps the previous boxes and render list, and stays stale.
func (w *Window) Update() error {
	var err error
	if w.Pass.State == boxlayout.Stale {
		if err = w.layout(); err != nil {
			if !errors.Is(err, solver.ErrOutOfMemory) {
				slog.Error("window: layout pass failed", "err", err)
			}
			w.Pass.Invalidate()
		} else {
			w.dirty = true
		}
	}
	if w.dirty && err == nil {
		w.render()
	}
	for _, q := range w.renders {
		if err != nil {
			q.q.resolve(nil, err)
			continue
		}
		if _, lerr := w.Store.Lookup(q.id); lerr != nil {
			q.q.resolve(nil, lerr)
			continue
		}
		q.q.resolve(w.List.Subtree(w.Store, q.id), nil)
	}
	w.renders = w.renders[:0]
	return err
}

// layout runs the cascade, compose, solve and scroll stages of a pass.
// A change of the shown scrollbars resets the pass, which is redone once.
func (w *Window) layout() error {
	st := w.Settings
	cx := &cascade.Context{Resolver: w.Resolver, Sheets: w.Sheets, FontSize: st.FontSize, LineHeight: st.LineHeight}
	cx.Units.Defaults()
	cx.Units.SetSizes(w.Size.X, w.Size.Y, w.Size.X, w.Size.Y)
	if err := cascade.Apply(w.Store, cx); err != nil {
		return fmt.Errorf("cascade: %w", err)
	}
	for range 2 {
		changed, err := w.solve()
		if err != nil {
			return err
		}
		if !changed {
			break
		}
		slog.Debug("window: scrollbars changed, redoing pass")
		w.Pass.Invalidate()
	}
	w.Manager.Validate(w.Store)
	return nil
}

// solve composes the items, solves the boxes and resolves scrolling,
// and reports whether any widget changed its shown scrollbars.
func (w *Window) solve() (bool, error) {
	ccx := &compose.Context{Text: w.Text, Binder: w.Binder, Settings: w.Settings}
	var err error
	w.Store.Walk(widget.Root, func(n *widget.Node) bool {
		if err != nil || !n.Is(widget.Visible) {
			return false
		}
		err = compose.Compose(w.Store, n, ccx)
		return err == nil
	})
	if err != nil {
		return false, err
	}
	if err := w.Pass.Layout(w.Store, w.Size); err != nil {
		return false, err
	}
	changed := false
	for _, n := range w.Pass.Nodes() {
		if scroll.Resolve(n, w.Settings) {
			changed = true
		}
	}
	return changed, nil
}

func (w *Window) render() {
	w.List = render.Build(w.Store, w.Pass.Nodes(), &render.Options{
		ScrollBarWidth: w.Settings.ScrollBarWidth, Focus: w.Manager.Focus, Text: w.Text})
	w.Manager.ApplyPreview(w.List)
	w.dirty = false
	if w.Rasterizer != nil {
		w.List.Draw(w.Rasterizer)
	}
}

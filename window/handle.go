// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"context"
	"sync"
	"weak"

	"cogentcore.org/boxcore/databind"
	"cogentcore.org/boxcore/decl"
	"cogentcore.org/boxcore/events"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/render"
	"cogentcore.org/boxcore/widget"
)

// Query is the token of a request to the window task, answered
// once the task has processed the request.
type Query[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

func newQuery[T any]() *Query[T] {
	return &Query[T]{done: make(chan struct{})}
}

func failed[T any](err error) *Query[T] {
	q := newQuery[T]()
	var zero T
	q.resolve(zero, err)
	return q
}

// resolve answers the query; only the first answer counts.
func (q *Query[T]) resolve(v T, err error) {
	q.once.Do(func() {
		q.val, q.err = v, err
		close(q.done)
	})
}

// Done is closed when the query is answered.
func (q *Query[T]) Done() <-chan struct{} {
	return q.done
}

// Wait waits for the answer, or for the context to be done.
func (q *Query[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-q.done:
		return q.val, q.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result is the token of a request with no value.
type Result = Query[struct{}]

// request is a function run by the window task, with the function
// that answers it when the window closes first.
type request struct {
	run  func(w *Window)
	fail func(err error)
}

// renderQuery is a render request waiting for the next pass.
type renderQuery struct {
	id widget.ID
	q  *Query[[]render.Entry]
}

// Handle posts requests and input to a window from any goroutine.
// It does not keep the window alive: once the window is closed or
// collected, requests fail with [ErrClosed] instead of reaching it.
type Handle struct {
	w weak.Pointer[Window]
}

// Handle returns a new handle to the window.
func (w *Window) Handle() *Handle {
	return &Handle{w: weak.Make(w)}
}

// window returns the window if it is still alive and open.
func (h *Handle) window() *Window {
	w := h.w.Value()
	if w == nil || w.queue.Closed() {
		return nil
	}
	return w
}

// send queues ev for the window task. A request that lost a race
// with Close is failed here, unless the task already failed it.
func (h *Handle) send(ev events.Event) error {
	w := h.window()
	if w == nil || !w.queue.Send(ev) {
		return ErrClosed
	}
	return nil
}

func do(h *Handle, fn func(w *Window) error) *Result {
	q := newQuery[struct{}]()
	err := h.send(events.NewCustom(request{
		run:  func(w *Window) { q.resolve(struct{}{}, fn(w)) },
		fail: func(err error) { q.resolve(struct{}{}, err) },
	}))
	if err != nil {
		q.resolve(struct{}{}, err)
	}
	return q
}

// Insert inserts a new widget as a child of parent at offset, which is
// clamped to the number of children; a negative offset appends. The id
// of the widget is returned at once, for use in later requests.
func (h *Handle) Insert(parent widget.ID, offset int, typ widget.Types, layout widget.LayoutModes) (widget.ID, *Result) {
	w := h.window()
	if w == nil {
		return widget.NoID, failed[struct{}](ErrClosed)
	}
	id := w.Store.Reserve()
	return id, do(h, func(w *Window) error {
		return w.Insert(id, parent, offset, typ, layout)
	})
}

// Modify sets an attribute of a widget.
func (h *Handle) Modify(id widget.ID, key widget.Keys, value widget.Attribute) *Result {
	return do(h, func(w *Window) error { return w.Modify(id, key, value) })
}

// Erase removes a widget and its subtree.
func (h *Handle) Erase(id widget.ID) *Result {
	return do(h, func(w *Window) error { return w.Erase(id) })
}

// Layout replaces the children of a widget with a declarative subtree.
func (h *Handle) Layout(id widget.ID, sp *decl.Spec) *Result {
	return do(h, func(w *Window) error { return w.Layout(id, sp) })
}

// Bind binds a data model to a view widget. The model may be mutated
// from any goroutine afterwards; changes relayout the window.
func (h *Handle) Bind(id widget.ID, m databind.Model) *Result {
	return do(h, func(w *Window) error { return w.Bind(id, m) })
}

// Render returns a query answered with the render entries of the
// widget and its descendants after the next pass.
func (h *Handle) Render(id widget.ID) *Query[[]render.Entry] {
	q := newQuery[[]render.Entry]()
	err := h.send(events.NewCustom(request{
		run:  func(w *Window) { w.renders = append(w.renders, renderQuery{id: id, q: q}) },
		fail: func(err error) { q.resolve(nil, err) },
	}))
	if err != nil {
		q.resolve(nil, err)
	}
	return q
}

// Resize posts a new window size.
func (h *Handle) Resize(size math32.Vector2) error {
	return h.send(events.NewResize(size))
}

// Input posts an input event.
func (h *Handle) Input(ev events.Event) error {
	return h.send(ev)
}

// Action applies an editing action to the focused widget. The result
// carries the error of the action, such as a failed clipboard read.
func (h *Handle) Action(a events.Actions) *Result {
	return do(h, func(w *Window) error { return w.Action(a) })
}

// Close closes the window; requests still queued fail with [ErrClosed].
func (h *Handle) Close() {
	if w := h.w.Value(); w != nil {
		w.Close()
	}
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"context"
	"time"

	"cogentcore.org/boxcore/base/errors"
	"cogentcore.org/boxcore/boxlayout"
	"cogentcore.org/boxcore/events"
	"cogentcore.org/boxcore/interact"
	"cogentcore.org/boxcore/widget"
)

// Run runs the window task until the context is done or the window
// is closed. It waits only for a posted event or the next timer.
func (w *Window) Run(ctx context.Context) error {
	defer w.shutdown()
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()
	for !w.queue.Closed() {
		wait := time.Hour
		if next := w.Process(time.Now()); !next.IsZero() {
			wait = max(time.Until(next), 0)
		}
		timer.Reset(wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.queue.Wake():
		case <-timer.C:
		}
	}
	return nil
}

// Process handles the queued events, runs the timers that are due at
// now, and updates the passes. It returns the time of the next timer,
// or zero if none is armed.
func (w *Window) Process(now time.Time) time.Time {
	if w.queue.Closed() {
		w.shutdown()
		return time.Time{}
	}
	for ev := w.queue.Next(); ev != nil; ev = w.queue.Next() {
		w.handle(ev, now)
	}
	w.tick(now)
	if w.Pass.State == boxlayout.Stale || w.dirty || len(w.renders) > 0 {
		w.Update()
	}
	return w.deadline()
}

func (w *Window) handle(ev events.Event, now time.Time) {
	switch e := ev.(type) {
	case *events.Resize:
		w.Resize(e.Size)
		return
	case *events.CustomEvent:
		switch d := e.Data.(type) {
		case request:
			d.run(w)
		case modelChanged:
			if w.Store.Node(widget.ID(d)) != nil {
				w.Invalidate()
			}
		}
		return
	case *events.Key, *events.TextInput:
		w.nextBlink = time.Time{}
	}
	w.settle()
	fx, err := w.Manager.HandleEvent(w.Store, w.List, ev)
	w.effects(fx)
	errors.Log(err)
}

// settle finishes a stale pass, so that input hit-tests the current layout.
func (w *Window) settle() {
	if w.Pass.State == boxlayout.Stale || w.dirty {
		w.Update()
	}
}

// Action applies an editing action to the focused widget.
func (w *Window) Action(a events.Actions) error {
	w.settle()
	fx, err := w.Manager.Action(w.Store, a)
	w.effects(fx)
	return err
}

// tick runs the scroll repeat and caret blink timers.
func (w *Window) tick(now time.Time) {
	if d, ok := w.Manager.Deadline(); ok && !now.Before(d) {
		w.effects(w.Manager.Tick(w.Store, now))
	}
	if w.Manager.State != interact.Editing {
		w.nextBlink = time.Time{}
		return
	}
	interval := time.Duration(w.Settings.BlinkInterval)
	switch {
	case w.nextBlink.IsZero():
		w.nextBlink = now.Add(interval)
	case !now.Before(w.nextBlink):
		w.effects(w.Manager.Blink(w.Store))
		w.nextBlink = now.Add(interval)
	}
}

func (w *Window) deadline() time.Time {
	next := w.nextBlink
	if d, ok := w.Manager.Deadline(); ok && (next.IsZero() || d.Before(next)) {
		next = d
	}
	return next
}

// Close closes the window. The task stops, and the requests still
// queued fail with [ErrClosed].
func (w *Window) Close() {
	w.queue.Close()
}

// shutdown fails the queued requests and releases the models.
func (w *Window) shutdown() {
	w.queue.Close()
	w.queue.Drain(func(ev events.Event) {
		if ce, ok := ev.(*events.CustomEvent); ok {
			if r, ok := ce.Data.(request); ok {
				r.fail(ErrClosed)
			}
		}
	})
	for _, q := range w.renders {
		q.q.resolve(nil, ErrClosed)
	}
	w.renders = nil
	for _, id := range w.Binder.Bound() {
		w.Binder.Unbind(id)
	}
}

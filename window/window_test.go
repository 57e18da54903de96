// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cogentcore.org/boxcore/databind"
	"cogentcore.org/boxcore/decl"
	"cogentcore.org/boxcore/events"
	"cogentcore.org/boxcore/events/key"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/render"
	"cogentcore.org/boxcore/settings"
	"cogentcore.org/boxcore/solver"
	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWindow(size math32.Vector2) (*Window, *Handle) {
	w := New(settings.Default(), &text.Mono{}, size)
	return w, w.Handle()
}

func wait[T any](t *testing.T, q *Query[T]) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return q.Wait(ctx)
}

func TestRequests(t *testing.T) {
	w, h := newWindow(math32.Vec2(300, 400))
	id, r := h.Insert(widget.Root, -1, widget.TypeContainer, widget.LayoutNone)
	assert.NotEqual(t, widget.NoID, id)
	m := h.Modify(id, widget.KeyName, widget.String("main"))
	q := h.Render(id)

	w.Process(time.Now())
	_, err := wait(t, r)
	require.NoError(t, err)
	_, err = wait(t, m)
	require.NoError(t, err)
	es, err := wait(t, q)
	require.NoError(t, err)
	require.NotEmpty(t, es)
	assert.Equal(t, id, es[0].Widget)
	assert.Equal(t, math32.B2(0, 0, 300, 400), w.Store.Node(id).Box)
	assert.Equal(t, "main", w.Store.Node(id).StyleName())

	r = h.Modify(99, widget.KeyWeight, widget.Number(1))
	e := h.Erase(id)
	q = h.Render(id)
	w.Process(time.Now())
	_, err = wait(t, r)
	assert.ErrorIs(t, err, widget.ErrInvalidReference)
	_, err = wait(t, e)
	assert.NoError(t, err)
	_, err = wait(t, q)
	assert.ErrorIs(t, err, widget.ErrInvalidReference)
}

func TestLayoutSubtree(t *testing.T) {
	w, h := newWindow(math32.Vec2(300, 400))
	sp, err := decl.Parse([]byte(`
type: container
layout: vbox
children:
  - {type: container, attrs: {weight: 1}}
  - {type: container, attrs: {weight: 1}}
  - {type: container, attrs: {weight: 2}}
`))
	require.NoError(t, err)
	r := h.Layout(widget.Root, sp)
	w.Process(time.Now())
	_, err = wait(t, r)
	require.NoError(t, err)

	root := w.Store.Root()
	require.Len(t, root.Children, 3)
	var y float32
	for i, want := range []float32{100, 100, 200} {
		b := w.Store.Node(root.Children[i]).Box
		assert.InDelta(t, y, b.Min.Y, 1)
		assert.InDelta(t, want, b.DimSize(math32.Y), 1)
		y += want
	}

	old := root.Children[0]
	sp.Children = sp.Children[:1]
	r = h.Layout(widget.Root, sp)
	w.Process(time.Now())
	_, err = wait(t, r)
	require.NoError(t, err)
	assert.Len(t, root.Children, 1)
	assert.Nil(t, w.Store.Node(old), "replaced children are erased")
	assert.InDelta(t, 400, w.Store.Node(root.Children[0]).Box.DimSize(math32.Y), 1)
}

func TestLayoutInvalidKeepsChildren(t *testing.T) {
	w, h := newWindow(math32.Vec2(300, 400))
	id, _ := h.Insert(widget.Root, -1, widget.TypeLabel, widget.LayoutNone)
	sp, err := decl.Parse([]byte(`
type: container
layout: hbox
children:
  - {type: container}
  - {type: gizmo}
`))
	require.NoError(t, err)
	r := h.Layout(widget.Root, sp)
	w.Process(time.Now())
	_, err = wait(t, r)
	assert.Error(t, err)
	assert.Equal(t, []widget.ID{id}, w.Store.Root().Children)
	assert.Equal(t, widget.LayoutVBox, w.Store.Root().Layout)
}

type brokenClipboard struct{}

var errNoClipboard = errors.New("clipboard unavailable")

func (brokenClipboard) Read() (string, error) { return "", errNoClipboard }
func (brokenClipboard) Write(string) error    { return errNoClipboard }

func TestActionError(t *testing.T) {
	w, h := newWindow(math32.Vec2(200, 40))
	h.Insert(widget.Root, -1, widget.TypeLineEdit, widget.LayoutNone)
	w.Process(time.Now())
	w.Editor.Clipboard = brokenClipboard{}
	require.NoError(t, h.Input(events.NewMouse(events.MouseDown, events.Left, math32.Vec2(5, 5), 0)))
	require.NoError(t, h.Input(events.NewMouse(events.MouseUp, events.Left, math32.Vec2(5, 5), 0)))

	r := h.Action(events.Paste)
	w.Process(time.Now())
	_, err := wait(t, r)
	assert.ErrorIs(t, err, errNoClipboard)

	r = h.Action(events.SelectAll)
	w.Process(time.Now())
	_, err = wait(t, r)
	assert.NoError(t, err)
}

func TestRequestsRacingClose(t *testing.T) {
	for range 20 {
		w, h := newWindow(math32.Vec2(100, 100))
		var wg sync.WaitGroup
		results := make(chan *Result, 4*100)
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					results <- h.Modify(widget.Root, widget.KeyName, widget.String("x"))
				}
			}()
		}
		w.Process(time.Now())
		w.Close()
		w.Process(time.Now())
		wg.Wait()
		close(results)
		for r := range results {
			select {
			case <-r.Done():
			case <-time.After(time.Second):
				t.Fatal("request neither run nor failed")
			}
		}
	}
}

func TestTypingUndoAndBlink(t *testing.T) {
	w, h := newWindow(math32.Vec2(200, 40))
	id, _ := h.Insert(widget.Root, -1, widget.TypeLineEdit, widget.LayoutNone)
	now := time.Now()
	w.Process(now)

	require.NoError(t, h.Input(events.NewMouse(events.MouseDown, events.Left, math32.Vec2(5, 5), 0)))
	require.NoError(t, h.Input(events.NewMouse(events.MouseUp, events.Left, math32.Vec2(5, 5), 0)))
	for _, r := range "abc" {
		require.NoError(t, h.Input(events.NewText(string(r))))
	}
	require.NoError(t, h.Input(events.NewKey(key.CodeBackspace, 0, 0)))
	next := w.Process(now)
	n := w.Store.Node(id)
	assert.Equal(t, id, w.Manager.Focus)
	assert.Equal(t, "ab", n.Value())
	assert.Equal(t, now.Add(500*time.Millisecond), next, "blink timer armed")

	u := h.Action(events.Undo)
	w.Process(now)
	_, err := wait(t, u)
	require.NoError(t, err)
	assert.Equal(t, "abc", n.Value())
	u = h.Action(events.Undo)
	w.Process(now)
	_, err = wait(t, u)
	require.NoError(t, err)
	assert.Equal(t, "", n.Value())

	on := n.Edit.CaretOn
	w.Process(next)
	assert.Equal(t, !on, n.Edit.CaretOn, "caret blinked")
	var carets int
	for _, e := range w.List.Entries {
		if e.Kind == render.EntryCaret {
			carets++
		}
	}
	if n.Edit.CaretOn {
		assert.Equal(t, 1, carets)
	} else {
		assert.Zero(t, carets)
	}
}

func TestModelChange(t *testing.T) {
	w, h := newWindow(math32.Vec2(200, 100))
	id, _ := h.Insert(widget.Root, -1, widget.TypeList, widget.LayoutNone)
	tr := databind.NewTree()
	tr.Add(tr.Root(), "a")
	h.Bind(id, tr)
	w.Process(time.Now())
	assert.Len(t, w.Store.Node(id).Content(), 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		tr.Add(tr.Root(), "b")
	}()
	<-done
	w.Process(time.Now())
	assert.Len(t, w.Store.Node(id).Content(), 2)

	h.Erase(id)
	w.Process(time.Now())
	assert.Nil(t, w.Binder.Model(id))
}

func TestOutOfMemoryKeepsList(t *testing.T) {
	w, h := newWindow(math32.Vec2(100, 100))
	h.Insert(widget.Root, -1, widget.TypeContainer, widget.LayoutNone)
	w.Process(time.Now())
	before := w.List

	w.Pass.Solver = solver.NewDense(solver.Limits{MaxVariables: 8})
	h.Insert(widget.Root, -1, widget.TypeContainer, widget.LayoutNone)
	q := h.Render(widget.Root)
	w.Process(time.Now())
	_, err := wait(t, q)
	assert.ErrorIs(t, err, solver.ErrOutOfMemory)
	assert.Same(t, before, w.List)
}

func TestClose(t *testing.T) {
	w, h := newWindow(math32.Vec2(100, 100))
	r := h.Modify(widget.Root, widget.KeyName, widget.String("x"))
	q := h.Render(widget.Root)
	w.Close()
	w.Process(time.Now())
	_, err := wait(t, r)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = wait(t, q)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = wait(t, h.Modify(widget.Root, widget.KeyName, widget.String("y")))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, h.Resize(math32.Vec2(1, 1)), ErrClosed)
	assert.Empty(t, w.Store.Root().StyleName())
}

func TestRun(t *testing.T) {
	w, h := newWindow(math32.Vec2(100, 100))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- w.Run(ctx) }()

	id, _ := h.Insert(widget.Root, -1, widget.TypeLabel, widget.LayoutNone)
	h.Modify(id, widget.KeyValue, widget.String("hi"))
	require.NoError(t, h.Resize(math32.Vec2(120, 80)))
	es, err := wait(t, h.Render(id))
	require.NoError(t, err)
	require.NotEmpty(t, es)
	assert.Equal(t, math32.B2(0, 0, 120, 80), es[0].Rect)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.ErrorIs(t, h.Input(events.NewText("x")), ErrClosed)
}

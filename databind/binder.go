// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package databind

import (
	"maps"
	"slices"

	"cogentcore.org/boxcore/widget"
)

// Binder tracks the models bound to view widgets.
type Binder struct {
	// OnChange is called with the id of a widget whose model changed.
	// It may be called from any goroutine that mutates the model.
	OnChange func(id widget.ID)

	bound   map[widget.ID]Model
	cancels map[widget.ID]func()
}

// Bind binds the model to the widget, replacing any previous model,
// and observes it if it is [Observable].
func (b *Binder) Bind(id widget.ID, m Model) {
	b.Unbind(id)
	if b.bound == nil {
		b.bound = make(map[widget.ID]Model)
		b.cancels = make(map[widget.ID]func())
	}
	b.bound[id] = m
	if ob, ok := m.(Observable); ok {
		b.cancels[id] = ob.Observe(func() {
			if b.OnChange != nil {
				b.OnChange(id)
			}
		})
	}
}

// Unbind removes the model of the widget.
func (b *Binder) Unbind(id widget.ID) {
	if cancel, ok := b.cancels[id]; ok {
		cancel()
		delete(b.cancels, id)
	}
	delete(b.bound, id)
}

// Model returns the model bound to the widget, or nil.
func (b *Binder) Model(id widget.ID) Model {
	return b.bound[id]
}

// Bound returns the ids of the bound widgets in order.
func (b *Binder) Bound() []widget.ID {
	return slices.Sorted(maps.Keys(b.bound))
}

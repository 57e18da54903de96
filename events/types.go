// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the immutable input records posted to a
// window and the lock-free queue that carries them to the window task.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/boxcore/events/key"
)

// Types are the types of events.
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse moves, with or without a button held.
	MouseMove

	// Scroll is a wheel or gesture scroll, in pixels.
	Scroll

	// KeyDown is when a key is pressed down.
	KeyDown

	// Text is text input, after any composition.
	Text

	// WindowResize happens when the window has been resized.
	WindowResize

	// Action is an editing command: undo, redo, cut, copy, paste or select all.
	Action

	// Custom carries arbitrary data, used for requests to the window task.
	Custom
)

var typeNames = []string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "Scroll",
	"KeyDown", "Text", "WindowResize", "Action", "Custom"}

func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Types(%d)", t)
	}
	return typeNames[t]
}

// Event is an input record. Events are never modified once posted.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// Time returns the time the event was created.
	Time() time.Time
}

// Base is the common part of all events.
type Base struct {
	Typ  Types
	When time.Time

	// Mods are the modifier keys held.
	Mods key.Modifiers
}

func (b *Base) Type() Types     { return b.Typ }
func (b *Base) Time() time.Time { return b.When }

func (b *Base) String() string {
	return fmt.Sprintf("%v{Mods: %v, Time: %v}", b.Typ, b.Mods, b.When.Format("04:05.000"))
}

func newBase(typ Types, mods key.Modifiers) Base {
	return Base{Typ: typ, When: time.Now(), Mods: mods}
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/boxcore/events/key"
	"cogentcore.org/boxcore/math32"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Mouse is a mouse down, up or move event.
type Mouse struct {
	Base
	Button Buttons

	// Where is the position in window coordinates.
	Where math32.Vector2
}

// NewMouse returns a new mouse event of the given type.
func NewMouse(typ Types, but Buttons, where math32.Vector2, mods key.Modifiers) *Mouse {
	return &Mouse{Base: newBase(typ, mods), Button: but, Where: where}
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Typ, ev.Button, ev.Where, ev.Mods)
}

// MouseScroll is a scroll event, recording the delta of the scroll.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in pixels.
	Delta math32.Vector2
}

// NewScroll returns a new scroll event at the given position.
func NewScroll(where, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Base = newBase(Scroll, mods)
	ev.Where = where
	ev.Delta = delta
	return ev
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v}", ev.Typ, ev.Delta, ev.Where, ev.Mods)
}

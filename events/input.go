// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/boxcore/events/key"
	"cogentcore.org/boxcore/math32"
)

// Key is a key press.
type Key struct {
	Base
	Code key.Codes

	// Rune is the character of the key, if any. Text input is
	// delivered separately as [TextInput].
	Rune rune
}

// NewKey returns a new key down event.
func NewKey(code key.Codes, r rune, mods key.Modifiers) *Key {
	return &Key{Base: newBase(KeyDown, mods), Code: code, Rune: r}
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Chord: %v}", ev.Typ, ev.Chord())
}

// Chord returns the key and modifiers as a chord.
func (ev *Key) Chord() key.Chord {
	return key.NewChord(ev.Rune, ev.Code, ev.Mods)
}

// TextInput is committed text typed by the user.
type TextInput struct {
	Base
	Text string
}

// NewText returns a new text input event.
func NewText(s string) *TextInput {
	return &TextInput{Base: newBase(Text, 0), Text: s}
}

func (ev *TextInput) String() string {
	return fmt.Sprintf("%v{Text: %q}", ev.Typ, ev.Text)
}

// Resize reports the new size of the window.
type Resize struct {
	Base
	Size math32.Vector2
}

// NewResize returns a new window resize event.
func NewResize(size math32.Vector2) *Resize {
	return &Resize{Base: newBase(WindowResize, 0), Size: size}
}

func (ev *Resize) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Typ, ev.Size)
}

// Actions are the editing commands.
type Actions int32

const (
	Undo Actions = iota
	Redo
	Cut
	Copy
	Paste
	SelectAll
)

var actionNames = []string{"undo", "redo", "cut", "copy", "paste", "select_all"}

func (a Actions) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Actions(%d)", a)
	}
	return actionNames[a]
}

// SetString sets the action from its name.
func (a *Actions) SetString(s string) error {
	for i, nm := range actionNames {
		if nm == s {
			*a = Actions(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid action", s)
}

// ActionEvent is an editing command for the focused widget.
type ActionEvent struct {
	Base
	Action Actions
}

// NewAction returns a new action event.
func NewAction(a Actions) *ActionEvent {
	return &ActionEvent{Base: newBase(Action, 0), Action: a}
}

func (ev *ActionEvent) String() string {
	return fmt.Sprintf("%v{%v}", ev.Typ, ev.Action)
}

// CustomEvent carries arbitrary data.
type CustomEvent struct {
	Base
	Data any
}

// NewCustom returns a new custom event with the given data.
func NewCustom(data any) *CustomEvent {
	return &CustomEvent{Base: newBase(Custom, 0), Data: data}
}

func (ev *CustomEvent) String() string {
	return fmt.Sprintf("%v{Data: %v}", ev.Typ, ev.Data)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"cogentcore.org/boxcore/events"
	"cogentcore.org/boxcore/events/key"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/scroll"
	"cogentcore.org/boxcore/textedit"
	"cogentcore.org/boxcore/widget"
)

// chordActions are the key chords of the editing actions.
var chordActions = map[key.Chord]events.Actions{
	"Control+z":       events.Undo,
	"Shift+Control+z": events.Redo,
	"Shift+Control+Z": events.Redo,
	"Control+y":       events.Redo,
	"Control+x":       events.Cut,
	"Control+c":       events.Copy,
	"Control+v":       events.Paste,
	"Control+a":       events.SelectAll,
}

// editable returns the focused widget if it is editable and enabled.
func (m *Manager) editable(s *widget.Store) *widget.Node {
	n := s.Node(m.Focus)
	if n == nil || !n.Type.IsEditable() || !n.Is(widget.Enabled) {
		return nil
	}
	return n
}

// key routes a key to the focused widget.
func (m *Manager) key(s *widget.Store, ev *events.Key) (Effects, error) {
	if a, ok := chordActions[ev.Chord()]; ok {
		return m.Action(s, a)
	}
	if n := m.editable(s); n != nil {
		return m.editKey(n, ev)
	}
	n := s.Node(m.Focus)
	if n == nil {
		return 0, nil
	}
	var changed bool
	sy, sx := &n.Scroll[math32.Y], &n.Scroll[math32.X]
	switch ev.Code {
	case key.CodeUpArrow:
		changed = scroll.Scroll(n, math32.Y, -sy.Step)
	case key.CodeDownArrow:
		changed = scroll.Scroll(n, math32.Y, sy.Step)
	case key.CodeLeftArrow:
		changed = scroll.Scroll(n, math32.X, -sx.Step)
	case key.CodeRightArrow:
		changed = scroll.Scroll(n, math32.X, sx.Step)
	case key.CodePageUp:
		changed = scroll.Scroll(n, math32.Y, -sy.ViewSize)
	case key.CodePageDown:
		changed = scroll.Scroll(n, math32.Y, sy.ViewSize)
	case key.CodeHome:
		changed = scroll.Scroll(n, math32.Y, -sy.Value)
	case key.CodeEnd:
		changed = scroll.Scroll(n, math32.Y, sy.MaxValue()-sy.Value)
	}
	if changed {
		return NeedsLayout, nil
	}
	return 0, nil
}

func (m *Manager) editKey(n *widget.Node, ev *events.Key) (Effects, error) {
	ed := m.Editor
	word := ev.Mods.Has(key.Control, key.Alt)
	extend := ev.Mods.Has(key.Shift)
	n.Edit.CaretOn = true
	var changed bool
	var err error
	switch ev.Code {
	case key.CodeBackspace:
		changed, err = ed.Backspace(n, word)
	case key.CodeDelete:
		changed, err = ed.Delete(n, word)
	case key.CodeLeftArrow:
		ed.Move(n, pick(word, textedit.MoveWordLeft, textedit.MoveLeft), extend)
	case key.CodeRightArrow:
		ed.Move(n, pick(word, textedit.MoveWordRight, textedit.MoveRight), extend)
	case key.CodeHome:
		ed.Move(n, textedit.MoveHome, extend)
	case key.CodeEnd:
		ed.Move(n, textedit.MoveEnd, extend)
	case key.CodeReturnEnter:
		if n.Type == widget.TypeTextEdit {
			changed, err = true, ed.Insert(n, "\n")
		}
	case key.CodeEscape:
		ed.MoveTo(n, n.Edit.Caret, false)
	default:
		return 0, nil
	}
	if changed {
		return NeedsLayout, err
	}
	return NeedsRender, err
}

func pick(word bool, w, c textedit.Moves) textedit.Moves {
	if word {
		return w
	}
	return c
}

// Action applies an editing action to the focused widget.
func (m *Manager) Action(s *widget.Store, a events.Actions) (Effects, error) {
	n := m.editable(s)
	if n == nil {
		return 0, nil
	}
	ed := m.Editor
	var changed bool
	var err error
	switch a {
	case events.Undo:
		changed, err = ed.Undo(n)
	case events.Redo:
		changed, err = ed.Redo(n)
	case events.Cut:
		changed, err = ed.Cut(n)
	case events.Copy:
		err = ed.Copy(n)
	case events.Paste:
		changed, err = ed.Paste(n)
	case events.SelectAll:
		ed.SelectAll(n)
	}
	if changed {
		return NeedsLayout, err
	}
	return NeedsRender, err
}

// Blink toggles the caret of the focused editable widget.
func (m *Manager) Blink(s *widget.Store) Effects {
	n := m.editable(s)
	if n == nil {
		return 0
	}
	m.Editor.Blink(n)
	return NeedsRender
}

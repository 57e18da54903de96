// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textedit edits the value of line-edit and text-edit widgets.
// Every edit reduces to one [widget.TextAction] that is applied at once
// and recorded on the linear undo stack of the widget. The stack holds
// the inverse of each applied action; undo and redo apply an entry and
// swap it in place, so they never add entries.
package textedit

import (
	"fmt"

	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/widget"
)

// Editor edits widget values. It holds no per-widget state; the caret,
// selection and undo stack live in the [widget.Node].
type Editor struct {
	// Text locates the caret from a point.
	Text text.Service

	Clipboard Clipboard
}

// New returns a new editor using the given services.
func New(ts text.Service, cb Clipboard) *Editor {
	if cb == nil {
		cb = &Memory{}
	}
	return &Editor{Text: ts, Clipboard: cb}
}

func check(n *widget.Node, a *widget.TextAction) error {
	v := n.Value()
	if a.Item != n.EditItem() {
		return fmt.Errorf("textedit: %v: action on item %d, editable item is %d: %w", n, a.Item, n.EditItem(), widget.ErrCorruptedState)
	}
	if a.Offset < 0 || a.Length < 0 || a.Offset+a.Length > len(v) {
		return fmt.Errorf("textedit: %v: action [%d, +%d) outside value of length %d: %w", n, a.Offset, a.Length, len(v), widget.ErrCorruptedState)
	}
	return nil
}

// replace replaces the range of a in the value of n, and returns
// the text it overwrote.
func replace(n *widget.Node, a *widget.TextAction) string {
	v := n.Value()
	old := v[a.Offset : a.Offset+a.Length]
	n.SetAttr(widget.KeyValue, widget.String(v[:a.Offset]+a.Replacement+v[a.Offset+a.Length:]))
	n.Edit.Caret = a.Offset + len(a.Replacement)
	n.Edit.Anchor = n.Edit.Caret
	n.Edit.Trailing = false
	return old
}

// Apply applies the action to the value of n and pushes its inverse
// onto the undo stack, discarding any redo entries. A typed insert
// directly after the previous typed insert extends that entry.
func (ed *Editor) Apply(n *widget.Node, a widget.TextAction, typing bool) error {
	if err := check(n, &a); err != nil {
		return err
	}
	if n.ActionPos > len(n.Actions) || n.ActionPos < 0 {
		return fmt.Errorf("textedit: %v: action position %d of %d: %w", n, n.ActionPos, len(n.Actions), widget.ErrCorruptedState)
	}
	old := replace(n, &a)
	n.Actions = n.Actions[:n.ActionPos]
	coalesce := typing && n.Edit.Typing && a.Length == 0 && n.ActionPos > 0
	if coalesce {
		last := &n.Actions[n.ActionPos-1]
		coalesce = last.Replacement == "" && last.Offset+last.Length == a.Offset
		if coalesce {
			last.Length += len(a.Replacement)
		}
	}
	if !coalesce {
		n.Actions = append(n.Actions, widget.TextAction{Item: a.Item, Offset: a.Offset, Length: len(a.Replacement), Replacement: old})
		n.ActionPos++
	}
	n.Edit.Typing = typing
	return nil
}

// swap applies the stack entry a and replaces it with its inverse.
func swap(n *widget.Node, a *widget.TextAction) error {
	if err := check(n, a); err != nil {
		return err
	}
	old := replace(n, a)
	a.Length, a.Replacement = len(a.Replacement), old
	n.Edit.Typing = false
	return nil
}

// Undo reverts the last applied action, reporting whether there was one.
func (ed *Editor) Undo(n *widget.Node) (bool, error) {
	if n.ActionPos == 0 {
		return false, nil
	}
	if n.ActionPos < 0 || n.ActionPos > len(n.Actions) {
		return false, fmt.Errorf("textedit: %v: undo at %d of %d: %w", n, n.ActionPos, len(n.Actions), widget.ErrCorruptedState)
	}
	if err := swap(n, &n.Actions[n.ActionPos-1]); err != nil {
		return false, err
	}
	n.ActionPos--
	return true, nil
}

// Redo reapplies the last undone action, reporting whether there was one.
func (ed *Editor) Redo(n *widget.Node) (bool, error) {
	if n.ActionPos < 0 {
		return false, fmt.Errorf("textedit: %v: redo at %d: %w", n, n.ActionPos, widget.ErrCorruptedState)
	}
	if n.ActionPos >= len(n.Actions) {
		return false, nil
	}
	if err := swap(n, &n.Actions[n.ActionPos]); err != nil {
		return false, err
	}
	n.ActionPos++
	return true, nil
}

// Blink toggles the caret phase.
func (ed *Editor) Blink(n *widget.Node) {
	n.Edit.CaretOn = !n.Edit.CaretOn
}

// Focus shows the caret on focus and hides it on focus loss.
func (ed *Editor) Focus(n *widget.Node, on bool) {
	n.Edit.CaretOn = on
	n.Edit.Typing = false
}

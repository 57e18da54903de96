// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textedit

import (
	"strings"

	"cogentcore.org/boxcore/compose"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/widget"
	"golang.org/x/text/unicode/norm"
)

// Moves are the caret movements.
type Moves int32

const (
	MoveLeft Moves = iota
	MoveRight
	MoveWordLeft
	MoveWordRight
	MoveHome
	MoveEnd
)

var singleLine = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// clean normalizes inserted text, flattening line breaks for line edits.
func clean(n *widget.Node, s string) string {
	s = norm.NFC.String(s)
	if n.Type != widget.TypeTextEdit {
		s = singleLine.Replace(s)
	}
	return s
}

func (ed *Editor) replaceSelection(n *widget.Node, s string, typing bool) error {
	start, end := n.Edit.Selection()
	a := widget.TextAction{Item: n.EditItem(), Offset: start, Length: end - start, Replacement: s}
	return ed.Apply(n, a, typing && start == end)
}

// Insert inserts typed text at the caret, replacing the selection.
func (ed *Editor) Insert(n *widget.Node, s string) error {
	if s = clean(n, s); s == "" {
		return nil
	}
	return ed.replaceSelection(n, s, true)
}

// Backspace deletes the selection, or the grapheme or word before the caret.
func (ed *Editor) Backspace(n *widget.Node, byWord bool) (bool, error) {
	if n.Edit.HasSelection() {
		return true, ed.replaceSelection(n, "", false)
	}
	v, c := n.Value(), n.Edit.Caret
	start := prevGrapheme(v, c)
	if byWord {
		start = prevWord(v, c)
	}
	if start >= c {
		return false, nil
	}
	return true, ed.Apply(n, widget.TextAction{Item: n.EditItem(), Offset: start, Length: c - start}, false)
}

// Delete deletes the selection, or the grapheme or word after the caret.
func (ed *Editor) Delete(n *widget.Node, byWord bool) (bool, error) {
	if n.Edit.HasSelection() {
		return true, ed.replaceSelection(n, "", false)
	}
	v, c := n.Value(), n.Edit.Caret
	end := nextGrapheme(v, c)
	if byWord {
		end = nextWord(v, c)
	}
	if end <= c {
		return false, nil
	}
	return true, ed.Apply(n, widget.TextAction{Item: n.EditItem(), Offset: c, Length: end - c}, false)
}

// Copy writes the selection to the clipboard.
func (ed *Editor) Copy(n *widget.Node) error {
	if !n.Edit.HasSelection() {
		return nil
	}
	start, end := n.Edit.Selection()
	return ed.Clipboard.Write(n.Value()[start:end])
}

// Cut copies the selection and deletes it, reporting whether there was one.
func (ed *Editor) Cut(n *widget.Node) (bool, error) {
	if !n.Edit.HasSelection() {
		return false, nil
	}
	if err := ed.Copy(n); err != nil {
		return false, err
	}
	return true, ed.replaceSelection(n, "", false)
}

// Paste replaces the selection with the clipboard text,
// reporting whether anything was inserted.
func (ed *Editor) Paste(n *widget.Node) (bool, error) {
	s, err := ed.Clipboard.Read()
	if err != nil {
		return false, err
	}
	if s = clean(n, s); s == "" {
		return false, nil
	}
	return true, ed.replaceSelection(n, s, false)
}

// SelectAll selects the whole value.
func (ed *Editor) SelectAll(n *widget.Node) {
	n.Edit.Anchor = 0
	n.Edit.Caret = len(n.Value())
	n.Edit.Typing = false
}

// MoveTo moves the caret to off, snapped to a grapheme boundary.
// Unless extend is set the selection collapses onto the caret.
func (ed *Editor) MoveTo(n *widget.Node, off int, extend bool) {
	n.Edit.Caret = snap(n.Value(), off)
	if !extend {
		n.Edit.Anchor = n.Edit.Caret
	}
	n.Edit.Typing = false
}

// Move moves the caret, extending the selection if extend is set.
func (ed *Editor) Move(n *widget.Node, m Moves, extend bool) {
	v, c := n.Value(), n.Edit.Caret
	if !extend && n.Edit.HasSelection() && (m == MoveLeft || m == MoveRight) {
		start, end := n.Edit.Selection()
		if m == MoveLeft {
			ed.MoveTo(n, start, false)
		} else {
			ed.MoveTo(n, end, false)
		}
		return
	}
	switch m {
	case MoveLeft:
		c = prevGrapheme(v, c)
	case MoveRight:
		c = nextGrapheme(v, c)
	case MoveWordLeft:
		c = prevWord(v, c)
	case MoveWordRight:
		c = nextWord(v, c)
	case MoveHome:
		c = lineStart(v, c)
	case MoveEnd:
		c = lineEnd(v, c)
	}
	ed.MoveTo(n, c, extend)
}

// SetCaretFromPoint moves the caret to the grapheme edge nearest pt,
// which is relative to the origin of the editable item.
func (ed *Editor) SetCaretFromPoint(n *widget.Node, pt math32.Vector2, extend bool) error {
	v := n.Value()
	h, err := ed.Text.HitTest(text.Layout{Text: v, Font: compose.Font(n)}, pt.X, pt.Y)
	if err != nil {
		return err
	}
	ed.MoveTo(n, text.CaretOffset(v, h), extend)
	n.Edit.Trailing = h.Trailing
	return nil
}

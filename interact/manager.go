// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interact is the interaction state machine of a window:
// hover, press, focus, scrollbar and splitter drags, clicks, and
// the routing of keys and text to the focused widget.
package interact

import (
	"log/slog"
	"time"

	"cogentcore.org/boxcore/boxlayout"
	"cogentcore.org/boxcore/events"
	"cogentcore.org/boxcore/events/key"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/render"
	"cogentcore.org/boxcore/scroll"
	"cogentcore.org/boxcore/settings"
	"cogentcore.org/boxcore/textedit"
	"cogentcore.org/boxcore/widget"
)

// Manager handles the input events of one window. It is in exclusive
// control of its own state and only used by the window task.
type Manager struct {
	Settings *settings.Settings
	Editor   *textedit.Editor

	// OnClick is called for clicks that are not handled as a tab selection.
	OnClick func(id widget.ID, item int)

	State States

	// Hover is the target under the pointer, and Press the target
	// captured by the last mouse down, while the button is held.
	Hover Target
	Press Target

	// Focus is the widget receiving keyboard events.
	Focus widget.ID

	Cursor Cursors

	// Preview is the offset of the splitter bar being dragged.
	Preview float32

	held      bool
	dragStart math32.Vector2
	dragValue float32
	dragAxis  math32.Dims

	repeatOn   bool
	repeatNext time.Time
	repeatPt   math32.Vector2
}

// New returns a new idle manager.
func New(st *settings.Settings, ed *textedit.Editor) *Manager {
	return &Manager{Settings: st, Editor: ed, Hover: NoTarget, Press: NoTarget, Focus: widget.NoID}
}

// Validate revalidates the targets at the start of a pass, dropping
// those whose widget or item is gone.
func (m *Manager) Validate(s *widget.Store) {
	if !m.Hover.IsValid(s) {
		m.Hover = NoTarget
	}
	if m.Focus != widget.NoID && !boxlayout.InLayout(s.Node(m.Focus)) {
		if n := s.Node(m.Focus); n != nil {
			m.blur(n)
		}
		m.Focus = widget.NoID
	}
	if m.Press != NoTarget && !m.Press.IsValid(s) {
		slog.Debug("interact: pressed target gone", "target", m.Press)
		m.Press = NoTarget
		m.held = false
		m.Preview = 0
		m.cancelRepeat()
		m.State = m.rest(s)
	}
}

// rest returns the state without a press.
func (m *Manager) rest(s *widget.Store) States {
	if n := s.Node(m.Focus); n != nil && n.Type.IsEditable() {
		return Editing
	}
	if m.Hover.Widget != widget.NoID {
		return Hovering
	}
	return Idle
}

// HandleEvent updates the state for an input event, given the render
// list of the last pass, and returns what the window has to redo.
func (m *Manager) HandleEvent(s *widget.Store, l *render.List, ev events.Event) (Effects, error) {
	switch e := ev.(type) {
	case *events.MouseScroll:
		return m.wheel(s, l, e), nil
	case *events.Mouse:
		switch e.Type() {
		case events.MouseDown:
			return m.down(s, l, e), nil
		case events.MouseUp:
			return m.up(s, l, e)
		default:
			return m.move(s, l, e), nil
		}
	case *events.Key:
		return m.key(s, e)
	case *events.TextInput:
		n := m.editable(s)
		if n == nil {
			return 0, nil
		}
		n.Edit.CaretOn = true
		return NeedsLayout, m.Editor.Insert(n, e.Text)
	case *events.ActionEvent:
		return m.Action(s, e.Action)
	}
	return 0, nil
}

// hit returns the topmost target at pt.
func (m *Manager) hit(l *render.List, pt math32.Vector2) Target {
	if l == nil {
		return NoTarget
	}
	return targetOf(l.HitTest(pt))
}

// cursor returns the pointer shape over the target.
func cursor(s *widget.Store, t Target) Cursors {
	it := t.item(s)
	switch {
	case it == nil:
		return CursorArrow
	case it.Kind == widget.ItemSplitter && it.Axis == math32.Y:
		return CursorResizeRow
	case it.Kind == widget.ItemSplitter:
		return CursorResizeCol
	case it.Kind == widget.ItemText && it.Editable:
		return CursorIBeam
	case it.Kind == widget.ItemTab:
		return CursorPointer
	}
	return CursorArrow
}

// SetFocus moves the keyboard focus to the widget, or clears it for
// [widget.NoID].
func (m *Manager) SetFocus(s *widget.Store, id widget.ID) Effects {
	if id == m.Focus {
		return 0
	}
	if n := s.Node(m.Focus); n != nil {
		m.blur(n)
	}
	m.Focus = widget.NoID
	if n := s.Node(id); n != nil {
		n.Flags.Set(true, widget.Focused)
		if n.Type.IsEditable() {
			m.Editor.Focus(n, true)
		}
		m.Focus = id
	}
	return NeedsRender
}

func (m *Manager) blur(n *widget.Node) {
	n.Flags.Set(false, widget.Focused)
	if n.Type.IsEditable() {
		m.Editor.Focus(n, false)
	}
}

// focusable returns the closest focusable widget at or above id.
func focusable(s *widget.Store, id widget.ID) widget.ID {
	for n := s.Node(id); n != nil; n = s.Node(n.Parent) {
		if n.Type.IsFocusable() && n.Is(widget.Enabled) {
			return n.ID
		}
	}
	return widget.NoID
}

func (m *Manager) down(s *widget.Store, l *render.List, ev *events.Mouse) Effects {
	m.cancelRepeat()
	t := m.hit(l, ev.Where)
	m.Hover, m.Press = t, t
	m.held = true
	m.Cursor = cursor(s, t)
	n := t.node(s)
	if n == nil {
		m.State = Idle
		return 0
	}
	fx := m.SetFocus(s, focusable(s, t.Widget))
	m.State = Pressing
	it := t.item(s)
	if it == nil {
		return fx
	}
	switch it.Kind {
	case widget.ItemScrollMin, widget.ItemScrollMax, widget.ItemScrollBg:
		if m.step(s, ev.Where) {
			fx |= NeedsLayout
		}
		m.repeatOn = true
		m.repeatNext = ev.When.Add(time.Duration(m.Settings.RepeatDelay))
		m.repeatPt = ev.Where
	case widget.ItemScrollThumb:
		m.State = DraggingScrollbar
		m.dragStart = ev.Where
		m.dragValue = n.Scroll[it.Axis].ThumbPos()
	case widget.ItemSplitter:
		m.State = DraggingSplitter
		m.dragStart = ev.Where
		m.dragAxis = it.Axis
		m.Preview = 0
		fx |= NeedsRender
	case widget.ItemText:
		if it.Editable && n.ID == m.Focus {
			m.State = Editing
			m.caretAt(n, it, ev.Where, ev.Mods.Has(key.Shift))
			fx |= NeedsRender
		}
	}
	return fx
}

// caretAt moves the caret of n to the window point pt.
func (m *Manager) caretAt(n *widget.Node, it *widget.Item, pt math32.Vector2, extend bool) {
	origin := render.TextOrigin(n, m.Settings.ScrollBarWidth).Add(it.Pos)
	if err := m.Editor.SetCaretFromPoint(n, pt.Sub(origin), extend); err != nil {
		slog.Debug("interact: caret not moved", "widget", n, "err", err)
	}
	n.Edit.CaretOn = true
}

func (m *Manager) move(s *widget.Store, l *render.List, ev *events.Mouse) Effects {
	if m.held {
		switch m.State {
		case DraggingScrollbar:
			it, n := m.Press.item(s), m.Press.node(s)
			if it == nil {
				return 0
			}
			sa := &n.Scroll[it.Axis]
			if sa.SetValue(scroll.FromThumb(sa, m.dragValue+ev.Where.Sub(m.dragStart).Dim(it.Axis))) {
				return NeedsLayout
			}
			return 0
		case DraggingSplitter:
			return m.preview(s, ev.Where)
		case Editing:
			if n, it := m.Press.node(s), m.Press.item(s); it != nil && it.Editable {
				m.caretAt(n, it, ev.Where, true)
				return NeedsRender
			}
		}
	}
	t := m.hit(l, ev.Where)
	if t == m.Hover {
		return 0
	}
	m.Hover = t
	if !m.held {
		m.Cursor = cursor(s, t)
		m.State = m.rest(s)
	}
	return NeedsRender
}

func (m *Manager) up(s *widget.Store, l *render.List, ev *events.Mouse) (Effects, error) {
	var fx Effects
	var err error
	m.cancelRepeat()
	switch m.State {
	case DraggingSplitter:
		fx, err = m.commit(s)
	case DraggingScrollbar:
	default:
		t := m.hit(l, ev.Where)
		m.Hover = t
		if m.held && t == m.Press && t.Widget != widget.NoID {
			fx = m.click(s, t)
		}
	}
	m.held = false
	m.Press = NoTarget
	m.Preview = 0
	m.Cursor = cursor(s, m.Hover)
	m.State = m.rest(s)
	return fx | NeedsRender, err
}

// click selects the tab of a tab item, or calls OnClick.
func (m *Manager) click(s *widget.Store, t Target) Effects {
	n, it := t.node(s), t.item(s)
	if it != nil && it.Kind == widget.ItemTab {
		idx := s.Index(it.Child)
		if idx < 0 || idx == n.SelectedChild() {
			return 0
		}
		if err := s.Modify(n.ID, widget.KeySelected, widget.Number(float64(idx))); err != nil {
			slog.Debug("interact: tab not selected", "widget", n, "err", err)
			return 0
		}
		return NeedsLayout
	}
	if m.OnClick != nil {
		m.OnClick(t.Widget, t.Item)
	}
	return 0
}

func (m *Manager) wheel(s *widget.Store, l *render.List, ev *events.MouseScroll) Effects {
	t := m.hit(l, ev.Where)
	for n := s.Node(t.Widget); n != nil; n = s.Node(n.Parent) {
		can := false
		changed := false
		for d := math32.X; d <= math32.Y; d++ {
			if ev.Delta.Dim(d) != 0 && n.Is(widget.HasScroll(d)) {
				can = true
				changed = scroll.Scroll(n, d, ev.Delta.Dim(d)) || changed
			}
		}
		if can {
			if changed {
				return NeedsLayout
			}
			return 0
		}
	}
	return 0
}

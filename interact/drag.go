// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"log/slog"
	"time"

	"cogentcore.org/boxcore/boxlayout"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/render"
	"cogentcore.org/boxcore/widget"
)

// step scrolls for a press at pt on the scrollbar part of the press
// target: an end button moves by one step, the track pages toward pt.
// It reports whether the value changed.
func (m *Manager) step(s *widget.Store, pt math32.Vector2) bool {
	n, it := m.Press.node(s), m.Press.item(s)
	if it == nil {
		return false
	}
	d := it.Axis
	sa := &n.Scroll[d]
	var delta float32
	switch it.Kind {
	case widget.ItemScrollMin:
		delta = -sa.Step
	case widget.ItemScrollMax:
		delta = sa.Step
	case widget.ItemScrollBg:
		at := pt.Dim(d) - n.ContentBox().DimMin(d)
		thumb := m.Settings.ScrollBarWidth + sa.ThumbPos()
		switch {
		case at < thumb:
			delta = -sa.ViewSize
		case at >= thumb+sa.Exp:
			delta = sa.ViewSize
		}
	}
	return delta != 0 && sa.SetValue(sa.Value+delta)
}

func (m *Manager) cancelRepeat() {
	m.repeatOn = false
}

// Deadline returns the time of the next repeat of a held scrollbar
// button, if one is pending.
func (m *Manager) Deadline() (time.Time, bool) {
	return m.repeatNext, m.repeatOn
}

// Tick repeats the held scrollbar button when its time has come and
// the pointer is still over it.
func (m *Manager) Tick(s *widget.Store, now time.Time) Effects {
	if !m.repeatOn || now.Before(m.repeatNext) {
		return 0
	}
	m.repeatNext = now.Add(time.Duration(m.Settings.RepeatInterval))
	if m.Hover != m.Press || !m.step(s, m.repeatPt) {
		return 0
	}
	return NeedsLayout
}

// siblings returns the widgets before and after the pressed splitter bar.
func (m *Manager) siblings(s *widget.Store) (n, prev, next *widget.Node, it *widget.Item) {
	n, it = m.Press.node(s), m.Press.item(s)
	if it == nil || it.Kind != widget.ItemSplitter {
		return nil, nil, nil, nil
	}
	i := s.Index(it.Child)
	if i < 0 {
		return nil, nil, nil, nil
	}
	prev = s.Node(it.Child)
	for _, c := range n.Children[i+1:] {
		if cn := s.Node(c); boxlayout.InLayout(cn) && !cn.Style.IsPositioned() {
			return n, prev, cn, it
		}
	}
	return nil, nil, nil, nil
}

// preview moves the splitter bar with the pointer, without relayout.
func (m *Manager) preview(s *widget.Store, pt math32.Vector2) Effects {
	_, prev, next, it := m.siblings(s)
	if it == nil {
		return 0
	}
	d := it.Axis
	p := math32.Clamp(pt.Sub(m.dragStart).Dim(d), -prev.Box.DimSize(d), next.Box.DimSize(d))
	if p == m.Preview {
		return 0
	}
	m.Preview = p
	return NeedsRender
}

// commit converts the previewed offset into explicit sizes of the
// two siblings of the bar, keeping their sum.
func (m *Manager) commit(s *widget.Store) (Effects, error) {
	_, prev, next, it := m.siblings(s)
	if it == nil || m.Preview == 0 {
		return 0, nil
	}
	k := widget.KeyWidth
	if it.Axis == math32.Y {
		k = widget.KeyHeight
	}
	a := prev.Box.DimSize(it.Axis) + m.Preview
	b := next.Box.DimSize(it.Axis) - m.Preview
	slog.Debug("interact: splitter committed", "prev", prev, "next", next, "sizes", [2]float32{a, b})
	if err := s.Modify(prev.ID, k, widget.Number(float64(a))); err != nil {
		return 0, err
	}
	if err := s.Modify(next.ID, k, widget.Number(float64(b))); err != nil {
		return 0, err
	}
	return NeedsLayout, nil
}

// ApplyPreview offsets the dragged splitter bar in the render list.
func (m *Manager) ApplyPreview(l *render.List) {
	if m.State != DraggingSplitter || m.Preview == 0 || l == nil {
		return
	}
	var off math32.Vector2
	off.SetDim(m.dragAxis, m.Preview)
	for i := range l.Entries {
		e := &l.Entries[i]
		if e.Widget == m.Press.Widget && e.Kind == render.EntryItem && e.Item == m.Press.Item {
			e.Rect = e.Rect.Translate(off)
		}
	}
}

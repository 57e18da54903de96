// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cascade is the style bridge: it calls the style resolver for
// every widget in pre-order and turns the computed properties into the
// resolved style snapshot of the widget, resolving inherit against the
// already resolved parent and converting all lengths to dots.
package cascade

import (
	"fmt"
	"log/slog"

	"cogentcore.org/boxcore/base/errors"
	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/styles"
	"cogentcore.org/boxcore/styles/units"
	"cogentcore.org/boxcore/widget"
	"github.com/jinzhu/copier"
)

// Context is the input of a cascade pass.
type Context struct {
	Resolver styles.Resolver
	Sheets   []*styles.Sheet

	// Units has the DPI and the window size (Vpw, Vph).
	Units units.Context

	// FontSize and LineHeight are the defaults of the root;
	// a zero LineHeight derives it from the font size.
	FontSize   float32
	LineHeight float32
}

// root returns the style the root widget inherits from.
func (cx *Context) root() styles.Style {
	var st styles.Style
	st.Defaults()
	if cx.FontSize > 0 {
		st.FontSize = cx.FontSize
		st.LineHeight = cx.FontSize * styles.LineHeightNormal
	}
	if cx.LineHeight > 0 {
		st.LineHeight = cx.LineHeight
	}
	return st
}

// Apply resolves the style of every widget of the store and sets
// the [widget.Visible] state: a widget enters layout only when its
// resolved visibility is visible, its display is not none, and its
// parent entered layout. Resolver errors are returned unchanged.
func Apply(s *widget.Store, cx *Context) error {
	top := cx.root()
	window := math32.Vec2(cx.Units.Vpw, cx.Units.Vph)
	if root := s.Root(); root.Box.IsEmpty() {
		root.Box = math32.B2Size(math32.Vector2{}, window)
	}
	return apply(s, s.Root(), &top, window, true, cx)
}

func apply(s *widget.Store, n *widget.Node, parent *styles.Style, psize math32.Vector2, pvis bool, cx *Context) error {
	pr, err := cx.Resolver.Resolve(n, cx.Sheets)
	if err != nil {
		return fmt.Errorf("resolving style of %v: %w", n, err)
	}
	uc := cx.Units
	uc.FontRem = cx.root().FontSize
	uc.Paw, uc.Pah = psize.X, psize.Y
	Resolve(&n.Style, pr, parent, &uc)
	vis := pvis && n.Style.IsVisible()
	n.Flags.Set(vis, widget.Visible)
	if !vis {
		slog.Debug("cascade: widget not in layout", "widget", n, "display", n.Style.Display, "visibility", n.Style.Visibility)
	}
	csize := n.ContentBox().Size()
	for _, c := range n.Children {
		cn := s.Node(c)
		if cn == nil {
			return fmt.Errorf("child %d of %v: %w", c, n, widget.ErrCorruptedState)
		}
		if err := apply(s, cn, &n.Style, csize, vis, cx); err != nil {
			return err
		}
	}
	return nil
}

// Resolve computes the style st from the computed properties pr and the
// resolved parent style. uc carries the parent content size for
// percentages and the root font size for rem; the font size of st is
// set on it before the box sides are converted.
func Resolve(st *styles.Style, pr *styles.Properties, parent *styles.Style, uc *units.Context) {
	var inh styles.Inherited
	errors.Log(copier.Copy(&inh, parent))
	*st = styles.Style{}
	errors.Log(copier.Copy(st, &inh))

	st.Display = pr.Display
	if st.Display == styles.DisplayInherit {
		st.Display = parent.Display
	}
	st.Position = pr.Position
	if st.Position == styles.PositionInherit {
		st.Position = parent.Position
	}
	st.Visibility = pr.Visibility
	if st.Visibility == styles.VisibilityInherit {
		st.Visibility = parent.Visibility
	}

	if !pr.FontSize.IsZero() {
		fs := pr.FontSize
		if fs.Unit == units.UnitPct {
			st.FontSize = parent.FontSize * fs.Value / 100
		} else {
			uc.FontEm = parent.FontSize
			st.FontSize = fs.ToDots(uc)
		}
		st.LineHeight = st.FontSize * styles.LineHeightNormal
	}
	uc.FontEm = st.FontSize
	if lh := pr.LineHeight; !lh.IsZero() {
		switch lh.Unit {
		case units.UnitPct:
			st.LineHeight = st.FontSize * lh.Value / 100
		case units.UnitDot:
			st.LineHeight = lh.Value
		default:
			st.LineHeight = lh.ToDots(uc)
		}
	}

	if pr.Color != nil {
		st.Color = styles.AsRGBA(pr.Color)
	}
	if pr.Background != nil {
		st.Background = styles.AsRGBA(pr.Background)
	}
	st.Margin = pr.Margin.ToDots(uc)
	st.Border = pr.Border.ToDots(uc)
	st.Padding = pr.Padding.ToDots(uc)
}

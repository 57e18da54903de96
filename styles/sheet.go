// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"cogentcore.org/boxcore/styles/sides"
	"cogentcore.org/boxcore/styles/units"
)

// Sheet is a parsed stylesheet. Only universal (*), type (list) and
// name (#name) selectors are matched; other rules are kept but never apply.
type Sheet struct {
	Rules []*css.Rule
}

// ParseSheet parses the string into a Sheet of rules, which can then be
// used for resolving properties. At-rules are dropped.
func ParseSheet(str string) (*Sheet, error) {
	pss, err := parser.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("styles.ParseSheet: %w", err)
	}
	sh := &Sheet{}
	for _, r := range pss.Rules {
		if r.Kind == css.AtRule {
			continue // not supported
		}
		sh.Rules = append(sh.Rules, r)
	}
	return sh, nil
}

// matches returns whether the selector applies to the element.
func matches(sel string, el Element) bool {
	sel = strings.TrimSpace(sel)
	switch {
	case sel == "*":
		return true
	case strings.HasPrefix(sel, "#"):
		return el.StyleName() != "" && sel[1:] == el.StyleName()
	}
	return sel == el.StyleType()
}

// SheetResolver is the bundled [Resolver]: it applies the declarations of
// every matching rule in sheet order, then the inline style of the element,
// with !important declarations applied last.
type SheetResolver struct{}

// Resolve implements [Resolver].
func (SheetResolver) Resolve(el Element, sheets []*Sheet) (*Properties, error) {
	var decls []*css.Declaration
	for _, sh := range sheets {
		if sh == nil {
			continue
		}
		for _, r := range sh.Rules {
			for _, sel := range r.Selectors {
				if matches(sel, el) {
					decls = append(decls, r.Declarations...)
					break
				}
			}
		}
	}
	if inl := el.InlineStyle(); inl != "" {
		ids, err := parser.ParseDeclarations(inl)
		if err != nil {
			return nil, fmt.Errorf("styles: inline style of %s %q: %w", el.StyleType(), el.StyleName(), err)
		}
		decls = append(decls, ids...)
	}
	pr := NewProperties()
	for _, important := range []bool{false, true} {
		for _, d := range decls {
			if d.Important != important {
				continue
			}
			if err := pr.Apply(d.Property, d.Value); err != nil {
				slog.Debug("styles: ignoring declaration", "property", d.Property, "value", d.Value, "err", err)
			}
		}
	}
	return pr, nil
}

// Apply sets one CSS property from its string value.
// Unknown properties are ignored.
func (pr *Properties) Apply(prop, val string) error {
	val = strings.TrimSpace(val)
	inherit := strings.EqualFold(val, "inherit")
	switch strings.ToLower(prop) {
	case "display":
		return pr.Display.SetString(val)
	case "position":
		return pr.Position.SetString(val)
	case "visibility":
		return pr.Visibility.SetString(val)
	case "font-size":
		if inherit {
			pr.FontSize = units.Value{}
			return nil
		}
		return setValue(&pr.FontSize, val)
	case "line-height":
		if inherit || strings.EqualFold(val, "normal") {
			pr.LineHeight = units.Value{}
			return nil
		}
		return setValue(&pr.LineHeight, val)
	case "color":
		if inherit {
			pr.Color = nil
			return nil
		}
		c, err := ParseColor(val)
		if err != nil {
			return err
		}
		pr.Color = c
	case "background", "background-color":
		c, err := ParseColor(val)
		if err != nil {
			return err
		}
		pr.Background = c
	case "margin":
		return pr.Margin.SetString(val)
	case "padding":
		return pr.Padding.SetString(val)
	case "border", "border-width":
		return setBorder(&pr.Border, val)
	default:
		for _, side := range []string{"top", "right", "bottom", "left"} {
			switch strings.ToLower(prop) {
			case "margin-" + side:
				return setSide(&pr.Margin, side, val)
			case "padding-" + side:
				return setSide(&pr.Padding, side, val)
			case "border-" + side + "-width", "border-" + side:
				v, err := firstLength(val)
				if err != nil {
					return err
				}
				return setSide(&pr.Border, side, v.String())
			}
		}
	}
	return nil
}

func setValue(dst *units.Value, val string) error {
	v, err := units.StringToValue(val)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setSide(sv *sides.Values, side, val string) error {
	v, err := units.StringToValue(val)
	if err != nil {
		return err
	}
	switch side {
	case "top":
		sv.Top = v
	case "right":
		sv.Right = v
	case "bottom":
		sv.Bottom = v
	case "left":
		sv.Left = v
	}
	return nil
}

// setBorder handles border-width lists and the border shorthand,
// where only the width is used.
func setBorder(sv *sides.Values, val string) error {
	if err := sv.SetString(val); err == nil {
		return nil
	}
	v, err := firstLength(val)
	if err != nil {
		return err
	}
	sv.Set(v)
	return nil
}

// firstLength returns the first field of a shorthand value that is a length.
func firstLength(val string) (units.Value, error) {
	for _, f := range strings.Fields(val) {
		if v, err := units.StringToValue(f); err == nil {
			return v, nil
		}
	}
	return units.Value{}, fmt.Errorf("styles: no length in %q", val)
}

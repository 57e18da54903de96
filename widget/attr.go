// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/boxcore/base/ordmap"
)

// Keys are the known attribute names.
type Keys int32

const (
	// KeyValue is the text of a label, button or edit widget.
	KeyValue Keys = iota

	// KeyLabel is the tab label of a child of a tabs widget.
	KeyLabel

	// KeyName is matched by #name style selectors.
	KeyName

	// KeyStyle holds inline style declarations.
	KeyStyle

	KeyWeight
	KeyWeightX
	KeyWeightY

	// KeyWidth and KeyHeight are explicit sizes in pixels.
	KeyWidth
	KeyHeight

	// KeyGap is the fixed gap between children of a box layout.
	KeyGap

	// KeySelected is the index of the selected tab or combo row.
	KeySelected

	// KeyHScroll and KeyVScroll are the scrollbar policies: "none", "auto" or "always".
	KeyHScroll
	KeyVScroll

	// KeyX and KeyY are the offsets of a child of a none layout
	// or of a positioned child.
	KeyX
	KeyY

	// KeyEnabled disables input when false.
	KeyEnabled
)

var keyNames = []string{"value", "label", "name", "style", "weight", "weight_x", "weight_y",
	"width", "height", "gap", "selected", "hscroll", "vscroll", "x", "y", "enabled"}

func (k Keys) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return fmt.Sprintf("Keys(%d)", k)
	}
	return keyNames[k]
}

// SetString sets the key from its name.
func (k *Keys) SetString(s string) error {
	i := slices.Index(keyNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return fmt.Errorf("widget: unknown attribute %q", s)
	}
	*k = Keys(i)
	return nil
}

// AttrKinds are the kinds of [Attribute].
type AttrKinds int32

const (
	AttrString AttrKinds = iota
	AttrNumber
	AttrBool
)

// Attribute is a tagged union of the attribute value kinds.
type Attribute struct {
	Kind AttrKinds
	Str  string
	Num  float64
	Bool bool
}

// String returns a string attribute.
func String(s string) Attribute { return Attribute{Kind: AttrString, Str: s} }

// Number returns a number attribute.
func Number(f float64) Attribute { return Attribute{Kind: AttrNumber, Num: f} }

// Bool returns a bool attribute.
func Bool(b bool) Attribute { return Attribute{Kind: AttrBool, Bool: b} }

// ParseAttribute returns a number for a numeric string, a bool for
// "true" and "false", and a string otherwise.
func ParseAttribute(s string) Attribute {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f)
	}
	if b, err := strconv.ParseBool(s); err == nil && (s == "true" || s == "false") {
		return Bool(b)
	}
	return String(s)
}

// AsString returns the attribute as a string.
func (a Attribute) AsString() string {
	switch a.Kind {
	case AttrNumber:
		return strconv.FormatFloat(a.Num, 'g', -1, 64)
	case AttrBool:
		return strconv.FormatBool(a.Bool)
	}
	return a.Str
}

// AsNumber returns the attribute as a number, and whether it is one.
func (a Attribute) AsNumber() (float64, bool) {
	switch a.Kind {
	case AttrNumber:
		return a.Num, true
	case AttrString:
		f, err := strconv.ParseFloat(strings.TrimSpace(a.Str), 64)
		return f, err == nil
	}
	return 0, false
}

// AsBool returns the attribute as a bool.
func (a Attribute) AsBool() bool {
	switch a.Kind {
	case AttrNumber:
		return a.Num != 0
	case AttrString:
		b, _ := strconv.ParseBool(a.Str)
		return b
	}
	return a.Bool
}

func (a Attribute) String() string { return a.AsString() }

// Attributes is the ordered attribute map of a widget.
type Attributes = ordmap.Map[Keys, Attribute]

// ScrollPolicies determine when a scrollbar is shown.
type ScrollPolicies int32

const (
	ScrollNone ScrollPolicies = iota
	ScrollAuto
	ScrollAlways
)

// ScrollPolicy returns the policy from a scroll attribute:
// a true bool or "always" forces the bar, "auto" shows it when needed.
func ScrollPolicy(a Attribute, has bool) ScrollPolicies {
	if !has {
		return ScrollNone
	}
	if a.Kind == AttrBool || a.Kind == AttrNumber {
		if a.AsBool() {
			return ScrollAlways
		}
		return ScrollNone
	}
	switch strings.ToLower(strings.TrimSpace(a.Str)) {
	case "auto":
		return ScrollAuto
	case "always", "true", "on":
		return ScrollAlways
	}
	return ScrollNone
}

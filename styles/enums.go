// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strings"
)

// Displays determines how an element takes part in layout.
type Displays int32

const (
	// DisplayInherit takes the computed display of the parent.
	DisplayInherit Displays = iota

	// DisplayBlock takes part in the layout of its parent.
	DisplayBlock

	// DisplayNone removes the element and its subtree from layout.
	DisplayNone
)

var displayNames = []string{"inherit", "block", "none"}

// String returns the CSS keyword for the display.
func (d Displays) String() string { return enumString(displayNames, int(d), "Displays") }

// SetString sets the display from its CSS keyword.
// "flex" and "inline" are accepted as block.
func (d *Displays) SetString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flex", "inline", "inline-block", "grid":
		*d = DisplayBlock
		return nil
	}
	return setEnum(displayNames, s, (*int32)(d), "display")
}

// Positions determines how an element is positioned.
type Positions int32

const (
	// PositionInherit takes the computed position of the parent.
	PositionInherit Positions = iota

	// PositionStatic is placed by the layout of its parent.
	PositionStatic

	// PositionRelative is placed by the layout of its parent.
	PositionRelative

	// PositionAbsolute is placed at an offset from its parent's content box
	// and is exempt from containment.
	PositionAbsolute

	// PositionFixed is placed at an offset from the window
	// and is exempt from containment.
	PositionFixed
)

var positionNames = []string{"inherit", "static", "relative", "absolute", "fixed"}

// String returns the CSS keyword for the position.
func (p Positions) String() string { return enumString(positionNames, int(p), "Positions") }

// SetString sets the position from its CSS keyword.
func (p *Positions) SetString(s string) error {
	return setEnum(positionNames, s, (*int32)(p), "position")
}

// Visibilities determines whether an element is drawn.
type Visibilities int32

const (
	// VisibilityInherit takes the computed visibility of the parent.
	VisibilityInherit Visibilities = iota

	// VisibilityVisible elements are laid out and drawn.
	VisibilityVisible

	// VisibilityHidden elements do not enter layout.
	VisibilityHidden

	// VisibilityCollapse behaves as hidden.
	VisibilityCollapse
)

var visibilityNames = []string{"inherit", "visible", "hidden", "collapse"}

// String returns the CSS keyword for the visibility.
func (v Visibilities) String() string { return enumString(visibilityNames, int(v), "Visibilities") }

// SetString sets the visibility from its CSS keyword.
func (v *Visibilities) SetString(s string) error {
	return setEnum(visibilityNames, s, (*int32)(v), "visibility")
}

func enumString(names []string, i int, typ string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, i)
	}
	return names[i]
}

func setEnum(names []string, s string, dst *int32, prop string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range names {
		if nm == s {
			*dst = int32(i)
			return nil
		}
	}
	return fmt.Errorf("styles: invalid %s value %q", prop, s)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cogentcore.org/boxcore/bitflag"
)

// Modifiers are the modifier keys, as bit positions.
type Modifiers int64

const (
	Shift Modifiers = iota
	Control
	Alt
	Meta
)

var modifierNames = []string{"Shift", "Control", "Alt", "Meta"}

// Mods returns the bit mask of the given modifiers.
func Mods(ms ...Modifiers) Modifiers {
	var m int64
	bitflag.Set(&m, ms...)
	return Modifiers(m)
}

// Has returns whether any of the given modifiers is held in the mask.
func (m Modifiers) Has(ms ...Modifiers) bool {
	return bitflag.HasAny(int64(m), ms...)
}

// String returns the held modifiers joined by "+".
func (m Modifiers) String() string {
	var s []string
	for i, nm := range modifierNames {
		if m.Has(Modifiers(i)) {
			s = append(s, nm)
		}
	}
	return strings.Join(s, "+")
}

// Chord is a key with its modifiers, such as "Control+z" or "Shift+Home".
type Chord string

// NewChord returns the chord of a rune or code with modifiers.
func NewChord(r rune, code Codes, mods Modifiers) Chord {
	k := code.String()
	if code == CodeUnknown {
		if r == 0 {
			return Chord(mods.String())
		}
		k = string(r)
	}
	if ms := mods.String(); ms != "" {
		return Chord(ms + "+" + k)
	}
	return Chord(k)
}

// Decode returns the rune, code and modifiers of the chord.
func (ch Chord) Decode() (r rune, code Codes, mods Modifiers, err error) {
	parts := strings.Split(string(ch), "+")
	last := parts[len(parts)-1]
	if last == "" && len(parts) > 1 {
		last = "+"
		parts = parts[:len(parts)-2]
	} else {
		parts = parts[:len(parts)-1]
	}
	for _, p := range parts {
		found := false
		for i, nm := range modifierNames {
			if p == nm {
				mods |= Mods(Modifiers(i))
				found = true
			}
		}
		if !found {
			return 0, 0, 0, fmt.Errorf("chord %q: unknown modifier %q", ch, p)
		}
	}
	if err := code.SetString(last); err == nil && code != CodeUnknown {
		return 0, code, mods, nil
	}
	code = CodeUnknown
	if utf8.RuneCountInString(last) != 1 {
		return 0, 0, 0, errors.New("chord " + string(ch) + ": not a single key")
	}
	r, _ = utf8.DecodeRuneInString(last)
	return r, code, mods, nil
}

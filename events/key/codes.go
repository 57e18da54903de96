// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines key codes, modifiers and chords.
package key

import "fmt"

// Codes are the codes of the keys with an editing or navigation meaning.
// Character keys have [CodeUnknown] and a rune.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeBackspace
	CodeDelete
	CodeReturnEnter
	CodeTab
	CodeEscape
)

var codeNames = []string{"Unknown", "LeftArrow", "RightArrow", "UpArrow", "DownArrow", "Home", "End",
	"PageUp", "PageDown", "Backspace", "Delete", "ReturnEnter", "Tab", "Escape"}

func (c Codes) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("Codes(%d)", c)
	}
	return codeNames[c]
}

// SetString sets the code from its name.
func (c *Codes) SetString(s string) error {
	for i, nm := range codeNames {
		if nm == s {
			*c = Codes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid key code", s)
}

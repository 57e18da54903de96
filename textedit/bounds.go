// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textedit

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// prevGrapheme returns the start of the grapheme before off.
func prevGrapheme(s string, off int) int {
	prev := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		start, _ := g.Positions()
		if start >= off {
			break
		}
		prev = start
	}
	return prev
}

// nextGrapheme returns the end of the grapheme at off.
func nextGrapheme(s string, off int) int {
	if off >= len(s) {
		return len(s)
	}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if _, end := g.Positions(); end > off {
			return end
		}
	}
	return len(s)
}

// snap returns the grapheme boundary at or before off.
func snap(s string, off int) int {
	off = min(max(off, 0), len(s))
	if off == len(s) {
		return off
	}
	return prevGrapheme(s, off+1)
}

type word struct {
	start, end int
	space      bool
}

func words(s string) []word {
	var ws []word
	state := -1
	pos := 0
	for rest := s; rest != ""; {
		var w string
		w, rest, state = uniseg.FirstWordInString(rest, state)
		ws = append(ws, word{start: pos, end: pos + len(w), space: strings.TrimFunc(w, isBreak) == ""})
		pos += len(w)
	}
	return ws
}

func isBreak(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// prevWord returns the start of the word before off.
func prevWord(s string, off int) int {
	prev := 0
	for _, w := range words(s) {
		if w.start >= off {
			break
		}
		if !w.space {
			prev = w.start
		}
	}
	return prev
}

// nextWord returns the end of the word after off.
func nextWord(s string, off int) int {
	for _, w := range words(s) {
		if w.end > off && !w.space {
			return w.end
		}
	}
	return len(s)
}

// lineStart and lineEnd return the bounds of the line containing off.
func lineStart(s string, off int) int {
	return strings.LastIndexByte(s[:off], '\n') + 1
}

func lineEnd(s string, off int) int {
	if i := strings.IndexByte(s[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(s)
}

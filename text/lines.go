// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"unicode/utf8"

	"cogentcore.org/boxcore/math32"
	"github.com/rivo/uniseg"
)

// glyph is one grapheme cluster placed on a line.
type glyph struct {
	start, end int
	x, w       float32
	line       int
	newline    bool
}

// lines is a text broken into grapheme clusters and lines.
type lines struct {
	glyphs []glyph
	n      int
	width  float32
	height float32 // of one line
	length int
}

// layout places the grapheme clusters of s using adv for their advances.
func layout(s string, f Font, lh float32, adv func(cluster string) float32) (*lines, error) {
	if f.Size <= 0 || !utf8.ValidString(s) {
		return nil, ErrUnmeasurable
	}
	ls := &lines{n: 1, height: lh, length: len(s)}
	var x float32
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		from, to := g.Positions()
		cl := g.Str()
		if cl == "\n" || cl == "\r\n" {
			ls.glyphs = append(ls.glyphs, glyph{start: from, end: to, x: x, line: ls.n - 1, newline: true})
			ls.n++
			x = 0
			continue
		}
		w := adv(cl)
		ls.glyphs = append(ls.glyphs, glyph{start: from, end: to, x: x, w: w, line: ls.n - 1})
		x += w
		ls.width = math32.Max(ls.width, x)
	}
	return ls, nil
}

func (ls *lines) metrics() Metrics {
	return Metrics{Width: ls.width, Height: float32(ls.n) * ls.height, Lines: ls.n}
}

func (ls *lines) hitTest(x, y float32) Hit {
	line := 0
	if ls.height > 0 {
		line = int(math32.Floor(y / ls.height))
	}
	line = min(max(line, 0), ls.n-1)
	inside := y >= 0 && y < float32(ls.n)*ls.height && x >= 0
	var last *glyph
	for i := range ls.glyphs {
		g := &ls.glyphs[i]
		if g.line < line {
			continue
		}
		if g.line > line {
			break
		}
		if g.newline {
			if last != nil {
				return Hit{Offset: last.start, Trailing: true}
			}
			return Hit{Offset: g.start}
		}
		if x < g.x+g.w {
			return Hit{Offset: g.start, Trailing: x >= g.x+g.w/2, Inside: inside}
		}
		last = g
	}
	if last != nil {
		return Hit{Offset: last.start, Trailing: true}
	}
	return Hit{Offset: ls.length}
}

func (ls *lines) position(offset int, trailing bool) Position {
	pos := Position{Height: ls.height}
	for i := range ls.glyphs {
		g := &ls.glyphs[i]
		if offset >= g.start && offset < g.end {
			pos.X, pos.Y = g.x, float32(g.line)*ls.height
			if trailing && !g.newline {
				pos.X += g.w
			}
			return pos
		}
	}
	if n := len(ls.glyphs); n > 0 {
		g := &ls.glyphs[n-1]
		if g.newline {
			pos.Y = float32(g.line+1) * ls.height
		} else {
			pos.X, pos.Y = g.x+g.w, float32(g.line)*ls.height
		}
	}
	return pos
}

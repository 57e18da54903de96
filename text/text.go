// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text defines the text measurement and hit-testing service
// used by layout and editing, with a deterministic cell-grid
// implementation ([Mono]) and one on the Go fonts ([Faces]).
// Text is not wrapped: only newlines break lines.
package text

import (
	"errors"

	"github.com/rivo/uniseg"
)

// ErrUnmeasurable is returned for text that cannot be measured, such as
// invalid UTF-8 or a non-positive font size. Callers degrade the text to
// a zero-size item.
var ErrUnmeasurable = errors.New("text: unmeasurable")

// Font is the font of a text run.
type Font struct {
	// Size is the font size in dots.
	Size float32

	// LineHeight is the height of one line in dots; zero uses the font metrics.
	LineHeight float32
}

// Metrics are the measured extent of a text.
type Metrics struct {
	Width  float32
	Height float32
	Lines  int
}

// Layout is a laid out text, the input of hit testing.
type Layout struct {
	Text string
	Font Font
}

// Hit is the result of hit testing a point against a [Layout].
type Hit struct {
	// Offset is the byte offset of the grapheme under the point.
	Offset int

	// Trailing is set when the point is on the trailing half of the grapheme.
	Trailing bool

	// Inside is set when the point is within the text.
	Inside bool
}

// Position is the location of a caret within a [Layout].
type Position struct {
	X, Y   float32
	Height float32
}

// Service measures and hit-tests text.
// Implementations are used by one window and need not be safe for concurrent use.
type Service interface {
	Measure(s string, f Font) (Metrics, error)
	HitTest(l Layout, x, y float32) (Hit, error)
	HitTestPosition(l Layout, offset int, trailing bool) (Position, error)
}

// CaretOffset returns the caret offset for a hit in s: the offset of the
// grapheme, or the offset after it for a trailing hit.
func CaretOffset(s string, h Hit) int {
	if !h.Trailing || h.Offset >= len(s) {
		return min(h.Offset, len(s))
	}
	cl, _, _, _ := uniseg.FirstGraphemeClusterInString(s[h.Offset:], -1)
	return h.Offset + len(cl)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/text"
)

// Op is one recorded drawing operation.
type Op struct {
	Name  string
	Rect  math32.Box2
	Text  string
	Color color.RGBA
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s %v %q", o.Name, o.Rect, o.Text)
	}
	return fmt.Sprintf("%s %v", o.Name, o.Rect)
}

// Recorder is a [Rasterizer] that records the operations it is given,
// skipping those entirely outside the current clip.
type Recorder struct {
	Ops   []Op
	clips []math32.Box2
}

func (r *Recorder) clip() (math32.Box2, bool) {
	if len(r.clips) == 0 {
		return math32.Box2{}, false
	}
	return r.clips[len(r.clips)-1], true
}

func (r *Recorder) record(o Op) {
	if c, ok := r.clip(); ok && c.Intersect(o.Rect).IsEmpty() && o.Name != "text" {
		return
	}
	r.Ops = append(r.Ops, o)
}

func (r *Recorder) FillRect(b math32.Box2, c color.RGBA) {
	r.record(Op{Name: "fill", Rect: b, Color: c})
}

func (r *Recorder) DrawText(s string, pos math32.Vector2, f text.Font, c color.RGBA) {
	r.record(Op{Name: "text", Rect: math32.B2Size(pos, math32.Vec2(0, f.LineHeight)), Text: s, Color: c})
}

func (r *Recorder) DrawImage(img image.Image, b math32.Box2) {
	r.record(Op{Name: "image", Rect: b})
}

func (r *Recorder) PushClip(b math32.Box2) {
	if c, ok := r.clip(); ok {
		b = c.Intersect(b)
	}
	r.clips = append(r.clips, b)
}

func (r *Recorder) PopClip() {
	if len(r.clips) > 0 {
		r.clips = r.clips[:len(r.clips)-1]
	}
}

// WriteTo writes the recorded operations, one per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, o := range r.Ops {
		m, err := fmt.Fprintln(w, o)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

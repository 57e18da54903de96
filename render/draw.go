// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"

	"cogentcore.org/boxcore/math32"
	"cogentcore.org/boxcore/text"
	"cogentcore.org/boxcore/widget"
	"golang.org/x/image/vector"
)

// Rasterizer draws render list entries.
type Rasterizer interface {
	FillRect(r math32.Box2, c color.RGBA)
	DrawText(s string, pos math32.Vector2, f text.Font, c color.RGBA)
	DrawImage(img image.Image, r math32.Box2)
	PushClip(r math32.Box2)
	PopClip()
}

// Colors of the drawn parts.
var (
	HeaderColor   = color.RGBA{230, 230, 230, 255}
	TrackColor    = color.RGBA{240, 240, 240, 255}
	ButtonColor   = color.RGBA{210, 210, 210, 255}
	ThumbColor    = color.RGBA{160, 160, 160, 255}
	SplitterColor = color.RGBA{200, 200, 200, 255}
	TabColor      = color.RGBA{225, 225, 225, 255}
	SelectedColor = color.RGBA{200, 220, 250, 255}
)

// Draw replays the render list to the rasterizer, each entry within its clip.
func (l *List) Draw(r Rasterizer) {
	for i := range l.Entries {
		e := &l.Entries[i]
		if e.Clip.IsEmpty() {
			continue
		}
		r.PushClip(e.Clip)
		drawEntry(r, e)
		r.PopClip()
	}
}

func drawEntry(r Rasterizer, e *Entry) {
	switch e.Kind {
	case EntryBox:
		if e.Background.A > 0 {
			r.FillRect(e.Rect, e.Background)
		}
		return
	case EntryCaret:
		r.FillRect(e.Rect, e.Color)
		return
	case EntrySelection:
		r.FillRect(e.Rect, e.Background)
		return
	}
	switch e.ItemKind {
	case widget.ItemText:
		if e.Selected {
			r.FillRect(e.Rect, SelectedColor)
		}
		r.DrawText(e.Text, e.Rect.Min, e.Font, e.Color)
	case widget.ItemRowHeader, widget.ItemColHeader:
		r.FillRect(e.Rect, HeaderColor)
		r.DrawText(e.Text, e.Rect.Min, e.Font, e.Color)
	case widget.ItemTab:
		bg := TabColor
		if e.Selected {
			bg = SelectedColor
		}
		r.FillRect(e.Rect, bg)
		pad := math32.Vec2(e.Font.Size/2, (e.Rect.DimSize(math32.Y)-e.Font.LineHeight)/2)
		r.DrawText(e.Text, e.Rect.Min.Add(pad), e.Font, e.Color)
	case widget.ItemScrollBg:
		r.FillRect(e.Rect, TrackColor)
	case widget.ItemScrollMin, widget.ItemScrollMax:
		r.FillRect(e.Rect, ButtonColor)
		r.DrawImage(Arrow(e.Rect.Size().ToPoint(), e.ItemKind == widget.ItemScrollMax, axisOf(e)), e.Rect)
	case widget.ItemScrollThumb:
		r.FillRect(e.Rect, ThumbColor)
	case widget.ItemSplitter:
		r.FillRect(e.Rect, SplitterColor)
	}
}

// axisOf returns the scroll axis of a scrollbar part from its shape.
func axisOf(e *Entry) math32.Dims {
	if e.Rect.DimSize(math32.X) > e.Rect.DimSize(math32.Y) {
		return math32.X
	}
	return math32.Y
}

// Arrow returns the arrow glyph of a scrollbar end button as an alpha
// mask of the given size, pointing toward the end of the track if forward.
func Arrow(size image.Point, forward bool, d math32.Dims) *image.Alpha {
	w, h := float32(size.X), float32(size.Y)
	z := vector.NewRasterizer(size.X, size.Y)
	lo, hi, mid := float32(0.3), float32(0.7), float32(0.5)
	pts := [3][2]float32{{lo, hi}, {hi, hi}, {mid, lo}}
	if forward {
		pts = [3][2]float32{{lo, lo}, {hi, lo}, {mid, hi}}
	}
	if d == math32.X {
		for i := range pts {
			pts[i][0], pts[i][1] = pts[i][1], pts[i][0]
		}
	}
	z.MoveTo(pts[0][0]*w, pts[0][1]*h)
	z.LineTo(pts[1][0]*w, pts[1][1]*h)
	z.LineTo(pts[2][0]*w, pts[2][1]*h)
	z.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

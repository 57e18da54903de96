// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"fmt"
	"unicode/utf8"

	"cogentcore.org/boxcore/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces is a [Service] that measures with the advances and kerning
// of an OpenType font, by default Go Regular. Faces are cached per size.
type Faces struct {
	font  *opentype.Font
	faces map[float32]font.Face
}

// NewFaces returns a service for the given OpenType font data,
// or for Go Regular if data is nil.
func NewFaces(data []byte) (*Faces, error) {
	if data == nil {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}
	return &Faces{font: f, faces: make(map[float32]font.Face)}, nil
}

// Face returns the face for the given size in dots.
func (fs *Faces) Face(size float32) (font.Face, error) {
	if fc, ok := fs.faces[size]; ok {
		return fc, nil
	}
	fc, err := opentype.NewFace(fs.font, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, err
	}
	fs.faces[size] = fc
	return fc, nil
}

func (fs *Faces) layout(s string, f Font) (*lines, error) {
	if f.Size <= 0 {
		return nil, ErrUnmeasurable
	}
	fc, err := fs.Face(f.Size)
	if err != nil {
		return nil, err
	}
	lh := f.LineHeight
	if lh <= 0 {
		lh = math32.FromFixed(fc.Metrics().Height)
	}
	var prev rune = -1
	return layout(s, f, lh, func(cl string) float32 {
		adv := font.MeasureString(fc, cl)
		if first, _ := utf8.DecodeRuneInString(cl); prev >= 0 {
			adv += fc.Kern(prev, first)
		}
		prev, _ = utf8.DecodeLastRuneInString(cl)
		return math32.FromFixed(adv)
	})
}

func (fs *Faces) Measure(s string, f Font) (Metrics, error) {
	ls, err := fs.layout(s, f)
	if err != nil {
		return Metrics{}, err
	}
	return ls.metrics(), nil
}

func (fs *Faces) HitTest(l Layout, x, y float32) (Hit, error) {
	ls, err := fs.layout(l.Text, l.Font)
	if err != nil {
		return Hit{}, err
	}
	return ls.hitTest(x, y), nil
}

func (fs *Faces) HitTestPosition(l Layout, offset int, trailing bool) (Position, error) {
	ls, err := fs.layout(l.Text, l.Font)
	if err != nil {
		return Position{}, err
	}
	return ls.position(offset, trailing), nil
}

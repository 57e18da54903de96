// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Size returns a new [Box2] at the given position with the given size.
func B2Size(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

// String implements the fmt.Stringer interface.
func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// IsEmpty returns true if this bounding box has zero or negative area.
func (b Box2) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// ToRect returns the rounded [image.Rectangle] of this box.
func (b Box2) ToRect() image.Rectangle {
	return image.Rect(int(Round(b.Min.X)), int(Round(b.Min.Y)), int(Round(b.Max.X)), int(Round(b.Max.Y)))
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
// The maximum edges are exclusive, so that adjacent boxes never share a point.
func (b Box2) ContainsPoint(point Vector2) bool {
	if point.X < b.Min.X || point.X >= b.Max.X ||
		point.Y < b.Min.Y || point.Y >= b.Max.Y {
		return false
	}
	return true
}

// ContainsBox returns if this bounding box contains other box.
func (b Box2) ContainsBox(box Box2) bool {
	return (b.Min.X <= box.Min.X) && (box.Max.X <= b.Max.X) && (b.Min.Y <= box.Min.Y) && (box.Max.Y <= b.Max.Y)
}

// Intersect returns the intersection with other box.
// The result may be empty (see [Box2.IsEmpty]).
func (b Box2) Intersect(other Box2) Box2 {
	other.Min.SetMax(b.Min)
	other.Max.SetMin(b.Max)
	return other
}

// Union returns the union with other box.
func (b Box2) Union(other Box2) Box2 {
	other.Min.SetMin(b.Min)
	other.Max.SetMax(b.Max)
	return other
}

// Translate returns translated position of this box by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// Inset returns this box shrunk by the given amounts on each side.
// The result never inverts: a side that would cross its opposite
// collapses onto it.
func (b Box2) Inset(top, right, bottom, left float32) Box2 {
	nb := B2(b.Min.X+left, b.Min.Y+top, b.Max.X-right, b.Max.Y-bottom)
	if nb.Max.X < nb.Min.X {
		nb.Max.X = nb.Min.X
	}
	if nb.Max.Y < nb.Min.Y {
		nb.Max.Y = nb.Min.Y
	}
	return nb
}

// DimMin returns the minimum coordinate along the given dimension.
func (b Box2) DimMin(d Dims) float32 {
	return b.Min.Dim(d)
}

// DimMax returns the maximum coordinate along the given dimension.
func (b Box2) DimMax(d Dims) float32 {
	return b.Max.Dim(d)
}

// DimSize returns the size along the given dimension.
func (b Box2) DimSize(d Dims) float32 {
	return b.Max.Dim(d) - b.Min.Dim(d)
}

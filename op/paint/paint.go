// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image/color"

	"boxui.org/op"
	"boxui.org/op/clip"
)

// FillOp fills Shape with Color.
type FillOp struct {
	Shape clip.Path
	Color color.NRGBA
}

// StrokeOp draws a line of Width along the inside of Shape.
type StrokeOp struct {
	Shape clip.RRect
	Width float32
	Color color.NRGBA
}

// Add the fill. Transparent fills and empty shapes are ignored.
func (f FillOp) Add(o *op.Ops) {
	if f.Color.A == 0 || len(f.Shape) == 0 {
		return
	}
	o.Add(f)
}

// Add the stroke. Transparent and empty strokes are ignored.
func (s StrokeOp) Add(o *op.Ops) {
	if s.Color.A == 0 || s.Width <= 0 || s.Shape.Rect.Canon().Empty() {
		return
	}
	o.Add(s)
}

// Path returns the area covered by the stroke.
func (s StrokeOp) Path() clip.Path {
	rr := s.Shape
	return clip.Border{
		Rect:  rr.Rect,
		Width: s.Width,
		SE:    rr.SE, SW: rr.SW, NW: rr.NW, NE: rr.NE,
	}.Path()
}

// FillShape fills the shape with a color.
func FillShape(ops *op.Ops, c color.NRGBA, shape clip.Path) {
	FillOp{Shape: shape, Color: c}.Add(ops)
}

// StrokeShape traces the inside of the shape with a line of width.
func StrokeShape(ops *op.Ops, c color.NRGBA, shape clip.RRect, width float32) {
	StrokeOp{Shape: shape, Width: width, Color: c}.Add(ops)
}

func (FillOp) ImplementsOp()   {}
func (StrokeOp) ImplementsOp() {}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software rasterizer for operation lists.

Shapes are scan converted with golang.org/x/image/vector and composited
over the destination image in the order they were added.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"boxui.org/f32"
	"boxui.org/op"
	"boxui.org/op/clip"
	"boxui.org/op/paint"
)

// Rasterizer executes operation lists into images. The zero value is
// ready to use.
type Rasterizer struct {
	vr *vector.Rasterizer
}

// Frame draws the operations of frame onto dst.
func (r *Rasterizer) Frame(frame *op.Ops, dst *image.RGBA) {
	if frame == nil {
		return
	}
	for _, o := range frame.Ops() {
		switch o := o.(type) {
		case op.CallOp:
			r.Frame(o.Ops, dst)
		case paint.FillOp:
			r.fill(dst, o.Shape, o.Color)
		case paint.StrokeOp:
			r.fill(dst, o.Path(), o.Color)
		}
	}
}

func (r *Rasterizer) fill(dst *image.RGBA, p clip.Path, c color.NRGBA) {
	bounds := p.Bounds().Round().Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}
	if r.vr == nil {
		r.vr = vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	} else {
		r.vr.Reset(bounds.Dx(), bounds.Dy())
	}
	vr := r.vr
	vr.DrawOp = draw.Over
	off := f32.Pt(float32(-bounds.Min.X), float32(-bounds.Min.Y))
	open := false
	for _, s := range p {
		switch s.Kind {
		case clip.MoveTo:
			if open {
				vr.ClosePath()
			}
			to := s.Args[0].Add(off)
			vr.MoveTo(to.X, to.Y)
			open = true
		case clip.LineTo:
			to := s.Args[0].Add(off)
			vr.LineTo(to.X, to.Y)
		case clip.CubeTo:
			c0, c1, to := s.Args[0].Add(off), s.Args[1].Add(off), s.Args[2].Add(off)
			vr.CubeTo(c0.X, c0.Y, c1.X, c1.Y, to.X, to.Y)
		}
	}
	if open {
		vr.ClosePath()
	}
	vr.Draw(dst, bounds, image.NewUniform(c), image.Point{})
}

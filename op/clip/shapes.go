// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"math"

	"boxui.org/f32"
)

// UniformRRect returns an RRect with all corner radii set to the
// provided radius.
func UniformRRect(rect f32.Rectangle, radius float32) RRect {
	return RRect{
		Rect: rect,
		SE:   radius,
		SW:   radius,
		NE:   radius,
		NW:   radius,
	}
}

// RRect represents a rectangle with rounded corners.
//
// Specify a square with corner radii equal to half the square size to
// construct a circle.
type RRect struct {
	Rect f32.Rectangle
	// The corner radii.
	SE, SW, NW, NE float32
}

// Path returns the clockwise outline of the rounded rectangle. Radii
// are clamped to half the shorter side. An empty rectangle has an
// empty path.
func (rr RRect) Path() Path {
	r := rr.Rect.Canon()
	if r.Empty() {
		return nil
	}
	limit := min(r.Dx(), r.Dy()) / 2
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		return min(v, limit)
	}
	se, sw, nw, ne := clamp(rr.SE), clamp(rr.SW), clamp(rr.NW), clamp(rr.NE)

	// https://pomax.github.io/bezierinfo/#circles_cubic.
	const q = 4 * (math.Sqrt2 - 1) / 3
	const iq = 1 - q

	w, n, e, s := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	var p Path
	p.MoveTo(f32.Point{X: w + nw, Y: n})
	p.LineTo(f32.Point{X: e - ne, Y: n}) // N
	p.cubeTo(                            // NE
		f32.Point{X: e - ne*iq, Y: n},
		f32.Point{X: e, Y: n + ne*iq},
		f32.Point{X: e, Y: n + ne}, ne)
	p.LineTo(f32.Point{X: e, Y: s - se}) // E
	p.cubeTo(                            // SE
		f32.Point{X: e, Y: s - se*iq},
		f32.Point{X: e - se*iq, Y: s},
		f32.Point{X: e - se, Y: s}, se)
	p.LineTo(f32.Point{X: w + sw, Y: s}) // S
	p.cubeTo(                            // SW
		f32.Point{X: w + sw*iq, Y: s},
		f32.Point{X: w, Y: s - sw*iq},
		f32.Point{X: w, Y: s - sw}, sw)
	p.LineTo(f32.Point{X: w, Y: n + nw}) // W
	p.cubeTo(                            // NW
		f32.Point{X: w, Y: n + nw*iq},
		f32.Point{X: w + nw*iq, Y: n},
		f32.Point{X: w + nw, Y: n}, nw)
	return p
}

// Border represents a rectangular border, optionally with rounded
// corners. The border is drawn inside Rect.
type Border struct {
	// Rect is the outer bounds of the border.
	Rect f32.Rectangle
	// Width of the line tracing Rect.
	Width float32
	// The outer corner radii.
	SE, SW, NW, NE float32
}

// Path returns the area covered by the border: the outline of Rect
// followed by the reversed outline of Rect inset by Width. A border
// at least as wide as half the shorter side covers all of Rect.
func (b Border) Path() Path {
	outer := RRect{Rect: b.Rect, SE: b.SE, SW: b.SW, NW: b.NW, NE: b.NE}
	if b.Width <= 0 {
		return nil
	}
	p := outer.Path()
	inner := b.Rect.Canon().Inset(b.Width)
	if inner.Empty() {
		return p
	}
	in := RRect{
		Rect: inner,
		SE:   b.SE - b.Width,
		SW:   b.SW - b.Width,
		NW:   b.NW - b.Width,
		NE:   b.NE - b.Width,
	}
	return append(p, in.Path().Reverse()...)
}

func min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

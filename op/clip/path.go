// SPDX-License-Identifier: Unlicense OR MIT

package clip

import "boxui.org/f32"

// Path is a list of closed contours.
type Path []Segment

// Segment is one step of a Path.
type Segment struct {
	Kind SegmentKind
	// Args holds the end point of the segment last, preceded by
	// the control points of a cubic.
	Args [3]f32.Point
}

// SegmentKind is the kind of a Segment.
type SegmentKind uint8

const (
	// MoveTo starts a new contour at Args[0].
	MoveTo SegmentKind = iota
	// LineTo draws a straight line to Args[0].
	LineTo
	// CubeTo draws a cubic Bézier through the control points Args[0]
	// and Args[1] to Args[2].
	CubeTo
)

// MoveTo starts a new contour at to.
func (p *Path) MoveTo(to f32.Point) {
	*p = append(*p, Segment{Kind: MoveTo, Args: [3]f32.Point{to}})
}

// LineTo adds a line to to.
func (p *Path) LineTo(to f32.Point) {
	*p = append(*p, Segment{Kind: LineTo, Args: [3]f32.Point{to}})
}

// CubeTo adds a cubic Bézier with control points ctrl0 and ctrl1
// ending at to.
func (p *Path) CubeTo(ctrl0, ctrl1, to f32.Point) {
	*p = append(*p, Segment{Kind: CubeTo, Args: [3]f32.Point{ctrl0, ctrl1, to}})
}

// cubeTo adds a cubic unless the corner radius r is zero.
func (p *Path) cubeTo(ctrl0, ctrl1, to f32.Point, r float32) {
	if r == 0 {
		return
	}
	p.CubeTo(ctrl0, ctrl1, to)
}

// End returns the end point of s.
func (s Segment) End() f32.Point {
	if s.Kind == CubeTo {
		return s.Args[2]
	}
	return s.Args[0]
}

// Bounds returns the smallest rectangle containing every point and
// control point of p.
func (p Path) Bounds() f32.Rectangle {
	if len(p) == 0 {
		return f32.Rectangle{}
	}
	b := f32.Rectangle{Min: p[0].Args[0], Max: p[0].Args[0]}
	for _, s := range p {
		n := 1
		if s.Kind == CubeTo {
			n = 3
		}
		for _, pt := range s.Args[:n] {
			b = b.Union(f32.Rectangle{Min: pt, Max: pt})
		}
	}
	return b
}

// Reverse returns p with every contour traversed in the opposite
// direction.
func (p Path) Reverse() Path {
	var res Path
	start := 0
	for i := 1; i <= len(p); i++ {
		if i < len(p) && p[i].Kind != MoveTo {
			continue
		}
		res = append(res, reverseContour(p[start:i])...)
		start = i
	}
	return res
}

func reverseContour(c Path) Path {
	if len(c) == 0 {
		return nil
	}
	var res Path
	res.MoveTo(c[len(c)-1].End())
	for i := len(c) - 1; i > 0; i-- {
		s := c[i]
		from := c[i-1].End()
		switch s.Kind {
		case CubeTo:
			res.CubeTo(s.Args[1], s.Args[0], from)
		default:
			res.LineTo(from)
		}
	}
	return res
}

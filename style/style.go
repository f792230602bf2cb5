// SPDX-License-Identifier: Unlicense OR MIT

/*
Package style describes the visual and sizing attributes of an element.

A Style is a plain value: it is built once when the user interface is
described and read by the layout engine on every pass. The zero Style is
valid and means no margin, padding or border, content sized, start
aligned and transparent.
*/
package style

import (
	"image/color"

	"golang.org/x/exp/constraints"
)

// Style is the set of attributes attached to an element.
type Style struct {
	Size    Size
	Margin  Space
	Padding Space
	Border  Border
	Spacing Spacing
	// Alignment is the cross axis alignment of a container's
	// children.
	Alignment Alignment
	// Color fills the element's border box.
	Color color.NRGBA
}

// Border is the border drawn inside an element's border box.
type Border struct {
	Width  float32
	Color  color.NRGBA
	Radius Corners
}

// Corners holds a radius for each corner.
type Corners struct {
	NW, NE, SE, SW float32
}

// Spacing is the gap between the children of a container.
type Spacing struct {
	X, Y float32
}

// Alignment is the cross axis alignment of children.
type Alignment uint8

const (
	Start Alignment = iota
	Center
	End
)

// UniformCorners returns Corners with every radius set to r.
func UniformCorners(r float32) Corners {
	return Corners{NW: r, NE: r, SE: r, SW: r}
}

// Sanitize returns a copy of s where every negative extent is
// clamped to zero.
func (s Style) Sanitize() Style {
	s.Size = s.Size.sanitize()
	s.Margin = s.Margin.Sanitize()
	s.Padding = s.Padding.Sanitize()
	s.Border.Width = NonNegative(s.Border.Width)
	s.Border.Radius = Corners{
		NW: NonNegative(s.Border.Radius.NW),
		NE: NonNegative(s.Border.Radius.NE),
		SE: NonNegative(s.Border.Radius.SE),
		SW: NonNegative(s.Border.Radius.SW),
	}
	s.Spacing = Spacing{X: NonNegative(s.Spacing.X), Y: NonNegative(s.Spacing.Y)}
	return s
}

// Flexible returns the axes along which an element with style s may
// be shrunk. An axis is fixed only when the size mode pins it with
// Exact.
func (s Style) Flexible() Axes {
	return Both &^ s.Size.modeAxes(Exact)
}

// NonNegative clamps v to zero from below.
func NonNegative[T constraints.Float | constraints.Integer](v T) T {
	if v < 0 {
		return 0
	}
	return v
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package style

import "fmt"

// SizeMode selects how an element's size is determined.
type SizeMode uint8

const (
	// FitContent sizes the element to its content.
	FitContent SizeMode = iota
	// Exact forces the explicit width and height on the axes
	// named by Size.Axes.
	Exact
	// FillParent fills the parent's content box: the full cross
	// axis extent and any main axis space left over by siblings.
	FillParent
	// FitParentWidth sizes the element to the parent's content width.
	FitParentWidth
	// FitParentHeight sizes the element to the parent's content height.
	FitParentHeight
	// Percent interprets Width and Height as percentages of the
	// parent's content box on the axes named by Size.Axes. Dimensions
	// on the other axes stay in pixels.
	Percent
)

// Axes is a set of layout axes.
type Axes uint8

const (
	Horizontal Axes = 1 << iota
	Vertical

	Both = Horizontal | Vertical
)

// Dim is an optional dimension. The zero Dim is unset.
type Dim struct {
	v   float32
	set bool
}

// Size is the sizing part of a Style.
type Size struct {
	Width, Height Dim
	Mode          SizeMode
	// Axes restricts Exact or Percent to a subset of the axes. The
	// zero value means both axes.
	Axes Axes
}

// Px returns a set Dim of v pixels.
func Px(v float32) Dim {
	return Dim{v: v, set: true}
}

// Get returns the dimension and whether it is set.
func (d Dim) Get() (float32, bool) {
	return d.v, d.set
}

// Or returns the dimension if set, fallback otherwise.
func (d Dim) Or(fallback float32) float32 {
	if !d.set {
		return fallback
	}
	return d.v
}

func (d Dim) String() string {
	if !d.set {
		return "unset"
	}
	return fmt.Sprintf("%gpx", d.v)
}

// ExactOn reports whether Exact sizing applies to every axis in a.
func (s Size) ExactOn(a Axes) bool {
	return s.modeAxes(Exact)&a == a
}

// PercentOn reports whether Percent sizing applies to every axis in a.
func (s Size) PercentOn(a Axes) bool {
	return s.modeAxes(Percent)&a == a
}

// Pixels returns the width and height that are given in pixels. Unset
// dimensions and percentages count as zero.
func (s Size) Pixels() (width, height float32) {
	width, height = s.Width.Or(0), s.Height.Or(0)
	if s.PercentOn(Horizontal) {
		width = 0
	}
	if s.PercentOn(Vertical) {
		height = 0
	}
	return width, height
}

// modeAxes returns the axes m applies to.
func (s Size) modeAxes(m SizeMode) Axes {
	if s.Mode != m {
		return 0
	}
	if s.Axes == 0 {
		return Both
	}
	return s.Axes & Both
}

func (s Size) sanitize() Size {
	if s.Width.set {
		s.Width.v = NonNegative(s.Width.v)
	}
	if s.Height.set {
		s.Height.v = NonNegative(s.Height.v)
	}
	return s
}

func (m SizeMode) String() string {
	switch m {
	case FitContent:
		return "FitContent"
	case Exact:
		return "Exact"
	case FillParent:
		return "FillParent"
	case FitParentWidth:
		return "FitParentWidth"
	case FitParentHeight:
		return "FitParentHeight"
	case Percent:
		return "Percent"
	default:
		panic("unreachable")
	}
}

func (a Axes) String() string {
	switch a {
	case 0:
		return "None"
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Both:
		return "Both"
	default:
		panic("unreachable")
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package style

import "fmt"

// Space is an extent on each of the four sides of a box. It is used
// for margins, padding and border widths as well as for the demands
// the layout engine accumulates.
type Space struct {
	Top, Right, Bottom, Left float32
}

// UniformSpace returns a Space with v on every side.
func UniformSpace(v float32) Space {
	return Space{Top: v, Right: v, Bottom: v, Left: v}
}

// Add returns s+o side by side.
func (s Space) Add(o Space) Space {
	return Space{
		Top:    s.Top + o.Top,
		Right:  s.Right + o.Right,
		Bottom: s.Bottom + o.Bottom,
		Left:   s.Left + o.Left,
	}
}

// Sub returns s-o side by side.
func (s Space) Sub(o Space) Space {
	return Space{
		Top:    s.Top - o.Top,
		Right:  s.Right - o.Right,
		Bottom: s.Bottom - o.Bottom,
		Left:   s.Left - o.Left,
	}
}

// Horizontal returns the sum of the left and right sides.
func (s Space) Horizontal() float32 {
	return s.Left + s.Right
}

// Vertical returns the sum of the top and bottom sides.
func (s Space) Vertical() float32 {
	return s.Top + s.Bottom
}

// Sanitize clamps negative sides to zero.
func (s Space) Sanitize() Space {
	return Space{
		Top:    NonNegative(s.Top),
		Right:  NonNegative(s.Right),
		Bottom: NonNegative(s.Bottom),
		Left:   NonNegative(s.Left),
	}
}

func (s Space) String() string {
	return fmt.Sprintf("{%g %g %g %g}", s.Top, s.Right, s.Bottom, s.Left)
}

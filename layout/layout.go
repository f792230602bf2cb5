// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"boxui.org/f32"
	"boxui.org/style"
)

// Size is the width and height of an element's border box.
type Size struct {
	Width, Height float32
}

// Element is the part of a user interface element the layout engine
// works with.
type Element interface {
	// ID returns the element's unique identity.
	ID() ID
	Style() style.Style
	Position() f32.Point
	SetPosition(p f32.Point)
	Size() Size
	SetSize(s Size)
	// Layout runs the first pass when available is nil and the
	// second pass with the allocated size otherwise.
	Layout(available *Size)
	// Flexible reports the axes along which the element may be
	// shrunk to resolve a deficit.
	Flexible() style.Axes
}

// Container is an Element with an ordered list of children it owns.
type Container interface {
	Element
	Children() []Element
}

// Add returns s+o.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Sub returns s-o.
func (s Size) Sub(o Size) Size {
	return Size{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Clamp returns s with negative components set to zero.
func (s Size) Clamp() Size {
	return Size{Width: style.NonNegative(s.Width), Height: style.NonNegative(s.Height)}
}

// Point converts s to a f32.Point.
func (s Size) Point() f32.Point {
	return f32.Point{X: s.Width, Y: s.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Bounds returns the border box of e.
func Bounds(e Element) f32.Rectangle {
	p := e.Position()
	return f32.Rectangle{Min: p, Max: p.Add(e.Size().Point())}
}

// sizeAt returns the size recorded for the ith child, or the child's
// current size when sizes does not cover it.
func sizeAt(sizes []Size, i int, child Element) Size {
	if i < len(sizes) {
		return sizes[i].Clamp()
	}
	return child.Size().Clamp()
}

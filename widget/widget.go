// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"boxui.org/f32"
	"boxui.org/io/event"
	"boxui.org/layout"
	"boxui.org/op"
	"boxui.org/style"
)

// Element is a node of the user interface tree.
type Element interface {
	layout.Element
	// Render adds the drawing operations of the element and its
	// descendants to ops.
	Render(ops *op.Ops)
	// Update runs once per frame after events are handled.
	Update()
	// HandleEvent delivers an input event that happened at p.
	HandleEvent(p f32.Point, e event.Event)
}

// base holds the state common to every element.
type base struct {
	id    layout.ID
	style style.Style
	pos   f32.Point
	size  layout.Size
}

func (b *base) ID() layout.ID           { return b.id }
func (b *base) Style() style.Style      { return b.style }
func (b *base) Position() f32.Point     { return b.pos }
func (b *base) SetPosition(p f32.Point) { b.pos = p }
func (b *base) Size() layout.Size       { return b.size }
func (b *base) SetSize(s layout.Size)   { b.size = s.Clamp() }
func (b *base) Flexible() style.Axes    { return b.style.Flexible() }
func (b *base) bounds() f32.Rectangle   { return f32.Rectangle{Min: b.pos, Max: b.pos.Add(b.size.Point())} }
func (b *base) SetStyle(st style.Style) { b.style = st }

// intrinsic returns the size of an element of style st before its
// parent hands it any space.
func intrinsic(st style.Style) layout.Size {
	w, h := st.Sanitize().Size.Pixels()
	return layout.Size{Width: w, Height: h}
}

// Walk calls fn for e and its descendants, parents before children.
// The walk stops descending below an element for which fn returns
// false.
func Walk(e Element, fn func(Element) bool) {
	if !fn(e) {
		return
	}
	c, ok := e.(layout.Container)
	if !ok {
		return
	}
	for _, child := range c.Children() {
		if w, ok := child.(Element); ok {
			Walk(w, fn)
		}
	}
}

// Geometry returns the settled border box of every element of the
// tree rooted at e.
func Geometry(e Element) map[layout.ID]f32.Rectangle {
	g := make(map[layout.ID]f32.Rectangle)
	Walk(e, func(e Element) bool {
		g[e.ID()] = layout.Bounds(e)
		return true
	})
	return g
}

// Find returns the element of the tree rooted at e with identity id.
func Find(e Element, id layout.ID) (Element, bool) {
	var found Element
	Walk(e, func(e Element) bool {
		if found != nil {
			return false
		}
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found, found != nil
}

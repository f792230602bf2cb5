// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events delivered to an element and
detect higher level actions such as clicks and the pointer entering
or leaving the element.
*/
package gesture

import (
	"boxui.org/f32"
	"boxui.org/io/event"
	"boxui.org/io/pointer"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// hovered tracks whether the pointer is over the area.
	hovered bool
}

// ClickEvent represent a click action, or the pointer entering or
// leaving the area.
type ClickEvent struct {
	Kind     ClickKind
	Position f32.Point
}

type ClickKind uint8

const (
	// KindClick is reported for a click inside the area.
	KindClick ClickKind = iota
	// KindEnter is reported when the pointer moves into the area.
	KindEnter
	// KindLeave is reported when the pointer moves out of the area.
	KindLeave
)

// Update processes the event e that happened at p, for a clickable
// area. It reports the resulting gesture, if any. Events other than
// pointer events are ignored.
func (c *Click) Update(area f32.Rectangle, p f32.Point, e event.Event) (ClickEvent, bool) {
	pe, ok := e.(pointer.Event)
	if !ok {
		return ClickEvent{}, false
	}
	inside := p.In(area)
	switch pe.Kind {
	case pointer.Click:
		if inside {
			return ClickEvent{Kind: KindClick, Position: p}, true
		}
	case pointer.Move:
		if inside == c.hovered {
			break
		}
		c.hovered = inside
		if inside {
			return ClickEvent{Kind: KindEnter, Position: p}, true
		}
		return ClickEvent{Kind: KindLeave, Position: p}, true
	}
	return ClickEvent{}, false
}

// Hovered returns whether the pointer is over the area.
func (c *Click) Hovered() bool {
	return c.hovered
}

func (ck ClickKind) String() string {
	switch ck {
	case KindClick:
		return "Click"
	case KindEnter:
		return "Enter"
	case KindLeave:
		return "Leave"
	default:
		panic("invalid ClickKind")
	}
}

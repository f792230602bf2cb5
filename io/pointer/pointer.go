// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events.
package pointer

import (
	"fmt"

	"boxui.org/f32"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Position is the coordinates of the event in window
	// coordinates.
	Position f32.Point
}

// Kind of an Event.
type Kind uint8

const (
	// A Click event is generated when a button is clicked.
	Click Kind = iota
	// A Move event is generated when the pointer moves.
	Move
)

func (e Event) String() string {
	return fmt.Sprintf("pointer.Event{%v %v}", e.Kind, e.Position)
}

func (t Kind) String() string {
	switch t {
	case Click:
		return "Click"
	case Move:
		return "Move"
	default:
		panic("unknown Kind")
	}
}

func (Event) ImplementsEvent() {}

// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key events.
package key

import "fmt"

// Event is generated when a key is pressed.
type Event struct {
	// Char is the character of the key.
	Char rune
}

func (e Event) String() string {
	return fmt.Sprintf("key.Event{%q}", e.Char)
}

func (Event) ImplementsEvent() {}

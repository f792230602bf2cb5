// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"

	"boxui.org/f32"
	"boxui.org/io/event"
)

func TestEventString(t *testing.T) {
	var e event.Event = Event{Kind: Click, Position: f32.Pt(1.5, 2)}
	if got, want := e.(Event).String(), "pointer.Event{Click (1.5,2)}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := Move.String(); got != "Move" {
		t.Errorf("Move.String() = %q", got)
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"boxui.org/f32"
	"boxui.org/gesture"
	"boxui.org/internal/log"
	"boxui.org/io/event"
	"boxui.org/layout"
	"boxui.org/op"
	"boxui.org/style"
)

// Button is a clickable leaf element.
type Button struct {
	base
	onClick func(*Button)
	click   gesture.Click
	clicks  int

	// OnUpdate, if set, is called by Update.
	OnUpdate func(*Button)
}

// NewButton returns a button with a fresh identity from ids. onClick
// may be nil.
func NewButton(ids *layout.IDs, st style.Style, onClick func(*Button)) *Button {
	return &Button{
		base:    base{id: ids.Next(), style: st},
		onClick: onClick,
	}
}

// Layout sizes the button from its style in the first pass and adopts
// the allocated size in the second.
func (b *Button) Layout(available *layout.Size) {
	if available == nil {
		b.SetSize(intrinsic(b.style))
		return
	}
	b.SetSize(*available)
}

// Render draws the button background and border.
func (b *Button) Render(ops *op.Ops) {
	drawBox(ops, b.style, b.bounds())
}

// Update calls the OnUpdate hook.
func (b *Button) Update() {
	if b.OnUpdate != nil {
		b.OnUpdate(b)
	}
}

// HandleEvent counts clicks inside the button and tracks whether the
// pointer hovers it. Key events are ignored.
func (b *Button) HandleEvent(p f32.Point, e event.Event) {
	ev, ok := b.click.Update(b.bounds(), p, e)
	if !ok || ev.Kind != gesture.KindClick {
		return
	}
	b.clicks++
	log.Layout.Printf("%v: clicked at %v", b.id, p)
	if b.onClick != nil {
		b.onClick(b)
	}
}

// Clicks returns the number of clicks the button received.
func (b *Button) Clicks() int {
	return b.clicks
}

// Hovered reports whether the pointer was over the button at the last
// move.
func (b *Button) Hovered() bool {
	return b.click.Hovered()
}

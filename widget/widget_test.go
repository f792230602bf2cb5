// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"boxui.org/f32"
	"boxui.org/io/key"
	"boxui.org/io/pointer"
	"boxui.org/layout"
	"boxui.org/op"
	"boxui.org/style"
)

func sized(w, h float32) style.Style {
	return style.Style{Size: style.Size{Width: style.Px(w), Height: style.Px(h)}}
}

func TestButtonLayout(t *testing.T) {
	var ids layout.IDs
	b := NewButton(&ids, sized(30, -4), nil)
	b.Layout(nil)
	if b.Size() != (layout.Size{Width: 30}) {
		t.Errorf("intrinsic size = %v, want 30x0", b.Size())
	}
	b.Layout(&layout.Size{Width: 12, Height: 7})
	if b.Size() != (layout.Size{Width: 12, Height: 7}) {
		t.Errorf("allocated size = %v, want 12x7", b.Size())
	}
	pct := NewButton(&ids, style.Style{Size: style.Size{Width: style.Px(50), Mode: style.Percent}}, nil)
	pct.Layout(nil)
	if pct.Size() != (layout.Size{}) {
		t.Errorf("percent intrinsic size = %v", pct.Size())
	}
}

func TestButtonEvents(t *testing.T) {
	var ids layout.IDs
	var got []layout.ID
	b := NewButton(&ids, sized(10, 10), func(b *Button) {
		got = append(got, b.ID())
	})
	b.SetPosition(f32.Pt(5, 5))
	b.Layout(nil)

	b.HandleEvent(f32.Pt(1, 1), pointer.Event{Kind: pointer.Click})
	b.HandleEvent(f32.Pt(10, 10), pointer.Event{Kind: pointer.Click, Position: f32.Pt(10, 10)})
	b.HandleEvent(f32.Pt(10, 10), key.Event{Char: 'x'})
	if b.Clicks() != 1 || len(got) != 1 || got[0] != b.ID() {
		t.Errorf("clicks = %d, handler calls = %v", b.Clicks(), got)
	}

	b.HandleEvent(f32.Pt(6, 6), pointer.Event{Kind: pointer.Move})
	if !b.Hovered() {
		t.Error("not hovered after moving inside")
	}
	b.HandleEvent(f32.Pt(15, 6), pointer.Event{Kind: pointer.Move})
	if b.Hovered() {
		t.Error("hovered after moving out")
	}
}

func TestButtonUpdate(t *testing.T) {
	var ids layout.IDs
	b := NewButton(&ids, style.Style{}, nil)
	b.Update()
	n := 0
	b.OnUpdate = func(*Button) { n++ }
	b.Update()
	if n != 1 {
		t.Errorf("OnUpdate called %d times", n)
	}
}

func TestRowLayout(t *testing.T) {
	var ids layout.IDs
	a := NewButton(&ids, sized(50, 20), nil)
	b := NewButton(&ids, sized(75, 20), nil)
	c := NewButton(&ids, sized(100, 20), nil)
	r := NewRow(&ids, style.Style{Spacing: style.Spacing{X: 10}}, a, b)
	r.Add(c)
	r.Layout(nil)
	if r.State() != layout.NaturallySized || r.Natural() != (layout.Size{Width: 245, Height: 20}) {
		t.Fatalf("state %v natural %v", r.State(), r.Natural())
	}
	r.Layout(&layout.Size{Width: 245, Height: 20})
	want := map[layout.ID]f32.Rectangle{
		a.ID(): f32.Rect(0, 0, 50, 20),
		b.ID(): f32.Rect(60, 0, 135, 20),
		c.ID(): f32.Rect(145, 0, 245, 20),
		r.ID(): f32.Rect(0, 0, 245, 20),
	}
	got := Geometry(r)
	if len(got) != len(want) {
		t.Fatalf("geometry:\n%s", spew.Sdump(got))
	}
	for id, rect := range want {
		if got[id] != rect {
			t.Errorf("%v: %v, want %v", id, got[id], rect)
		}
	}
	if len(r.Plan().Children) != 3 || r.Report().Deficit != 0 {
		t.Errorf("plan:\n%s", spew.Sdump(r.Plan()))
	}
}

func TestRowEvents(t *testing.T) {
	var ids layout.IDs
	var clicked []layout.ID
	onClick := func(b *Button) { clicked = append(clicked, b.ID()) }
	a := NewButton(&ids, sized(10, 10), onClick)
	b := NewButton(&ids, sized(10, 10), onClick)
	inner := NewRow(&ids, style.Style{}, b)
	r := NewRow(&ids, style.Style{}, a, inner)
	r.Layout(nil)
	r.Layout(&layout.Size{Width: 20, Height: 10})
	r.HandleEvent(f32.Pt(15, 5), pointer.Event{Kind: pointer.Click})
	if len(clicked) != 1 || clicked[0] != b.ID() {
		t.Errorf("clicked = %v, want [%v]", clicked, b.ID())
	}
	updates := 0
	a.OnUpdate = func(*Button) { updates++ }
	b.OnUpdate = func(*Button) { updates++ }
	r.Update()
	if updates != 2 {
		t.Errorf("got %d updates, want 2", updates)
	}
}

func TestRender(t *testing.T) {
	var ids layout.IDs
	red := color.NRGBA{R: 0xff, A: 0xff}
	a := NewButton(&ids, style.Style{
		Size:   style.Size{Width: style.Px(10), Height: style.Px(10)},
		Color:  red,
		Border: style.Border{Width: 1, Color: red, Radius: style.UniformCorners(2)},
	}, nil)
	b := NewButton(&ids, sized(10, 10), nil)
	r := NewRow(&ids, style.Style{Color: red}, a, b)
	r.Layout(nil)
	r.Layout(&layout.Size{Width: 20, Height: 10})
	var ops op.Ops
	r.Render(&ops)
	// Row fill, then the fill and border of a; b is transparent.
	if n := ops.Len(); n != 3 {
		t.Errorf("got %d ops, want 3:\n%s", n, spew.Sdump(ops.Ops()))
	}
}

func TestFind(t *testing.T) {
	var ids layout.IDs
	b := NewButton(&ids, style.Style{}, nil)
	r := NewRow(&ids, style.Style{}, NewRow(&ids, style.Style{}, b))
	if e, ok := Find(r, b.ID()); !ok || e != Element(b) {
		t.Errorf("Find = %v, %v", e, ok)
	}
	if _, ok := Find(r, 100); ok {
		t.Error("found a missing id")
	}
}

func TestSetStyle(t *testing.T) {
	var ids layout.IDs
	b := NewButton(&ids, sized(1, 1), nil)
	b.SetStyle(sized(4, 5))
	b.Layout(nil)
	if b.Size() != (layout.Size{Width: 4, Height: 5}) {
		t.Errorf("size = %v", b.Size())
	}
}

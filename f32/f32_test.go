// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"image"
	"testing"
)

func TestPointIn(t *testing.T) {
	r := Rect(10, 10, 20, 30)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(19.5, 29.5), true},
		{Pt(20, 15), false},
		{Pt(15, 30), false},
		{Pt(9.9, 15), false},
	}
	for _, tc := range tests {
		if got := tc.p.In(r); got != tc.want {
			t.Errorf("%v.In(%v) = %v, want %v", tc.p, r, got, tc.want)
		}
	}
}

func TestRectCanon(t *testing.T) {
	r := Rect(20, 30, 10, 10)
	if want := (Rectangle{Min: Pt(10, 10), Max: Pt(20, 30)}); r != want {
		t.Errorf("Rect swapped corners: got %v, want %v", r, want)
	}
	if got := r.Size(); got != Pt(10, 20) {
		t.Errorf("Size = %v, want (10,20)", got)
	}
}

func TestRectInset(t *testing.T) {
	r := Rect(0, 0, 10, 4)
	if got, want := r.Inset(1), Rect(1, 1, 9, 3); got != want {
		t.Errorf("Inset(1) = %v, want %v", got, want)
	}
	if got := r.Inset(3); got.Dy() != 0 || got.Min.Y != 2 {
		t.Errorf("Inset(3) collapsed height wrongly: %v", got)
	}
	if !r.Inset(5).Empty() {
		t.Errorf("Inset(5) should be empty")
	}
}

func TestRectRound(t *testing.T) {
	r := Rect(0.5, 1.2, 10.1, 3.9)
	if got, want := r.Round(), image.Rect(0, 1, 11, 4); got != want {
		t.Errorf("Round = %v, want %v", got, want)
	}
}

func TestPointString(t *testing.T) {
	if got := Pt(1.5, -2).String(); got != "(1.5,-2)" {
		t.Errorf("String = %q", got)
	}
}

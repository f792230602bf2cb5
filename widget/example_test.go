// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"fmt"

	"boxui.org/f32"
	"boxui.org/io/pointer"
	"boxui.org/layout"
	"boxui.org/style"
	"boxui.org/widget"
)

func ExampleRow() {
	var ids layout.IDs
	button := func(w, h float32) *widget.Button {
		st := style.Style{
			Size:   style.Size{Width: style.Px(w), Height: style.Px(h)},
			Margin: style.UniformSpace(5),
		}
		return widget.NewButton(&ids, st, func(b *widget.Button) {
			fmt.Println("clicked", b.ID())
		})
	}
	row := widget.NewRow(&ids, style.Style{
		Padding:   style.UniformSpace(10),
		Alignment: style.Center,
	}, button(40, 20), button(60, 40))

	// First pass: natural size.
	row.Layout(nil)
	fmt.Println("natural", row.Natural())

	// Second pass with the window size.
	row.Layout(&layout.Size{Width: 200, Height: 100})
	for _, e := range row.Elements() {
		fmt.Println(e.ID(), layout.Bounds(e))
	}

	row.HandleEvent(f32.Pt(100, 50), pointer.Event{Kind: pointer.Click})

	// Output:
	// natural 140x60
	// id_0 (15,40)-(55,60)
	// id_1 (65,30)-(125,70)
	// clicked id_1
}

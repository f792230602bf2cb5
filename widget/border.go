// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"boxui.org/f32"
	"boxui.org/op"
	"boxui.org/op/clip"
	"boxui.org/op/paint"
	"boxui.org/style"
)

// drawBox fills the border box r with the style color and draws the
// style border inside it.
func drawBox(ops *op.Ops, st style.Style, r f32.Rectangle) {
	st = st.Sanitize()
	rad := st.Border.Radius
	rr := clip.RRect{Rect: r, SE: rad.SE, SW: rad.SW, NW: rad.NW, NE: rad.NE}
	paint.FillShape(ops, st.Color, rr.Path())
	paint.StrokeShape(ops, st.Border.Color, rr, st.Border.Width)
}

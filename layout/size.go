// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "boxui.org/style"

// EvaluateSize computes the natural and requested size of c.
//
// The natural width is the sum of the children's widths and
// horizontal margins, the spacing between them, c's horizontal padding
// and both of its border sides. The natural height is the tallest
// child plus c's vertical padding and border. The requested size
// equals the natural size except on the axes where c's style forces
// an explicit size with Exact.
//
// Child sizes are read from sizes, falling back to each child's
// current Size. Children must already be sized.
func EvaluateSize(c Container, sizes []Size) (natural, requested Size) {
	st := c.Style().Sanitize()
	children := c.Children()
	var width, height float32
	for i, child := range children {
		sz := sizeAt(sizes, i, child)
		width += sz.Width + child.Style().Sanitize().Margin.Horizontal()
		if sz.Height > height {
			height = sz.Height
		}
	}
	if n := len(children); n > 1 {
		width += st.Spacing.X * float32(n-1)
	}
	border := 2 * st.Border.Width
	natural = Size{
		Width:  width + st.Padding.Horizontal() + border,
		Height: height + st.Padding.Vertical() + border,
	}
	requested = natural
	if w, ok := st.Size.Width.Get(); ok && st.Size.ExactOn(style.Horizontal) {
		requested.Width = w
	}
	if h, ok := st.Size.Height.Get(); ok && st.Size.ExactOn(style.Vertical) {
		requested.Height = h
	}
	return natural, requested
}

// ContentBudget returns the main axis space a container of style st
// and size s has for its children. The leading padding and both
// border sides are excluded; the trailing padding is requested by the
// last child.
func ContentBudget(st style.Style, s Size) float32 {
	st = st.Sanitize()
	return style.NonNegative(s.Width - 2*st.Border.Width - st.Padding.Left)
}

// ContentSize returns the size of the content box of a container of
// style st and size s.
func ContentSize(st style.Style, s Size) Size {
	st = st.Sanitize()
	border := 2 * st.Border.Width
	return Size{
		Width:  s.Width - border - st.Padding.Horizontal(),
		Height: s.Height - border - st.Padding.Vertical(),
	}.Clamp()
}

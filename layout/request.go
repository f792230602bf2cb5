// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "boxui.org/style"

// RequestKind tells what a Request asks space for.
type RequestKind uint8

const (
	ChildSize RequestKind = iota
	Spacing
	Padding
	Border
	Margin
)

// Request is one atomic demand for space along the main axis.
type Request struct {
	// Element is the child the request is made for.
	Element ID
	Kind    RequestKind
	Space   style.Space
}

// Width returns the main axis extent asked for by r.
func (r Request) Width() float32 {
	return style.NonNegative(r.Space.Horizontal())
}

// Requests breaks the main axis footprint of the child at index, of
// n children, into its ordered sequence of requests: leading spacing
// (not for the first child), left margin, left border, content,
// right border, right margin and the parent's trailing padding (last
// child only). size is the border box the child is planned with.
func Requests(child Element, size Size, index, n int, spacingX float32, padding style.Space) []Request {
	st := child.Style().Sanitize()
	id := child.ID()
	reqs := make([]Request, 0, 7)
	if index > 0 {
		reqs = append(reqs, Request{Element: id, Kind: Spacing, Space: style.Space{Left: style.NonNegative(spacingX)}})
	}
	bw := st.Border.Width
	content := style.NonNegative(size.Width - 2*bw)
	reqs = append(reqs,
		Request{Element: id, Kind: Margin, Space: style.Space{Left: st.Margin.Left}},
		Request{Element: id, Kind: Border, Space: style.Space{Left: bw}},
		Request{Element: id, Kind: ChildSize, Space: style.Space{Right: content}},
		Request{Element: id, Kind: Border, Space: style.Space{Right: bw}},
		Request{Element: id, Kind: Margin, Space: style.Space{Right: st.Margin.Right}},
	)
	if index == n-1 {
		reqs = append(reqs, Request{Element: id, Kind: Padding, Space: style.Space{Right: style.NonNegative(padding.Right)}})
	}
	return reqs
}

func (k RequestKind) String() string {
	switch k {
	case ChildSize:
		return "ChildSize"
	case Spacing:
		return "Spacing"
	case Padding:
		return "Padding"
	case Border:
		return "Border"
	case Margin:
		return "Margin"
	default:
		panic("unreachable")
	}
}

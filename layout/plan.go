// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/slices"

	"boxui.org/f32"
	"boxui.org/style"
)

// Allocation is the outcome of granting one Request.
type Allocation struct {
	Request Request
	// Granted is the space actually given.
	Granted style.Space
	// Deficit is the part of the request that could not be granted.
	Deficit style.Space
}

// ChildPlan is the planned placement of one child. Coordinates are
// relative to the origin of the container's border box.
type ChildPlan struct {
	Element ID
	// Allocations holds one entry per request, in request order.
	Allocations []Allocation
	// Position is the origin of the child's content box. Its X is
	// the cursor just before the ChildSize request was granted.
	Position f32.Point
	// Origin is the origin of the child's border box.
	Origin f32.Point
	// Size is the border box size the child was planned with.
	Size Size
	// Footprint is the sum of the granted allocations.
	Footprint style.Space
}

// Plan is the allocation plan of a container: one ChildPlan per
// child, in child order.
type Plan struct {
	Container ID
	Children  []ChildPlan
}

// CrossFrame is the cross axis band children are aligned in.
type CrossFrame struct {
	Alignment style.Alignment
	// Top is the y coordinate of the band.
	Top float32
	// Height is the height of the band.
	Height float32
}

// ContentFrame returns the cross axis band of the content box of a
// container of style st and size s.
func ContentFrame(st style.Style, s Size) CrossFrame {
	st = st.Sanitize()
	return CrossFrame{
		Alignment: st.Alignment,
		Top:       st.Border.Width + st.Padding.Top,
		Height:    ContentSize(st, s).Height,
	}
}

// Align returns the top of a child of height h.
func (f CrossFrame) Align(h float32) float32 {
	switch f.Alignment {
	case style.Center:
		return f.Top + (f.Height-h)/2
	case style.End:
		return f.Top + f.Height - h
	default:
		return f.Top
	}
}

// PlanChild grants the requests of child in order from available,
// advancing cursorX by every grant. A request that does not fit is
// granted what is left and records the rest as its deficit; the
// requests after it receive nothing. size is the border box the child
// is planned with. The child's vertical position is aligned in frame
// and never shrunk.
func PlanChild(child Element, size Size, reqs []Request, available, cursorX *float32, frame CrossFrame) ChildPlan {
	bw := child.Style().Sanitize().Border.Width
	p := ChildPlan{
		Element:     child.ID(),
		Allocations: make([]Allocation, 0, len(reqs)),
		Size:        size,
	}
	p.Origin.Y = frame.Align(size.Height)
	p.Position.Y = p.Origin.Y + bw
	leading := true
	for _, r := range reqs {
		switch r.Kind {
		case Border:
			if leading {
				p.Origin.X = *cursorX
			}
		case ChildSize:
			p.Position.X = *cursorX
			leading = false
		}
		a := grant(r, available, cursorX)
		p.Footprint = p.Footprint.Add(a.Granted)
		p.Allocations = append(p.Allocations, a)
	}
	return p
}

func grant(r Request, available, cursorX *float32) Allocation {
	a := Allocation{Request: r}
	want := r.Width()
	if want <= *available {
		a.Granted = style.Space{Left: style.NonNegative(r.Space.Left), Right: style.NonNegative(r.Space.Right)}
		*cursorX += want
		*available -= want
		return a
	}
	got := style.NonNegative(*available)
	left := style.NonNegative(r.Space.Left)
	if left > got {
		left = got
	}
	a.Granted = style.Space{Left: left, Right: got - left}
	a.Deficit = style.Space{
		Left:  style.NonNegative(r.Space.Left) - a.Granted.Left,
		Right: style.NonNegative(r.Space.Right) - a.Granted.Right,
	}
	*cursorX += got
	*available = 0
	return a
}

// PlanRow plans every child of c against budget. The cursor starts
// at the left edge of c's content box, relative to c. Child sizes are read from
// sizes, falling back to each child's current Size.
func PlanRow(c Container, sizes []Size, budget float32, frame CrossFrame) Plan {
	st := c.Style().Sanitize()
	children := c.Children()
	plan := Plan{
		Container: c.ID(),
		Children:  make([]ChildPlan, 0, len(children)),
	}
	available := style.NonNegative(budget)
	cursor := st.Border.Width + st.Padding.Left
	for i, child := range children {
		sz := sizeAt(sizes, i, child)
		reqs := Requests(child, sz, i, len(children), st.Spacing.X, st.Padding)
		plan.Children = append(plan.Children, PlanChild(child, sz, reqs, &available, &cursor, frame))
	}
	return plan
}

// Find returns the plan of the child with identity id.
func (p Plan) Find(id ID) (ChildPlan, bool) {
	i := slices.IndexFunc(p.Children, func(c ChildPlan) bool {
		return c.Element == id
	})
	if i == -1 {
		return ChildPlan{}, false
	}
	return p.Children[i], true
}

// Extent returns the main axis space granted to all children.
func (p Plan) Extent() float32 {
	var w float32
	for _, c := range p.Children {
		w += c.Extent()
	}
	return w
}

// Deficit returns the main axis space requested but not granted.
func (p Plan) Deficit() float32 {
	var d float32
	for _, c := range p.Children {
		d += c.Deficit()
	}
	return d
}

// Extent returns the main axis space granted to the child.
func (c ChildPlan) Extent() float32 {
	return c.Footprint.Horizontal()
}

// Content returns the main axis space granted to the child's content.
func (c ChildPlan) Content() float32 {
	var w float32
	for _, a := range c.Allocations {
		if a.Request.Kind == ChildSize {
			w += a.Granted.Horizontal()
		}
	}
	return w
}

// Deficit returns the main axis space requested for the child but not
// granted.
func (c ChildPlan) Deficit() float32 {
	var d float32
	for _, a := range c.Allocations {
		d += a.Deficit.Horizontal()
	}
	return d
}

// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"boxui.org/f32"
	"boxui.org/io/event"
	"boxui.org/layout"
	"boxui.org/op"
	"boxui.org/style"
)

// Row is a container laying out its children from left to right.
type Row struct {
	base
	children []Element
	// elems mirrors children for the layout package.
	elems []layout.Element
	mgr   layout.Manager
}

// NewRow returns a row owning children, with a fresh identity from
// ids.
func NewRow(ids *layout.IDs, st style.Style, children ...Element) *Row {
	r := &Row{base: base{id: ids.Next(), style: st}}
	r.Add(children...)
	return r
}

// Add appends children. The row must be laid out again before the
// children have a valid geometry.
func (r *Row) Add(children ...Element) {
	for _, c := range children {
		r.children = append(r.children, c)
		r.elems = append(r.elems, c)
	}
}

// Children implements layout.Container.
func (r *Row) Children() []layout.Element {
	return r.elems
}

// Elements returns the children of r.
func (r *Row) Elements() []Element {
	return r.children
}

// Layout runs the first layout pass when available is nil and the
// second otherwise.
func (r *Row) Layout(available *layout.Size) {
	r.mgr.Layout(r, available)
}

// State returns the layout stage of the row.
func (r *Row) State() layout.State {
	return r.mgr.State()
}

// Plan returns the allocation plan of the last layout pass.
func (r *Row) Plan() layout.Plan {
	return r.mgr.Plan()
}

// Report returns the deficit report of the last second pass.
func (r *Row) Report() layout.DeficitReport {
	return r.mgr.Report()
}

// Natural returns the natural size computed by the last first pass.
func (r *Row) Natural() layout.Size {
	return r.mgr.Natural()
}

// Render draws the row background and border, then its children.
func (r *Row) Render(ops *op.Ops) {
	drawBox(ops, r.style, r.bounds())
	for _, c := range r.children {
		c.Render(ops)
	}
}

// Update updates the children.
func (r *Row) Update() {
	for _, c := range r.children {
		c.Update()
	}
}

// HandleEvent forwards e to the children.
func (r *Row) HandleEvent(p f32.Point, e event.Event) {
	for _, c := range r.children {
		c.HandleEvent(p, e)
	}
}

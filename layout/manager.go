// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"boxui.org/internal/log"
	"boxui.org/style"
)

// State is the stage of the layout of a container.
type State uint8

const (
	// Unsized means no pass has run.
	Unsized State = iota
	// NaturallySized means the first pass is complete: the natural
	// and requested sizes and a provisional plan are known.
	NaturallySized
	// Allocated means the second pass is complete and every child
	// has its final position and size.
	Allocated
)

// Manager runs the two layout passes of a horizontal container. The
// zero Manager is Unsized and ready to use.
type Manager struct {
	state       State
	natural     Size
	requested   Size
	allocated   Size
	provisional Plan
	plan        Plan
	report      DeficitReport
}

// Layout runs the first pass of c when available is nil, and the
// second pass otherwise. A second pass on an Unsized container runs
// the first pass before it.
func (m *Manager) Layout(c Container, available *Size) {
	if available == nil {
		m.measure(c)
		return
	}
	if m.state == Unsized {
		m.measure(c)
	}
	m.allocate(c, available.Clamp())
}

// measure is the first pass.
func (m *Manager) measure(c Container) {
	for _, child := range c.Children() {
		child.Layout(nil)
	}
	m.natural, m.requested = EvaluateSize(c, nil)
	c.SetSize(m.requested)
	st := c.Style()
	m.provisional = PlanRow(c, nil, ContentBudget(st, m.requested), ContentFrame(st, m.requested))
	m.plan = m.provisional
	m.report = DeficitReport{}
	m.state = NaturallySized
	log.Layout.Printf("%v: natural %v requested %v", c.ID(), m.natural, m.requested)
}

// allocate is the second pass. The children are planned against
// everything they ask for, so the plan itself has no deficit. Whatever
// exceeds a is then taken from the flexible children.
func (m *Manager) allocate(c Container, a Size) {
	m.allocated = a
	c.SetSize(a)
	st := c.Style()
	sizes := m.resolveSizes(c, a)
	demand, _ := EvaluateSize(c, sizes)
	budget := Size{Width: demand.Width}
	if a.Width > budget.Width {
		budget.Width = a.Width
	}
	m.plan = PlanRow(c, sizes, ContentBudget(st, budget), ContentFrame(st, a))
	m.report = ResolveDeficit(c.Children(), m.plan, demand.Width-a.Width+m.plan.Deficit())
	log.Layout.Printf("%v: allocated %v demand %v deficit %g", c.ID(), a, demand, m.report.Deficit)
	Enact(c.Position(), c.Children(), m.plan, m.report)
	m.state = Allocated
}

// resolveSizes returns the child sizes of the provisional plan with
// the parent relative size modes resolved against a.
func (m *Manager) resolveSizes(c Container, a Size) []Size {
	children := c.Children()
	content := ContentSize(c.Style(), a)
	sizes := make([]Size, len(children))
	var fill []int
	for i, child := range children {
		sz := child.Size()
		if cp, ok := m.provisional.Find(child.ID()); ok {
			sz = cp.Size
		}
		st := child.Style().Sanitize()
		switch st.Size.Mode {
		case style.Percent:
			if w, ok := st.Size.Width.Get(); ok && st.Size.PercentOn(style.Horizontal) {
				sz.Width = content.Width * w / 100
			}
			if h, ok := st.Size.Height.Get(); ok && st.Size.PercentOn(style.Vertical) {
				sz.Height = content.Height * h / 100
			}
		case style.FitParentWidth:
			sz.Width = content.Width - st.Margin.Horizontal()
		case style.FitParentHeight:
			sz.Height = content.Height
		case style.FillParent:
			sz.Height = content.Height
			fill = append(fill, i)
		}
		sizes[i] = sz.Clamp()
	}
	if len(fill) == 0 {
		return sizes
	}
	natural, _ := EvaluateSize(c, sizes)
	if surplus := a.Width - natural.Width; surplus > 0 {
		share := surplus / float32(len(fill))
		for _, i := range fill {
			sizes[i].Width += share
		}
	}
	return sizes
}

// State returns the stage m has reached.
func (m *Manager) State() State { return m.state }

// Natural returns the natural size computed by the last first pass.
func (m *Manager) Natural() Size { return m.natural }

// Requested returns the requested size computed by the last first
// pass.
func (m *Manager) Requested() Size { return m.requested }

// Allocated returns the size handed to the last second pass.
func (m *Manager) Allocated() Size { return m.allocated }

// Provisional returns the plan made by the last first pass.
func (m *Manager) Provisional() Plan { return m.provisional }

// Plan returns the plan of the last pass.
func (m *Manager) Plan() Plan { return m.plan }

// Report returns the deficit report of the last second pass.
func (m *Manager) Report() DeficitReport { return m.report }

func (s State) String() string {
	switch s {
	case Unsized:
		return "Unsized"
	case NaturallySized:
		return "NaturallySized"
	case Allocated:
		return "Allocated"
	default:
		panic("unreachable")
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"boxui.org/internal/log"
	"boxui.org/style"
)

// DeficitReport records how a main axis deficit was distributed among
// the children of a container. It is produced by a second pass and
// consumed by Enact.
type DeficitReport struct {
	// Adjustments maps a child to the reduction of its size.
	Adjustments map[ID]Size
	// Deficit is the shortfall that was to be resolved.
	Deficit float32
	// Resolved is the part of Deficit absorbed by flexible children.
	Resolved float32
	// Unresolved is the part of Deficit left over. The container
	// overflows its allocated bounds by this amount.
	Unresolved float32
}

// ResolveDeficit shrinks the flexible children of a plan so that
// together they absorb deficit. Every flexible child is reduced in
// proportion to the content width it was granted, by at most all of
// it. Children with a horizontal Exact size are left alone. Whatever
// the flexible children cannot absorb is reported as Unresolved.
func ResolveDeficit(children []Element, plan Plan, deficit float32) DeficitReport {
	r := DeficitReport{Adjustments: make(map[ID]Size)}
	if deficit <= 0 {
		return r
	}
	r.Deficit = deficit
	var total float32
	var flexible []ChildPlan
	for _, child := range children {
		if child.Flexible()&style.Horizontal == 0 {
			continue
		}
		cp, ok := plan.Find(child.ID())
		if !ok {
			continue
		}
		flexible = append(flexible, cp)
		total += cp.Content()
	}
	if total <= 0 {
		r.Unresolved = deficit
		log.Warning.Printf("%v: no flexible children, overflowing by %g", plan.Container, deficit)
		return r
	}
	factor := deficit / total
	if factor > 1 {
		factor = 1
	}
	remaining := deficit
	for _, cp := range flexible {
		w := cp.Content() * factor
		if w > remaining {
			w = remaining
		}
		r.Adjustments[cp.Element] = Size{Width: w}
		remaining -= w
		r.Resolved += w
	}
	if remaining > 0 && factor == 1 {
		r.Unresolved = remaining
		log.Warning.Printf("%v: flexible children too small, overflowing by %g", plan.Container, remaining)
	}
	return r
}

// Adjustment returns the size reduction of the child with identity id.
func (r DeficitReport) Adjustment(id ID) Size {
	return r.Adjustments[id]
}

// IDs returns the identities of the adjusted children in increasing
// order.
func (r DeficitReport) IDs() []ID {
	ids := maps.Keys(r.Adjustments)
	slices.Sort(ids)
	return ids
}

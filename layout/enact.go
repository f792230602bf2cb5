// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"boxui.org/f32"
	"boxui.org/internal/log"
)

// Enact commits plan onto the children of a container placed at
// origin. Each child is moved to its planned border box origin,
// shifted left by the width taken from the children before it, and
// given its planned size less its adjustment in report. Finally the
// child's own second pass runs with that size.
func Enact(origin f32.Point, children []Element, plan Plan, report DeficitReport) {
	var shift float32
	for _, child := range children {
		cp, ok := plan.Find(child.ID())
		if !ok {
			continue
		}
		adj := report.Adjustment(child.ID())
		pos := origin.Add(cp.Origin)
		pos.X -= shift
		size := cp.Size.Sub(adj).Clamp()
		shift += adj.Width
		log.Layout.Printf("%v: enact %v at %v", child.ID(), size, pos)
		child.SetPosition(pos)
		child.SetSize(size)
		child.Layout(&size)
	}
}

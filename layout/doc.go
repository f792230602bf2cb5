// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements a two pass box model layout for a tree of
elements laid out along the horizontal axis.

The first pass runs bottom-up. Every container evaluates its natural
size from its already sized children, overrides it with any exact size
from its style to obtain its requested size, and plans how its children
would be placed if it were given exactly the requested size.

The second pass runs top-down. A parent hands each child the space it
actually received. When that is less than the child asked for, the
deficit is taken proportionally from children whose size is flexible.
The plan is then enacted: positions and sizes are committed onto the
children, which in turn lay out their own children.

Each child's demand along the main axis is broken into an ordered
sequence of requests

	[Spacing] Margin Border ChildSize Border Margin [Padding]

which are granted greedily from the container's budget. The cursor
value just before the ChildSize grant is the child's content position.

Call Layout(nil) to run the first pass and Layout(&size) to run the
second. A Manager keeps the per container state between the passes.
*/
package layout

// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the elements of a user interface tree.
// Elements keep their style, settled geometry and input state. A Row
// lays out its children with the two passes of the layout package; a
// Button is a clickable leaf.
package widget

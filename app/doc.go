// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app hosts an element tree in a window.

A Window owns the root element. Every resize lays the whole tree out
again, starting with the first pass. Frames are rendered to operation
lists or, through the raster package, to images. Input is delivered to
the tree with Click, Move and KeyPress.

For example:

	w := app.NewWindow(root, app.Size(800, 600))
	w.Click(f32.Pt(20, 30))
	img := w.Screenshot()

The window has no operating system surface; drawing it on screen is
left to the embedding program.
*/
package app

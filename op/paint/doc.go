// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides drawing operations for 2D graphics.

The FillOp operation fills a shape with a constant color. The StrokeOp
operation traces the inside of a rounded rectangle with a line of
constant color.
*/
package paint

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package clip provides the shapes painted by paint operations.

A Path is a list of segments made of straight lines and cubic Béziers.
Common shapes such as rounded rectangles and borders have constructors
returning their Path.
*/
package clip

// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The boxui command lays out user interface documents and renders
them to PNG images.

Usage:

	boxui [flags] [document.html ...]

Without documents, a built-in demonstration document is rendered.

The -config flag names a TOML file with the keys width, height,
background, scale, debug and a [chrome] table with top, right, bottom
and left. Flags override the file.

The -o flag specifies the output file. With more than one document it
names a directory, and each image is named after its document.

The -width and -height flags set the window size in pixels.

The -scale flag scales the output images.

The -click flag clicks at the window coordinates x,y before rendering.
Buttons print the name of their onclick handler when clicked.

The -v flag prints a trace of the layout passes.
`

// SPDX-License-Identifier: Unlicense OR MIT

// Package log holds the loggers shared by the layout engine and its
// hosts.
package log

import (
	"io"
	"log"
	"os"
)

// Layout traces the sizes computed by each layout pass. It is
// silent until SetDebug is called.
var Layout = log.New(io.Discard, "boxui.layout: ", log.Lmsgprefix)

// Warning reports recoverable problems such as unresolved space
// deficits or ignored markup.
var Warning = log.New(os.Stderr, "boxui.warning: ", log.Lmsgprefix)

// SetDebug directs layout tracing to w. A nil w disables tracing.
func SetDebug(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	Layout.SetOutput(w)
}

// SetOutput directs warnings to w. A nil w silences them.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	Warning.SetOutput(w)
}

// SPDX-License-Identifier: Unlicense OR MIT

package log

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	SetDebug(&buf)
	defer SetDebug(nil)
	Layout.Printf("row %s", "id_1")
	if got := buf.String(); !strings.Contains(got, "boxui.layout: row id_1") {
		t.Errorf("unexpected trace %q", got)
	}
	SetDebug(nil)
	Layout.Print("dropped")
	if strings.Contains(buf.String(), "dropped") {
		t.Error("trace written after SetDebug(nil)")
	}
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	Warning.Print("overflow")
	if !strings.HasPrefix(buf.String(), "boxui.warning: overflow") {
		t.Errorf("unexpected warning %q", buf.String())
	}
	SetOutput(nil)
	if Warning.Writer() != io.Discard {
		t.Error("SetOutput(nil) did not discard")
	}
}

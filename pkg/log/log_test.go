// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogf(t *testing.T) {
	buf := new(bytes.Buffer)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf(0, "always %v", 1)
	Logf(10, "never %v", 2)
	Errorf("broken: %v", "reason")

	got := buf.String()
	if !strings.Contains(got, "always 1") {
		t.Fatalf("level 0 message not logged: %q", got)
	}
	if strings.Contains(got, "never") {
		t.Fatalf("high verbosity message logged: %q", got)
	}
	if !strings.Contains(got, "ERROR: broken: reason") {
		t.Fatalf("error message not logged: %q", got)
	}
}

// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package log provides leveled logging for sigtrace tools and for the
// library's degraded-output paths:
//   - verbosity levels with a global setting shared by all packages
//   - ability to redirect or silence all output (used by tests)
package log

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	flagV = flag.Int("vv", 0, "verbosity")

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// V reports whether messages at verbosity level v are currently logged.
func V(v int) bool {
	return v <= *flagV
}

// Logf writes a message at verbosity level v. Level 0 is always logged,
// higher levels only when enabled with -vv.
func Logf(v int, msg string, args ...interface{}) {
	if !V(v) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, msg+"\n", args...)
}

// Errorf writes an error message regardless of verbosity.
func Errorf(msg string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "ERROR: "+msg+"\n", args...)
}

// Fatalf writes an error message and terminates the process.
func Fatalf(msg string, args ...interface{}) {
	Errorf(msg, args...)
	os.Exit(1)
}

// SetOutput redirects all log output, returning the previous writer.
// Pass io.Discard to silence logging.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

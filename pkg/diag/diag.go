// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package diag is the pipeline surface for fatal-signal diagnostics:
// cause text, stack capture, and symbolized rendering. Each call is a
// pure transformation of already-captured inputs; nothing here installs
// handlers, terminates the process, or writes anywhere. Callers must
// invoke it from a context where allocation is safe (a dedicated
// signal-handling thread, not the async-signal-safe handler itself).
package diag

import (
	"golang.org/x/sys/unix"

	"github.com/sigtrace/sigtrace/pkg/log"
	"github.com/sigtrace/sigtrace/pkg/sigctx"
	"github.com/sigtrace/sigtrace/pkg/sigdesc"
	"github.com/sigtrace/sigtrace/pkg/stackwalk"
	"github.com/sigtrace/sigtrace/pkg/symbolize"
)

// Explain describes why the process received sig. Empty for signals the
// interpreter does not specialize.
func Explain(sig unix.Signal, info *sigctx.Info, ctx *sigctx.Context) string {
	return sigdesc.Describe(sig, info, ctx)
}

// CaptureFrames walks the call stack recorded in ctx, innermost first,
// bounded by stackwalk.DefaultMaxDepth. May be empty.
func CaptureFrames(ctx *sigctx.Context) []uintptr {
	return stackwalk.Capture(ctx)
}

// Render symbolizes frames against the running executable, one line per
// frame terminated by delim. If the executable's symbols are unavailable
// every line degrades to its no-symbol form.
func Render(frames []uintptr, delim string) string {
	resolver, err := symbolize.SelfResolver()
	if err != nil {
		log.Logf(2, "no symbols for own executable: %v", err)
		resolver = nil
	}
	return symbolize.Render(resolver, frames, delim)
}

// Report produces the complete diagnostic for one fault: the cause text
// followed by the symbolized stack, newline-delimited.
func Report(sig unix.Signal, info *sigctx.Info, ctx *sigctx.Context) string {
	cause := Explain(sig, info, ctx)
	trace := Render(CaptureFrames(ctx), "\n")
	if cause == "" {
		return trace
	}
	if trace == "" {
		return cause
	}
	return cause + "\n" + trace
}

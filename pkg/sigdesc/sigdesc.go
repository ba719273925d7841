// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package sigdesc translates a fatal signal's delivery details into a
// human-readable explanation of why the process crashed. Describe is
// total: it classifies what it knows, reports "Unknown si_code." for
// what it doesn't, and never fails.
package sigdesc

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/sigtrace/sigtrace/pkg/sigctx"
)

// Describe returns the cause text for a fault signal. Signals outside
// the specialized set (SIGSEGV, SIGBUS, SIGILL, SIGFPE) come back empty;
// the caller supplies its own description for those.
func Describe(sig unix.Signal, info *sigctx.Info, ctx *sigctx.Context) string {
	switch sig {
	case unix.SIGSEGV:
		return describeSegv(info, ctx)
	case unix.SIGBUS:
		return codeText(busCodes, info)
	case unix.SIGILL:
		return codeText(illCodes, info)
	case unix.SIGFPE:
		return codeText(fpeCodes, info)
	}
	return ""
}

func describeSegv(info *sigctx.Info, ctx *sigctx.Context) string {
	var b strings.Builder
	if info == nil || !info.HasAddr {
		b.WriteString("Address: NULL pointer.")
	} else {
		fmt.Fprintf(&b, "Address: 0x%x", info.Addr)
	}
	// Only the linux/amd64 machine context records the access type.
	if write, ok := ctx.WriteAccess(); ok {
		if write {
			b.WriteString(" Access: write.")
		} else {
			b.WriteString(" Access: read.")
		}
	}
	b.WriteString(" ")
	b.WriteString(codeText(segvCodes, info))
	return b.String()
}

func codeText(codes map[int32]string, info *sigctx.Info) string {
	if info != nil {
		if text, ok := codes[info.Code]; ok {
			return text
		}
	}
	return "Unknown si_code."
}

// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package stackwalk reconstructs the call stack captured in a signal
// machine context. On architectures that keep frame pointers (amd64,
// arm64) it follows the frame-pointer chain; elsewhere it degrades to
// the single faulting address. An empty result is a valid outcome for
// a corrupted stack, never an error.
package stackwalk

import (
	"unsafe"

	"github.com/sigtrace/sigtrace/pkg/sigctx"
)

// DefaultMaxDepth bounds how many frames a walk may produce. It is
// process-wide, read-only configuration.
const DefaultMaxDepth = 50

const ptrSize = unsafe.Sizeof(uintptr(0))

// A walk never follows the frame chain further than this above the
// faulting stack pointer; past that the "stack" is garbage.
const maxStackScan = 1 << 20

// Memory reads machine words from the crashed program's address space.
// Tests substitute synthetic memories; the default reads our own.
type Memory interface {
	Word(addr uintptr) (uintptr, bool)
}

// Walker captures stacks with a configurable depth bound and memory
// source. The zero value uses DefaultMaxDepth and process memory.
type Walker struct {
	MaxDepth int
	Mem      Memory
}

// Capture walks the stack recorded in ctx with process-wide defaults,
// innermost frame first.
func Capture(ctx *sigctx.Context) []uintptr {
	var w Walker
	return w.Capture(ctx)
}

// Capture walks the stack recorded in ctx, innermost frame first.
// The result never exceeds the depth bound and may be empty.
func (w *Walker) Capture(ctx *sigctx.Context) []uintptr {
	return w.capture(ctx)
}

func (w *Walker) maxDepth() int {
	if w.MaxDepth > 0 {
		return w.MaxDepth
	}
	return DefaultMaxDepth
}

func (w *Walker) memory() Memory {
	if w.Mem != nil {
		return w.Mem
	}
	return processMemory{}
}

// processMemory reads words from our own address space. The program is
// already crashed when this runs, so a wild read here is tolerable; the
// walker's bounds checks keep reads inside the faulted thread's stack.
type processMemory struct{}

func (processMemory) Word(addr uintptr) (uintptr, bool) {
	if addr == 0 || addr%ptrSize != 0 {
		return 0, false
	}
	return *(*uintptr)(unsafe.Pointer(addr)), true
}

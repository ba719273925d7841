// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build amd64 || arm64

package stackwalk

import "github.com/sigtrace/sigtrace/pkg/sigctx"

// Frame-pointer unwind. Both amd64 and arm64 store a {caller fp, return
// address} pair at the frame pointer, so one loop serves both.

func (w *Walker) capture(ctx *sigctx.Context) []uintptr {
	pc, ok := ctx.InstructionPointer()
	if !ok {
		return nil
	}
	fp, ok := ctx.FramePointer()
	if !ok {
		return []uintptr{pc}
	}
	sp, _ := ctx.StackPointer()
	return w.walk(pc, fp, sp)
}

// walk follows the frame chain starting from the fault site. It stops
// at the depth bound, at a frame pointer that leaves the plausible
// stack region, or at a failed read. The depth bound is the only thing
// that terminates a self-referential chain.
func (w *Walker) walk(pc, fp, sp uintptr) []uintptr {
	max := w.maxDepth()
	mem := w.memory()
	frames := make([]uintptr, 0, max)
	frames = append(frames, pc)
	// The chain must move towards the stack base (upwards): each frame
	// pointer is checked against the previous one.
	floor := sp
	limit := sp + maxStackScan
	for len(frames) < max {
		if fp == 0 || fp%ptrSize != 0 || fp < floor || (sp != 0 && fp > limit) {
			break
		}
		ret, ok := mem.Word(fp + ptrSize)
		if !ok || ret == 0 {
			break
		}
		next, ok := mem.Word(fp)
		if !ok {
			break
		}
		frames = append(frames, ret)
		floor = fp
		fp = next
	}
	return frames
}

// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package sigctx provides read-only views over the fault context that a
// Unix signal handler receives: the siginfo detail record and the saved
// machine context (ucontext_t). Register access is compiled per target
// (defs_*.go); on targets we don't know, every accessor reports unknown
// instead of misreading unrelated memory.
package sigctx

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Info is the subset of siginfo_t that fault diagnostics care about.
// It is read-only input, supplied by the OS via the signal handler.
type Info struct {
	Sig  unix.Signal
	Code int32 // fine-grained si_code reason
	// Addr is the faulting address for memory faults.
	// HasAddr distinguishes "the OS supplied no address" (reported as a
	// NULL pointer dereference) from a genuine small address.
	Addr    uintptr
	HasAddr bool
}

// Context wraps the ucontext_t pointer passed to a signal handler.
// The underlying memory is owned by the OS/handler frame and is only
// ever read, never written.
type Context struct {
	uc unsafe.Pointer
}

// NewContext wraps a raw ucontext_t pointer. The pointer must stay valid
// for as long as the Context is used.
func NewContext(uc unsafe.Pointer) *Context {
	return &Context{uc: uc}
}

// InstructionPointer returns the address of the faulting instruction,
// or ok=false if the compiled target is not a supported architecture.
func (c *Context) InstructionPointer() (uintptr, bool) {
	if c == nil || c.uc == nil {
		return 0, false
	}
	return c.ip()
}

// StackPointer returns the stack pointer at the moment of the fault.
func (c *Context) StackPointer() (uintptr, bool) {
	if c == nil || c.uc == nil {
		return 0, false
	}
	return c.sp()
}

// FramePointer returns the frame pointer at the moment of the fault.
func (c *Context) FramePointer() (uintptr, bool) {
	if c == nil || c.uc == nil {
		return 0, false
	}
	return c.fp()
}

// WriteAccess reports whether the faulting memory access was a write.
// ok is false where the machine context does not expose the access type
// (everything except linux/amd64, which records it in the page-fault
// error code register).
func (c *Context) WriteAccess() (write, ok bool) {
	if c == nil || c.uc == nil {
		return false, false
	}
	return c.writeAccess()
}

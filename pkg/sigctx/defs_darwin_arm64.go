// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sigctx

// Mirrors the darwin arm64 _STRUCT_UCONTEXT/_STRUCT_MCONTEXT64 layout,
// up to the fields we read.

type stackt struct {
	sp    uintptr
	size  uintptr
	flags int32
	_     int32
}

type exceptionstate64 struct {
	far uint64
	esr uint32
	exc uint32
}

type regs64 struct {
	x    [29]uint64
	fp   uint64
	lr   uint64
	sp   uint64
	pc   uint64
	cpsr uint32
	_    uint32
}

type mcontext64 struct {
	es exceptionstate64
	ss regs64
	// neon state follows, unread
}

type ucontext struct {
	onstack  int32
	sigmask  uint32
	stack    stackt
	link     uintptr
	mcsize   uint64
	mcontext *mcontext64
}

func (c *Context) regs() *regs64 {
	mc := (*ucontext)(c.uc).mcontext
	if mc == nil {
		return nil
	}
	return &mc.ss
}

func (c *Context) ip() (uintptr, bool) {
	if r := c.regs(); r != nil {
		return uintptr(r.pc), true
	}
	return 0, false
}

func (c *Context) sp() (uintptr, bool) {
	if r := c.regs(); r != nil {
		return uintptr(r.sp), true
	}
	return 0, false
}

func (c *Context) fp() (uintptr, bool) {
	if r := c.regs(); r != nil {
		return uintptr(r.fp), true
	}
	return 0, false
}

func (c *Context) writeAccess() (bool, bool) {
	return false, false
}

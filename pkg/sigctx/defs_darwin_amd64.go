// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sigctx

// Mirrors the darwin x86-64 _STRUCT_UCONTEXT/_STRUCT_MCONTEXT64 layout,
// up to the fields we read. uc_mcontext is a pointer on darwin.

type stackt struct {
	sp    uintptr
	size  uintptr
	flags int32
	_     int32
}

type exceptionstate64 struct {
	trapno     uint16
	cpu        uint16
	err        uint32
	faultvaddr uint64
}

type regs64 struct {
	rax    uint64
	rbx    uint64
	rcx    uint64
	rdx    uint64
	rdi    uint64
	rsi    uint64
	rbp    uint64
	rsp    uint64
	r8     uint64
	r9     uint64
	r10    uint64
	r11    uint64
	r12    uint64
	r13    uint64
	r14    uint64
	r15    uint64
	rip    uint64
	rflags uint64
	cs     uint64
	fs     uint64
	gs     uint64
}

type mcontext64 struct {
	es exceptionstate64
	ss regs64
	// floating point state follows, unread
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
		return uintptr(r.rip), true
	}
	return 0, false
}

func (c *Context) sp() (uintptr, bool) {
	if r := c.regs(); r != nil {
		return uintptr(r.rsp), true
	}
	return 0, false
}

func (c *Context) fp() (uintptr, bool) {
	if r := c.regs(); r != nil {
		return uintptr(r.rbp), true
	}
	return 0, false
}

func (c *Context) writeAccess() (bool, bool) {
	return false, false
}

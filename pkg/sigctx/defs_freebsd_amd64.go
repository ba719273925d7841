// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sigctx

// Mirrors the FreeBSD amd64 ucontext_t/mcontext_t layout, up to the
// fields we read. On FreeBSD the signal mask precedes the machine
// context inside ucontext_t.

type sigset struct {
	val [4]uint32
}

type mcontext struct {
	onstack uint64
	rdi     uint64
	rsi     uint64
	rdx     uint64
	rcx     uint64
	r8      uint64
	r9      uint64
	rax     uint64
	rbx     uint64
	rbp     uint64
	r10     uint64
	r11     uint64
	r12     uint64
	r13     uint64
	r14     uint64
	r15     uint64
	trapno  uint32
	fs      uint16
	gs      uint16
	addr    uint64
	flags   uint32
	es      uint16
	ds      uint16
	err     uint64
	rip     uint64
	cs      uint64
	rflags  uint64
	rsp     uint64
	ss      uint64
	// mc_len and the FPU state follow, unread
}

type ucontext struct {
	sigmask  sigset
	mcontext mcontext
}

func (c *Context) ip() (uintptr, bool) {
	return uintptr((*ucontext)(c.uc).mcontext.rip), true
}

func (c *Context) sp() (uintptr, bool) {
	return uintptr((*ucontext)(c.uc).mcontext.rsp), true
}

func (c *Context) fp() (uintptr, bool) {
	return uintptr((*ucontext)(c.uc).mcontext.rbp), true
}

func (c *Context) writeAccess() (bool, bool) {
	return false, false
}

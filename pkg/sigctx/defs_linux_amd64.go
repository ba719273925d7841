// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sigctx

// Mirrors the glibc x86-64 ucontext_t layout, up to the fields we read.

type stackt struct {
	sp    uintptr
	flags int32
	_     int32
	size  uintptr
}

type mcontext struct {
	gregs    [23]uint64
	fpregs   uintptr
	reserved [8]uint64
}

type ucontext struct {
	flags    uint64
	link     uintptr
	stack    stackt
	mcontext mcontext
	sigmask  uint64
}

// Register indexes into mcontext.gregs, from glibc sys/ucontext.h.
const (
	regRBP = 10
	regRSP = 15
	regRIP = 16
	regERR = 19
)

func (c *Context) ip() (uintptr, bool) {
	return uintptr((*ucontext)(c.uc).mcontext.gregs[regRIP]), true
}

func (c *Context) sp() (uintptr, bool) {
	return uintptr((*ucontext)(c.uc).mcontext.gregs[regRSP]), true
}

func (c *Context) fp() (uintptr, bool) {
	return uintptr((*ucontext)(c.uc).mcontext.gregs[regRBP]), true
}

// Bit 1 of the page-fault error code is set for writes, clear for reads.
func (c *Context) writeAccess() (bool, bool) {
	return (*ucontext)(c.uc).mcontext.gregs[regERR]&0x2 != 0, true
}

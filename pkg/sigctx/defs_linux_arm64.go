// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sigctx

// Mirrors the Linux arm64 ucontext_t/sigcontext layout, up to the fields
// we read. The kernel sigset occupies 1024 bits in ucontext_t and
// uc_mcontext is 16-byte aligned.

type stackt struct {
	sp    uintptr
	flags int32
	_     int32
	size  uintptr
}

type sigcontext struct {
	faultAddress uint64
	regs         [31]uint64
	sp           uint64
	pc           uint64
	pstate       uint64
	_            [8]byte // __reserved below is 16-byte aligned
	reserved     [4096]byte
}

type ucontext struct {
	flags    uint64
	link     uintptr
	stack    stackt
	sigmask  uint64
	_        [120]byte // remainder of the 1024-bit sigset
	_        [8]byte   // uc_mcontext is 16-byte aligned
	mcontext sigcontext
}

const regFP = 29 // x29 is the frame pointer in the AAPCS64 ABI

func (c *Context) ip() (uintptr, bool) {
	return uintptr((*ucontext)(c.uc).mcontext.pc), true
}

func (c *Context) sp() (uintptr, bool) {
	return uintptr((*ucontext)(c.uc).mcontext.sp), true
}

func (c *Context) fp() (uintptr, bool) {
	return uintptr((*ucontext)(c.uc).mcontext.regs[regFP]), true
}

// The access type lives in ESR_EL1 which the kernel does not expose
// through mcontext, so no write/read classification here.
func (c *Context) writeAccess() (bool, bool) {
	return false, false
}

// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build darwin || freebsd

package sigctx

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Leading fields of the darwin/FreeBSD siginfo_t.
type siginfoBSD struct {
	signo  int32
	errno  int32
	code   int32
	pid    int32
	uid    uint32
	status int32
	addr   uintptr
}

// InfoFromRaw parses the raw siginfo_t pointer a signal handler receives.
// A NULL si_addr is reported as an absent address.
func InfoFromRaw(p unsafe.Pointer) *Info {
	if p == nil {
		return nil
	}
	si := (*siginfoBSD)(p)
	return &Info{
		Sig:     unix.Signal(si.signo),
		Code:    si.code,
		Addr:    si.addr,
		HasAddr: si.addr != 0,
	}
}

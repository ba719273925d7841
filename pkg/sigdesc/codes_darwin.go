// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sigdesc

// si_code values from the XNU sys/signal.h. Note the FPE ordering
// differs from Linux, and there are no machine-check bus codes.
const (
	SEGV_MAPERR = 1
	SEGV_ACCERR = 2

	BUS_ADRALN = 1
	BUS_ADRERR = 2
	BUS_OBJERR = 3

	ILL_ILLOPC = 1
	ILL_ILLTRP = 2
	ILL_PRVOPC = 3
	ILL_ILLOPN = 4
	ILL_ILLADR = 5
	ILL_PRVREG = 6
	ILL_COPROC = 7
	ILL_BADSTK = 8

	FPE_FLTDIV = 1
	FPE_FLTOVF = 2
	FPE_FLTUND = 3
	FPE_FLTRES = 4
	FPE_FLTINV = 5
	FPE_FLTSUB = 6
	FPE_INTDIV = 7
	FPE_INTOVF = 8
)

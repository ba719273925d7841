// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sigdesc

// si_code classification tables shared by all targets. The numeric
// constants come from the per-OS codes_*.go file; Linux adds its
// machine-check bus codes on top in an init there. The maps are filled
// during program init and read-only afterwards.

var segvCodes = map[int32]string{
	SEGV_ACCERR: "Attempted access has violated the permissions assigned to the memory area.",
	SEGV_MAPERR: "Address not mapped to object.",
}

var busCodes = map[int32]string{
	BUS_ADRALN: "Invalid address alignment.",
	BUS_ADRERR: "Non-existant physical address.",
	BUS_OBJERR: "Object specific hardware error.",
}

var illCodes = map[int32]string{
	ILL_ILLOPC: "Illegal opcode.",
	ILL_ILLOPN: "Illegal operand.",
	ILL_ILLADR: "Illegal addressing mode.",
	ILL_ILLTRP: "Illegal trap.",
	ILL_PRVOPC: "Privileged opcode.",
	ILL_PRVREG: "Privileged register.",
	ILL_COPROC: "Coprocessor error.",
	ILL_BADSTK: "Internal stack error.",
}

var fpeCodes = map[int32]string{
	FPE_INTDIV: "Integer divide by zero.",
	FPE_INTOVF: "Integer overflow.",
	FPE_FLTDIV: "Floating point divide by zero.",
	FPE_FLTOVF: "Floating point overflow.",
	FPE_FLTUND: "Floating point underflow.",
	FPE_FLTRES: "Floating point inexact result.",
	FPE_FLTINV: "Floating point invalid operation.",
	FPE_FLTSUB: "Subscript out of range.",
}

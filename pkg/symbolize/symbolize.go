// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package symbolize renders raw stack addresses as human-readable lines:
// nearest-symbol lookup against an object file, C++ name demangling, and
// per-frame formatting. Every failure degrades the affected line only.
package symbolize

import (
	"fmt"
	"strings"

	"github.com/ianlancetaylor/demangle"
)

// Symbol is the structured result of resolving one address: the object
// it belongs to, the raw (possibly mangled) symbol name, and the byte
// offset from the symbol start.
type Symbol struct {
	Module string
	Name   string
	Offset uint64
}

// Resolver maps an address to the nearest preceding exported symbol.
type Resolver interface {
	Resolve(pc uint64) (Symbol, bool)
}

// Render formats frames one line each, innermost first, each line
// terminated by delim. Lines are independent: a frame that fails to
// resolve or demangle degrades on its own and never aborts the rest.
// An empty frame list renders as an empty string.
func Render(r Resolver, frames []uintptr, delim string) string {
	var b strings.Builder
	for i, pc := range frames {
		var sym Symbol
		ok := false
		if r != nil {
			sym, ok = r.Resolve(uint64(pc))
		}
		switch {
		case !ok && i == 0:
			// A first frame with no symbol usually means the fault
			// address itself is unmapped.
			fmt.Fprintf(&b, "0. No symbols could be found for backtrace starting at 0x%x%s", pc, delim)
		case !ok:
			fmt.Fprintf(&b, "%d. No symbol found for 0x%x%s", i, pc, delim)
		case sym.Name == "":
			fmt.Fprintf(&b, "%d. %s [0x%x]%s", i, sym.Module, pc, delim)
		default:
			fmt.Fprintf(&b, "%d. %s(%s+0x%x) [0x%x]%s", i, sym.Module, Demangle(sym.Name), sym.Offset, pc, delim)
		}
	}
	return b.String()
}

// Demangle translates a C++-mangled name to its source form. Names that
// don't demangle (C functions, malformed input) come back unchanged.
func Demangle(name string) string {
	if d, err := demangle.ToString(name); err == nil {
		return d
	}
	return name
}

// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symbolize

import (
	"debug/elf"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
)

// ELFResolver resolves addresses against the symbol table of one ELF
// object. Resolution is a binary search over symbols sorted by address,
// safe for concurrent use once constructed.
type ELFResolver struct {
	module  string
	symbols []elf.Symbol
	// Bias is subtracted from runtime addresses before lookup; set it to
	// the load base when resolving a position-independent executable.
	Bias uint64
}

// NewELFResolver reads the symbol table of bin. Static and dynamic
// symbols are merged, since stripped binaries often keep only the
// dynamic table.
func NewELFResolver(bin string) (*ELFResolver, error) {
	ef, err := elf.Open(bin)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file %v: %w", bin, err)
	}
	defer ef.Close()
	symbols, err := ef.Symbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, fmt.Errorf("failed to read ELF symbols %v: %w", bin, err)
	}
	dynamic, err := ef.DynamicSymbols()
	if err == nil {
		symbols = append(symbols, dynamic...)
	}
	var funcs []elf.Symbol
	for _, symb := range symbols {
		if elf.ST_TYPE(symb.Info) != elf.STT_FUNC || symb.Value == 0 {
			continue
		}
		funcs = append(funcs, symb)
	}
	if len(funcs) == 0 {
		return nil, fmt.Errorf("no function symbols in %v", bin)
	}
	sort.Slice(funcs, func(i, j int) bool {
		if funcs[i].Value != funcs[j].Value {
			return funcs[i].Value < funcs[j].Value
		}
		return funcs[i].Size < funcs[j].Size
	})
	return &ELFResolver{
		module:  filepath.Base(bin),
		symbols: funcs,
	}, nil
}

// Resolve finds the nearest symbol at or before pc. Symbols with zero
// recorded size cover up to the next symbol (or one page past the end of
// the table), matching how symbol tables without sizes are conventionally
// interpreted.
func (r *ELFResolver) Resolve(pc uint64) (Symbol, bool) {
	pc -= r.Bias
	idx := sort.Search(len(r.symbols), func(i int) bool {
		return r.symbols[i].Value > pc
	})
	if idx == 0 {
		return Symbol{}, false
	}
	s := r.symbols[idx-1]
	limit := s.Value + s.Size
	if s.Size == 0 {
		if idx < len(r.symbols) {
			limit = r.symbols[idx].Value
		} else {
			limit = s.Value + 4096
		}
	}
	if pc >= limit {
		return Symbol{}, false
	}
	return Symbol{
		Module: r.module,
		Name:   s.Name,
		Offset: pc - s.Value,
	}, true
}

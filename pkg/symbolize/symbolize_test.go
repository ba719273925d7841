// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symbolize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeResolver resolves addresses from a fixed table.
type fakeResolver map[uint64]Symbol

func (r fakeResolver) Resolve(pc uint64) (Symbol, bool) {
	sym, ok := r[pc]
	return sym, ok
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(fakeResolver{}, nil, "\n"))
	assert.Equal(t, "", Render(fakeResolver{}, []uintptr{}, "\n"))
	assert.Equal(t, "", Render(nil, nil, "\n"))
}

func TestRenderCounts(t *testing.T) {
	resolver := fakeResolver{}
	for _, n := range []int{1, 2, 5, 50} {
		var frames []uintptr
		for i := 0; i < n; i++ {
			pc := uintptr(0x1000 + i*0x10)
			frames = append(frames, pc)
			resolver[uint64(pc)] = Symbol{Module: "bin", Name: fmt.Sprintf("f%v", i), Offset: 4}
		}
		out := Render(resolver, frames, "|")
		assert.Equal(t, n, strings.Count(out, "|"), "n=%v", n)
		// Lines are indexed from zero.
		assert.True(t, strings.HasPrefix(out, "0. "), "n=%v out=%q", n, out)
		assert.Contains(t, out, fmt.Sprintf("%v. bin(f%v+0x4)", n-1, n-1))
	}
}

func TestRenderDemangles(t *testing.T) {
	resolver := fakeResolver{
		0x100: {Module: "libcrash.so", Name: "_Z3fooi", Offset: 0x1a},
	}
	out := Render(resolver, []uintptr{0x100}, "\n")
	assert.Equal(t, "0. libcrash.so(foo(int)+0x1a) [0x100]\n", out)
	assert.NotContains(t, out, "_Z3fooi")
}

func TestRenderMalformedMangling(t *testing.T) {
	// Names that don't demangle pass through unchanged, without error.
	resolver := fakeResolver{
		0x100: {Module: "bin", Name: "plain_c_function", Offset: 8},
		0x200: {Module: "bin", Name: "_Znot_a_real_mangling", Offset: 0},
	}
	out := Render(resolver, []uintptr{0x100, 0x200}, "\n")
	assert.Contains(t, out, "0. bin(plain_c_function+0x8) [0x100]")
	assert.Contains(t, out, "1. bin(_Znot_a_real_mangling+0x0) [0x200]")
}

func TestRenderNoSymbol(t *testing.T) {
	// An unresolved first frame usually means the fault address is
	// unmapped and is reported distinctly.
	out := Render(fakeResolver{}, []uintptr{0xdead}, "\n")
	assert.Equal(t, "0. No symbols could be found for backtrace starting at 0xdead\n", out)

	// A later frame failing does not abort the rest.
	resolver := fakeResolver{
		0x100: {Module: "bin", Name: "f0", Offset: 0},
		0x300: {Module: "bin", Name: "f2", Offset: 0},
	}
	out = Render(resolver, []uintptr{0x100, 0x200, 0x300}, "\n")
	assert.Equal(t,
		"0. bin(f0+0x0) [0x100]\n"+
			"1. No symbol found for 0x200\n"+
			"2. bin(f2+0x0) [0x300]\n",
		out)
}

func TestDemangle(t *testing.T) {
	tests := []struct {
		mangled string
		want    string
	}{
		{"_Z3fooi", "foo(int)"},
		{"_ZN9wikipedia7article6formatEv", "wikipedia::article::format()"},
		{"main", "main"},
		{"_Zbroken", "_Zbroken"},
		{"", ""},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Demangle(test.mangled), "mangled=%q", test.mangled)
	}
}

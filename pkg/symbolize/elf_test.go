// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build linux

package symbolize

import (
	"reflect"
	"strings"
	"testing"
)

// The test binary is itself an ELF executable with a symbol table, so it
// serves as its own test fixture.
func TestELFResolverSelf(t *testing.T) {
	resolver, err := SelfResolver()
	if err != nil {
		t.Fatalf("failed to resolve own executable: %v", err)
	}
	pc := reflect.ValueOf(Render).Pointer()
	sym, ok := resolver.Resolve(uint64(pc))
	if !ok {
		t.Fatalf("failed to resolve pc 0x%x of symbolize.Render", pc)
	}
	if !strings.Contains(sym.Name, "symbolize.Render") {
		t.Fatalf("resolved wrong symbol %q for symbolize.Render", sym.Name)
	}
}

func TestELFResolverMissing(t *testing.T) {
	if _, err := NewELFResolver("/nonexistent/binary"); err == nil {
		t.Fatalf("expected error for missing binary")
	}
}

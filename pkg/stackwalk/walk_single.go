// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package stackwalk

import "github.com/sigtrace/sigtrace/pkg/sigctx"

// Without reliable frame pointers there is no walk; report at least the
// function where the signal happened.
func (w *Walker) capture(ctx *sigctx.Context) []uintptr {
	if pc, ok := ctx.InstructionPointer(); ok {
		return []uintptr{pc}
	}
	return nil
}

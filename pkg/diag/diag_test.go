// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package diag

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/sigtrace/sigtrace/pkg/sigctx"
	"github.com/sigtrace/sigtrace/pkg/sigdesc"
)

func TestCaptureFramesNilContext(t *testing.T) {
	assert.Empty(t, CaptureFrames(nil))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil, "\n"))
}

func TestReportUnknownSignal(t *testing.T) {
	// Non-specialized signal, no context: both halves are empty and the
	// report degrades to an empty string without erroring.
	assert.Equal(t, "", Report(unix.SIGTERM, nil, nil))
}

func TestReportSegv(t *testing.T) {
	info := &sigctx.Info{Sig: unix.SIGSEGV, Code: sigdesc.SEGV_MAPERR, Addr: 0x10, HasAddr: true}
	got := Report(unix.SIGSEGV, info, nil)
	// No context means no frames; the report is the cause text alone.
	assert.Contains(t, got, "Address: 0x10")
}

// Concurrent faults on different threads must not observe each other's
// inputs: every result depends only on its own fault context.
func TestExplainConcurrent(t *testing.T) {
	const workers = 16
	const iters = 100
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < iters; i++ {
				addr := uintptr(0x1000 + w*0x100 + i)
				info := &sigctx.Info{Sig: unix.SIGSEGV, Code: sigdesc.SEGV_ACCERR, Addr: addr, HasAddr: true}
				want := fmt.Sprintf("Address: 0x%x Attempted access has violated the permissions assigned to the memory area.", addr)
				if got := Explain(unix.SIGSEGV, info, nil); got != want {
					return fmt.Errorf("worker %v: got %q, want %q", w, got, want)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

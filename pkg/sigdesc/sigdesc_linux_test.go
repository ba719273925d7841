// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sigdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/sigtrace/sigtrace/pkg/sigctx"
)

func TestDescribeBusMachineCheck(t *testing.T) {
	got := Describe(unix.SIGBUS, &sigctx.Info{Code: BUS_MCEERR_AR}, nil)
	assert.Equal(t, "Hardware memory error: action required.", got)

	got = Describe(unix.SIGBUS, &sigctx.Info{Code: BUS_MCEERR_AO}, nil)
	assert.Equal(t, "Hardware memory error: action optional.", got)
}

// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build !linux && !darwin && !freebsd

package sigctx

import "unsafe"

// InfoFromRaw cannot parse siginfo_t on targets whose layout we don't
// know; callers fall back to constructing Info themselves.
func InfoFromRaw(p unsafe.Pointer) *Info {
	return nil
}

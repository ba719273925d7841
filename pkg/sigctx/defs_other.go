// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build !(linux && (amd64 || arm64)) && !(darwin && (amd64 || arm64)) && !(freebsd && amd64)

package sigctx

// Unsupported target: we don't know the machine context layout, so every
// register reads as unknown rather than as a guess.

func (c *Context) ip() (uintptr, bool) {
	return 0, false
}

func (c *Context) sp() (uintptr, bool) {
	return 0, false
}

func (c *Context) fp() (uintptr, bool) {
	return 0, false
}

func (c *Context) writeAccess() (bool, bool) {
	return false, false
}

// Copyright 2026 sigtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symbolize

import (
	"fmt"
	"os"
	"sync"
)

var (
	selfOnce sync.Once
	selfRes  *ELFResolver
	selfErr  error
)

// SelfResolver resolves addresses against the running executable.
// The resolver is built once and shared; it is read-only after
// construction, so concurrent callers need no locking.
func SelfResolver() (Resolver, error) {
	selfOnce.Do(func() {
		exe, err := os.Executable()
		if err != nil {
			selfErr = fmt.Errorf("failed to locate own executable: %w", err)
			return
		}
		selfRes, selfErr = NewELFResolver(exe)
	})
	if selfErr != nil {
		return nil, selfErr
	}
	return selfRes, nil
}

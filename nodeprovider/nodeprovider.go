// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package nodeprovider supplies the `current node` atom's version
// string. The real implementation shells out to the node binary on
// PATH; tests and embedders that don't have one installed use a fake
// that returns a fixed string instead.
package nodeprovider

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Provider supplies the currently installed Node.js version, as
// reported by whatever runtime the caller is embedded in.
type Provider interface {
	CurrentVersion() (string, error)
}

// Real shells out to `node -v` and memoizes the result for the life of
// the process: the installed Node.js version can't change mid-run, so
// there's no reason to spawn the subprocess more than once.
type Real struct {
	once    sync.Once
	version string
	err     error
}

// CurrentVersion returns the installed Node.js version, without its
// leading "v".
func (r *Real) CurrentVersion() (string, error) {
	r.once.Do(func() {
		r.version, r.err = queryNode()
	})

	return r.version, r.err
}

func queryNode() (string, error) {
	cmd := exec.CommandContext(context.Background(), "node", "-v")

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("nodeprovider: run node -v: %w", err)
	}

	return strings.TrimPrefix(strings.TrimSpace(string(out)), "v"), nil
}

// Fixed is a Provider that always reports the same version, for tests
// and for embedders that already know their runtime's Node.js version
// without spawning a subprocess.
type Fixed string

// CurrentVersion returns the fixed version string.
func (f Fixed) CurrentVersion() (string, error) {
	return string(f), nil
}

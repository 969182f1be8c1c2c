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

// Package extends resolves an `extends <package>` atom's package name
// to the query strings of the shareable config it names. The upstream
// ecosystem resolves these through node's module system
// (require.resolve against browserslist-config-* packages); this
// module has no such runtime, so it ships a MapResolver that looks the
// package name up in a caller-supplied table instead.
package extends

import "fmt"

// Resolver resolves a package name to its shareable config's query
// strings, one query per element.
type Resolver interface {
	Resolve(pkg string) ([]string, error)
}

// MapResolver is a Resolver backed by a fixed table, for embedders that
// bundle a small number of known shareable configs (or for tests).
type MapResolver map[string][]string

// Resolve looks pkg up in the map.
func (m MapResolver) Resolve(pkg string) ([]string, error) {
	queries, ok := m[pkg]
	if !ok {
		return nil, fmt.Errorf("extends: unknown shareable config %q", pkg)
	}

	return queries, nil
}

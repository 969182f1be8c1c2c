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

// Package browserslist resolves browserslist-style DSL query strings
// ("last 2 versions", "> 0.5% in US", "not dead") into a normalized,
// deduplicated, sorted list of (browser, version) targets, against a
// bundled snapshot of browser/Node.js/Electron compatibility data.
package browserslist

import (
	"sort"
	"strings"

	"github.com/google/browserslist/compose"
	"github.com/google/browserslist/config"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/eval"
	"github.com/google/browserslist/extends"
	"github.com/google/browserslist/nodeprovider"
	"github.com/google/browserslist/options"
	"github.com/google/browserslist/parse"
	"github.com/google/browserslist/resolveerr"
	"github.com/google/browserslist/semver"
)

func init() {
	eval.SetQueryResolver(resolveOne)
	eval.SetConfigLoader(config.FileLoader{}.Load)
}

// Engine bundles the collaborators Resolve/Execute consult beyond the
// bundled data snapshot: the current-Node provider and the `extends`
// package resolver. The zero value is usable: with Node unset, `current
// node` atoms fail with KindUnsupportedCurrentNode, and with Extends
// unset, extends atoms fail with KindUnsupportedExtends. DefaultEngine
// sets Node to nodeprovider.Real.
type Engine struct {
	Node    eval.NodeProvider
	Extends eval.ExtendsResolver
}

// DefaultEngine is the Engine Resolve and Execute use when called as
// package-level functions. Embedders that need a custom Node provider
// or a populated extends table should construct their own Engine and
// call its methods instead.
var DefaultEngine = &Engine{Node: &nodeprovider.Real{}}

// Resolve joins queries with ", " and evaluates them as one query, the
// way browserslist config file lines combine: plain entries are
// OR-combined, and an entry starting with "not" subtracts from the
// entries before it. It returns the deduplicated, sorted target list.
func Resolve(queries []string, opts options.Options) ([]data.Target, error) {
	return DefaultEngine.Resolve(queries, opts)
}

// Resolve is the Engine method backing the package-level Resolve.
func (e *Engine) Resolve(queries []string, opts options.Options) ([]data.Target, error) {
	if len(queries) == 0 {
		return nil, resolveerr.New(resolveerr.KindEmptyQuery)
	}

	ctx := e.context(opts)

	targets, err := resolveOneWith(strings.Join(queries, ", "), ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[data.Target]bool)
	var out []data.Target
	for _, t := range targets {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Browser != out[j].Browser {
			return out[i].Browser < out[j].Browser
		}

		return semver.Parse(out[i].Version).Compare(semver.Parse(out[j].Version)) > 0
	})

	return out, nil
}

// Execute discovers configuration the way the CLI does (an explicit
// Config path, or an upward directory walk from Path, or
// BROWSERSLIST/BROWSERSLIST_CONFIG env overrides) and resolves it.
func Execute(opts options.Options) ([]data.Target, error) {
	return DefaultEngine.Execute(opts)
}

// Execute is the Engine method backing the package-level Execute.
func (e *Engine) Execute(opts options.Options) ([]data.Target, error) {
	queries, err := config.FileLoader{}.Load(opts)
	if err != nil {
		return nil, err
	}

	return e.Resolve(queries, opts)
}

func (e *Engine) context(opts options.Options) eval.Context {
	return eval.Context{
		Snapshot: data.Get(),
		Options:  opts,
		Node:     e.Node,
		Extends:  e.Extends,
	}
}

// resolveOne is installed into eval via SetQueryResolver so the
// `extends` atom can recursively resolve each line of a shareable
// config using DefaultEngine's collaborators.
func resolveOne(query string, opts options.Options) ([]data.Target, error) {
	return resolveOneWith(query, DefaultEngine.context(opts))
}

func resolveOneWith(query string, ctx eval.Context) ([]data.Target, error) {
	clauses, err := parse.Parse(query)
	if err != nil {
		return nil, err
	}

	return compose.Fold(clauses, ctx)
}

// MapExtends is a convenience alias so callers can wire a fixed
// shareable-config table without importing the extends package
// directly.
type MapExtends = extends.MapResolver

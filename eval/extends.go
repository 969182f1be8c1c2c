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

package eval

import (
	"errors"
	"strings"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/options"
	"github.com/google/browserslist/resolveerr"
)

// queryResolver fully resolves one query string (parse + eval + the
// and/or/negation algebra) to a target list. eval can't import the
// package that implements this (it composes parse, eval, and compose
// together) without a cycle, so the root package wires it in once via
// SetQueryResolver during init.
var queryResolver func(query string, opts options.Options) ([]data.Target, error)

// SetQueryResolver installs the function the `extends` atom uses to
// resolve each line of a shareable config back into targets.
func SetQueryResolver(fn func(string, options.Options) ([]data.Target, error)) {
	queryResolver = fn
}

func evalExtends(a ast.Extends, ctx Context) ([]data.Target, error) {
	if ctx.Extends == nil {
		return nil, resolveerr.New(resolveerr.KindUnsupportedExtends).WithPackage(a.Package)
	}

	if !ctx.Options.DangerousExtend && !safeExtendName(a.Package) {
		return nil, resolveerr.New(resolveerr.KindInvalidExtendName).WithPackage(a.Package).
			WithErr(errors.New("package name must start with browserslist-config- (optionally scoped) and contain no \".\" or \"node_modules\""))
	}

	if queryResolver == nil {
		return nil, resolveerr.New(resolveerr.KindUnsupportedExtends).WithPackage(a.Package)
	}

	queries, err := ctx.Extends.Resolve(a.Package)
	if err != nil {
		return nil, resolveerr.New(resolveerr.KindFailedToResolveExtend).WithPackage(a.Package).WithErr(err)
	}

	var out []data.Target
	for _, q := range queries {
		targets, err := queryResolver(q, ctx.Options)
		if err != nil {
			return nil, err
		}
		out = append(out, targets...)
	}

	return out, nil
}

// safeExtendName implements the §4.2.12 name-safety check: stripped of
// any "@scope/" prefix, the unscoped part must start with
// "browserslist-config-" (or equal "browserslist-config" exactly), must
// not contain a ".", and the full name must not contain "node_modules".
func safeExtendName(pkg string) bool {
	if strings.Contains(pkg, "node_modules") {
		return false
	}

	unscoped := pkg
	if strings.HasPrefix(pkg, "@") {
		_, rest, ok := strings.Cut(pkg, "/")
		if !ok {
			return false
		}
		unscoped = rest
	}

	if strings.Contains(unscoped, ".") {
		return false
	}

	return unscoped == "browserslist-config" || strings.HasPrefix(unscoped, "browserslist-config-")
}

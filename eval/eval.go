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

// Package eval turns a single ast.QueryAtom into the list of targets it
// contributes, against the bundled data snapshot and the caller's
// options. It's a closed dispatcher: every atom type ast defines has
// exactly one case below. An atom type without a case is not a compile
// error; it reaches the default case, which reports KindUnknownQuery.
package eval

import (
	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/options"
	"github.com/google/browserslist/resolveerr"
)

// NodeProvider supplies the currently installed Node.js version for the
// `current node` atom. Kept as a tiny local interface (rather than
// importing the nodeprovider package's concrete type) so eval doesn't
// need to know how the version was obtained.
type NodeProvider interface {
	CurrentVersion() (string, error)
}

// ExtendsResolver resolves an `extends <package>` atom's package name to
// the query strings of the shareable config it names.
type ExtendsResolver interface {
	Resolve(pkg string) ([]string, error)
}

// Context bundles the collaborators Eval needs beyond the atom itself.
type Context struct {
	Snapshot *data.Snapshot
	Options  options.Options
	Node     NodeProvider
	Extends  ExtendsResolver
}

// Eval resolves a single atom to the targets it contributes. Negation
// and AND/OR combination across a whole query are handled by the
// compose package, not here: Eval only ever answers "what does this
// one atom mean on its own".
func Eval(atom ast.QueryAtom, ctx Context) ([]data.Target, error) {
	switch a := atom.(type) {
	case ast.LastVersions:
		return evalLastVersions(a, ctx)
	case ast.LastMajors:
		return evalLastMajors(a, ctx)
	case ast.LastElectronVersions:
		return evalLastElectronVersions(a, ctx)
	case ast.LastElectronMajors:
		return evalLastElectronMajors(a, ctx)
	case ast.LastNodeMajors:
		return evalLastNodeMajors(a, ctx)
	case ast.LastYears:
		return evalLastYears(a, ctx)
	case ast.Unreleased:
		return evalUnreleased(a, ctx)
	case ast.Dead:
		return evalDead(ctx)
	case ast.PercentageGlobal:
		return evalPercentageGlobal(a, ctx)
	case ast.PercentageRegion:
		return evalPercentageRegion(a, ctx)
	case ast.PercentageBrowser:
		return evalPercentageBrowser(a, ctx)
	case ast.CoverGlobal:
		return evalCoverGlobal(a, ctx)
	case ast.CoverRegion:
		return evalCoverRegion(a, ctx)
	case ast.BrowserVersion:
		return evalBrowserVersion(a, ctx)
	case ast.BrowserVersionRange:
		return evalBrowserVersionRange(a, ctx)
	case ast.BrowserComparator:
		return evalBrowserComparator(a, ctx)
	case ast.BrowsersList:
		return evalBrowsersList(a, ctx)
	case ast.Supports:
		return evalSupports(a, ctx)
	case ast.Since:
		return evalSince(a, ctx)
	case ast.CurrentNode:
		return evalCurrentNode(ctx)
	case ast.MaintainedNode:
		return evalMaintainedNode(ctx)
	case ast.Extends:
		return evalExtends(a, ctx)
	case ast.Defaults:
		return evalDefaults(ctx)
	case ast.AllBrowsers:
		return evalAllBrowsers(ctx)
	case ast.FirefoxESRTerminal:
		return evalFirefoxESR(ctx)
	case ast.PhantomJS:
		return evalPhantomJS(a)
	case ast.BrowserslistConfigTerminal:
		return evalBrowserslistConfig(ctx)
	default:
		return nil, resolveerr.New(resolveerr.KindUnknownQuery)
	}
}

// rowsFor returns browser's version rows, substituting the virtual
// mobile_to_desktop list when the option is set.
func rowsFor(browser string, ctx Context) ([]data.VersionRow, bool) {
	if ctx.Options.MobileToDesktop {
		stat, ok := ctx.Snapshot.Virtual(browser)
		return stat.Versions, ok
	}

	stat, ok := ctx.Snapshot.Browser(browser)
	return stat.Versions, ok
}

func targetsFrom(browser string, rows []data.VersionRow) []data.Target {
	out := make([]data.Target, 0, len(rows))
	for _, r := range rows {
		out = append(out, data.Target{Browser: browser, Version: r.Version})
	}

	return out
}

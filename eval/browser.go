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
	"strconv"
	"strings"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/resolveerr"
	"github.com/google/browserslist/semver"
)

func evalBrowserVersion(a ast.BrowserVersion, ctx Context) ([]data.Target, error) {
	if a.Browser == "electron" {
		electron, err := strconv.ParseFloat(a.Version, 64)
		if err != nil {
			return nil, resolveerr.New(resolveerr.KindUnknownElectronVersion).WithVersion(a.Version)
		}
		chromium, ok := ctx.Snapshot.ChromiumForElectron(electron)
		if !ok {
			return nil, resolveerr.New(resolveerr.KindUnknownElectronVersion).WithVersion(a.Version)
		}

		return []data.Target{{Browser: data.Chrome, Version: strconv.Itoa(chromium)}}, nil
	}

	rows, ok := rowsForToken(a.Browser, ctx)
	if !ok {
		return nil, missingBrowser(ctx, a.Browser)
	}

	version := data.CanonicalSafariVersion(a.Browser, a.Version)
	if canonical, ok := data.CanonicalVersion(a.Browser, version, rows); ok {
		return []data.Target{{Browser: a.Browser, Version: canonical}}, nil
	}

	// "accurate version": tolerate a trailing ".0" either way before
	// giving up, matching the upstream project's own lookup fallback.
	var alt string
	if trimmed := strings.TrimSuffix(version, ".0"); trimmed != version {
		alt = trimmed
	} else {
		alt = version + ".0"
	}
	if canonical, ok := data.CanonicalVersion(a.Browser, alt, rows); ok {
		return []data.Target{{Browser: a.Browser, Version: canonical}}, nil
	}

	return nil, missingVersion(ctx, a.Browser, a.Version)
}

func evalBrowserVersionRange(a ast.BrowserVersionRange, ctx Context) ([]data.Target, error) {
	if a.Browser == "electron" {
		lo, errLo := strconv.ParseFloat(a.Low, 64)
		hi, errHi := strconv.ParseFloat(a.High, 64)
		if errLo != nil || errHi != nil {
			return nil, missingVersion(ctx, a.Browser, a.Low+"-"+a.High)
		}

		seen := make(map[int]bool)
		var out []data.Target
		for _, c := range ctx.Snapshot.ElectronRange(lo, hi) {
			if !seen[c] {
				seen[c] = true
				out = append(out, data.Target{Browser: data.Chrome, Version: strconv.Itoa(c)})
			}
		}

		return out, nil
	}

	rows, ok := rowsForToken(a.Browser, ctx)
	if !ok {
		return nil, missingBrowser(ctx, a.Browser)
	}

	lo, hi := semver.Parse(a.Low), semver.Parse(a.High)

	var out []data.Target
	for _, r := range rows {
		if semver.InRange(semver.Parse(r.Version), lo, hi) {
			out = append(out, data.Target{Browser: a.Browser, Version: r.Version})
		}
	}

	return out, nil
}

func evalBrowserComparator(a ast.BrowserComparator, ctx Context) ([]data.Target, error) {
	cmp := semver.Comparator(a.Comparator)

	if a.Browser == "electron" {
		ref, err := strconv.ParseFloat(a.Version, 64)
		if err != nil {
			return nil, missingVersion(ctx, a.Browser, a.Version)
		}

		seen := make(map[int]bool)
		var out []data.Target
		for _, m := range ctx.Snapshot.ElectronVersions() {
			if cmp.Satisfies(compareFloat(m.Electron, ref)) && !seen[m.Chromium] {
				seen[m.Chromium] = true
				out = append(out, data.Target{Browser: data.Chrome, Version: strconv.Itoa(m.Chromium)})
			}
		}

		return out, nil
	}

	rows, ok := rowsForToken(a.Browser, ctx)
	if !ok {
		return nil, missingBrowser(ctx, a.Browser)
	}

	ref := semver.Parse(a.Version)

	var out []data.Target
	for _, r := range releasedOnly(rows) {
		if cmp.Satisfies(semver.Parse(r.Version).Compare(ref)) {
			out = append(out, data.Target{Browser: a.Browser, Version: r.Version})
		}
	}

	return out, nil
}

func evalBrowsersList(a ast.BrowsersList, ctx Context) ([]data.Target, error) {
	var out []data.Target
	for _, browser := range a.Browsers {
		rows, ok := rowsForToken(browser, ctx)
		if !ok {
			if err := missingBrowser(ctx, browser); err != nil {
				return nil, err
			}
			continue
		}

		out = append(out, targetsFrom(browser, rows)...)
	}

	return out, nil
}

func evalDead(ctx Context) ([]data.Target, error) {
	// The upstream project's hardcoded "dead" list: browser lines with no
	// meaningful ongoing usage. Expressed as comparator/version atoms
	// against each dead browser's own history, rather than a literal
	// version list, so it stays correct as the bundled tables are
	// refreshed.
	dead := []ast.QueryAtom{
		ast.BrowserComparator{Browser: data.Baidu, Comparator: ">=", Version: "0"},
		ast.BrowserComparator{Browser: data.IE, Comparator: "<=", Version: "11"},
		ast.BrowserComparator{Browser: data.IEMobile, Comparator: "<=", Version: "11"},
		ast.BrowserComparator{Browser: data.BlackBerry, Comparator: "<=", Version: "10"},
		ast.BrowserComparator{Browser: data.OperaMobile, Comparator: "<=", Version: "12.1"},
		ast.BrowserVersion{Browser: data.Samsung, Version: "4"},
	}

	var out []data.Target
	for _, atom := range dead {
		targets, err := Eval(atom, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, targets...)
	}

	return out, nil
}

func evalAllBrowsers(ctx Context) ([]data.Target, error) {
	var out []data.Target
	for _, browser := range data.CanonicalNames {
		rows, ok := rowsForToken(browser, ctx)
		if !ok {
			continue
		}
		out = append(out, targetsFrom(browser, rows)...)
	}

	return out, nil
}

func evalDefaults(ctx Context) ([]data.Target, error) {
	// "> 0.5%, last 2 versions, Firefox ESR, not dead", folded by hand
	// rather than deferring to the compose package, since Defaults is
	// documented to always exclude "dead" regardless of what the rest of
	// the query does with it.
	gtHalfPercent, err := Eval(ast.PercentageGlobal{Comparator: ">", Threshold: 0.5}, ctx)
	if err != nil {
		return nil, err
	}
	last2, err := Eval(ast.LastVersions{Count: 2}, ctx)
	if err != nil {
		return nil, err
	}
	esr, err := evalFirefoxESR(ctx)
	if err != nil {
		return nil, err
	}
	dead, err := evalDead(ctx)
	if err != nil {
		return nil, err
	}

	deadSet := make(map[data.Target]bool, len(dead))
	for _, t := range dead {
		deadSet[t] = true
	}

	seen := make(map[data.Target]bool)
	var out []data.Target
	for _, t := range append(append(gtHalfPercent, last2...), esr...) {
		if deadSet[t] || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}

	return out, nil
}

func evalFirefoxESR(ctx Context) ([]data.Target, error) {
	esr := ctx.Snapshot.FirefoxESR()

	out := make([]data.Target, 0, len(esr))
	for _, v := range esr {
		out = append(out, data.Target{Browser: data.Firefox, Version: v})
	}

	return out, nil
}

// rowsForToken resolves a browser token for atoms that may also name
// "node" (data's own browser table doesn't carry node, since node isn't
// a browser with usage/region data).
func rowsForToken(browser string, ctx Context) ([]data.VersionRow, bool) {
	if browser == data.Node {
		return toRows(ctx.Snapshot.NodeReleases()), true
	}

	return rowsFor(browser, ctx)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

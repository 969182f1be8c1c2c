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
	"math"
	"strconv"
	"time"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/resolveerr"
	"github.com/google/browserslist/semver"
)

// androidEvergreenFirst is the first Android major the engine treats as
// aliased to Chrome for versioning (spec §3's "Evergreen").
const androidEvergreenFirst = 37

// opMobBlinkFirst is the first Opera Mobile major built on Blink/Chromium.
const opMobBlinkFirst = 14

func evalLastVersions(a ast.LastVersions, ctx Context) ([]data.Target, error) {
	if a.Browser != "" {
		rows, ok := rowsForToken(a.Browser, ctx)
		if !ok {
			return nil, missingBrowser(ctx, a.Browser)
		}

		released := releasedOnly(rows)
		return targetsFrom(a.Browser, lastN(released, countFilterVersions(a.Browser, released, a.Count, ctx.Options.MobileToDesktop))), nil
	}

	var out []data.Target
	for _, browser := range data.CanonicalNames {
		if browser == data.Node {
			continue
		}

		rows, _ := rowsFor(browser, ctx)
		released := releasedOnly(rows)
		out = append(out, targetsFrom(browser, lastN(released, countFilterVersions(browser, released, a.Count, ctx.Options.MobileToDesktop)))...)
	}

	return out, nil
}

// countFilterVersions corrects the "last N versions" count for the two
// browsers whose evergreen/Blink-based modern releases start partway
// through their own history. jump is the latest released major minus
// the first evergreen/Blink major (plus one for op_mob); while N is at
// most jump the count becomes 1, otherwise it becomes N+1-jump, so a
// positive jump narrows the count rather than widening it. Under
// mobile_to_desktop the rows already come from the spliced/substituted
// virtual list, which doesn't have this jump, so the correction is
// skipped.
func countFilterVersions(browser string, released []data.VersionRow, n int, mobileToDesktop bool) int {
	if mobileToDesktop {
		return n
	}

	var first int
	switch browser {
	case data.Android:
		first = androidEvergreenFirst
	case data.OperaMobile:
		first = opMobBlinkFirst
	default:
		return n
	}

	if len(released) == 0 {
		return n
	}

	latestMajor := semver.Parse(released[len(released)-1].Version).MajorInt()
	jump := latestMajor - first
	if browser == data.OperaMobile {
		jump++
	}

	if n <= jump {
		return 1
	}

	return n + 1 - jump
}

func evalLastMajors(a ast.LastMajors, ctx Context) ([]data.Target, error) {
	if a.Browser != "" {
		rows, ok := rowsForToken(a.Browser, ctx)
		if !ok {
			return nil, missingBrowser(ctx, a.Browser)
		}

		return targetsFrom(a.Browser, lastNMajors(releasedOnly(rows), a.Count)), nil
	}

	var out []data.Target
	for _, browser := range data.CanonicalNames {
		if browser == data.Node {
			continue
		}

		rows, _ := rowsFor(browser, ctx)
		out = append(out, targetsFrom(browser, lastNMajors(releasedOnly(rows), a.Count))...)
	}

	return out, nil
}

// evalLastElectronVersions takes the last Count rows of the Electron
// table directly, regardless of how many distinct Electron majors they
// span. "last 3 electron versions".
func evalLastElectronVersions(a ast.LastElectronVersions, ctx Context) ([]data.Target, error) {
	versions := ctx.Snapshot.ElectronVersions()
	if a.Count <= 0 || len(versions) == 0 {
		return nil, nil
	}

	start := len(versions) - a.Count
	if start < 0 {
		start = 0
	}

	tail := versions[start:]
	out := make([]data.Target, 0, len(tail))
	for _, m := range tail {
		out = append(out, data.Target{Browser: data.Chrome, Version: strconv.Itoa(m.Chromium)})
	}

	return out, nil
}

// evalLastElectronMajors resolves the Chromium versions embedded by
// every Electron release at or above the Count-th most recent distinct
// Electron major. "last 3 electron major versions".
func evalLastElectronMajors(a ast.LastElectronMajors, ctx Context) ([]data.Target, error) {
	versions := ctx.Snapshot.ElectronVersions()
	if a.Count <= 0 || len(versions) == 0 {
		return nil, nil
	}

	minMajor := math.Floor(versions[len(versions)-1].Electron)
	distinct := 1
	for i := len(versions) - 2; i >= 0 && distinct < a.Count; i-- {
		if m := math.Floor(versions[i].Electron); m != minMajor {
			minMajor = m
			distinct++
		}
	}

	var out []data.Target
	for _, m := range versions {
		if m.Electron >= minMajor {
			out = append(out, data.Target{Browser: data.Chrome, Version: strconv.Itoa(m.Chromium)})
		}
	}

	return out, nil
}

func evalLastNodeMajors(a ast.LastNodeMajors, ctx Context) ([]data.Target, error) {
	releases := ctx.Snapshot.NodeReleases()
	majors := lastNMajors(toRows(releases), a.Count)

	return targetsFrom(data.Node, majors), nil
}

// daysPerYear is the year length, in days, used for "last F years"
// arithmetic.
const daysPerYear = 365.259641

// maxSinceDays bounds how far back "last F years" may reach before the
// elapsed duration would overflow a time.Duration (about 292 years in
// nanoseconds); anything past that is rejected rather than silently
// wrapping.
const maxSinceDays = 106000

func evalLastYears(a ast.LastYears, ctx Context) ([]data.Target, error) {
	now := ctx.Options.NowOrDefault()

	var since time.Time
	switch a.Unit {
	case ast.UnitMonths:
		since = now.AddDate(0, -int(a.Count), 0)
	case ast.UnitDays:
		since = now.AddDate(0, 0, -int(a.Count))
	default:
		days := a.Count * daysPerYear
		if math.IsNaN(days) || math.IsInf(days, 0) || days > maxSinceDays || days < -maxSinceDays {
			return nil, resolveerr.New(resolveerr.KindYearOverflow).WithRaw(strconv.FormatFloat(a.Count, 'g', -1, 64))
		}
		since = now.Add(-time.Duration(days * 24 * float64(time.Hour)))
	}

	var out []data.Target
	for _, browser := range data.CanonicalNames {
		if browser == data.Node {
			continue
		}

		rows, _ := rowsFor(browser, ctx)
		for _, r := range rows {
			if !r.Unreleased() && !r.Released.Before(since) {
				out = append(out, data.Target{Browser: browser, Version: r.Version})
			}
		}
	}

	return out, nil
}

func evalUnreleased(a ast.Unreleased, ctx Context) ([]data.Target, error) {
	if a.Browser == "electron" {
		// Electron's table carries only already-released mappings, so
		// "unreleased electron versions" is empty by definition.
		return nil, nil
	}

	if a.Browser != "" {
		rows, ok := rowsForToken(a.Browser, ctx)
		if !ok {
			return nil, missingBrowser(ctx, a.Browser)
		}

		return targetsFrom(a.Browser, unreleasedOnly(rows)), nil
	}

	var out []data.Target
	for _, browser := range data.CanonicalNames {
		if browser == data.Node {
			continue
		}

		rows, _ := rowsFor(browser, ctx)
		out = append(out, targetsFrom(browser, unreleasedOnly(rows))...)
	}

	return out, nil
}

func releasedOnly(rows []data.VersionRow) []data.VersionRow {
	out := make([]data.VersionRow, 0, len(rows))
	for _, r := range rows {
		if !r.Unreleased() {
			out = append(out, r)
		}
	}

	return out
}

func unreleasedOnly(rows []data.VersionRow) []data.VersionRow {
	out := make([]data.VersionRow, 0)
	for _, r := range rows {
		if r.Unreleased() {
			out = append(out, r)
		}
	}

	return out
}

// lastN returns the last n rows in release order (the asset's own
// ordering, which is chronological ascending).
func lastN(rows []data.VersionRow, n int) []data.VersionRow {
	if n <= 0 || len(rows) == 0 {
		return nil
	}
	if n >= len(rows) {
		return rows
	}

	return rows[len(rows)-n:]
}

// lastNMajors returns every row belonging to the n most recent distinct
// major versions, preserving release order.
func lastNMajors(rows []data.VersionRow, n int) []data.VersionRow {
	if n <= 0 || len(rows) == 0 {
		return nil
	}

	majors := make([]int, 0, len(rows))
	seen := make(map[int]bool)
	for i := len(rows) - 1; i >= 0; i-- {
		m := semver.Parse(rows[i].Version).MajorInt()
		if !seen[m] {
			seen[m] = true
			majors = append(majors, m)
			if len(majors) == n {
				break
			}
		}
	}

	keep := make(map[int]bool, len(majors))
	for _, m := range majors {
		keep[m] = true
	}

	out := make([]data.VersionRow, 0, len(rows))
	for _, r := range rows {
		if keep[semver.Parse(r.Version).MajorInt()] {
			out = append(out, r)
		}
	}

	return out
}

func toRows(releases []data.NodeRelease) []data.VersionRow {
	out := make([]data.VersionRow, len(releases))
	for i, r := range releases {
		out[i] = data.VersionRow{Version: r.Version, Released: r.Released}
	}

	return out
}


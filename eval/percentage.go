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
	"sort"
	"strings"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/semver"
)

func evalPercentageGlobal(a ast.PercentageGlobal, ctx Context) ([]data.Target, error) {
	cmp := semver.Comparator(a.Comparator)

	var out []data.Target
	for _, browser := range data.CanonicalNames {
		if browser == data.Node {
			continue
		}

		rows, _ := rowsFor(browser, ctx)
		for _, r := range rows {
			if cmp.Satisfies(compareFloat(r.Usage, a.Threshold)) {
				out = append(out, data.Target{Browser: browser, Version: r.Version})
			}
		}
	}

	return out, nil
}

func evalPercentageRegion(a ast.PercentageRegion, ctx Context) ([]data.Target, error) {
	region := normalizeRegion(a.Region)
	if !knownRegion(ctx, region) {
		return nil, missingRegion(ctx, a.Region)
	}

	usage, err := ctx.Snapshot.RegionalUsage(region)
	if err != nil {
		return nil, err
	}

	cmp := semver.Comparator(a.Comparator)

	var out []data.Target
	for _, browser := range data.CanonicalNames {
		if browser == data.Node {
			continue
		}

		rows, _ := rowsFor(browser, ctx)
		for _, r := range rows {
			pct := usage[browser+" "+r.Version]
			if cmp.Satisfies(compareFloat(pct, a.Threshold)) {
				out = append(out, data.Target{Browser: browser, Version: r.Version})
			}
		}
	}

	return out, nil
}

func evalPercentageBrowser(a ast.PercentageBrowser, ctx Context) ([]data.Target, error) {
	rows, ok := rowsForToken(a.Browser, ctx)
	if !ok {
		return nil, missingBrowser(ctx, a.Browser)
	}

	cmp := semver.Comparator(a.Comparator)

	var out []data.Target
	for _, r := range rows {
		if cmp.Satisfies(compareFloat(r.Usage, a.Threshold)) {
			out = append(out, data.Target{Browser: a.Browser, Version: r.Version})
		}
	}

	return out, nil
}

// usageEntry pairs a target with the usage percent coverage walks it by.
type usageEntry struct {
	target  data.Target
	percent float64
}

func evalCoverGlobal(a ast.CoverGlobal, ctx Context) ([]data.Target, error) {
	entries := collectUsageEntries(ctx, ctx.Snapshot.GlobalUsage)

	return coverEntries(entries, a.Threshold), nil
}

func evalCoverRegion(a ast.CoverRegion, ctx Context) ([]data.Target, error) {
	region := normalizeRegion(a.Region)
	if !knownRegion(ctx, region) {
		return nil, missingRegion(ctx, a.Region)
	}

	usage, err := ctx.Snapshot.RegionalUsage(region)
	if err != nil {
		return nil, err
	}

	entries := collectUsageEntries(ctx, func(browser, version string) float64 {
		return usage[browser+" "+version]
	})

	return coverEntries(entries, a.Threshold), nil
}

// collectUsageEntries gathers every (browser, version) the query's
// options make visible, sorted descending by percentOf, matching the
// pre-sorted global/regional usage table order coverEntries walks.
func collectUsageEntries(ctx Context, percentOf func(browser, version string) float64) []usageEntry {
	var entries []usageEntry
	for _, browser := range data.CanonicalNames {
		if browser == data.Node {
			continue
		}

		rows, _ := rowsFor(browser, ctx)
		for _, r := range rows {
			entries = append(entries, usageEntry{
				target:  data.Target{Browser: browser, Version: r.Version},
				percent: percentOf(browser, r.Version),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].percent > entries[j].percent })

	return entries
}

// coverEntries walks entries in descending-percent order, accumulating
// share until the running total reaches threshold or the next entry
// contributes nothing.
func coverEntries(entries []usageEntry, threshold float64) []data.Target {
	var out []data.Target
	var cumulative float64
	for _, e := range entries {
		if cumulative >= threshold || e.percent == 0 {
			break
		}

		out = append(out, e.target)
		cumulative += e.percent
	}

	return out
}

// normalizeRegion matches a region code to the bundled data's spelling:
// two-letter country codes uppercase, continent/"alt-" codes lowercase.
func normalizeRegion(region string) string {
	if strings.Contains(region, "-") {
		return strings.ToLower(region)
	}

	return strings.ToUpper(region)
}

func knownRegion(ctx Context, region string) bool {
	for _, r := range ctx.Snapshot.KnownRegions() {
		if r == region {
			return true
		}
	}

	return false
}

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
	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/resolveerr"
)

func evalSupports(a ast.Supports, ctx Context) ([]data.Target, error) {
	if !knownFeature(ctx, a.Feature) {
		return nil, resolveerr.New(resolveerr.KindUnknownBrowserFeature).WithFeature(a.Feature)
	}

	var out []data.Target
	for _, browser := range data.CanonicalNames {
		if browser == data.Node {
			continue
		}

		rows, _ := rowsFor(browser, ctx)
		for _, r := range rows {
			support := ctx.Snapshot.FeatureSupport(a.Feature, browser, r.Version)
			if matches(support, a.RequireFull) {
				out = append(out, data.Target{Browser: browser, Version: r.Version})
			}
		}

		if ctx.Options.MobileToDesktop {
			out = append(out, supportsDesktopSupplement(a, browser, ctx)...)
		}
	}

	return out, nil
}

// supportsDesktopSupplement implements spec §4.2.8's mobile_to_desktop
// rule: when the mobile browser's own most recent released version is
// itself listed as supporting the feature, also pull in every desktop
// version the feature data credits, reported under the mobile name.
func supportsDesktopSupplement(a ast.Supports, mobile string, ctx Context) []data.Target {
	desktop, ok := data.DesktopCounterpart(mobile)
	if !ok {
		return nil
	}

	mobileStat, ok := ctx.Snapshot.Browser(mobile)
	if !ok {
		return nil
	}

	released := releasedOnly(mobileStat.Versions)
	if len(released) == 0 {
		return nil
	}
	latest := released[len(released)-1]

	if !matches(ctx.Snapshot.FeatureSupport(a.Feature, mobile, latest.Version), a.RequireFull) {
		return nil
	}

	desktopStat, ok := ctx.Snapshot.Browser(desktop)
	if !ok {
		return nil
	}

	var out []data.Target
	for _, r := range desktopStat.Versions {
		if matches(ctx.Snapshot.FeatureSupport(a.Feature, desktop, r.Version), a.RequireFull) {
			out = append(out, data.Target{Browser: mobile, Version: r.Version})
		}
	}

	return out
}

func matches(support data.Support, requireFull bool) bool {
	if requireFull {
		return support == data.FullSupport
	}

	return support == data.FullSupport || support == data.PartialSupport
}

func knownFeature(ctx Context, feature string) bool {
	for _, f := range ctx.Snapshot.KnownFeatures() {
		if f == feature {
			return true
		}
	}

	return false
}

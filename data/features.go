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

package data

import "sync"

// Support describes how fully a browser version implements a feature.
type Support int

const (
	// NotSupported means the (browser, version) pair has no row for the
	// feature at all.
	NotSupported Support = iota
	// PartialSupport is caniuse's "A" flag: the feature works with
	// caveats or behind a prefix.
	PartialSupport
	// FullSupport is caniuse's "Y" flag.
	FullSupport
)

var featureCache sync.Map // feature name -> map[string]Support

// FeatureSupport returns how browser/version supports the named
// feature. Unknown features report NotSupported for everything; callers
// that need to distinguish "unknown feature" from "known but
// unsupported" should check KnownFeatures first.
func (s *Snapshot) FeatureSupport(feature, browser, version string) Support {
	table := s.featureTable(feature)

	return table[usageKey(browser, version)]
}

// KnownFeatures lists every feature name with at least one support row.
func (s *Snapshot) KnownFeatures() []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range s.features {
		if !seen[row.Feature] {
			seen[row.Feature] = true
			out = append(out, row.Feature)
		}
	}

	return out
}

// featureTable lazily decodes the per-feature support map for feature,
// memoizing it in featureCache so repeated "supports" queries against
// the same feature don't re-scan the whole features asset.
func (s *Snapshot) featureTable(feature string) map[string]Support {
	if cached, ok := featureCache.Load(feature); ok {
		return cached.(map[string]Support)
	}

	table := make(map[string]Support)
	for _, row := range s.features {
		if row.Feature != feature {
			continue
		}

		flag := PartialSupport
		if row.Flag == "Y" {
			flag = FullSupport
		}
		table[usageKey(row.Browser, row.Version)] = flag
	}

	actual, _ := featureCache.LoadOrStore(feature, table)

	return actual.(map[string]Support)
}

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

// GlobalUsage returns the worldwide usage share, as a percentage, for
// browser/version, or 0 if the pair isn't tracked.
func (s *Snapshot) GlobalUsage(browser, version string) float64 {
	b, ok := s.browsers[browser]
	if !ok {
		return 0
	}

	for _, v := range b.Versions {
		if v.Version == version {
			return v.Usage
		}
	}

	return 0
}

// KnownRegions lists the region codes the bundled data has usage tables
// for, exactly as they're spelled in query atoms (two-letter country
// codes uppercase, continent codes like "alt-eu" lowercase).
func (s *Snapshot) KnownRegions() []string {
	out := make([]string, 0, len(regionAssets))
	for code := range regionAssets {
		out = append(out, code)
	}

	return out
}

// RegionalUsage returns browser/version -> percentage for the given
// region code, decoding the underlying asset on first use per region
// and caching the result for the lifetime of the process.
func (s *Snapshot) RegionalUsage(region string) (map[string]float64, error) {
	if cached, ok := s.regionCache.Load(region); ok {
		return cached.(map[string]float64), nil
	}

	decoded, err := decodeRegion(region)
	if err != nil {
		return nil, err
	}

	actual, _ := s.regionCache.LoadOrStore(region, decoded)

	return actual.(map[string]float64), nil
}

// RegionalUsageFor returns the usage percentage for browser/version
// within region, or 0 if untracked.
func (s *Snapshot) RegionalUsageFor(region, browser, version string) (float64, error) {
	usage, err := s.RegionalUsage(region)
	if err != nil {
		return 0, err
	}

	return usage[usageKey(browser, version)], nil
}

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

import "strings"

// IsWildcardVersion reports whether version is op_mini/baidu-style "all"
// marker, meaning the browser doesn't track discrete versions and a
// single row stands in for every release.
func IsWildcardVersion(version string) bool {
	return version == "all"
}

// IsPrereleaseVersion reports whether version names a pre-release
// channel (Safari Technology Preview) rather than a numbered release.
// "last N versions" and bare comparator atoms skip these unless a query
// names the channel explicitly.
func IsPrereleaseVersion(version string) bool {
	return version == "TP"
}

// RangeBounds splits a combined version row like "4.2-4.3" or
// "4.4.3-4.4.4" into its two endpoints. ok is false for a row that
// isn't a range, in which case callers should treat version as both its
// own lower and upper bound.
func RangeBounds(version string) (lo, hi string, ok bool) {
	lo, hi, found := strings.Cut(version, "-")
	if !found {
		return version, version, false
	}

	return lo, hi, true
}

// CanonicalVersion resolves an exact-match query version against rows,
// returning the row version it denotes. It first tries a direct match,
// then falls back to the version-alias rule (spec §3): every endpoint of
// a combined range row like "10.0-10.1" maps to that combined string.
// op_mob additionally carries a hardcoded correction, "59" -> "58",
// because Opera Mobile skipped shipping a standalone 59 row.
func CanonicalVersion(browser, version string, rows []VersionRow) (string, bool) {
	for _, r := range rows {
		if r.Version == version {
			return r.Version, true
		}
	}

	if browser == OperaMobile && version == "59" {
		version = "58"
		for _, r := range rows {
			if r.Version == version {
				return r.Version, true
			}
		}
	}

	for _, r := range rows {
		lo, hi, isRange := RangeBounds(r.Version)
		if isRange && (lo == version || hi == version) {
			return r.Version, true
		}
	}

	return "", false
}

// CanonicalSafariVersion upper-cases the "tp" spelling of Safari
// Technology Preview to the bundled data's own "TP" row, matching
// spec §4.2.6's case-insensitive canonicalization; every other browser
// passes version through unchanged.
func CanonicalSafariVersion(browser, version string) string {
	if browser == Safari && strings.EqualFold(version, "TP") {
		return "TP"
	}

	return version
}

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

// Package semver provides loose version parsing and total-order comparison
// for the browser/runtime version strings used throughout the query engine.
//
// Browser and Node/Electron version strings rarely follow strict semver:
// they may have two components ("53.0"), four ("53.0.2785.143"), or a
// non-numeric build suffix ("10.0a1"). Version parses any dot-separated run
// of numeric components followed by an optional non-numeric build string,
// the same tolerant grammar node-semver's "loose" mode and compare-versions
// use, and compares two versions component-wise with arbitrary precision so
// no version string can overflow a fixed-width integer.
package semver

import (
	"math/big"
)

// components is an arbitrary-precision, arbitrary-length numeric version
// vector. Missing trailing components compare as zero.
type components []*big.Int

func (c components) fetch(n int) *big.Int {
	if len(c) <= n {
		return big.NewInt(0)
	}

	return c[n]
}

func (c components) cmp(b components) int {
	n := max(len(c), len(b))

	for i := range n {
		if diff := c.fetch(i).Cmp(b.fetch(i)); diff != 0 {
			return diff
		}
	}

	return 0
}

// Version is a parsed, comparable version string.
type Version struct {
	// LeadingV records whether the original string started with "v", so
	// that Original can be reconstructed if ever needed for diagnostics.
	LeadingV bool
	// Components holds the dot-separated leading numeric run, e.g.
	// "10.0.2" -> [10, 0, 2].
	Components components
	// Build holds everything after the numeric run verbatim, e.g. the "a1"
	// in "10.0a1" or the "-beta.2" in "1.2.3-beta.2".
	Build string
	// Original is the exact input string.
	Original string
}

// Major returns the first numeric component, or 0 if the version has none
// (e.g. an empty string). Callers needing it as an int should guard against
// values that don't fit; in practice browser majors are small.
func (v Version) Major() *big.Int {
	return v.Components.fetch(0)
}

// MajorInt returns Major as a plain int, for use in arithmetic against the
// small integer constants (androidEvergreenFirst, opMobBlinkFirst, ...)
// the evaluator works with.
func (v Version) MajorInt() int {
	return int(v.Major().Int64())
}

// Compare returns -1, 0, or +1 according to whether v sorts before, equal
// to, or after w. The numeric component run is compared first; if it ties,
// the build/prerelease suffix is compared using semver precedence rules
// (see compareBuild), which treats a present prerelease as "less than" its
// absence.
func (v Version) Compare(w Version) int {
	if diff := v.Components.cmp(w.Components); diff != 0 {
		return diff
	}

	return compareBuild(v.Build, w.Build)
}

// CompareStr parses str with Parse and compares it against v.
func (v Version) CompareStr(str string) int {
	return v.Compare(Parse(str))
}

// Equal reports whether v and w denote the same version.
func (v Version) Equal(w Version) bool {
	return v.Compare(w) == 0
}

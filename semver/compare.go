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

package semver

import "strings"

// compareBuild compares two build/prerelease suffixes per semver v2's
// precedence rules (https://semver.org/spec/v2.0.0.html#spec-item-9,
// spec-item-10): a present prerelease sorts before its absence, numeric
// identifiers compare numerically and sort below non-numeric ones, and a
// longer identifier list outranks a shorter one once all shared fields
// match.
func compareBuild(a, b string) int {
	a = strings.Split(a, "+")[0]
	b = strings.Split(b, "+")[0]
	a = strings.TrimPrefix(a, "-")
	b = strings.TrimPrefix(b, "-")

	if a == "" && b != "" {
		return +1
	}
	if a != "" && b == "" {
		return -1
	}

	return compareBuildParts(strings.Split(a, "."), strings.Split(b, "."))
}

func compareBuildParts(a, b []string) int {
	n := min(len(a), len(b))

	for i := range n {
		ai, aErr := convertToBigInt(a[i])
		bi, bErr := convertToBigInt(b[i])

		var compare int

		switch {
		case aErr == nil && bErr == nil:
			compare = ai.Cmp(bi)
		case aErr != nil && bErr != nil:
			compare = strings.Compare(a[i], b[i])
		case aErr == nil:
			compare = -1
		default:
			compare = +1
		}

		if compare != 0 {
			if compare > 0 {
				return 1
			}

			return -1
		}
	}

	if len(a) > len(b) {
		return +1
	}
	if len(a) < len(b) {
		return -1
	}

	return 0
}

// Comparator is one of the relational operators the DSL accepts in front of
// a version or percentage literal.
type Comparator string

// The set of comparators the grammar recognizes for electron/node/browser
// and percentage atoms.
const (
	ComparatorEQ Comparator = "="
	ComparatorLT Comparator = "<"
	ComparatorLE Comparator = "<="
	ComparatorGT Comparator = ">"
	ComparatorGE Comparator = ">="
)

// Satisfies reports whether the comparison result cmp (as returned by
// Version.Compare, "subject compared to reference") satisfies c.
func (c Comparator) Satisfies(cmp int) bool {
	switch c {
	case ComparatorLT:
		return cmp < 0
	case ComparatorLE:
		return cmp <= 0
	case ComparatorGT:
		return cmp > 0
	case ComparatorGE:
		return cmp >= 0
	default:
		return cmp == 0
	}
}

// InRange reports whether v lies in the inclusive range [lo, hi].
func InRange(v, lo, hi Version) bool {
	return v.Compare(lo) >= 0 && v.Compare(hi) <= 0
}

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

import (
	"math/big"
	"strings"
)

// Parse parses str as a loose version: a leading optional "v", a
// dot-separated run of decimal components, and an optional trailing build
// string that starts at the first character that is neither a digit nor a
// ".". Parse never fails; any input it cannot make sense of ends up
// entirely in Build with an empty Components vector, which compares as
// lower than any version with at least one numeric component.
func Parse(str string) Version {
	var comps components

	original := str
	leadingV := strings.HasPrefix(str, "v")
	str = strings.TrimPrefix(str, "v")

	current := ""
	inBuild := false

	for _, c := range str {
		if inBuild {
			current += string(c)

			continue
		}

		if isASCIIDigit(c) {
			current += string(c)

			continue
		}

		if current != "" {
			comps = append(comps, mustBigInt(current))
			current = ""
		}

		if c == '.' {
			continue
		}

		inBuild = true
		current = string(c)
	}

	if !inBuild && current != "" {
		comps = append(comps, mustBigInt(current))
		current = ""
	}

	return Version{
		LeadingV:   leadingV,
		Components: comps,
		Build:      current,
		Original:   original,
	}
}

// ParseN is Parse truncated to at most maxComponents numeric components;
// any further components are folded, dot-joined, onto the build string.
// This matches the "major.minor.patch" truncation browserslist applies to
// Electron/Node version keys that are keyed on fewer components than the
// full release string carries.
func ParseN(str string, maxComponents int) Version {
	v := Parse(str)

	if maxComponents < 0 || len(v.Components) <= maxComponents {
		return v
	}

	kept := v.Components[:maxComponents]
	extra := v.Components[maxComponents:]

	build := v.Build
	for _, c := range extra {
		build += "." + c.String()
	}

	return Version{
		LeadingV:   v.LeadingV,
		Components: kept,
		Build:      build,
		Original:   v.Original,
	}
}

func mustBigInt(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		// current is always a run of isASCIIDigit runes, so this cannot fail.
		return big.NewInt(0)
	}

	return i
}

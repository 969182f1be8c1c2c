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

package semver_test

import (
	"testing"

	"github.com/google/browserslist/semver"
)

func compareWord(t *testing.T, result int) string {
	t.Helper()

	switch result {
	case 1:
		return "greater than"
	case 0:
		return "equal to"
	case -1:
		return "less than"
	default:
		t.Fatalf("unexpected compare result: %d", result)

		return ""
	}
}

func expectCompare(t *testing.T, a, b string, want int) {
	t.Helper()

	got := semver.Parse(a).CompareStr(b)
	if got != want {
		t.Errorf("expected %s to be %s %s, but it was %s", a, compareWord(t, want), b, compareWord(t, got))
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "1", 0},
		{"1.0", "1", 0},
		{"1.0.0", "1.0", 0},
		{"2", "10", -1},
		{"10", "2", 1},
		{"53.0.2785.143", "53.0.2785.116", 1},
		{"11", "11.0", 0},
		{"5.5", "6", -1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0", "1.0.0-alpha", 1},
		{"1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha", 1},
		{"1.0.0-alpha.beta", "1.0.0-beta", -1},
		{"v1.2.3", "1.2.3", 0},
		{"10.0a1", "10.0a2", -1},
	}

	for _, c := range cases {
		expectCompare(t, c.a, c.b, c.want)
	}
}

func TestMajorInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"53.0.2785.143", 53},
		{"TP", 0},
		{"", 0},
		{"11", 11},
	}

	for _, c := range cases {
		if got := semver.Parse(c.in).MajorInt(); got != c.want {
			t.Errorf("Parse(%q).MajorInt() = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseNTruncatesIntoBuild(t *testing.T) {
	v := semver.ParseN("1.2.3", 2)

	if got := v.Components; len(got) != 2 {
		t.Fatalf("expected 2 components, got %d (%v)", len(got), got)
	}

	if v.Build != ".3" {
		t.Errorf("expected overflow component folded into build, got %q", v.Build)
	}
}

func TestComparatorSatisfies(t *testing.T) {
	cases := []struct {
		c    semver.Comparator
		cmp  int
		want bool
	}{
		{semver.ComparatorLT, -1, true},
		{semver.ComparatorLT, 0, false},
		{semver.ComparatorLE, 0, true},
		{semver.ComparatorGT, 1, true},
		{semver.ComparatorGE, 0, true},
		{semver.ComparatorEQ, 0, true},
		{semver.ComparatorEQ, 1, false},
	}

	for _, c := range cases {
		if got := c.c.Satisfies(c.cmp); got != c.want {
			t.Errorf("%s.Satisfies(%d) = %v, want %v", c.c, c.cmp, got, c.want)
		}
	}
}

func TestInRange(t *testing.T) {
	lo := semver.Parse("8")
	hi := semver.Parse("10")

	if !semver.InRange(semver.Parse("9"), lo, hi) {
		t.Errorf("expected 9 to be in [8, 10]")
	}
	if semver.InRange(semver.Parse("11"), lo, hi) {
		t.Errorf("expected 11 to not be in [8, 10]")
	}
	if !semver.InRange(lo, lo, hi) || !semver.InRange(hi, lo, hi) {
		t.Errorf("expected range bounds to be inclusive")
	}
}

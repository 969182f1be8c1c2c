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
	"testing"
	"time"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/options"
	"github.com/google/browserslist/resolveerr"
)

func TestCountFilterVersionsSkipsCorrectionUnderMobileToDesktop(t *testing.T) {
	rows := []data.VersionRow{{Version: "120"}, {Version: "121"}}

	if got := countFilterVersions(data.Android, rows, 2, true); got != 2 {
		t.Errorf("countFilterVersions under mobile_to_desktop = %d, want unchanged 2", got)
	}
}

func TestCountFilterVersionsNarrowsAcrossEvergreenJump(t *testing.T) {
	// androidEvergreenFirst is 37; a latest major of 40 makes jump = 3.
	rows := []data.VersionRow{{Version: "40"}}

	if got := countFilterVersions(data.Android, rows, 5, false); got != 3 {
		t.Errorf("countFilterVersions(android, n=5, jump=3) = %d, want 5+1-3=3", got)
	}

	if got := countFilterVersions(data.Android, rows, 2, false); got != 1 {
		t.Errorf("countFilterVersions(android, n=2, jump=3) = %d, want 1 (n<=jump)", got)
	}
}

func TestCountFilterVersionsIgnoresOtherBrowsers(t *testing.T) {
	rows := []data.VersionRow{{Version: "100"}}

	if got := countFilterVersions("chrome", rows, 5, false); got != 5 {
		t.Errorf("countFilterVersions(chrome) = %d, want unchanged 5", got)
	}
}

func TestEvalLastYearsFloatCount(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	ctx := Context{
		Snapshot: data.Get(),
		Options:  options.Options{Clock: options.FixedClock(now)},
	}

	got, err := evalLastYears(ast.LastYears{Count: 1.5, Unit: ast.UnitYears}, ctx)
	if err != nil {
		t.Fatalf("evalLastYears returned error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected at least one recent release within the last 1.5 years")
	}
}

func TestEvalLastYearsOverflow(t *testing.T) {
	ctx := Context{Snapshot: data.Get(), Options: options.Options{}}

	_, err := evalLastYears(ast.LastYears{Count: 1e9, Unit: ast.UnitYears}, ctx)
	rerr, ok := err.(*resolveerr.Error)
	if !ok || rerr.Kind != resolveerr.KindYearOverflow {
		t.Errorf("evalLastYears(1e9 years) error = %v, want KindYearOverflow", err)
	}
}

func TestEvalLastElectronVersionsReportsChrome(t *testing.T) {
	ctx := Context{Snapshot: data.Get()}

	got, err := evalLastElectronVersions(ast.LastElectronVersions{Count: 3}, ctx)
	if err != nil {
		t.Fatalf("evalLastElectronVersions returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("evalLastElectronVersions(3) = %d targets, want 3", len(got))
	}
	for _, target := range got {
		if target.Browser != data.Chrome {
			t.Errorf("evalLastElectronVersions target browser = %q, want %q", target.Browser, data.Chrome)
		}
	}
}

func TestEvalLastElectronVersionsVsMajorsDiffer(t *testing.T) {
	ctx := Context{Snapshot: data.Get()}

	plain, err := evalLastElectronVersions(ast.LastElectronVersions{Count: 15}, ctx)
	if err != nil {
		t.Fatalf("evalLastElectronVersions returned error: %v", err)
	}
	majors, err := evalLastElectronMajors(ast.LastElectronMajors{Count: 15}, ctx)
	if err != nil {
		t.Fatalf("evalLastElectronMajors returned error: %v", err)
	}

	for _, target := range majors {
		if target.Browser != data.Chrome {
			t.Errorf("evalLastElectronMajors target browser = %q, want %q", target.Browser, data.Chrome)
		}
	}

	if len(majors) == len(plain) {
		same := true
		for i := range plain {
			if plain[i] != majors[i] {
				same = false
				break
			}
		}
		if same {
			t.Errorf("evalLastElectronVersions and evalLastElectronMajors returned identical results %v; the plain and major forms must be distinct productions", plain)
		}
	}
}

func TestEvalLastVersionsNode(t *testing.T) {
	ctx := Context{Snapshot: data.Get()}

	got, err := evalLastVersions(ast.LastVersions{Count: 2, Browser: data.Node}, ctx)
	if err != nil {
		t.Fatalf("evalLastVersions(node) returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("evalLastVersions(node, 2) = %d targets, want 2", len(got))
	}
	for _, target := range got {
		if target.Browser != data.Node {
			t.Errorf("evalLastVersions(node) target browser = %q, want %q", target.Browser, data.Node)
		}
	}
}

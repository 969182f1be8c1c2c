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

package parse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/parse"
)

func TestParseFirefoxESR(t *testing.T) {
	for _, raw := range []string{"firefox esr", "ff esr", "fx esr", "FIREFOX ESR"} {
		got, err := parse.Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", raw, err)
		}
		want := []ast.SingleQuery{{Raw: raw, Atom: ast.FirefoxESRTerminal{}}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", raw, diff)
		}
	}
}

func TestParsePhantomJS(t *testing.T) {
	cases := []struct {
		raw  string
		want ast.PhantomJS
	}{
		{"phantomjs 1.9", ast.PhantomJS{Version: "1.9"}},
		{"phantomjs 2.1", ast.PhantomJS{Version: "2.1"}},
	}

	for _, c := range cases {
		got, err := parse.Parse(c.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.raw, err)
		}
		if len(got) != 1 || got[0].Atom != c.want {
			t.Errorf("Parse(%q) = %+v, want single atom %+v", c.raw, got, c.want)
		}
	}
}

func TestParseBrowserslistConfig(t *testing.T) {
	got, err := parse.Parse("browserslist config")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Parse(%q) = %+v, want a single atom", "browserslist config", got)
	}
	if _, ok := got[0].Atom.(ast.BrowserslistConfigTerminal); !ok {
		t.Errorf("Parse(%q) atom = %T, want ast.BrowserslistConfigTerminal", "browserslist config", got[0].Atom)
	}
}

func TestParseLastYearsFloat(t *testing.T) {
	got, err := parse.Parse("last 1.5 years")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Parse(%q) = %+v, want a single atom", "last 1.5 years", got)
	}
	want := ast.LastYears{Count: 1.5, Unit: ast.UnitYears}
	if got[0].Atom != want {
		t.Errorf("Parse(%q) atom = %+v, want %+v", "last 1.5 years", got[0].Atom, want)
	}
}

func TestParseSupportsVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want ast.Supports
	}{
		{"supports flexbox", ast.Supports{Feature: "flexbox"}},
		{"partially supports flexbox", ast.Supports{Feature: "flexbox"}},
		{"fully supports flexbox", ast.Supports{Feature: "flexbox", RequireFull: true}},
	}

	for _, c := range cases {
		got, err := parse.Parse(c.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.raw, err)
		}
		if len(got) != 1 || got[0].Atom != c.want {
			t.Errorf("Parse(%q) = %+v, want single atom %+v", c.raw, got, c.want)
		}
	}
}

func TestParseCoverGlobalAndRegion(t *testing.T) {
	cases := []struct {
		raw  string
		want ast.QueryAtom
	}{
		{"cover 99.5%", ast.CoverGlobal{Threshold: 99.5}},
		{"cover 99.5% in US", ast.CoverRegion{Threshold: 99.5, Region: "US"}},
	}

	for _, c := range cases {
		got, err := parse.Parse(c.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.raw, err)
		}
		if len(got) != 1 || got[0].Atom != c.want {
			t.Errorf("Parse(%q) = %+v, want single atom %+v", c.raw, got, c.want)
		}
	}
}

func TestParseLastElectronVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want ast.QueryAtom
	}{
		{"last 3 electron versions", ast.LastElectronVersions{Count: 3}},
		{"last 3 electron version", ast.LastElectronVersions{Count: 3}},
		{"last 3 electron major versions", ast.LastElectronMajors{Count: 3}},
		{"LAST 3 ELECTRON MAJOR VERSIONS", ast.LastElectronMajors{Count: 3}},
	}

	for _, c := range cases {
		got, err := parse.Parse(c.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.raw, err)
		}
		if len(got) != 1 || got[0].Atom != c.want {
			t.Errorf("Parse(%q) = %+v, want single atom %+v", c.raw, got, c.want)
		}
	}
}

func TestParseLastNodeVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want ast.QueryAtom
	}{
		{"last 2 node versions", ast.LastVersions{Count: 2, Browser: "node"}},
		{"last 2 node major versions", ast.LastNodeMajors{Count: 2}},
	}

	for _, c := range cases {
		got, err := parse.Parse(c.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.raw, err)
		}
		if len(got) != 1 || got[0].Atom != c.want {
			t.Errorf("Parse(%q) = %+v, want single atom %+v", c.raw, got, c.want)
		}
	}
}

func TestParseLastYearsMonthsAndDays(t *testing.T) {
	cases := []struct {
		raw  string
		want ast.LastYears
	}{
		{"last 6 months", ast.LastYears{Count: 6, Unit: ast.UnitMonths}},
		{"last 10 days", ast.LastYears{Count: 10, Unit: ast.UnitDays}},
	}

	for _, c := range cases {
		got, err := parse.Parse(c.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.raw, err)
		}
		if len(got) != 1 || got[0].Atom != c.want {
			t.Errorf("Parse(%q) = %+v, want single atom %+v", c.raw, got, c.want)
		}
	}
}

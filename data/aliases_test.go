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

package data_test

import (
	"testing"

	"github.com/google/browserslist/data"
)

func TestCanonicalVersionDirectMatch(t *testing.T) {
	rows := []data.VersionRow{{Version: "90"}, {Version: "91"}}

	got, ok := data.CanonicalVersion("chrome", "90", rows)
	if !ok || got != "90" {
		t.Errorf("CanonicalVersion direct match = (%q, %v), want (90, true)", got, ok)
	}
}

func TestCanonicalVersionRangeEndpoint(t *testing.T) {
	rows := []data.VersionRow{{Version: "10.0-10.1"}}

	for _, endpoint := range []string{"10.0", "10.1"} {
		got, ok := data.CanonicalVersion("firefox", endpoint, rows)
		if !ok || got != "10.0-10.1" {
			t.Errorf("CanonicalVersion(%q) = (%q, %v), want (10.0-10.1, true)", endpoint, got, ok)
		}
	}
}

func TestCanonicalVersionOpMob59Correction(t *testing.T) {
	rows := []data.VersionRow{{Version: "58"}}

	got, ok := data.CanonicalVersion(data.OperaMobile, "59", rows)
	if !ok || got != "58" {
		t.Errorf("CanonicalVersion(op_mob, 59) = (%q, %v), want (58, true)", got, ok)
	}
}

func TestCanonicalVersionMissing(t *testing.T) {
	rows := []data.VersionRow{{Version: "90"}}

	if _, ok := data.CanonicalVersion("chrome", "999", rows); ok {
		t.Errorf("expected CanonicalVersion to miss for an absent version")
	}
}

func TestCanonicalSafariVersionUppercasesTP(t *testing.T) {
	if got := data.CanonicalSafariVersion(data.Safari, "tp"); got != "TP" {
		t.Errorf("CanonicalSafariVersion(safari, tp) = %q, want TP", got)
	}
	if got := data.CanonicalSafariVersion(data.Safari, "TP"); got != "TP" {
		t.Errorf("CanonicalSafariVersion(safari, TP) = %q, want TP", got)
	}
	if got := data.CanonicalSafariVersion("chrome", "tp"); got != "tp" {
		t.Errorf("CanonicalSafariVersion(chrome, tp) = %q, want unchanged tp", got)
	}
}

func TestRangeBounds(t *testing.T) {
	lo, hi, ok := data.RangeBounds("4.2-4.3")
	if !ok || lo != "4.2" || hi != "4.3" {
		t.Errorf("RangeBounds(4.2-4.3) = (%q, %q, %v), want (4.2, 4.3, true)", lo, hi, ok)
	}

	lo, hi, ok = data.RangeBounds("11")
	if ok || lo != "11" || hi != "11" {
		t.Errorf("RangeBounds(11) = (%q, %q, %v), want (11, 11, false)", lo, hi, ok)
	}
}

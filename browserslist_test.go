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

package browserslist_test

import (
	"testing"

	browserslist "github.com/google/browserslist"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/options"
)

// TestIgnoreUnknownVersionsSuppression mirrors the worked example from the
// engine's own design notes: an unknown ie version is dropped silently
// while a known one survives.
func TestIgnoreUnknownVersionsSuppression(t *testing.T) {
	got, err := browserslist.Resolve([]string{"ie 1, ie 9"}, options.Options{IgnoreUnknownVersions: true})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	want := []data.Target{{Browser: "ie", Version: "9"}}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("Resolve(ignore_unknown_versions) = %v, want %v", got, want)
	}
}

// TestIgnoreUnknownVersionsFalseErrors confirms the same query fails
// without the option set.
func TestIgnoreUnknownVersionsFalseErrors(t *testing.T) {
	if _, err := browserslist.Resolve([]string{"ie 1, ie 9"}, options.Options{}); err == nil {
		t.Errorf("expected an error resolving an unknown ie version")
	}
}

// TestUnknownBrowserNeverSuppressed checks that an unrecognized browser
// name fails even with IgnoreUnknownVersions set, since that option only
// downgrades version-level lookups.
func TestUnknownBrowserNeverSuppressed(t *testing.T) {
	if _, err := browserslist.Resolve([]string{"nonexistentbrowser 1"}, options.Options{IgnoreUnknownVersions: true}); err == nil {
		t.Errorf("expected an error for an unrecognized browser name")
	}
}

// TestNegatedClauseCancelsItsOwnMatch is the end-to-end form of the
// composer's "A, not A" worked example.
func TestNegatedClauseCancelsItsOwnMatch(t *testing.T) {
	got, err := browserslist.Resolve([]string{"chrome 122, not chrome 122"}, options.Options{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Resolve(%q) = %v, want empty", "chrome 122, not chrome 122", got)
	}
}

// TestFirefoxESRTerminal checks the standalone "firefox esr" grammar
// production resolves to at least one firefox target.
func TestFirefoxESRTerminal(t *testing.T) {
	got, err := browserslist.Resolve([]string{"firefox esr"}, options.Options{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected firefox esr to resolve to at least one target")
	}
	for _, tgt := range got {
		if tgt.Browser != "firefox" {
			t.Errorf("unexpected browser in firefox esr result: %+v", tgt)
		}
	}
}

// TestPhantomJS checks both fixed PhantomJS versions map to a Safari
// target.
func TestPhantomJS(t *testing.T) {
	for _, raw := range []string{"phantomjs 1.9", "phantomjs 2.1"} {
		got, err := browserslist.Resolve([]string{raw}, options.Options{})
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", raw, err)
		}
		if len(got) != 1 || got[0].Browser != "safari" {
			t.Errorf("Resolve(%q) = %v, want a single safari target", raw, got)
		}
	}
}

// TestExtendsSafetyCheck confirms an unsafe package name is rejected even
// when an ExtendsResolver is configured.
func TestExtendsSafetyCheck(t *testing.T) {
	engine := &browserslist.Engine{
		Extends: browserslist.MapExtends{"not-a-safe-name": {"last 1 version"}},
	}

	if _, err := engine.Resolve([]string{"extends not-a-safe-name"}, options.Options{}); err == nil {
		t.Errorf("expected the extends safety check to reject an unprefixed package name")
	}
}

// TestExtendsResolvesNestedQueries confirms a safely-named package's
// queries are resolved and folded in.
func TestExtendsResolvesNestedQueries(t *testing.T) {
	engine := &browserslist.Engine{
		Extends: browserslist.MapExtends{"browserslist-config-acme": {"chrome 122"}},
	}

	got, err := engine.Resolve([]string{"extends browserslist-config-acme"}, options.Options{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	want := []data.Target{{Browser: "chrome", Version: "122"}}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Resolve(extends) = %v, want %v", got, want)
	}
}

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

import "testing"

func TestSafeExtendName(t *testing.T) {
	cases := []struct {
		pkg  string
		want bool
	}{
		{"browserslist-config-airbnb", true},
		{"browserslist-config", true},
		{"@org/browserslist-config-airbnb", true},
		{"@org/browserslist-config", true},
		{"not-a-config", false},
		{"browserslist-config-airbnb.js", false},
		{"@org/browserslist-config-airbnb/../../node_modules/evil", false},
		{"browserslist-config-../node_modules/evil", false},
		{"@org-only", false},
		{"@org/", false},
	}

	for _, c := range cases {
		if got := safeExtendName(c.pkg); got != c.want {
			t.Errorf("safeExtendName(%q) = %v, want %v", c.pkg, got, c.want)
		}
	}
}

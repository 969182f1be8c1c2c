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

// Browser returns the raw (non-virtual) version history for a
// canonical browser name, as laid out in the bundled asset. ok is false
// for names outside the closed alphabet or virtual-only names like
// mobile browsers with no asset row of their own (android is real;
// and_chr's desktop-merged variant lives in Virtual instead).
func (s *Snapshot) Browser(name string) (BrowserStat, bool) {
	b, ok := s.browsers[name]

	return b, ok
}

// Browsers returns every browser with a raw version history, in the
// asset's declaration order.
func (s *Snapshot) Browsers() []BrowserStat {
	out := make([]BrowserStat, 0, len(s.browsers))
	for _, name := range CanonicalNames {
		if b, ok := s.browsers[name]; ok {
			out = append(out, b)
		}
	}

	return out
}

// FirefoxESR returns the Firefox ESR version numbers, oldest first.
func (s *Snapshot) FirefoxESR() []string {
	out := make([]string, len(s.firefoxESR))
	copy(out, s.firefoxESR)

	return out
}

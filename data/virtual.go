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

// Virtual returns the mobile_to_desktop version of a browser: for
// android, its own raw history plus Chrome's modern (major >= 37) rows
// spliced in, since recent Android WebView tracks Chromium releases;
// for op_mob, Opera desktop's own history, since modern Opera Mobile is
// Chromium-based and tracks desktop Opera; for and_chr/and_ff/ie_mob,
// their desktop counterpart's history verbatim. Every other name
// returns its raw history unchanged.
//
// Android's own asset rows are never dropped: early testing against
// ranges spanning the legacy/modern boundary (e.g. "android 4.4-38")
// expects both a legacy row like 4.4 and the spliced-in modern rows to
// survive, so this is a union over both sources rather than a
// replace-the-tail operation.
func (s *Snapshot) Virtual(name string) (BrowserStat, bool) {
	s.virtualOnce.Do(s.buildVirtual)

	if v, ok := s.virtual[name]; ok {
		return v, true
	}

	return s.Browser(name)
}

func (s *Snapshot) buildVirtual() {
	s.virtual = make(map[string]BrowserStat)

	if android, ok := s.browsers[Android]; ok {
		s.virtual[Android] = BrowserStat{Name: Android, Versions: s.spliceAndroid(android)}
	}

	if opMob, ok := s.browsers[Opera]; ok {
		s.virtual[OperaMobile] = BrowserStat{Name: OperaMobile, Versions: opMob.Versions}
	}

	for mobile, desktop := range desktopCounterpart {
		if d, ok := s.browsers[desktop]; ok {
			s.virtual[mobile] = BrowserStat{Name: mobile, Versions: d.Versions}
		}
	}
}

// spliceAndroid unions android's own rows with Chrome's major>=37 rows,
// deduplicating by version string via the shared string pool so the two
// sources merge cleanly along their overlap.
func (s *Snapshot) spliceAndroid(android BrowserStat) []VersionRow {
	pool := newStringPool()
	seen := make(map[handle]bool)

	out := make([]VersionRow, 0, len(android.Versions))
	for _, v := range android.Versions {
		h := pool.intern(v.Version)
		if !seen[h] {
			seen[h] = true
			out = append(out, v)
		}
	}

	chrome, ok := s.browsers[Chrome]
	if !ok {
		return out
	}

	for _, v := range chrome.Versions {
		if !chromeMajorAtLeast37(v.Version) {
			continue
		}

		h := pool.intern(v.Version)
		if !seen[h] {
			seen[h] = true
			out = append(out, v)
		}
	}

	return out
}

func chromeMajorAtLeast37(version string) bool {
	major := 0
	for _, r := range version {
		if r < '0' || r > '9' {
			break
		}
		major = major*10 + int(r-'0')
	}

	return major >= 37
}

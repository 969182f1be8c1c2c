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

import "sort"

// ChromiumForElectron returns the Chromium major version embedded in
// the given Electron major.minor release, via binary search over the
// ascending electron table.
func (s *Snapshot) ChromiumForElectron(electron float64) (int, bool) {
	rows := s.electron
	i := sort.Search(len(rows), func(i int) bool { return rows[i].Electron >= electron })

	if i < len(rows) && rows[i].Electron == electron {
		return rows[i].Chromium, true
	}

	return 0, false
}

// ElectronRange returns the Chromium versions for every Electron
// release in [lo, hi], inclusive, in ascending Electron order.
func (s *Snapshot) ElectronRange(lo, hi float64) []int {
	rows := s.electron
	start := sort.Search(len(rows), func(i int) bool { return rows[i].Electron >= lo })

	var out []int
	for i := start; i < len(rows) && rows[i].Electron <= hi; i++ {
		out = append(out, rows[i].Chromium)
	}

	return out
}

// ElectronVersions returns every Electron-to-Chromium mapping, in
// ascending Electron order.
func (s *Snapshot) ElectronVersions() []ElectronMapping {
	out := make([]ElectronMapping, len(s.electron))
	for i, e := range s.electron {
		out[i] = ElectronMapping{Electron: e.Electron, Chromium: e.Chromium}
	}

	return out
}

// LatestElectron returns the most recent Electron release's Chromium
// version.
func (s *Snapshot) LatestElectron() (electron float64, chromium int, ok bool) {
	if len(s.electron) == 0 {
		return 0, 0, false
	}

	last := s.electron[len(s.electron)-1]

	return last.Electron, last.Chromium, true
}

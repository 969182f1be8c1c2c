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

import "time"

// NodeReleases returns every published Node.js version, in the bundled
// table's ascending version order.
func (s *Snapshot) NodeReleases() []NodeRelease {
	out := make([]NodeRelease, len(s.nodeReleases))
	copy(out, s.nodeReleases)

	return out
}

// NodeReleasesAt returns only the releases that had shipped by the
// given instant, in the same ascending version order as NodeReleases.
func (s *Snapshot) NodeReleasesAt(at time.Time) []NodeRelease {
	var out []NodeRelease
	for _, r := range s.nodeReleases {
		if !r.Released.After(at) {
			out = append(out, r)
		}
	}

	return out
}

// NodeLTSSchedule returns the maintenance windows for every known LTS
// line, ascending by major version.
func (s *Snapshot) NodeLTSSchedule() []NodeLTSWindow {
	out := make([]NodeLTSWindow, len(s.nodeSchedule))
	copy(out, s.nodeSchedule)

	return out
}

// MaintainedNodeMajors returns the LTS majors still inside their
// maintenance window at the given instant, ascending.
func (s *Snapshot) MaintainedNodeMajors(at time.Time) []int {
	var majors []int
	for _, w := range s.nodeSchedule {
		if w.Maintained(at) {
			majors = append(majors, w.Major)
		}
	}

	return majors
}

// LatestNodeRelease returns the most recently released Node.js version
// known to the bundled data.
func (s *Snapshot) LatestNodeRelease() (NodeRelease, bool) {
	if len(s.nodeReleases) == 0 {
		return NodeRelease{}, false
	}

	return s.nodeReleases[len(s.nodeReleases)-1], true
}

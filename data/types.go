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

// Package data holds the bundled browser, Node.js, and Electron
// compatibility tables the query engine resolves queries against. The
// tables are embedded as text assets at build time and decoded once per
// process into the structures this file defines.
package data

import "time"

// Target is a single resolved (browser, version) pair, the unit the
// whole query engine ultimately produces.
type Target struct {
	Browser string
	Version string
}

func (t Target) String() string {
	return t.Browser + " " + t.Version
}

// VersionRow is one release entry for a browser. Released is the zero
// time for versions that haven't shipped yet (used by "unreleased"
// queries and by and_chr/edge rows that track a not-yet-cut release).
type VersionRow struct {
	Version  string
	Usage    float64
	Released time.Time
}

// Unreleased reports whether the row represents a version with no
// known release date yet.
func (r VersionRow) Unreleased() bool {
	return r.Released.IsZero()
}

// BrowserStat is one browser's full version history, ascending by
// release order, matching the order the embedded asset lists them in.
type BrowserStat struct {
	Name     string
	Versions []VersionRow
}

// featureRow is one (feature, browser, version) support entry decoded
// from the features asset. Flag is "Y" for full support or "A" for
// partial/"almost" support, mirroring caniuse's own encoding.
type featureRow struct {
	Feature string
	Browser string
	Version string
	Flag    string
}

// NodeRelease is one published Node.js version.
type NodeRelease struct {
	Version  string
	Released time.Time
}

// NodeLTSWindow is the maintenance window for one Node.js LTS line.
type NodeLTSWindow struct {
	Major            int
	LTSStart         time.Time
	MaintenanceEnd   time.Time
}

// Maintained reports whether the LTS line is still within its support
// window at the given instant.
func (w NodeLTSWindow) Maintained(at time.Time) bool {
	return !at.Before(w.LTSStart) && at.Before(w.MaintenanceEnd)
}

// electronRow maps one Electron release to the Chromium version it
// embeds, decoded from the ascending electron.txt asset.
type electronRow struct {
	Electron float64
	Chromium int
}

// ElectronMapping is the public form of electronRow, returned to
// callers outside the package that need the full ascending table (the
// evaluator's electron comparator atoms).
type ElectronMapping struct {
	Electron float64
	Chromium int
}

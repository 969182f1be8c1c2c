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

import (
	"fmt"
	"sort"
	"sync"
)

// Snapshot is the fully decoded, immutable view of the bundled
// compatibility tables. It's built once per process and shared by every
// caller; none of its accessors take a lock because nothing ever
// mutates it after Get returns.
type Snapshot struct {
	browsers   map[string]BrowserStat
	firefoxESR []string
	nodeReleases []NodeRelease
	nodeSchedule []NodeLTSWindow
	electron   []electronRow
	features   []featureRow
	regionCache sync.Map // region code -> map[string]float64, decoded lazily

	virtualOnce sync.Once
	virtual     map[string]BrowserStat
}

var (
	snapshotOnce sync.Once
	snapshot     *Snapshot
	snapshotErr  error
)

// Get returns the process-wide Snapshot, decoding the embedded assets on
// first use. Decoding errors here mean the embedded data itself is
// malformed, which would be a bug in this package rather than something
// a caller can recover from, so Get panics if it ever happens.
func Get() *Snapshot {
	snapshotOnce.Do(func() {
		snapshot, snapshotErr = load()
		if snapshotErr != nil {
			panic(fmt.Sprintf("data: failed to decode bundled assets: %v", snapshotErr))
		}
	})

	return snapshot
}

func load() (*Snapshot, error) {
	browserStats, err := decodeBrowsers()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]BrowserStat, len(browserStats))
	for _, b := range browserStats {
		byName[b.Name] = b
	}

	esr, err := decodeFirefoxESR()
	if err != nil {
		return nil, err
	}

	nodeReleases, err := decodeNodeReleases()
	if err != nil {
		return nil, err
	}

	nodeSchedule, err := decodeNodeSchedule()
	if err != nil {
		return nil, err
	}
	sort.Slice(nodeSchedule, func(i, j int) bool { return nodeSchedule[i].Major < nodeSchedule[j].Major })

	electron, err := decodeElectron()
	if err != nil {
		return nil, err
	}

	features, err := decodeFeatures()
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		browsers:     byName,
		firefoxESR:   esr,
		nodeReleases: nodeReleases,
		nodeSchedule: nodeSchedule,
		electron:     electron,
		features:     features,
	}, nil
}

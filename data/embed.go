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
	"bufio"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"time"
)

//go:embed assets/browsers.txt assets/firefox_esr.txt assets/node.txt assets/node_schedule.txt assets/electron.txt assets/features.txt assets/region_us.txt assets/region_de.txt assets/region_alt-eu.txt
var assets embed.FS

// regionAssets maps a region code, normalized the way query atoms spell
// it, to its embedded usage table.
var regionAssets = map[string]string{
	"US":     "assets/region_us.txt",
	"DE":     "assets/region_de.txt",
	"alt-eu": "assets/region_alt-eu.txt",
}

func lines(path string) ([]string, error) {
	f, err := assets.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data: open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}

	return out, sc.Err()
}

func parseUnixSeconds(field string) (time.Time, error) {
	if field == "" {
		return time.Time{}, nil
	}

	sec, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("data: bad timestamp %q: %w", field, err)
	}

	return time.Unix(sec, 0).UTC(), nil
}

func decodeBrowsers() ([]BrowserStat, error) {
	rows, err := lines("assets/browsers.txt")
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, len(CanonicalNames))
	byName := make(map[string]*BrowserStat)

	for _, row := range rows {
		cols := strings.Split(row, "|")
		if len(cols) != 4 {
			return nil, fmt.Errorf("data: malformed browsers row %q", row)
		}

		browser, version, usageField, releaseField := cols[0], cols[1], cols[2], cols[3]

		usage := 0.0
		if usageField != "" {
			usage, err = strconv.ParseFloat(usageField, 64)
			if err != nil {
				return nil, fmt.Errorf("data: bad usage %q: %w", usageField, err)
			}
		}

		released, err := parseUnixSeconds(releaseField)
		if err != nil {
			return nil, err
		}

		stat, ok := byName[browser]
		if !ok {
			stat = &BrowserStat{Name: browser}
			byName[browser] = stat
			order = append(order, browser)
		}

		stat.Versions = append(stat.Versions, VersionRow{
			Version:  version,
			Usage:    usage,
			Released: released,
		})
	}

	out := make([]BrowserStat, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}

	return out, nil
}

func decodeFirefoxESR() ([]string, error) {
	return lines("assets/firefox_esr.txt")
}

func decodeNodeReleases() ([]NodeRelease, error) {
	rows, err := lines("assets/node.txt")
	if err != nil {
		return nil, err
	}

	out := make([]NodeRelease, 0, len(rows))
	for _, row := range rows {
		cols := strings.Split(row, "|")
		if len(cols) != 2 {
			return nil, fmt.Errorf("data: malformed node row %q", row)
		}

		released, err := parseUnixSeconds(cols[1])
		if err != nil {
			return nil, err
		}

		out = append(out, NodeRelease{Version: cols[0], Released: released})
	}

	return out, nil
}

func decodeNodeSchedule() ([]NodeLTSWindow, error) {
	rows, err := lines("assets/node_schedule.txt")
	if err != nil {
		return nil, err
	}

	out := make([]NodeLTSWindow, 0, len(rows))
	for _, row := range rows {
		cols := strings.Split(row, "|")
		if len(cols) != 3 {
			return nil, fmt.Errorf("data: malformed node schedule row %q", row)
		}

		major, err := strconv.Atoi(cols[0])
		if err != nil {
			return nil, fmt.Errorf("data: bad major %q: %w", cols[0], err)
		}

		ltsStart, err := parseUnixSeconds(cols[1])
		if err != nil {
			return nil, err
		}
		maintEnd, err := parseUnixSeconds(cols[2])
		if err != nil {
			return nil, err
		}

		out = append(out, NodeLTSWindow{Major: major, LTSStart: ltsStart, MaintenanceEnd: maintEnd})
	}

	return out, nil
}

func decodeElectron() ([]electronRow, error) {
	rows, err := lines("assets/electron.txt")
	if err != nil {
		return nil, err
	}

	out := make([]electronRow, 0, len(rows))
	for _, row := range rows {
		cols := strings.Split(row, "|")
		if len(cols) != 2 {
			return nil, fmt.Errorf("data: malformed electron row %q", row)
		}

		electron, err := strconv.ParseFloat(cols[0], 64)
		if err != nil {
			return nil, fmt.Errorf("data: bad electron version %q: %w", cols[0], err)
		}
		chromium, err := strconv.Atoi(cols[1])
		if err != nil {
			return nil, fmt.Errorf("data: bad chromium version %q: %w", cols[1], err)
		}

		out = append(out, electronRow{Electron: electron, Chromium: chromium})
	}

	return out, nil
}

func decodeFeatures() ([]featureRow, error) {
	rows, err := lines("assets/features.txt")
	if err != nil {
		return nil, err
	}

	out := make([]featureRow, 0, len(rows))
	for _, row := range rows {
		cols := strings.Split(row, "|")
		if len(cols) != 4 {
			return nil, fmt.Errorf("data: malformed feature row %q", row)
		}

		out = append(out, featureRow{
			Feature: cols[0],
			Browser: cols[1],
			Version: cols[2],
			Flag:    cols[3],
		})
	}

	return out, nil
}

func decodeRegion(code string) (map[string]float64, error) {
	path, ok := regionAssets[code]
	if !ok {
		return nil, fmt.Errorf("data: unknown region %q", code)
	}

	rows, err := lines(path)
	if err != nil {
		return nil, err
	}

	usage := make(map[string]float64, len(rows))
	for _, row := range rows {
		cols := strings.Split(row, "|")
		if len(cols) != 3 {
			return nil, fmt.Errorf("data: malformed region row %q", row)
		}

		pct, err := strconv.ParseFloat(cols[2], 64)
		if err != nil {
			return nil, fmt.Errorf("data: bad region percent %q: %w", cols[2], err)
		}

		usage[usageKey(cols[0], cols[1])] = pct
	}

	return usage, nil
}

func usageKey(browser, version string) string {
	return browser + " " + version
}

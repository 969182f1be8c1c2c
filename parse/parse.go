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

// Package parse turns a browserslist query string into a flat list of
// ast.SingleQuery clauses. The grammar isn't recursive: a query string
// is a sequence of atoms joined by "and"/"or"/",", each optionally
// negated with a leading "not ". Atom productions are tried in
// decreasing specificity so a more general pattern never shadows a more
// specific one (e.g. "last 2 major versions" must not be swallowed by
// the plain "last N versions" production).
package parse

import (
	"strconv"
	"strings"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/internal/cachedregexp"
	"github.com/google/browserslist/resolveerr"
)

var (
	reComma = cachedregexp.MustCompile(`\s*,\s*`)
	reOr    = cachedregexp.MustCompile(`(?i)\s+or\s+`)
	reAnd   = cachedregexp.MustCompile(`(?i)\s+and\s+`)
	reNot   = cachedregexp.MustCompile(`(?i)^not\s+`)

	reLastVersions       = cachedregexp.MustCompile(`(?i)^last\s+(\d+)\s+versions$`)
	reLastBrowserVersions = cachedregexp.MustCompile(`(?i)^last\s+(\d+)\s+([\w.\- ]+?)\s+versions$`)
	reLastMajors         = cachedregexp.MustCompile(`(?i)^last\s+(\d+)\s+major\s+versions$`)
	reLastBrowserMajors  = cachedregexp.MustCompile(`(?i)^last\s+(\d+)\s+([\w.\- ]+?)\s+major\s+versions$`)
	reLastElectron       = cachedregexp.MustCompile(`(?i)^last\s+(\d+)\s+electron\s+versions?$`)
	reLastElectronMajor  = cachedregexp.MustCompile(`(?i)^last\s+(\d+)\s+electron\s+major\s+versions?$`)
	reLastNodeMajors     = cachedregexp.MustCompile(`(?i)^last\s+(\d+)\s+node\s+major\s+versions$`)
	reLastDuration       = cachedregexp.MustCompile(`(?i)^last\s+(\d*\.?\d+)\s+(year|month|day)s?$`)

	reUnreleased        = cachedregexp.MustCompile(`(?i)^unreleased\s+versions$`)
	reUnreleasedBrowser = cachedregexp.MustCompile(`(?i)^unreleased\s+([\w.\- ]+?)\s+versions$`)

	reSince = cachedregexp.MustCompile(`^since\s+(\d{4})(?:-(\d{2}))?(?:-(\d{2}))?$`)

	reCurrentNode    = cachedregexp.MustCompile(`(?i)^current\s+node$`)
	reMaintainedNode = cachedregexp.MustCompile(`(?i)^maintained\s+node\s+versions$`)

	reFullySupports     = cachedregexp.MustCompile(`(?i)^fully\s+supports\s+(\S+)$`)
	rePartiallySupports = cachedregexp.MustCompile(`(?i)^partially\s+supports\s+(\S+)$`)
	reSupports          = cachedregexp.MustCompile(`(?i)^supports\s+(\S+)$`)

	reExtends = cachedregexp.MustCompile(`(?i)^extends\s+(\S+)$`)

	reDead    = cachedregexp.MustCompile(`(?i)^dead$`)
	reDefaults = cachedregexp.MustCompile(`(?i)^defaults$`)
	reAll     = cachedregexp.MustCompile(`(?i)^all$`)

	reFirefoxESR = cachedregexp.MustCompile(`(?i)^(?:firefox|ff|fx)\s+esr$`)
	rePhantomJS  = cachedregexp.MustCompile(`(?i)^phantomjs\s+(1\.9|2\.1)$`)
	reBrowserslistConfig = cachedregexp.MustCompile(`(?i)^browserslist\s+config$`)

	rePercentRegion = cachedregexp.MustCompile(`(?i)^(>=|<=|>|<)\s*([\d.]+)%\s+in\s+(\S+)$`)
	rePercentGlobal = cachedregexp.MustCompile(`(?i)^(>=|<=|>|<)\s*([\d.]+)%$`)
	rePercentBrowser = cachedregexp.MustCompile(`(?i)^([\w.\- ]+?)\s*(>=|<=|>|<)\s*([\d.]+)%$`)

	reCoverRegion = cachedregexp.MustCompile(`(?i)^cover\s+([\d.]+)%\s+in\s+(\S+)$`)
	reCoverGlobal = cachedregexp.MustCompile(`(?i)^cover\s+([\d.]+)%$`)

	reBrowserRange      = cachedregexp.MustCompile(`(?i)^([\w.\- ]+?)\s+([\w.]+)\s*-\s*([\w.]+)$`)
	reBrowserComparator = cachedregexp.MustCompile(`(?i)^([\w.\- ]+?)\s*(>=|<=|>|<)\s*([\w.]+)$`)
	reBrowserVersion    = cachedregexp.MustCompile(`(?i)^([\w.\- ]+?)\s+([\w.]+)$`)
)

// Parse splits raw into its OR/AND-joined atom clauses. A top-level
// comma and the word "or" are equivalent OR separators, matching the
// upstream grammar; "and" binds an atom to the previous one.
func Parse(raw string) ([]ast.SingleQuery, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, resolveerr.New(resolveerr.KindEmptyQuery)
	}

	orGroups := splitPreservingAnd(raw)

	var out []ast.SingleQuery
	for gi, group := range orGroups {
		clauses := reAnd.Split(group, -1)
		for ci, clause := range clauses {
			clause = strings.TrimSpace(clause)
			if clause == "" {
				continue
			}

			negated := false
			if reNot.MatchString(clause) {
				negated = true
				clause = reNot.ReplaceAllString(clause, "")
			}

			atom, err := parseAtom(clause)
			if err != nil {
				return nil, err
			}

			combinator := ast.CombinatorAnd
			if ci == 0 {
				combinator = ast.CombinatorOr
			}
			if gi == 0 && ci == 0 {
				combinator = ast.CombinatorNone
			}

			out = append(out, ast.SingleQuery{
				Raw:        clause,
				Atom:       atom,
				Negated:    negated,
				Combinator: combinator,
			})
		}
	}

	if len(out) == 0 {
		return nil, resolveerr.New(resolveerr.KindEmptyQuery)
	}

	return out, nil
}

// splitPreservingAnd splits raw on top-level "," or " or " boundaries.
// It doesn't need to be parenthesis-aware: the grammar has no nested
// grouping, so a regex split is sufficient.
func splitPreservingAnd(raw string) []string {
	normalized := reComma.ReplaceAllString(raw, ",")
	parts := strings.Split(normalized, ",")

	var out []string
	for _, p := range parts {
		out = append(out, reOr.Split(p, -1)...)
	}

	return out
}

func parseAtom(clause string) (ast.QueryAtom, error) {
	switch {
	case reDefaults.MatchString(clause):
		return ast.Defaults{}, nil
	case reDead.MatchString(clause):
		return ast.Dead{}, nil
	case reAll.MatchString(clause):
		return ast.AllBrowsers{}, nil
	case reFirefoxESR.MatchString(clause):
		return ast.FirefoxESRTerminal{}, nil
	case reBrowserslistConfig.MatchString(clause):
		return ast.BrowserslistConfigTerminal{}, nil
	case reCurrentNode.MatchString(clause):
		return ast.CurrentNode{}, nil
	case reMaintainedNode.MatchString(clause):
		return ast.MaintainedNode{}, nil
	}

	if m := rePhantomJS.FindStringSubmatch(clause); m != nil {
		return ast.PhantomJS{Version: m[1]}, nil
	}

	if m := reLastElectronMajor.FindStringSubmatch(clause); m != nil {
		count, err := parseCount(m[1])
		if err != nil {
			return nil, err
		}
		return ast.LastElectronMajors{Count: count}, nil
	}
	if m := reLastNodeMajors.FindStringSubmatch(clause); m != nil {
		count, err := parseCount(m[1])
		if err != nil {
			return nil, err
		}
		return ast.LastNodeMajors{Count: count}, nil
	}
	if m := reLastBrowserMajors.FindStringSubmatch(clause); m != nil {
		browser, err := normalizeBrowser(m[2])
		if err != nil {
			return nil, err
		}
		count, err := parseCount(m[1])
		if err != nil {
			return nil, err
		}
		return ast.LastMajors{Count: count, Browser: browser}, nil
	}
	if m := reLastMajors.FindStringSubmatch(clause); m != nil {
		count, err := parseCount(m[1])
		if err != nil {
			return nil, err
		}
		return ast.LastMajors{Count: count}, nil
	}
	if m := reLastElectron.FindStringSubmatch(clause); m != nil {
		count, err := parseCount(m[1])
		if err != nil {
			return nil, err
		}
		return ast.LastElectronVersions{Count: count}, nil
	}
	if m := reLastDuration.FindStringSubmatch(clause); m != nil {
		count, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, resolveerr.New(resolveerr.KindParseYearsCount).WithRaw(m[1])
		}
		unit := ast.UnitYears
		switch strings.ToLower(m[2]) {
		case "month":
			unit = ast.UnitMonths
		case "day":
			unit = ast.UnitDays
		}
		return ast.LastYears{Count: count, Unit: unit}, nil
	}
	if m := reLastBrowserVersions.FindStringSubmatch(clause); m != nil {
		browser, err := normalizeBrowser(m[2])
		if err != nil {
			return nil, err
		}
		count, err := parseCount(m[1])
		if err != nil {
			return nil, err
		}
		return ast.LastVersions{Count: count, Browser: browser}, nil
	}
	if m := reLastVersions.FindStringSubmatch(clause); m != nil {
		count, err := parseCount(m[1])
		if err != nil {
			return nil, err
		}
		return ast.LastVersions{Count: count}, nil
	}

	if m := reUnreleasedBrowser.FindStringSubmatch(clause); m != nil {
		browser, err := normalizeBrowser(m[1])
		if err != nil {
			return nil, err
		}
		return ast.Unreleased{Browser: browser}, nil
	}
	if reUnreleased.MatchString(clause) {
		return ast.Unreleased{}, nil
	}

	if m := reSince.FindStringSubmatch(clause); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, day := 0, 0
		if m[2] != "" {
			month, _ = strconv.Atoi(m[2])
		}
		if m[3] != "" {
			day, _ = strconv.Atoi(m[3])
		}
		return ast.Since{Year: year, Month: month, Day: day}, nil
	}

	if m := reFullySupports.FindStringSubmatch(clause); m != nil {
		return ast.Supports{Feature: m[1], RequireFull: true}, nil
	}
	if m := rePartiallySupports.FindStringSubmatch(clause); m != nil {
		return ast.Supports{Feature: m[1]}, nil
	}
	if m := reSupports.FindStringSubmatch(clause); m != nil {
		return ast.Supports{Feature: m[1]}, nil
	}

	if m := reExtends.FindStringSubmatch(clause); m != nil {
		return ast.Extends{Package: m[1]}, nil
	}

	if m := reCoverRegion.FindStringSubmatch(clause); m != nil {
		threshold, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, resolveerr.New(resolveerr.KindParsePercentage).WithRaw(clause)
		}
		return ast.CoverRegion{Threshold: threshold, Region: m[2]}, nil
	}
	if m := reCoverGlobal.FindStringSubmatch(clause); m != nil {
		threshold, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, resolveerr.New(resolveerr.KindParsePercentage).WithRaw(clause)
		}
		return ast.CoverGlobal{Threshold: threshold}, nil
	}

	if m := rePercentRegion.FindStringSubmatch(clause); m != nil {
		threshold, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, resolveerr.New(resolveerr.KindParsePercentage).WithRaw(clause)
		}
		return ast.PercentageRegion{Comparator: m[1], Threshold: threshold, Region: m[3]}, nil
	}
	if m := rePercentGlobal.FindStringSubmatch(clause); m != nil {
		threshold, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, resolveerr.New(resolveerr.KindParsePercentage).WithRaw(clause)
		}
		return ast.PercentageGlobal{Comparator: m[1], Threshold: threshold}, nil
	}
	if m := rePercentBrowser.FindStringSubmatch(clause); m != nil {
		browser, err := normalizeBrowser(m[1])
		if err != nil {
			return nil, err
		}
		threshold, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, resolveerr.New(resolveerr.KindParsePercentage).WithRaw(clause)
		}
		return ast.PercentageBrowser{Browser: browser, Comparator: m[2], Threshold: threshold}, nil
	}

	if m := reBrowserRange.FindStringSubmatch(clause); m != nil {
		browser, err := normalizeBrowser(m[1])
		if err != nil {
			return nil, err
		}
		return ast.BrowserVersionRange{Browser: browser, Low: m[2], High: m[3]}, nil
	}
	if m := reBrowserComparator.FindStringSubmatch(clause); m != nil {
		browser, err := normalizeBrowser(m[1])
		if err != nil {
			return nil, err
		}
		return ast.BrowserComparator{Browser: browser, Comparator: m[2], Version: m[3]}, nil
	}
	if m := reBrowserVersion.FindStringSubmatch(clause); m != nil {
		browser, err := normalizeBrowser(m[1])
		if err != nil {
			return nil, err
		}
		return ast.BrowserVersion{Browser: browser, Version: m[2]}, nil
	}

	return nil, resolveerr.New(resolveerr.KindNom).WithRaw(clause)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, resolveerr.New(resolveerr.KindParseVersionsCount).WithRaw(s)
	}

	return n, nil
}

// normalizeBrowser resolves a browser token through the alias table,
// additionally accepting "electron" and "node" which aren't part of
// data's canonical alphabet but are valid atom subjects.
func normalizeBrowser(token string) (string, error) {
	token = strings.TrimSpace(strings.ToLower(token))

	switch token {
	case "electron", "node":
		return token, nil
	}

	canonical, ok := data.NormalizeName(token)
	if !ok {
		return "", resolveerr.New(resolveerr.KindBrowserNotFound).WithBrowser(token)
	}

	return canonical, nil
}

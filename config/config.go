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

// Package config discovers and parses browserslist configuration: a
// bare-line-per-query `.browserslistrc`/`browserslist` file (optionally
// split into `[env]` sections), a `browserslist` field in package.json,
// or the BROWSERSLIST/BROWSERSLIST_CONFIG environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/tidwall/gjson"

	"github.com/google/browserslist/internal/cachedregexp"
	"github.com/google/browserslist/log"
	"github.com/google/browserslist/options"
	"github.com/google/browserslist/resolveerr"
)

var reSectionHeader = cachedregexp.MustCompile(`(?m)^\s*\[([^\]]+)\]\s*$`)

// firstDuplicateSection scans raw .browserslistrc text for a [env]
// header declared more than once, which ini.v1 would otherwise merge
// silently. Returns the offending section name, or "" if none repeats.
func firstDuplicateSection(raw string) string {
	seen := make(map[string]bool)
	for _, m := range reSectionHeader.FindAllStringSubmatch(raw, -1) {
		name := strings.TrimSpace(m[1])
		if seen[name] {
			return name
		}
		seen[name] = true
	}

	return ""
}

const (
	rcFileName      = ".browserslistrc"
	plainFileName   = "browserslist"
	pkgFileName     = "package.json"
	envBrowserslist = "BROWSERSLIST"
	envConfigPath   = "BROWSERSLIST_CONFIG"
)

// Loader discovers and parses the query list Execute should resolve.
type Loader interface {
	Load(opts options.Options) ([]string, error)
}

// FileLoader is the default Loader: the BROWSERSLIST and
// BROWSERSLIST_CONFIG environment variables take precedence, in that
// order, then an explicit opts.Config path, then an upward
// directory walk from opts.Path looking for .browserslistrc,
// browserslist, or package.json's browserslist field.
type FileLoader struct{}

// Load resolves opts into the query list to evaluate.
func (FileLoader) Load(opts options.Options) ([]string, error) {
	if raw := os.Getenv(envBrowserslist); raw != "" {
		return splitEnvList(raw), nil
	}

	path := os.Getenv(envConfigPath)
	if path == "" {
		path = opts.Config
	}
	if path == "" {
		dir := opts.Path
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, resolveerr.New(resolveerr.KindFailedToAccessCurrentDir).WithErr(err)
			}
			dir = wd
		}

		found, err := discover(dir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	if path == "" {
		log.Debugf("browserslist: no configuration found, falling back to defaults")
		return []string{"defaults"}, nil
	}

	if filepath.Base(path) == pkgFileName {
		return loadPackageJSON(path, opts)
	}

	log.Debugf("browserslist: using config %s", path)
	return loadRCFile(path, opts)
}

// discover walks upward from dir looking for a .browserslistrc,
// browserslist, or package.json with a browserslist field, returning
// "" if none is found by the filesystem root.
func discover(dir string) (string, error) {
	for {
		var rcPath string
		for _, name := range []string{rcFileName, plainFileName} {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				rcPath = candidate
				break
			}
		}

		pkgPath := filepath.Join(dir, pkgFileName)
		pkgHasField := false
		if fileExists(pkgPath) {
			raw, err := os.ReadFile(pkgPath)
			pkgHasField = err == nil && gjson.GetBytes(raw, "browserslist").Exists()
		}

		switch {
		case rcPath != "" && pkgHasField:
			return "", resolveerr.New(resolveerr.KindDuplicatedConfig).
				WithDir(dir).
				WithKindA(filepath.Base(rcPath)).
				WithKindB(pkgFileName)
		case rcPath != "":
			return rcPath, nil
		case pkgHasField:
			return pkgPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

func splitEnvList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// loadRCFile parses a .browserslistrc-style file: one query per line,
// no "=" delimiter, grouped into optional `[env-name]` sections. ini's
// AllowBooleanKeys turns each bare line into a boolean key whose name is
// the query text.
func loadRCFile(path string, opts options.Options) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, resolveerr.New(resolveerr.KindFailedToReadConfig).WithDir(path).WithErr(err)
	}

	if dup := firstDuplicateSection(string(raw)); dup != "" {
		return nil, resolveerr.New(resolveerr.KindDuplicatedSection).WithDir(path).WithEnv(dup)
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys:         true,
		SkipUnrecognizableLines: true,
	}, raw)
	if err != nil {
		return nil, resolveerr.New(resolveerr.KindFailedToReadConfig).WithDir(path).WithErr(err)
	}

	section := ini.DefaultSection
	if opts.Env != "" && file.HasSection(opts.Env) {
		section = opts.Env
	} else if opts.Env != "" && opts.ThrowOnMissing {
		return nil, resolveerr.New(resolveerr.KindMissingEnv).WithEnv(opts.Env)
	}

	seen := make(map[string]bool)
	var queries []string
	for _, sec := range sectionsFor(file, section) {
		for _, key := range sec.Keys() {
			name := strings.TrimSpace(key.Name())
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			queries = append(queries, name)
		}
	}

	if len(queries) == 0 {
		return []string{"defaults"}, nil
	}

	return queries, nil
}

// sectionsFor returns the default section plus, if named, the selected
// env section: browserslistrc files apply the default section's
// queries to every environment, with the named section adding to it.
func sectionsFor(file *ini.File, section string) []*ini.Section {
	sections := []*ini.Section{file.Section(ini.DefaultSection)}
	if section != ini.DefaultSection {
		sections = append(sections, file.Section(section))
	}

	return sections
}

// loadPackageJSON extracts the browserslist field from a package.json,
// which is either a flat array of queries or an object keyed by
// environment name.
func loadPackageJSON(path string, opts options.Options) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, resolveerr.New(resolveerr.KindFailedToReadConfig).WithDir(path).WithErr(err)
	}

	field := gjson.GetBytes(raw, "browserslist")
	if !field.Exists() {
		return nil, resolveerr.New(resolveerr.KindMissingFieldInPkg).WithRaw("browserslist").WithDir(path)
	}

	if field.IsArray() {
		var queries []string
		for _, q := range field.Array() {
			queries = append(queries, q.String())
		}
		return queries, nil
	}

	if opts.Env != "" {
		envField := field.Get(opts.Env)
		if envField.Exists() {
			var queries []string
			for _, q := range envField.Array() {
				queries = append(queries, q.String())
			}
			return queries, nil
		}
		if opts.ThrowOnMissing {
			return nil, resolveerr.New(resolveerr.KindMissingEnv).WithEnv(opts.Env)
		}
	}

	if prod := field.Get("production"); prod.Exists() {
		var queries []string
		for _, q := range prod.Array() {
			queries = append(queries, q.String())
		}
		return queries, nil
	}

	return []string{"defaults"}, nil
}

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

// Package resolveerr defines the query engine's error taxonomy. Every
// failure mode the parser, evaluator, composer, and config loader can
// produce is represented as an Error carrying only the data needed to
// reproduce its message, so downstream tooling can pattern-match on Kind
// with errors.Is without parsing strings.
package resolveerr

import (
	"fmt"
)

// Kind identifies one of the taxonomy's failure modes.
type Kind string

// The complete set of error kinds the engine can return.
const (
	KindParseVersion           Kind = "parse_version"
	KindParsePercentage        Kind = "parse_percentage"
	KindParseVersionsCount     Kind = "parse_versions_count"
	KindParseYearsCount        Kind = "parse_years_count"
	KindInvalidDate            Kind = "invalid_date"
	KindBrowserNotFound        Kind = "browser_not_found"
	KindUnknownElectronVersion Kind = "unknown_electron_version"
	KindUnknownNodejsVersion   Kind = "unknown_nodejs_version"
	KindUnknownBrowserVersion  Kind = "unknown_browser_version"
	KindUnsupportedCurrentNode Kind = "unsupported_current_node"
	KindUnsupportedExtends     Kind = "unsupported_extends"
	KindUnknownBrowserFeature  Kind = "unknown_browser_feature"
	KindUnknownRegion          Kind = "unknown_region"
	KindUnknownQuery           Kind = "unknown_query"
	KindVersionRequired        Kind = "version_required"
	KindNotAtFirst             Kind = "not_at_first"
	KindDuplicatedSection      Kind = "duplicated_section"
	KindFailedToReadConfig     Kind = "failed_to_read_config"
	KindMissingFieldInPkg      Kind = "missing_field_in_pkg"
	KindDuplicatedConfig       Kind = "duplicated_config"
	KindFailedToAccessCurrentDir Kind = "failed_to_access_current_dir"
	KindMissingEnv             Kind = "missing_env"
	KindInvalidExtendName      Kind = "invalid_extend_name"
	KindFailedToResolveExtend  Kind = "failed_to_resolve_extend"
	KindYearOverflow           Kind = "year_overflow"
	KindNom                    Kind = "nom"
	KindEmptyQuery             Kind = "empty_query"
)

// Error is the concrete error type returned by every package in this
// module. Only the fields relevant to Kind are populated; the rest are
// left at their zero value.
type Error struct {
	Kind Kind

	// Raw is the offending input text: the unparsed remainder for KindNom,
	// the raw atom text for KindNotAtFirst, the query for KindUnknownQuery.
	Raw string
	// Browser is a canonical or as-typed browser name.
	Browser string
	// Version is a version string that failed to parse or resolve.
	Version string
	// Feature is a `supports` feature name.
	Feature string
	// Region is a region code passed to `in REGION`.
	Region string
	// Package is an `extends` package name.
	Package string
	// Dir is the directory or file a config error concerns. KindA and
	// KindB describe a KindDuplicatedConfig collision: two config sources
	// of kind KindA/KindB found in Dir. A KindDuplicatedSection names its
	// file in Dir and the repeated section in Env.
	Dir   string
	KindA string
	KindB string
	// Env is the requested BROWSERSLIST_ENV/env section name.
	Env string
	// Err wraps the underlying cause, if any (I/O errors, etc).
	Err error
}

// Error implements the error interface, producing a fixed message template
// per Kind so the text is stable for pattern matching.
func (e *Error) Error() string {
	switch e.Kind {
	case KindParseVersion:
		return fmt.Sprintf("couldn't parse version %q", e.Version)
	case KindParsePercentage:
		return fmt.Sprintf("couldn't parse percentage %q", e.Raw)
	case KindParseVersionsCount:
		return fmt.Sprintf("couldn't parse count %q", e.Raw)
	case KindParseYearsCount:
		return fmt.Sprintf("couldn't parse years %q", e.Raw)
	case KindInvalidDate:
		return fmt.Sprintf("invalid date %q", e.Raw)
	case KindBrowserNotFound:
		return fmt.Sprintf("unknown browser %q", e.Browser)
	case KindUnknownElectronVersion:
		return fmt.Sprintf("unknown electron version %s", e.Version)
	case KindUnknownNodejsVersion:
		return fmt.Sprintf("unknown node.js version %s", e.Version)
	case KindUnknownBrowserVersion:
		return fmt.Sprintf("unknown version %s of browser %s", e.Version, e.Browser)
	case KindUnsupportedCurrentNode:
		return "current node is not supported in this context"
	case KindUnsupportedExtends:
		return "extends is not supported in this context"
	case KindUnknownBrowserFeature:
		return fmt.Sprintf("unknown feature %q", e.Feature)
	case KindUnknownRegion:
		return fmt.Sprintf("unknown region %q", e.Region)
	case KindUnknownQuery:
		return fmt.Sprintf("unknown browser query %q", e.Raw)
	case KindVersionRequired:
		return fmt.Sprintf("browser %s requires a version", e.Browser)
	case KindNotAtFirst:
		return fmt.Sprintf("the first query %q can't be negated", e.Raw)
	case KindDuplicatedSection:
		return fmt.Sprintf("duplicated section %q in %s", e.Env, e.Dir)
	case KindFailedToReadConfig:
		return fmt.Sprintf("failed to read config at %s: %v", e.Dir, e.Err)
	case KindMissingFieldInPkg:
		return fmt.Sprintf("missing %q field in %s", e.Raw, e.Dir)
	case KindDuplicatedConfig:
		return fmt.Sprintf("%s and %s conflict in %s", e.KindA, e.KindB, e.Dir)
	case KindFailedToAccessCurrentDir:
		return fmt.Sprintf("failed to access current directory: %v", e.Err)
	case KindMissingEnv:
		return fmt.Sprintf("missing environment %q in config", e.Env)
	case KindInvalidExtendName:
		return fmt.Sprintf("invalid extend name %q: %v", e.Package, e.Err)
	case KindFailedToResolveExtend:
		return fmt.Sprintf("failed to resolve extend %q: %v", e.Package, e.Err)
	case KindYearOverflow:
		return fmt.Sprintf("years value %q overflows", e.Raw)
	case KindNom:
		return fmt.Sprintf("could not parse the remaining input: %q", e.Raw)
	case KindEmptyQuery:
		return "empty query"
	default:
		return fmt.Sprintf("browserslist error: %s", e.Kind)
	}
}

// Unwrap returns the wrapped cause, if any, so errors.Is/As can see through
// to an underlying I/O or OS error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, letting
// callers write errors.Is(err, resolveerr.New(resolveerr.KindBrowserNotFound)).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return other.Kind == e.Kind
}

// New constructs a bare *Error of the given Kind, suitable as a sentinel
// for errors.Is comparisons.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// WithRaw sets the offending input text and returns e, for chaining
// onto New.
func (e *Error) WithRaw(raw string) *Error {
	e.Raw = raw
	return e
}

// WithBrowser sets the browser name and returns e.
func (e *Error) WithBrowser(browser string) *Error {
	e.Browser = browser
	return e
}

// WithVersion sets the version string and returns e.
func (e *Error) WithVersion(version string) *Error {
	e.Version = version
	return e
}

// WithFeature sets the `supports` feature name and returns e.
func (e *Error) WithFeature(feature string) *Error {
	e.Feature = feature
	return e
}

// WithRegion sets the region code and returns e.
func (e *Error) WithRegion(region string) *Error {
	e.Region = region
	return e
}

// WithPackage sets the extends package name and returns e.
func (e *Error) WithPackage(pkg string) *Error {
	e.Package = pkg
	return e
}

// WithErr sets the wrapped cause and returns e.
func (e *Error) WithErr(err error) *Error {
	e.Err = err
	return e
}

// WithEnv sets the requested environment section name and returns e.
func (e *Error) WithEnv(env string) *Error {
	e.Env = env
	return e
}

// WithDir sets the directory a config collision or read failure
// occurred in and returns e.
func (e *Error) WithDir(dir string) *Error {
	e.Dir = dir
	return e
}

// WithKindA sets the first of two conflicting config source
// descriptions and returns e.
func (e *Error) WithKindA(kind string) *Error {
	e.KindA = kind
	return e
}

// WithKindB sets the second of two conflicting config source
// descriptions and returns e.
func (e *Error) WithKindB(kind string) *Error {
	e.KindB = kind
	return e
}

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

// Package options defines the configuration flags accepted by Resolve and
// Execute, and the small collaborator interfaces (Clock, current-Node
// provider, extends resolver) the core evaluator consults without owning
// their implementation.
package options

import "time"

// Options enumerates every configuration flag the query parser, evaluator,
// and composer consult. The zero value is the engine's default behavior.
type Options struct {
	// MobileToDesktop activates the virtual-browser rewrites: android's
	// evergreen tail is spliced from chrome, op_mob borrows opera's desktop
	// list, and and_chr/and_ff/ie_mob borrow their desktop counterpart's
	// version list while keeping the mobile name in output.
	MobileToDesktop bool
	// IgnoreUnknownVersions downgrades UnknownBrowserVersion,
	// UnknownNodejsVersion, and version-accuracy failures to an empty
	// contribution from the offending atom instead of failing the query.
	IgnoreUnknownVersions bool
	// Env selects an environment-specific section from discovered
	// configuration files. Not read by the core evaluator except by
	// delegation atoms (`browserslist config`) and Execute.
	Env string
	// Config is an explicit path to a configuration file. When empty, the
	// loader discovers one starting from Path.
	Config string
	// Path is the directory the config loader starts its upward walk from.
	// When empty, the loader uses the process's current directory.
	Path string
	// ThrowOnMissing asks the config loader to fail instead of silently
	// falling back to `defaults` when Env names a section that isn't
	// present in an object-shaped package.json browserslist field.
	ThrowOnMissing bool
	// DangerousExtend disables the `extends` package name safety checks
	// (see eval's extends safety rule).
	DangerousExtend bool

	// Clock supplies "now" for `last N years/months/days` and `maintained
	// node versions`. Defaults to SystemClock when nil.
	Clock Clock
}

// Clock supplies the current time to time-sensitive atoms. Production code
// uses SystemClock; tests inject a FixedClock so "last N years" and
// "maintained node versions" queries are deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock, backed by the real wall clock in UTC.
type SystemClock struct{}

// Now returns time.Now().UTC().
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock is a Clock that always returns the same instant, for tests.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// NowOrDefault returns o.Clock.Now() if a Clock was supplied, else the
// system clock's current time in UTC.
func (o Options) NowOrDefault() time.Time {
	if o.Clock == nil {
		return SystemClock{}.Now()
	}

	return o.Clock.Now()
}

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

package eval

import "github.com/google/browserslist/resolveerr"

// missingBrowser reports an unknown-browser-name error. Unlike
// missingVersion, IgnoreUnknownVersions never suppresses this: spec
// only downgrades UnknownBrowserVersion, UnknownNodejsVersion, and
// accurate-version lookups to an empty contribution, not an
// unrecognized browser name entirely.
func missingBrowser(ctx Context, browser string) error {
	return resolveerr.New(resolveerr.KindBrowserNotFound).WithBrowser(browser)
}

// missingVersion reports an unknown-version error for browser/version,
// unless IgnoreUnknownVersions is set.
func missingVersion(ctx Context, browser, version string) error {
	if ctx.Options.IgnoreUnknownVersions {
		return nil
	}

	return resolveerr.New(resolveerr.KindUnknownBrowserVersion).WithBrowser(browser).WithVersion(version)
}

// missingRegion reports an unknown-region error for region.
// IgnoreUnknownVersions never suppresses this, for the same reason as
// missingBrowser: it's not one of the three version-lookup kinds spec
// downgrades.
func missingRegion(ctx Context, region string) error {
	return resolveerr.New(resolveerr.KindUnknownRegion).WithRegion(region)
}

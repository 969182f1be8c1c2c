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

import "strings"

// The closed alphabet of canonical browser identifiers, plus "node".
const (
	IE       = "ie"
	Edge     = "edge"
	Firefox  = "firefox"
	Chrome   = "chrome"
	Safari   = "safari"
	Opera    = "opera"
	IOSSafari = "ios_saf"
	OperaMini = "op_mini"
	Android  = "android"
	BlackBerry = "bb"
	OperaMobile = "op_mob"
	ChromeAndroid = "and_chr"
	FirefoxAndroid = "and_ff"
	IEMobile = "ie_mob"
	UCAndroid = "and_uc"
	Samsung  = "samsung"
	QQAndroid = "and_qq"
	Baidu    = "baidu"
	KaiOS    = "kaios"
	Node     = "node"
)

// CanonicalNames is the full closed alphabet in a fixed numeric-ID order,
// matching the encode/decode mapping the bundled data's pooled layout
// relies on being inverses of each other (spec §6).
var CanonicalNames = []string{
	IE, Edge, Firefox, Chrome, Safari, Opera, IOSSafari, OperaMini, Android,
	BlackBerry, OperaMobile, ChromeAndroid, FirefoxAndroid, IEMobile,
	UCAndroid, Samsung, QQAndroid, Baidu, KaiOS, Node,
}

// aliases maps a lowercase external spelling to its canonical identifier.
// Applied before all browser-name lookups.
var aliases = map[string]string{
	"fx":          Firefox,
	"ff":          Firefox,
	"ie":          IE,
	"explorer":    IE,
	"msie":        IE,
	"edge":        Edge,
	"ms-edge":     Edge,
	"chrome":      Chrome,
	"chromium":    Chrome,
	"safari":      Safari,
	"opera":       Opera,
	"ios":         IOSSafari,
	"ios_saf":     IOSSafari,
	"ios_safari":  IOSSafari,
	"op_mini":     OperaMini,
	"opmini":      OperaMini,
	"operamini":   OperaMini,
	"android":     Android,
	"bb":          BlackBerry,
	"blackberry":  BlackBerry,
	"op_mob":      OperaMobile,
	"operamobile": OperaMobile,
	"and_chr":     ChromeAndroid,
	"chromeandroid": ChromeAndroid,
	"and_ff":      FirefoxAndroid,
	"firefoxandroid": FirefoxAndroid,
	"ie_mob":      IEMobile,
	"iemobile":    IEMobile,
	"and_uc":      UCAndroid,
	"ucandroid":   UCAndroid,
	"uc":          UCAndroid,
	"samsung":     Samsung,
	"samsunginternet": Samsung,
	"and_qq":      QQAndroid,
	"qqandroid":   QQAndroid,
	"baidu":       Baidu,
	"kaios":       KaiOS,
	"node":        Node,
	"nodejs":      Node,
}

// NormalizeName resolves name through the alias map, case-insensitively,
// returning the canonical identifier and whether it is recognized.
func NormalizeName(name string) (string, bool) {
	canonical, ok := aliases[strings.ToLower(strings.TrimSpace(name))]

	return canonical, ok
}

// IsCanonical reports whether name (already lowercased) is one of the 19
// browser identifiers or "node".
func IsCanonical(name string) bool {
	for _, n := range CanonicalNames {
		if n == name {
			return true
		}
	}

	return false
}

// desktopCounterpart maps a mobile-only browser to the desktop browser
// whose version list stands in for it when mobile_to_desktop is set,
// while the output keeps the mobile name (spec §3).
var desktopCounterpart = map[string]string{
	ChromeAndroid:  Chrome,
	FirefoxAndroid: Firefox,
	IEMobile:       IE,
}

// DesktopCounterpart returns the desktop browser backing name's version
// list under mobile_to_desktop, if any.
func DesktopCounterpart(name string) (string, bool) {
	d, ok := desktopCounterpart[name]

	return d, ok
}

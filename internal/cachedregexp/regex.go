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

// Package cachedregexp provides a cached MustCompile alternative to regexp.
// The query grammar tries dozens of anchored patterns against every call to
// parse, so recompiling them each time would be wasted work.
package cachedregexp

import (
	"regexp"
	"sync"
)

var cache sync.Map

// MustCompile returns the same *regexp.Regexp that regexp.MustCompile
// returns, caching the compiled pattern in a process-wide map so repeated
// calls with the same expression skip recompilation.
func MustCompile(exp string) *regexp.Regexp {
	compiled, ok := cache.Load(exp)
	if !ok {
		compiled, _ = cache.LoadOrStore(exp, regexp.MustCompile(exp))
	}

	return compiled.(*regexp.Regexp)
}

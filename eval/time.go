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

import (
	"time"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/resolveerr"
)

func evalSince(a ast.Since, ctx Context) ([]data.Target, error) {
	month := a.Month
	if month == 0 {
		month = 1
	}
	day := a.Day
	if day == 0 {
		day = 1
	}

	boundary := time.Date(a.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if boundary.Year() != a.Year || int(boundary.Month()) != month || boundary.Day() != day {
		return nil, resolveerr.New(resolveerr.KindInvalidDate)
	}

	var out []data.Target
	for _, browser := range data.CanonicalNames {
		if browser == data.Node {
			continue
		}

		rows, _ := rowsFor(browser, ctx)
		for _, r := range rows {
			if !r.Unreleased() && !r.Released.Before(boundary) {
				out = append(out, data.Target{Browser: browser, Version: r.Version})
			}
		}
	}

	return out, nil
}

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
	"errors"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/options"
	"github.com/google/browserslist/resolveerr"
)

// configLoader discovers the query list the `browserslist config` atom
// delegates to. Like queryResolver, it's wired in once from the root
// package during init to avoid an import cycle between eval and config.
var configLoader func(opts options.Options) ([]string, error)

// SetConfigLoader installs the function the `browserslist config` atom
// uses to discover its default query list.
func SetConfigLoader(fn func(options.Options) ([]string, error)) {
	configLoader = fn
}

func evalBrowserslistConfig(ctx Context) ([]data.Target, error) {
	if configLoader == nil || queryResolver == nil {
		return nil, resolveerr.New(resolveerr.KindFailedToReadConfig).
			WithErr(errors.New("no configuration loader registered"))
	}

	queries, err := configLoader(ctx.Options)
	if err != nil {
		return nil, err
	}

	var out []data.Target
	for _, q := range queries {
		targets, err := queryResolver(q, ctx.Options)
		if err != nil {
			return nil, err
		}
		out = append(out, targets...)
	}

	return out, nil
}

func evalPhantomJS(a ast.PhantomJS) ([]data.Target, error) {
	version := "5"
	if a.Version == "2.1" {
		version = "6"
	}

	return []data.Target{{Browser: data.Safari, Version: version}}, nil
}

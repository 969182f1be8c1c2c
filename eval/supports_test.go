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

package eval_test

import (
	"testing"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/eval"
	"github.com/google/browserslist/options"
)

func ctxFor(opts options.Options) eval.Context {
	return eval.Context{Snapshot: data.Get(), Options: opts}
}

func TestEvalSupportsIncludesPartial(t *testing.T) {
	got, err := eval.Eval(ast.Supports{Feature: "flexbox"}, ctxFor(options.Options{}))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}

	var sawSafari16 bool
	for _, tgt := range got {
		if tgt.Browser == "safari" && tgt.Version == "16" {
			sawSafari16 = true
		}
	}
	if !sawSafari16 {
		t.Errorf("supports flexbox = %v, want safari 16 (partial support) included", got)
	}
}

func TestEvalFullySupportsExcludesPartial(t *testing.T) {
	got, err := eval.Eval(ast.Supports{Feature: "flexbox", RequireFull: true}, ctxFor(options.Options{}))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}

	for _, tgt := range got {
		if tgt.Browser == "safari" && tgt.Version == "16" {
			t.Errorf("fully supports flexbox = %v, want safari 16 (partial only) excluded", got)
		}
	}

	var sawSafari17 bool
	for _, tgt := range got {
		if tgt.Browser == "safari" && tgt.Version == "17" {
			sawSafari17 = true
		}
	}
	if !sawSafari17 {
		t.Errorf("fully supports flexbox = %v, want safari 17 (full support) included", got)
	}
}

func TestEvalSupportsUnknownFeature(t *testing.T) {
	_, err := eval.Eval(ast.Supports{Feature: "no-such-feature"}, ctxFor(options.Options{}))
	if err == nil {
		t.Errorf("expected an error for an unknown feature")
	}
}

// TestEvalSupportsUnknownFeatureNeverSuppressed confirms IgnoreUnknownVersions
// only downgrades version-level lookups (UnknownBrowserVersion,
// UnknownNodejsVersion, accurate-version failures), not an unknown
// feature name.
func TestEvalSupportsUnknownFeatureNeverSuppressed(t *testing.T) {
	_, err := eval.Eval(ast.Supports{Feature: "no-such-feature"}, ctxFor(options.Options{IgnoreUnknownVersions: true}))
	if err == nil {
		t.Errorf("expected an error for an unknown feature even with IgnoreUnknownVersions set")
	}
}

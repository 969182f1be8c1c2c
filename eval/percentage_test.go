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
	"github.com/google/browserslist/eval"
	"github.com/google/browserslist/options"
)

// TestEvalCoverGlobalNonEmpty mirrors the spec's own worked example:
// cover 0.1% resolves to a nonempty prefix of the global usage table.
func TestEvalCoverGlobalNonEmpty(t *testing.T) {
	got, err := eval.Eval(ast.CoverGlobal{Threshold: 0.1}, ctxFor(options.Options{}))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("cover 0.1%% = empty, want a nonempty prefix of the usage table")
	}
}

// TestEvalCoverGlobalMonotonic checks the coverage-monotonicity property:
// resolve("cover X%") is a prefix of resolve("cover Y%") for X <= Y.
func TestEvalCoverGlobalMonotonic(t *testing.T) {
	small, err := eval.Eval(ast.CoverGlobal{Threshold: 1}, ctxFor(options.Options{}))
	if err != nil {
		t.Fatalf("Eval(cover 1%%) returned error: %v", err)
	}
	big, err := eval.Eval(ast.CoverGlobal{Threshold: 50}, ctxFor(options.Options{}))
	if err != nil {
		t.Fatalf("Eval(cover 50%%) returned error: %v", err)
	}

	if len(small) > len(big) {
		t.Fatalf("cover 1%% produced %d targets, cover 50%% produced fewer (%d)", len(small), len(big))
	}
	for i, tgt := range small {
		if big[i] != tgt {
			t.Errorf("cover 1%% is not a prefix of cover 50%%: index %d = %v, want %v", i, big[i], tgt)
		}
	}
}

func TestEvalCoverRegionUnknownRegion(t *testing.T) {
	_, err := eval.Eval(ast.CoverRegion{Threshold: 1, Region: "ZZ-not-a-region"}, ctxFor(options.Options{}))
	if err == nil {
		t.Errorf("expected an error for an unknown region")
	}
}

// TestEvalCoverRegionUnknownRegionNeverSuppressed confirms
// IgnoreUnknownVersions doesn't downgrade an unknown region, matching
// missingBrowser's treatment of unrecognized names.
func TestEvalCoverRegionUnknownRegionNeverSuppressed(t *testing.T) {
	_, err := eval.Eval(ast.CoverRegion{Threshold: 1, Region: "ZZ-not-a-region"}, ctxFor(options.Options{IgnoreUnknownVersions: true}))
	if err == nil {
		t.Errorf("expected an error for an unknown region even with IgnoreUnknownVersions set")
	}
}

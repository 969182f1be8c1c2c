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

// Package compose folds the per-atom target lists the eval package
// produces into the single, deduplicated, ordered list a query
// resolves to, applying each clause's and/or/not the way parse.Parse
// recorded it.
package compose

import (
	"sort"

	"bitbucket.org/creachadair/stringset"

	"github.com/google/browserslist/ast"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/eval"
	"github.com/google/browserslist/resolveerr"
	"github.com/google/browserslist/semver"
)

// Fold evaluates every clause in queries against ctx and folds the
// results left-to-right per clause.Combinator/Negated, returning the
// final sorted, deduplicated target list. This is a plain sequential
// fold, not a group-then-union pass: spec's composer table defines the
// action of each clause directly on the running result, and negation
// (whether the clause's combinator is AND or OR) is always a set
// difference against that running result, never against a materialized
// "everything else" universe.
func Fold(queries []ast.SingleQuery, ctx eval.Context) ([]data.Target, error) {
	if len(queries) == 0 {
		return nil, resolveerr.New(resolveerr.KindEmptyQuery)
	}
	if queries[0].Negated {
		return nil, resolveerr.New(resolveerr.KindNotAtFirst).WithRaw(queries[0].Raw)
	}

	registry := make(map[string]data.Target)
	result := stringset.New()

	for _, q := range queries {
		targets, err := eval.Eval(q.Atom, ctx)
		if err != nil {
			return nil, err
		}

		clauseSet := toSet(targets, registry)

		switch {
		case q.Negated:
			result = diffSet(result, clauseSet)
		case q.Combinator == ast.CombinatorAnd:
			result = intersectSet(result, clauseSet)
		default:
			result = unionSet(result, clauseSet)
		}
	}

	return sortedTargets(result, registry), nil
}

func toSet(targets []data.Target, registry map[string]data.Target) stringset.Set {
	set := stringset.New()
	for _, t := range targets {
		key := t.String()
		set.Add(key)
		if registry != nil {
			registry[key] = t
		}
	}

	return set
}

func unionSet(a, b stringset.Set) stringset.Set {
	out := stringset.New(a.Elements()...)
	for _, e := range b.Elements() {
		out.Add(e)
	}

	return out
}

func intersectSet(a, b stringset.Set) stringset.Set {
	out := stringset.New()
	for _, e := range a.Elements() {
		if b.Contains(e) {
			out.Add(e)
		}
	}

	return out
}

func diffSet(a, b stringset.Set) stringset.Set {
	out := stringset.New()
	for _, e := range a.Elements() {
		if !b.Contains(e) {
			out.Add(e)
		}
	}

	return out
}

// sortedTargets orders the final set by browser name ascending, then by
// version descending (newest first), matching the upstream project's
// output order.
func sortedTargets(set stringset.Set, registry map[string]data.Target) []data.Target {
	out := make([]data.Target, 0, set.Len())
	for _, key := range set.Elements() {
		out = append(out, registry[key])
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Browser != out[j].Browser {
			return out[i].Browser < out[j].Browser
		}

		return semver.Parse(out[i].Version).Compare(semver.Parse(out[j].Version)) > 0
	})

	return out
}

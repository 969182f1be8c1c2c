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
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/resolveerr"
	"github.com/google/browserslist/semver"
)

func evalCurrentNode(ctx Context) ([]data.Target, error) {
	if ctx.Node == nil {
		return nil, resolveerr.New(resolveerr.KindUnsupportedCurrentNode)
	}

	version, err := ctx.Node.CurrentVersion()
	if err != nil {
		return nil, resolveerr.New(resolveerr.KindUnsupportedCurrentNode).WithErr(err)
	}

	return []data.Target{{Browser: data.Node, Version: version}}, nil
}

func evalMaintainedNode(ctx Context) ([]data.Target, error) {
	now := ctx.Options.NowOrDefault()
	majors := ctx.Snapshot.MaintainedNodeMajors(now)
	if len(majors) == 0 {
		return nil, nil
	}

	keep := make(map[int]bool, len(majors))
	for _, m := range majors {
		keep[m] = true
	}

	var out []data.Target
	for _, r := range ctx.Snapshot.NodeReleases() {
		if keep[semver.Parse(r.Version).MajorInt()] {
			out = append(out, data.Target{Browser: data.Node, Version: r.Version})
		}
	}

	return out, nil
}

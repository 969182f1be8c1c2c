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

// Command browserslist resolves browserslist-style DSL queries against the
// bundled compatibility data and prints the resulting targets. With no query
// arguments, it discovers configuration the same way the library's Execute
// does (BROWSERSLIST/BROWSERSLIST_CONFIG env vars, an explicit -config path,
// or an upward walk from -path).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	browserslist "github.com/google/browserslist"
	"github.com/google/browserslist/data"
	"github.com/google/browserslist/log"
	"github.com/google/browserslist/options"
)

func main() {
	var (
		path            = flag.String("path", "", "directory to start config discovery from (default: current directory)")
		config          = flag.String("config", "", "explicit path to a .browserslistrc, browserslist, or package.json file")
		env             = flag.String("env", "", "environment section to select from discovered configuration")
		mobileToDesktop = flag.Bool("mobile-to-desktop", false, "fold mobile browser versions into their desktop counterparts")
		ignoreUnknown   = flag.Bool("ignore-unknown-versions", false, "treat unknown browser/Node versions as an empty match instead of an error")
		dangerousExtend = flag.Bool("dangerous-extend", false, "skip the extends package name safety check")
		verbose         = flag.Bool("v", false, "print the result as a single comma-joined line, and enable debug logging")
	)
	flag.Parse()

	if *verbose {
		log.SetLogger(&log.DefaultLogger{Verbose: true})
	}

	opts := options.Options{
		Path:                  *path,
		Config:                *config,
		Env:                   *env,
		MobileToDesktop:       *mobileToDesktop,
		IgnoreUnknownVersions: *ignoreUnknown,
		DangerousExtend:       *dangerousExtend,
	}

	targets, err := resolve(flag.Args(), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "browserslist: %v\n", err)
		os.Exit(1)
	}

	lines := make([]string, len(targets))
	for i, t := range targets {
		lines[i] = t.Browser + " " + t.Version
	}

	if *verbose {
		fmt.Println(strings.Join(lines, ", "))
		return
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}

// resolve runs the query list, or discovers configuration via Execute when
// no queries were given on the command line.
func resolve(queries []string, opts options.Options) ([]data.Target, error) {
	if len(queries) == 0 {
		return browserslist.Execute(opts)
	}

	return browserslist.Resolve(queries, opts)
}

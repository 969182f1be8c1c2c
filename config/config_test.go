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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/google/browserslist/config"
	"github.com/google/browserslist/options"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
}

func TestLoadRCFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".browserslistrc", "last 2 versions\n> 1%\n")

	got, err := (config.FileLoader{}).Load(options.Options{Path: dir})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := []string{"last 2 versions", "> 1%"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRCFileWithEnvSection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".browserslistrc", "last 2 versions\n\n[production]\nnot dead\n")

	got, err := (config.FileLoader{}).Load(options.Options{Path: dir, Env: "production"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := []string{"last 2 versions", "not dead"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPackageJSONArray(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"x","browserslist":["last 1 version","dead"]}`)

	got, err := (config.FileLoader{}).Load(options.Options{Path: dir})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := []string{"last 1 version", "dead"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPackageJSONObjectFallsBackToProduction(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"browserslist":{"production":["> 1%"],"development":["last 1 chrome version"]}}`)

	got, err := (config.FileLoader{}).Load(options.Options{Path: dir})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := []string{"> 1%"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDuplicateConfigRejected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".browserslistrc", "last 2 versions\n")
	writeFile(t, dir, "package.json", `{"browserslist":["dead"]}`)

	if _, err := (config.FileLoader{}).Load(options.Options{Path: dir}); err == nil {
		t.Errorf("expected an error when both .browserslistrc and package.json#browserslist exist")
	}
}

func TestLoadNoConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()

	got, err := (config.FileLoader{}).Load(options.Options{Path: dir})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := []string{"defaults"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"avl demo", []string{"avl"}, []string{"Starting up", "RR rotation at 15 (balance factor 2)", "LR rotation at 8", "ok"}},
		{"bst demo", []string{"bst"}, []string{"Base tree:", "10 not found"}},
		{"annotated", []string{"avl", "--annotate"}, []string{"10 (h=3, bf=+0)"}},
		{"scenarios", []string{"scenarios"}, []string{"avl", "bst", "ternary"}},
		{"ternary search hit", []string{"ternary", "search", "20"}, []string{"20 found at index 6"}},
		{"ternary search miss", []string{"ternary", "search", "7", "--values", "9,1,5"}, []string{"7 not found in [1 5 9]"}},
		{"stress", []string{"stress", "--iterations", "200", "--max", "50"}, []string{"avl: ", "inserts"}},
		{"stress bst", []string{"stress", "-t", "bst", "--iterations", "200"}, []string{"bst: ", "0 rotations"}},
		{"bench", []string{"bench", "-n", "64"}, []string{"64 values", "google/btree"}},
		{"version", []string{"version"}, []string{version}},
		{"usage", []string{"usage"}, []string{"Arbor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRunScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotations.yaml")
	script := "tree: avl\nsteps:\n  - {title: Grow, op: insert, values: [3, 2, 1], print: true}\n  - {op: search, values: [2], expect: true}\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))

	out, err := execute(t, "run", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "LL rotation at 3 (balance factor -2)")
	assert.Contains(t, out, "2\n|-> 1\n┗-> 3\n")
}

func TestRunScriptFileReportsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - {op: search, values: [1], expect: true}\n"), 0644))

	_, err := execute(t, "run", "-f", path)
	assert.ErrorContains(t, err, "1 of 1 step(s)")
}

func TestCommandErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"missing file":   {"run"},
		"bad needle":     {"ternary", "search", "x"},
		"bad tree kind":  {"stress", "-t", "splay"},
		"bad bench size": {"bench", "-n", "0"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestSettingsCommand(t *testing.T) {
	out, err := execute(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Arbor Configuration Settings")
}

func TestHelpBannerHonoursNoColor(t *testing.T) {
	green, reset := Green, Reset
	Green, Reset = "\033[92m", "\033[0m"
	t.Cleanup(func() { Green, Reset = green, reset })

	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "[Version: dev]")
	assert.NotContains(t, out, "\033[")

	out, err = execute(t, "avl", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "[Version: dev]")
	assert.Contains(t, out, "Builds an AVL tree")
	assert.NotContains(t, out, "\033[")
}

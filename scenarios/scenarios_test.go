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

package scenarios

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	cmd := NewCommand([]string{"Insert", "3", "4"})

	assert.Equal(t, "insert", cmd.Op)
	assert.True(t, cmd.HasArgs(2))
	assert.False(t, cmd.HasArgs(3))
	assert.Equal(t, "Insert 3 4", cmd.FullName)

	values, err := cmd.Values()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, values)

	_, err = NewCommand([]string{"insert", "x"}).Values()
	assert.ErrorContains(t, err, `operand "x" is not an integer`)
}

func TestParseLine(t *testing.T) {
	commands, err := ParseLine(`insert 3 "4" -1; ; print`)
	require.NoError(t, err)
	require.Len(t, commands, 2)
	assert.Equal(t, []string{"3", "4", "-1"}, commands[0].Args)
	assert.Equal(t, "print", commands[1].Op)

	commands, err = ParseLine("   ")
	require.NoError(t, err)
	assert.Empty(t, commands)

	_, err = ParseLine(`insert "3`)
	assert.Error(t, err)
}

func exec(t *testing.T, s *Session, line string) (string, bool) {
	t.Helper()
	commands, err := ParseLine(line)
	require.NoError(t, err)
	require.Len(t, commands, 1)
	out, ok, err := s.Exec(commands[0])
	require.NoError(t, err)
	return out, ok
}

func TestSessionAVL(t *testing.T) {
	s, err := NewSession(KindAVL, Options{})
	require.NoError(t, err)

	out, ok := exec(t, s, "insert 1 2 3")
	assert.True(t, ok)
	assert.Equal(t, "inserted 1\ninserted 2\ninserted 3\n  RR rotation at 1 (balance factor 2)\n", out)

	out, ok = exec(t, s, "insert 2")
	assert.False(t, ok)
	assert.Equal(t, "2 already present\n", out)

	out, _ = exec(t, s, "print")
	assert.Equal(t, "2\n|-> 1\n┗-> 3\n", out)

	out, ok = exec(t, s, "search 3")
	assert.True(t, ok)
	assert.Equal(t, "3\n", out)

	out, ok = exec(t, s, "balance 2")
	assert.True(t, ok)
	assert.Equal(t, "balance factor of 2: 0\n", out)

	out, _ = exec(t, s, "height")
	assert.Equal(t, "height: 2\n", out)

	_, ok = exec(t, s, "delete 7")
	assert.False(t, ok)

	out, ok = exec(t, s, "validate")
	assert.True(t, ok)
	assert.Equal(t, "ok\n", out)

	assert.Equal(t, "avl:2,1,3", s.Fingerprint())
	assert.Equal(t, []int{1, 2, 3}, s.Values())

	exec(t, s, "clear")
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.Outline())
}

func TestSessionBST(t *testing.T) {
	s, err := NewSession(KindBST, Options{Annotate: true})
	require.NoError(t, err)

	exec(t, s, "insert 1 2 3")
	out, _ := exec(t, s, "print")
	assert.Equal(t, "1 (d=3)\n|->\n┗-> 2 (d=2)\n    |->\n    ┗-> 3 (d=1)\n", out)

	out, _ = exec(t, s, "height")
	assert.Equal(t, "height: 3\n", out)

	_, _, err = s.Exec(NewCommand([]string{"balance", "1"}))
	assert.ErrorIs(t, err, errNotTracked)
}

func TestSessionErrors(t *testing.T) {
	_, err := NewSession("splay", Options{})
	assert.Error(t, err)

	s, err := NewSession(KindAVL, Options{})
	require.NoError(t, err)

	_, _, err = s.Exec(NewCommand([]string{"rotate", "1"}))
	assert.ErrorIs(t, err, ErrUnknownOp)

	_, _, err = s.Exec(NewCommand([]string{"insert"}))
	assert.Error(t, err)

	_, _, err = s.Exec(NewCommand([]string{"balance", "1", "2"}))
	assert.Error(t, err)
}

func TestAVLDemo(t *testing.T) {
	var buf bytes.Buffer
	report, err := AVLDemo().Run(&buf, Options{})
	require.NoError(t, err)

	assert.True(t, report.Passed())
	assert.Equal(t, 12, report.Steps)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, banner("Starting up")+"\n"))
	assert.Contains(t, out, "inserted 6\ninserted 7\n  LR rotation at 8 (balance factor -2)\n")
	assert.Contains(t, out, "deleted 3\n  RL rotation at 5 ")
	assert.Contains(t, out, "RL rotation at 15 (balance factor 2)")
	assert.Contains(t, out, "20 not found")
	assert.Contains(t, out, "height: 3")
	assert.Contains(t, out, "balance factor of 10: 0")
	assert.True(t, strings.HasSuffix(out, "ok\n"+separator+"\n"))
}

func TestBSTDemo(t *testing.T) {
	var buf bytes.Buffer
	report, err := BSTDemo().Run(&buf, Options{})
	require.NoError(t, err)
	assert.True(t, report.Passed())
	assert.Contains(t, buf.String(), "10 not found")
}

func TestTernaryHarness(t *testing.T) {
	var buf bytes.Buffer
	report, err := NewTernaryHarness().Run(&buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, 20, report.Steps)
	assert.Equal(t, 0, report.Failures)
	assert.Contains(t, buf.String(), "0 out of 20 tests failed")
}

func TestTernaryHarnessCountsFailures(t *testing.T) {
	h := &TernaryHarness{Cases: []TernaryCase{
		{Needle: 1, Index: 0, Haystack: []int{1}},
		{Needle: 2, Index: 0, Haystack: []int{1}},
	}}
	var buf bytes.Buffer
	report, err := h.Run(&buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failures)
	assert.Contains(t, buf.String(), "Got index '-1'")
}

func TestManager(t *testing.T) {
	m := NewManager()

	var names []string
	for _, s := range m.List() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"avl", "bst", "ternary"}, names)

	_, err := m.Get("splay")
	assert.ErrorIs(t, err, ErrUnknownScenario)

	_, err = m.Run("splay", &bytes.Buffer{}, Options{})
	assert.ErrorIs(t, err, ErrUnknownScenario)

	m.Register(&Script{ID: "avl", Tree: KindAVL, Rank: 20, Steps: []Step{{Op: "height"}}})
	s, err := m.Get("avl")
	require.NoError(t, err)
	assert.Equal(t, 20, s.Priority())
	assert.Len(t, m.List(), 3)
}

const rotationsScript = `
name: rotations
description: force every rotation case
tree: avl
steps:
  - {title: "Right-right", op: insert, values: [1, 2, 3], print: true}
  - {op: search, values: [2], expect: true}
  - {op: search, values: [9], expect: true}
  - {op: validate, expect: true}
`

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(rotationsScript))
	require.NoError(t, err)
	assert.Equal(t, "rotations", script.Name())
	assert.Equal(t, 10, script.Priority())
	require.Len(t, script.Steps, 4)
	assert.Equal(t, []int{1, 2, 3}, script.Steps[0].Values)

	var buf bytes.Buffer
	report, err := script.Run(&buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Steps)
	assert.Equal(t, 1, report.Failures)
	assert.Contains(t, buf.String(), "Expected search 9 to return true")
}

func TestParseScriptRejectsBadInput(t *testing.T) {
	for name, data := range map[string]string{
		"not yaml":   "steps: [",
		"tree kind":  "tree: splay\nsteps: [{op: print}]",
		"no steps":   "tree: avl",
		"missing op": "steps: [{values: [1]}]",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScript([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestScriptUnknownOpFails(t *testing.T) {
	script, err := ParseScript([]byte("steps: [{op: spin}]"))
	require.NoError(t, err)
	_, err = script.Run(&bytes.Buffer{}, Options{})
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degenerate.yaml")
	data := "tree: bst\nsteps:\n  - {op: insert, values: [1, 2, 3, 4]}\n  - {op: height}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "degenerate", script.Name())
	assert.Equal(t, KindBST, script.Tree)

	var buf bytes.Buffer
	_, err = script.Run(&buf, Options{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "height: 4")

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBanner(t *testing.T) {
	b := banner("Starting up")
	assert.Len(t, b, lineWidth)
	assert.Contains(t, b, " Starting up ")
}

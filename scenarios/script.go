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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const lineWidth = 80

var separator = strings.Repeat("=", lineWidth)

// banner centers title inside a line of '='.
func banner(title string) string {
	title = " " + title + " "
	left := (lineWidth - len(title)) / 2
	if left < 0 {
		return title
	}
	return strings.Repeat("=", left) + title + strings.Repeat("=", lineWidth-left-len(title))
}

// Step is one operation of a script.
type Step struct {
	Title  string `yaml:"title,omitempty"`
	Op     string `yaml:"op"`
	Values []int  `yaml:"values,omitempty"`
	Print  bool   `yaml:"print,omitempty"`   // print the tree after the step
	Expect *bool  `yaml:"expect,omitempty"` // expected outcome, counted as a failure when it differs
}

// Script is a scenario described as data, either built in or loaded from
// a YAML file:
//
//	name: rotations
//	description: force every rotation case
//	tree: avl
//	steps:
//	  - {title: "Right-right", op: insert, values: [1, 2, 3], print: true}
//	  - {op: search, values: [2], expect: true}
type Script struct {
	ID    string `yaml:"name"`
	About string `yaml:"description,omitempty"`
	Tree  string `yaml:"tree"`
	Rank  int    `yaml:"priority,omitempty"`
	Steps []Step `yaml:"steps"`
}

func (s *Script) Name() string        { return s.ID }
func (s *Script) Description() string { return s.About }
func (s *Script) Priority() int       { return s.Rank }

// ParseScript decodes and checks a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	if script.Tree == "" {
		script.Tree = KindAVL
	}
	if script.Tree != KindAVL && script.Tree != KindBST {
		return nil, fmt.Errorf("script %q: unknown tree kind %q", script.ID, script.Tree)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("script has no steps")
	}
	for i, step := range script.Steps {
		if step.Op == "" {
			return nil, fmt.Errorf("step %d has no op", i+1)
		}
	}
	if script.Rank == 0 {
		script.Rank = 10
	}
	return &script, nil
}

// LoadScript reads a YAML script from path. A script without a name is
// named after its file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if script.ID == "" {
		script.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return script, nil
}

// Run executes every step against a fresh tree.
func (s *Script) Run(w io.Writer, opts Options) (Report, error) {
	var report Report
	opts = opts.withDefaults()

	session, err := NewSession(s.Tree, opts)
	if err != nil {
		return report, err
	}

	fmt.Fprintln(w, banner("Starting up"))
	for i, step := range s.Steps {
		if step.Title != "" {
			fmt.Fprintf(w, "%s:\n", step.Title)
		}

		out, ok, err := session.Exec(CommandOf(step.Op, step.Values...))
		if err != nil {
			return report, fmt.Errorf("step %d: %w", i+1, err)
		}
		report.Steps++
		io.WriteString(w, out)

		if step.Expect != nil && *step.Expect != ok {
			report.Failures++
			fmt.Fprintf(w, "Error!!\n\tExpected %s to return %t\n", CommandOf(step.Op, step.Values...).FullName, *step.Expect)
		}
		if step.Print && step.Op != "print" {
			io.WriteString(w, session.Outline())
		}
		if step.Title != "" || step.Print {
			fmt.Fprintln(w, separator)
		}
	}

	opts.Logger.Info("scenario finished", "name", s.ID, "steps", report.Steps, "failures", report.Failures)
	return report, nil
}

func expect(b bool) *bool {
	return &b
}

// AVLDemo walks an AVL tree through every rotation case.
func AVLDemo() *Script {
	return &Script{
		ID:    "avl",
		About: "Build an AVL tree, force LR and RL rotations and delete the root",
		Tree:  KindAVL,
		Rank:  1,
		Steps: []Step{
			{Title: "Base tree", Op: "insert", Values: []int{10, 5, 15, 3, 8, 20}, Print: true},
			{Title: "Insert node with value 24", Op: "insert", Values: []int{24}, Print: true},
			{Title: "Delete node with value 20", Op: "delete", Values: []int{20}, Print: true},
			{Title: "Search for an existing element", Op: "search", Values: []int{5}, Expect: expect(true)},
			{Title: "Search for an element that has been deleted", Op: "search", Values: []int{20}, Expect: expect(false)},
			{Title: "Balance factor for node 10", Op: "balance", Values: []int{10}},
			{Title: "Height of the tree", Op: "height"},
			{Title: "Insert nodes 6 and 7 to force a LR rotation", Op: "insert", Values: []int{6, 7}, Print: true},
			{Title: "Insert node 23 to force a RL rotation", Op: "insert", Values: []int{23}, Print: true},
			{Title: "Remove the root of the tree", Op: "delete", Values: []int{10}, Print: true},
			{Title: "Remove a leaf of the tree", Op: "delete", Values: []int{3}, Print: true},
			{Title: "Check invariants", Op: "validate", Expect: expect(true)},
		},
	}
}

// BSTDemo grows and prunes an unbalanced tree.
func BSTDemo() *Script {
	return &Script{
		ID:    "bst",
		About: "Grow an unbalanced binary search tree and delete inner nodes and the root",
		Tree:  KindBST,
		Rank:  2,
		Steps: []Step{
			{Title: "Base tree", Op: "insert", Values: []int{8, 3, 10, 1, 6, 4, 7, 14, 13, 20}, Print: true},
			{Title: "Insert nodes with values 24 and 5", Op: "insert", Values: []int{24, 5}, Print: true},
			{Title: "Delete nodes with values 6 and 10", Op: "delete", Values: []int{6, 10}, Print: true},
			{Title: "Remove the root of the tree", Op: "delete", Values: []int{8}, Print: true},
			{Title: "Search for an existing element", Op: "search", Values: []int{5}, Expect: expect(true)},
			{Title: "Search for an element that has been deleted", Op: "search", Values: []int{10}, Expect: expect(false)},
			{Title: "Check ordering", Op: "validate", Expect: expect(true)},
		},
	}
}

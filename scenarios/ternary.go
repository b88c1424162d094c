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
	"fmt"
	"io"

	"github.com/cybrota/arbor/ternary"
)

// TernaryCase is one expectation of the ternary search harness.
type TernaryCase struct {
	Needle   int
	Index    int
	Haystack []int
}

// TernaryHarness runs ternary.Search over a fixed table of cases.
type TernaryHarness struct {
	Cases []TernaryCase
}

// NewTernaryHarness returns the harness with its twenty default cases,
// including a nil haystack and an empty one.
func NewTernaryHarness() *TernaryHarness {
	haystack := []int{-28, -10, -4, 0, 5, 10, 20, 140, 1000}

	var cases []TernaryCase
	for i, v := range haystack {
		cases = append(cases, TernaryCase{Needle: v, Index: i, Haystack: haystack})
	}
	for _, v := range []int{-20, -5, -2, 2, 8, 15, 50, 500, -243} {
		cases = append(cases, TernaryCase{Needle: v, Index: ternary.NotFound, Haystack: haystack})
	}
	cases = append(cases,
		TernaryCase{Needle: -10, Index: ternary.NotFound, Haystack: nil},
		TernaryCase{Needle: 20, Index: ternary.NotFound, Haystack: haystack[:0]},
	)
	return &TernaryHarness{Cases: cases}
}

func (h *TernaryHarness) Name() string { return "ternary" }
func (h *TernaryHarness) Description() string {
	return "Check ternary search against a table of present, absent and empty-haystack cases"
}
func (h *TernaryHarness) Priority() int { return 3 }

// Run executes every case. Each mismatch counts as one failure.
func (h *TernaryHarness) Run(w io.Writer, opts Options) (Report, error) {
	opts = opts.withDefaults()
	report := Report{Steps: len(h.Cases)}

	fmt.Fprintln(w, "Starting tests...")
	for _, c := range h.Cases {
		haystack := "nil"
		if c.Haystack != nil {
			haystack = fmt.Sprintf("%v", c.Haystack)
		}
		fmt.Fprintf(w, "Expect needle '%d' at '%d' - haystack %s - size '%d': ", c.Needle, c.Index, haystack, len(c.Haystack))

		index := ternary.Search(c.Haystack, c.Needle)
		if index != c.Index {
			report.Failures++
			fmt.Fprintf(w, "Error!!\n\tGot index '%d'\n", index)
			opts.Logger.Warn("ternary case failed", "needle", c.Needle, "want", c.Index, "got", index)
			continue
		}
		fmt.Fprintln(w, "OK")
	}
	fmt.Fprintf(w, "%d out of %d tests failed\n", report.Failures, len(h.Cases))
	return report, nil
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBench(t *testing.T) {
	results := runBench(512, 1, false)
	require.Len(t, results, 4)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"arbor/avl", "arbor/bst", "gods/avltree", "google/btree"}, names)

	assert.GreaterOrEqual(t, results[0].Height, 10)
	assert.LessOrEqual(t, results[0].Height, 12)
	assert.GreaterOrEqual(t, results[1].Height, results[0].Height)
	assert.Equal(t, -1, results[2].Height)
}

func TestRunBenchSortedDegradesBST(t *testing.T) {
	results := runBench(300, 1, true)
	assert.LessOrEqual(t, results[0].Height, 10)
	assert.Equal(t, 300, results[1].Height)
}

func TestBenchTable(t *testing.T) {
	out := benchTable(runBench(64, 2, false), 64)
	assert.Contains(t, out, "64 values")
	for _, name := range []string{"TREE", "arbor/avl", "arbor/bst", "gods/avltree", "google/btree"} {
		assert.Contains(t, out, name)
	}
}

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

package ternary

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

var haystack = []int{-28, -10, -4, 0, 5, 10, 20, 140, 1000}

func TestSearch(t *testing.T) {
	testCases := []struct {
		needle   int
		haystack []int
		index    int
	}{
		{-28, haystack, 0},
		{-10, haystack, 1},
		{-4, haystack, 2},
		{0, haystack, 3},
		{5, haystack, 4},
		{10, haystack, 5},
		{20, haystack, 6},
		{140, haystack, 7},
		{1000, haystack, 8},
		{-20, haystack, NotFound},
		{-5, haystack, NotFound},
		{-2, haystack, NotFound},
		{2, haystack, NotFound},
		{8, haystack, NotFound},
		{15, haystack, NotFound},
		{50, haystack, NotFound},
		{500, haystack, NotFound},
		{-243, haystack, NotFound},
		{-10, nil, NotFound},
		{20, haystack[:0], NotFound},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("needle %d in %d values", tc.needle, len(tc.haystack)), func(t *testing.T) {
			assert.Equal(t, tc.index, Search(tc.haystack, tc.needle))
		})
	}
}

func TestSearchSmallRanges(t *testing.T) {
	assert.Equal(t, 0, Search([]int{7}, 7))
	assert.Equal(t, NotFound, Search([]int{7}, 6))

	pair := []int{3, 9}
	assert.Equal(t, 0, Search(pair, 3))
	assert.Equal(t, 1, Search(pair, 9))
	for _, needle := range []int{1, 5, 12} {
		assert.Equal(t, NotFound, Search(pair, needle), "needle %d", needle)
	}
}

func TestSearchEveryPosition(t *testing.T) {
	for size := 1; size <= 64; size++ {
		values := make([]int, size)
		for i := range values {
			values[i] = 2 * i
		}
		for i, v := range values {
			assert.Equal(t, i, Search(values, v))
			assert.Equal(t, NotFound, Search(values, v+1))
			assert.Equal(t, sort.SearchInts(values, v), Search(values, v))
		}
		assert.Equal(t, NotFound, Search(values, -1))
	}
}

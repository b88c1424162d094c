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
	"slices"
	"strconv"

	"github.com/cybrota/arbor/ternary"
	"github.com/willf/bloom"
)

const haystackFalsePositiveRate = 0.01

// Haystack is a sorted copy of the searched values with a bloom filter in
// front of the ternary search.
type Haystack struct {
	values []int
	filter *bloom.BloomFilter
}

func NewHaystack(values []int) *Haystack {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	n := uint(len(sorted))
	if n == 0 {
		n = 1
	}
	filter := bloom.NewWithEstimates(n, haystackFalsePositiveRate)
	for _, v := range sorted {
		filter.AddString(strconv.Itoa(v))
	}
	return &Haystack{values: sorted, filter: filter}
}

func (h *Haystack) Values() []int {
	return h.values
}

// Find returns the needle's index in Values, or ternary.NotFound. skipped
// reports that the filter ruled the needle out without searching.
func (h *Haystack) Find(needle int) (index int, skipped bool) {
	if !h.filter.TestString(strconv.Itoa(needle)) {
		return ternary.NotFound, true
	}
	return ternary.Search(h.values, needle), false
}

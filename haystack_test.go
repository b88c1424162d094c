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

	"github.com/cybrota/arbor/ternary"
	"github.com/stretchr/testify/assert"
)

func TestHaystackFind(t *testing.T) {
	h := NewHaystack([]int{1000, -28, 20, -10, 5, -4, 0, 10, 140, 20})
	assert.Equal(t, []int{-28, -10, -4, 0, 5, 10, 20, 140, 1000}, h.Values())

	for i, v := range h.Values() {
		index, skipped := h.Find(v)
		assert.False(t, skipped, "present value %d must never be filtered", v)
		assert.Equal(t, i, index)
	}

	for _, v := range []int{-20, -5, 2, 8, 500} {
		index, _ := h.Find(v)
		assert.Equal(t, ternary.NotFound, index)
	}
}

func TestHaystackEmpty(t *testing.T) {
	h := NewHaystack(nil)
	index, _ := h.Find(3)
	assert.Equal(t, ternary.NotFound, index)
	assert.Empty(t, h.Values())
}

func TestHaystackSkipsMostAbsentValues(t *testing.T) {
	values := make([]int, 0, 500)
	for i := 0; i < 500; i++ {
		values = append(values, i*2)
	}
	h := NewHaystack(values)

	skipped := 0
	for i := 0; i < 500; i++ {
		if _, s := h.Find(i*2 + 1); s {
			skipped++
		}
	}
	assert.Greater(t, skipped, 400)
}

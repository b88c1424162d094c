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

// Package ternary searches sorted slices by splitting the range into thirds.
package ternary

// NotFound is returned when the needle is not in the haystack.
const NotFound = -1

// Search returns the index of needle in haystack, which must be sorted in
// ascending order, or NotFound. A nil or empty haystack never matches.
func Search(haystack []int, needle int) int {
	if len(haystack) == 0 {
		return NotFound
	}
	return search(haystack, needle, 0, len(haystack)-1)
}

// search looks for needle inside the closed range [lower, upper].
func search(haystack []int, needle, lower, upper int) int {
	if lower > upper {
		return NotFound
	}
	if lower == upper {
		if haystack[lower] == needle {
			return lower
		}
		return NotFound
	}

	chunk := (upper - lower) / 3
	lowerPivot := lower + chunk
	upperPivot := upper - chunk

	switch {
	case needle == haystack[lowerPivot]:
		return lowerPivot
	case needle == haystack[upperPivot]:
		return upperPivot
	case needle < haystack[lowerPivot]:
		return search(haystack, needle, lower, lowerPivot-1)
	case needle > haystack[upperPivot]:
		return search(haystack, needle, upperPivot+1, upper)
	default:
		return search(haystack, needle, lowerPivot+1, upperPivot-1)
	}
}

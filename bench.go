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
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/bst"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
)

const btreeDegree = 32

type benchResult struct {
	Name   string
	Insert time.Duration
	Search time.Duration
	Delete time.Duration
	Height int // -1 when the implementation does not expose it
}

type benchTarget struct {
	name   string
	insert func(int)
	search func(int) bool
	delete func(int)
	height func() int
}

func benchTargets() []benchTarget {
	a := avl.New()
	b := bst.New()
	g := avltree.NewWithIntComparator()
	bt := btree.NewOrderedG[int](btreeDegree)

	return []benchTarget{
		{
			name:   "arbor/avl",
			insert: func(v int) { a.Insert(v) },
			search: a.Contains,
			delete: func(v int) { a.Delete(v) },
			height: a.Height,
		},
		{
			name:   "arbor/bst",
			insert: func(v int) { b.Insert(v) },
			search: b.Contains,
			delete: func(v int) { b.Delete(v) },
			height: b.Depth,
		},
		{
			name:   "gods/avltree",
			insert: func(v int) { g.Put(v, struct{}{}) },
			search: func(v int) bool {
				_, found := g.Get(v)
				return found
			},
			delete: func(v int) { g.Remove(v) },
		},
		{
			name:   "google/btree",
			insert: func(v int) { bt.ReplaceOrInsert(v) },
			search: bt.Has,
			delete: func(v int) { bt.Delete(v) },
		},
	}
}

func timed(values []int, fn func(int)) time.Duration {
	start := time.Now()
	for _, v := range values {
		fn(v)
	}
	return time.Since(start)
}

// runBench inserts n values into every implementation, looks each one up
// and deletes them all. sorted feeds ascending values, which degrades the
// unbalanced tree into a list.
func runBench(n int, seed int64, sorted bool) []benchResult {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	if !sorted {
		rng := rand.New(rand.NewPCG(uint64(seed), uint64(n)))
		rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
	}
	lookups := slices.Clone(values)
	slices.Reverse(lookups)

	var results []benchResult
	for _, target := range benchTargets() {
		result := benchResult{Name: target.name, Height: -1}
		result.Insert = timed(values, target.insert)
		if target.height != nil {
			result.Height = target.height()
		}
		result.Search = timed(lookups, func(v int) { target.search(v) })
		result.Delete = timed(values, target.delete)
		results = append(results, result)
	}
	return results
}

func perOp(d time.Duration, n int) string {
	if n == 0 {
		return "-"
	}
	return (d / time.Duration(n)).String()
}

func benchTable(results []benchResult, n int) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		height := "-"
		if r.Height >= 0 {
			height = strconv.Itoa(r.Height)
		}
		rows = append(rows, []string{r.Name, perOp(r.Insert, n), perOp(r.Search, n), perOp(r.Delete, n), height})
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("TREE", "INSERT/OP", "SEARCH/OP", "DELETE/OP", "HEIGHT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return fmt.Sprintf("%d values\n%s", n, t.Render())
}

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
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/bst"
	"github.com/cybrota/arbor/scenarios"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/schollz/progressbar/v3"
)

// Trees are compared against the oracle's key order every this many operations.
const stressCompareEvery = 100

type stressTarget struct {
	insert  func(int) bool
	delete  func(int) bool
	len     func() int
	inOrder func() []int
	check   func() error
	height  func() int
}

type stressReport struct {
	Tree       string
	Inserts    int
	Deletes    int
	Rotations  int
	MaxHeight  int
	FinalCount int
}

func newStressTarget(kind string, report *stressReport) (stressTarget, error) {
	switch kind {
	case scenarios.KindAVL:
		t := avl.New()
		t.OnRotate = func(avl.Rotation) { report.Rotations++ }
		return stressTarget{
			insert:  t.Insert,
			delete:  t.Delete,
			len:     t.Len,
			inOrder: t.InOrder,
			check:   func() error { return avl.Validate(t.Root()) },
			height:  t.Height,
		}, nil
	case scenarios.KindBST:
		t := bst.New()
		return stressTarget{
			insert:  t.Insert,
			delete:  t.Delete,
			len:     t.Len,
			inOrder: t.InOrder,
			check: func() error {
				if !slices.IsSorted(t.InOrder()) {
					return fmt.Errorf("in-order walk is not sorted")
				}
				return nil
			},
			height: t.Depth,
		}, nil
	}
	return stressTarget{}, fmt.Errorf("unknown tree kind %q", kind)
}

func oracleKeys(oracle *avltree.Tree) []int {
	keys := make([]int, 0, oracle.Size())
	for _, k := range oracle.Keys() {
		keys = append(keys, k.(int))
	}
	return keys
}

// runStress replays a seeded random sequence of inserts and deletes on the
// tree and on a gods AVL tree, validating the tree after every operation.
func runStress(w io.Writer, kind string, cfg StressConfig, showProgress bool, logger *slog.Logger) (stressReport, error) {
	report := stressReport{Tree: kind}
	if cfg.Iterations <= 0 || cfg.MaxValue <= 0 {
		return report, fmt.Errorf("iterations and max value must be positive")
	}
	if cfg.MaxValue == math.MaxInt {
		return report, fmt.Errorf("max value must be below %d", math.MaxInt)
	}

	target, err := newStressTarget(kind, &report)
	if err != nil {
		return report, err
	}
	oracle := avltree.NewWithIntComparator()
	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15))

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(cfg.Iterations,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(fmt.Sprintf("🎲 Stressing %s tree...", kind)),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(w, "\n✅ Stress run completed!\n")
			}),
		)
	}

	for i := 1; i <= cfg.Iterations; i++ {
		value := rng.IntN(cfg.MaxValue + 1)
		_, present := oracle.Get(value)

		// Two inserts for every delete so the tree keeps growing
		var op string
		var got bool
		if rng.IntN(3) < 2 {
			op = "insert"
			report.Inserts++
			got = target.insert(value)
			oracle.Put(value, struct{}{})
			if got == present {
				return report, fmt.Errorf("operation %d: insert %d returned %t with value present=%t", i, value, got, present)
			}
		} else {
			op = "delete"
			report.Deletes++
			got = target.delete(value)
			oracle.Remove(value)
			if got != present {
				return report, fmt.Errorf("operation %d: delete %d returned %t with value present=%t", i, value, got, present)
			}
		}
		logger.Debug("stress step", "op", op, "value", value, "changed", got)

		if err := target.check(); err != nil {
			return report, fmt.Errorf("operation %d (%s %d): %w", i, op, value, err)
		}
		if target.len() != oracle.Size() {
			return report, fmt.Errorf("operation %d (%s %d): tree holds %d values, oracle %d", i, op, value, target.len(), oracle.Size())
		}
		if i%stressCompareEvery == 0 || i == cfg.Iterations {
			if !slices.Equal(target.inOrder(), oracleKeys(oracle)) {
				return report, fmt.Errorf("operation %d (%s %d): in-order values differ from oracle", i, op, value)
			}
		}
		report.MaxHeight = max(report.MaxHeight, target.height())

		if bar != nil {
			bar.Add(1)
		}
	}

	report.FinalCount = target.len()
	logger.Info("stress finished", "tree", kind, "inserts", report.Inserts, "deletes", report.Deletes, "rotations", report.Rotations)
	return report, nil
}

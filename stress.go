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
	"math"
	"math/rand/v2"
	"os"

	"github.com/cybrota/avlcore/avl"
	"github.com/schollz/progressbar/v3"
)

// StressReport summarises a randomized run.
type StressReport struct {
	Operations int
	Inserts    int
	Duplicates int
	Deletes    int
	Misses     int
	Checks     int
	MaxHeight  int
	FinalSize  int
}

// heightBound is the worst-case height of an AVL tree holding n keys.
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n+2)) - 0.3277
}

// checkTree validates the tree and holds its height to bound(Len()).
func checkTree(tree *avl.Tree[int], bound func(n int) float64) error {
	if err := tree.Validate(); err != nil {
		return err
	}
	if h, limit := tree.Height(), bound(tree.Len()); float64(h) > limit {
		return fmt.Errorf("height %d exceeds AVL bound %.2f for %d keys", h, limit, tree.Len())
	}
	return nil
}

func newStressBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("🌲 Balancing..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(0),
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

// RunStress applies a seeded random mix of inserts and deletes, validating
// the tree every CheckEvery operations and once more at the end.
func RunStress(config StressConfig) (*StressReport, error) {
	return runStress(config, os.Stderr, heightBound)
}

func runStress(config StressConfig, progress io.Writer, bound func(n int) float64) (*StressReport, error) {
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15))
	tree := avl.New[int]()
	report := &StressReport{}

	var bar *progressbar.ProgressBar
	if config.ShowProgress {
		bar = newStressBar(config.Operations, progress)
	}
	// A failed check must not land in the middle of the bar's line
	fail := func(err error) (*StressReport, error) {
		if bar != nil {
			fmt.Fprintln(progress)
		}
		return report, err
	}

	checkEvery := max(config.CheckEvery, 1)
	for op := 0; op < config.Operations; op++ {
		key := rng.IntN(config.KeySpace)

		// Inserts outnumber deletes so the tree keeps growing
		if rng.IntN(3) < 2 {
			if err := tree.Insert(key); err != nil {
				report.Duplicates++
			} else {
				report.Inserts++
			}
		} else {
			if tree.Delete(key) {
				report.Deletes++
			} else {
				report.Misses++
			}
		}
		report.Operations++
		report.MaxHeight = max(report.MaxHeight, tree.Height())

		if (op+1)%checkEvery == 0 {
			report.Checks++
			if err := checkTree(tree, bound); err != nil {
				return fail(fmt.Errorf("after %d operations: %w", op+1, err))
			}
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	report.Checks++
	if err := checkTree(tree, bound); err != nil {
		return fail(fmt.Errorf("after %d operations: %w", report.Operations, err))
	}
	report.FinalSize = tree.Len()

	if bar != nil {
		bar.Finish()
	}
	return report, nil
}

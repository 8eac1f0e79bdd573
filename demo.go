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

	"github.com/cybrota/avlcore/avl"
)

var (
	demoInsertKeys = []int{9, 5, 10, 0, 6, 11, -1, 1, 2}
	demoDeleteKeys = []int{10, 11}
)

const (
	demoRangeLow  = 1
	demoRangeHigh = 9
	demoDepthKey  = 6
)

// runDemo walks through the reference scenario: build, shrink, then query.
func runDemo(s *Session, out io.Writer) error {
	fmt.Fprintf(out, "%s--- 1. Inserting keys %s ---%s\n", Info, formatKeys(demoInsertKeys), Reset)
	for _, key := range demoInsertKeys {
		if err := s.Insert(key); err != nil {
			return fmt.Errorf("insert %d: %w", key, err)
		}
	}
	fmt.Fprintf(out, "Insertion completed without errors.\n")
	fmt.Fprintf(out, "In-order after insertions: %s\n\n", formatKeys(s.InOrder()))

	fmt.Fprintf(out, "%s--- 2. Deleting keys %s ---%s\n", Info, formatKeys(demoDeleteKeys), Reset)
	for _, key := range demoDeleteKeys {
		s.Delete(key)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deletion completed without errors.\n")
	fmt.Fprintf(out, "In-order after deletions: %s\n", formatKeys(s.InOrder()))
	fmt.Fprintf(out, "Height %d for %d keys, all balance factors within [-1, 1].\n\n", s.Height(), s.Len())

	fmt.Fprintf(out, "%s--- 3. Keys in [%d, %d] ---%s\n", Info, demoRangeLow, demoRangeHigh, Reset)
	fmt.Fprintf(out, "Keys found: %s\n\n", formatKeys(s.RangeQuery(demoRangeLow, demoRangeHigh)))

	fmt.Fprintf(out, "%s--- 4. Depth of key %d ---%s\n", Info, demoDepthKey, Reset)
	if depth := s.DepthOf(demoDepthKey); depth != avl.NotFound {
		fmt.Fprintf(out, "Key %d is at level %d.\n", demoDepthKey, depth)
	} else {
		fmt.Fprintf(out, "Key %d was not found.\n", demoDepthKey)
	}

	return nil
}

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

package avl

import (
	"math"
	"math/rand/v2"
	"testing"
)

// maxAVLHeight is the classic worst-case height of an AVL tree with n nodes.
func maxAVLHeight(n int) float64 {
	return 1.4405*math.Log2(float64(n+2)) - 0.3277
}

func TestRandomWorkloadKeepsInvariants(t *testing.T) {
	sizes := []int{10, 100, 1000, 4000}

	for _, size := range sizes {
		rng := rand.New(rand.NewPCG(uint64(size), 7))
		tree := New[int]()
		present := make(map[int]bool)

		for op := 0; op < size*3; op++ {
			key := rng.IntN(size)
			if rng.IntN(3) < 2 {
				err := tree.Insert(key)
				if present[key] != (err != nil) {
					t.Fatalf("size %d op %d: Insert(%d) = %v with present=%v", size, op, key, err, present[key])
				}
				present[key] = true
			} else {
				removed := tree.Delete(key)
				if removed != present[key] {
					t.Fatalf("size %d op %d: Delete(%d) = %v with present=%v", size, op, key, removed, present[key])
				}
				delete(present, key)
			}

			if op%50 == 0 || op == size*3-1 {
				if err := tree.Validate(); err != nil {
					t.Fatalf("size %d op %d: %v", size, op, err)
				}
				if h := tree.Height(); float64(h) > maxAVLHeight(tree.Len()) {
					t.Fatalf("size %d op %d: height %d exceeds AVL bound %.2f for %d keys",
						size, op, h, maxAVLHeight(tree.Len()), tree.Len())
				}
			}
		}

		keys := tree.InOrder()
		if len(keys) != len(present) {
			t.Fatalf("size %d: tree holds %d keys, want %d", size, len(keys), len(present))
		}
		for i := 1; i < len(keys); i++ {
			if keys[i-1] >= keys[i] {
				t.Fatalf("size %d: InOrder not strictly ascending at %d: %v >= %v", size, i, keys[i-1], keys[i])
			}
		}
		for key := range present {
			if !tree.Search(key) {
				t.Fatalf("size %d: Search(%d) = false for a stored key", size, key)
			}
		}
	}
}

func TestSequentialInsertStaysShallow(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 1<<12; i++ {
		if err := tree.Insert(i); err != nil {
			t.Fatalf("Insert(%d) returned %v", i, err)
		}
	}
	// ascending inserts build a perfect tree short of the last level
	if tree.Height() != 13 {
		t.Errorf("Height() = %d after 4096 ascending inserts; want 13", tree.Height())
	}
	for i := 0; i < 1<<12; i += 2 {
		tree.Delete(i)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if tree.Len() != 1<<11 {
		t.Errorf("Len() = %d; want %d", tree.Len(), 1<<11)
	}
}

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
	"errors"
	"slices"
	"testing"
)

type avlTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // In-order traversal expectation after operations
	ExpectedPre   []int // Pre-order pins the rotation that fired
}

func TestTreeOperations(t *testing.T) {
	testCases := []avlTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{2, 1, 3},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedPre:   []int{2, 1, 3},
		},
		{
			Name:          "Right-Right Insertion Rotates Left",
			KeysToInsert:  []int{1, 2, 3},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedPre:   []int{2, 1, 3},
		},
		{
			Name:          "Left-Left Insertion Rotates Right",
			KeysToInsert:  []int{3, 2, 1},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedPre:   []int{2, 1, 3},
		},
		{
			Name:          "Left-Right Insertion",
			KeysToInsert:  []int{3, 1, 2},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedPre:   []int{2, 1, 3},
		},
		{
			Name:          "Right-Left Insertion",
			KeysToInsert:  []int{1, 3, 2},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedPre:   []int{2, 1, 3},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []int{3, 2, 4, 1},
			KeysToDelete:  []int{4},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedPre:   []int{2, 1, 3},
		},
		{
			Name:          "Deletion Left-Heavy with Balanced Child",
			InitialKeys:   []int{5, 3, 6, 2, 4},
			KeysToDelete:  []int{6},
			ExpectedOrder: []int{2, 3, 4, 5},
			ExpectedPre:   []int{3, 2, 5, 4},
		},
		{
			Name:          "Deletion Right-Heavy with Balanced Child",
			InitialKeys:   []int{2, 1, 4, 3, 5},
			KeysToDelete:  []int{1},
			ExpectedOrder: []int{2, 3, 4, 5},
			ExpectedPre:   []int{4, 2, 3, 5},
		},
		{
			Name:          "Deletion Left-Right",
			InitialKeys:   []int{5, 2, 6, 3},
			KeysToDelete:  []int{6},
			ExpectedOrder: []int{2, 3, 5},
			ExpectedPre:   []int{3, 2, 5},
		},
		{
			Name:          "Deletion Right-Left",
			InitialKeys:   []int{2, 1, 5, 4},
			KeysToDelete:  []int{1},
			ExpectedOrder: []int{2, 4, 5},
			ExpectedPre:   []int{4, 2, 5},
		},
		{
			Name:          "Two Children Takes Successor",
			InitialKeys:   []int{4, 2, 6, 1, 3, 5, 7},
			KeysToDelete:  []int{4},
			ExpectedOrder: []int{1, 2, 3, 5, 6, 7},
			ExpectedPre:   []int{5, 2, 1, 3, 6, 7},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int{40, 30},
			KeysToInsert:  []int{50, 20},
			KeysToDelete:  []int{30},
			ExpectedOrder: []int{20, 40, 50},
			ExpectedPre:   []int{40, 20, 50},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []int{1, 2, 3},
			KeysToDelete:  []int{2, 1, 3},
			ExpectedOrder: []int{},
			ExpectedPre:   []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range tc.InitialKeys {
				if err := tree.Insert(key); err != nil {
					t.Fatalf("Insert(%d) returned %v", key, err)
				}
			}
			for _, key := range tc.KeysToInsert {
				if err := tree.Insert(key); err != nil {
					t.Fatalf("Insert(%d) returned %v", key, err)
				}
			}
			for _, key := range tc.KeysToDelete {
				if !tree.Delete(key) {
					t.Fatalf("Delete(%d) reported the key missing", key)
				}
			}

			if got := tree.InOrder(); !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("InOrder() = %v; want %v", got, tc.ExpectedOrder)
			}
			if got := tree.PreOrder(); !slices.Equal(got, tc.ExpectedPre) {
				t.Errorf("PreOrder() = %v; want %v", got, tc.ExpectedPre)
			}
			if err := tree.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if tree.Len() != len(tc.ExpectedOrder) {
				t.Errorf("Len() = %d; want %d", tree.Len(), len(tc.ExpectedOrder))
			}
		})
	}
}

// snapshot records every key with its cached height in pre-order.
func snapshot(tree *Tree[int]) [][2]int {
	var out [][2]int
	var visit func(n *node[int])
	visit = func(n *node[int]) {
		if n == nil {
			return
		}
		out = append(out, [2]int{n.key, n.height})
		visit(n.left)
		visit(n.right)
	}
	visit(tree.root)
	return out
}

func TestInsertDuplicateLeavesTreeUnchanged(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{9, 5, 10, 0, 6, 11, -1, 1, 2} {
		if err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%d) returned %v", key, err)
		}
	}
	before := snapshot(tree)
	root := tree.root

	for _, key := range []int{9, 2, -1, 11} {
		err := tree.Insert(key)
		if !errors.Is(err, ErrDuplicateKey) {
			t.Fatalf("Insert(%d) = %v; want ErrDuplicateKey", key, err)
		}
	}

	if tree.root != root {
		t.Errorf("root changed after rejected inserts")
	}
	if after := snapshot(tree); !slices.Equal(after, before) {
		t.Errorf("tree changed after rejected inserts:\nbefore %v\nafter  %v", before, after)
	}
	if tree.Len() != 9 {
		t.Errorf("Len() = %d; want 9", tree.Len())
	}
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{4, 2, 6, 1, 3} {
		if err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%d) returned %v", key, err)
		}
	}
	before := snapshot(tree)

	if tree.Delete(42) {
		t.Errorf("Delete(42) reported a removal")
	}
	once := snapshot(tree)
	if tree.Delete(42) {
		t.Errorf("second Delete(42) reported a removal")
	}
	twice := snapshot(tree)

	if !slices.Equal(before, once) || !slices.Equal(once, twice) {
		t.Errorf("deleting a missing key changed the tree: %v, %v, %v", before, once, twice)
	}
	if tree.Len() != 5 {
		t.Errorf("Len() = %d; want 5", tree.Len())
	}

	var empty Tree[int]
	if empty.Delete(1) {
		t.Errorf("Delete on empty tree reported a removal")
	}
}

func TestRoundTrip(t *testing.T) {
	var tree Tree[string]
	if err := tree.Insert("banana"); err != nil {
		t.Fatalf("Insert returned %v", err)
	}
	if !tree.Search("banana") {
		t.Errorf("Search(banana) = false after insert")
	}
	tree.Delete("banana")
	if tree.Search("banana") {
		t.Errorf("Search(banana) = true after delete")
	}
	if tree.Height() != 0 || tree.Len() != 0 {
		t.Errorf("tree not empty: height %d, len %d", tree.Height(), tree.Len())
	}
}

func TestRotationsUpdateHeights(t *testing.T) {
	// 3 <- 2 <- 1 chained to the left
	leaf := newLeaf(1)
	mid := &node[int]{key: 2, height: 2, left: leaf}
	top := &node[int]{key: 3, height: 3, left: mid}

	got := rotateRight(top)
	if got != mid {
		t.Fatalf("rotateRight returned key %d; want 2", got.key)
	}
	if got.left != leaf || got.right != top {
		t.Errorf("rotateRight produced wrong children")
	}
	if top.height != 1 || mid.height != 2 {
		t.Errorf("heights after rotateRight: top %d mid %d; want 1 and 2", top.height, mid.height)
	}

	back := rotateLeft(got)
	if back != top || top.left != mid || mid.left != leaf {
		t.Errorf("rotateLeft did not undo rotateRight")
	}
	if mid.height != 2 || top.height != 3 {
		t.Errorf("heights after rotateLeft: mid %d top %d; want 2 and 3", mid.height, top.height)
	}
}

func TestHelpersOnAbsentNode(t *testing.T) {
	var n *node[int]
	if height(n) != 0 {
		t.Errorf("height(nil) = %d; want 0", height(n))
	}
	if balanceFactor(n) != 0 {
		t.Errorf("balanceFactor(nil) = %d; want 0", balanceFactor(n))
	}
}

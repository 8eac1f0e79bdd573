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
	"testing"
)

// balancedTree returns 2(1, 3) built through Insert.
func balancedTree(t *testing.T) *Tree[int] {
	t.Helper()
	tree := New[int]()
	for _, key := range []int{2, 1, 3} {
		if err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%d) = %v", key, err)
		}
	}
	return tree
}

func TestValidateDetectsCorruption(t *testing.T) {
	testCases := []struct {
		Name    string
		Corrupt func(tree *Tree[int])
	}{
		{
			Name:    "Stale root height",
			Corrupt: func(tree *Tree[int]) { tree.root.height = 5 },
		},
		{
			Name:    "Stale leaf height",
			Corrupt: func(tree *Tree[int]) { tree.root.left.height = 0 },
		},
		{
			Name: "Swapped children",
			Corrupt: func(tree *Tree[int]) {
				tree.root.left.key, tree.root.right.key = tree.root.right.key, tree.root.left.key
			},
		},
		{
			Name: "Grandchild outside ancestor bound",
			Corrupt: func(tree *Tree[int]) {
				// 4 > 1 locally, but it lives in the root's left subtree
				tree.root.left.right = newLeaf(4)
				updateHeight(tree.root.left)
				updateHeight(tree.root)
				tree.size++
			},
		},
		{
			Name: "Unbalanced chain with correct heights",
			Corrupt: func(tree *Tree[int]) {
				leaf := newLeaf(1)
				mid := &node[int]{key: 2, left: leaf}
				updateHeight(mid)
				top := &node[int]{key: 3, left: mid}
				updateHeight(top)
				tree.root = top
			},
		},
		{
			Name:    "Size larger than node count",
			Corrupt: func(tree *Tree[int]) { tree.size = 7 },
		},
		{
			Name:    "Size smaller than node count",
			Corrupt: func(tree *Tree[int]) { tree.size = 2 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := balancedTree(t)
			if err := tree.Validate(); err != nil {
				t.Fatalf("Validate() before corruption = %v", err)
			}

			tc.Corrupt(tree)

			err := tree.Validate()
			if !errors.Is(err, ErrInvariant) {
				t.Fatalf("Validate() = %v, want error wrapping ErrInvariant", err)
			}
		})
	}
}

func TestValidateEmptyTree(t *testing.T) {
	var tree Tree[int]
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate() on zero tree = %v", err)
	}

	tree.size = 1
	if err := tree.Validate(); !errors.Is(err, ErrInvariant) {
		t.Errorf("Validate() with phantom size = %v, want ErrInvariant", err)
	}
}

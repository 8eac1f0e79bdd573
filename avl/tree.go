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
	"cmp"
	"fmt"
)

// Tree is an AVL tree of unique keys. The zero value is an empty tree ready
// to use. A Tree is not safe for concurrent use; callers that share one
// must serialise access themselves.
type Tree[K cmp.Ordered] struct {
	root *node[K]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Insert adds key to the tree. If key is already present the tree is left
// untouched and an error wrapping ErrDuplicateKey is returned.
func (t *Tree[K]) Insert(key K) error {
	root, err := t.insertRecursive(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	t.size++
	return nil
}

func (t *Tree[K]) insertRecursive(n *node[K], key K) (*node[K], error) {
	if n == nil {
		return newLeaf(key), nil
	}

	var err error
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, err = t.insertRecursive(n.left, key)
	case c > 0:
		n.right, err = t.insertRecursive(n.right, key)
	default:
		return n, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	if err != nil {
		// nothing below changed, unwind without touching heights
		return n, err
	}

	updateHeight(n)

	factor := balanceFactor(n)
	if factor > 1 {
		if cmp.Less(key, n.left.key) {
			return rotateRight(n), nil
		}
		// Left-Right case
		n.left = rotateLeft(n.left)
		return rotateRight(n), nil
	}
	if factor < -1 {
		if cmp.Less(n.right.key, key) {
			return rotateLeft(n), nil
		}
		// Right-Left case
		n.right = rotateRight(n.right)
		return rotateLeft(n), nil
	}

	return n, nil
}

// Delete removes key from the tree and reports whether it was present.
// Deleting a missing key is a no-op.
func (t *Tree[K]) Delete(key K) bool {
	var removed bool
	t.root = t.deleteRecursive(t.root, key, &removed)
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree[K]) deleteRecursive(n *node[K], key K, removed *bool) *node[K] {
	if n == nil {
		return nil // Key not found
	}

	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left = t.deleteRecursive(n.left, key, removed)
	case c > 0:
		n.right = t.deleteRecursive(n.right, key, removed)
	default:
		*removed = true
		// Zero or one child: splice the node out
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Two children: take over the successor's key, then drop the successor
		successor := minNode(n.right)
		n.key = successor.key
		var dropped bool
		n.right = t.deleteRecursive(n.right, successor.key, &dropped)
	}

	updateHeight(n)
	return t.rebalance(n)
}

// rebalance restores the AVL property at n after a deletion below it. The
// rotation is chosen from the balance of the taller child.
func (t *Tree[K]) rebalance(n *node[K]) *node[K] {
	factor := balanceFactor(n)

	// Left-heavy
	if factor > 1 {
		if balanceFactor(n.left) >= 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if factor < -1 {
		if balanceFactor(n.right) <= 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

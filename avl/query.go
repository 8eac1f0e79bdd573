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

import "cmp"

// Search reports whether key is stored in the tree.
func (t *Tree[K]) Search(key K) bool {
	return searchNode(t.root, key) != nil
}

// searchNode is a helper function that traverses the tree recursively.
func searchNode[K cmp.Ordered](n *node[K], key K) *node[K] {
	if n == nil {
		return nil
	}

	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		return searchNode(n.left, key)
	case c > 0:
		return searchNode(n.right, key)
	}
	return n
}

// Min returns the smallest key, or false when the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return minNode(t.root).key, true
}

// Max returns the largest key, or false when the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return maxNode(t.root).key, true
}

// RangeQuery returns, in ascending order, every key k with low <= k <= high.
func (t *Tree[K]) RangeQuery(low, high K) []K {
	results := []K{}
	if cmp.Less(high, low) {
		return results
	}
	rangeSearch(t.root, low, high, &results)
	return results
}

// rangeSearch appends the keys of the subtree rooted at n that fall in
// [low, high], skipping subtrees that cannot hold any.
func rangeSearch[K cmp.Ordered](n *node[K], low, high K, results *[]K) {
	if n == nil {
		return
	}

	// Smaller keys live on the left, only worth visiting past low
	if cmp.Less(low, n.key) {
		rangeSearch(n.left, low, high, results)
	}

	if cmp.Compare(low, n.key) <= 0 && cmp.Compare(n.key, high) <= 0 {
		*results = append(*results, n.key)
	}

	if cmp.Less(n.key, high) {
		rangeSearch(n.right, low, high, results)
	}
}

// DepthOf returns the level of key counting the root as 0, or NotFound.
func (t *Tree[K]) DepthOf(key K) int {
	level := 0
	for n := t.root; n != nil; level++ {
		switch c := cmp.Compare(key, n.key); {
		case c == 0:
			return level
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return NotFound
}

// InOrder returns every key in ascending order.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0, t.size)
	inOrderTraversal(t.root, &keys)
	return keys
}

// PreOrder returns every key, each node before its subtrees.
func (t *Tree[K]) PreOrder() []K {
	keys := make([]K, 0, t.size)
	preOrderTraversal(t.root, &keys)
	return keys
}

// PostOrder returns every key, each node after its subtrees.
func (t *Tree[K]) PostOrder() []K {
	keys := make([]K, 0, t.size)
	postOrderTraversal(t.root, &keys)
	return keys
}

func inOrderTraversal[K any](n *node[K], result *[]K) {
	if n == nil {
		return
	}
	inOrderTraversal(n.left, result)
	*result = append(*result, n.key)
	inOrderTraversal(n.right, result)
}

func preOrderTraversal[K any](n *node[K], result *[]K) {
	if n == nil {
		return
	}
	*result = append(*result, n.key)
	preOrderTraversal(n.left, result)
	preOrderTraversal(n.right, result)
}

func postOrderTraversal[K any](n *node[K], result *[]K) {
	if n == nil {
		return
	}
	postOrderTraversal(n.left, result)
	postOrderTraversal(n.right, result)
	*result = append(*result, n.key)
}

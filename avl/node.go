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

type node[K any] struct {
	key    K
	height int
	left   *node[K]
	right  *node[K]
}

func newLeaf[K any](key K) *node[K] {
	return &node[K]{key: key, height: 1}
}

func height[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[K any](n *node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// minNode returns the leftmost node of the subtree rooted at n.
func minNode[K any](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K any](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// rotateRight lifts the left child of n into its place and returns it.
// n must have a left child.
func rotateRight[K any](n *node[K]) *node[K] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	// n now hangs below pivot, so its height has to be settled first
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rotateLeft lifts the right child of n into its place and returns it.
// n must have a right child.
func rotateLeft[K any](n *node[K]) *node[K] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

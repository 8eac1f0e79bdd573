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

// Edge describes one node for an external renderer: its pre-order
// sequence number, its key and the sequence number of its parent.
type Edge[K any] struct {
	ID        int
	Key       K
	ParentID  int
	HasParent bool
}

// Walk calls fn once per node in pre-order. IDs are assigned in visiting
// order starting at 0, so the root is always ID 0 with HasParent false.
func (t *Tree[K]) Walk(fn func(Edge[K])) {
	next := 0
	var visit func(n *node[K], parent int, hasParent bool)
	visit = func(n *node[K], parent int, hasParent bool) {
		if n == nil {
			return
		}
		id := next
		next++
		fn(Edge[K]{ID: id, Key: n.key, ParentID: parent, HasParent: hasParent})
		visit(n.left, id, true)
		visit(n.right, id, true)
	}
	visit(t.root, 0, false)
}

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

// Validate checks ordering, balance, cached heights and the key count of
// the whole tree. A non-nil result wraps ErrInvariant and always means a
// bug in this package.
func (t *Tree[K]) Validate() error {
	count, err := validateNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size is %d but tree holds %d keys", ErrInvariant, t.size, count)
	}
	return nil
}

// validateNode checks the subtree rooted at n, whose keys must lie strictly
// between the optional bounds lo and hi, and returns its node count.
func validateNode[K cmp.Ordered](n *node[K], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than ancestor %v", ErrInvariant, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than ancestor %v", ErrInvariant, n.key, *hi)
	}

	key := n.key
	left, err := validateNode(n.left, lo, &key)
	if err != nil {
		return 0, err
	}
	right, err := validateNode(n.right, &key, hi)
	if err != nil {
		return 0, err
	}

	if want := max(height(n.left), height(n.right)) + 1; n.height != want {
		return 0, fmt.Errorf("%w: key %v caches height %d, want %d", ErrInvariant, n.key, n.height, want)
	}
	if bf := balanceFactor(n); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: key %v has balance factor %d", ErrInvariant, n.key, bf)
	}

	return left + right + 1, nil
}

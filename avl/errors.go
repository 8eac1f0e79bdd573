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

// Package avl implements a self-balancing binary search tree keyed by any
// ordered type.
package avl

import "errors"

var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	ErrDuplicateKey = errors.New("key already exists")

	// ErrInvariant is returned by Validate when the tree shape is broken.
	ErrInvariant = errors.New("tree invariant violated")
)

// NotFound is the depth reported for a key that is not in the tree.
const NotFound = -1

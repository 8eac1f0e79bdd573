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
	"encoding/binary"
	"log"
	"sync"

	"github.com/cybrota/avlcore/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// Session owns one integer tree and serialises every access to it. It also
// remembers every key ever inserted in a bloom filter, so lookups for keys
// that were never seen skip the descent entirely.
type Session struct {
	mu        sync.Mutex
	tree      *avl.Tree[int]
	seen      *bloom.BloomFilter
	snapshots *cache.Cache
	revision  uint64
}

func NewSession(config *Config) *Session {
	return &Session{
		tree:      avl.New[int](),
		seen:      bloom.New(config.Session.BloomSize, config.Session.BloomHashes),
		snapshots: NewSnapshotCache(config.Render.CacheTTL),
	}
}

func bloomKey(key int) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(key))
}

// mayContain is false only for keys that were never inserted.
func (s *Session) mayContain(key int) bool {
	return s.seen.Test(bloomKey(key))
}

// Insert adds key. A duplicate is returned as an error wrapping
// avl.ErrDuplicateKey and leaves the tree as it was.
func (s *Session) Insert(key int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tree.Insert(key); err != nil {
		return err
	}
	s.seen.Add(bloomKey(key))
	s.revision++
	log.Printf("inserted %d (size %d, height %d)", key, s.tree.Len(), s.tree.Height())
	return nil
}

// Delete removes key and reports whether it was present. A missing key is
// not an error.
func (s *Session) Delete(key int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mayContain(key) {
		return false
	}
	if !s.tree.Delete(key) {
		return false
	}
	s.revision++
	log.Printf("deleted %d (size %d, height %d)", key, s.tree.Len(), s.tree.Height())
	return true
}

func (s *Session) Search(key int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mayContain(key) {
		return false
	}
	return s.tree.Search(key)
}

func (s *Session) DepthOf(key int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mayContain(key) {
		return avl.NotFound
	}
	return s.tree.DepthOf(key)
}

func (s *Session) RangeQuery(low, high int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.RangeQuery(low, high)
}

func (s *Session) InOrder() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.InOrder()
}

func (s *Session) PreOrder() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.PreOrder()
}

func (s *Session) PostOrder() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.PostOrder()
}

func (s *Session) Min() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Min()
}

func (s *Session) Max() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Max()
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Len()
}

func (s *Session) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Height()
}

func (s *Session) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Validate()
}

// Revision counts successful mutations.
func (s *Session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// DOT returns the Graphviz source of the current tree, reusing the cached
// rendering while the revision is unchanged.
func (s *Session) DOT() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dot, ok := GetSnapshot(s.snapshots, "dot", s.revision); ok {
		return dot
	}
	dot := renderDOT(s.tree)
	CacheSnapshot(s.snapshots, "dot", s.revision, dot)
	return dot
}

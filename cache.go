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
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired snapshots every 5 minutes
	snapshotCacheCleanup = 5 * time.Minute
)

// NewSnapshotCache creates a cache for rendered tree snapshots. Entries are
// keyed by tree revision, so a mutation never serves a stale rendering.
func NewSnapshotCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, snapshotCacheCleanup)
}

func snapshotKey(kind string, revision uint64) string {
	return kind + ":" + strconv.FormatUint(revision, 10)
}

func CacheSnapshot(c *cache.Cache, kind string, revision uint64, rendered string) {
	c.Set(snapshotKey(kind, revision), rendered, cache.DefaultExpiration)
}

func GetSnapshot(c *cache.Cache, kind string, revision uint64) (string, bool) {
	val, ok := c.Get(snapshotKey(kind, revision))
	if !ok {
		return "", false
	}
	return val.(string), true
}

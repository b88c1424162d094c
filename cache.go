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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered outlines live for 30 minutes unless configured otherwise
	outlineCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	outlineCacheCleanup = 5 * time.Minute
)

// NewOutlineCache creates a cache of rendered outlines keyed by tree fingerprint.
// A non-positive ttl selects the default expiration.
func NewOutlineCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		ttl = outlineCacheExpiration
	}
	return cache.New(ttl, outlineCacheCleanup)
}

func CacheOutline(c *cache.Cache, fingerprint string, outline string) {
	c.SetDefault(fingerprint, outline)
}

func GetOutline(c *cache.Cache, fingerprint string) (string, bool) {
	val, ok := c.Get(fingerprint)
	if !ok {
		return "", false
	}
	return val.(string), true
}

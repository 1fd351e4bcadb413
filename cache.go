// Copyright 2026 Dolthub, Inc.
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

package kaleidoscope

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/dolthub/go-kaleidoscope/ast"
)

type cacheEntry struct {
	src   string
	nodes []ast.Node
}

// parseCache keeps the trees of recently parsed sources. Trees are never
// modified once built, so they are shared between callers.
type parseCache struct {
	cache *lru.Cache
}

func newParseCache(size int) (*parseCache, error) {
	if size < 0 {
		return nil, nil
	}

	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &parseCache{c}, nil
}

func cacheKey(src string) uint64 {
	return xxhash.Sum64String(src)
}

func (c *parseCache) Get(src string) ([]ast.Node, bool) {
	if c == nil {
		return nil, false
	}

	v, ok := c.cache.Get(cacheKey(src))
	if !ok {
		return nil, false
	}

	entry := v.(cacheEntry)
	if entry.src != src {
		return nil, false
	}
	return copyNodes(entry.nodes), true
}

func (c *parseCache) Put(src string, nodes []ast.Node) {
	if c == nil {
		return
	}
	c.cache.Add(cacheKey(src), cacheEntry{src, copyNodes(nodes)})
}

func copyNodes(nodes []ast.Node) []ast.Node {
	if nodes == nil {
		return nil
	}
	out := make([]ast.Node, len(nodes))
	copy(out, nodes)
	return out
}

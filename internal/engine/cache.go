//
// cheapgo - bitboard chess position analyzer
//
// MIT License
//
// Copyright (c) 2026 cheapgo contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package engine

import (
	"github.com/negamaxgo/cheapgo/internal/transpositiontable"
	"github.com/negamaxgo/cheapgo/internal/types"
)

// CacheProbe is one node's lookup-or-seed result: HitCheck reports
// whether it can be used as-is, WriteBack stores this node's final
// score back into it once the node finishes.
type CacheProbe interface {
	HitCheck(side types.Side, remainingPlies int) (types.Score, bool)
	WriteBack(remainingPlies int, score types.Score)
}

// Cache seeds or reuses a transposition entry for a hash and remaining
// search depth.
type Cache interface {
	Insert(hash types.Hash, remainingPlies int) CacheProbe
}

// RealCache wraps a transpositiontable.Table; its InsertInfo already
// satisfies CacheProbe.
type RealCache struct {
	table *transpositiontable.Table
}

// NewRealCache wraps an existing table so several Controllers can share
// one transposition table across a search.
func NewRealCache(t *transpositiontable.Table) *RealCache {
	return &RealCache{table: t}
}

func (c *RealCache) Insert(hash types.Hash, remainingPlies int) CacheProbe {
	return c.table.Insert(hash, remainingPlies)
}

// NoopCache is the zero-cost aspect for searches that never cache
// (e.g. the resolver's legality-only one-ply searches).
type NoopCache struct{}

func (NoopCache) Insert(types.Hash, int) CacheProbe { return noopCacheProbe{} }

type noopCacheProbe struct{}

func (noopCacheProbe) HitCheck(types.Side, int) (types.Score, bool) { return 0, false }
func (noopCacheProbe) WriteBack(int, types.Score)                   {}

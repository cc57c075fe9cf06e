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
	"github.com/negamaxgo/cheapgo/internal/board"
)

// Controller bundles one search's mutable board and its four pluggable
// aspects, generic over which Pruning/Hasher/Material/Cache
// implementation is wired in - the same role control.hh's
// max_ply_cutoff<Pruning,HashController,MaterialController,Cache>
// template plays upstream, minus the template, plus Go's type
// parameters.
type Controller[P Pruning, H Hasher, M Material, C Cache] struct {
	Board *board.Board

	// MaxPlies bounds search depth: AnalyzePosition returns a leaf
	// material score once Context.HalfmoveCount reaches rootHalfmove +
	// MaxPlies.
	MaxPlies int

	Pruning  P
	Hasher   H
	Material M
	Cache    C

	rootHalfmove int
}

// NewController seeds a Controller for a search rooted at the given
// board, context and depth bound. The aspects are supplied directly so
// callers can mix Real and Noop implementations freely (a legality-only
// search wants NoopHasher/NoopMaterial/NoopCache with a real Minimax, for
// instance).
func NewController[P Pruning, H Hasher, M Material, C Cache](b *board.Board, ctx board.Context, maxPlies int, pruning P, hasher H, material M, cache C) *Controller[P, H, M, C] {
	return &Controller[P, H, M, C]{
		Board:        b,
		MaxPlies:     maxPlies,
		Pruning:      pruning,
		Hasher:       hasher,
		Material:     material,
		Cache:        cache,
		rootHalfmove: ctx.HalfmoveCount,
	}
}

// AtDepthLimit reports whether ctx has reached this controller's ply
// budget: the point where AnalyzePosition must stop recursing and
// report the static material score as a leaf.
func (c *Controller[P, H, M, C]) AtDepthLimit(ctx board.Context) bool {
	return ctx.HalfmoveCount-c.rootHalfmove >= c.MaxPlies
}

// leafScore seeds Pruning with the static material evaluation; it is
// the tail of AnalyzePosition's depth-limit exit.
func leafScore[P Pruning, H Hasher, M Material, C Cache](c *Controller[P, H, M, C]) {
	c.Pruning.SetScore(c.Material.Material())
}

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

import "github.com/negamaxgo/cheapgo/internal/types"

// Pruning picks which candidate move a node keeps and, for AlphaBeta,
// decides when the remaining candidates can be skipped outright.
//
// EnterChild is opened by the node enumerating candidate moves, right
// before recursing into the position after one candidate (where
// childSide is to move); enclosingSide is always childSide.Other(). On
// Close, the guard folds the child subtree's resulting Score into the
// enclosing node's own running best using enclosingSide's preference.
type Pruning interface {
	Score() types.Score
	SetScore(types.Score)
	EnterChild(childSide types.Side) PruningGuard
	Cutoff(childSide types.Side) bool
}

// PruningGuard closes one EnterChild scope.
type PruningGuard interface {
	Close()
}

// Minimax keeps the best score among a node's candidates with no
// short-circuiting: Cutoff never fires.
type Minimax struct {
	score types.Score
}

// NewMinimax seeds score at the sentinel a terminal check at the root
// would need, matching the convention every EnterChild call below
// re-establishes one level down: "no child has reported a score yet,
// from the perspective of whoever is about to move".
func NewMinimax(rootSide types.Side) *Minimax {
	return &Minimax{score: types.NoValidMoveFor(rootSide)}
}

func (m *Minimax) Score() types.Score     { return m.score }
func (m *Minimax) SetScore(s types.Score) { m.score = s }

type minimaxGuard struct {
	m             *Minimax
	old           types.Score
	enclosingSide types.Side
}

func (m *Minimax) EnterChild(childSide types.Side) PruningGuard {
	enclosing := childSide.Other()
	g := &minimaxGuard{m: m, old: m.score, enclosingSide: enclosing}
	m.score = types.NoValidMoveFor(childSide)
	return g
}

func (g *minimaxGuard) Close() {
	g.m.score = types.BestFor(g.enclosingSide, g.old, g.m.score)
}

func (m *Minimax) Cutoff(types.Side) bool { return false }

// AlphaBeta narrows a [alpha, beta] window as the search progresses and
// reports Cutoff once the window has closed, letting RecurseWithCutoff
// stop enumerating a node's remaining candidates.
//
// The upstream source's scoped_score<alphabeta,S> and cutoff<S>() both
// instantiate S as the child's own side (the same S recurse_with_cutoff
// recurses with), then apply best_for<S>/less_equal<S> directly - which
// picks the *child's* preference for a decision that belongs to the
// *enclosing* node. That S/other(S) swap is one of the places this
// spec's "two parallel, inconsistent versions" warning points at; the
// formulas below apply best_for/less_equal to enclosingSide instead,
// the only choice that is a sound minimax (see DESIGN.md).
type AlphaBeta struct {
	alpha, score, beta types.Score
}

// NewAlphaBeta opens the full window and seeds score the same way
// NewMinimax does.
func NewAlphaBeta(rootSide types.Side) *AlphaBeta {
	return &AlphaBeta{
		alpha: types.NoValidMoveFor(types.White),
		score: types.NoValidMoveFor(rootSide),
		beta:  types.NoValidMoveFor(types.Black),
	}
}

func (ab *AlphaBeta) Score() types.Score     { return ab.score }
func (ab *AlphaBeta) SetScore(s types.Score) { ab.score = s }

func (ab *AlphaBeta) threshold(s types.Side) *types.Score {
	if s == types.White {
		return &ab.alpha
	}
	return &ab.beta
}

type alphaBetaGuard struct {
	ab                                         *AlphaBeta
	enclosingSide, childSide                   types.Side
	oldScore, oldEnclosingThreshold, oldChildThreshold types.Score
}

func (ab *AlphaBeta) EnterChild(childSide types.Side) PruningGuard {
	enclosing := childSide.Other()
	g := &alphaBetaGuard{
		ab:                   ab,
		enclosingSide:        enclosing,
		childSide:            childSide,
		oldScore:             ab.score,
		oldEnclosingThreshold: *ab.threshold(enclosing),
		oldChildThreshold:    *ab.threshold(childSide),
	}
	ab.score = types.NoValidMoveFor(childSide)
	return g
}

func (g *alphaBetaGuard) Close() {
	ab := g.ab
	ab.score = types.BestFor(g.enclosingSide, g.oldScore, ab.score)
	*ab.threshold(g.enclosingSide) = types.BestFor(g.enclosingSide, g.oldEnclosingThreshold, ab.score)
	*ab.threshold(g.childSide) = g.oldChildThreshold
}

// Cutoff reports whether the enclosing side (childSide.Other()) can
// stop exploring its remaining candidates: the child's own inherited
// threshold has already been met or beaten by the enclosing side's
// freshly updated running score.
func (ab *AlphaBeta) Cutoff(childSide types.Side) bool {
	enclosing := childSide.Other()
	return types.LessEqualFor(enclosing, *ab.threshold(childSide), ab.score)
}

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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/negamaxgo/cheapgo/internal/board"
	"github.com/negamaxgo/cheapgo/internal/types"
)

// countingPruning counts how many times EnterChild fires, one per legal
// candidate the enclosing node actually recurses into; it never cuts off
// or tracks a real score, so wrapping it around a one-ply search turns
// the recursion into a legal-move counter.
type countingPruning struct{ count int }

func (p *countingPruning) Score() types.Score     { return 0 }
func (p *countingPruning) SetScore(types.Score)   {}
func (p *countingPruning) Cutoff(types.Side) bool { return false }

type noopGuard struct{}

func (noopGuard) Close() {}

func (p *countingPruning) EnterChild(types.Side) PruningGuard {
	p.count++
	return noopGuard{}
}

func TestInitialPositionHasTwentyLegalMoves(t *testing.T) {
	b := board.InitialBoard()
	ctx := board.StartContext
	pruning := &countingPruning{}
	ctrl := NewController(&b, ctx, 1, pruning, NoopHasher{}, NoopMaterial{}, NoopCache{})

	ScorePosition(ctrl, ctx)

	assert.Equal(t, 20, pruning.count, "8 single pushes + 8 double pushes + 4 knight moves, nothing else can move")
}

func TestAtDepthLimit(t *testing.T) {
	b := board.InitialBoard()
	ctx := board.StartContext
	ctx.HalfmoveCount = 4
	ctrl := NewController(&b, ctx, 2, NewMinimax(types.White), NoopHasher{}, NoopMaterial{}, NoopCache{})

	assert.False(t, ctrl.AtDepthLimit(ctx))

	deeper := ctx
	deeper.HalfmoveCount = 6
	assert.True(t, ctrl.AtDepthLimit(deeper))
}

// TestCheckmateDetection is a back-rank mate: the rook on a8 sweeps the
// whole 8th rank, the black king's own pawns block every other flight
// square, and nothing can interpose or capture.
func TestCheckmateDetection(t *testing.T) {
	var b board.Board
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.White][types.Rook] = types.SqA8.Bb()
	b[types.Black][types.King] = types.SqG8.Bb()
	b[types.Black][types.Pawn] = types.SqF7.Bb() | types.SqG7.Bb() | types.SqH7.Bb()

	ctx := board.StartContext
	ctx.CastlingRights = types.AllCastlingRights
	ctx.HalfmoveCount = 1 // black to move, into the position it is already mated in

	ctrl := NewController(&b, ctx, 1, NewMinimax(types.Black), NoopHasher{}, NoopMaterial{}, NoopCache{})
	score := ScorePosition(ctrl, ctx)

	assert.Equal(t, types.CheckmateFor(types.White), score)
}

// TestStalemateDetection is the textbook minimal stalemate: the lone
// black king on h8 has no legal move (g8 and g7 are covered by the white
// king on f7, h7 by the pawn on g6) and is not itself in check.
func TestStalemateDetection(t *testing.T) {
	var b board.Board
	b[types.White][types.King] = types.SqF7.Bb()
	b[types.White][types.Pawn] = types.SqG6.Bb()
	b[types.Black][types.King] = types.SqH8.Bb()

	ctx := board.StartContext
	ctx.CastlingRights = types.AllCastlingRights
	ctx.HalfmoveCount = 1 // black to move

	ctrl := NewController(&b, ctx, 1, NewMinimax(types.Black), NoopHasher{}, NoopMaterial{}, NoopCache{})
	score := ScorePosition(ctrl, ctx)

	assert.Equal(t, types.StalemateFor(types.Black), score)
}

// TestMinimaxAlphaBetaAgree checks the soundness fix recorded in
// DESIGN.md: AlphaBeta prunes branches Minimax would still visit, but
// over the same tree the two must settle on the same game-theoretic
// value.
func TestMinimaxAlphaBetaAgree(t *testing.T) {
	const plies = 2

	bMinimax := board.InitialBoard()
	ctx := board.StartContext
	minimaxCtrl := NewController(&bMinimax, ctx, plies, NewMinimax(types.White), NoopHasher{}, NewRealMaterial(&bMinimax), NoopCache{})
	minimaxScore := ScorePosition(minimaxCtrl, ctx)

	bAlphaBeta := board.InitialBoard()
	alphaBetaCtrl := NewController(&bAlphaBeta, ctx, plies, NewAlphaBeta(types.White), NoopHasher{}, NewRealMaterial(&bAlphaBeta), NoopCache{})
	alphaBetaScore := ScorePosition(alphaBetaCtrl, ctx)

	assert.Equal(t, minimaxScore, alphaBetaScore)
}

// TestRealHasherMatchesFullHashAfterMove exercises RealHasher's
// incremental maintenance through the exact sequence applyAndRecurse
// drives for a double pawn push (piece move, ep-target change, turn
// flip), then checks the running value against a from-scratch FullHash
// recompute, and that undoing the closers in reverse order restores it.
func TestRealHasherMatchesFullHashAfterMove(t *testing.T) {
	b := board.InitialBoard()
	ctx := board.StartContext
	h := NewRealHasher(&b, types.White, ctx)
	assert.Equal(t, FullHash(&b, types.White, ctx), h.Hash())

	origin, destination := types.SqE2.Bb(), types.SqE4.Bb()
	g := ApplyBasicMove(&b, types.White, types.Pawn, origin|destination)
	closeMove := h.EnterMove(types.White, types.Pawn, b[types.White][types.Pawn], origin|destination)
	closeOldEp := h.EnterEpChange(ctx.EpInfo)
	newEp := types.SqE3.Bb()
	closeNewEp := h.EnterEpChange(newEp)
	closeTurn := h.EnterTurn()

	childCtx := ctx
	childCtx.HalfmoveCount = 1
	childCtx.EpInfo = newEp
	assert.Equal(t, FullHash(&b, types.Black, childCtx), h.Hash())

	closeTurn()
	closeNewEp()
	closeOldEp()
	closeMove()
	g.Close()

	assert.Equal(t, FullHash(&b, types.White, ctx), h.Hash(), "unwinding in reverse restores the original hash")
}

// TestRealMaterialMatchesFromScratchAfterCapture exercises RealMaterial
// through a capture the way applyAndRecurse drives it, checked against
// materialOf's from-scratch board scan.
func TestRealMaterialMatchesFromScratchAfterCapture(t *testing.T) {
	var b board.Board
	b[types.White][types.Pawn] = types.SqE4.Bb()
	b[types.Black][types.Pawn] = types.SqD5.Bb()
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.Black][types.King] = types.SqE8.Bb()

	m := NewRealMaterial(&b)
	assert.Equal(t, materialOf(&b), m.Material())

	g := ApplyCapture(&b, types.White, types.Pawn, types.SqE4.Bb(), types.SqD5.Bb(), types.Black, types.Pawn)
	closeDelta := m.EnterDelta(CaptureDelta(types.Black, types.Pawn))
	assert.Equal(t, materialOf(&b), m.Material())
	assert.Equal(t, types.Score(1), m.Material(), "white is up the captured black pawn")

	closeDelta()
	g.Close()
	assert.Equal(t, materialOf(&b), m.Material())
	assert.Zero(t, m.Material())
}

func TestPieceWeightSignByside(t *testing.T) {
	assert.Equal(t, types.Score(1), PieceWeight(types.White, types.Pawn))
	assert.Equal(t, types.Score(-1), PieceWeight(types.Black, types.Pawn))
	assert.Equal(t, types.Score(9), PieceWeight(types.White, types.Queen))
	assert.Equal(t, types.Score(-9), PieceWeight(types.Black, types.Queen))
}

func TestCaptureDeltaIsCapturedSidesOwnWeight(t *testing.T) {
	assert.Equal(t, types.Score(5), CaptureDelta(types.White, types.Rook))
	assert.Equal(t, types.Score(-5), CaptureDelta(types.Black, types.Rook))
}

func TestPromotionDeltaNetsPawnAgainstPromotedPiece(t *testing.T) {
	assert.Equal(t, types.Score(-(9 - 1)), PromotionDelta(types.White, types.Queen))
	assert.Equal(t, types.Score(9-1), PromotionDelta(types.Black, types.Queen))
}

func TestRevokedByKingMoveForfeitsBothRights(t *testing.T) {
	got := RevokedBy(types.White, types.King, types.SqE1.Bb())
	assert.Equal(t, types.WhiteShort|types.WhiteLong, got)
}

func TestRevokedByRookMoveForfeitsOnlyItsOwnSide(t *testing.T) {
	assert.Equal(t, types.WhiteLong, RevokedBy(types.White, types.Rook, types.SqA1.Bb()))
	assert.Equal(t, types.WhiteShort, RevokedBy(types.White, types.Rook, types.SqH1.Bb()))
	assert.Equal(t, types.NoCastlingRights, RevokedBy(types.White, types.Rook, types.SqD1.Bb()), "a rook not on its home square forfeits nothing")
}

func TestRevokedByCaptureOnRookHomeSquare(t *testing.T) {
	got := RevokedByCapture(types.Black, types.Rook, types.SqA8.Bb())
	assert.Equal(t, types.BlackLong, got)

	assert.Equal(t, types.NoCastlingRights, RevokedByCapture(types.Black, types.Pawn, types.SqA8.Bb()), "only a captured rook revokes a right")
}

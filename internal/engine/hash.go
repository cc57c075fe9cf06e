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

// Package engine is the negamax search: the four pluggable aspects
// (Hasher, Material, Pruning, Cache), the Controller that bundles them,
// and the AnalyzePosition/ScorePosition recursion that walks the move
// tree. Nothing here is a Zobrist table - hashing uses a bitmixer over
// each piece kind's whole bitboard, incrementally maintained the same
// way material and pruning state are.
package engine

import (
	"github.com/negamaxgo/cheapgo/internal/board"
	"github.com/negamaxgo/cheapgo/internal/types"
)

// bitMixer is Murmur3's 64-bit finalizer, used in place of a Zobrist
// random table: one mixing step replaces one table lookup.
func bitMixer(p uint64) uint64 {
	p ^= p >> 33
	p *= 0xFF51AFD7ED558CCD
	p ^= p >> 33
	p *= 0xC4CEB9FE1A85EC53
	p ^= p >> 33
	return p
}

const (
	col0 uint64 = 0x0101010101010101
	row0 uint64 = 0xFF
)

// premixSlot spreads an index 0..7 across two widely-separated columns,
// giving the bitmixer input that stays distinguishable across slots.
func premixSlot(pm uint8) uint64 {
	return (col0 | col0<<4) << pm
}

// premixSide spreads a side across four alternating rows, shifted into
// the side's own byte lane.
func premixSide(s types.Side) uint64 {
	return (row0 | row0<<16 | row0<<32 | row0<<48) << (uint64(s) * 8)
}

// hhashPiece hashes one side+kind's bitboard value.
func hhashPiece(s types.Side, pt types.PieceType, bb uint64) uint64 {
	return bitMixer(premixSide(s) ^ premixSlot(uint8(pt)) ^ bb)
}

// hhashSide hashes every piece kind belonging to s.
func hhashSide(s types.Side, bs board.Side) uint64 {
	var r uint64
	for pt := types.Pawn; int(pt) < types.PieceTypeCount; pt++ {
		r ^= hhashPiece(s, pt, uint64(bs[pt]))
	}
	return r
}

// fullHashBoard is the from-scratch piece-placement hash, ground truth
// for the incrementally-maintained RealHasher and for tests that check
// the incremental hash never drifts.
func fullHashBoard(b *board.Board) uint64 {
	return hhashSide(types.White, b[types.White]) ^ hhashSide(types.Black, b[types.Black])
}

// castlingSlot and epSlot are the two magic premix slots hash.hh reserves
// for castling rights and the en-passant target, past the six piece
// kinds (0..5).
const (
	castlingSlot uint8 = 6
	epSlot       uint8 = 7
)

func hhashCastling(mask uint64) uint64 {
	return bitMixer(premixSlot(castlingSlot) ^ mask)
}

func hhashEp(epInfo uint64) uint64 {
	return bitMixer(premixSlot(epSlot) ^ epInfo)
}

func hhashTurn(s types.Side) uint64 {
	return bitMixer(premixSide(s))
}

// hhashMakeTurn is the hash delta applied when flipping the side to
// move, XORing both sides' turn hash in one step.
func hhashMakeTurn() uint64 {
	return hhashTurn(types.White) ^ hhashTurn(types.Black)
}

// hhashEpChange0 is the delta between the current en-passant target and
// "no en-passant target", zero when there already wasn't one.
func hhashEpChange0(epInfo uint64) uint64 {
	if epInfo == 0 {
		return 0
	}
	return hhashEp(epInfo) ^ hhashEp(0)
}

// hhashCastlingChange is the delta between two castling-rights masks,
// zero when nothing changed.
func hhashCastlingChange(cm1, cm2 uint64) uint64 {
	if cm1 == cm2 {
		return 0
	}
	return hhashCastling(cm1) ^ hhashCastling(cm2)
}

func hhashContext(ctx board.Context) uint64 {
	return hhashEp(uint64(ctx.EpInfo)) ^ hhashCastling(uint64(ctx.CastlingRights))
}

// FullHash computes the complete, non-incremental hash of a position:
// board placement, side to move and context. It is never used in the
// search hot path - RealHasher maintains the same value incrementally -
// but is the reference a test can recompute and compare against.
func FullHash(b *board.Board, turn types.Side, ctx board.Context) types.Hash {
	return types.Hash(fullHashBoard(b) ^ hhashTurn(turn) ^ hhashContext(ctx))
}

var noop = func() {}

// Hasher incrementally maintains a position hash across a recursion:
// each Enter* method XORs in a delta and returns a closer that XORs it
// back out, the same flat-restore scoped_hash uses (not a re-XOR on
// close, unlike the board mutation guards below, since a hash delta is
// its own inverse only if nothing else touched the hash in between).
type Hasher interface {
	Hash() types.Hash
	EnterMove(side types.Side, pt types.PieceType, newVal, mask types.Bitboard) (closer func())
	EnterTurn() (closer func())
	EnterEpChange(oldEp types.Bitboard) (closer func())
	EnterCastlingChange(old, neu types.CastlingRights) (closer func())
}

// RealHasher maintains the incremental hash described above.
type RealHasher struct {
	hash uint64
}

// NewRealHasher seeds the hash from a full, non-incremental computation.
func NewRealHasher(b *board.Board, turn types.Side, ctx board.Context) *RealHasher {
	return &RealHasher{hash: uint64(FullHash(b, turn, ctx))}
}

func (h *RealHasher) Hash() types.Hash { return types.Hash(h.hash) }

func (h *RealHasher) xor(delta uint64) func() {
	old := h.hash
	h.hash ^= delta
	return func() { h.hash = old }
}

// EnterMove hashes out the piece's value before mask was applied and
// hashes in its value after, given newVal already has mask applied.
func (h *RealHasher) EnterMove(side types.Side, pt types.PieceType, newVal, mask types.Bitboard) func() {
	oldVal := uint64(newVal ^ mask)
	delta := hhashPiece(side, pt, oldVal) ^ hhashPiece(side, pt, uint64(newVal))
	return h.xor(delta)
}

func (h *RealHasher) EnterTurn() func() {
	return h.xor(hhashMakeTurn())
}

func (h *RealHasher) EnterEpChange(oldEp types.Bitboard) func() {
	return h.xor(hhashEpChange0(uint64(oldEp)))
}

func (h *RealHasher) EnterCastlingChange(old, neu types.CastlingRights) func() {
	return h.xor(hhashCastlingChange(uint64(old), uint64(neu)))
}

// NoopHasher is the zero-cost aspect used when the search has no need
// of position hashing (e.g. the resolver's one-ply legality checks).
type NoopHasher struct{}

func (NoopHasher) Hash() types.Hash { return 0 }
func (NoopHasher) EnterMove(types.Side, types.PieceType, types.Bitboard, types.Bitboard) func() {
	return noop
}
func (NoopHasher) EnterTurn() func()                                       { return noop }
func (NoopHasher) EnterEpChange(types.Bitboard) func()                     { return noop }
func (NoopHasher) EnterCastlingChange(types.CastlingRights, types.CastlingRights) func() {
	return noop
}

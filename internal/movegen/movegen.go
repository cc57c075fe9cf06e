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

// Package movegen produces, for any piece on any square with any set of
// obstacles, the set of destination squares it could move to: sliding
// pieces via bitops.SlidingRange, knight/king via a precomputed band
// table, pawns split by push/capture/en-passant, and castling through a
// descriptor rather than a generator.
package movegen

import (
	"github.com/negamaxgo/cheapgo/internal/bitops"
	"github.com/negamaxgo/cheapgo/internal/types"
)

// Generator computes a piece's destination bitboard given its origin
// (a single-bit Bitboard) and the board's combined occupancy. The
// result may still include squares occupied by the mover's own side;
// callers intersect with ^ownPieces to get pseudo-legal moves.
type Generator func(origin, obstacles types.Bitboard) types.Bitboard

// Bishop returns every square reachable along both diagonals through
// origin, stopping at and including the first obstacle each way.
func Bishop(origin, obstacles types.Bitboard) types.Bitboard {
	s, o := uint64(origin), uint64(obstacles)
	return types.Bitboard(bitops.SlidingRange(s, bitops.DiagDelta(s), o) |
		bitops.SlidingRange(s, bitops.DiagSum(s), o))
}

// Rook returns every square reachable along origin's rank and file.
func Rook(origin, obstacles types.Bitboard) types.Bitboard {
	s, o := uint64(origin), uint64(obstacles)
	return types.Bitboard(bitops.SlidingRange(s, bitops.Row(s), o) |
		bitops.SlidingRange(s, bitops.Column(s), o))
}

// Queen is the union of Bishop and Rook reach.
func Queen(origin, obstacles types.Bitboard) types.Bitboard {
	return Bishop(origin, obstacles) | Rook(origin, obstacles)
}

// knightMoves and kingMoves are precomputed at init(), the same
// precompute-a-table-once technique the teacher uses for sqBb/movesRank.
var (
	knightMoves [64]types.Bitboard
	kingMoves   [64]types.Bitboard
)

func init() {
	for sq := 0; sq < 64; sq++ {
		s := uint64(1) << uint(sq)
		cross := bitops.Row(s) | bitops.Column(s) | bitops.DiagDelta(s) | bitops.DiagSum(s)
		knightMoves[sq] = types.Bitboard((bitops.VerticalBand(s, 2) & bitops.HorizontalBand(s, 2)) &^ cross)
		kingMoves[sq] = types.Bitboard((bitops.VerticalBand(s, 1) & bitops.HorizontalBand(s, 1)) &^ s)
	}
}

// Knight returns the 8 (fewer near the edge) knight-move destinations
// from origin. obstacles is ignored: a knight jumps over everything.
func Knight(origin, _ types.Bitboard) types.Bitboard {
	return knightMoves[origin.Lsb()]
}

// King returns the 8 (fewer near the edge) king-step destinations from
// origin. obstacles is ignored: castling is handled separately via
// CastlingDescriptor.
func King(origin, _ types.Bitboard) types.Bitboard {
	return kingMoves[origin.Lsb()]
}

const rank2Bb uint64 = 0xFF << 8
const rank7Bb uint64 = 0xFF << (8 * 6)

// pawnPushMask truncates the one-or-two candidate forward squares at
// the first occupied square, excluding it: a pawn pushes into empty
// squares only.
func pawnPushMask(s uint64, allPieces uint64, oneStep func(uint64) uint64, onHomeRank bool) uint64 {
	movement := oneStep(s)
	if onHomeRank {
		movement |= oneStep(movement)
	}
	blockingTop := allPieces & movement
	tr := bitops.LowestBit(blockingTop)
	topMask := ^uint64(0)
	if tr != 0 {
		topMask = bitops.Smaller(tr)
	}
	return movement & topMask
}

// PawnPush returns the single push, plus the double push from the home
// rank when both squares ahead are empty, for a pawn of side S.
func PawnPush[S types.SideTag](origin, allPieces types.Bitboard) types.Bitboard {
	var tag S
	s, all := uint64(origin), uint64(allPieces)
	if tag.Value() == types.White {
		return types.Bitboard(pawnPushMask(s, all, func(x uint64) uint64 { return x << 8 }, s&rank2Bb != 0))
	}
	return types.Bitboard(pawnPushMask(s, all, func(x uint64) uint64 { return x >> 8 }, s&rank7Bb != 0))
}

// PawnCapture returns the two forward-diagonal squares of a pawn of
// side S that are occupied in obstacles (typically the opponent's
// pieces, or the combined occupancy filtered by the caller).
func PawnCapture[S types.SideTag](origin, obstacles types.Bitboard) types.Bitboard {
	var tag S
	s, o := uint64(origin), uint64(obstacles)
	if tag.Value() == types.White {
		targets := (s << 7) | (s << 9)
		return types.Bitboard(targets & bitops.Row(s<<8) & o)
	}
	targets := (s >> 7) | (s >> 9)
	return types.Bitboard(targets & bitops.Row(s>>8) & o)
}

// EnPassantCapture returns epInfo itself if a pawn of side S on origin
// attacks it diagonally, or BbZero otherwise. epInfo is the single-bit
// square behind the pawn that has just double-stepped.
func EnPassantCapture[S types.SideTag](origin, epInfo types.Bitboard) types.Bitboard {
	if epInfo == types.BbZero {
		return types.BbZero
	}
	var tag S
	s, ep := uint64(origin), uint64(epInfo)
	if tag.Value() == types.White {
		if (s<<7) == ep || (s<<9) == ep {
			return epInfo
		}
		return types.BbZero
	}
	if (s>>7) == ep || (s>>9) == ep {
		return epInfo
	}
	return types.BbZero
}

// BasicMoveGenerators is the six-element table (pawn first) for side s,
// mirroring the original engine's per-side basic_move_generators array.
// The pawn entry is the side's push-or-capture combination; the other
// five are side-independent.
func BasicMoveGenerators(s types.Side) [types.PieceTypeCount]Generator {
	if s == types.White {
		return [types.PieceTypeCount]Generator{
			Pawn[types.WhiteTag], Knight, Bishop, Rook, Queen, King,
		}
	}
	return [types.PieceTypeCount]Generator{
		Pawn[types.BlackTag], Knight, Bishop, Rook, Queen, King,
	}
}

// Pawn combines push and capture into a single Generator: push squares
// (empty ahead) unioned with diagonal squares occupied in obstacles.
// The caller is expected to pass the full board occupancy for captures
// (matching the original slide_and_capture_with_pawn convention) and
// then mask the result with ^ownPieces to keep only real captures and
// legal pushes.
func Pawn[S types.SideTag](origin, obstacles types.Bitboard) types.Bitboard {
	return PawnPush[S](origin, obstacles) | PawnCapture[S](origin, obstacles)
}

// ReverseGenerator answers "which squares could a piece have come from
// to reach destination", given the same obstacle rules as Generator.
// For every piece but the pawn the forward generator is its own
// reverse: a bishop that can reach X from Y can reach Y from X.
type ReverseGenerator func(destination, obstacles types.Bitboard) types.Bitboard

// ReversePawnPush returns the squares a pawn of side S could have
// pushed from to land on destination: the single square behind it
// always, plus the home-rank square two behind it when that square is
// on the home rank and the pass-through square between them is empty.
func ReversePawnPush[S types.SideTag](destination, allPieces types.Bitboard) types.Bitboard {
	var tag S
	d := uint64(destination)
	all := uint64(allPieces)
	if tag.Value() == types.White {
		one := d >> 8
		candidates := one
		two := d >> 16
		if two&rank2Bb != 0 && one&all == 0 {
			candidates |= two
		}
		return types.Bitboard(candidates)
	}
	one := d << 8
	candidates := one
	two := d << 16
	if two&rank7Bb != 0 && one&all == 0 {
		candidates |= two
	}
	return types.Bitboard(candidates)
}

// ReversePawnCapture returns the squares a pawn of side S could have
// captured diagonally from to land on destination.
func ReversePawnCapture[S types.SideTag](destination, ownPawns types.Bitboard) types.Bitboard {
	var tag S
	d, pawns := uint64(destination), uint64(ownPawns)
	if tag.Value() == types.White {
		origins := (d >> 7) | (d >> 9)
		return types.Bitboard(origins & bitops.Row(d>>8) & pawns)
	}
	origins := (d << 7) | (d << 9)
	return types.Bitboard(origins & bitops.Row(d<<8) & pawns)
}

// CastlingDescriptor bundles everything needed to test and apply one
// castling move: the king and rook's from/to squares, the squares that
// must be empty, and the squares the king sweeps through (which must
// not be attacked).
type CastlingDescriptor struct {
	Right     types.CastlingRights
	KingFrom  types.Bitboard
	KingTo    types.Bitboard
	RookFrom  types.Bitboard
	RookTo    types.Bitboard
	MustEmpty types.Bitboard
	KingPath  types.Bitboard
}

// CastlingAllowed reports whether d's right is still available, none of
// its MustEmpty squares are occupied, and none of its KingPath squares
// are attacked (attacked receives each square of KingPath in turn).
func CastlingAllowed(d CastlingDescriptor, rights types.CastlingRights, occupied types.Bitboard, attacked func(types.Square) bool) bool {
	if !rights.Has(d.Right) {
		return false
	}
	if occupied&d.MustEmpty != 0 {
		return false
	}
	for path := d.KingPath; path != types.BbZero; {
		sq := path.PopLsb()
		if attacked(sq) {
			return false
		}
	}
	return true
}

// ShortCastling returns side S's kingside castling descriptor.
func ShortCastling[S types.SideTag]() CastlingDescriptor {
	var tag S
	if tag.Value() == types.White {
		return CastlingDescriptor{
			Right:     types.WhiteShort,
			KingFrom:  types.SqE1.Bb(),
			KingTo:    types.SqG1.Bb(),
			RookFrom:  types.SqH1.Bb(),
			RookTo:    types.SqF1.Bb(),
			MustEmpty: types.SqF1.Bb() | types.SqG1.Bb(),
			KingPath:  types.SqE1.Bb() | types.SqF1.Bb() | types.SqG1.Bb(),
		}
	}
	return CastlingDescriptor{
		Right:     types.BlackShort,
		KingFrom:  types.SqE8.Bb(),
		KingTo:    types.SqG8.Bb(),
		RookFrom:  types.SqH8.Bb(),
		RookTo:    types.SqF8.Bb(),
		MustEmpty: types.SqF8.Bb() | types.SqG8.Bb(),
		KingPath:  types.SqE8.Bb() | types.SqF8.Bb() | types.SqG8.Bb(),
	}
}

// LongCastling returns side S's queenside castling descriptor.
func LongCastling[S types.SideTag]() CastlingDescriptor {
	var tag S
	if tag.Value() == types.White {
		return CastlingDescriptor{
			Right:     types.WhiteLong,
			KingFrom:  types.SqE1.Bb(),
			KingTo:    types.SqC1.Bb(),
			RookFrom:  types.SqA1.Bb(),
			RookTo:    types.SqD1.Bb(),
			MustEmpty: types.SqB1.Bb() | types.SqC1.Bb() | types.SqD1.Bb(),
			KingPath:  types.SqC1.Bb() | types.SqD1.Bb() | types.SqE1.Bb(),
		}
	}
	return CastlingDescriptor{
		Right:     types.BlackLong,
		KingFrom:  types.SqE8.Bb(),
		KingTo:    types.SqC8.Bb(),
		RookFrom:  types.SqA8.Bb(),
		RookTo:    types.SqD8.Bb(),
		MustEmpty: types.SqB8.Bb() | types.SqC8.Bb() | types.SqD8.Bb(),
		KingPath:  types.SqC8.Bb() | types.SqD8.Bb() | types.SqE8.Bb(),
	}
}

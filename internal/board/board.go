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

// Package board holds the position representation: a Board of twelve
// piece bitboards, the Context that rides alongside it (en-passant,
// castling rights, move counters), and the small set of pure
// derivations (Metrics, Mirror, AssertValid) built from them. Nothing
// here mutates a Board in place - that belongs to internal/engine's
// scoped guards, which operate directly on a Board's fields.
package board

import (
	"fmt"

	"github.com/negamaxgo/cheapgo/internal/types"
)

// Side is one player's six piece-kind bitboards, pawn first.
type Side [types.PieceTypeCount]types.Bitboard

// Board is the whole position's piece placement: two Sides, White then
// Black. Total size is 96 bytes, matching the source's board_t.
type Board [types.SideCount]Side

// Occupied returns the union of every piece bitboard belonging to s.
func (b *Board) Occupied(s types.Side) types.Bitboard {
	var o types.Bitboard
	for _, bb := range b[s] {
		o |= bb
	}
	return o
}

// OccupiedAll returns every occupied square on the board.
func (b *Board) OccupiedAll() types.Bitboard {
	return b.Occupied(types.White) | b.Occupied(types.Black)
}

// PieceAt reports which side and piece kind, if any, occupies sq.
func (b *Board) PieceAt(sq types.Square) (side types.Side, pt types.PieceType, found bool) {
	bit := sq.Bb()
	for s := types.White; s <= types.Black; s++ {
		for pt := types.Pawn; int(pt) < types.PieceTypeCount; pt++ {
			if b[s][pt]&bit != 0 {
				return s, pt, true
			}
		}
	}
	return 0, 0, false
}

// Context is the position state that rides alongside a Board but is
// not itself placement: whose move it is (encoded in HalfmoveCount's
// parity, mirroring the source's context::get_side), en-passant and
// castling state, and the clocks needed for the fifty-move rule and
// full move numbering. It is cheap (32 bytes) and copied into each
// recursion frame before being advanced.
type Context struct {
	EpInfo         types.Bitboard
	CastlingRights types.CastlingRights
	HalfmoveCount  int
	HalfmoveClock  int
}

// Side returns whose turn it is: White on even halfmove counts.
func (c Context) Side() types.Side {
	return types.Side(c.HalfmoveCount & 1)
}

// SetFullmove rewrites HalfmoveCount from a 1-based fullmove number and
// the side to move at that fullmove.
func (c *Context) SetFullmove(fullmove int, side types.Side) {
	c.HalfmoveCount = (fullmove-1)*2 + int(side)
}

// FullmoveNumber returns the 1-based fullmove number and the side to
// move, the inverse of SetFullmove.
func (c Context) FullmoveNumber() (int, types.Side) {
	return 1 + c.HalfmoveCount/2, c.Side()
}

// StartContext is the context of a freshly set up board: no ep target,
// all four castling rights available, clocks at zero.
var StartContext = Context{
	EpInfo:         types.BbZero,
	CastlingRights: types.NoCastlingRights,
	HalfmoveCount:  0,
	HalfmoveClock:  0,
}

// InitialBoard is the standard chess starting position.
func InitialBoard() Board {
	return Board{
		types.White: {
			types.Pawn:   0xFF00,
			types.Knight: types.SqB1.Bb() | types.SqG1.Bb(),
			types.Bishop: types.SqC1.Bb() | types.SqF1.Bb(),
			types.Rook:   types.SqA1.Bb() | types.SqH1.Bb(),
			types.Queen:  types.SqD1.Bb(),
			types.King:   types.SqE1.Bb(),
		},
		types.Black: {
			types.Pawn:   0x00FF000000000000,
			types.Knight: types.SqB8.Bb() | types.SqG8.Bb(),
			types.Bishop: types.SqC8.Bb() | types.SqF8.Bb(),
			types.Rook:   types.SqA8.Bb() | types.SqH8.Bb(),
			types.Queen:  types.SqD8.Bb(),
			types.King:   types.SqE8.Bb(),
		},
	}
}

// Metrics is a cheap, once-per-node derived record: occupancy by side
// and the union of both, computed once rather than recomputed by every
// move generator call in a node.
type Metrics struct {
	PerSide [types.SideCount]types.Bitboard
	All     types.Bitboard
}

// NewMetrics derives a Metrics snapshot from b.
func NewMetrics(b *Board) Metrics {
	m := Metrics{PerSide: [types.SideCount]types.Bitboard{
		b.Occupied(types.White),
		b.Occupied(types.Black),
	}}
	m.All = m.PerSide[types.White] | m.PerSide[types.Black]
	return m
}

// Own returns the occupancy of side s.
func (m Metrics) Own(s types.Side) types.Bitboard {
	return m.PerSide[s]
}

// Opposing returns the occupancy of s's opponent.
func (m Metrics) Opposing(s types.Side) types.Bitboard {
	return m.PerSide[s.Other()]
}

// mirrorBitboard reverses a Bitboard rank by rank: rank 1 becomes rank
// 8 and vice versa, files unchanged. Ported byte-swap-by-byte-pairs
// from the source's mirror_inplace(uint64_t&).
func mirrorBitboard(v types.Bitboard) types.Bitboard {
	u := uint64(v)
	u = ((u >> 8) & 0x00FF00FF00FF00FF) | ((u & 0x00FF00FF00FF00FF) << 8)
	u = ((u >> 16) & 0x0000FFFF0000FFFF) | ((u & 0x0000FFFF0000FFFF) << 16)
	u = (u >> 32) | (u << 32)
	return types.Bitboard(u)
}

// Mirror returns a board with every bitboard rank-reversed and the two
// sides swapped: a position analyzed for White becomes the same
// position analyzed for Black. Used for side-agnostic testing only.
func Mirror(b Board) Board {
	var out Board
	for s := types.White; s <= types.Black; s++ {
		for pt := 0; pt < types.PieceTypeCount; pt++ {
			out[s][pt] = mirrorBitboard(b[s][pt])
		}
	}
	out[types.White], out[types.Black] = out[types.Black], out[types.White]
	return out
}

// AssertionsEnabled gates AssertValid's panics; disabled in the search
// hot path once a position has been validated at the root.
var AssertionsEnabled = true

// AssertValid panics if b violates a structural board invariant:
// pairwise-disjoint piece bitboards per side, disjoint occupancy
// across sides, exactly one king per side, at most eight pawns per
// side, at most sixteen total pieces per side, and no pawn resting on
// rank 1 or 8. A no-op when AssertionsEnabled is false.
func AssertValid(b *Board) {
	if !AssertionsEnabled {
		return
	}
	for s := types.White; s <= types.Black; s++ {
		var seen types.Bitboard
		for pt, bb := range b[s] {
			if bb&seen != 0 {
				panic(fmt.Sprintf("board: side %s has overlapping piece bitboards at kind %d", s, pt))
			}
			seen |= bb
		}
		if seen.PopCount() > 16 {
			panic(fmt.Sprintf("board: side %s has more than 16 pieces", s))
		}
		if b[s][types.Pawn].PopCount() > 8 {
			panic(fmt.Sprintf("board: side %s has more than 8 pawns", s))
		}
		if b[s][types.King].PopCount() != 1 {
			panic(fmt.Sprintf("board: side %s does not have exactly one king", s))
		}
		if b[s][types.Pawn]&(types.Bitboard(0xFF)|types.Bitboard(0xFF)<<56) != 0 {
			panic(fmt.Sprintf("board: side %s has a pawn on rank 1 or 8", s))
		}
	}
	if b.Occupied(types.White)&b.Occupied(types.Black) != 0 {
		panic("board: white and black occupancy overlap")
	}
}

// MoveInfo is a short-lived descriptor of one XOR delta applied to a
// single piece bitboard: for a simple move, origin|destination; for a
// capture, just the captured square; for a promotion, just the
// promotion square (the piece kind changes around it).
type MoveInfo struct {
	Side  types.Side
	Piece types.PieceType
	Mask  types.Bitboard
}

// MoveInfo2 is a pair of MoveInfo, one per side of a two-step mutation
// (capture, castling, promotion, en passant).
type MoveInfo2 [2]MoveInfo

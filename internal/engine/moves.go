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
	"github.com/negamaxgo/cheapgo/internal/movegen"
	"github.com/negamaxgo/cheapgo/internal/types"
)

// ScopedMove XORs mask into *bb once on construction and again on
// Close, so making and unmaking a move are the same operation: unlike
// Hasher's flat-restore guards, a board mutation's own inverse is
// always re-applying the same XOR.
type ScopedMove struct {
	bb   *types.Bitboard
	mask types.Bitboard
}

// NewScopedMove applies mask to *bb and returns the guard that undoes it.
func NewScopedMove(bb *types.Bitboard, mask types.Bitboard) ScopedMove {
	*bb ^= mask
	return ScopedMove{bb: bb, mask: mask}
}

// Close undoes the XOR this guard applied.
func (g ScopedMove) Close() { *g.bb ^= g.mask }

// ScopedMove2 closes two ScopedMove guards in reverse construction
// order, the pattern every two-bitboard move (capture, castling,
// promotion, en passant) needs.
type ScopedMove2 [2]ScopedMove

// Close closes both guards, second-opened first.
func (g ScopedMove2) Close() {
	g[1].Close()
	g[0].Close()
}

// CapturedPieceAt reports which piece kind belonging to capturedSide, if
// any, sits on destination (a single-bit Bitboard). Callers must look
// this up before applying a capturing move - once the mover's own
// bitboard is XORed onto destination, the captured piece's bit is
// indistinguishable from the mover's.
func CapturedPieceAt(b *board.Board, capturedSide types.Side, destination types.Bitboard) (types.PieceType, bool) {
	for pt := types.Pawn; int(pt) < types.PieceTypeCount; pt++ {
		if b[capturedSide][pt]&destination != 0 {
			return pt, true
		}
	}
	return 0, false
}

// ApplyBasicMove moves one piece of pt belonging to side between the two
// squares ORed together in mask (typically origin|destination), with no
// capture.
func ApplyBasicMove(b *board.Board, side types.Side, pt types.PieceType, mask types.Bitboard) ScopedMove {
	return NewScopedMove(&b[side][pt], mask)
}

// ApplyCapture moves side's piece from origin to destination and removes
// capturedSide's capturedPt from destination in the same scope. The
// caller must have resolved capturedPt via CapturedPieceAt before
// calling, since this XORs the mover's bitboard first.
func ApplyCapture(b *board.Board, side types.Side, pt types.PieceType, origin, destination types.Bitboard, capturedSide types.Side, capturedPt types.PieceType) ScopedMove2 {
	return ScopedMove2{
		NewScopedMove(&b[side][pt], origin|destination),
		NewScopedMove(&b[capturedSide][capturedPt], destination),
	}
}

// ApplyEnPassant moves side's pawn of S from origin to destination and
// removes the opponent's pawn from the square behind destination: one
// rank behind for White capturing, one rank ahead for Black.
func ApplyEnPassant[S types.SideTag](b *board.Board, origin, destination types.Bitboard) ScopedMove2 {
	var tag S
	side := tag.Value()
	capturedSide := side.Other()
	capturedSquare := destination >> 8
	if side == types.Black {
		capturedSquare = destination << 8
	}
	return ScopedMove2{
		NewScopedMove(&b[side][types.Pawn], origin|destination),
		NewScopedMove(&b[capturedSide][types.Pawn], capturedSquare),
	}
}

// ApplyCastle moves d's king and rook together, with no capture.
func ApplyCastle(b *board.Board, side types.Side, d movegen.CastlingDescriptor) ScopedMove2 {
	return ScopedMove2{
		NewScopedMove(&b[side][types.King], d.KingFrom|d.KingTo),
		NewScopedMove(&b[side][types.Rook], d.RookFrom|d.RookTo),
	}
}

// ApplyPromotion swaps the pawn already sitting on destination (placed
// there by a prior ApplyBasicMove or ApplyCapture covering the pawn's
// own origin-to-destination step, and any capture at destination) for
// side's promoted piece.
func ApplyPromotion(b *board.Board, side types.Side, promoted types.PieceType, destination types.Bitboard) ScopedMove2 {
	return ScopedMove2{
		NewScopedMove(&b[side][types.Pawn], destination),
		NewScopedMove(&b[side][promoted], destination),
	}
}

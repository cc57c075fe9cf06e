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
	"github.com/negamaxgo/cheapgo/internal/types"
)

// pieceWeight is indexed by types.PieceType; the king's slot is never
// read (kings aren't captured, so never flow through CaptureDelta or
// PromotionDelta) and carries Limit purely as a sentinel.
var pieceWeight = [types.PieceTypeCount]types.Score{
	types.Pawn:   1,
	types.Knight: 3,
	types.Bishop: 3,
	types.Rook:   5,
	types.Queen:  9,
	types.King:   types.Limit,
}

// PieceWeight returns pt's signed contribution to the material sum for
// side s: positive for White, negative for Black.
func PieceWeight(s types.Side, pt types.PieceType) types.Score {
	return types.AbsScore(s, pieceWeight[pt])
}

// CaptureDelta is the amount to subtract from the running material sum
// when a piece of pt belonging to capturedSide is removed from the
// board: its own signed weight.
func CaptureDelta(capturedSide types.Side, pt types.PieceType) types.Score {
	return PieceWeight(capturedSide, pt)
}

// PromotionDelta is the amount to subtract from the running material
// sum when side's pawn becomes promoted: the pawn's weight leaves, the
// promoted piece's weight arrives, so the delta nets those two out.
func PromotionDelta(side types.Side, promoted types.PieceType) types.Score {
	return PieceWeight(side, types.Pawn) - PieceWeight(side, promoted)
}

func materialOf(b *board.Board) types.Score {
	var sum types.Score
	for s := types.White; s <= types.Black; s++ {
		for pt := types.Pawn; int(pt) < types.PieceTypeCount; pt++ {
			if pt == types.King {
				continue
			}
			sum += PieceWeight(s, pt) * types.Score(b[s][pt].PopCount())
		}
	}
	return sum
}

// Material incrementally maintains the position's signed material sum.
// EnterDelta subtracts delta and returns a closer restoring the prior
// value, mirroring material.hh's generic scoped_material<Op>.
type Material interface {
	Material() types.Score
	EnterDelta(delta types.Score) (closer func())
}

// RealMaterial maintains the sum described above.
type RealMaterial struct {
	material types.Score
}

// NewRealMaterial seeds the sum from a full board scan.
func NewRealMaterial(b *board.Board) *RealMaterial {
	return &RealMaterial{material: materialOf(b)}
}

func (m *RealMaterial) Material() types.Score { return m.material }

func (m *RealMaterial) EnterDelta(delta types.Score) func() {
	old := m.material
	m.material -= delta
	return func() { m.material = old }
}

// NoopMaterial is the zero-cost aspect for searches that never consult
// material (e.g. a controller built purely to test legality).
type NoopMaterial struct{}

func (NoopMaterial) Material() types.Score         { return 0 }
func (NoopMaterial) EnterDelta(types.Score) func() { return noop }

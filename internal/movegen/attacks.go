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

package movegen

import (
	"github.com/negamaxgo/cheapgo/internal/board"
	"github.com/negamaxgo/cheapgo/internal/types"
)

// AttackedSquares unions every square attacker's pieces pseudo-legally
// reach on the current occupancy of b: the same "opponent_under_attack"
// accumulation the search loop builds while enumerating a side's own
// moves, exposed standalone for callers (move legality checks, the
// resolver's self-check simulation) that only need the destination set.
func AttackedSquares(b *board.Board, attacker types.Side) types.Bitboard {
	m := board.NewMetrics(b)
	gens := BasicMoveGenerators(attacker)
	var attacked types.Bitboard
	for pt := types.Pawn; int(pt) < types.PieceTypeCount; pt++ {
		gen := gens[pt]
		for origins := b[attacker][pt]; origins != 0; {
			origin := origins.PopLsb().Bb()
			attacked |= gen(origin, m.All) &^ m.Own(attacker)
		}
	}
	return attacked
}

// KingInCheck reports whether side s's king sits on a square attacked
// by s's opponent, given b's current occupancy.
func KingInCheck(b *board.Board, s types.Side) bool {
	return b[s][types.King]&AttackedSquares(b, s.Other()) != 0
}

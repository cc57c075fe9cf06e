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

package types

import "math"

// Score is a signed evaluation in pawn units, White-positive: unlike a
// negamax engine's sign-per-ply convention, every node's score is kept in
// this one fixed frame, and BestFor/LessEqualFor below apply the
// side-relative ordering instead of flipping the value itself.
type Score int32

// Reserved score magnitudes, in decreasing order: Limit is kept
// well clear of the int32 sign bit so it can be negated without overflow.
const (
	Limit        Score = math.MaxInt32/2 + 1
	NoValidMove  Score = -Limit
	Checkmate    Score = Limit / 2
	Stalemate    Score = Checkmate / 2
	Repeat       Score = 1 << 20 // distinct from NoValidMove, small magnitude
	NoScoreValue Score = math.MinInt32
)

// AbsScore returns v unchanged for White, negated for Black: the
// perspective transform every sentinel below is built from.
func AbsScore(s Side, v Score) Score {
	if s == White {
		return v
	}
	return -v
}

// LimitFor returns the side-relative Limit sentinel.
func LimitFor(s Side) Score { return AbsScore(s, Limit) }

// NoValidMoveFor returns the side-relative "no move was ever better"
// sentinel used to seed a node before any child has reported in.
func NoValidMoveFor(s Side) Score { return AbsScore(s, NoValidMove) }

// CheckmateFor returns the side-relative checkmate score: s has just
// mated its opponent.
func CheckmateFor(s Side) Score { return AbsScore(s, Checkmate) }

// StalemateFor returns the side-relative stalemate score.
func StalemateFor(s Side) Score { return AbsScore(s, Stalemate) }

// LessEqualFor compares l and r from side s's perspective: White prefers
// larger scores, Black prefers smaller ones.
func LessEqualFor(s Side, l, r Score) bool {
	if s == White {
		return l <= r
	}
	return l >= r
}

// BestFor returns whichever of l, r side s prefers.
func BestFor(s Side, l, r Score) Score {
	if LessEqualFor(s, l, r) {
		return r
	}
	return l
}

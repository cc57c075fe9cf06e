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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned word, bit k set iff square k is occupied.
// It is the only representation of a set of squares in this module.
type Bitboard uint64

// BbZero and BbAll are the empty and full bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// sqBb is a precomputed square->single-bit-bitboard table, the same
// precompute-a-table-at-init-time technique the teacher's bitboard.go uses
// for sqBb/movesRank.
var sqBb [64]Bitboard

func init() {
	for sq := 0; sq < 64; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
}

// Has reports whether square sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// PushSquare sets sq in the bitboard.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b | sqBb[sq]
}

// PopSquare clears sq in the bitboard.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	return b &^ sqBb[sq]
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the lowest set bit, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the square of the lowest set bit and clears it from *b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// IsSingleBit reports whether exactly one bit of b is set.
func IsSingleBit(b Bitboard) bool {
	return b != 0 && b&(b-1) == 0
}

// IsAtMostSingleBit reports whether zero or one bit of b is set.
func IsAtMostSingleBit(b Bitboard) bool {
	return b&(b-1) == 0
}

func (b Bitboard) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "0x%016X (", uint64(b))
	first := true
	for bb := b; bb != 0; {
		sq := bb.PopLsb()
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(sq.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

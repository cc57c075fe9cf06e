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

// Package bitops holds the single-bit arithmetic every move generator in
// this module is built from: smaller/bigger ray masks, row/column/diagonal
// classifiers and the de Bruijn bit-index lookup. Every function here
// takes and returns a bare uint64 rather than a types.Bitboard - this is
// the layer below types, not above it.
package bitops

// deBruijnBitPosition maps the top 6 bits of s*deBruijnMultiplier, for s a
// power of two, to the index of its single set bit.
var deBruijnBitPosition = [64]uint8{
	0, 1, 2, 53, 3, 7, 54, 27,
	4, 38, 41, 8, 34, 55, 48, 28,
	62, 5, 39, 46, 44, 42, 22, 9,
	24, 35, 59, 56, 49, 18, 29, 11,
	63, 52, 6, 26, 37, 40, 33, 47,
	61, 45, 43, 21, 23, 58, 17, 10,
	51, 25, 36, 32, 60, 20, 57, 16,
	50, 31, 19, 15, 30, 14, 13, 12,
}

const deBruijnMultiplier = 0x022FDD63CC95386D

// SquareIndex returns the index 0..63 of the single set bit of s. The
// caller must guarantee s is a power of two; behavior is undefined
// otherwise.
func SquareIndex(s uint64) uint8 {
	return deBruijnBitPosition[(s*deBruijnMultiplier)>>58]
}

// IsMaxSingleBit reports whether p has at most one bit set (including 0).
func IsMaxSingleBit(p uint64) bool {
	return p&(p-1) == 0
}

// IsSingleBit reports whether p has exactly one bit set.
func IsSingleBit(p uint64) bool {
	return IsMaxSingleBit(p) && p != 0
}

// LowestBit returns the lowest set bit of p, or 0 if p is 0.
func LowestBit(p uint64) uint64 {
	return p & (^p + 1)
}

// HighestBit returns the highest set bit of p, or 0 if p is 0.
func HighestBit(p uint64) uint64 {
	if p == 0 {
		return 0
	}
	p |= p >> 1
	p |= p >> 2
	p |= p >> 4
	p |= p >> 8
	p |= p >> 16
	p |= p >> 32
	return (p >> 1) + 1
}

// CountBits returns the population count of p.
func CountBits(p uint64) int {
	n := 0
	for p != 0 {
		p &= p - 1
		n++
	}
	return n
}

// Smaller returns every bit strictly below s's single set bit.
func Smaller(s uint64) uint64 {
	return s - 1
}

// SmallerEqual returns every bit at or below s's single set bit.
func SmallerEqual(s uint64) uint64 {
	return (s - 1) | s
}

// Bigger returns every bit strictly above s's single set bit.
func Bigger(s uint64) uint64 {
	return SmallerEqual(s) ^ ^uint64(0)
}

// BiggerEqual returns every bit at or above s's single set bit.
func BiggerEqual(s uint64) uint64 {
	return Smaller(s) ^ ^uint64(0)
}

// row0 is rank 1, the lowest 8 bits.
const row0 uint64 = 0xFF

// Row returns the full-rank mask (all 8 squares) of single-bit s's rank.
func Row(s uint64) uint64 {
	return row0 << (8 * RowNumber(s))
}

// col0 is file a, every 8th bit starting at bit 0.
const col0 uint64 = 0x0101010101010101

// Column returns the full-file mask (all 8 squares) of single-bit s's file.
func Column(s uint64) uint64 {
	return col0 << ColumnNumber(s)
}

var rowMask = [3]uint64{0xFF00FF00FF00FF00, 0xFFFF0000FFFF0000, 0xFFFFFFFF00000000}

// RowNumber returns 0..7, the rank index of single-bit s.
func RowNumber(s uint64) uint8 {
	var r uint8
	for i := 0; i < 3; i++ {
		if s&rowMask[i] != 0 {
			r |= 1 << i
		}
	}
	return r
}

var columnMask = [3]uint8{0xAA, 0xCC, 0xF0}

// ColumnNumber returns 0..7, the file index of single-bit s.
func ColumnNumber(s uint64) uint8 {
	s |= s >> 32
	s |= s >> 16
	s |= s >> 8
	b := uint8(s)
	var c uint8
	for i := 0; i < 3; i++ {
		if b&columnMask[i] != 0 {
			c |= 1 << i
		}
	}
	return c
}

// diagDelta0 and diagSum0 are the two main-diagonal masks (a1-h8 and
// a8-h1); every other diagonal is a shifted copy, indexed by
// column-row and column+row respectively.
const diagDelta0 uint64 = (1 << (9 * 0)) | (1 << (9 * 1)) | (1 << (9 * 2)) | (1 << (9 * 3)) |
	(1 << (9 * 4)) | (1 << (9 * 5)) | (1 << (9 * 6)) | (1 << (9 * 7))

const diagSum0 uint64 = (0x80 << (7 * 0)) | (0x80 << (7 * 1)) | (0x80 << (7 * 2)) | (0x80 << (7 * 3)) |
	(0x80 << (7 * 4)) | (0x80 << (7 * 5)) | (0x80 << (7 * 6)) | (0x80 << (7 * 7))

// DiagDelta returns the mask of the "column minus row" diagonal running
// through single-bit s.
func DiagDelta(s uint64) uint64 {
	c, r := int8(ColumnNumber(s)), int8(RowNumber(s))
	delta := c - r
	if delta >= 0 {
		return diagDelta0 >> (8 * uint(delta))
	}
	return diagDelta0 << (8 * uint(-delta))
}

// DiagSum returns the mask of the "column plus row" anti-diagonal
// running through single-bit s.
func DiagSum(s uint64) uint64 {
	c, r := int8(ColumnNumber(s)), int8(RowNumber(s))
	sum := c + r - 7
	if sum >= 0 {
		return diagSum0 << (8 * uint(sum))
	}
	return diagSum0 >> (8 * uint(-sum))
}

// SlidingRange returns every square a slider on s can reach along line
// (one of Row(s), Column(s), DiagDelta(s), DiagSum(s)), given obstacles
// occupying some subset of the whole board. The range stops at, and
// includes, the first obstacle found in each direction along line; s
// itself is excluded.
func SlidingRange(s, line, obstacles uint64) uint64 {
	smaller := Smaller(s)
	bigger := Bigger(s)

	blockingBottom := smaller & obstacles & line
	bl := HighestBit(blockingBottom)
	bottomMask := ^uint64(0)
	if bl != 0 {
		bottomMask = BiggerEqual(bl)
	}

	blockingTop := bigger & obstacles & line
	tr := LowestBit(blockingTop)
	topMask := ^uint64(0)
	if tr != 0 {
		topMask = SmallerEqual(tr)
	}

	return bottomMask & topMask & line &^ s
}

// VerticalBand returns the union of columns within halfwidth of
// single-bit s's column, clipped to the board.
func VerticalBand(s uint64, halfwidth uint8) uint64 {
	c := ColumnNumber(s)
	var start uint8
	if c >= halfwidth {
		start = c - halfwidth
	}
	stop := c + halfwidth
	if stop > 7 {
		stop = 7
	}
	var r uint64
	for f := start; f <= stop; f++ {
		r |= col0 << f
	}
	return r
}

// HorizontalBand returns the union of ranks within halfwidth of
// single-bit s's row, clipped to the board.
func HorizontalBand(s uint64, halfwidth uint8) uint64 {
	row := RowNumber(s)
	var start uint8
	if row >= halfwidth {
		start = row - halfwidth
	}
	stop := row + halfwidth
	if stop > 7 {
		stop = 7
	}
	var r uint64
	for rk := start; rk <= stop; rk++ {
		r |= row0 << (8 * rk)
	}
	return r
}

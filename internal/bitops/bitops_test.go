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

package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareIndex(t *testing.T) {
	for k := uint(0); k < 64; k++ {
		got := SquareIndex(uint64(1) << k)
		assert.EqualValues(t, k, got, "square index of bit %d", k)
	}
}

func TestSmallerBiggerPartitionTheBoard(t *testing.T) {
	for k := uint(0); k < 64; k++ {
		s := uint64(1) << k
		smaller := Smaller(s)
		bigger := Bigger(s)
		assert.Zero(t, smaller&s, "smaller must exclude s")
		assert.Zero(t, bigger&s, "bigger must exclude s")
		assert.Zero(t, smaller&bigger, "smaller and bigger must be disjoint")
		assert.Equal(t, ^uint64(0), smaller|s|bigger, "smaller|s|bigger must cover the board")
	}
}

func TestRowAndColumnPartitionAtS(t *testing.T) {
	for k := uint(0); k < 64; k++ {
		s := uint64(1) << k
		assert.Equal(t, s, Row(s)&Column(s), "row and column must cross exactly at s")
	}
}

func TestDiagDeltaAndDiagSumPartitionAtS(t *testing.T) {
	for k := uint(0); k < 64; k++ {
		s := uint64(1) << k
		assert.Equal(t, s, DiagDelta(s)&DiagSum(s), "the two diagonals must cross exactly at s")
	}
}

func TestRowNumberAndColumnNumberRoundTrip(t *testing.T) {
	for file := uint8(0); file < 8; file++ {
		for rank := uint8(0); rank < 8; rank++ {
			s := uint64(1) << (rank*8 + file)
			assert.Equal(t, rank, RowNumber(s))
			assert.Equal(t, file, ColumnNumber(s))
		}
	}
}

func TestSlidingRangeNoObstaclesIsWholeLineMinusOrigin(t *testing.T) {
	s := uint64(1) << 27 // d4
	line := Row(s)
	got := SlidingRange(s, line, 0)
	assert.Equal(t, line&^s, got)
}

func TestSlidingRangeStopsAtFirstObstacleInclusive(t *testing.T) {
	s := uint64(1) << 8 // a2
	line := Column(s)
	obstacle := uint64(1) << 40 // a6
	got := SlidingRange(s, line, obstacle)
	want := (uint64(1)<<0 | uint64(1)<<16 | uint64(1)<<24 | uint64(1)<<32 | obstacle)
	assert.Equal(t, want, got)
}

func TestSlidingRangeMonotoneDecreasingInObstacles(t *testing.T) {
	s := uint64(1) << 27
	line := Row(s)
	withoutObstacle := SlidingRange(s, line, 0)
	obstacle := uint64(1) << 24 // a4, same row
	withObstacle := SlidingRange(s, line, obstacle)
	assert.True(t, withObstacle&^withoutObstacle == 0, "adding an obstacle may only remove reachable squares")
}

func TestIsSingleBit(t *testing.T) {
	assert.False(t, IsSingleBit(0))
	assert.True(t, IsSingleBit(1))
	assert.True(t, IsSingleBit(1<<40))
	assert.False(t, IsSingleBit(3))
}

func TestLowestAndHighestBit(t *testing.T) {
	p := uint64(0b0101_1000)
	assert.Equal(t, uint64(0b1000), LowestBit(p))
	assert.Equal(t, uint64(0b0100_0000), HighestBit(p))
	assert.Zero(t, LowestBit(0))
	assert.Zero(t, HighestBit(0))
}

func TestCountBits(t *testing.T) {
	assert.Equal(t, 0, CountBits(0))
	assert.Equal(t, 64, CountBits(^uint64(0)))
	assert.Equal(t, 3, CountBits(0b1011))
}

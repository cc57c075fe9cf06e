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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/negamaxgo/cheapgo/internal/types"
)

func TestInitialBoardIsValid(t *testing.T) {
	b := InitialBoard()
	assert.NotPanics(t, func() { AssertValid(&b) })
	assert.Equal(t, 16, b.Occupied(types.White).PopCount())
	assert.Equal(t, 16, b.Occupied(types.Black).PopCount())
	assert.Zero(t, b.Occupied(types.White)&b.Occupied(types.Black))
}

func TestPieceAt(t *testing.T) {
	b := InitialBoard()
	side, pt, found := b.PieceAt(types.SqE1)
	assert.True(t, found)
	assert.Equal(t, types.White, side)
	assert.Equal(t, types.King, pt)

	_, _, found = b.PieceAt(types.SqE4)
	assert.False(t, found)
}

func TestMetrics(t *testing.T) {
	b := InitialBoard()
	m := NewMetrics(&b)
	assert.Equal(t, b.Occupied(types.White), m.Own(types.White))
	assert.Equal(t, b.Occupied(types.Black), m.Opposing(types.White))
	assert.Equal(t, b.OccupiedAll(), m.All)
}

func TestMirrorSwapsSidesAndRanks(t *testing.T) {
	b := InitialBoard()
	m := Mirror(b)
	assert.Equal(t, types.SqE8.Bb(), m[types.Black][types.King], "white's king on e1 mirrors to black's king on e8")
	assert.NotPanics(t, func() { AssertValid(&m) })
	assert.Equal(t, b, Mirror(m), "mirroring twice returns the original position")
}

func TestAssertValidRejectsOverlappingPieces(t *testing.T) {
	b := InitialBoard()
	b[types.White][types.Queen] |= types.SqE1.Bb() // now overlaps the king square
	assert.Panics(t, func() { AssertValid(&b) })
}

func TestAssertValidRejectsTwoKings(t *testing.T) {
	b := InitialBoard()
	b[types.White][types.King] |= types.SqA3.Bb()
	assert.Panics(t, func() { AssertValid(&b) })
}

func TestAssertValidRejectsPawnOnBackRank(t *testing.T) {
	b := InitialBoard()
	b[types.White][types.Pawn] |= types.SqA8.Bb()
	assert.Panics(t, func() { AssertValid(&b) })
}

func TestAssertValidDisabled(t *testing.T) {
	b := InitialBoard()
	b[types.White][types.King] |= types.SqA3.Bb()
	AssertionsEnabled = false
	defer func() { AssertionsEnabled = true }()
	assert.NotPanics(t, func() { AssertValid(&b) })
}

func TestContextFullmoveRoundTrip(t *testing.T) {
	var c Context
	c.SetFullmove(5, types.Black)
	fullmove, side := c.FullmoveNumber()
	assert.Equal(t, 5, fullmove)
	assert.Equal(t, types.Black, side)
}

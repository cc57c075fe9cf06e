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

// PieceType is the six-valued piece-kind enum, pawn first so that it can
// double as an index into per-piece generator/weight tables.
type PieceType uint8

// The six piece kinds, plus PieceTypeCount as a loop bound.
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King

	// PieceTypeCount is the number of piece kinds.
	PieceTypeCount int = 6
)

var pieceTypeChars = [PieceTypeCount]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// Char returns the lowercase FEN letter for the piece kind.
func (pt PieceType) Char() byte {
	return pieceTypeChars[pt]
}

func (pt PieceType) String() string {
	return string(pt.Char())
}

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return int(pt) < PieceTypeCount
}

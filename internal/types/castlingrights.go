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

// CastlingRights is a blocking-mask word: a bit set means the right is
// gone. This is the inverse of the usual "bit set = available" encoding -
// a right is revoked by OR-ing its mask in, and is still available only
// while its bits are clear in both the rights word and the occupancy of
// the squares the king/rook must vacate from.
type CastlingRights uint8

// The four individual rights and their OR-combined masks.
const (
	WhiteShort CastlingRights = 1 << iota
	WhiteLong
	BlackShort
	BlackLong

	NoCastlingRights  CastlingRights = 0
	AllCastlingRights CastlingRights = WhiteShort | WhiteLong | BlackShort | BlackLong
)

// ShortRight and LongRight return the side-relative right bit, for code
// that indexes rights by side rather than naming White/Black directly.
func ShortRight(s Side) CastlingRights {
	if s == White {
		return WhiteShort
	}
	return BlackShort
}

func LongRight(s Side) CastlingRights {
	if s == White {
		return WhiteLong
	}
	return BlackLong
}

// Revoke returns rights with block OR-ed in, permanently forfeiting
// whichever rights block names.
func (r CastlingRights) Revoke(block CastlingRights) CastlingRights {
	return r | block
}

// Has reports whether every bit of right is still clear in r, i.e. the
// right has not been revoked.
func (r CastlingRights) Has(right CastlingRights) bool {
	return r&right == 0
}

func (r CastlingRights) String() string {
	out := [4]byte{'-', '-', '-', '-'}
	if r.Has(WhiteShort) {
		out[0] = 'K'
	}
	if r.Has(WhiteLong) {
		out[1] = 'Q'
	}
	if r.Has(BlackShort) {
		out[2] = 'k'
	}
	if r.Has(BlackLong) {
		out[3] = 'q'
	}
	s := string(out[:])
	if s == "----" {
		return "-"
	}
	// trim any interior '-' left by a partially revoked set, FEN style
	trimmed := make([]byte, 0, 4)
	for i := 0; i < 4; i++ {
		if out[i] != '-' {
			trimmed = append(trimmed, out[i])
		}
	}
	if len(trimmed) == 0 {
		return "-"
	}
	return string(trimmed)
}

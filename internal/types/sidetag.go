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

// SideTag is a zero-size, compile-time stand-in for a Side value. Code
// that is parameterized per side (pawn direction, castling rank, the
// search recursion) takes a type parameter constrained to SideTag
// instead of a runtime Side argument, the way the original engine this
// module is modeled on used a template parameter: the per-side branch
// is resolved once per instantiation, not on every call.
type SideTag interface {
	Value() Side
}

// WhiteTag and BlackTag are the two SideTag implementations.
type (
	WhiteTag struct{}
	BlackTag struct{}
)

func (WhiteTag) Value() Side { return White }
func (BlackTag) Value() Side { return Black }

// OtherTag maps a SideTag type to its opposite at the value level; Go
// generics cannot return "the other type parameter", so callers that
// need to recurse with the flipped side select between WhiteTag/BlackTag
// using this helper and a type switch, or carry both branches inline.
func OtherTag(s SideTag) Side {
	return s.Value().Other()
}

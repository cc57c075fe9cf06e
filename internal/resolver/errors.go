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

package resolver

import "fmt"

// ErrorKind enumerates every recoverable failure spec.md §4.7/§7 lists
// for the resolver; the core itself never returns these (§7: "the core
// does not propagate recoverable errors").
type ErrorKind int

const (
	ErrInvalidCharacter ErrorKind = iota
	ErrEmptyMove
	ErrInvalidDestination
	ErrMissingPiece
	ErrIllegalMove
	ErrEnPassantNotAllowed
	ErrCaptureMisindication
	ErrSeparator
	ErrSelfCheck
	ErrAmbiguousOrigin
	ErrWrongPromotion
	ErrCheckFlagMismatch
	ErrTruncatedInput
	ErrUnexpectedEOF
)

var errorKindNames = map[ErrorKind]string{
	ErrInvalidCharacter:     "invalid character",
	ErrEmptyMove:            "empty move",
	ErrInvalidDestination:   "invalid destination",
	ErrMissingPiece:         "missing piece",
	ErrIllegalMove:          "illegal move",
	ErrEnPassantNotAllowed:  "en passant not allowed",
	ErrCaptureMisindication: "capture without 'x'",
	ErrSeparator:            "wrong separator",
	ErrSelfCheck:            "self-check",
	ErrAmbiguousOrigin:      "ambiguous origin",
	ErrWrongPromotion:       "wrong promotion piece",
	ErrCheckFlagMismatch:    "check/mate flag mismatch",
	ErrTruncatedInput:       "truncated input",
	ErrUnexpectedEOF:        "unexpected EOF",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown resolver error"
}

// MoveError is the resolver's single recoverable error type, carrying
// the offending token alongside Kind so a caller can branch on failure
// class without string-matching, while Error() still renders io.cc's
// "move: '<token>': <reason>" shape for logging.
type MoveError struct {
	Kind ErrorKind
	Move string
	Msg  string
}

func (e *MoveError) Error() string {
	if e.Move == "" {
		return fmt.Sprintf("move: %s", e.Msg)
	}
	return fmt.Sprintf("move: '%s': %s", e.Move, e.Msg)
}

func newError(kind ErrorKind, move, msg string) *MoveError {
	return &MoveError{Kind: kind, Move: move, Msg: msg}
}

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

// Package resolver turns one token of move notation - short or long
// algebraic, castling, promotion and check/mate suffixes included -
// into a board mutation, rejecting anything that does not correspond
// to exactly one legal move from the current position.
package resolver

import (
	"github.com/negamaxgo/cheapgo/internal/bitops"
	"github.com/negamaxgo/cheapgo/internal/types"
)

// MoveKind distinguishes the five shapes a parsed move can take, ported
// from the source's move_type enum.
type MoveKind int

const (
	KindNormal MoveKind = iota
	KindLongCastling
	KindShortCastling
	KindPromotion
	KindEnPassant
)

// CheckFlag records the suffix annotation ('+' or '#') on a move, if any.
type CheckFlag int

const (
	FlagNone CheckFlag = iota
	FlagCheck
	FlagCheckmate
)

// NoPromotion marks ParsedMove.PromotingPiece as "not a promotion",
// mirroring engine.noPromotion: one past the last valid piece kind.
const NoPromotion = types.PieceType(types.PieceTypeCount)

// ParsedMove is the notation-grammar record spec.md's resolver algorithm
// takes as input: a move's grammatical shape, without yet knowing which
// of possibly several same-shaped pieces it refers to.
type ParsedMove struct {
	Kind           MoveKind
	IsCapture      bool
	MovingPiece    types.PieceType
	Origin         types.Bitboard // full board (BbAll) when the notation gives no disambiguating hint
	Destination    types.Bitboard
	PromotingPiece types.PieceType
	Flag           CheckFlag
}

// Format selects between the two notations §6 accepts: long algebraic
// always writes both origin and destination and an explicit separator,
// short algebraic may omit the origin and writes no '-' separator; and
// between an explicit en-passant suffix ("ep"/"e.p.") and one the
// resolver is expected to detect itself from context (PGN style).
type Format struct {
	LongAlgebraic bool
	ExplicitEp    bool
}

const (
	longCastlingNotation  = "O-O-O"
	shortCastlingNotation = "O-O"
)

// scanner walks a notation token one byte at a time, the Go stand-in
// for io.cc's `const char*&` cursor.
type scanner struct {
	s   string
	pos int
}

func newScanner(s string) *scanner { return &scanner{s: s} }

func (sc *scanner) atEnd() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) peek() (byte, bool) {
	if sc.atEnd() {
		return 0, false
	}
	return sc.s[sc.pos], true
}

func (sc *scanner) next() (byte, bool) {
	ch, ok := sc.peek()
	if ok {
		sc.pos++
	}
	return ch, ok
}

// isGraph reports whether the next unread byte is present and not
// whitespace, io.cc's std::isgraph(*s) check for "nothing meaningful
// follows".
func (sc *scanner) isGraph() bool {
	ch, ok := sc.peek()
	return ok && ch > ' '
}

func (sc *scanner) skipPrefix(prefix string) bool {
	if len(sc.s)-sc.pos < len(prefix) || sc.s[sc.pos:sc.pos+len(prefix)] != prefix {
		return false
	}
	sc.pos += len(prefix)
	return true
}

func isColumnChar(ch byte) bool { return ch >= 'a' && ch <= 'h' }
func isRowChar(ch byte) bool    { return ch >= '1' && ch <= '8' }

func columnMask(file int) types.Bitboard {
	return types.Bitboard(bitops.Column(uint64(types.NewSquare(file, 0).Bb())))
}

func rowMask(rank int) types.Bitboard {
	return types.Bitboard(bitops.Row(uint64(types.NewSquare(0, rank).Bb())))
}

// scanAlgPos reads a full algebraic square ("e4"); role labels which
// MoveError Kind a malformed character is reported as, since the same
// grammar rule serves both origin and destination positions and spec.md
// distinguishes "invalid character" (origin, a free-form parse failure)
// from "invalid destination" (the destination square specifically).
func scanAlgPos(sc *scanner, role string, raw string) (types.Square, error) {
	ch1, ok := sc.next()
	if !ok {
		return 0, newError(ErrTruncatedInput, raw, "truncated move, expected a column character")
	}
	if !isColumnChar(ch1) {
		return 0, invalidPositionError(role, raw, ch1, "column")
	}
	ch2, ok := sc.next()
	if !ok {
		return 0, newError(ErrTruncatedInput, raw, "truncated move, expected a row character")
	}
	if !isRowChar(ch2) {
		return 0, invalidPositionError(role, raw, ch2, "row")
	}
	return types.NewSquare(int(ch1-'a'), int(ch2-'1')), nil
}

func invalidPositionError(role, raw string, ch byte, axis string) error {
	if role == "destination" {
		return newError(ErrInvalidDestination, raw, "invalid character for "+axis+" of destination: '"+string(ch)+"'")
	}
	return newError(ErrInvalidCharacter, raw, "invalid character for "+axis+": '"+string(ch)+"'")
}

// scanPartialAlgPos reads an optional column, an optional row, or a full
// square, narrowing BbAll at each step; an unparseable cursor (neither
// char present) leaves the whole board as the mask, mirroring io.cc's
// "returns the whole board if unparseable".
func scanPartialAlgPos(sc *scanner) types.Bitboard {
	mask := types.BbAll
	ch, ok := sc.peek()
	if ok && isColumnChar(ch) {
		mask &= columnMask(int(ch - 'a'))
		sc.pos++
		ch, ok = sc.peek()
	}
	if ok && isRowChar(ch) {
		mask &= rowMask(int(ch - '1'))
		sc.pos++
	}
	return mask
}

// characterToMovedPiece maps an uppercase piece letter to its kind,
// defaulting to Pawn (pawn moves are written without a piece letter).
func characterToMovedPiece(ch byte) types.PieceType {
	switch ch {
	case 'B':
		return types.Bishop
	case 'K':
		return types.King
	case 'N':
		return types.Knight
	case 'Q':
		return types.Queen
	case 'R':
		return types.Rook
	default:
		return types.Pawn
	}
}

// scanMoveSuffix reads an optional "=<piece>" promotion suffix followed
// by an optional '+'/'#' check/mate flag, the tail every move token ends
// with regardless of its shape.
func scanMoveSuffix(sc *scanner, pm *ParsedMove, raw string) error {
	if ch, ok := sc.peek(); ok && ch == '=' {
		sc.pos++
		pch, ok := sc.next()
		if !ok {
			return newError(ErrTruncatedInput, raw, "truncated move, expected a promotion piece")
		}
		piece := characterToMovedPiece(pch)
		if piece == types.Pawn {
			return newError(ErrWrongPromotion, raw, "invalid promotion piece: '"+string(pch)+"'")
		}
		pm.Kind = KindPromotion
		pm.PromotingPiece = piece
	}
	switch ch, ok := sc.peek(); {
	case ok && ch == '+':
		pm.Flag = FlagCheck
		sc.pos++
	case ok && ch == '#':
		pm.Flag = FlagCheckmate
		sc.pos++
	default:
		pm.Flag = FlagNone
	}
	return nil
}

// ParseMove scans one notation token (no surrounding whitespace) into a
// ParsedMove under fmt's grammar. Supplemented from
// original_source/cheapshot/io.cc's scan_input_move/scan_move_suffix -
// spec.md's §6 sketches the grammar but not this level of detail.
func ParseMove(raw string, fmt Format) (ParsedMove, error) {
	if raw == "" {
		return ParsedMove{}, newError(ErrEmptyMove, raw, "empty move")
	}
	sc := newScanner(raw)
	pm := ParsedMove{PromotingPiece: NoPromotion}

	switch {
	case sc.skipPrefix(longCastlingNotation):
		pm.Kind = KindLongCastling
	case sc.skipPrefix(shortCastlingNotation):
		pm.Kind = KindShortCastling
	default:
		ch, ok := sc.peek()
		if !ok {
			return pm, newError(ErrTruncatedInput, raw, "truncated move")
		}
		pm.MovingPiece = characterToMovedPiece(ch)
		if pm.MovingPiece != types.Pawn {
			sc.pos++
		}

		if fmt.LongAlgebraic {
			sq, err := scanAlgPos(sc, "origin", raw)
			if err != nil {
				return pm, err
			}
			pm.Origin = sq.Bb()
		} else {
			pos1 := scanPartialAlgPos(sc)
			if types.IsSingleBit(pos1) {
				mark := sc.pos
				if err := scanMoveSuffix(sc, &pm, raw); err != nil {
					return pm, err
				}
				if sc.pos != mark || !sc.isGraph() {
					pm.Origin = types.BbAll
					pm.Destination = pos1
					return pm, nil
				}
				// sc.pos==mark here: the tentative suffix scan matched
				// nothing (it only ever advances on '=', '+' or '#',
				// none of which start a separator or destination), so
				// pm is still untouched and pos1 was an origin hint,
				// not the whole move - fall through to normal parsing.
			}
			pm.Origin = pos1
		}

		sep, hasSep := sc.peek()
		switch {
		case hasSep && sep == 'x':
			sc.pos++
			pm.IsCapture = true
		case hasSep && sep == '-':
			if fmt.LongAlgebraic {
				sc.pos++
			} else {
				return pm, newError(ErrSeparator, raw, "'-' as separator not allowed in short algebraic format")
			}
		default:
			if fmt.LongAlgebraic {
				msg := "expected '-' or 'x' as separator"
				if hasSep {
					msg += ", got: '" + string(sep) + "'"
				}
				return pm, newError(ErrSeparator, raw, msg)
			}
		}

		destSq, err := scanAlgPos(sc, "destination", raw)
		if err != nil {
			return pm, err
		}
		pm.Destination = destSq.Bb()
	}

	if fmt.ExplicitEp && pm.MovingPiece == types.Pawn && pm.IsCapture &&
		(sc.skipPrefix("e.p.") || sc.skipPrefix("ep")) {
		pm.Kind = KindEnPassant
	}
	if err := scanMoveSuffix(sc, &pm, raw); err != nil {
		return pm, err
	}
	return pm, nil
}

// DetectEnPassant reclassifies a plain pawn capture landing on ctx's
// ep-info square as an en-passant capture, the PGN-style implicit
// detection Format.ExplicitEp's long-algebraic "ep" suffix skips.
func DetectEnPassant(pm ParsedMove, epInfo types.Bitboard) ParsedMove {
	if pm.Kind == KindNormal && pm.MovingPiece == types.Pawn && pm.IsCapture && pm.Destination == epInfo {
		pm.Kind = KindEnPassant
	}
	return pm
}

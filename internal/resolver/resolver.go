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

import (
	"github.com/negamaxgo/cheapgo/internal/board"
	"github.com/negamaxgo/cheapgo/internal/engine"
	"github.com/negamaxgo/cheapgo/internal/movegen"
	"github.com/negamaxgo/cheapgo/internal/types"
)

// reversePawnPush and reversePawnCapture dispatch movegen's SideTag
// generics to a runtime Side value, the same WhiteTag/BlackTag switch
// engine.recurseChild uses (types.OtherTag's doc comment names this as
// the pattern for exactly this situation).
func reversePawnPush(side types.Side, destination, allPieces types.Bitboard) types.Bitboard {
	if side == types.White {
		return movegen.ReversePawnPush[types.WhiteTag](destination, allPieces)
	}
	return movegen.ReversePawnPush[types.BlackTag](destination, allPieces)
}

func reversePawnCapture(side types.Side, destination, ownPawns types.Bitboard) types.Bitboard {
	if side == types.White {
		return movegen.ReversePawnCapture[types.WhiteTag](destination, ownPawns)
	}
	return movegen.ReversePawnCapture[types.BlackTag](destination, ownPawns)
}

func applyEnPassant(b *board.Board, side types.Side, origin, destination types.Bitboard) engine.ScopedMove2 {
	if side == types.White {
		return engine.ApplyEnPassant[types.WhiteTag](b, origin, destination)
	}
	return engine.ApplyEnPassant[types.BlackTag](b, origin, destination)
}

func castlingFor(side types.Side, long bool) movegen.CastlingDescriptor {
	if side == types.White {
		if long {
			return movegen.LongCastling[types.WhiteTag]()
		}
		return movegen.ShortCastling[types.WhiteTag]()
	}
	if long {
		return movegen.LongCastling[types.BlackTag]()
	}
	return movegen.ShortCastling[types.BlackTag]()
}

// reverseGeneratorFor answers possible_origins's non-pawn branch: every
// piece but the pawn is its own reverse generator.
func reverseGeneratorFor(pt types.PieceType) movegen.ReverseGenerator {
	switch pt {
	case types.Knight:
		return movegen.Knight
	case types.Bishop:
		return movegen.Bishop
	case types.Rook:
		return movegen.Rook
	case types.Queen:
		return movegen.Queen
	default:
		return movegen.King
	}
}

// enPassantMask reports the square a freshly double-stepped pawn can be
// captured on, given the side's pawn bitboard before and after one move;
// BbZero unless the move cleared exactly one origin and set exactly one
// destination two ranks apart on the same file. Grounded on spec.md
// §4.7's description of en_passant_mask - the body wasn't present in the
// retrieved original_source/cheapshot headers, only its call sites.
func enPassantMask(oldPawns, newPawns types.Bitboard) types.Bitboard {
	diff := oldPawns ^ newPawns
	if diff.PopCount() != 2 {
		return types.BbZero
	}
	origin := (oldPawns & diff).Lsb()
	destination := (newPawns & diff).Lsb()
	if origin.File() != destination.File() {
		return types.BbZero
	}
	switch destination.Rank() - origin.Rank() {
	case 2:
		return types.NewSquare(origin.File(), origin.Rank()+1).Bb()
	case -2:
		return types.NewSquare(origin.File(), origin.Rank()-1).Bb()
	default:
		return types.BbZero
	}
}

// disambiguate narrows a multi-bit set of remaining candidate origins
// (the real move has already been made from chosen) down to "exactly
// one is safe", by toggling each alternative onto pt's bitboard
// alongside chosen and testing king safety - a direct port of
// io.cc's make_move<S> disambiguation loop, using a scoped guard instead
// of a manual re-apply-to-undo XOR.
func disambiguate(b *board.Board, side types.Side, pt types.PieceType, chosen, rest types.Bitboard, raw string) error {
	validPosition := !movegen.KingInCheck(b, side)
	for rest != 0 {
		alt := rest.PopLsb().Bb()
		g := engine.NewScopedMove(&b[side][pt], chosen|alt)
		attacked := movegen.KingInCheck(b, side)
		g.Close()
		if attacked {
			continue
		}
		if validPosition {
			return newError(ErrAmbiguousOrigin, raw, "piece origin not uniquely defined")
		}
		validPosition = true
	}
	if !validPosition {
		return newError(ErrSelfCheck, raw, "move-attempt results in self-check")
	}
	return nil
}

// validateFlags is step 8: a one-ply search from the post-move position
// checks the mover's opponent for check and, if found (or flagged),
// for checkmate, and compares against the notation's '+'/'#' suffix.
// Ported from io.cc's check_game_state<S>, S there being the side that
// just moved (our side parameter).
func validateFlags(b *board.Board, newCtx board.Context, side types.Side, pm ParsedMove, raw string) error {
	checkAnalyzed := movegen.KingInCheck(b, side.Other())
	checkFlagSet := pm.Flag == FlagCheck || pm.Flag == FlagCheckmate
	if checkAnalyzed != checkFlagSet {
		return newError(ErrCheckFlagMismatch, raw, "check-flag incorrect")
	}

	checkmateAnalyzed := false
	if checkFlagSet || checkAnalyzed {
		ctrl := engine.NewController(
			b, newCtx, 1, engine.NewMinimax(side.Other()), engine.NoopHasher{}, engine.NoopMaterial{}, engine.NoopCache{},
		)
		score := engine.ScorePosition(ctrl, newCtx)
		checkmateAnalyzed = score == types.CheckmateFor(side)
	}
	checkmateFlagSet := pm.Flag == FlagCheckmate
	if checkmateAnalyzed != checkmateFlagSet {
		return newError(ErrCheckFlagMismatch, raw, "checkmate-flag incorrect")
	}
	return nil
}

// resolveCastle handles steps 1, 7 and 8 for a castling move: no
// reverse-generator search is needed, castling_allowed is the whole
// legality test.
func resolveCastle(b *board.Board, ctx board.Context, side types.Side, pm ParsedMove, raw string) (board.Context, error) {
	d := castlingFor(side, pm.Kind == KindLongCastling)
	opponentAttacks := movegen.AttackedSquares(b, side.Other())
	attacked := func(sq types.Square) bool { return opponentAttacks.Has(sq) }
	if !movegen.CastlingAllowed(d, ctx.CastlingRights, b.OccupiedAll(), attacked) {
		return ctx, newError(ErrIllegalMove, raw, "castling not allowed")
	}
	engine.ApplyCastle(b, side, d)

	newCtx := ctx
	newCtx.EpInfo = types.BbZero
	newCtx.CastlingRights = ctx.CastlingRights.Revoke(types.ShortRight(side) | types.LongRight(side))
	newCtx.HalfmoveCount = ctx.HalfmoveCount + 1
	newCtx.HalfmoveClock = ctx.HalfmoveClock + 1

	if err := validateFlags(b, newCtx, side, pm, raw); err != nil {
		return newCtx, err
	}
	return newCtx, nil
}

// resolveNormal handles every non-castling shape (plain move, capture,
// en passant, promotion) through steps 2-8 of spec.md §4.7's algorithm.
func resolveNormal(b *board.Board, ctx board.Context, side types.Side, pm ParsedMove, raw string) (board.Context, error) {
	metrics := board.NewMetrics(b)
	oldPawns := b[side][types.Pawn]

	var origins types.Bitboard
	switch {
	case pm.Kind == KindEnPassant:
		origins = reversePawnCapture(side, pm.Destination, b[side][types.Pawn])
	case pm.MovingPiece == types.Pawn && pm.Destination&metrics.Opposing(side) != 0:
		origins = reversePawnCapture(side, pm.Destination, b[side][types.Pawn])
	case pm.MovingPiece == types.Pawn:
		origins = reversePawnPush(side, pm.Destination, metrics.All)
	default:
		origins = reverseGeneratorFor(pm.MovingPiece)(pm.Destination, metrics.All)
	}

	origins &= b[side][pm.MovingPiece]
	if origins == 0 {
		return ctx, newError(ErrMissingPiece, raw, "trying to move a missing piece")
	}
	origins &= pm.Origin
	if origins == 0 {
		return ctx, newError(ErrIllegalMove, raw, "trying to make illegal move")
	}

	chosen := origins.Lsb().Bb()
	rest := origins &^ chosen

	if pm.Kind == KindPromotion {
		promRank := types.Bitboard(0xFF00000000000000)
		if side == types.Black {
			promRank = 0xFF
		}
		if pm.Destination&promRank == 0 {
			return ctx, newError(ErrWrongPromotion, raw, "promotion only allowed on last row")
		}
	}

	var capturedSide types.Side
	var capturedPt types.PieceType
	var capturedSquare types.Bitboard
	captured := false

	if pm.Kind == KindEnPassant {
		if pm.Destination != ctx.EpInfo {
			return ctx, newError(ErrEnPassantNotAllowed, raw, "en passant capture not allowed")
		}
		applyEnPassant(b, side, chosen, pm.Destination)
		capturedSide, capturedPt, captured = side.Other(), types.Pawn, true
		capturedSquare = pm.Destination >> 8
		if side == types.Black {
			capturedSquare = pm.Destination << 8
		}
	} else {
		destinationOccupied := pm.Destination&metrics.Opposing(side) != 0
		if pm.IsCapture {
			if !destinationOccupied {
				return ctx, newError(ErrCaptureMisindication, raw, "trying to capture a missing piece")
			}
			capturedPt, _ = engine.CapturedPieceAt(b, side.Other(), pm.Destination)
			engine.ApplyCapture(b, side, pm.MovingPiece, chosen, pm.Destination, side.Other(), capturedPt)
			capturedSide, capturedSquare, captured = side.Other(), pm.Destination, true
		} else {
			if destinationOccupied {
				return ctx, newError(ErrCaptureMisindication, raw, "capture without indication with 'x'")
			}
			engine.ApplyBasicMove(b, side, pm.MovingPiece, chosen|pm.Destination)
		}

		if pm.Kind == KindPromotion {
			engine.ApplyPromotion(b, side, pm.PromotingPiece, pm.Destination)
		}
	}

	if err := disambiguate(b, side, pm.MovingPiece, chosen, rest, raw); err != nil {
		return ctx, err
	}

	newCtx := ctx
	newCtx.EpInfo = enPassantMask(oldPawns, b[side][types.Pawn])
	newRights := ctx.CastlingRights.Revoke(engine.RevokedBy(side, pm.MovingPiece, chosen))
	if captured {
		newRights = newRights.Revoke(engine.RevokedByCapture(capturedSide, capturedPt, capturedSquare))
	}
	newCtx.CastlingRights = newRights
	newCtx.HalfmoveCount = ctx.HalfmoveCount + 1
	if captured || pm.MovingPiece == types.Pawn {
		newCtx.HalfmoveClock = 0
	} else {
		newCtx.HalfmoveClock = ctx.HalfmoveClock + 1
	}

	if err := validateFlags(b, newCtx, side, pm, raw); err != nil {
		return newCtx, err
	}
	return newCtx, nil
}

// Resolve applies one already-parsed move to b in place and returns the
// context it leaves behind. b is left unmutated on a failure detected
// before the move is committed (missing piece, illegal move, capture
// misindication, en-passant not allowed, wrong promotion, castling not
// allowed). It is left mutated - matching upstream, which never rolls
// a committed move back either - on a failure only detectable after
// commit: ambiguous origin, self-check, or a '+'/'#' flag mismatch
// (see DESIGN.md).
func Resolve(b *board.Board, ctx board.Context, side types.Side, pm ParsedMove, raw string) (board.Context, error) {
	if pm.Kind == KindLongCastling || pm.Kind == KindShortCastling {
		return resolveCastle(b, ctx, side, pm, raw)
	}
	return resolveNormal(b, ctx, side, pm, raw)
}

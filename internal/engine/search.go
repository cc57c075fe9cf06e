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

package engine

import (
	"github.com/negamaxgo/cheapgo/internal/board"
	"github.com/negamaxgo/cheapgo/internal/movegen"
	"github.com/negamaxgo/cheapgo/internal/types"
)

// noPromotion marks a candidate move as not a promotion; PieceTypeCount
// is one past the last valid piece kind so it never collides with a
// real promoted-to piece.
const noPromotion = types.PieceType(types.PieceTypeCount)

type moveKind int

const (
	kindBasic moveKind = iota
	kindCapture
	kindEnPassant
	kindCastle
)

// candidate is one pseudo-legal move, fully described so applyAndRecurse
// can mutate the board, hash and material incrementally without looking
// anything up a second time.
type candidate struct {
	pt          types.PieceType
	origin      types.Bitboard
	destination types.Bitboard
	kind        moveKind
	capturedPt  types.PieceType
	promoted    types.PieceType
	castle      movegen.CastlingDescriptor
	newEp       types.Bitboard
}

var (
	whiteShortRookHome = types.SqH1.Bb()
	whiteLongRookHome  = types.SqA1.Bb()
	blackShortRookHome = types.SqH8.Bb()
	blackLongRookHome  = types.SqA8.Bb()
)

// RevokedBy returns the castling rights a move of pt from origin gives
// up: a king move forfeits both of its side's rights, a rook move off
// its home square forfeits that one right.
func RevokedBy(side types.Side, pt types.PieceType, origin types.Bitboard) types.CastlingRights {
	var r types.CastlingRights
	switch pt {
	case types.King:
		r |= types.ShortRight(side) | types.LongRight(side)
	case types.Rook:
		if side == types.White {
			if origin&whiteShortRookHome != 0 {
				r |= types.WhiteShort
			}
			if origin&whiteLongRookHome != 0 {
				r |= types.WhiteLong
			}
		} else {
			if origin&blackShortRookHome != 0 {
				r |= types.BlackShort
			}
			if origin&blackLongRookHome != 0 {
				r |= types.BlackLong
			}
		}
	}
	return r
}

// RevokedByCapture returns the castling rights capturedSide gives up
// when capturedPt is removed from destination: a rook captured on its
// own home square forfeits that right, regardless of who captured it.
func RevokedByCapture(capturedSide types.Side, capturedPt types.PieceType, destination types.Bitboard) types.CastlingRights {
	if capturedPt != types.Rook {
		return types.NoCastlingRights
	}
	var r types.CastlingRights
	if capturedSide == types.White {
		if destination&whiteShortRookHome != 0 {
			r |= types.WhiteShort
		}
		if destination&whiteLongRookHome != 0 {
			r |= types.WhiteLong
		}
	} else {
		if destination&blackShortRookHome != 0 {
			r |= types.BlackShort
		}
		if destination&blackLongRookHome != 0 {
			r |= types.BlackLong
		}
	}
	return r
}

// applyAndRecurse mutates ctrl.Board and ctrl.Hasher/ctrl.Material for
// one candidate move, rejects it if it leaves side's own king attacked,
// otherwise recurses into the resulting position and always unwinds the
// mutation before returning - the make/recurse/unmake sequence happens
// inside this one function call so its deferred closers fire once per
// candidate, not once per enclosing loop.
func applyAndRecurse[P Pruning, H Hasher, M Material, C Cache](
	ctrl *Controller[P, H, M, C], side types.Side, ctx board.Context, cand candidate,
) (legal, cutoff bool) {
	b := ctrl.Board
	var closers []func()
	resetClock := false

	switch cand.kind {
	case kindBasic:
		g := ApplyBasicMove(b, side, cand.pt, cand.origin|cand.destination)
		closers = append(closers, g.Close,
			ctrl.Hasher.EnterMove(side, cand.pt, b[side][cand.pt], cand.origin|cand.destination))
		if cand.pt == types.Pawn {
			resetClock = true
		}
	case kindCapture:
		g := ApplyCapture(b, side, cand.pt, cand.origin, cand.destination, side.Other(), cand.capturedPt)
		closers = append(closers, g.Close,
			ctrl.Hasher.EnterMove(side, cand.pt, b[side][cand.pt], cand.origin|cand.destination),
			ctrl.Hasher.EnterMove(side.Other(), cand.capturedPt, b[side.Other()][cand.capturedPt], cand.destination),
			ctrl.Material.EnterDelta(CaptureDelta(side.Other(), cand.capturedPt)))
		resetClock = true
	case kindEnPassant:
		var g ScopedMove2
		var capturedSquare types.Bitboard
		if side == types.White {
			g = ApplyEnPassant[types.WhiteTag](b, cand.origin, cand.destination)
			capturedSquare = cand.destination >> 8
		} else {
			g = ApplyEnPassant[types.BlackTag](b, cand.origin, cand.destination)
			capturedSquare = cand.destination << 8
		}
		closers = append(closers, g.Close,
			ctrl.Hasher.EnterMove(side, types.Pawn, b[side][types.Pawn], cand.origin|cand.destination),
			ctrl.Hasher.EnterMove(side.Other(), types.Pawn, b[side.Other()][types.Pawn], capturedSquare),
			ctrl.Material.EnterDelta(CaptureDelta(side.Other(), types.Pawn)))
		resetClock = true
	case kindCastle:
		g := ApplyCastle(b, side, cand.castle)
		closers = append(closers, g.Close,
			ctrl.Hasher.EnterMove(side, types.King, b[side][types.King], cand.castle.KingFrom|cand.castle.KingTo),
			ctrl.Hasher.EnterMove(side, types.Rook, b[side][types.Rook], cand.castle.RookFrom|cand.castle.RookTo))
	}

	if cand.promoted != noPromotion {
		pg := ApplyPromotion(b, side, cand.promoted, cand.destination)
		closers = append(closers, pg.Close,
			ctrl.Hasher.EnterMove(side, types.Pawn, b[side][types.Pawn], cand.destination),
			ctrl.Hasher.EnterMove(side, cand.promoted, b[side][cand.promoted], cand.destination),
			ctrl.Material.EnterDelta(PromotionDelta(side, cand.promoted)))
	}

	if ctx.EpInfo != 0 {
		closers = append(closers, ctrl.Hasher.EnterEpChange(ctx.EpInfo))
	}
	if cand.newEp != 0 {
		closers = append(closers, ctrl.Hasher.EnterEpChange(cand.newEp))
	}

	newRights := ctx.CastlingRights.Revoke(RevokedBy(side, cand.pt, cand.origin))
	if cand.kind == kindCapture {
		newRights = newRights.Revoke(RevokedByCapture(side.Other(), cand.capturedPt, cand.destination))
	}
	if cand.kind == kindCastle {
		newRights = newRights.Revoke(types.ShortRight(side) | types.LongRight(side))
	}
	if newRights != ctx.CastlingRights {
		closers = append(closers, ctrl.Hasher.EnterCastlingChange(ctx.CastlingRights, newRights))
	}

	closers = append(closers, ctrl.Hasher.EnterTurn())

	childCtx := ctx
	childCtx.HalfmoveCount = ctx.HalfmoveCount + 1
	childCtx.EpInfo = cand.newEp
	childCtx.CastlingRights = newRights
	if resetClock {
		childCtx.HalfmoveClock = 0
	} else {
		childCtx.HalfmoveClock = ctx.HalfmoveClock + 1
	}

	return tryCandidate(ctrl, side, childCtx, closers...)
}

// tryCandidate assumes applyAndRecurse has already mutated the board; it
// rejects the move if it leaves side's own king attacked, otherwise
// recurses. closers are run, last-opened first, before returning either
// way.
func tryCandidate[P Pruning, H Hasher, M Material, C Cache](
	ctrl *Controller[P, H, M, C], side types.Side, childCtx board.Context, closers ...func(),
) (legal, cutoff bool) {
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()
	if movegen.KingInCheck(ctrl.Board, side) {
		return false, false
	}
	return true, recurseChild(ctrl, childCtx)
}

// recurseChild picks AnalyzePosition's WhiteTag or BlackTag instantiation
// at runtime, since childCtx's side to move isn't known at compile time
// the way the enclosing node's own side is.
func recurseChild[P Pruning, H Hasher, M Material, C Cache](ctrl *Controller[P, H, M, C], childCtx board.Context) bool {
	if childCtx.Side() == types.White {
		return RecurseWithCutoff[types.WhiteTag](ctrl, childCtx)
	}
	return RecurseWithCutoff[types.BlackTag](ctrl, childCtx)
}

// RecurseWithCutoff opens ctrl.Pruning's per-child scope, recurses into
// childCtx and reports whether the enclosing node can stop enumerating
// its remaining candidates.
func RecurseWithCutoff[S types.SideTag, P Pruning, H Hasher, M Material, C Cache](
	ctrl *Controller[P, H, M, C], childCtx board.Context,
) bool {
	var tag S
	childSide := tag.Value()
	guard := ctrl.Pruning.EnterChild(childSide)
	AnalyzePosition[S](ctrl, childCtx)
	guard.Close()
	return ctrl.Pruning.Cutoff(childSide)
}

// pieceOrder is the order AnalyzePosition walks non-pawn pieces in,
// captures before quiets within each.
var pieceOrder = [5]types.PieceType{types.Knight, types.Bishop, types.Rook, types.Queen, types.King}

func generatorFor(pt types.PieceType) movegen.Generator {
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

// promotionOrder is the order promoted-to piece kinds are tried in, Q,
// N, R, B as spec'd.
var promotionOrder = [4]types.PieceType{types.Queen, types.Knight, types.Rook, types.Bishop}

// AnalyzePosition walks every pseudo-legal move of S from ctx, in the
// fixed order en passant, castling, pawns (captures, quiets, each
// promotion tried Q/N/R/B), then the remaining five piece kinds
// (captures before quiets). Illegal candidates (those leaving S's own
// king attacked) are skipped without recursing further. ctrl.Pruning
// holds the node's resulting score on return.
func AnalyzePosition[S types.SideTag, P Pruning, H Hasher, M Material, C Cache](
	ctrl *Controller[P, H, M, C], ctx board.Context,
) {
	var tag S
	side := tag.Value()
	b := ctrl.Board

	if ctrl.AtDepthLimit(ctx) {
		leafScore(ctrl)
		return
	}

	remainingPlies := ctrl.MaxPlies - (ctx.HalfmoveCount - ctrl.rootHalfmove)
	probe := ctrl.Cache.Insert(ctrl.Hasher.Hash(), remainingPlies)
	if score, ok := probe.HitCheck(side, remainingPlies); ok {
		ctrl.Pruning.SetScore(score)
		return
	}

	metrics := board.NewMetrics(b)
	ownKingInCheck := movegen.KingInCheck(b, side)
	anyLegal := false
	stop := false

	process := func(cands []candidate) {
		if stop {
			return
		}
		for _, cand := range cands {
			legal, cutoff := applyAndRecurse(ctrl, side, ctx, cand)
			if legal {
				anyLegal = true
			}
			if cutoff {
				stop = true
				return
			}
		}
	}

	// en passant
	var epCands []candidate
	if ctx.EpInfo != 0 {
		for origins := b[side][types.Pawn]; origins != 0; {
			origin := origins.PopLsb().Bb()
			target := movegen.EnPassantCapture[S](origin, ctx.EpInfo)
			if target != 0 {
				epCands = append(epCands, candidate{pt: types.Pawn, origin: origin, destination: target, kind: kindEnPassant, promoted: noPromotion})
			}
		}
	}
	process(epCands)

	// castling
	if !stop {
		opponentAttacks := movegen.AttackedSquares(b, side.Other())
		attacked := func(sq types.Square) bool { return opponentAttacks.Has(sq) }
		var castleCands []candidate
		short := movegen.ShortCastling[S]()
		if movegen.CastlingAllowed(short, ctx.CastlingRights, metrics.All, attacked) {
			castleCands = append(castleCands, candidate{pt: types.King, origin: short.KingFrom, destination: short.KingTo, kind: kindCastle, castle: short, promoted: noPromotion})
		}
		long := movegen.LongCastling[S]()
		if movegen.CastlingAllowed(long, ctx.CastlingRights, metrics.All, attacked) {
			castleCands = append(castleCands, candidate{pt: types.King, origin: long.KingFrom, destination: long.KingTo, kind: kindCastle, castle: long, promoted: noPromotion})
		}
		process(castleCands)
	}

	// pawns: captures then quiets per origin, promotions tried Q/N/R/B
	if !stop {
		var promRank types.Bitboard = 0xFF00000000000000
		if side == types.Black {
			promRank = 0xFF
		}
		var pawnCands []candidate
		addDestinations := func(origin, destinations types.Bitboard, isCapture bool) {
			for destinations != 0 {
				destSq := destinations.PopLsb()
				destination := destSq.Bb()
				var capturedPt types.PieceType
				if isCapture {
					capturedPt, _ = CapturedPieceAt(b, side.Other(), destination)
				}
				kind := kindBasic
				if isCapture {
					kind = kindCapture
				}
				if destination&promRank != 0 {
					for _, promoted := range promotionOrder {
						pawnCands = append(pawnCands, candidate{pt: types.Pawn, origin: origin, destination: destination, kind: kind, capturedPt: capturedPt, promoted: promoted})
					}
					continue
				}
				var newEp types.Bitboard
				if !isCapture {
					diff := int(destSq) - int(origin.Lsb())
					if diff == 16 {
						newEp = origin << 8
					} else if diff == -16 {
						newEp = origin >> 8
					}
				}
				pawnCands = append(pawnCands, candidate{pt: types.Pawn, origin: origin, destination: destination, kind: kind, capturedPt: capturedPt, promoted: noPromotion, newEp: newEp})
			}
		}
		for origins := b[side][types.Pawn]; origins != 0; {
			origin := origins.PopLsb().Bb()
			captures := movegen.PawnCapture[S](origin, metrics.All) & metrics.Opposing(side)
			quiets := movegen.PawnPush[S](origin, metrics.All)
			addDestinations(origin, captures, true)
			addDestinations(origin, quiets, false)
		}
		process(pawnCands)
	}

	// the remaining five piece kinds, captures then quiets within each
	for _, pt := range pieceOrder {
		if stop {
			break
		}
		gen := generatorFor(pt)
		var cands []candidate
		for origins := b[side][pt]; origins != 0; {
			origin := origins.PopLsb().Bb()
			destinations := gen(origin, metrics.All) &^ metrics.Own(side)
			captures := destinations & metrics.Opposing(side)
			quiets := destinations &^ metrics.Opposing(side)
			for d := captures; d != 0; {
				destination := d.PopLsb().Bb()
				capturedPt, _ := CapturedPieceAt(b, side.Other(), destination)
				cands = append(cands, candidate{pt: pt, origin: origin, destination: destination, kind: kindCapture, capturedPt: capturedPt, promoted: noPromotion})
			}
			for d := quiets; d != 0; {
				destination := d.PopLsb().Bb()
				cands = append(cands, candidate{pt: pt, origin: origin, destination: destination, kind: kindBasic, promoted: noPromotion})
			}
		}
		process(cands)
	}

	if !anyLegal {
		if ownKingInCheck {
			ctrl.Pruning.SetScore(types.CheckmateFor(side.Other()))
		} else {
			ctrl.Pruning.SetScore(types.StalemateFor(side))
		}
	}

	probe.WriteBack(remainingPlies, ctrl.Pruning.Score())
}

// ScorePosition runs a full search from ctx and returns the resulting
// score, dispatching to AnalyzePosition's WhiteTag or BlackTag
// instantiation based on whose move ctx records.
func ScorePosition[P Pruning, H Hasher, M Material, C Cache](ctrl *Controller[P, H, M, C], ctx board.Context) types.Score {
	if ctx.Side() == types.White {
		AnalyzePosition[types.WhiteTag](ctrl, ctx)
	} else {
		AnalyzePosition[types.BlackTag](ctrl, ctx)
	}
	return ctrl.Pruning.Score()
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negamaxgo/cheapgo/internal/board"
	"github.com/negamaxgo/cheapgo/internal/types"
)

var shortAlg = Format{}
var longAlg = Format{LongAlgebraic: true}

func TestParseMovePawnPush(t *testing.T) {
	pm, err := ParseMove("e4", shortAlg)
	require.NoError(t, err)
	assert.Equal(t, KindNormal, pm.Kind)
	assert.Equal(t, types.Pawn, pm.MovingPiece)
	assert.Equal(t, types.BbAll, pm.Origin)
	assert.Equal(t, types.SqE4.Bb(), pm.Destination)
	assert.False(t, pm.IsCapture)
}

func TestParseMoveWithOriginHint(t *testing.T) {
	pm, err := ParseMove("Ngf3", shortAlg)
	require.NoError(t, err)
	assert.Equal(t, types.Knight, pm.MovingPiece)
	assert.Equal(t, types.SqF3.Bb(), pm.Destination)
	assert.False(t, types.IsSingleBit(pm.Origin), "a column-only hint narrows but does not fully pin the origin")
}

func TestParseMoveCapture(t *testing.T) {
	pm, err := ParseMove("Nxf3", shortAlg)
	require.NoError(t, err)
	assert.True(t, pm.IsCapture)
	assert.Equal(t, types.Knight, pm.MovingPiece)
	assert.Equal(t, types.SqF3.Bb(), pm.Destination)
}

func TestParseMoveLongAlgebraic(t *testing.T) {
	pm, err := ParseMove("Ng1-f3", longAlg)
	require.NoError(t, err)
	assert.Equal(t, types.SqG1.Bb(), pm.Origin)
	assert.Equal(t, types.SqF3.Bb(), pm.Destination)

	pm, err = ParseMove("Ng1xf3", longAlg)
	require.NoError(t, err)
	assert.True(t, pm.IsCapture)
}

func TestParseMoveLongAlgebraicRequiresSeparator(t *testing.T) {
	_, err := ParseMove("Ng1f3", longAlg)
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrSeparator, me.Kind)
}

func TestParseMoveShortAlgebraicRejectsDashSeparator(t *testing.T) {
	_, err := ParseMove("Ng1-f3", shortAlg)
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrSeparator, me.Kind)
}

func TestParseMoveCastling(t *testing.T) {
	pm, err := ParseMove("O-O", shortAlg)
	require.NoError(t, err)
	assert.Equal(t, KindShortCastling, pm.Kind)

	pm, err = ParseMove("O-O-O", shortAlg)
	require.NoError(t, err)
	assert.Equal(t, KindLongCastling, pm.Kind)
}

func TestParseMovePromotion(t *testing.T) {
	pm, err := ParseMove("e8=Q", shortAlg)
	require.NoError(t, err)
	assert.Equal(t, KindPromotion, pm.Kind)
	assert.Equal(t, types.Queen, pm.PromotingPiece)
}

func TestParseMoveWrongPromotionPiece(t *testing.T) {
	_, err := ParseMove("e8=P", shortAlg)
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrWrongPromotion, me.Kind)
}

func TestParseMoveExplicitEnPassant(t *testing.T) {
	pm, err := ParseMove("exd6ep", Format{ExplicitEp: true})
	require.NoError(t, err)
	assert.Equal(t, KindEnPassant, pm.Kind)

	pm, err = ParseMove("exd6e.p.", Format{ExplicitEp: true})
	require.NoError(t, err)
	assert.Equal(t, KindEnPassant, pm.Kind)
}

func TestParseMoveCheckAndMateFlags(t *testing.T) {
	pm, err := ParseMove("Qh5+", shortAlg)
	require.NoError(t, err)
	assert.Equal(t, FlagCheck, pm.Flag)

	pm, err = ParseMove("Qh5#", shortAlg)
	require.NoError(t, err)
	assert.Equal(t, FlagCheckmate, pm.Flag)
}

func TestParseMoveEmpty(t *testing.T) {
	_, err := ParseMove("", shortAlg)
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrEmptyMove, me.Kind)
}

func TestParseMoveTruncated(t *testing.T) {
	_, err := ParseMove("e", shortAlg)
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrTruncatedInput, me.Kind)
}

func TestDetectEnPassantReclassifiesPlainCapture(t *testing.T) {
	pm := ParsedMove{Kind: KindNormal, MovingPiece: types.Pawn, IsCapture: true, Destination: types.SqD6.Bb()}
	got := DetectEnPassant(pm, types.SqD6.Bb())
	assert.Equal(t, KindEnPassant, got.Kind)

	got = DetectEnPassant(pm, types.SqC6.Bb())
	assert.Equal(t, KindNormal, got.Kind, "destination not matching ep target stays a plain capture")
}

func TestResolveSimplePawnPush(t *testing.T) {
	b := board.InitialBoard()
	pm, err := ParseMove("e4", shortAlg)
	require.NoError(t, err)

	ctx, err := Resolve(&b, board.StartContext, types.White, pm, "e4")
	require.NoError(t, err)
	assert.Zero(t, b[types.White][types.Pawn]&types.SqE2.Bb())
	assert.NotZero(t, b[types.White][types.Pawn]&types.SqE4.Bb())
	assert.Equal(t, types.SqE3.Bb(), ctx.EpInfo, "a double push sets the square behind it as the ep target")
}

func TestResolveMissingPiece(t *testing.T) {
	b := board.InitialBoard()
	pm, err := ParseMove("Nf6", shortAlg)
	require.NoError(t, err)

	before := b
	_, err = Resolve(&b, board.StartContext, types.White, pm, "Nf6")
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrMissingPiece, me.Kind)
	assert.Equal(t, before, b, "a rejected move leaves the board untouched")
}

func TestResolveCaptureMisindicationOnEmptyDestination(t *testing.T) {
	b := board.InitialBoard()
	pm, err := ParseMove("Nxf3", shortAlg)
	require.NoError(t, err)

	before := b
	_, err = Resolve(&b, board.StartContext, types.White, pm, "Nxf3")
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrCaptureMisindication, me.Kind)
	assert.Equal(t, before, b)
}

func TestResolveCaptureMisindicationMissingX(t *testing.T) {
	var b board.Board
	b[types.White][types.Pawn] = types.SqE4.Bb()
	b[types.Black][types.Pawn] = types.SqD5.Bb()
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.Black][types.King] = types.SqE8.Bb()

	pm, err := ParseMove("exd5", shortAlg)
	require.NoError(t, err)
	pm.IsCapture = false // simulate a token that forgot the 'x'

	before := b
	_, err = Resolve(&b, board.StartContext, types.White, pm, "ed5")
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrCaptureMisindication, me.Kind)
	assert.Equal(t, before, b)
}

func TestResolveWrongPromotionRankLeavesBoardUntouched(t *testing.T) {
	var b board.Board
	b[types.White][types.Pawn] = types.SqE4.Bb()
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.Black][types.King] = types.SqE8.Bb()

	pm, err := ParseMove("e5=Q", shortAlg)
	require.NoError(t, err)

	before := b
	_, err = Resolve(&b, board.StartContext, types.White, pm, "e5=Q")
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrWrongPromotion, me.Kind)
	assert.Equal(t, before, b)
}

func TestResolvePromotion(t *testing.T) {
	var b board.Board
	b[types.White][types.Pawn] = types.SqE7.Bb()
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.Black][types.King] = types.SqA8.Bb()

	pm, err := ParseMove("e8=Q+", shortAlg)
	require.NoError(t, err)

	ctx, err := Resolve(&b, board.StartContext, types.White, pm, "e8=Q+")
	require.NoError(t, err)
	assert.Zero(t, b[types.White][types.Pawn])
	assert.NotZero(t, b[types.White][types.Queen]&types.SqE8.Bb())
	assert.Zero(t, ctx.EpInfo)
}

func TestResolveEnPassantCapture(t *testing.T) {
	var b board.Board
	b[types.White][types.Pawn] = types.SqE5.Bb()
	b[types.Black][types.Pawn] = types.SqD5.Bb()
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.Black][types.King] = types.SqE8.Bb()

	ctx := board.StartContext
	ctx.EpInfo = types.SqD6.Bb()

	pm, err := ParseMove("exd6", shortAlg)
	require.NoError(t, err)
	pm = DetectEnPassant(pm, ctx.EpInfo)
	require.Equal(t, KindEnPassant, pm.Kind)

	newCtx, err := Resolve(&b, ctx, types.White, pm, "exd6")
	require.NoError(t, err)
	assert.Zero(t, b[types.White][types.Pawn]&types.SqE5.Bb())
	assert.NotZero(t, b[types.White][types.Pawn]&types.SqD6.Bb())
	assert.Zero(t, b[types.Black][types.Pawn], "the captured pawn is removed from d5")
	assert.Zero(t, newCtx.EpInfo)
}

func TestResolveEnPassantNotAllowedWithoutMatchingTarget(t *testing.T) {
	var b board.Board
	b[types.White][types.Pawn] = types.SqE5.Bb()
	b[types.Black][types.Pawn] = types.SqD5.Bb()
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.Black][types.King] = types.SqE8.Bb()

	pm, err := ParseMove("exd6", shortAlg)
	require.NoError(t, err)
	pm.Kind = KindEnPassant

	before := b
	_, err = Resolve(&b, board.StartContext, types.White, pm, "exd6")
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrEnPassantNotAllowed, me.Kind)
	assert.Equal(t, before, b)
}

func TestResolveShortCastling(t *testing.T) {
	var b board.Board
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.White][types.Rook] = types.SqH1.Bb()
	b[types.Black][types.King] = types.SqE8.Bb()

	ctx := board.StartContext
	pm, err := ParseMove("O-O", shortAlg)
	require.NoError(t, err)

	newCtx, err := Resolve(&b, ctx, types.White, pm, "O-O")
	require.NoError(t, err)
	assert.Equal(t, types.SqG1.Bb(), b[types.White][types.King])
	assert.Equal(t, types.SqF1.Bb(), b[types.White][types.Rook])
	assert.False(t, newCtx.CastlingRights.Has(types.WhiteShort), "castling revokes the right it used")
	assert.False(t, newCtx.CastlingRights.Has(types.WhiteLong), "a king move revokes both of its side's rights")
}

func TestResolveCastlingThroughCheckIsRejected(t *testing.T) {
	var b board.Board
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.White][types.Rook] = types.SqH1.Bb()
	b[types.Black][types.King] = types.SqE8.Bb()
	b[types.Black][types.Rook] = types.SqF8.Bb() // attacks f1, the king's transit square

	pm, err := ParseMove("O-O", shortAlg)
	require.NoError(t, err)

	before := b
	_, err = Resolve(&b, board.StartContext, types.White, pm, "O-O")
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrIllegalMove, me.Kind)
	assert.Equal(t, before, b)
}

func TestResolveAmbiguousOriginWhenBothCandidatesSafe(t *testing.T) {
	var b board.Board
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.White][types.Knight] = types.SqB1.Bb() | types.SqD5.Bb() // both reach c3, neither pinned
	b[types.Black][types.King] = types.SqE8.Bb()

	pm, err := ParseMove("Nc3", shortAlg)
	require.NoError(t, err)

	_, err = Resolve(&b, board.StartContext, types.White, pm, "Nc3")
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrAmbiguousOrigin, me.Kind)
}

func TestResolveDisambiguatesWhenOneCandidateSelfChecks(t *testing.T) {
	var b board.Board
	b[types.White][types.King] = types.SqA1.Bb()
	b[types.White][types.Knight] = types.SqB1.Bb() | types.SqA4.Bb() // both reach c3
	b[types.Black][types.King] = types.SqE8.Bb()
	b[types.Black][types.Rook] = types.SqA8.Bb() // pins a4 to the king along the a-file

	pm, err := ParseMove("Nc3", shortAlg)
	require.NoError(t, err)

	// b1 (the lsb candidate) is the one actually played and is unpinned;
	// a4 would expose the king to the a8 rook, so it is rejected as unsafe
	// rather than flagged as a second legal candidate.
	_, err = Resolve(&b, board.StartContext, types.White, pm, "Nc3")
	require.NoError(t, err)
	assert.Equal(t, types.SqC3.Bb()|types.SqA4.Bb(), b[types.White][types.Knight])
}

func TestResolveSelfCheckRejected(t *testing.T) {
	var b board.Board
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.White][types.Rook] = types.SqE2.Bb()
	b[types.Black][types.King] = types.SqE8.Bb()
	b[types.Black][types.Rook] = types.SqE7.Bb() // pins the rook to the king along the e-file

	pm, err := ParseMove("Rd2", shortAlg)
	require.NoError(t, err)

	_, err = Resolve(&b, board.StartContext, types.White, pm, "Rd2")
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrSelfCheck, me.Kind)
}

func TestResolveQuietMoveValidatesWithNoFlag(t *testing.T) {
	var b board.Board
	b[types.White][types.King] = types.SqE1.Bb()
	b[types.White][types.Queen] = types.SqH5.Bb()
	b[types.Black][types.King] = types.SqE8.Bb()

	// h4 shares no rank, file or diagonal with e8: a genuinely quiet move.
	quiet, err := ParseMove("Qh5-h4", longAlg)
	require.NoError(t, err)
	_, err = Resolve(&b, board.StartContext, types.White, quiet, "Qh5-h4")
	require.NoError(t, err)
}

func TestResolveCheckFlagRequiredWhenMoveGivesCheck(t *testing.T) {
	// Qh5-h8 checks the king on e8 along rank 8, with flight squares off
	// that rank (d7/e7) available, so it is check but not checkmate.
	newBoard := func() board.Board {
		var b board.Board
		b[types.White][types.King] = types.SqE1.Bb()
		b[types.White][types.Queen] = types.SqH5.Bb()
		b[types.Black][types.King] = types.SqE8.Bb()
		return b
	}

	b := newBoard()
	check, err := ParseMove("Qh5-h8", longAlg)
	require.NoError(t, err)
	_, err = Resolve(&b, board.StartContext, types.White, check, "Qh5-h8")
	require.Error(t, err)
	var me *MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrCheckFlagMismatch, me.Kind, "check given but not flagged")

	b = newBoard()
	checkFlagged, err := ParseMove("Qh5-h8+", longAlg)
	require.NoError(t, err)
	_, err = Resolve(&b, board.StartContext, types.White, checkFlagged, "Qh5-h8+")
	require.NoError(t, err)

	b = newBoard()
	mateFlagged, err := ParseMove("Qh5-h8#", longAlg)
	require.NoError(t, err)
	_, err = Resolve(&b, board.StartContext, types.White, mateFlagged, "Qh5-h8#")
	require.Error(t, err)
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrCheckFlagMismatch, me.Kind, "flagged as mate but the king can still flee")
}

func TestMoveErrorMessageFormat(t *testing.T) {
	err := newError(ErrIllegalMove, "e5", "trying to make illegal move")
	assert.Equal(t, "move: 'e5': trying to make illegal move", err.Error())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "ambiguous origin", ErrAmbiguousOrigin.String())
	assert.Equal(t, "unknown resolver error", ErrorKind(999).String())
}

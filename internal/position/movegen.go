package position

import (
	"github.com/dogw4t3r/ffp/internal/attacks"
	"github.com/dogw4t3r/ffp/internal/bitboard"
)

// promoOrder is the deterministic promotion-piece order: queen, rook,
// bishop, knight.
var promoOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

// pieceBB returns side's bitboard for one piece type.
func (p *Position) pieceBB(side Side, pt PieceType) bitboard.Bitboard {
	base := WP
	if side == Black {
		base = BP
	}
	return p.BB[base+Piece(pt)]
}

// IsSquareAttacked reports whether sq is attacked by any piece of side by,
// under the current occupancy.
func (p *Position) IsSquareAttacked(sq bitboard.Square, by Side) bool {
	return p.IsSquareAttackedWithOccupancy(sq, by, p.OccAll)
}

// IsSquareAttackedWithOccupancy is IsSquareAttacked but tests sliding
// attacks against occ instead of the position's cached occupancy. Callers
// use this to probe a hypothetical occupancy, such as a king's departure
// square cleared before testing its destination for check.
func (p *Position) IsSquareAttackedWithOccupancy(sq bitboard.Square, by Side, occ bitboard.Bitboard) bool {
	pawnSrc := attacks.Pawn(sq, attacks.Side(by.Other()))
	if pawnSrc&p.pieceBB(by, Pawn) != 0 {
		return true
	}
	if attacks.Knight(sq)&p.pieceBB(by, Knight) != 0 {
		return true
	}
	if attacks.King(sq)&p.pieceBB(by, King) != 0 {
		return true
	}
	diag := p.pieceBB(by, Bishop) | p.pieceBB(by, Queen)
	if attacks.Bishop(sq, occ)&diag != 0 {
		return true
	}
	straight := p.pieceBB(by, Rook) | p.pieceBB(by, Queen)
	if attacks.Rook(sq, occ)&straight != 0 {
		return true
	}
	return false
}

// InCheck reports whether side's king is currently attacked. A side with
// no king on the board is never in check.
func (p *Position) InCheck(side Side) bool {
	if p.pieceBB(side, King) == 0 {
		return false
	}
	return p.IsSquareAttacked(p.KingSquare(side), side.Other())
}

// PseudoLegalMoves generates every pseudo-legal move for the side to
// move, in the deterministic order: pawn quiet pushes, double pushes,
// promotion pushes, captures, capture-promotions, en passant, knights,
// bishops, rooks, queens, king, castling (king-side then queen-side).
func (p *Position) PseudoLegalMoves() MoveList {
	var ml MoveList
	side := p.Side
	p.genPawnMoves(&ml, side)
	p.genPieceMoves(&ml, side, Knight, attacks.Knight)
	p.genSlidingMoves(&ml, side, Bishop, attacks.Bishop)
	p.genSlidingMoves(&ml, side, Rook, attacks.Rook)
	p.genSlidingMoves(&ml, side, Queen, attacks.Queen)
	p.genKingMoves(&ml, side)
	p.genCastling(&ml, side)
	return ml
}

// genPawnMoves emits pawn moves in six whole-bitboard category passes
// across every source pawn at once: quiet single pushes, double pushes,
// promotion pushes, captures, capture-promotions, then en passant. Each
// pass shifts the full pawn bitboard in one direction and recovers the
// source square per target by applying the inverse shift.
func (p *Position) genPawnMoves(ml *MoveList, side Side) {
	pawns := p.pieceBB(side, Pawn)
	piece := NewPiece(Pawn, side)
	empty := ^p.OccAll

	push, pushBack := bitboard.Bitboard.North, bitboard.Bitboard.South
	capL, capLBack := bitboard.Bitboard.NorthWest, bitboard.Bitboard.SouthEast
	capR, capRBack := bitboard.Bitboard.NorthEast, bitboard.Bitboard.SouthWest
	// singlePushRank is the rank single pushes from the start rank land on
	// (rank 3 for White, rank 6 for Black) — the gate for a double push.
	singlePushRank, promoRank := bitboard.RankMask[2], bitboard.RankMask[7]
	enemyOcc := p.OccBlack
	if side == Black {
		push, pushBack = bitboard.Bitboard.South, bitboard.Bitboard.North
		capL, capLBack = bitboard.Bitboard.SouthWest, bitboard.Bitboard.NorthEast
		capR, capRBack = bitboard.Bitboard.SouthEast, bitboard.Bitboard.NorthWest
		singlePushRank, promoRank = bitboard.RankMask[5], bitboard.RankMask[0]
		enemyOcc = p.OccWhite
	}

	push1 := push(pawns) & empty
	push2 := push(push1&singlePushRank) & empty

	attackL := capL(pawns) & enemyOcc
	attackR := capR(pawns) & enemyOcc

	quietPush := push1 &^ promoRank
	for quietPush != 0 {
		to := quietPush.PopLSB()
		from := pushBack(bitboard.BB(to)).LSB()
		ml.Add(Move{From: from, To: to, Piece: piece, Promo: NoPiece, Captured: NoPiece, Flags: Quiet})
	}

	doublePush := push2
	for doublePush != 0 {
		to := doublePush.PopLSB()
		from := pushBack(pushBack(bitboard.BB(to))).LSB()
		ml.Add(Move{From: from, To: to, Piece: piece, Promo: NoPiece, Captured: NoPiece, Flags: Quiet | Double})
	}

	promoPush := push1 & promoRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		from := pushBack(bitboard.BB(to)).LSB()
		for _, pt := range promoOrder {
			ml.Add(Move{From: from, To: to, Piece: piece, Promo: NewPiece(pt, side), Captured: NoPiece, Flags: Promo})
		}
	}

	captures := [2]struct {
		targets bitboard.Bitboard
		back    func(bitboard.Bitboard) bitboard.Bitboard
	}{
		{attackL &^ promoRank, capLBack},
		{attackR &^ promoRank, capRBack},
	}
	for _, c := range captures {
		targets := c.targets
		for targets != 0 {
			to := targets.PopLSB()
			from := c.back(bitboard.BB(to)).LSB()
			ml.Add(Move{From: from, To: to, Piece: piece, Promo: NoPiece, Captured: p.PieceAt(to), Flags: Capture})
		}
	}

	capturePromos := [2]struct {
		targets bitboard.Bitboard
		back    func(bitboard.Bitboard) bitboard.Bitboard
	}{
		{attackL & promoRank, capLBack},
		{attackR & promoRank, capRBack},
	}
	for _, c := range capturePromos {
		targets := c.targets
		for targets != 0 {
			to := targets.PopLSB()
			from := c.back(bitboard.BB(to)).LSB()
			captured := p.PieceAt(to)
			for _, pt := range promoOrder {
				ml.Add(Move{From: from, To: to, Piece: piece, Promo: NewPiece(pt, side), Captured: captured, Flags: Promo | Capture})
			}
		}
	}

	if p.EPSquare != bitboard.NoSquare {
		epAttackers := attacks.Pawn(p.EPSquare, attacks.Side(side.Other())) & pawns
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(Move{From: from, To: p.EPSquare, Piece: piece, Promo: NoPiece, Captured: NewPiece(Pawn, side.Other()), Flags: Capture | EnPassant})
		}
	}
}

// epCapturedSquare returns the square of the pawn actually removed by an
// en-passant capture landing on ep, made by side.
func epCapturedSquare(ep bitboard.Square, side Side) bitboard.Square {
	if side == White {
		return bitboard.NewSquare(ep.File(), ep.Rank()-1)
	}
	return bitboard.NewSquare(ep.File(), ep.Rank()+1)
}

func (p *Position) genPieceMoves(ml *MoveList, side Side, pt PieceType, attackFn func(bitboard.Square) bitboard.Bitboard) {
	piece := NewPiece(pt, side)
	ownOcc := p.OccWhite
	enemyOcc := p.OccBlack
	if side == Black {
		ownOcc, enemyOcc = p.OccBlack, p.OccWhite
	}
	srcs := p.pieceBB(side, pt)
	for srcs != 0 {
		from := srcs.PopLSB()
		targets := attackFn(from) &^ ownOcc
		p.emitTargets(ml, from, piece, targets, enemyOcc)
	}
}

func (p *Position) genSlidingMoves(ml *MoveList, side Side, pt PieceType, attackFn func(bitboard.Square, bitboard.Bitboard) bitboard.Bitboard) {
	piece := NewPiece(pt, side)
	ownOcc := p.OccWhite
	enemyOcc := p.OccBlack
	if side == Black {
		ownOcc, enemyOcc = p.OccBlack, p.OccWhite
	}
	srcs := p.pieceBB(side, pt)
	for srcs != 0 {
		from := srcs.PopLSB()
		targets := attackFn(from, p.OccAll) &^ ownOcc
		p.emitTargets(ml, from, piece, targets, enemyOcc)
	}
}

func (p *Position) genKingMoves(ml *MoveList, side Side) {
	piece := NewPiece(King, side)
	ownOcc := p.OccWhite
	enemyOcc := p.OccBlack
	if side == Black {
		ownOcc, enemyOcc = p.OccBlack, p.OccWhite
	}
	if p.pieceBB(side, King) == 0 {
		return
	}
	from := p.KingSquare(side)
	targets := attacks.King(from) &^ ownOcc
	p.emitTargets(ml, from, piece, targets, enemyOcc)
}

func (p *Position) emitTargets(ml *MoveList, from bitboard.Square, piece Piece, targets, enemyOcc bitboard.Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		if enemyOcc.IsSet(to) {
			ml.Add(Move{From: from, To: to, Piece: piece, Promo: NoPiece, Captured: p.PieceAt(to), Flags: Capture})
		} else {
			ml.Add(Move{From: from, To: to, Piece: piece, Promo: NoPiece, Captured: NoPiece, Flags: Quiet})
		}
	}
}

// castling square constants, computed once via bitboard.ParseSquare for
// clarity rather than hardcoded indices.
var (
	whiteKingStart, _       = bitboard.ParseSquare("e1")
	whiteKingSideRook, _    = bitboard.ParseSquare("h1")
	whiteKingSideTarget, _  = bitboard.ParseSquare("g1")
	whiteKingSideRookTo, _  = bitboard.ParseSquare("f1")
	whiteQueenSideRook, _   = bitboard.ParseSquare("a1")
	whiteQueenSideTarget, _ = bitboard.ParseSquare("c1")
	whiteQueenSideRookTo, _ = bitboard.ParseSquare("d1")
	whiteQueenSideEmptyB, _ = bitboard.ParseSquare("b1")

	blackKingStart, _       = bitboard.ParseSquare("e8")
	blackKingSideRook, _    = bitboard.ParseSquare("h8")
	blackKingSideTarget, _  = bitboard.ParseSquare("g8")
	blackKingSideRookTo, _  = bitboard.ParseSquare("f8")
	blackQueenSideRook, _   = bitboard.ParseSquare("a8")
	blackQueenSideTarget, _ = bitboard.ParseSquare("c8")
	blackQueenSideRookTo, _ = bitboard.ParseSquare("d8")
	blackQueenSideEmptyB, _ = bitboard.ParseSquare("b8")
)

// genCastling appends king-side then queen-side castling moves, already
// filtered so the king never starts, passes through, or lands in check.
func (p *Position) genCastling(ml *MoveList, side Side) {
	if side == White {
		if p.Castling&WhiteKingSide != 0 &&
			p.IsEmpty(whiteKingSideRookTo) && p.IsEmpty(whiteKingSideTarget) &&
			!p.IsSquareAttacked(whiteKingStart, Black) &&
			!p.IsSquareAttacked(whiteKingSideRookTo, Black) &&
			!p.IsSquareAttacked(whiteKingSideTarget, Black) {
			ml.Add(Move{From: whiteKingStart, To: whiteKingSideTarget, Piece: WK, Promo: NoPiece, Captured: NoPiece, Flags: Castle})
		}
		if p.Castling&WhiteQueenSide != 0 &&
			p.IsEmpty(whiteQueenSideRookTo) && p.IsEmpty(whiteQueenSideTarget) && p.IsEmpty(whiteQueenSideEmptyB) &&
			!p.IsSquareAttacked(whiteKingStart, Black) &&
			!p.IsSquareAttacked(whiteQueenSideRookTo, Black) &&
			!p.IsSquareAttacked(whiteQueenSideTarget, Black) {
			ml.Add(Move{From: whiteKingStart, To: whiteQueenSideTarget, Piece: WK, Promo: NoPiece, Captured: NoPiece, Flags: Castle})
		}
		return
	}
	if p.Castling&BlackKingSide != 0 &&
		p.IsEmpty(blackKingSideRookTo) && p.IsEmpty(blackKingSideTarget) &&
		!p.IsSquareAttacked(blackKingStart, White) &&
		!p.IsSquareAttacked(blackKingSideRookTo, White) &&
		!p.IsSquareAttacked(blackKingSideTarget, White) {
		ml.Add(Move{From: blackKingStart, To: blackKingSideTarget, Piece: BK, Promo: NoPiece, Captured: NoPiece, Flags: Castle})
	}
	if p.Castling&BlackQueenSide != 0 &&
		p.IsEmpty(blackQueenSideRookTo) && p.IsEmpty(blackQueenSideTarget) && p.IsEmpty(blackQueenSideEmptyB) &&
		!p.IsSquareAttacked(blackKingStart, White) &&
		!p.IsSquareAttacked(blackQueenSideRookTo, White) &&
		!p.IsSquareAttacked(blackQueenSideTarget, White) {
		ml.Add(Move{From: blackKingStart, To: blackQueenSideTarget, Piece: BK, Promo: NoPiece, Captured: NoPiece, Flags: Castle})
	}
}

package position

import "github.com/dogw4t3r/ffp/internal/bitboard"

// Make applies m to p and returns the information needed to reverse it.
// It does not check legality; callers must generate m via
// PseudoLegalMoves (or otherwise guarantee it describes a real move).
func (p *Position) Make(m Move) UndoInfo {
	undo := UndoInfo{
		Castling:  p.Castling,
		EPSquare:  p.EPSquare,
		HalfClock: p.HalfClock,
		FullMove:  p.FullMove,
		Captured:  m.Captured,
	}

	mover := p.Side

	p.clearPiece(m.Piece, m.From)

	if m.Flags&EnPassant != 0 {
		capturedSq := epCapturedSquare(m.To, mover)
		p.clearPiece(m.Captured, capturedSq)
	} else if m.Flags&Capture != 0 {
		p.clearPiece(m.Captured, m.To)
	}

	if m.Flags&Promo != 0 {
		p.setPiece(m.Promo, m.To)
	} else {
		p.setPiece(m.Piece, m.To)
	}

	if m.Flags&Castle != 0 {
		p.applyCastlingRookMove(mover, m.To)
	}

	if m.Piece.Type() == Pawn && m.Flags&Double != 0 {
		p.EPSquare = epSquareBehind(m.To, mover)
	} else {
		p.EPSquare = bitboard.NoSquare
	}

	p.Castling &^= castlingLost(m.From, m.To)

	if m.Piece.Type() == Pawn || m.Flags&Capture != 0 {
		p.HalfClock = 0
	} else {
		p.HalfClock++
	}

	if mover == Black {
		p.FullMove++
	}

	p.Side = mover.Other()
	p.recomputeOccupancy()

	return undo
}

// Unmake reverses the effect of a prior Make(m) call that returned undo.
// p must not have been mutated by any other call in between.
func (p *Position) Unmake(m Move, undo UndoInfo) {
	mover := p.Side.Other()
	p.Side = mover

	if m.Flags&Promo != 0 {
		p.clearPiece(m.Promo, m.To)
	} else {
		p.clearPiece(m.Piece, m.To)
	}
	p.setPiece(m.Piece, m.From)

	if m.Flags&EnPassant != 0 {
		capturedSq := epCapturedSquare(m.To, mover)
		p.setPiece(m.Captured, capturedSq)
	} else if m.Flags&Capture != 0 {
		p.setPiece(m.Captured, m.To)
	}

	if m.Flags&Castle != 0 {
		p.undoCastlingRookMove(mover, m.To)
	}

	p.Castling = undo.Castling
	p.EPSquare = undo.EPSquare
	p.HalfClock = undo.HalfClock
	p.FullMove = undo.FullMove

	p.recomputeOccupancy()
}

// epSquareBehind returns the square a pawn of side passed over when
// double-pushing to to: the en-passant target for the opponent's reply.
func epSquareBehind(to bitboard.Square, side Side) bitboard.Square {
	if side == White {
		return bitboard.NewSquare(to.File(), to.Rank()-1)
	}
	return bitboard.NewSquare(to.File(), to.Rank()+1)
}

// applyCastlingRookMove moves the rook side of a castling move once the
// king has already been relocated to to.
func (p *Position) applyCastlingRookMove(side Side, kingTo bitboard.Square) {
	rook := NewPiece(Rook, side)
	switch kingTo {
	case whiteKingSideTarget:
		p.clearPiece(rook, whiteKingSideRook)
		p.setPiece(rook, whiteKingSideRookTo)
	case whiteQueenSideTarget:
		p.clearPiece(rook, whiteQueenSideRook)
		p.setPiece(rook, whiteQueenSideRookTo)
	case blackKingSideTarget:
		p.clearPiece(rook, blackKingSideRook)
		p.setPiece(rook, blackKingSideRookTo)
	case blackQueenSideTarget:
		p.clearPiece(rook, blackQueenSideRook)
		p.setPiece(rook, blackQueenSideRookTo)
	}
}

// undoCastlingRookMove reverses applyCastlingRookMove.
func (p *Position) undoCastlingRookMove(side Side, kingTo bitboard.Square) {
	rook := NewPiece(Rook, side)
	switch kingTo {
	case whiteKingSideTarget:
		p.clearPiece(rook, whiteKingSideRookTo)
		p.setPiece(rook, whiteKingSideRook)
	case whiteQueenSideTarget:
		p.clearPiece(rook, whiteQueenSideRookTo)
		p.setPiece(rook, whiteQueenSideRook)
	case blackKingSideTarget:
		p.clearPiece(rook, blackKingSideRookTo)
		p.setPiece(rook, blackKingSideRook)
	case blackQueenSideTarget:
		p.clearPiece(rook, blackQueenSideRookTo)
		p.setPiece(rook, blackQueenSideRook)
	}
}

// castlingLost returns the castling-rights bits that a move touching
// from/to permanently revokes, derived from corner and king home squares
// rather than piece identity (a rook captured on its home square also
// revokes that side's right).
func castlingLost(from, to bitboard.Square) CastlingRights {
	var lost CastlingRights
	for _, sq := range [2]bitboard.Square{from, to} {
		switch sq {
		case whiteKingStart:
			lost |= WhiteKingSide | WhiteQueenSide
		case whiteKingSideRook:
			lost |= WhiteKingSide
		case whiteQueenSideRook:
			lost |= WhiteQueenSide
		case blackKingStart:
			lost |= BlackKingSide | BlackQueenSide
		case blackKingSideRook:
			lost |= BlackKingSide
		case blackQueenSideRook:
			lost |= BlackQueenSide
		}
	}
	return lost
}

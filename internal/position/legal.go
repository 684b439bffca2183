package position

import "github.com/dogw4t3r/ffp/internal/bitboard"

// LegalMoves filters PseudoLegalMoves down to moves that do not leave
// the mover's own king attacked. Castling moves are already filtered by
// the generator (king never starts, passes through, or lands in check);
// they still go through the same make/test/unmake check as non-king moves.
func (p *Position) LegalMoves() MoveList {
	pseudo := p.PseudoLegalMoves()
	var legal MoveList
	mover := p.Side

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)

		if m.Piece.Type() == King && m.Flags&Castle == 0 {
			occ := p.OccAll &^ bitboard.BB(m.From)
			if !p.IsSquareAttackedWithOccupancy(m.To, mover.Other(), occ) {
				legal.Add(m)
			}
			continue
		}

		undo := p.Make(m)
		kingSq := p.KingSquare(mover)
		attacked := p.IsSquareAttacked(kingSq, mover.Other())
		p.Unmake(m, undo)

		if !attacked {
			legal.Add(m)
		}
	}

	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, without building the full list.
func (p *Position) HasLegalMoves() bool {
	pseudo := p.PseudoLegalMoves()
	mover := p.Side
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if m.Piece.Type() == King && m.Flags&Castle == 0 {
			occ := p.OccAll &^ bitboard.BB(m.From)
			if !p.IsSquareAttackedWithOccupancy(m.To, mover.Other(), occ) {
				return true
			}
			continue
		}
		undo := p.Make(m)
		attacked := p.IsSquareAttacked(p.KingSquare(mover), mover.Other())
		p.Unmake(m, undo)
		if !attacked {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal
// reply.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.Side) && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has
// no legal move.
func (p *Position) IsStalemate() bool {
	return !p.InCheck(p.Side) && !p.HasLegalMoves()
}

// IsInsufficientMaterial reports a subset of dead positions: K vs K,
// K+N vs K, and K+B vs K.
func (p *Position) IsInsufficientMaterial() bool {
	minor := func(side Side) int {
		return p.pieceBB(side, Knight).PopCount() + p.pieceBB(side, Bishop).PopCount()
	}
	heavy := func(side Side) bool {
		return p.pieceBB(side, Pawn) != 0 || p.pieceBB(side, Rook) != 0 || p.pieceBB(side, Queen) != 0
	}
	if heavy(White) || heavy(Black) {
		return false
	}
	return minor(White)+minor(Black) <= 1
}

// IsDraw reports whether the position is drawn by the half-move clock
// (50-move rule) or by insufficient material. This is an adapter-level
// convenience; the search and evaluator never consult it.
func (p *Position) IsDraw() bool {
	return p.HalfClock >= 100 || p.IsInsufficientMaterial()
}

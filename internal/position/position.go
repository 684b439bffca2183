// Package position implements the authoritative chess game state: piece
// bitboards, side to move, castling rights, en-passant target, move
// clocks, pseudo-legal and legal move generation, and make/unmake.
package position

import (
	"fmt"

	"github.com/dogw4t3r/ffp/internal/bitboard"
)

// Position is the complete, authoritative chess game state.
type Position struct {
	BB [12]bitboard.Bitboard // per-piece occupancy, indexed by Piece

	OccWhite bitboard.Bitboard
	OccBlack bitboard.Bitboard
	OccAll   bitboard.Bitboard

	Side      Side
	Castling  CastlingRights
	EPSquare  bitboard.Square
	HalfClock int
	FullMove  int
}

// New returns an empty Position ready to be populated (e.g. by a FEN
// parser). It is not a legal chess position on its own.
func New() *Position {
	return &Position{EPSquare: bitboard.NoSquare, FullMove: 1}
}

// Copy returns an independent deep copy (the struct is flat, so a value
// copy suffices).
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// PieceAt returns the piece occupying sq, or NoPiece if empty.
func (p *Position) PieceAt(sq bitboard.Square) Piece {
	bit := bitboard.BB(sq)
	if p.OccAll&bit == 0 {
		return NoPiece
	}
	for piece := WP; piece <= BK; piece++ {
		if p.BB[piece]&bit != 0 {
			return piece
		}
	}
	return NoPiece
}

// IsEmpty reports whether sq has no piece on it.
func (p *Position) IsEmpty(sq bitboard.Square) bool {
	return p.OccAll&bitboard.BB(sq) == 0
}

// occupancyOf returns the union-of-pieces bitboard for one side.
func (p *Position) occupancyOf(side Side) bitboard.Bitboard {
	var u bitboard.Bitboard
	base := WP
	if side == Black {
		base = BP
	}
	for pt := Pawn; pt <= King; pt++ {
		u |= p.BB[base+Piece(pt)]
	}
	return u
}

// recomputeOccupancy rebuilds the three cached occupancy bitboards from
// the twelve piece bitboards.
func (p *Position) recomputeOccupancy() {
	p.OccWhite = p.occupancyOf(White)
	p.OccBlack = p.occupancyOf(Black)
	p.OccAll = p.OccWhite | p.OccBlack
}

// setPiece places piece on sq. Caller must call recomputeOccupancy (or
// rely on a subsequent one) before the cached occupancies are read.
func (p *Position) setPiece(piece Piece, sq bitboard.Square) {
	p.BB[piece] |= bitboard.BB(sq)
}

// clearPiece removes piece from sq.
func (p *Position) clearPiece(piece Piece, sq bitboard.Square) {
	p.BB[piece] &^= bitboard.BB(sq)
}

// PlacePiece places piece on sq without recomputing cached occupancy;
// callers (such as a FEN parser building a position from scratch) must
// call RecomputeOccupancy once placement is complete.
func (p *Position) PlacePiece(piece Piece, sq bitboard.Square) {
	p.setPiece(piece, sq)
}

// RecomputeOccupancy rebuilds the cached occupancy bitboards from the
// twelve piece bitboards.
func (p *Position) RecomputeOccupancy() {
	p.recomputeOccupancy()
}

// KingSquare returns the square of side's king. Undefined if side has no
// king (never the case for a valid Position, per the disjointness and
// king-count invariants).
func (p *Position) KingSquare(side Side) bitboard.Square {
	king := WK
	if side == Black {
		king = BK
	}
	return p.BB[king].LSB()
}

// String renders a labeled ASCII board plus the side/castling/ep/clock
// state, rank 8 first.
func (p *Position) String() string {
	s := "\n"
	for rank := 8; rank >= 1; rank-- {
		s += fmt.Sprintf("%d  ", rank)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(bitboard.NewSquare(file, rank))
			if piece == NoPiece {
				s += ". "
			} else {
				s += string(piece.Char()) + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.Side)
	s += fmt.Sprintf("Castling: %s\n", p.Castling)
	s += fmt.Sprintf("En passant: %s\n", p.EPSquare)
	s += fmt.Sprintf("Halfmove clock: %d\n", p.HalfClock)
	s += fmt.Sprintf("Fullmove number: %d\n", p.FullMove)
	return s
}

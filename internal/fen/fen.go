// Package fen converts between FEN strings and internal/position.Position
// values.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dogw4t3r/ffp/internal/bitboard"
	"github.com/dogw4t3r/ffp/internal/position"
)

// StartFEN is the FEN string for the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse builds a Position from a FEN string. On any error, it returns a
// nil Position: no partially applied state is ever returned.
func Parse(fen string) (*position.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := position.New()

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.Side = position.White
	case "b":
		pos.Side = position.Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, ok := bitboard.ParseSquare(parts[3])
		if !ok {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		pos.EPSquare = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		pos.HalfClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		pos.FullMove = fmn
	}

	pos.RecomputeOccupancy()

	return pos, nil
}

func parsePiecePlacement(pos *position.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 8 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := position.PieceFromChar(byte(c))
			if piece == position.NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			pos.PlacePiece(piece, bitboard.NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank, file)
		}
	}

	return nil
}

func parseCastlingRights(pos *position.Position, castling string) error {
	if castling == "-" {
		pos.Castling = position.NoCastling
		return nil
	}
	for _, c := range castling {
		switch c {
		case 'K':
			pos.Castling |= position.WhiteKingSide
		case 'Q':
			pos.Castling |= position.WhiteQueenSide
		case 'k':
			pos.Castling |= position.BlackKingSide
		case 'q':
			pos.Castling |= position.BlackQueenSide
		default:
			return fmt.Errorf("invalid castling character: %c", c)
		}
	}
	return nil
}

// Emit returns the canonical FEN string for pos: piece placement in
// rank-8-first order, side, castling rights in KQkq order, en-passant
// target, half-move clock, full-move number.
func Emit(pos *position.Position) string {
	var sb strings.Builder

	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := bitboard.NewSquare(file, rank)
			piece := pos.PieceAt(sq)
			if piece == position.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.Side == position.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())

	sb.WriteByte(' ')
	sb.WriteString(pos.EPSquare.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullMove))

	return sb.String()
}

// Package cliboard renders a position.Position as a labeled ASCII/UTF-8
// board for the CLI and UCI "d" command.
package cliboard

import (
	"fmt"

	"github.com/clinaresl/table"

	"github.com/dogw4t3r/ffp/internal/bitboard"
	"github.com/dogw4t3r/ffp/internal/position"
)

// glyphs maps a Piece to its single-character Unicode chess glyph.
var glyphs = map[position.Piece]string{
	position.WK: "♔", position.WQ: "♕", position.WR: "♖",
	position.WB: "♗", position.WN: "♘", position.WP: "♙",
	position.BK: "♚", position.BQ: "♛", position.BR: "♜",
	position.BB: "♝", position.BN: "♞", position.BP: "♟",
}

// Render returns an 8x8 table rendering of pos, rank 8 at the top, plus
// a trailing line with side-to-move/castling/en-passant/clock state.
func Render(pos *position.Position) string {
	tab, err := table.NewTable("||cccccccc||")
	if err != nil {
		return fmt.Sprintf("(board render error: %v)", err)
	}
	tab.AddDoubleRule()

	for rank := 8; rank >= 1; rank-- {
		row := make([]any, 8)
		for file := 0; file < 8; file++ {
			sq := bitboard.NewSquare(file, rank)
			piece := pos.PieceAt(sq)
			if piece == position.NoPiece {
				if (rank+file)%2 == 0 {
					row[file] = "▒"
				} else {
					row[file] = " "
				}
				continue
			}
			row[file] = glyphs[piece]
		}
		tab.AddRow(row...)
	}
	tab.AddDoubleRule()

	return fmt.Sprintf("%v\nSide to move: %s   Castling: %s   En passant: %s   Halfmove: %d   Fullmove: %d\n",
		tab, pos.Side, pos.Castling, pos.EPSquare, pos.HalfClock, pos.FullMove)
}

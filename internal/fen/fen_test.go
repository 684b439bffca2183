package fen

import (
	"testing"

	"github.com/dogw4t3r/ffp/internal/position"
)

func TestParseStartPosition(t *testing.T) {
	pos, err := Parse(StartFEN)
	if err != nil {
		t.Fatalf("Parse(StartFEN) error: %v", err)
	}
	if pos.Side != position.White {
		t.Errorf("Side = %v, want White", pos.Side)
	}
	if pos.Castling != position.AllCastling {
		t.Errorf("Castling = %v, want AllCastling", pos.Castling)
	}
	if pos.OccAll.PopCount() != 32 {
		t.Errorf("OccAll popcount = %d, want 32", pos.OccAll.PopCount())
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1bnr/pppkpppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQ - 0 1",
	}
	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos, err := Parse(fen)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", fen, err)
			}
			got := Emit(pos)
			if got != fen {
				t.Errorf("round trip = %q, want %q", got, fen)
			}
		})
	}
}

func TestParseInvalidFEN(t *testing.T) {
	if _, err := Parse("not a fen"); err == nil {
		t.Error("expected error for malformed FEN")
	}
	if _, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"); err == nil {
		t.Error("expected error for invalid side to move")
	}
}

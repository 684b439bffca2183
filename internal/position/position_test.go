package position

import (
	"testing"

	"github.com/dogw4t3r/ffp/internal/bitboard"
)

func sq(s string) bitboard.Square {
	square, ok := bitboard.ParseSquare(s)
	if !ok {
		panic("bad square " + s)
	}
	return square
}

func startPosition() *Position {
	p := New()
	place := func(pt PieceType, side Side, files string, rank int) {
		for _, f := range files {
			p.PlacePiece(NewPiece(pt, side), sq(string(f)+itoa(rank)))
		}
	}
	for f := 'a'; f <= 'h'; f++ {
		p.PlacePiece(WP, sq(string(f)+"2"))
		p.PlacePiece(BP, sq(string(f)+"7"))
	}
	place(Rook, White, "ah", 1)
	place(Rook, Black, "ah", 8)
	place(Knight, White, "bg", 1)
	place(Knight, Black, "bg", 8)
	place(Bishop, White, "cf", 1)
	place(Bishop, Black, "cf", 8)
	p.PlacePiece(WQ, sq("d1"))
	p.PlacePiece(WK, sq("e1"))
	p.PlacePiece(BQ, sq("d8"))
	p.PlacePiece(BK, sq("e8"))
	p.Side = White
	p.Castling = AllCastling
	p.RecomputeOccupancy()
	return p
}

func itoa(i int) string {
	return string(rune('0' + i))
}

func TestStartPositionOccupancy(t *testing.T) {
	p := startPosition()
	if p.OccAll.PopCount() != 32 {
		t.Errorf("OccAll popcount = %d, want 32", p.OccAll.PopCount())
	}
	if p.OccWhite.PopCount() != 16 || p.OccBlack.PopCount() != 16 {
		t.Errorf("side occupancy mismatch: white=%d black=%d", p.OccWhite.PopCount(), p.OccBlack.PopCount())
	}
}

func TestPieceAt(t *testing.T) {
	p := startPosition()
	if got := p.PieceAt(sq("e1")); got != WK {
		t.Errorf("PieceAt(e1) = %v, want WK", got)
	}
	if got := p.PieceAt(sq("e8")); got != BK {
		t.Errorf("PieceAt(e8) = %v, want BK", got)
	}
	if got := p.PieceAt(sq("e4")); got != NoPiece {
		t.Errorf("PieceAt(e4) = %v, want NoPiece", got)
	}
}

func TestKingSquare(t *testing.T) {
	p := startPosition()
	if p.KingSquare(White) != sq("e1") {
		t.Errorf("KingSquare(White) = %v, want e1", p.KingSquare(White))
	}
	if p.KingSquare(Black) != sq("e8") {
		t.Errorf("KingSquare(Black) = %v, want e8", p.KingSquare(Black))
	}
}

func TestCopyIsIndependent(t *testing.T) {
	p := startPosition()
	cp := p.Copy()
	cp.PlacePiece(WQ, sq("e4"))
	cp.RecomputeOccupancy()
	if p.OccAll.IsSet(sq("e4")) {
		t.Error("mutating a copy affected the original")
	}
}

package position

import "testing"

func emptyPosition(side Side) *Position {
	p := New()
	p.Side = side
	p.Castling = NoCastling
	return p
}

func countFlags(ml MoveList, flags MoveFlags) int {
	n := 0
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).Flags&flags == flags {
			n++
		}
	}
	return n
}

func TestPawnDoublePushAvailableFromStartRank(t *testing.T) {
	p := emptyPosition(White)
	p.PlacePiece(WP, sq("e2"))
	p.PlacePiece(WK, sq("a1"))
	p.PlacePiece(BK, sq("a8"))
	p.RecomputeOccupancy()

	ml := p.PseudoLegalMoves()
	if countFlags(ml, Double) != 1 {
		t.Fatalf("expected exactly one double push, got %d", countFlags(ml, Double))
	}
	found := false
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.Flags&Double != 0 && m.To == sq("e4") {
			found = true
		}
	}
	if !found {
		t.Error("expected double push to land on e4")
	}
}

func TestPawnBlockedNoDoublePush(t *testing.T) {
	p := emptyPosition(White)
	p.PlacePiece(WP, sq("e2"))
	p.PlacePiece(BP, sq("e3"))
	p.PlacePiece(WK, sq("a1"))
	p.PlacePiece(BK, sq("a8"))
	p.RecomputeOccupancy()

	ml := p.PseudoLegalMoves()
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.Piece == WP {
			t.Errorf("pawn on e2 should have no moves when e3 is blocked, got %+v", m)
		}
	}
}

func TestPromotionGeneratesFourMovesInQRBNOrder(t *testing.T) {
	p := emptyPosition(White)
	p.PlacePiece(WP, sq("e7"))
	p.PlacePiece(WK, sq("a1"))
	p.PlacePiece(BK, sq("a8"))
	p.RecomputeOccupancy()

	ml := p.PseudoLegalMoves()
	var promos []Move
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).Flags&Promo != 0 {
			promos = append(promos, ml.Get(i))
		}
	}
	if len(promos) != 4 {
		t.Fatalf("expected 4 promotion moves, got %d", len(promos))
	}
	want := []PieceType{Queen, Rook, Bishop, Knight}
	for i, m := range promos {
		if m.Promo.Type() != want[i] {
			t.Errorf("promo[%d] = %v, want %v", i, m.Promo.Type(), want[i])
		}
	}
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	p := emptyPosition(White)
	p.PlacePiece(WP, sq("e5"))
	p.PlacePiece(BP, sq("d5"))
	p.PlacePiece(WK, sq("a1"))
	p.PlacePiece(BK, sq("a8"))
	p.EPSquare = sq("d6")
	p.RecomputeOccupancy()

	ml := p.PseudoLegalMoves()
	found := false
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.Flags&EnPassant != 0 {
			found = true
			if m.To != sq("d6") || m.Captured != BP {
				t.Errorf("en passant move = %+v, want To=d6 Captured=BP", m)
			}
		}
	}
	if !found {
		t.Error("expected an en passant capture to be generated")
	}
}

func TestCastlingRequiresEmptyAndSafeSquares(t *testing.T) {
	p := emptyPosition(White)
	p.PlacePiece(WK, sq("e1"))
	p.PlacePiece(WR, sq("h1"))
	p.PlacePiece(WR, sq("a1"))
	p.PlacePiece(BK, sq("a8"))
	p.Castling = WhiteKingSide | WhiteQueenSide
	p.RecomputeOccupancy()

	ml := p.PseudoLegalMoves()
	if countFlags(ml, Castle) != 2 {
		t.Fatalf("expected both castling moves available, got %d", countFlags(ml, Castle))
	}

	p2 := emptyPosition(White)
	p2.PlacePiece(WK, sq("e1"))
	p2.PlacePiece(WR, sq("h1"))
	p2.PlacePiece(BR, sq("f8")) // attacks f1, blocking king-side castle
	p2.PlacePiece(BK, sq("a8"))
	p2.Castling = WhiteKingSide
	p2.RecomputeOccupancy()

	ml2 := p2.PseudoLegalMoves()
	if countFlags(ml2, Castle) != 0 {
		t.Errorf("castling through an attacked square should be excluded")
	}
}

func TestLegalMovesExcludesPinnedPieceIllegalMove(t *testing.T) {
	p := emptyPosition(White)
	p.PlacePiece(WK, sq("e1"))
	p.PlacePiece(WR, sq("e2"))
	p.PlacePiece(BR, sq("e8"))
	p.PlacePiece(BK, sq("a8"))
	p.RecomputeOccupancy()

	legal := p.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.Piece == WR && m.To.File() != sq("e2").File() {
			t.Errorf("pinned rook should only move along the e-file, got %+v", m)
		}
	}
}

func TestPawnMovesAreBatchedByCategoryAcrossAllPawns(t *testing.T) {
	p := emptyPosition(White)
	p.PlacePiece(WP, sq("e2")) // yields a quiet push and a double push
	p.PlacePiece(WP, sq("a3")) // already advanced; yields only a quiet push
	p.PlacePiece(WK, sq("h1"))
	p.PlacePiece(BK, sq("a8"))
	p.RecomputeOccupancy()

	ml := p.PseudoLegalMoves()
	quietIdx, doubleIdx := -1, -1
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.Piece != WP {
			continue
		}
		if m.Flags == Quiet && m.From == sq("a3") && quietIdx == -1 {
			quietIdx = i
		}
		if m.Flags&Double != 0 && doubleIdx == -1 {
			doubleIdx = i
		}
	}
	if quietIdx == -1 || doubleIdx == -1 {
		t.Fatalf("expected both a quiet push and a double push, got quietIdx=%d doubleIdx=%d", quietIdx, doubleIdx)
	}
	if quietIdx > doubleIdx {
		t.Errorf("a3's quiet push (category: single pushes) should precede e2's double push (category: double pushes), got quietIdx=%d doubleIdx=%d", quietIdx, doubleIdx)
	}
}

func TestLegalMovesKingCannotStepBackAlongCheckingRay(t *testing.T) {
	p := emptyPosition(White)
	p.PlacePiece(WK, sq("e2"))
	p.PlacePiece(BR, sq("e8"))
	p.PlacePiece(BK, sq("a8"))
	p.RecomputeOccupancy()

	legal := p.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.Piece == WK && m.To == sq("e1") {
			t.Error("king e2-e1 stays on the rook's file and should be illegal")
		}
	}
}

func TestLegalMovesNoneWhenCheckmated(t *testing.T) {
	p := emptyPosition(Black)
	p.PlacePiece(BK, sq("a8"))
	p.PlacePiece(WQ, sq("b7"))
	p.PlacePiece(WK, sq("c6"))
	p.RecomputeOccupancy()

	if !p.IsCheckmate() {
		t.Error("expected checkmate")
	}
	legal := p.LegalMoves()
	if legal.Len() != 0 {
		t.Error("expected zero legal moves in checkmate")
	}
}

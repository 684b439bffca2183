package position

// Side is the side to move or the color of a piece. Black is 0 and White
// is 1, so that Other() is a XOR against 1 (the design's "!side" toggle).
type Side uint8

const (
	Black Side = 0
	White Side = 1
)

// Other returns the opposing side.
func (s Side) Other() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// PieceType is the closed set of piece kinds. Type index order is
// {pawn, rook, knight, bishop, queen, king}.
type PieceType uint8

const (
	Pawn PieceType = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

// Char returns the lowercase FEN letter for the piece type.
func (pt PieceType) Char() byte {
	return "prnbqk"[pt]
}

// Value returns the material value of the piece type in centipawns.
func (pt PieceType) Value() int {
	return pieceValue[pt]
}

var pieceValue = [6]int{100, 500, 320, 330, 900, 20000}

// Piece is one of the 12 distinct (color, type) combinations, enumerated
// {WP, WR, WN, WB, WQ, WK, BP, BR, BN, BB, BQ, BK}. NoPiece is the sentinel
// used wherever the spec calls for "-1" (promo/captured fields).
type Piece int8

const (
	WP Piece = iota
	WR
	WN
	WB
	WQ
	WK
	BP
	BR
	BN
	BB
	BQ
	BK

	NoPiece Piece = -1
)

// NewPiece builds a Piece from a type and side.
func NewPiece(pt PieceType, side Side) Piece {
	if side == White {
		return Piece(pt)
	}
	return Piece(pt) + 6
}

// Type returns the piece's kind. Undefined for NoPiece.
func (p Piece) Type() PieceType {
	return PieceType(int(p) % 6)
}

// Side returns the piece's color. Undefined for NoPiece.
func (p Piece) Side() Side {
	if p < 6 {
		return White
	}
	return Black
}

// Char returns the FEN character for the piece (uppercase for White).
func (p Piece) Char() byte {
	c := p.Type().Char()
	if p.Side() == White {
		return c - ('a' - 'A')
	}
	return c
}

// PieceFromChar converts a FEN piece letter to a Piece, or NoPiece if c is
// not a recognized letter.
func PieceFromChar(c byte) Piece {
	side := White
	lower := c
	if c >= 'a' && c <= 'z' {
		side = Black
	} else {
		lower = c + ('a' - 'A')
	}
	var pt PieceType
	switch lower {
	case 'p':
		pt = Pawn
	case 'r':
		pt = Rook
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return NoPiece
	}
	return NewPiece(pt, side)
}

// CastlingRights is a 4-bit set of independently assignable flags.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// String renders the FEN castling-rights letters in K,Q,k,q order, or "-".
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSide != 0 {
		s += "K"
	}
	if cr&WhiteQueenSide != 0 {
		s += "Q"
	}
	if cr&BlackKingSide != 0 {
		s += "k"
	}
	if cr&BlackQueenSide != 0 {
		s += "q"
	}
	return s
}

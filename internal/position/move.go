package position

import "github.com/dogw4t3r/ffp/internal/bitboard"

// MoveFlags is an OR of disjoint semantic bits describing a move's kind.
// Unlike a packed enum, combinations such as Capture|EnPassant or
// Promo|Capture are independently representable.
type MoveFlags uint8

const (
	Quiet MoveFlags = 1 << iota
	Capture
	Promo
	EnPassant
	Castle
	Double
)

// Move is an immutable description of one ply. Promo and Captured use
// NoPiece (-1) as the sentinel for "not applicable".
type Move struct {
	From     bitboard.Square
	To       bitboard.Square
	Piece    Piece
	Promo    Piece
	Captured Piece
	Flags    MoveFlags
}

// IsCapture reports whether this move removes an enemy piece from the
// board, including en passant.
func (m Move) IsCapture() bool { return m.Flags&Capture != 0 }

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flags&Promo != 0 }

// UndoInfo carries the state needed to reverse a Make call. Side to move
// is not stored: it is always the opposite of the post-move side.
type UndoInfo struct {
	Castling  CastlingRights
	EPSquare  bitboard.Square
	HalfClock int
	FullMove  int
	Captured  Piece
}

// maxMoves bounds the legal+pseudo-legal move count of any reachable
// chess position with headroom; 256 matches the widely used practical
// bound for a single position.
const maxMoves = 256

// MoveList is a fixed-capacity move buffer, avoiding a heap allocation
// per move-generation call.
type MoveList struct {
	moves [maxMoves]Move
	n     int
}

// Add appends m to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.n] = m
	ml.n++
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int { return ml.n }

// Get returns the i'th move.
func (ml *MoveList) Get(i int) Move { return ml.moves[i] }

// Clear empties the list for reuse.
func (ml *MoveList) Clear() { ml.n = 0 }

// Slice returns the stored moves as a plain slice backed by the list's
// own array; callers must not hold onto it across a subsequent reuse.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.n] }

// Package movestr converts between position.Move values and the UCI
// long-algebraic move strings used on the wire (e.g. "e2e4", "e7e8q").
package movestr

import (
	"github.com/dogw4t3r/ffp/internal/bitboard"
	"github.com/dogw4t3r/ffp/internal/position"
)

// Encode renders m as a 4- or 5-character UCI move string.
func Encode(m position.Move) string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promo.Type().Char())
	}
	return s
}

// Decode resolves a UCI move string against legal, the current legal
// move list, returning the matching Move. ok is false if s is malformed
// or names no legal move; no state is mutated on failure.
func Decode(s string, legal position.MoveList) (position.Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return position.Move{}, false
	}

	from, ok := bitboard.ParseSquare(s[0:2])
	if !ok {
		return position.Move{}, false
	}
	to, ok := bitboard.ParseSquare(s[2:4])
	if !ok {
		return position.Move{}, false
	}

	var wantPromo byte
	if len(s) == 5 {
		wantPromo = s[4]
	}

	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From != from || m.To != to {
			continue
		}
		if !m.IsPromotion() {
			if wantPromo == 0 {
				return m, true
			}
			continue
		}
		if m.Promo.Type().Char() == wantPromo {
			return m, true
		}
	}

	return position.Move{}, false
}

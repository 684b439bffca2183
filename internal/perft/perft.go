// Package perft counts the leaf nodes of the legal-move tree below a
// position to a fixed depth, the standard correctness check for a move
// generator.
package perft

import "github.com/dogw4t3r/ffp/internal/position"

// Count returns the number of leaf positions reachable from p in
// exactly depth plies. Count(p, 0) is 1 by definition.
func Count(p *position.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.LegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := p.Make(m)
		nodes += Count(p, depth-1)
		p.Unmake(m, undo)
	}
	return nodes
}

// Divide returns the per-root-move leaf count at depth, keyed by the
// root move itself; useful for comparing
// against a reference perft tool to localize a move-generation bug.
func Divide(p *position.Position, depth int) map[position.Move]int64 {
	result := make(map[position.Move]int64)
	if depth == 0 {
		return result
	}
	moves := p.LegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := p.Make(m)
		result[m] = Count(p, depth-1)
		p.Unmake(m, undo)
	}
	return result
}

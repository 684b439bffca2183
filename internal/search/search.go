// Package search implements a depth-bounded negamax alpha-beta search
// over a material-only evaluator. Deliberately absent: quiescence
// search, a transposition table, move ordering beyond generation order,
// and multi-threading.
package search

import (
	"sync/atomic"
	"time"

	"github.com/dogw4t3r/ffp/internal/bitboard"
	"github.com/dogw4t3r/ffp/internal/position"
)

// Infinity bounds the fail-hard alpha-beta window.
const Infinity = 30000

// MateScore is the magnitude returned for a forced mate, reduced by the
// number of plies from the root so that shorter mates score higher.
const MateScore = 20000

// maxPly bounds the undo stack used during the recursive search.
const maxPly = 128

// Evaluate scores pos from the side-to-move's perspective, as the sum of
// material for the side to move minus material for the opponent.
func Evaluate(pos *position.Position) int {
	white, black := materialOf(pos, position.White), materialOf(pos, position.Black)
	if pos.Side == position.White {
		return white - black
	}
	return black - white
}

// noMove is the sentinel move reported when the root has no legal move:
// From/Captured are NoSquare/NoPiece rather than the zero value's a8/WP.
func noMove() position.Move {
	return position.Move{
		From: bitboard.NoSquare, To: bitboard.NoSquare,
		Piece: position.NoPiece, Promo: position.NoPiece, Captured: position.NoPiece,
	}
}

func materialOf(pos *position.Position, side position.Side) int {
	total := 0
	base := position.WP
	if side == position.Black {
		base = position.BP
	}
	for pt := position.Pawn; pt <= position.King; pt++ {
		total += pt.Value() * pos.BB[base+position.Piece(pt)].PopCount()
	}
	return total
}

// Limits bounds a search: whichever of these triggers first stops it.
// A zero TimeMS or NodeLimit, or a nil StopFlag, disables that bound; a
// zero MaxDepth means depth 4.
type Limits struct {
	MaxDepth  int
	TimeMS    int
	NodeLimit uint64
	StopFlag  *atomic.Bool
}

// Result is what a search call reports about its best line.
type Result struct {
	BestMove     position.Move
	DepthReached int
	Score        int
	Nodes        uint64
	Aborted      bool
}

// Searcher holds the mutable state of one search call: the node/time
// budget, an internal abort flag once a limit is hit, and the per-ply
// undo stack paired with recursive Make/Unmake calls.
type Searcher struct {
	pos   *position.Position
	nodes uint64

	deadline  time.Time
	hasDead   bool
	nodeLimit uint64
	stopFlag  *atomic.Bool
	aborted   bool

	undoStack [maxPly]position.UndoInfo
}

// New creates a Searcher bound to pos (searched in place; callers that
// need pos preserved should pass a Copy).
func New(pos *position.Position) *Searcher {
	return &Searcher{pos: pos}
}

// Run performs iterative deepening from depth 1 up to limits.MaxDepth
// (default 4 if unset), stopping early on a time, node, or external
// stop-flag limit. It always returns the best move found by the last
// fully completed depth.
func (s *Searcher) Run(limits Limits) Result {
	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 4
	}

	s.nodes = 0
	s.aborted = false
	s.nodeLimit = limits.NodeLimit
	s.stopFlag = limits.StopFlag
	s.hasDead = limits.TimeMS > 0
	if s.hasDead {
		s.deadline = time.Now().Add(time.Duration(limits.TimeMS) * time.Millisecond)
	}

	best := Result{BestMove: noMove()}
	for depth := 1; depth <= maxDepth; depth++ {
		move, score, ok := s.searchRoot(depth)
		if !ok {
			best.Aborted = true
			break
		}
		best = Result{BestMove: move, DepthReached: depth, Score: score, Nodes: s.nodes}
		if s.shouldStop() {
			break
		}
	}
	best.Nodes = s.nodes
	return best
}

// searchRoot runs one full-width negamax pass at depth, returning the
// best move/score, or ok=false if the search was aborted mid-pass (in
// which case the caller must keep the previous depth's result).
func (s *Searcher) searchRoot(depth int) (position.Move, int, bool) {
	moves := s.pos.LegalMoves()
	if moves.Len() == 0 {
		if s.pos.InCheck(s.pos.Side) {
			return noMove(), -MateScore, true
		}
		return noMove(), 0, true
	}

	alpha, beta := -Infinity, Infinity
	bestScore := -Infinity
	var bestMove position.Move

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := s.pos.Make(m)
		score := -s.negamax(depth-1, 1, -beta, -alpha)
		s.pos.Unmake(m, undo)

		if s.aborted {
			return noMove(), 0, false
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	return bestMove, bestScore, true
}

// negamax is the recursive fail-hard alpha-beta search.
func (s *Searcher) negamax(depth, ply int, alpha, beta int) int {
	s.nodes++
	if s.nodes&1023 == 0 && s.checkAbort() {
		return 0
	}
	if s.aborted {
		return 0
	}

	if depth == 0 {
		return Evaluate(s.pos)
	}

	moves := s.pos.LegalMoves()
	if moves.Len() == 0 {
		if s.pos.InCheck(s.pos.Side) {
			return -MateScore + ply
		}
		return 0
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		s.undoStack[ply] = s.pos.Make(m)
		score := -s.negamax(depth-1, ply+1, -beta, -alpha)
		s.pos.Unmake(m, s.undoStack[ply])

		if s.aborted {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// checkAbort latches s.aborted once a time, node, or external stop-flag
// limit is crossed. Once set, it stays set for the rest of this Run call.
func (s *Searcher) checkAbort() bool {
	if s.aborted {
		return true
	}
	if s.nodeLimit != 0 && s.nodes >= s.nodeLimit {
		s.aborted = true
	}
	if s.hasDead && time.Now().After(s.deadline) {
		s.aborted = true
	}
	if s.stopFlag != nil && s.stopFlag.Load() {
		s.aborted = true
	}
	return s.aborted
}

func (s *Searcher) shouldStop() bool {
	return s.checkAbort()
}

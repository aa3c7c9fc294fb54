package engine

import (
	gm "chessbot/chessmg"

	"golang.org/x/exp/slices"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// scoreInf bounds the alpha-beta window; no real evaluation reaches it.
	scoreInf = 1 << 30
	// scoreMate is the base magnitude of a checkmate score. The remaining
	// search depth is added on top so that shallower mates score higher
	// than deeper ones.
	scoreMate = 1 << 20
	// scoreDraw is the stalemate score.
	scoreDraw = 0
)

// Result is the outcome of a root search: the best move found, whether one
// exists at all, and its score in centipawns from the root side's
// perspective. HasMove is false when the root position is already checkmate
// or stalemate; that is a normal terminal condition, not an error.
type Result struct {
	Move    gm.Move
	HasMove bool
	Score   int
}

// FindBestMove runs a fixed-depth negamax search with alpha-beta pruning for
// the given side and returns the best root move. Ties between equal-score
// root moves break toward the first one seen in the ordered move list. A
// depth below 1 is treated as "evaluate the immediate replies", not an
// error. The caller's board is never mutated: the search works on its own
// scratch copy, which make/undo keeps exactly restored between siblings.
func FindBestMove(b *gm.Board, side gm.Color, depth int) Result {
	if depth < 1 {
		depth = 1
	}
	scratch := b.Copy()
	scratch.SetSideToMove(side)

	moves := scratch.LegalMoves(side)
	if len(moves) == 0 {
		if scratch.InCheck(side) {
			return Result{Score: -(scoreMate + depth)}
		}
		return Result{Score: scoreDraw}
	}

	orderMoves(moves)

	// Mate-in-one shortcut: an immediate checkmate cannot be beaten, so
	// take the first ordered move that delivers one.
	for _, m := range moves {
		st := scratch.Apply(m)
		mate := scratch.IsCheckmate(side.Other())
		scratch.Unapply(st)
		if mate {
			return Result{Move: m, HasMove: true, Score: scoreMate + depth - 1}
		}
	}

	alpha, beta := -scoreInf, scoreInf
	best := Result{Score: -scoreInf}
	for _, m := range moves {
		st := scratch.Apply(m)
		score := -negamax(scratch, depth-1, -beta, -alpha)
		scratch.Unapply(st)

		if !best.HasMove || score > best.Score {
			best = Result{Move: m, HasMove: true, Score: score}
		}
		if score > alpha {
			alpha = score
		}
	}
	return best
}

// negamax evaluates the position for the side to move. Terminal positions
// (no legal moves) take precedence over the depth cutoff so that mates and
// stalemates found at the horizon are scored as such rather than statically.
func negamax(b *gm.Board, depth, alpha, beta int) int {
	stm := b.SideToMove()
	moves := b.LegalMoves(stm)

	if len(moves) == 0 {
		if b.InCheck(stm) {
			// More remaining depth means the mate was reached sooner.
			return -(scoreMate + depth)
		}
		return scoreDraw
	}

	if depth <= 0 {
		return Evaluate(b, stm)
	}

	orderMoves(moves)

	best := -scoreInf
	for _, m := range moves {
		st := b.Apply(m)
		score := -negamax(b, depth-1, -beta, -alpha)
		b.Unapply(st)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break // remaining siblings cannot improve on the opponent's best reply
		}
	}
	return best
}

// orderMoves sorts captures, en passant, and promotions to the front.
// Ordering only affects how much the search prunes; the stable sort keeps
// the first-seen tie-break at the root deterministic.
func orderMoves(moves []gm.Move) {
	slices.SortStableFunc(moves, func(x, y gm.Move) bool {
		return moveOrderScore(x) > moveOrderScore(y)
	})
}

func moveOrderScore(m gm.Move) int {
	score := 0
	if m.IsCapture {
		score += 1000
	}
	if m.Promotion != gm.PieceTypeNone {
		score += 900
	}
	return score
}

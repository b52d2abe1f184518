// Package solver evaluates positions of two-player zero-sum combinatorial
// games exactly: whether the player to move wins, loses or ties with optimal
// play, and how many moves away that outcome is.
//
// The engine is a negamax with alpha-beta pruning and
// principal-variation null-window re-searches, memoized through a
// transposition table. Solve pins the exact value down by repeatedly probing
// the engine with null windows; MoveScores and ParMoveScores rank every
// legal move by solving the position it leads to.
package solver

import (
	"github.com/tristan-f-r/game-solver/pkg/game"
	"github.com/tristan-f-r/game-solver/pkg/transposition"
)

// negamax returns the value of g from the perspective of the player to move,
// searched within the [alpha, beta) window. Values at the window edges are
// bounds, not exact, but they are always sound for pruning.
//
// Move-application failures propagate to the caller untouched. An illegal
// move coming out of a position's own move generator is a bug in the game
// implementation, and swallowing it here would corrupt every score above.
func negamax[G game.Game[G, M], M game.MoveLike](
	g G,
	table transposition.Table[G],
	alpha, beta int,
) (int, error) {
	state := g.State()
	if state.IsTie() {
		return 0, nil
	}
	if w, won := state.Winner(); won {
		// Terminal positions reached mid-recursion (misère endings,
		// custom terminal rules). Scored like any proven result: the
		// earlier the game ended, the larger the magnitude.
		score := game.UpperBound[G, M](g) - g.MoveCount()
		if w != g.Player() {
			score = -score
		}
		return score, nil
	}

	// One-ply lookahead: a move that immediately wins decides this node
	// without a recursive descent.
	for m := range g.PossibleMoves() {
		child, err := g.MakeMove(m)
		if err != nil {
			return 0, err
		}
		if w, won := child.State().Winner(); won && w == g.Player() {
			return game.UpperBound[G, M](child) - child.MoveCount(), nil
		}
	}

	// Tighten the window with any bound proven earlier. Bounds are sound
	// regardless of which search stored them, so a cutoff here is final.
	if bound, ok := table.Get(g); ok {
		if v, isUpper := bound.Upper(); isUpper {
			if beta > v {
				beta = v
				if alpha >= beta {
					return beta, nil
				}
			}
		} else if v, isLower := bound.Lower(); isLower {
			if alpha < v {
				alpha = v
				if alpha >= beta {
					return alpha, nil
				}
			}
		}
	}

	first := true
	for m := range g.PossibleMoves() {
		child, err := g.MakeMove(m)
		if err != nil {
			return 0, err
		}

		var score int
		if first {
			score, err = negamax[G, M](child, table, -beta, -alpha)
			if err != nil {
				return 0, err
			}
			score = -score
		} else {
			// Null-window probe: under best-first ordering, later moves
			// rarely beat the running alpha, so test that cheaply and
			// only pay for a full re-search when the probe says the move
			// might matter.
			score, err = negamax[G, M](child, table, -alpha-1, -alpha)
			if err != nil {
				return 0, err
			}
			score = -score
			if score > alpha {
				score, err = negamax[G, M](child, table, -beta, -alpha)
				if err != nil {
					return 0, err
				}
				score = -score
			}
		}

		if score >= beta {
			// Cutoff: the remaining moves cannot lower this proven floor.
			table.Insert(g, transposition.LowerBound(beta))
			return beta, nil
		}
		if score > alpha {
			alpha = score
		}
		first = false
	}

	table.Insert(g, transposition.UpperBound(alpha))
	return alpha, nil
}

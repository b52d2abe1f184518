package solver

import (
	"errors"
	"iter"

	"github.com/tristan-f-r/game-solver/pkg/game"
	"github.com/tristan-f-r/game-solver/pkg/transposition"
)

// ErrUnbounded is returned by Solve for games without a finite MaxMoves.
var ErrUnbounded = errors.New("solver: game reports no finite move bound")

// Solve returns the exact value of g from the perspective of the player to
// move: positive means they win with optimal play, negative means they lose,
// zero is a tie. Use game.ScoreToOutcome to turn the score into a distance.
//
// The value is pinned down MTD(f)-style: the full score range is narrowed by
// repeated null-window negamax probes around the midpoint until it collapses
// to a single value. Every probe reuses the same transposition table, so
// bounds proven by earlier windows keep pruning later ones.
//
// The table persists across calls; solving related positions against the
// same table only helps, since stored bounds are sound for a position no
// matter which search produced them. Solve never clears the table.
//
// The game must report a finite MaxMoves: the narrowing loop walks the
// [-bound, bound] score range, which has to exist.
func Solve[G game.Game[G, M], M game.MoveLike](g G, table transposition.Table[G]) (int, error) {
	if _, ok := g.MaxMoves(); !ok {
		return 0, ErrUnbounded
	}

	alpha := -game.UpperBound[G, M](g)
	beta := game.UpperBound[G, M](g) + 1

	for alpha < beta {
		med := alpha + (beta-alpha)/2
		r, err := negamax[G, M](g, table, med, med+1)
		if err != nil {
			return 0, err
		}

		if r <= med {
			beta = r
		} else {
			alpha = r
		}
	}

	return alpha, nil
}

// MoveScore pairs a legal move with the value of playing it, from the
// perspective of the player making the move: positive means the move wins
// for whoever plays it.
type MoveScore[M game.MoveLike] struct {
	Move  M
	Score int
}

// MoveScores lazily solves the position each legal move of g leads to,
// yielding (score, error) pairs in the game's move order. The child's solved
// value is negated so the sign reflects the mover's own prospects.
//
// Iteration stops after the first error. The table is consulted and updated
// for every child, so sibling searches prune each other; do not share it
// with a concurrently running solve unless the table itself is safe for
// that.
func MoveScores[G game.Game[G, M], M game.MoveLike](
	g G,
	table transposition.Table[G],
) iter.Seq2[MoveScore[M], error] {
	return func(yield func(MoveScore[M], error) bool) {
		for m := range g.PossibleMoves() {
			child, err := g.MakeMove(m)
			if err != nil {
				yield(MoveScore[M]{Move: m}, err)
				return
			}

			score, err := Solve[G, M](child, table)
			if err != nil {
				yield(MoveScore[M]{Move: m}, err)
				return
			}

			if !yield(MoveScore[M]{Move: m, Score: -score}, nil) {
				return
			}
		}
	}
}

package solver

import (
	"errors"
	"runtime"
	"slices"
	"sync"

	"github.com/tristan-f-r/game-solver/pkg/game"
	"github.com/tristan-f-r/game-solver/pkg/transposition"
)

// ParMoveScores solves every legal move of g concurrently, one independent
// search per move, all sharing one internally-synchronized transposition
// table. The result is the same (move, score) list MoveScores would produce,
// returned as a single eagerly-computed slice ordered like the game's move
// enumeration: sharing the table can only save work through cross-branch
// transpositions, never change a value.
//
// There is no cancellation: every dispatched solve runs to completion.
func ParMoveScores[G game.Game[G, M], M game.MoveLike](g G) ([]MoveScore[M], error) {
	return parMoveScores[G, M](g, transposition.NewSync[G]())
}

// ParMoveScoresWithHasher is ParMoveScores over a stripe-locked sharded
// table distributing positions with the supplied hasher, one shard per
// available CPU. Prefer it when positions hash cheaply and the default
// table becomes the bottleneck.
func ParMoveScoresWithHasher[G game.Game[G, M], M game.MoveLike](
	g G,
	hasher transposition.Hasher[G],
) ([]MoveScore[M], error) {
	return parMoveScores[G, M](g, transposition.NewSharded(runtime.NumCPU(), hasher))
}

func parMoveScores[G game.Game[G, M], M game.MoveLike](
	g G,
	table transposition.Table[G],
) ([]MoveScore[M], error) {
	moves := slices.Collect(g.PossibleMoves())
	results := make([]MoveScore[M], len(moves))
	errs := make([]error, len(moves))

	var wg sync.WaitGroup
	for i, m := range moves {
		wg.Add(1)
		go func() {
			defer wg.Done()

			child, err := g.MakeMove(m)
			if err != nil {
				errs[i] = err
				return
			}

			score, err := Solve[G, M](child, table)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = MoveScore[M]{Move: m, Score: -score}
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

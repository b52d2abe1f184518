package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/tristan-f-r/game-solver/pkg/game"
	"github.com/tristan-f-r/game-solver/pkg/solver"
)

// printScores writes one line per move: the move, its score and the outcome
// it proves, colored by who it favors.
func printScores[G game.Game[G, M], M game.MoveLike](w io.Writer, g G, scores []solver.MoveScore[M]) {
	output := termenv.NewOutput(w)

	for _, ms := range scores {
		outcome := moveOutcome(g, ms)

		line := output.String(fmt.Sprintf("%v  score %+d  %v", ms.Move, ms.Score, outcome))
		switch outcome.Kind {
		case game.OutcomeWin:
			line = line.Foreground(output.Color("2")) // green: the mover wins
		case game.OutcomeLoss:
			line = line.Foreground(output.Color("1")) // red: the mover hands over the game
		default:
			line = line.Foreground(output.Color("3"))
		}
		fmt.Fprintln(w, line)
	}
}

// moveOutcome converts a move's score into a distance-to-outcome from the
// mover's perspective. Distances are anchored at the resulting position, so
// the conversion goes through the child with the sign flipped back, and the
// win/loss kind is flipped again to speak for the mover.
func moveOutcome[G game.Game[G, M], M game.MoveLike](g G, ms solver.MoveScore[M]) game.Outcome {
	child, err := g.MakeMove(ms.Move)
	if err != nil {
		// The move came out of the solver, so it was legal a moment ago.
		return game.Outcome{}
	}

	outcome := game.ScoreToOutcome[G, M](child, -ms.Score)
	switch outcome.Kind {
	case game.OutcomeWin:
		outcome.Kind = game.OutcomeLoss
	case game.OutcomeLoss:
		outcome.Kind = game.OutcomeWin
	}
	return outcome
}

package game_test

import (
	"testing"

	"github.com/tristan-f-r/game-solver/examples/nim"
	"github.com/tristan-f-r/game-solver/pkg/game"
)

func TestScoreToOutcome(t *testing.T) {
	pos, err := nim.New(game.Normal, 3) // UpperBound 3, MoveCount 0
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		score int
		want  game.Outcome
	}{
		{2, game.Outcome{Kind: game.OutcomeWin, Moves: 1}},
		{1, game.Outcome{Kind: game.OutcomeWin, Moves: 2}},
		{0, game.Outcome{Kind: game.OutcomeTie}},
		{-1, game.Outcome{Kind: game.OutcomeLoss, Moves: 2}},
		{-3, game.Outcome{Kind: game.OutcomeLoss, Moves: 0}},
	}

	for _, tc := range cases {
		if got := game.ScoreToOutcome[nim.Position, nim.Move](pos, tc.score); got != tc.want {
			t.Errorf("ScoreToOutcome(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

// The outcome conversion must invert: re-deriving the score from the
// distance reconstructs the original.
func TestScoreOutcomeRoundTrip(t *testing.T) {
	pos, err := nim.New(game.Normal, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pos, err = pos.MakeMove(nim.Move{Pile: 0, Take: 1})
	if err != nil {
		t.Fatalf("MakeMove: %v", err)
	}

	ub := game.UpperBound[nim.Position, nim.Move](pos)
	for score := -ub; score <= ub; score++ {
		outcome := game.ScoreToOutcome[nim.Position, nim.Move](pos, score)

		var back int
		switch outcome.Kind {
		case game.OutcomeWin:
			back = ub - pos.MoveCount() - outcome.Moves
		case game.OutcomeLoss:
			back = outcome.Moves - ub + pos.MoveCount()
		case game.OutcomeTie:
			back = 0
		}

		if back != score {
			t.Errorf("score %d -> %v -> %d", score, outcome, back)
		}
	}
}

func TestUpperBoundUnbounded(t *testing.T) {
	// A game without MaxMoves reports an effectively infinite bound.
	g := unbounded{}
	if ub := game.UpperBound[unbounded, int](g); ub <= 1<<40 {
		t.Errorf("UpperBound = %d, want effectively infinite", ub)
	}
}

package solver_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tristan-f-r/game-solver/examples/nim"
	"github.com/tristan-f-r/game-solver/examples/subtract"
	"github.com/tristan-f-r/game-solver/examples/tictactoe"
	"github.com/tristan-f-r/game-solver/pkg/game"
	"github.com/tristan-f-r/game-solver/pkg/solver"
	"github.com/tristan-f-r/game-solver/pkg/transposition"
)

func mustNim(t *testing.T, convention game.StateType, piles ...int) nim.Position {
	t.Helper()
	pos, err := nim.New(convention, piles...)
	require.NoError(t, err)
	return pos
}

// A 3-token pile where any number of tokens can be taken: the mover takes
// all three, leaving the opponent without a move. Win in one.
func TestSolveNimWinInOne(t *testing.T) {
	pos := mustNim(t, game.Normal, 3)

	score, err := solver.Solve[nim.Position, nim.Move](pos, transposition.NewMap[nim.Position]())
	require.NoError(t, err)
	require.Positive(t, score)

	outcome := game.ScoreToOutcome[nim.Position, nim.Move](pos, score)
	require.Equal(t, game.Outcome{Kind: game.OutcomeWin, Moves: 1}, outcome)
}

// Two tokens with only single-token moves allowed: the opponent necessarily
// takes the last token on their single following move.
func TestSolveSubtractLoss(t *testing.T) {
	pos := subtract.New(2, 3)

	score, err := solver.Solve[subtract.Position, subtract.Move](pos, transposition.NewMap[subtract.Position]())
	require.NoError(t, err)
	require.Negative(t, score)

	outcome := game.ScoreToOutcome[subtract.Position, subtract.Move](pos, score)
	require.Equal(t, game.OutcomeLoss, outcome.Kind)
	require.GreaterOrEqual(t, outcome.Moves, 0)
}

func TestSolveScoreRange(t *testing.T) {
	positions := []nim.Position{
		mustNim(t, game.Normal, 3),
		mustNim(t, game.Normal, 1, 2),
		mustNim(t, game.Normal, 2, 2),
		mustNim(t, game.Misere, 3),
		mustNim(t, game.Misere, 2, 3),
		mustNim(t, game.Normal, 3, 4, 5),
	}

	for _, pos := range positions {
		score, err := solver.Solve[nim.Position, nim.Move](pos, transposition.NewMap[nim.Position]())
		require.NoError(t, err)

		ub := game.UpperBound[nim.Position, nim.Move](pos)
		require.LessOrEqual(t, score, ub, "position %v", pos)
		require.GreaterOrEqual(t, score, -ub, "position %v", pos)

		outcome := game.ScoreToOutcome[nim.Position, nim.Move](pos, score)
		require.GreaterOrEqual(t, outcome.Moves, 0, "position %v outcome %v", pos, outcome)
	}
}

// Every move's reported score must be the negated solve of the position the
// move leads to.
func TestMoveScoreSymmetry(t *testing.T) {
	pos := mustNim(t, game.Normal, 2, 3)
	table := transposition.NewMap[nim.Position]()

	for ms, err := range solver.MoveScores[nim.Position, nim.Move](pos, table) {
		require.NoError(t, err)

		child, err := pos.MakeMove(ms.Move)
		require.NoError(t, err)

		childScore, err := solver.Solve[nim.Position, nim.Move](child, transposition.NewMap[nim.Position]())
		require.NoError(t, err)
		require.Equal(t, -childScore, ms.Score, "move %v", ms.Move)
	}
}

func TestSequentialParallelEquivalence(t *testing.T) {
	positions := []nim.Position{
		mustNim(t, game.Normal, 3, 4),
		mustNim(t, game.Misere, 2, 3, 4),
	}

	for _, pos := range positions {
		var sequential []solver.MoveScore[nim.Move]
		for ms, err := range solver.MoveScores[nim.Position, nim.Move](pos, transposition.NewMap[nim.Position]()) {
			require.NoError(t, err)
			sequential = append(sequential, ms)
		}

		parallel, err := solver.ParMoveScores[nim.Position, nim.Move](pos)
		require.NoError(t, err)
		require.Equal(t, sequential, parallel)

		sharded, err := solver.ParMoveScoresWithHasher[nim.Position, nim.Move](pos, transposition.StringHasher[nim.Position]())
		require.NoError(t, err)
		require.Equal(t, sequential, sharded)
	}
}

// A table carried over from related searches may prune but must never bias.
func TestTableOrderIndependence(t *testing.T) {
	root := tictactoe.New()

	fresh, err := solver.Solve[tictactoe.Position, tictactoe.Move](root, transposition.NewMap[tictactoe.Position]())
	require.NoError(t, err)
	require.Zero(t, fresh, "tic-tac-toe is a tie")

	// Populate a table by solving every child first, then re-solve the root
	// against it.
	shared := transposition.NewMap[tictactoe.Position]()
	for m := range root.PossibleMoves() {
		child, err := root.MakeMove(m)
		require.NoError(t, err)
		_, err = solver.Solve[tictactoe.Position, tictactoe.Move](child, shared)
		require.NoError(t, err)
	}

	warm, err := solver.Solve[tictactoe.Position, tictactoe.Move](root, shared)
	require.NoError(t, err)
	require.Equal(t, fresh, warm)
}

func TestSolveReusesTable(t *testing.T) {
	pos := mustNim(t, game.Normal, 3, 4, 5)
	table := transposition.NewCounting[nim.Position](transposition.NewMap[nim.Position]())

	first, err := solver.Solve[nim.Position, nim.Move](pos, table)
	require.NoError(t, err)
	afterFirst := table.Stats()

	second, err := solver.Solve[nim.Position, nim.Move](pos, table)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// The re-solve is answered from memoized bounds, not a fresh search.
	require.Less(t, table.Stats().Inserts-afterFirst.Inserts, afterFirst.Inserts)
}

// faulty generates a move its own MakeMove then rejects, standing in for a
// buggy game implementation. The solver must surface the failure instead of
// scoring garbage.
type faulty struct {
	moves int
}

var errBadMove = errors.New("faulty: generated an illegal move")

func (f faulty) MakeMove(int) (faulty, error) { return faulty{}, errBadMove }

func (f faulty) PossibleMoves() iter.Seq[int] {
	return func(yield func(int) bool) {
		yield(1)
	}
}

func (f faulty) State() game.GameState { return game.Playable() }
func (f faulty) Player() game.Player   { return game.PlayerOne }
func (f faulty) MoveCount() int        { return f.moves }
func (f faulty) MaxMoves() (int, bool) { return 4, true }

// endless is faulty without a length bound.
type endless struct{ faulty }

func (endless) MakeMove(int) (endless, error) { return endless{}, errBadMove }
func (endless) MaxMoves() (int, bool)         { return 0, false }

func TestSolveRejectsUnboundedGames(t *testing.T) {
	_, err := solver.Solve[endless, int](endless{}, transposition.NewMap[endless]())
	require.ErrorIs(t, err, solver.ErrUnbounded)
}

func TestSolvePropagatesMoveErrors(t *testing.T) {
	_, err := solver.Solve[faulty, int](faulty{}, transposition.NewMap[faulty]())
	require.ErrorIs(t, err, errBadMove)
}

func TestMoveScoresPropagateMoveErrors(t *testing.T) {
	seen := 0
	for _, err := range solver.MoveScores[faulty, int](faulty{}, transposition.NewMap[faulty]()) {
		seen++
		require.ErrorIs(t, err, errBadMove)
	}
	require.Equal(t, 1, seen, "iteration must stop at the first error")
}

func TestParMoveScoresPropagateMoveErrors(t *testing.T) {
	_, err := solver.ParMoveScores[faulty, int](faulty{})
	require.ErrorIs(t, err, errBadMove)
}

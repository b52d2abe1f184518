// Command game-solver solves the bundled example games from the command
// line and prints the value of every legal move.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tristan-f-r/game-solver/pkg/game"
	"github.com/tristan-f-r/game-solver/pkg/solver"
	"github.com/tristan-f-r/game-solver/pkg/transposition"
)

var (
	flagParallel bool
	flagVerbose  bool

	logger zerolog.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "game-solver",
		Short: "Exact solver for two-player zero-sum combinatorial games",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if flagVerbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	root.PersistentFlags().BoolVarP(&flagParallel, "parallel", "p", false,
		"solve each move's subtree on its own goroutine")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"log solve timings")

	root.AddCommand(nimCmd(), tictactoeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// scoreMoves evaluates every legal move of g, honoring --parallel.
func scoreMoves[G game.Game[G, M], M game.MoveLike](g G) ([]solver.MoveScore[M], error) {
	start := time.Now()
	defer func() {
		logger.Debug().Dur("elapsed", time.Since(start)).Msg("scored moves")
	}()

	if flagParallel {
		return solver.ParMoveScores[G, M](g)
	}

	table := transposition.NewMap[G]()
	scores := make([]solver.MoveScore[M], 0)
	for ms, err := range solver.MoveScores[G, M](g, table) {
		if err != nil {
			return nil, err
		}
		scores = append(scores, ms)
	}
	return scores, nil
}

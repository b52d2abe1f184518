package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tristan-f-r/game-solver/examples/tictactoe"
)

func tictactoeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tictactoe [board]",
		Short: "Solve a tic-tac-toe position",
		Long: `Solve a tic-tac-toe position.

The optional board argument is nine characters, row by row: 'x', 'o' or '.'
for an empty square, e.g. "x...o...." (crosses moved first). With no
argument the empty board is solved (a tie, as everyone suspected).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos := tictactoe.New()
			if len(args) == 1 {
				var err error
				pos, err = parseBoard(args[0])
				if err != nil {
					return err
				}
			}

			scores, err := scoreMoves[tictactoe.Position, tictactoe.Move](pos)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), pos)
			printScores(cmd.OutOrStdout(), pos, scores)
			return nil
		},
	}
}

// parseBoard rebuilds a position by replaying the marks in an order that
// alternates correctly: all moves go through MakeMove so an impossible
// board (two marks on a square, wrong counts) is rejected.
func parseBoard(s string) (tictactoe.Position, error) {
	if len(s) != 9 {
		return tictactoe.Position{}, fmt.Errorf("board must be 9 characters, got %d", len(s))
	}

	var crosses, circles []tictactoe.Move
	for i, r := range s {
		switch r {
		case 'x', 'X':
			crosses = append(crosses, tictactoe.Move(i))
		case 'o', 'O':
			circles = append(circles, tictactoe.Move(i))
		case '.':
		default:
			return tictactoe.Position{}, fmt.Errorf("bad square %q at %d", r, i)
		}
	}
	if len(crosses) != len(circles) && len(crosses) != len(circles)+1 {
		return tictactoe.Position{}, fmt.Errorf("impossible board: %d crosses vs %d circles", len(crosses), len(circles))
	}

	pos := tictactoe.New()
	for i := 0; i < len(crosses)+len(circles); i++ {
		var m tictactoe.Move
		if i%2 == 0 {
			m = crosses[i/2]
		} else {
			m = circles[i/2]
		}
		var err error
		if pos, err = pos.MakeMove(m); err != nil {
			return tictactoe.Position{}, err
		}
	}
	return pos, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/tristan-f-r/game-solver/examples/nim"
	"github.com/tristan-f-r/game-solver/pkg/game"
)

// nimConfig is the yaml shape accepted by --config.
type nimConfig struct {
	Piles  []int `yaml:"piles"`
	Misere bool  `yaml:"misere"`
}

func nimCmd() *cobra.Command {
	var (
		configPath string
		piles      []int
		misere     bool
	)

	cmd := &cobra.Command{
		Use:   "nim",
		Short: "Solve a Nim position (remove 1..n tokens from one pile)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := nimConfig{Piles: piles, Misere: misere}
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal(data, &cfg); err != nil {
					return fmt.Errorf("parse %s: %w", configPath, err)
				}
			}

			convention := game.Normal
			if cfg.Misere {
				convention = game.Misere
			}

			pos, err := nim.New(convention, cfg.Piles...)
			if err != nil {
				return err
			}

			logger.Debug().Ints("piles", cfg.Piles).Bool("misere", cfg.Misere).Msg("solving nim")

			scores, err := scoreMoves[nim.Position, nim.Move](pos)
			if err != nil {
				return err
			}
			printScores(cmd.OutOrStdout(), pos, scores)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "yaml file with piles and convention")
	cmd.Flags().IntSliceVar(&piles, "piles", []int{3, 5, 7}, "pile sizes")
	cmd.Flags().BoolVar(&misere, "misere", false, "misère play: taking the last token loses")

	return cmd
}

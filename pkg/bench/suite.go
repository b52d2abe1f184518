// Package bench times exact solves over a suite of named positions,
// reporting per-case scores, outcomes and transposition-table traffic.
package bench

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tristan-f-r/game-solver/pkg/game"
	"github.com/tristan-f-r/game-solver/pkg/solver"
	"github.com/tristan-f-r/game-solver/pkg/transposition"
)

// Case is a single named position to solve.
type Case[G any] struct {
	Name string
	Game G
}

// Result records one solved case.
type Result struct {
	Name    string
	Score   int
	Outcome game.Outcome
	Elapsed time.Duration
	Table   transposition.Stats
}

// Suite solves a list of positions in order, each against a fresh table, and
// logs every result. Construct with NewSuite, add cases, then Run.
type Suite[G game.Game[G, M], M game.MoveLike] struct {
	name   string
	run    uuid.UUID
	logger zerolog.Logger
	cases  []Case[G]
}

func NewSuite[G game.Game[G, M], M game.MoveLike](name string, logger zerolog.Logger) *Suite[G, M] {
	run := uuid.New()
	return &Suite[G, M]{
		name:   name,
		run:    run,
		logger: logger.With().Str("suite", name).Str("run", run.String()).Logger(),
	}
}

func (s *Suite[G, M]) Add(name string, g G) *Suite[G, M] {
	s.cases = append(s.cases, Case[G]{Name: name, Game: g})
	return s
}

// Run solves every case sequentially and returns the results. A failing
// case aborts the run: a move-application error means the game
// implementation is broken and every later measurement would be suspect.
func (s *Suite[G, M]) Run() ([]Result, error) {
	results := make([]Result, 0, len(s.cases))

	for _, c := range s.cases {
		table := transposition.NewCounting[G](transposition.NewMap[G]())

		start := time.Now()
		score, err := solver.Solve[G, M](c.Game, table)
		if err != nil {
			s.logger.Error().Err(err).Str("case", c.Name).Msg("solve failed")
			return results, err
		}

		r := Result{
			Name:    c.Name,
			Score:   score,
			Outcome: game.ScoreToOutcome[G, M](c.Game, score),
			Elapsed: time.Since(start),
			Table:   table.Stats(),
		}
		results = append(results, r)

		s.logger.Info().
			Str("case", r.Name).
			Int("score", r.Score).
			Stringer("outcome", r.Outcome).
			Dur("elapsed", r.Elapsed).
			Uint64("table_hits", r.Table.Hits).
			Uint64("table_inserts", r.Table.Inserts).
			Msg("solved")
	}

	return results, nil
}

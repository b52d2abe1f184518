// Package game defines the contract a combinatorial game must satisfy to be
// solved, along with the two-player identities, terminal-state conventions
// and score/outcome conversions shared by the solver.
package game

import (
	"iter"
	"math"
)

// MoveLike is the constraint for move values.
type MoveLike interface{ comparable }

// Game is the capability contract a position type implements so the solver
// can search it. It is a constraint, not a runtime interface: the engine is
// instantiated per concrete game type, and G is the game type itself
// (type Position struct{...} with Position implementing Game[Position, Move]).
//
// Positions are immutable values. They must be comparable so transposition
// tables can recognize when different move sequences reach the same position.
type Game[G any, M MoveLike] interface {
	comparable

	// MakeMove applies m to a copy of the position and returns the
	// resulting position. The receiver is never modified. It fails if m
	// is illegal or malformed; the solver propagates such errors to its
	// caller rather than guessing.
	MakeMove(m M) (G, error)

	// PossibleMoves enumerates the legal moves. The sequence must be
	// finite, and should yield the likely-best moves first: the solver
	// searches children in this order, and good ordering is what makes
	// alpha-beta cutoffs effective.
	PossibleMoves() iter.Seq[M]

	// State classifies the position. It must report Playable exactly when
	// at least one legal move exists. Games under a pure Normal/Misère
	// convention can delegate to TerminalState.
	State() GameState

	// Player returns the player whose turn it is.
	Player() Player

	// MoveCount returns the number of moves played so far. Every applied
	// move strictly increases it.
	MoveCount() int

	// MaxMoves returns an upper bound on the total length of the game, if
	// one is known. The bound must be constant along a line of play:
	// scores are expressed relative to it, so a drifting bound would make
	// scores from different depths incomparable.
	MaxMoves() (int, bool)
}

// UpperBound returns the score magnitude limit for g: MaxMoves when finite,
// otherwise an effectively infinite bound.
func UpperBound[G Game[G, M], M MoveLike](g G) int {
	if m, ok := g.MaxMoves(); ok {
		return m
	}
	return math.MaxInt
}

package game

import "fmt"

// OutcomeKind tags an Outcome.
type OutcomeKind uint8

const (
	OutcomeTie OutcomeKind = iota
	OutcomeWin
	OutcomeLoss
)

// Outcome is a solved score translated into a signed distance: the player to
// move wins (or loses) after Moves further moves, or the game is a tie.
type Outcome struct {
	Kind  OutcomeKind
	Moves int
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeWin:
		return fmt.Sprintf("Win(%d)", o.Moves)
	case OutcomeLoss:
		return fmt.Sprintf("Loss(%d)", o.Moves)
	default:
		return "Tie"
	}
}

// ScoreToOutcome converts a solved score for g into a distance-to-outcome.
//
// Scores reward speed: a win in fewer moves scores higher, a loss in fewer
// moves scores lower. The magnitude is anchored to the game's upper bound,
// so the remaining distance is recovered by subtracting the moves already
// played:
//
//	win:  moves = UpperBound(g) - score - g.MoveCount()
//	loss: moves = UpperBound(g) + score - g.MoveCount()
//
// A score of zero is a tie.
func ScoreToOutcome[G Game[G, M], M MoveLike](g G, score int) Outcome {
	switch {
	case score > 0:
		return Outcome{Kind: OutcomeWin, Moves: UpperBound[G, M](g) - score - g.MoveCount()}
	case score < 0:
		return Outcome{Kind: OutcomeLoss, Moves: UpperBound[G, M](g) + score - g.MoveCount()}
	default:
		return Outcome{Kind: OutcomeTie}
	}
}

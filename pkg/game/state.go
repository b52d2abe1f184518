package game

type stateKind uint8

const (
	statePlayable stateKind = iota
	stateTie
	stateWin
)

// GameState is the outcome classification of a position: still playable,
// tied, or won by one of the players.
type GameState struct {
	kind   stateKind
	winner Player
}

// Playable reports that at least one legal move remains.
func Playable() GameState {
	return GameState{kind: statePlayable}
}

// Tie reports a finished game that no player won.
func Tie() GameState {
	return GameState{kind: stateTie}
}

// Win reports a finished game won by p.
func Win(p Player) GameState {
	return GameState{kind: stateWin, winner: p}
}

func (s GameState) IsPlayable() bool {
	return s.kind == statePlayable
}

func (s GameState) IsTie() bool {
	return s.kind == stateTie
}

// Winner returns the winning player, if the game is won.
func (s GameState) Winner() (Player, bool) {
	return s.winner, s.kind == stateWin
}

func (s GameState) String() string {
	switch s.kind {
	case stateTie:
		return "Tie"
	case stateWin:
		return "Win(" + s.winner.String() + ")"
	default:
		return "Playable"
	}
}

// StateType is the play convention deciding who wins once no legal
// moves remain.
type StateType uint8

const (
	// Normal play: the last player able to move wins, so running out of
	// moves means the previous mover won.
	Normal StateType = iota

	// Misère play: the last player able to move loses, so running out of
	// moves means the player to move won.
	Misere
)

// TerminalState classifies g purely from "no legal moves remain" under the
// given play convention. It never produces a tie; games whose terminal
// condition is not reducible to move exhaustion (three in a row, say)
// must classify positions themselves instead of calling this.
func TerminalState[G Game[G, M], M MoveLike](t StateType, g G) GameState {
	for range g.PossibleMoves() {
		return Playable()
	}
	if t == Misere {
		return Win(g.Player())
	}
	return Win(g.Player().Opponent())
}

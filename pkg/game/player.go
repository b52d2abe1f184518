package game

// Player identifies one of the two parties in a zero-sum game.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return p ^ 1
}

func (p Player) String() string {
	if p == PlayerOne {
		return "Player 1"
	}
	return "Player 2"
}

// PlayerToMove maps a move count to the player whose turn it is,
// for games where the two players strictly alternate. PlayerOne
// always moves first.
func PlayerToMove(moveCount int) Player {
	return Player(moveCount % 2)
}

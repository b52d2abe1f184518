package game

// FindImmediatelyResolvable performs a one-ply lookahead over the legal
// moves of g and returns a resulting position that is already decided, in
// priority order:
//
//  1. a position the current mover has won by playing the move,
//  2. failing that, any tied position,
//  3. failing that, any position the opponent has won.
//
// It returns ok == false when g has no legal moves or every child is still
// playable. Which position is returned among equally-ranked candidates is
// unspecified; callers may only rely on the outcome class.
//
// This generic implementation clones and classifies every child, which is
// slow for wide games. Engines are free to substitute a specialized check
// as long as it preserves the priority order above.
func FindImmediatelyResolvable[G Game[G, M], M MoveLike](g G) (resolved G, ok bool, err error) {
	var best G
	var found, foundTie bool

	for m := range g.PossibleMoves() {
		child, err := g.MakeMove(m)
		if err != nil {
			var zero G
			return zero, false, err
		}

		state := child.State()
		if state.IsPlayable() {
			continue
		}
		if w, won := state.Winner(); won && w == g.Player() {
			return child, true, nil
		}

		// A tie outranks an opponent win, and either beats nothing.
		if state.IsTie() {
			best, found, foundTie = child, true, true
		} else if !foundTie {
			best, found = child, true
		}
	}

	return best, found, nil
}

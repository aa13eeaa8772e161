package game

// PassLimit is the longest pass streak a game survives.
const PassLimit = 10

// Outcome holds the result of each player: +1 win, -1 loss, 0 while ongoing.
type Outcome [NumPlayers]float32

func (o Outcome) IsOver() bool {
	return o != Outcome{}
}

// Winner returns the player with the better result, -1 while ongoing.
func (o Outcome) Winner() int {
	switch {
	case o[0] > o[1]:
		return 0
	case o[1] > o[0]:
		return 1
	}
	return -1
}

// Ended reports the outcome with nextPlayer about to move. Reaching the
// opponent's home row is checked before the pass streak, so at most one
// condition decides the result.
func (gs *GameState) Ended(nextPlayer int) Outcome {
	switch {
	case gs.occupies(0, 0):
		return Outcome{1, -1}
	case gs.occupies(1, Rows-1):
		return Outcome{-1, 1}
	case gs.passStreak > PassLimit:
		// The player who would have to move next is blamed for the deadlock.
		o := Outcome{1, 1}
		if nextPlayer >= 0 && nextPlayer < NumPlayers {
			o[nextPlayer] = -1
		}
		return o
	}
	return Outcome{}
}

// occupies reports whether any piece of player stands on row.
func (gs *GameState) occupies(player, row int) bool {
	for _, t := range gs.cells[row] {
		if t != Empty && owner(t) == player {
			return true
		}
	}
	return false
}

package game

// Validity marks the legal actions of a position.
type Validity [ActionSize]bool

// earlyGameMoves is the number of opening moves with a growing reach.
const earlyGameMoves = 3

func forward(player int) int {
	return 2*player - 1
}

// step returns the square reached from (row, col) after distance cells along
// direction, relative to player's forward axis.
func step(row, col, player int, d Direction, distance int) (int, int) {
	f := forward(player)
	return row + f*distance, col - f*(int(d)-1)*distance
}

// reach is the longest distance a piece may travel this turn.
func (gs *GameState) reach() int {
	if gs.active.IsFree() {
		return 1
	}
	if gs.moveCounter < earlyGameMoves {
		return gs.moveCounter*2 + 1
	}
	return MaxDistance
}

// ValidMoves marks every action the player may take. Pass is marked if and
// only if nothing else is.
func (gs *GameState) ValidMoves(player int) Validity {
	var valid Validity
	found := false

	first, last := Brown, Orange
	if c, ok := gs.active.Color(); ok {
		first, last = c, c
	}
	reach := gs.reach()

	for c := first; c <= last; c++ {
		row, col := gs.Locate(player, c)
		if row < 0 {
			continue
		}
		for d := DiagonalLeft; d <= DiagonalRight; d++ {
			for distance := 1; distance <= reach; distance++ {
				r, cc := step(row, col, player, d, distance)
				if !onBoard(r, cc) || gs.cells[r][cc] != Empty {
					break
				}
				valid[encode(c, d, distance)] = true
				found = true
			}
		}
	}

	if !found {
		valid[Pass] = true
	}
	return valid
}

// LegalActions lists the marked actions of ValidMoves in ascending order.
func (gs *GameState) LegalActions(player int) []Action {
	valid := gs.ValidMoves(player)
	actions := make([]Action, 0, MaxDistance*NumDirections)
	for a, ok := range valid {
		if ok {
			actions = append(actions, Action(a))
		}
	}
	return actions
}

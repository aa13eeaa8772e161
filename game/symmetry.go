package game

// Policy is a probability per action, indexed like Validity.
type Policy [ActionSize]float32

// Symmetry is one equivalent form of a training example.
type Symmetry struct {
	State GameState
	Pi    Policy
	Valid Validity
}

// Symmetries returns the equivalent forms of a position. The square colors
// break the mirror and rotation symmetries of the bare grid, so the only
// form is the position itself.
func (gs *GameState) Symmetries(pi Policy, valid Validity) []Symmetry {
	return []Symmetry{{State: *gs, Pi: pi, Valid: valid}}
}

// SwapPlayers returns the position as seen from the other side: the board is
// rotated 180° and every piece changes owner. Action indices keep their
// meaning because directions are relative to the mover.
func (gs *GameState) SwapPlayers() GameState {
	swapped := *gs
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			t := gs.cells[Rows-1-r][Cols-1-c]
			if t != Empty {
				t = token(1-owner(t), colorOf(t))
			}
			swapped.cells[r][c] = t
		}
	}
	return swapped
}

// CanonicalForm presents the position as if player 0 were to move.
func (gs *GameState) CanonicalForm(player int) GameState {
	if player == 0 {
		return *gs
	}
	return gs.SwapPlayers()
}

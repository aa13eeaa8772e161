package game

import "fmt"

// MakeMove applies an action for player and returns the next player. The
// state is left untouched when an error is returned.
func (gs *GameState) MakeMove(action Action, player int) (int, error) {
	m, err := action.Decode()
	if err != nil {
		return player, err
	}
	if player < 0 || player >= NumPlayers {
		return player, fmt.Errorf("%w: unknown player %d", ErrIllegalMove, player)
	}
	if !gs.ValidMoves(player)[action] {
		return player, fmt.Errorf("%w: %v by player %d with %v to move", ErrIllegalMove, m, player, gs.active)
	}

	if m.Pass {
		gs.pass(player)
	} else {
		gs.relocate(player, m)
	}
	gs.moveCounter++
	return 1 - player, nil
}

// relocate moves a piece and binds the opponent to the color of the square
// it lands on.
func (gs *GameState) relocate(player int, m Move) {
	row, col := gs.Locate(player, m.Color)
	r, c := step(row, col, player, m.Direction, m.Distance)
	gs.cells[row][col] = Empty
	gs.cells[r][c] = token(player, m.Color)
	gs.active = MustMove(boardColors[r][c])
	gs.passStreak = 0
}

// pass hands the obligation on through the color of the square the stuck
// piece stands on.
func (gs *GameState) pass(player int) {
	if c, ok := gs.active.Color(); ok {
		row, col := gs.Locate(player, c)
		gs.active = MustMove(boardColors[row][col])
	}
	gs.passStreak++
}

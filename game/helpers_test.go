package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// standardState deals layout 0 to both players: every piece starts on the
// square of its own color.
func standardState(t *testing.T) GameState {
	t.Helper()
	gs, err := NewGameStateFromLayouts(0, 0)
	require.NoError(t, err)
	return gs
}

// relocatePiece moves a piece to an empty square without playing a move.
func relocatePiece(t *testing.T, gs *GameState, player int, c Color, row, col int) {
	t.Helper()
	require.Equal(t, Empty, gs.cells[row][col], "Target square should be empty")
	r, cc := gs.Locate(player, c)
	require.GreaterOrEqual(t, r, 0, "Piece should be on the board")
	gs.cells[r][cc] = Empty
	gs.cells[row][col] = token(player, c)
}

func countPieces(gs *GameState) [NumPlayers]int {
	var counts [NumPlayers]int
	for r := range gs.cells {
		for _, t := range gs.cells[r] {
			if t != Empty {
				counts[owner(t)]++
			}
		}
	}
	return counts
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapPlayers(t *testing.T) {
	t.Run("swapping twice restores the position", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			gs := NewGameState(seed)
			playRandomly(t, &gs, seed, 15)

			swapped := gs.SwapPlayers()
			back := swapped.SwapPlayers()
			require.Equal(t, gs, back, "Seed %d", seed)
		}
	})

	t.Run("the standard deal is its own mirror image", func(t *testing.T) {
		gs := standardState(t)
		require.Equal(t, gs, gs.SwapPlayers())
	})

	t.Run("swapping moves pieces to the rotated square and changes owner", func(t *testing.T) {
		gs := standardState(t)
		relocatePiece(t, &gs, 0, Pink, 5, 2)
		gs.active = MustMove(Red)
		gs.moveCounter = 7
		gs.passStreak = 1

		swapped := gs.SwapPlayers()

		require.Equal(t, token(1, Pink), swapped.Cell(2, 5))
		require.Equal(t, Empty, swapped.Cell(0, 3))
		require.Equal(t, gs.Active(), swapped.Active(), "Metadata should be unchanged")
		require.Equal(t, gs.MoveCounter(), swapped.MoveCounter())
		require.Equal(t, gs.PassStreak(), swapped.PassStreak())
		require.NoError(t, swapped.Validate())
	})

	t.Run("player 1's moves are player 0's moves after swapping", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			gs := NewGameState(seed)
			playRandomly(t, &gs, seed, int(seed))

			swapped := gs.SwapPlayers()
			require.Equal(t, gs.ValidMoves(1), swapped.ValidMoves(0), "Seed %d", seed)
			require.Equal(t, gs.ValidMoves(0), swapped.ValidMoves(1), "Seed %d", seed)
		}
	})

	t.Run("square colors are invariant under rotation", func(t *testing.T) {
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				require.Equal(t, SquareColor(r, c), SquareColor(Rows-1-r, Cols-1-c))
			}
		}
	})
}

func TestCanonicalForm(t *testing.T) {
	gs := NewGameState(11)
	playRandomly(t, &gs, 11, 5)

	require.Equal(t, gs, gs.CanonicalForm(0), "Player 0 sees the board as is")
	require.Equal(t, gs.SwapPlayers(), gs.CanonicalForm(1), "Player 1 sees the swapped board")
}

func TestSymmetries(t *testing.T) {
	gs := NewGameState(3)
	var pi Policy
	pi[encode(Red, Straight, 1)] = 0.75
	pi[encode(Blue, DiagonalLeft, 1)] = 0.25
	valid := gs.ValidMoves(0)

	symmetries := gs.Symmetries(pi, valid)

	require.Len(t, symmetries, 1, "Only the identity form should be offered")
	require.Equal(t, gs, symmetries[0].State)
	require.Equal(t, pi, symmetries[0].Pi)
	require.Equal(t, valid, symmetries[0].Valid)
}

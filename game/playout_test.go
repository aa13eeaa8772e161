package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// playRandomly plays up to n uniformly random legal actions, stopping early
// when the game ends.
func playRandomly(t *testing.T, gs *GameState, seed int64, n int) {
	t.Helper()
	rng := rand.New(rand.NewSource(uint64(seed)))
	for i := 0; i < n && !gs.Ended(gs.Player()).IsOver(); i++ {
		actions := gs.LegalActions(gs.Player())
		_, err := gs.MakeMove(actions[rng.Intn(len(actions))], gs.Player())
		require.NoError(t, err)
	}
}

func TestRandomPlayouts(t *testing.T) {
	const games = 200
	const maxMoves = 2000

	finished := 0
	for seed := int64(1); seed <= games; seed++ {
		gs := NewGameState(seed)
		rng := rand.New(rand.NewSource(uint64(seed)))

		for moves := 0; moves < maxMoves; moves++ {
			player := gs.Player()
			outcome := gs.Ended(player)
			if outcome.IsOver() {
				decided := 0
				if gs.occupies(0, 0) {
					decided++
				}
				if gs.occupies(1, Rows-1) {
					decided++
				}
				if decided == 0 {
					require.Greater(t, gs.PassStreak(), PassLimit, "Seed %d ended without a reason", seed)
					require.Equal(t, float32(-1), outcome[player], "The player to move is blamed for the deadlock")
				}
				require.LessOrEqual(t, decided, 1, "Seed %d: only one side can reach the goal row", seed)
				finished++
				break
			}

			actions := gs.LegalActions(player)
			require.NotEmpty(t, actions, "Seed %d: legal moves should never be empty", seed)
			if len(actions) == 1 && actions[0] == Pass {
				require.False(t, gs.Active().IsFree(), "The opening move can never be a pass")
			}

			action := actions[rng.Intn(len(actions))]
			next, err := gs.MakeMove(action, player)
			require.NoError(t, err, "Seed %d: legal action %v rejected", seed, action)
			require.Equal(t, 1-player, next)
			require.Equal(t, moves+1, gs.MoveCounter())

			require.Equal(t, [NumPlayers]int{NumColors, NumColors}, countPieces(&gs), "Seed %d: pieces are never removed", seed)
			require.NoError(t, gs.Validate())
		}
	}
	require.Equal(t, games, finished, "Every random game should finish")
}

package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"kamisado/experiments/metrics"
	"kamisado/game"

	"github.com/stretchr/testify/require"
)

func TestNewRunner(t *testing.T) {
	t.Run("rejects unknown agents", func(t *testing.T) {
		_, err := NewRunner("test", RandomAgent, "minimax")
		require.Error(t, err)
	})

	t.Run("applies options", func(t *testing.T) {
		r, err := NewRunner("test", RandomAgent, GreedyLanesAgent,
			WithGames(3), WithGoroutines(2), WithSeed(5), WithMaxMoves(50), WithGoroutines(0))
		require.NoError(t, err)
		require.Equal(t, 3, r.games)
		require.Equal(t, 2, r.goroutines)
		require.Equal(t, int64(5), r.seed)
		require.Equal(t, 50, r.maxMoves)
		require.Equal(t, []metrics.AgentConfig{{ID: 1, Kind: RandomAgent}, {ID: 2, Kind: GreedyLanesAgent}}, r.agents)
	})
}

func TestRun(t *testing.T) {
	t.Run("tallies every game", func(t *testing.T) {
		r, err := NewRunner("test", RandomAgent, GreedyAdvancementAgent,
			WithGames(6), WithGoroutines(3), WithSeed(11))
		require.NoError(t, err)

		summary, err := r.Run()
		require.NoError(t, err)
		require.Equal(t, 6, summary.Games)
		require.Equal(t, 6, summary.Wins[0]+summary.Wins[1]+summary.Capped)
		require.Zero(t, summary.Capped)
		require.LessOrEqual(t, summary.Deadlocks, summary.Wins[0]+summary.Wins[1])
		require.Positive(t, summary.AverageMoves())
	})

	t.Run("is reproducible with a seed", func(t *testing.T) {
		run := func() Summary {
			r, err := NewRunner("test", RandomAgent, RandomAgent, WithGames(4), WithGoroutines(4), WithSeed(3))
			require.NoError(t, err)
			summary, err := r.Run()
			require.NoError(t, err)
			return summary
		}
		require.Equal(t, run(), run())
	})

	t.Run("counts capped games", func(t *testing.T) {
		r, err := NewRunner("test", RandomAgent, RandomAgent, WithGames(2), WithSeed(8), WithMaxMoves(2))
		require.NoError(t, err)

		summary, err := r.Run()
		require.NoError(t, err)
		require.Equal(t, 2, summary.Capped)
		require.Equal(t, 4, summary.TotalMoves)
	})

	t.Run("stores records", func(t *testing.T) {
		root := t.TempDir()
		r, err := NewRunner("stored", GreedyLanesAgent, RandomAgent,
			WithGames(2), WithGoroutines(1), WithSeed(21), WithOutput(root))
		require.NoError(t, err)

		_, err = r.Run()
		require.NoError(t, err)

		runs, err := os.ReadDir(filepath.Join(root, "stored"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		for _, name := range []string{"setup.json", "agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(root, "stored", runs[0].Name(), name))
		}
	})
}

func TestDeadlocked(t *testing.T) {
	moves := []metrics.MoveMetric{{Action: 3}}
	for i := 0; i < game.PassLimit; i++ {
		moves = append(moves, metrics.MoveMetric{Action: game.Pass})
	}
	require.False(t, deadlocked(moves))

	moves = append(moves, metrics.MoveMetric{Action: game.Pass})
	require.True(t, deadlocked(moves))
	require.False(t, deadlocked(nil))
}

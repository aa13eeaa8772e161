package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kamisado/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("records moves and passes", func(t *testing.T) {
		c := NewCollector()
		c.Start(7)
		c.AddMove(0, 9, 22, time.Millisecond)
		c.AddMove(1, game.Pass, 1, time.Millisecond)
		c.AddMove(0, 30, 4, time.Millisecond)

		metric := c.Complete(game.Outcome{1, -1})

		require.Equal(t, int64(7), metric.Seed)
		require.Equal(t, 0, metric.Winner)
		require.Equal(t, 3, metric.TotalMoves)
		require.Equal(t, 1, metric.Passes)
		require.False(t, metric.Capped)
		require.Len(t, c.Moves(), 3)
		require.Equal(t, 2, c.Moves()[1].Step)
		require.Equal(t, game.Pass, c.Moves()[1].Action)
	})

	t.Run("an undecided game is capped", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		metric := c.Complete(game.Outcome{})
		require.True(t, metric.Capped)
		require.Equal(t, -1, metric.Winner)
	})

	t.Run("the dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1)
		c.AddMove(0, 1, 1, 0)
		require.Nil(t, c.Moves())
		require.Equal(t, GameMetric{}, c.Complete(game.Outcome{1, -1}))
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "selfplay")
	require.NoError(t, err)

	t.Run("writes the setup as json", func(t *testing.T) {
		setup := Setup{Name: "selfplay", NumGames: 2, Seed: 5, Agents: []AgentConfig{{ID: 1, Kind: "random"}}}
		require.NoError(t, w.WriteSetup(setup))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)
		var got Setup
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, setup.Name, got.Name)
		require.Equal(t, setup.Agents, got.Agents)
	})

	t.Run("writes game and move records as csv", func(t *testing.T) {
		games := []GameRecord{{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{Seed: 3, Winner: 1, Outcome: game.Outcome{-1, 1}, TotalMoves: 12}}}
		moves := []MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 0, Action: game.Pass, LegalMoves: 1}}}
		require.NoError(t, w.WriteGameRecords(games))
		require.NoError(t, w.WriteMoveRecords(moves))
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "random"}, {ID: 2, Kind: "greedy-lanes"}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "3", "1", "-1", "1", "false", "12", "0"}, rows[1][:10])

		rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "168", rows[1][3])
		require.Equal(t, "pass", rows[1][4])

		rows = readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{{"id", "kind"}, {"1", "random"}, {"2", "greedy-lanes"}}, rows)
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

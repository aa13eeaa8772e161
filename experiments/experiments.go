package experiments

import (
	"fmt"
	"sync"
	"time"

	"kamisado/agent"
	"kamisado/engine"
	"kamisado/experiments/metrics"
	"kamisado/game"
	"kamisado/meta"

	"github.com/rs/zerolog/log"
)

const (
	RandomAgent            = "random"
	GreedyAdvancementAgent = "greedy-advancement"
	GreedyLanesAgent       = "greedy-lanes"
)

type Option func(r *Runner)

type Runner struct {
	name       string
	games      int
	goroutines int
	seed       int64
	maxMoves   int
	agents     []metrics.AgentConfig
	outDir     string
}

// Summary tallies the results of an experiment.
type Summary struct {
	Games      int
	Wins       [game.NumPlayers]int
	Deadlocks  int // Games decided by the pass streak
	Capped     int
	TotalMoves int
}

func WithGames(games int) Option {
	return func(r *Runner) {
		if games > 0 {
			r.games = games
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(r *Runner) {
		if goroutines > 0 {
			r.goroutines = goroutines
		}
	}
}

// WithSeed makes the experiment reproducible: game i is dealt from seed+i.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

func WithMaxMoves(maxMoves int) Option {
	return func(r *Runner) {
		if maxMoves > 0 {
			r.maxMoves = maxMoves
		}
	}
}

// WithOutput stores setup, agent configs, game and move records under dir.
func WithOutput(dir string) Option {
	return func(r *Runner) {
		r.outDir = dir
	}
}

// NewRunner pits agent1 as player 0 against agent2 as player 1.
func NewRunner(name, agent1, agent2 string, options ...Option) (*Runner, error) {
	for _, kind := range []string{agent1, agent2} {
		if _, err := NewAgent(kind, 1); err != nil {
			return nil, err
		}
	}
	r := &Runner{ // Default values
		name:       name,
		games:      meta.NUM_GAMES,
		goroutines: meta.GO_ROUTINES,
		maxMoves:   meta.MAX_MOVES,
		agents: []metrics.AgentConfig{
			{ID: 1, Kind: agent1},
			{ID: 2, Kind: agent2},
		},
	}
	for _, option := range options {
		option(r)
	}
	return r, nil
}

// NewAgent builds an agent by kind, seed only affecting the random agent.
func NewAgent(kind string, seed int64) (agent.Agent, error) {
	switch kind {
	case RandomAgent:
		return agent.NewRandomAgent(seed), nil
	case GreedyAdvancementAgent:
		return agent.NewGreedyAgent(game.EvaluateAdvancement), nil
	case GreedyLanesAgent:
		return agent.NewGreedyAgent(game.EvaluateOpenLanes), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", kind)
}

type result struct {
	record   metrics.GameRecord
	moves    []metrics.MoveRecord
	deadlock bool
	err      error
}

// Run plays all games, spread over the runner's goroutines, and returns
// the tally. Games are recorded in the order they were dealt.
func (r *Runner) Run() (Summary, error) {
	start := time.Now()
	log.Info().Msgf("starting %s experiment: %d games of %s vs %s on %d goroutines",
		r.name, r.games, r.agents[0].Kind, r.agents[1].Kind, r.goroutines)

	task := make(chan int, r.games)
	for i := 0; i < r.games; i++ {
		task <- i
	}
	close(task)

	results := make([]result, r.games)
	var wg sync.WaitGroup
	for i := 0; i < r.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				results[i] = r.runGame(i)
			}
		}()
	}
	wg.Wait()

	summary := Summary{Games: r.games}
	gameRecords := make([]metrics.GameRecord, 0, r.games)
	moveRecords := []metrics.MoveRecord{}
	for _, res := range results {
		if res.err != nil {
			return summary, res.err
		}
		summary.add(res.record.GameMetric, res.deadlock)
		gameRecords = append(gameRecords, res.record)
		moveRecords = append(moveRecords, res.moves...)
	}
	log.Info().Msgf("completed %s experiment in %v: player 0 won %d, player 1 won %d, %d deadlocks, %d capped, %.1f moves per game",
		r.name, time.Since(start), summary.Wins[0], summary.Wins[1], summary.Deadlocks, summary.Capped, summary.AverageMoves())

	if r.outDir == "" {
		return summary, nil
	}
	if err := r.store(start, gameRecords, moveRecords); err != nil {
		return summary, err
	}
	return summary, nil
}

// gameSeed keeps a zero base seed random for every game.
func (r *Runner) gameSeed(i int) int64 {
	if r.seed == 0 {
		return 0
	}
	return r.seed + int64(i)
}

func (r *Runner) runGame(i int) result {
	seed := r.gameSeed(i)
	agents := make([]agent.Agent, len(r.agents))
	for p, config := range r.agents {
		agentSeed := seed
		if seed != 0 {
			agentSeed = seed*int64(game.NumPlayers) + int64(p)
		}
		a, err := NewAgent(config.Kind, agentSeed)
		if err != nil {
			return result{err: err}
		}
		agents[p] = a
	}

	e := engine.LocalEngine(agents, seed, engine.WithMaxMoves(r.maxMoves), engine.WithMetrics())
	outcome, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return result{err: fmt.Errorf("game %d: %w", i+1, err)}
	}
	log.Debug().Msgf("completed game %d of %d with outcome %v", i+1, r.games, outcome)

	id := i + 1
	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for j, mm := range moveMetrics {
		moves[j] = metrics.MoveRecord{Game: id, MoveMetric: mm}
	}
	return result{
		record: metrics.GameRecord{
			ID:         id,
			Agent1:     r.agents[0].ID,
			Agent2:     r.agents[1].ID,
			GameMetric: gameMetric,
		},
		moves:    moves,
		deadlock: deadlocked(moveMetrics),
	}
}

// deadlocked reports whether the game ended on a pass streak rather than a
// piece reaching the opponent's home row.
func deadlocked(moves []metrics.MoveMetric) bool {
	streak := 0
	for i := len(moves) - 1; i >= 0 && moves[i].Action == game.Pass; i-- {
		streak++
	}
	return streak > game.PassLimit
}

func (s *Summary) add(gm metrics.GameMetric, deadlock bool) {
	s.TotalMoves += gm.TotalMoves
	if gm.Capped {
		s.Capped++
		return
	}
	s.Wins[gm.Winner]++
	if deadlock {
		s.Deadlocks++
	}
}

// AverageMoves is the mean game length in actions, passes included.
func (s Summary) AverageMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Games)
}

func (r *Runner) store(start time.Time, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(r.outDir, r.name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	end := time.Now()
	err = writer.WriteSetup(metrics.Setup{
		Name:      r.name,
		Agents:    r.agents,
		NumGames:  r.games,
		Seed:      r.seed,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}

	if err := writer.WriteAgentConfigs(r.agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

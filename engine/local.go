package engine

import (
	"fmt"
	"time"

	"kamisado/agent"
	"kamisado/experiments/metrics"
	"kamisado/game"
	"kamisado/meta"

	"github.com/rs/zerolog/log"
)

type Local struct {
	State    game.GameState
	Agents   []agent.Agent
	seed     int64
	maxMoves int
	metrics  metrics.Collector
}

type Option func(e *Local)

func WithMaxMoves(maxMoves int) Option {
	return func(e *Local) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

func WithMetrics() Option {
	return func(e *Local) {
		e.metrics = metrics.NewCollector()
	}
}

// LocalEngine deals a game from seed between two agents, agents[i] playing
// as player i.
func LocalEngine(agents []agent.Agent, seed int64, options ...Option) *Local {
	if len(agents) != game.NumPlayers {
		panic("need exactly two agents")
	}

	e := &Local{
		State:    game.NewGameState(seed),
		Agents:   agents,
		seed:     seed,
		maxMoves: meta.MAX_MOVES,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is decided.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	e.metrics.Start(e.seed)
	log.Debug().Msgf("game %d starting, %d moves allowed", e.seed, e.maxMoves)

	outcome := e.State.Ended(e.State.Player())
	for moves := 0; !outcome.IsOver() && moves < e.maxMoves; moves++ {
		player := e.State.Player()
		legal := len(e.State.LegalActions(player))

		start := time.Now()
		_, action := e.Agents[player].FindMove(&e.State)
		elapsed := time.Since(start)

		if _, err := e.State.MakeMove(action, player); err != nil {
			return outcome, e.metrics.Complete(outcome), e.metrics.Moves(), fmt.Errorf("player %d at move %d: %w", player, moves+1, err)
		}
		e.metrics.AddMove(player, action, legal, elapsed)
		log.Debug().Msgf("move %d: player %d plays %v, %v to move", moves+1, player, action, e.State.Active())

		outcome = e.State.Ended(e.State.Player())
	}

	if outcome.IsOver() {
		log.Debug().Msgf("game %d over after %d moves, winner: player %d", e.seed, e.State.MoveCounter(), outcome.Winner())
	} else {
		log.Warn().Msgf("game %d stopped after %d moves without a winner", e.seed, e.maxMoves)
	}
	return outcome, e.metrics.Complete(outcome), e.metrics.Moves(), nil
}

package metrics

import (
	"time"

	"kamisado/game"
)

type MoveMetric struct {
	Step       int
	Player     int
	Action     game.Action
	LegalMoves int
	Duration   time.Duration // Time the agent took to choose
}

type GameMetric struct {
	Seed       int64
	Winner     int // Player ID, -1 if capped
	Outcome    game.Outcome
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Passes     int
	Capped     bool // Stopped at the move cap before a result
}

type Collector interface {
	Start(seed int64)
	AddMove(player int, action game.Action, legalMoves int, duration time.Duration)
	Moves() []MoveMetric
	Complete(outcome game.Outcome) GameMetric
}

type collector struct {
	seed      int64
	startTime time.Time
	moves     []MoveMetric
	passes    int
}

// NewCollector records one game. It is not safe for concurrent use; each
// game owns its collector.
func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(seed int64) {
	m.seed = seed
	m.startTime = time.Now()
	m.moves = nil
	m.passes = 0
}

func (m *collector) AddMove(player int, action game.Action, legalMoves int, duration time.Duration) {
	if action == game.Pass {
		m.passes++
	}
	m.moves = append(m.moves, MoveMetric{
		Step:       len(m.moves) + 1,
		Player:     player,
		Action:     action,
		LegalMoves: legalMoves,
		Duration:   duration,
	})
}

func (m *collector) Moves() []MoveMetric {
	return m.moves
}

func (m *collector) Complete(outcome game.Outcome) GameMetric {
	end := time.Now()
	return GameMetric{
		Seed:       m.seed,
		Winner:     outcome.Winner(),
		Outcome:    outcome,
		StartTime:  m.startTime,
		EndTime:    end,
		Duration:   end.Sub(m.startTime),
		TotalMoves: len(m.moves),
		Passes:     m.passes,
		Capped:     !outcome.IsOver(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(seed int64)                             {}
func (m *dummyCollector) AddMove(int, game.Action, int, time.Duration) {}
func (m *dummyCollector) Moves() []MoveMetric                          { return nil }
func (m *dummyCollector) Complete(outcome game.Outcome) GameMetric     { return GameMetric{} }

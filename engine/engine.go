package engine

import (
	"kamisado/experiments/metrics"
	"kamisado/game"
)

type Engine interface {
	// Run plays a game till there's a winner or the move cap is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

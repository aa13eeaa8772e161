package agent

import "kamisado/game"

type Agent interface {
	// FindMove returns a move policy over the action space and the chosen action
	FindMove(state *game.GameState) (game.Policy, game.Action)
}

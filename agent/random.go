package agent

import (
	"kamisado/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly among the legal actions.
// It is not safe for concurrent use.
func NewRandomAgent(seed int64) Agent {
	return &randomAgent{rng: game.NewRand(seed)}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Policy, game.Action) {
	actions := state.LegalActions(state.Player())
	var policy game.Policy
	for _, action := range actions {
		policy[action] = 1 / float32(len(actions))
	}
	return policy, actions[a.rng.Intn(len(actions))]
}

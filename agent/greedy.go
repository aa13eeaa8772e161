package agent

import (
	"cmp"

	"kamisado/game"

	"golang.org/x/exp/slices"
)

type greedyAgent struct {
	evaluate game.Evaluate
}

// NewGreedyAgent returns an agent that plays the action whose resulting
// position evaluates best for the mover, looking one move ahead.
func NewGreedyAgent(evaluate game.Evaluate) Agent {
	if evaluate == nil {
		evaluate = game.EvaluateOpenLanes
	}
	return greedyAgent{evaluate: evaluate}
}

type candidate struct {
	action game.Action
	score  float64
}

func (a greedyAgent) FindMove(state *game.GameState) (game.Policy, game.Action) {
	actions := state.LegalActions(state.Player())
	candidates := make([]candidate, len(actions))
	for i, action := range actions {
		// The evaluation is from the opponent's side once the move is played
		candidates[i] = candidate{action: action, score: -a.evaluate(state.Play(action))}
	}

	best := findMax(candidates)
	var policy game.Policy
	policy[best] = 1
	return policy, best
}

// findMax returns the first action with the highest score
func findMax(candidates []candidate) game.Action {
	return slices.MaxFunc(candidates, func(x, y candidate) int {
		return cmp.Compare(x.score, y.score)
	}).action
}

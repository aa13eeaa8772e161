package player

import (
	"fmt"
	"math"

	"kamisado/agent"
	"kamisado/game"
	"kamisado/meta"

	"golang.org/x/exp/rand"
)

// Example is one training position, stored in canonical form.
type Example struct {
	Board  game.GameState
	Pi     game.Policy
	Valid  game.Validity
	Player int     // Player to move in the original position
	Value  float32 // Final result for Player
}

type Controller interface {
	Run() ([]Example, game.Outcome, error)
}

type trainingController struct {
	agent            agent.Agent
	kamisado         game.Kamisado
	seed             int64
	rng              *rand.Rand
	temperatureMoves int
	maxMoves         int
}

// NewTrainingController plays self-play episodes dealt from seed, sampling
// moves from the agent's policy.
func NewTrainingController(a agent.Agent, seed int64) *trainingController {
	return &trainingController{
		agent:            a,
		kamisado:         game.NewKamisado(),
		seed:             seed,
		rng:              game.NewRand(seed),
		temperatureMoves: meta.TEMPERATURE_MOVES,
		maxMoves:         meta.MAX_MOVES,
	}
}

func (l *trainingController) Run() ([]Example, game.Outcome, error) {
	state := l.kamisado.InitBoard(l.seed)
	player := 0
	examples := []Example{}

	outcome := l.kamisado.GetGameEnded(state, player)
	for moves := 0; !outcome.IsOver(); moves++ {
		if moves >= l.maxMoves {
			return nil, outcome, fmt.Errorf("episode %d exceeded %d moves", l.seed, l.maxMoves)
		}

		policy, _ := l.agent.FindMove(&state)
		valid := l.kamisado.GetValidMoves(state, player)
		canonical := l.kamisado.GetCanonicalForm(state, player)
		for _, sym := range l.kamisado.GetSymmetries(canonical, policy, valid) {
			examples = append(examples, Example{Board: sym.State, Pi: sym.Pi, Valid: sym.Valid, Player: player})
		}

		temperature := 1.0
		if l.kamisado.GetRound(state) >= l.temperatureMoves {
			temperature = 0
		}
		action := sample(adjustTemperature(policy, temperature), l.rng)

		var err error
		state, player, err = l.kamisado.GetNextState(state, player, action, 0)
		if err != nil {
			return nil, outcome, fmt.Errorf("episode %d: %w", l.seed, err)
		}
		outcome = l.kamisado.GetGameEnded(state, player)
	}

	for i := range examples {
		examples[i].Value = outcome[examples[i].Player]
	}
	return examples, outcome, nil
}

// adjustTemperature sharpens or flattens a policy. A zero temperature puts all
// the weight on the most likely action.
func adjustTemperature(policy game.Policy, temperature float64) game.Policy {
	var adjusted game.Policy
	if temperature == 0 {
		adjusted[findMax(policy)] = 1
		return adjusted
	}

	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	for action, prob := range policy {
		p := math.Pow(float64(prob), exponent)
		sum += p
		adjusted[action] = float32(p)
	}
	if sum == 0 {
		return adjusted
	}
	// Normalize
	for action := range adjusted {
		adjusted[action] = float32(float64(adjusted[action]) / sum)
	}
	return adjusted
}

func sample(policy game.Policy, rng *rand.Rand) game.Action {
	sampled := rng.Float64()
	cumulative := 0.0
	lastAction := game.Pass
	for action, prob := range policy {
		if prob <= 0 {
			continue
		}
		lastAction = game.Action(action)
		cumulative += float64(prob)
		if sampled < cumulative {
			return lastAction
		}
	}
	return lastAction // Fallback in case of rounding errors
}

func findMax(policy game.Policy) game.Action {
	maxAction := game.Pass
	maxProb := float32(-1)
	for action, prob := range policy {
		if prob > maxProb {
			maxProb = prob
			maxAction = game.Action(action)
		}
	}
	return maxAction
}

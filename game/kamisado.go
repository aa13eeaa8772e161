package game

import "fmt"

// Kamisado exposes the rules through the generic game contract used by the
// search and training loop. It holds no state; every call works on the
// position it is given.
type Kamisado struct{}

func NewKamisado() Kamisado {
	return Kamisado{}
}

func (Kamisado) InitBoard(seed int64) GameState {
	return NewGameState(seed)
}

// BoardSize is the shape of the observation: eight board rows and one
// metadata row.
func (Kamisado) BoardSize() (int, int) {
	return Rows + 1, Cols
}

func (Kamisado) ActionSize() int {
	return ActionSize
}

func (Kamisado) NumberOfPlayers() int {
	return NumPlayers
}

// GetNextState applies action on a copy of gs. The seed is accepted for
// interface parity; Kamisado transitions are deterministic.
func (Kamisado) GetNextState(gs GameState, player int, action Action, _ int64) (GameState, int, error) {
	next := gs
	nextPlayer, err := next.MakeMove(action, player)
	if err != nil {
		return gs, player, err
	}
	return next, nextPlayer, nil
}

func (Kamisado) GetValidMoves(gs GameState, player int) Validity {
	return gs.ValidMoves(player)
}

func (Kamisado) GetGameEnded(gs GameState, nextPlayer int) Outcome {
	return gs.Ended(nextPlayer)
}

// GetScore is the final result for player once the game is over, and the
// open lane evaluation from player's side otherwise.
func (Kamisado) GetScore(gs GameState, player int) float64 {
	if o := gs.Ended(gs.Player()); o.IsOver() {
		return float64(o[player])
	}
	score := EvaluateOpenLanes(&gs)
	if player != gs.Player() {
		score = -score
	}
	return score
}

// GetRound is the number of actions played so far.
func (Kamisado) GetRound(gs GameState) int {
	return gs.MoveCounter()
}

func (Kamisado) GetCanonicalForm(gs GameState, player int) GameState {
	return gs.CanonicalForm(player)
}

func (Kamisado) GetSymmetries(gs GameState, pi Policy, valid Validity) []Symmetry {
	return gs.Symmetries(pi, valid)
}

func (Kamisado) StringRepresentation(gs GameState) string {
	return gs.StringRepresentation()
}

// MoveString describes an action for logs.
func (Kamisado) MoveString(action Action, player int) string {
	return fmt.Sprintf("P%d %v", player, action)
}

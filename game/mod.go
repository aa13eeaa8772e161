package game

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() int
	LegalMoves() []Action
	Play(Action) State
	Hash() StateHash
	Winner() int // -1 while the game is ongoing
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64

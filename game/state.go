package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// ActiveColor is the color the player to move is bound to. The zero value is
// the free choice of the opening move.
type ActiveColor struct {
	color Color
	bound bool
}

func FreeChoice() ActiveColor {
	return ActiveColor{}
}

func MustMove(c Color) ActiveColor {
	return ActiveColor{color: c, bound: true}
}

func (a ActiveColor) IsFree() bool {
	return !a.bound
}

// Color returns the bound color, ok is false under free choice.
func (a ActiveColor) Color() (c Color, ok bool) {
	return a.color, a.bound
}

func (a ActiveColor) String() string {
	if !a.bound {
		return "free"
	}
	return a.color.String()
}

// GameState is the complete position. Copying the struct clones it.
type GameState struct {
	cells       [Rows][Cols]int8
	active      ActiveColor
	moveCounter int
	passStreak  int
}

// NewGameState deals a random pair of start layouts. A non-zero seed makes
// the deal deterministic, 0 seeds from the clock.
func NewGameState(seed int64) GameState {
	rng := NewRand(seed)
	first := rng.Intn(NumLayouts)
	second := rng.Intn(NumLayouts - 1)
	if second >= first {
		second++
	}
	if second < first {
		first, second = second, first
	}
	return setup(first, second)
}

// NewGameStateFromLayouts deals explicit start layouts to the two players.
func NewGameStateFromLayouts(layout0, layout1 int) (GameState, error) {
	if layout0 < 0 || layout0 >= NumLayouts || layout1 < 0 || layout1 >= NumLayouts {
		return GameState{}, fmt.Errorf("%w: layouts %d/%d outside [0, %d)", ErrMalformedState, layout0, layout1, NumLayouts)
	}
	return setup(layout0, layout1), nil
}

func setup(layout0, layout1 int) GameState {
	var gs GameState
	for r := range gs.cells {
		for c := range gs.cells[r] {
			gs.cells[r][c] = Empty
		}
	}
	for c := 0; c < Cols; c++ {
		gs.cells[Rows-1][c] = token(0, startLayouts[layout0][c])
		gs.cells[0][c] = token(1, startLayouts[layout1][Cols-1-c])
	}
	return gs
}

// NewRand returns a seeded source, 0 meaning a clock seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}

func (gs *GameState) Cell(row, col int) int8 {
	return gs.cells[row][col]
}

// Piece decodes the token on a square.
func (gs *GameState) Piece(row, col int) (player int, c Color, ok bool) {
	t := gs.cells[row][col]
	if t == Empty {
		return 0, 0, false
	}
	return owner(t), colorOf(t), true
}

// Locate returns the square of a piece, or (-1, -1) if it is not on the board.
func (gs *GameState) Locate(player int, c Color) (row, col int) {
	t := token(player, c)
	for r := range gs.cells {
		if i := slices.Index(gs.cells[r][:], t); i >= 0 {
			return r, i
		}
	}
	return -1, -1
}

func (gs *GameState) Active() ActiveColor {
	return gs.active
}

func (gs *GameState) MoveCounter() int {
	return gs.moveCounter
}

func (gs *GameState) PassStreak() int {
	return gs.passStreak
}

// Player returns the player to move. Player 0 opens and turns strictly
// alternate, passes included.
func (gs *GameState) Player() int {
	return gs.moveCounter % NumPlayers
}

// Observation is the 9x8 network input: eight board rows followed by
// [active color or -1, move counter, pass streak, 0...].
func (gs *GameState) Observation() [Rows + 1][Cols]int8 {
	var obs [Rows + 1][Cols]int8
	copy(obs[:Rows], gs.cells[:])
	obs[Rows][0] = -1
	if c, ok := gs.active.Color(); ok {
		obs[Rows][0] = int8(c)
	}
	obs[Rows][1] = saturate(gs.moveCounter)
	obs[Rows][2] = saturate(gs.passStreak)
	return obs
}

func saturate(n int) int8 {
	if n > 127 {
		return 127
	}
	return int8(n)
}

// ParseObservation rebuilds a state from its observation buffer.
func ParseObservation(obs [Rows + 1][Cols]int8) (GameState, error) {
	var gs GameState
	copy(gs.cells[:], obs[:Rows])

	switch a := obs[Rows][0]; {
	case a == -1:
		gs.active = FreeChoice()
	case a >= 0 && a < NumColors:
		gs.active = MustMove(Color(a))
	default:
		return GameState{}, fmt.Errorf("%w: active color %d", ErrMalformedState, a)
	}
	gs.moveCounter = int(obs[Rows][1])
	gs.passStreak = int(obs[Rows][2])
	for _, v := range obs[Rows][3:] {
		if v != 0 {
			return GameState{}, fmt.Errorf("%w: metadata padding %v", ErrMalformedState, obs[Rows])
		}
	}

	if err := gs.Validate(); err != nil {
		return GameState{}, err
	}
	return gs, nil
}

// Validate checks that every cell holds a known token and that each player
// has exactly one piece of every color.
func (gs *GameState) Validate() error {
	var seen [NumPlayers][NumColors]int
	for r := range gs.cells {
		for c, t := range gs.cells[r] {
			if t == Empty {
				continue
			}
			if !isPiece(t) {
				return fmt.Errorf("%w: token %d at (%d,%d)", ErrMalformedState, t, r, c)
			}
			seen[owner(t)][colorOf(t)]++
		}
	}
	for p := range seen {
		for c, n := range seen[p] {
			if n != 1 {
				return fmt.Errorf("%w: player %d has %d %v pieces", ErrMalformedState, p, n, Color(c))
			}
		}
	}
	if gs.moveCounter < 0 || gs.passStreak < 0 {
		return fmt.Errorf("%w: negative counters %d/%d", ErrMalformedState, gs.moveCounter, gs.passStreak)
	}
	return nil
}

// LegalMoves returns the actions available to the player to move.
func (gs *GameState) LegalMoves() []Action {
	if gs.Ended(gs.Player()).IsOver() {
		return nil
	}
	return gs.LegalActions(gs.Player())
}

func (gs *GameState) Play(action Action) State {
	newGs := *gs
	if _, err := newGs.MakeMove(action, gs.Player()); err != nil {
		panic(err)
	}
	return &newGs
}

func (gs *GameState) Winner() int {
	return gs.Ended(gs.Player()).Winner()
}

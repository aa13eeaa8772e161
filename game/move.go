package game

import "fmt"

// Action is the dense index of a move in the policy vector:
// color*21 + direction*7 + distance-1, with Pass as the last index.
type Action int

// Direction is relative to the moving player's forward axis.
type Direction int8

const (
	DiagonalLeft Direction = iota
	Straight
	DiagonalRight
)

const (
	NumDirections = 3
	MaxDistance   = 7

	ActionSize        = NumColors*NumDirections*MaxDistance + 1
	Pass       Action = ActionSize - 1
)

var directionNames = [NumDirections]string{"left", "straight", "right"}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
	return directionNames[d]
}

// Move is the structured form of an Action.
type Move struct {
	Pass      bool
	Color     Color
	Direction Direction
	Distance  int
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return fmt.Sprintf("%v %v %d", m.Color, m.Direction, m.Distance)
}

// Encode maps a move to its action index.
func (m Move) Encode() (Action, error) {
	if m.Pass {
		return Pass, nil
	}
	if m.Color < 0 || m.Color >= NumColors ||
		m.Direction < 0 || m.Direction >= NumDirections ||
		m.Distance < 1 || m.Distance > MaxDistance {
		return 0, fmt.Errorf("%w: cannot encode %+v", ErrInvalidAction, m)
	}
	return encode(m.Color, m.Direction, m.Distance), nil
}

func encode(c Color, d Direction, distance int) Action {
	return Action(int(c)*NumDirections*MaxDistance + int(d)*MaxDistance + distance - 1)
}

// Decode is the exact inverse of Encode.
func (a Action) Decode() (Move, error) {
	if !a.Valid() {
		return Move{}, fmt.Errorf("%w: %d outside [0, %d)", ErrInvalidAction, int(a), ActionSize)
	}
	if a == Pass {
		return Move{Pass: true}, nil
	}
	n := int(a)
	return Move{
		Color:     Color(n / (NumDirections * MaxDistance)),
		Direction: Direction(n % (NumDirections * MaxDistance) / MaxDistance),
		Distance:  n%MaxDistance + 1,
	}, nil
}

func (a Action) Valid() bool {
	return a >= 0 && a < ActionSize
}

func (a Action) String() string {
	m, err := a.Decode()
	if err != nil {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return m.String()
}

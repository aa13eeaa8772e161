package game

import "errors"

var (
	ErrInvalidAction  = errors.New("invalid action")
	ErrIllegalMove    = errors.New("illegal move")
	ErrMalformedState = errors.New("malformed state")
)

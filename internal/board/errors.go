package board

import "errors"

var (
	// ErrInvalidFEN is returned when a FEN string cannot be parsed.
	ErrInvalidFEN = errors.New("invalid FEN")
	// ErrInvalidSquare is returned when a square name cannot be parsed.
	ErrInvalidSquare = errors.New("invalid square")
	// ErrInvalidBoard is returned when raw bitboards break the placement invariants.
	ErrInvalidBoard = errors.New("invalid board")
)

// Package engine owns the current position and answers position-level queries.
package engine

import (
	"strings"

	"github.com/turox/turox/internal/board"
)

// The non-placement FEN fields. Side to move, castling rights, en passant and
// move counters are not tracked yet, so the starting values are reported.
const (
	sideToMove     = "w"
	castlingRights = "KQkq"
	enPassant      = "-"
	halfMoveClock  = "0"
	fullMoveNumber = "1"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = board.StartPlacement + " w KQkq - 0 1"

// Engine owns a single board.
type Engine struct {
	board board.Board
}

// NewEngine creates an engine set up in the starting position.
func NewEngine() *Engine {
	return &Engine{board: board.NewBoard()}
}

// NewEngineWithBoard creates an engine owning a copy of b.
func NewEngineWithBoard(b board.Board) *Engine {
	return &Engine{board: b}
}

// Board returns the engine's board. Mutations through the pointer are seen by
// later queries.
func (e *Engine) Board() *board.Board {
	return &e.board
}

// SetBoard replaces the engine's board.
func (e *Engine) SetBoard(b board.Board) {
	e.board = b
}

// Reset puts the engine back in the starting position.
func (e *Engine) Reset() {
	e.board = board.NewBoard()
}

// FEN returns the full FEN record of the current position.
func (e *Engine) FEN() string {
	return strings.Join([]string{
		e.board.FEN(),
		sideToMove,
		castlingRights,
		enPassant,
		halfMoveClock,
		fullMoveNumber,
	}, " ")
}

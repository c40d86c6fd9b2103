// Package board implements chess board representation using bitboards.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
// A Square's value is its bit index in a Bitboard.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// Rank is a row of the board, Rank1 (White's back rank) through Rank8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// File is a column of the board, FileA through FileH.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// NewSquare creates a square from rank and file.
func NewSquare(r Rank, f File) Square {
	return Square(r&7)<<3 | Square(f&7)
}

// File returns the file (column) of the square.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank (row) of the square.
func (sq Square) Rank() Rank {
	return Rank(sq>>3) & 7
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	f := s[0] - 'a'
	r := s[1] - '1'
	if f > 7 || r > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	return NewSquare(Rank(r), File(f)), nil
}

// Mask returns every square on the rank.
func (r Rank) Mask() Bitboard {
	return RankMask[r&7]
}

// String returns the rank digit, "1" through "8".
func (r Rank) String() string {
	if r > Rank8 {
		return "?"
	}
	return string(rune('1' + r))
}

// Mask returns every square on the file.
func (f File) Mask() Bitboard {
	return FileMask[f&7]
}

// String returns the file letter, "a" through "h".
func (f File) String() string {
	if f > FileH {
		return "?"
	}
	return string(rune('a' + f))
}

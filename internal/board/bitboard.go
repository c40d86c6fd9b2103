package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	// Edges
	NotFileA Bitboard = 0xFEFEFEFEFEFEFEFE
	NotFileH Bitboard = 0x7F7F7F7F7F7F7F7F

	LightSquares Bitboard = 0x55AA55AA55AA55AA
	DarkSquares  Bitboard = 0xAA55AA55AA55AA55
)

// FileMask holds the mask of every square on a file, indexed by File.
var FileMask [8]Bitboard

// RankMask holds the mask of every square on a rank, indexed by Rank.
var RankMask [8]Bitboard

// singles[sq] is the bitboard with only sq set.
var singles [64]Bitboard

func init() {
	for i := 0; i < 64; i++ {
		singles[i] = 1 << uint(i)
	}
	for i := 0; i < 8; i++ {
		FileMask[i] = 0x0101010101010101 << uint(i)
		RankMask[i] = 0xFF << uint(8*i)
	}
}

// Zeros returns the empty set.
func Zeros() Bitboard {
	return Empty
}

// Ones returns the set of all 64 squares.
func Ones() Bitboard {
	return Universe
}

// SquareBB returns a bitboard with only the given square set.
// Squares off the board yield Empty.
func SquareBB(sq Square) Bitboard {
	if sq >= NoSquare {
		return Empty
	}
	return singles[sq]
}

// RankFileBB returns a bitboard with only the square at (rank, file) set.
func RankFileBB(r Rank, f File) Bitboard {
	return SquareBB(NewSquare(r, f))
}

// Zero returns true if no bits are set.
func (b Bitboard) Zero() bool {
	return b == 0
}

// NonZero returns true if there are any bits set.
func (b Bitboard) NonZero() bool {
	return b != 0
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Direction is one of the eight king-step directions, seen from White's side
// of the board: Up is toward rank 8, Right is toward file h.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

var directionNames = [...]string{"Up", "Down", "Left", "Right", "UpLeft", "UpRight", "DownLeft", "DownRight"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Direction(?)"
}

// Shift moves every set square one step in the given direction.
// Squares leaving the board are dropped; nothing wraps across the a/h edge.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case Up:
		return b.North()
	case Down:
		return b.South()
	case Left:
		return b.West()
	case Right:
		return b.East()
	case UpLeft:
		return b.NorthWest()
	case UpRight:
		return b.NorthEast()
	case DownLeft:
		return b.SouthWest()
	case DownRight:
		return b.SouthEast()
	}
	return b
}

// North shifts the bitboard one rank up (toward rank 8).
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts the bitboard one rank down (toward rank 1).
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts the bitboard one file right (toward file h).
func (b Bitboard) East() Bitboard {
	return (b << 1) & NotFileA
}

// West shifts the bitboard one file left (toward file a).
func (b Bitboard) West() Bitboard {
	return (b >> 1) & NotFileH
}

// NorthEast shifts the bitboard one square toward the h8 corner.
func (b Bitboard) NorthEast() Bitboard {
	return (b << 9) & NotFileA
}

// NorthWest shifts the bitboard one square toward the a8 corner.
func (b Bitboard) NorthWest() Bitboard {
	return (b << 7) & NotFileH
}

// SouthEast shifts the bitboard one square toward the h1 corner.
func (b Bitboard) SouthEast() Bitboard {
	return (b >> 7) & NotFileA
}

// SouthWest shifts the bitboard one square toward the a1 corner.
func (b Bitboard) SouthWest() Bitboard {
	return (b >> 9) & NotFileH
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteByte('1' + byte(r))
		sb.WriteByte(' ')
		for f := FileA; f <= FileH; f++ {
			if b.IsSet(NewSquare(r, f)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// ForEach calls the function for each set square.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		f(b.PopLSB())
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

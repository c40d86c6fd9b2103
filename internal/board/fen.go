package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Piece placement fields for well-known boards.
const (
	StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	EmptyPlacement = "8/8/8/8/8/8/8/8"
)

// FEN returns the piece placement field of the FEN representation of the
// board: ranks 8 down to 1 separated by '/', files a to h within a rank, runs
// of empty squares written as a single digit.
func (b *Board) FEN() string {
	var sb strings.Builder
	sb.Grow(len(StartPlacement))

	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := b.PieceAt(r, f)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	return sb.String()
}

// ParsePlacement parses the piece placement field of a FEN string. Only the
// canonical form is accepted: exactly eight ranks, counts 1-8, and no two
// counts next to each other.
func ParsePlacement(placement string) (Board, error) {
	var b Board

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		r := Rank8 - Rank(i) // FEN starts from rank 8
		file := 0
		prevCount := false

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]

			if c >= '1' && c <= '8' {
				if prevCount {
					return Board{}, fmt.Errorf("%w: adjacent empty counts in rank %s", ErrInvalidFEN, r)
				}
				file += int(c - '0')
				prevCount = true
			} else {
				piece := PieceFromChar(c)
				if piece == NoPiece {
					return Board{}, fmt.Errorf("%w: invalid piece character %q", ErrInvalidFEN, c)
				}
				if file > 7 {
					return Board{}, fmt.Errorf("%w: too many squares in rank %s", ErrInvalidFEN, r)
				}
				b.Put(NewSquare(r, File(file)), piece)
				file++
				prevCount = false
			}

			if file > 8 {
				return Board{}, fmt.Errorf("%w: too many squares in rank %s", ErrInvalidFEN, r)
			}
		}

		if file != 8 {
			return Board{}, fmt.Errorf("%w: rank %s has %d squares", ErrInvalidFEN, r, file)
		}
	}

	return b, nil
}

package board

import (
	"fmt"
	"strings"
)

// Board holds piece placement as two families of bitboards: one per color
// and one per piece type. A square's occupant is the intersection of the two.
//
// Every Board built through its methods keeps three invariants: the color
// bitboards are disjoint, the type bitboards are disjoint, and a square is set
// in some color bitboard exactly when it is set in some type bitboard.
//
// Board is a value type; copy it freely. It is not safe for concurrent
// mutation.
type Board struct {
	byColor [2]Bitboard
	byType  [6]Bitboard
}

// NewEmptyBoard returns a board with no pieces.
func NewEmptyBoard() Board {
	return Board{}
}

// NewBoard returns a board set up in the standard starting position.
func NewBoard() Board {
	var b Board

	b.SetSquares([]Square{A1, H1}, White, Rook)
	b.SetSquares([]Square{B1, G1}, White, Knight)
	b.SetSquares([]Square{C1, F1}, White, Bishop)
	b.SetSquare(D1, White, Queen)
	b.SetSquare(E1, White, King)
	b.SetSquares(Rank2.Mask().Squares(), White, Pawn)

	b.SetSquares([]Square{A8, H8}, Black, Rook)
	b.SetSquares([]Square{B8, G8}, Black, Knight)
	b.SetSquares([]Square{C8, F8}, Black, Bishop)
	b.SetSquare(D8, Black, Queen)
	b.SetSquare(E8, Black, King)
	b.SetSquares(Rank7.Mask().Squares(), Black, Pawn)

	return b
}

// ByColor returns the squares occupied by pieces of color c.
func (b *Board) ByColor(c Color) Bitboard {
	if c >= NoColor {
		return Empty
	}
	return b.byColor[c]
}

// ByType returns the squares occupied by pieces of type pt, either color.
func (b *Board) ByType(pt PieceType) Bitboard {
	if pt >= NoPieceType {
		return Empty
	}
	return b.byType[pt]
}

// Pieces returns the squares occupied by pieces of color c and type pt.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard {
	return b.ByColor(c) & b.ByType(pt)
}

// Occupied returns every occupied square.
func (b *Board) Occupied() Bitboard {
	return b.byColor[White] | b.byColor[Black]
}

// SetSquare places a piece of color c and type pt on sq, replacing whatever
// stood there. Out-of-range arguments leave the board unchanged.
func (b *Board) SetSquare(sq Square, c Color, pt PieceType) {
	b.set(SquareBB(sq), c, pt)
}

// SetSquares places the same piece on every listed square, replacing the
// previous occupants. The result does not depend on the order of squares.
func (b *Board) SetSquares(squares []Square, c Color, pt PieceType) {
	var bb Bitboard
	for _, sq := range squares {
		bb |= SquareBB(sq)
	}
	b.set(bb, c, pt)
}

// Put places piece p on sq. Putting NoPiece clears the square.
func (b *Board) Put(sq Square, p Piece) {
	if p == NoPiece {
		b.ClearSquare(sq)
		return
	}
	b.SetSquare(sq, p.Color(), p.Type())
}

func (b *Board) set(bb Bitboard, c Color, pt PieceType) {
	if bb == 0 || c >= NoColor || pt >= NoPieceType {
		return
	}
	b.clear(bb)
	b.byColor[c] |= bb
	b.byType[pt] |= bb
}

// ClearSquare removes any piece from sq.
func (b *Board) ClearSquare(sq Square) {
	b.clear(SquareBB(sq))
}

func (b *Board) clear(bb Bitboard) {
	for i := range b.byColor {
		b.byColor[i] &^= bb
	}
	for i := range b.byType {
		b.byType[i] &^= bb
	}
}

// ColorOn returns the color of the piece on sq, or NoColor if it is empty.
// White is tested first.
func (b *Board) ColorOn(sq Square) Color {
	bb := SquareBB(sq)
	for c := White; c <= Black; c++ {
		if b.byColor[c]&bb != 0 {
			return c
		}
	}
	return NoColor
}

// PieceTypeOn returns the type of the piece on sq, or NoPieceType if it is
// empty. Types are tested from Pawn up to King.
func (b *Board) PieceTypeOn(sq Square) PieceType {
	bb := SquareBB(sq)
	for pt := Pawn; pt <= King; pt++ {
		if b.byType[pt]&bb != 0 {
			return pt
		}
	}
	return NoPieceType
}

// PieceOn returns the piece on sq, or NoPiece if it is empty.
func (b *Board) PieceOn(sq Square) Piece {
	c := b.ColorOn(sq)
	if c == NoColor {
		return NoPiece
	}
	return NewPiece(c, b.PieceTypeOn(sq))
}

// ColorAt returns the color of the piece at (r, f), or NoColor.
func (b *Board) ColorAt(r Rank, f File) Color {
	return b.ColorOn(NewSquare(r, f))
}

// PieceTypeAt returns the type of the piece at (r, f), or NoPieceType.
func (b *Board) PieceTypeAt(r Rank, f File) PieceType {
	return b.PieceTypeOn(NewSquare(r, f))
}

// PieceAt returns the piece at (r, f), or NoPiece.
func (b *Board) PieceAt(r Rank, f File) Piece {
	return b.PieceOn(NewSquare(r, f))
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Occupied()&SquareBB(sq) == 0
}

// Validate checks the placement invariants. Boards built through the
// mutating methods always pass; boards decoded from outside input may not.
func (b *Board) Validate() error {
	if overlap := b.byColor[White] & b.byColor[Black]; overlap != 0 {
		return fmt.Errorf("%w: %s claimed by both colors", ErrInvalidBoard, overlap.LSB())
	}

	var types Bitboard
	for pt := Pawn; pt <= King; pt++ {
		if overlap := types & b.byType[pt]; overlap != 0 {
			return fmt.Errorf("%w: %s holds more than one piece type", ErrInvalidBoard, overlap.LSB())
		}
		types |= b.byType[pt]
	}

	colors := b.Occupied()
	if diff := colors ^ types; diff != 0 {
		sq := diff.LSB()
		if colors.IsSet(sq) {
			return fmt.Errorf("%w: %s has a color but no piece type", ErrInvalidBoard, sq)
		}
		return fmt.Errorf("%w: %s has a piece type but no color", ErrInvalidBoard, sq)
	}

	return nil
}

// FromBitboards builds a board from raw color and type bitboards, as produced
// by Bitboards, and validates it.
func FromBitboards(byColor [2]Bitboard, byType [6]Bitboard) (Board, error) {
	b := Board{byColor: byColor, byType: byType}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Bitboards returns copies of the raw color and type bitboards.
func (b *Board) Bitboards() (byColor [2]Bitboard, byType [6]Bitboard) {
	return b.byColor, b.byType
}

// String returns a visual representation of the board.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteString("  ")
		for f := FileA; f <= FileH; f++ {
			p := b.PieceAt(r, f)
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(p.Char())
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}

package board

import (
	"errors"
	"testing"
)

func TestNewEmptyBoard(t *testing.T) {
	b := NewEmptyBoard()
	if b.Occupied() != Empty {
		t.Errorf("empty board occupies %#x", uint64(b.Occupied()))
	}
	for sq := A1; sq <= H8; sq++ {
		if b.PieceOn(sq) != NoPiece {
			t.Errorf("%s should be empty", sq)
		}
	}
}

func TestStartingBoardOccupancy(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		r    Rank
		f    File
		want Piece
	}{
		{Rank1, FileA, WhiteRook},
		{Rank1, FileH, WhiteRook},
		{Rank1, FileB, WhiteKnight},
		{Rank1, FileC, WhiteBishop},
		{Rank1, FileD, WhiteQueen},
		{Rank1, FileE, WhiteKing},
		{Rank2, FileE, WhitePawn},
		{Rank7, FileA, BlackPawn},
		{Rank8, FileD, BlackQueen},
		{Rank8, FileE, BlackKing},
		{Rank8, FileG, BlackKnight},
	}

	for _, tc := range tests {
		if got := b.PieceAt(tc.r, tc.f); got != tc.want {
			t.Errorf("PieceAt(%s%s) = %v, want %v", tc.f, tc.r, got, tc.want)
		}
	}

	for r := Rank3; r <= Rank6; r++ {
		for f := FileA; f <= FileH; f++ {
			if p := b.PieceAt(r, f); p != NoPiece {
				t.Errorf("PieceAt(%s%s) = %v, want empty", f, r, p)
			}
			if c := b.ColorAt(r, f); c != NoColor {
				t.Errorf("ColorAt(%s%s) = %v, want NoColor", f, r, c)
			}
			if pt := b.PieceTypeAt(r, f); pt != NoPieceType {
				t.Errorf("PieceTypeAt(%s%s) = %v, want NoPieceType", f, r, pt)
			}
		}
	}

	if n := b.Occupied().PopCount(); n != 32 {
		t.Errorf("starting board has %d pieces, want 32", n)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestSetSquaresMatchesSetSquare(t *testing.T) {
	var batch, single Board

	batch.SetSquares([]Square{C3, F6}, Black, Knight)
	single.SetSquare(C3, Black, Knight)
	single.SetSquare(F6, Black, Knight)

	if batch != single {
		t.Errorf("batch placement differs from single placements:\n%v\n%v", batch, single)
	}

	var reversed Board
	reversed.SetSquares([]Square{F6, C3}, Black, Knight)
	if reversed != batch {
		t.Error("SetSquares should not depend on square order")
	}
}

func TestSetSquareReplacesOccupant(t *testing.T) {
	b := NewBoard()

	b.SetSquare(E2, Black, Queen)

	if got := b.PieceOn(E2); got != BlackQueen {
		t.Errorf("PieceOn(e2) = %v, want q", got)
	}
	if b.ByColor(White).IsSet(E2) {
		t.Error("e2 still marked white")
	}
	if b.ByType(Pawn).IsSet(E2) {
		t.Error("e2 still marked as pawn")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	b.SetSquares([]Square{E1, E8}, White, Rook)
	if b.Pieces(White, King) != Empty || b.Pieces(Black, King) != Empty {
		t.Error("kings should have been replaced")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestClearSquareAndPut(t *testing.T) {
	b := NewBoard()
	b.ClearSquare(D1)
	if !b.IsEmpty(D1) || b.PieceOn(D1) != NoPiece {
		t.Error("d1 should be empty after ClearSquare")
	}

	b.Put(D4, WhiteQueen)
	if b.PieceOn(D4) != WhiteQueen {
		t.Errorf("PieceOn(d4) = %v, want Q", b.PieceOn(D4))
	}
	b.Put(D4, NoPiece)
	if !b.IsEmpty(D4) {
		t.Error("Put(NoPiece) should clear d4")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestSetSquareIgnoresInvalidArguments(t *testing.T) {
	b := NewEmptyBoard()
	b.SetSquare(NoSquare, White, Pawn)
	b.SetSquare(A1, NoColor, Pawn)
	b.SetSquare(A1, White, NoPieceType)
	if b != NewEmptyBoard() {
		t.Error("invalid placements should leave the board unchanged")
	}
}

func TestPieceTypePriority(t *testing.T) {
	b, err := FromBitboards(
		[2]Bitboard{SquareBB(A1), 0},
		[6]Bitboard{Pawn: SquareBB(A1)},
	)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	if b.PieceTypeOn(A1) != Pawn || b.ColorOn(A1) != White {
		t.Errorf("PieceOn(a1) = %v", b.PieceOn(A1))
	}
}

func TestValidateRejectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name    string
		byColor [2]Bitboard
		byType  [6]Bitboard
	}{
		{
			name:    "both colors",
			byColor: [2]Bitboard{SquareBB(E4), SquareBB(E4)},
			byType:  [6]Bitboard{Pawn: SquareBB(E4)},
		},
		{
			name:    "two types",
			byColor: [2]Bitboard{SquareBB(E4), 0},
			byType:  [6]Bitboard{Pawn: SquareBB(E4), Queen: SquareBB(E4)},
		},
		{
			name:    "color without type",
			byColor: [2]Bitboard{SquareBB(E4), 0},
		},
		{
			name:   "type without color",
			byType: [6]Bitboard{King: SquareBB(E4)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromBitboards(tc.byColor, tc.byType)
			if !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("error = %v, want ErrInvalidBoard", err)
			}
		})
	}
}

func TestBitboardsRoundTrip(t *testing.T) {
	b := NewBoard()
	byColor, byType := b.Bitboards()
	got, err := FromBitboards(byColor, byType)
	if err != nil {
		t.Fatalf("FromBitboards: %v", err)
	}
	if got != b {
		t.Error("FromBitboards(Bitboards()) changed the board")
	}
}

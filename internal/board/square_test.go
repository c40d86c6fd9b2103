package board

import (
	"errors"
	"testing"
)

func TestSquareRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if got := NewSquare(sq.Rank(), sq.File()); got != sq {
			t.Errorf("NewSquare(%d, %d) = %d, want %d", sq.Rank(), sq.File(), got, sq)
		}
	}

	seen := make(map[Square]bool, 64)
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			sq := NewSquare(r, f)
			if sq.Rank() != r || sq.File() != f {
				t.Errorf("NewSquare(%s, %s) projects to (%s, %s)", r, f, sq.Rank(), sq.File())
			}
			if int(sq) != int(r)*8+int(f) {
				t.Errorf("NewSquare(%s, %s) = %d, want %d", r, f, sq, int(r)*8+int(f))
			}
			seen[sq] = true
		}
	}
	if len(seen) != 64 {
		t.Errorf("rank/file pairs map to %d squares, want 64", len(seen))
	}
}

func TestSquareNames(t *testing.T) {
	tests := []struct {
		sq   Square
		name string
		r    Rank
		f    File
	}{
		{A1, "a1", Rank1, FileA},
		{H1, "h1", Rank1, FileH},
		{C2, "c2", Rank2, FileC},
		{E4, "e4", Rank4, FileE},
		{A8, "a8", Rank8, FileA},
		{H8, "h8", Rank8, FileH},
	}

	for _, tc := range tests {
		if tc.sq.String() != tc.name {
			t.Errorf("%d.String() = %q, want %q", tc.sq, tc.sq.String(), tc.name)
		}
		if tc.sq.Rank() != tc.r || tc.sq.File() != tc.f {
			t.Errorf("%s projects to (%s, %s)", tc.name, tc.sq.Rank(), tc.sq.File())
		}
		sq, err := ParseSquare(tc.name)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", tc.name, err)
		}
		if sq != tc.sq {
			t.Errorf("ParseSquare(%q) = %s", tc.name, sq)
		}
	}

	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q", NoSquare.String())
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "e", "e9", "i1", "E4", "e44", "`1", "a0"} {
		sq, err := ParseSquare(s)
		if !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", s, err)
		}
		if sq != NoSquare {
			t.Errorf("ParseSquare(%q) = %s, want NoSquare", s, sq)
		}
	}
}

func TestRankFileMasks(t *testing.T) {
	for r := Rank1; r <= Rank8; r++ {
		if r.Mask().PopCount() != 8 {
			t.Errorf("rank %s mask has %d squares", r, r.Mask().PopCount())
		}
	}
	for f := FileA; f <= FileH; f++ {
		m := f.Mask()
		if m.PopCount() != 8 {
			t.Errorf("file %s mask has %d squares", f, m.PopCount())
		}
		for _, sq := range m.Squares() {
			if sq.File() != f {
				t.Errorf("file %s mask contains %s", f, sq)
			}
		}
	}
	if FileA.Mask() != ^NotFileA || FileH.Mask() != ^NotFileH {
		t.Error("edge masks disagree with file masks")
	}
}

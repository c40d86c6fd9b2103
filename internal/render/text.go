package render

import (
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/turox/turox/internal/board"
)

// Text writes a diagram of b for a terminal, rank 8 at the top. With colour
// enabled, squares get light and dark backgrounds and white pieces are bold.
func Text(w io.Writer, b board.Board, colored bool) error {
	au := aurora.NewAurora(colored)

	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteByte(' ')
		for f := board.FileA; f <= board.FileH; f++ {
			sq := board.NewSquare(r, f)
			cell := " . "
			p := b.PieceOn(sq)
			if p != board.NoPiece {
				cell = " " + p.String() + " "
			}

			var v aurora.Value
			if p != board.NoPiece && p.Color() == board.White {
				v = au.Bold(cell)
			} else {
				v = au.Reset(cell)
			}
			if isLight(sq) {
				v = au.BgWhite(v)
			} else {
				v = au.BgGreen(v)
			}
			sb.WriteString(v.String())
		}
		sb.WriteByte('\n')
		if r == board.Rank1 {
			break
		}
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

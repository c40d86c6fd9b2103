package render

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/turox/turox/internal/board"
)

const (
	whitePieceFill = "#fafafa"
	blackPieceFill = "#202020"
	pieceStroke    = "#000000"
	labelFill      = "#404040"
)

// SVG writes an SVG diagram of b.
func SVG(w io.Writer, b board.Board, o Options) error {
	if err := o.validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	writeSVG(&buf, b, o, true)
	_, err := buf.WriteTo(w)
	return err
}

// writeSVG draws the diagram. Without text, only squares and piece discs are
// drawn; the raster path adds letters itself.
func writeSVG(w io.Writer, b board.Board, o Options, withText bool) {
	size := o.Size()
	s := o.SquareSize

	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, size, size)
	canvas.Rect(0, 0, size, size, "fill:#ffffff")

	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := o.squareOrigin(sq.Rank(), sq.File())
		fill := o.DarkSquare
		if isLight(sq) {
			fill = o.LightSquare
		}
		canvas.Rect(x, y, s, s, "fill:"+fill)

		p := b.PieceOn(sq)
		if p == board.NoPiece {
			continue
		}

		pieceFill, textFill := whitePieceFill, blackPieceFill
		if p.Color() == board.Black {
			pieceFill, textFill = blackPieceFill, whitePieceFill
		}
		canvas.Circle(x+s/2, y+s/2, s*2/5, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", pieceFill, pieceStroke, max(1, s/32)))
		if withText {
			canvas.Text(x+s/2, y+s/2, string(p.Type().Char()),
				fmt.Sprintf("fill:%s;font-family:sans-serif;font-weight:bold;font-size:%dpx;text-anchor:middle;dominant-baseline:central", textFill, s/2))
		}
	}

	if withText && o.Coordinates {
		m := o.margin()
		style := fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:%dpx;text-anchor:middle;dominant-baseline:central", labelFill, max(8, m/2))
		for f := board.FileA; f <= board.FileH; f++ {
			x, _ := o.squareOrigin(board.Rank1, f)
			canvas.Text(x+s/2, size-m/2, f.String(), style)
		}
		for r := board.Rank1; r <= board.Rank8; r++ {
			_, y := o.squareOrigin(r, board.FileA)
			canvas.Text(m/2, y+s/2, r.String(), style)
		}
	}

	canvas.End()
}

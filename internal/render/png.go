package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/turox/turox/internal/board"
)

// Image rasterizes the diagram of b. Squares and piece discs come from the
// SVG diagram; piece letters and coordinates are drawn with a bitmap font.
func Image(b board.Board, o Options) (*image.RGBA, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeSVG(&buf, b, o, false)

	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}

	size := o.Size()
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	face := basicfont.Face7x13
	s := o.SquareSize
	for sq := board.A1; sq <= board.H8; sq++ {
		p := b.PieceOn(sq)
		if p == board.NoPiece {
			continue
		}
		ink := color.Color(color.Black)
		if p.Color() == board.Black {
			ink = color.White
		}
		x, y := o.squareOrigin(sq.Rank(), sq.File())
		drawCentered(rgba, face, ink, string(p.Type().Char()), x+s/2, y+s/2)
	}

	if o.Coordinates {
		m := o.margin()
		for f := board.FileA; f <= board.FileH; f++ {
			x, _ := o.squareOrigin(board.Rank1, f)
			drawCentered(rgba, face, color.Black, f.String(), x+s/2, size-m/2)
		}
		for r := board.Rank1; r <= board.Rank8; r++ {
			_, y := o.squareOrigin(r, board.FileA)
			drawCentered(rgba, face, color.Black, r.String(), m/2, y+s/2)
		}
	}

	return rgba, nil
}

// PNG writes the rasterized diagram of b as a PNG image.
func PNG(w io.Writer, b board.Board, o Options) error {
	img, err := Image(b, o)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func drawCentered(dst *image.RGBA, face font.Face, ink color.Color, s string, cx, cy int) {
	m := face.Metrics()
	width := font.MeasureString(face, s)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(cx) - width/2,
			Y: fixed.I(cy) + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(s)
}

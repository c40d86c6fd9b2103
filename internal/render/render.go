// Package render draws board diagrams as coloured terminal text, SVG and PNG.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/turox/turox/internal/board"
)

// Options configures the SVG and PNG diagrams.
type Options struct {
	SquareSize  int    // pixels per square
	LightSquare string // #rrggbb
	DarkSquare  string // #rrggbb
	Coordinates bool   // draw file letters and rank digits in a margin
}

// DefaultOptions returns the standard diagram settings.
func DefaultOptions() Options {
	return Options{
		SquareSize:  64,
		LightSquare: "#f0d9b5",
		DarkSquare:  "#b58863",
		Coordinates: true,
	}
}

func (o Options) validate() error {
	if o.SquareSize < 16 {
		return fmt.Errorf("square size %d too small", o.SquareSize)
	}
	if _, err := parseHexColor(o.LightSquare); err != nil {
		return err
	}
	if _, err := parseHexColor(o.DarkSquare); err != nil {
		return err
	}
	return nil
}

func (o Options) margin() int {
	if o.Coordinates {
		return o.SquareSize / 2
	}
	return 0
}

// Size returns the width and height of the diagram in pixels.
func (o Options) Size() int {
	return 8*o.SquareSize + 2*o.margin()
}

// squareOrigin returns the top-left pixel of the square at (r, f), with rank 8
// at the top.
func (o Options) squareOrigin(r board.Rank, f board.File) (x, y int) {
	m := o.margin()
	return m + int(f)*o.SquareSize, m + int(board.Rank8-r)*o.SquareSize
}

func isLight(sq board.Square) bool {
	return board.LightSquares.IsSet(sq)
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

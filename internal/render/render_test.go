package render

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turox/turox/internal/board"
)

func TestTextPlain(t *testing.T) {
	b := board.NewEmptyBoard()
	b.SetSquare(board.E4, board.White, board.Queen)
	b.SetSquare(board.C7, board.Black, board.Pawn)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, b, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "8  .  .  .  .  .  .  .  . ", lines[0])
	assert.Equal(t, "7  .  .  p  .  .  .  .  . ", lines[1])
	assert.Equal(t, "4  .  .  .  .  Q  .  .  . ", lines[4])
	assert.Equal(t, "   a  b  c  d  e  f  g  h", lines[8])
}

func TestTextColored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, board.NewBoard(), true))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), " K ")
	assert.Contains(t, buf.String(), " k ")
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, board.NewBoard(), DefaultOptions()))

	out := buf.String()
	assert.Equal(t, 64, strings.Count(out, "<rect")-1, "one rect per square plus the background")
	assert.Equal(t, 32, strings.Count(out, "<circle"))
	assert.Contains(t, out, `viewBox="0 0 576 576"`)

	// Output must be well-formed XML.
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestSVGRejectsBadOptions(t *testing.T) {
	o := DefaultOptions()
	o.LightSquare = "white"
	assert.Error(t, SVG(&bytes.Buffer{}, board.NewBoard(), o))

	o = DefaultOptions()
	o.SquareSize = 4
	assert.Error(t, SVG(&bytes.Buffer{}, board.NewBoard(), o))
}

func TestImageSquares(t *testing.T) {
	o := DefaultOptions()
	o.Coordinates = false
	o.SquareSize = 32

	img, err := Image(board.NewEmptyBoard(), o)
	require.NoError(t, err)
	require.Equal(t, 256, img.Bounds().Dx())

	light, _ := parseHexColor(o.LightSquare)
	dark, _ := parseHexColor(o.DarkSquare)

	// a1 is dark and sits in the bottom-left corner; b1 is light.
	assertColorNear(t, dark, img.RGBAAt(16, 256-16))
	assertColorNear(t, light, img.RGBAAt(32+16, 256-16))
}

// assertColorNear allows for rounding in the rasterizer's compositing.
func assertColorNear(t *testing.T, want, got color.RGBA) {
	t.Helper()
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -2 && d <= 2
	}
	if !near(want.R, got.R) || !near(want.G, got.G) || !near(want.B, got.B) {
		t.Errorf("colour = %v, want %v", got, want)
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, board.NewBoard(), DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions().Size(), img.Bounds().Dx())
	assert.Equal(t, DefaultOptions().Size(), img.Bounds().Dy())
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#f0d9b5")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xf0, G: 0xd9, B: 0xb5, A: 0xff}, c)

	for _, s := range []string{"", "f0d9b5", "#f0d9b", "#gggggg"} {
		_, err := parseHexColor(s)
		assert.Error(t, err, s)
	}
}

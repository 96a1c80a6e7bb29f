/*
Package render draws boardgame grids for people: coloured terminal text and
SVG diagrams. It reads only occupant glyphs, owners and grid dimensions.

Colours are supplied per call through options; there is no package level
styling table.

Example usage:

	fmt.Print(render.Text(game.Grid(), render.WithPalette(render.DefaultPalette())))

	f, _ := os.Create("board.svg")
	defer f.Close()
	render.SVG(f, game.Grid())
*/
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mway1/boardgame"
	"golang.org/x/exp/maps"
)

// A Palette maps an owner to the ANSI escape sequence its glyphs are drawn in.
type Palette map[boardgame.PlayerID]string

// Reset ends an ANSI colour sequence.
const Reset = "\033[0m"

// DefaultPalette returns a new palette for the chess and tic-tac-toe owners.
func DefaultPalette() Palette {
	return Palette{
		"white": "\033[1;37m",
		"black": "\033[0;30m",
		"X":     "\033[0;31m",
		"O":     "\033[0;34m",
	}
}

// Colors maps an owner to the SVG fill used for its glyphs.
type Colors map[boardgame.PlayerID]string

// DefaultColors returns a new SVG colour table for the chess owners.
func DefaultColors() Colors {
	return Colors{
		"white": "#ffffff",
		"black": "#000000",
		"X":     "#b22222",
		"O":     "#1e3a8a",
	}
}

type options struct {
	palette     Palette
	colors      Colors
	squareSize  int
	coordinates bool
	light       string
	dark        string
}

// An Option configures Text or SVG.
type Option func(*options)

// WithPalette colours text output. The palette is copied.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = make(Palette, len(p))
		maps.Copy(o.palette, p)
	}
}

// WithColors sets the SVG glyph colours. The table is copied.
func WithColors(c Colors) Option {
	return func(o *options) {
		o.colors = make(Colors, len(c))
		maps.Copy(o.colors, c)
	}
}

// WithSquareSize sets the SVG square edge in pixels.
func WithSquareSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.squareSize = px
		}
	}
}

// WithCoordinates labels columns and rows.
func WithCoordinates() Option {
	return func(o *options) {
		o.coordinates = true
	}
}

// WithSquareColors sets the light and dark SVG square fills.
func WithSquareColors(light, dark string) Option {
	return func(o *options) {
		o.light, o.dark = light, dark
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		colors:     DefaultColors(),
		squareSize: 45,
		light:      "#f0d9b5",
		dark:       "#b58863",
	}
	for _, f := range opts {
		if f != nil {
			f(o)
		}
	}
	return o
}

// Text draws g one row per line, top row first. Empty squares are '.', and
// glyphs are wrapped in their owner's palette entry when a palette is given.
func Text(g *boardgame.Grid, opts ...Option) string {
	o := newOptions(opts)
	width := len(strconv.Itoa(g.Height() - 1))
	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		if o.coordinates {
			fmt.Fprintf(&sb, "%*d ", width, row)
		}
		for col := 0; col < g.Width(); col++ {
			sb.WriteString(o.glyph(g, boardgame.C(col, row)))
		}
		sb.WriteString("\n")
	}
	if o.coordinates {
		sb.WriteString(strings.Repeat(" ", width+1))
		for col := 0; col < g.Width(); col++ {
			sb.WriteString(colLabel(col))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (o *options) glyph(g *boardgame.Grid, c boardgame.Coord) string {
	found := g.OccupantsOverlapping(c, boardgame.Unit)
	if len(found) == 0 {
		return "."
	}
	occ := found[0]
	if esc, ok := o.palette[occ.Owner()]; ok {
		return esc + occ.Glyph() + Reset
	}
	return occ.Glyph()
}

func colLabel(col int) string {
	if col < 26 {
		return string(rune('a' + col))
	}
	return "?"
}

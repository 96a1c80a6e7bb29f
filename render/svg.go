package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/mway1/boardgame"
)

// SVG writes a checkered diagram of g to w. Each occupant is drawn once as
// its glyph centred on its footprint.
func SVG(w io.Writer, g *boardgame.Grid, opts ...Option) error {
	o := newOptions(opts)
	ew := &errWriter{w: w}
	sq := o.squareSize
	margin := 0
	if o.coordinates {
		margin = sq / 2
	}
	canvas := svg.New(ew)
	canvas.Start(g.Width()*sq+margin, g.Height()*sq+margin)

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			fill := o.light
			if (row+col)%2 == 1 {
				fill = o.dark
			}
			canvas.Rect(margin+col*sq, row*sq, sq, sq, "fill:"+fill)
		}
	}

	for _, occ := range g.Occupants() {
		pos, ok := occ.Position()
		if !ok {
			continue
		}
		size := occ.Size()
		x := margin + pos.Col*sq + size.W*sq/2
		y := pos.Row*sq + size.H*sq/2
		fill, ok := o.colors[occ.Owner()]
		if !ok {
			fill = "#808080"
		}
		style := fmt.Sprintf("font-size:%dpx;font-family:sans-serif;text-anchor:middle;dominant-baseline:central;fill:%s;stroke:#404040;stroke-width:1", sq*2/3, fill)
		canvas.Text(x, y, occ.Glyph(), style)
	}

	if o.coordinates {
		label := fmt.Sprintf("font-size:%dpx;font-family:sans-serif;text-anchor:middle;dominant-baseline:central;fill:#404040", sq/3)
		for row := 0; row < g.Height(); row++ {
			canvas.Text(margin/2, row*sq+sq/2, fmt.Sprint(row), label)
		}
		for col := 0; col < g.Width(); col++ {
			canvas.Text(margin+col*sq+sq/2, g.Height()*sq+margin/2, colLabel(col), label)
		}
	}

	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

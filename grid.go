package boardgame

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// A Grid is a fixed-size rectangle of squares holding placed occupants. The
// grid owns its occupants: Clone copies every one of them.
type Grid struct {
	width     int
	height    int
	occupants []Occupant
}

// NewGrid returns an empty grid of the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	return &Grid{width: width, height: height}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Squares returns every coordinate of the grid in row-major order.
func (g *Grid) Squares() []Coord {
	squares := make([]Coord, 0, g.width*g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			squares = append(squares, Coord{Col: col, Row: row})
		}
	}
	return squares
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.width && c.Row < g.height
}

// Fits reports whether a footprint of the given size placed at topLeft stays
// inside the grid.
func (g *Grid) Fits(topLeft Coord, size Size) bool {
	return g.InBounds(topLeft) && topLeft.Col+size.W <= g.width && topLeft.Row+size.H <= g.height
}

// AddOccupant places o with its top-left corner at topLeft. Overlap with
// other occupants is not checked here.
func (g *Grid) AddOccupant(o Occupant, topLeft Coord) error {
	if !g.Fits(topLeft, o.Size()) {
		return fmt.Errorf("%w: %s footprint %dx%d at %s", ErrOutOfBounds, o.Glyph(), o.Size().W, o.Size().H, topLeft)
	}
	o.SetPosition(topLeft)
	g.occupants = append(g.occupants, o)
	return nil
}

// Occupants returns the placed occupants in placement order. The slice is a
// copy; the occupants are not.
func (g *Grid) Occupants() []Occupant {
	return slices.Clone(g.occupants)
}

// Contains reports whether o (by identity) is placed on the grid.
func (g *Grid) Contains(o Occupant) bool {
	return slices.Index(g.occupants, o) >= 0
}

// OccupantsOverlapping returns every occupant whose footprint shares at least
// one square with the box at topLeft of the given size.
func (g *Grid) OccupantsOverlapping(topLeft Coord, size Size) []Occupant {
	var found []Occupant
	for _, o := range g.occupants {
		pos, ok := o.Position()
		if !ok {
			continue
		}
		if boxesOverlap(topLeft, size, pos, o.Size()) {
			found = append(found, o)
		}
	}
	return found
}

// OccupantAt returns the occupant covering c, or nil if the square is empty.
// ErrInconsistentBoard is returned when more than one occupant covers c.
func (g *Grid) OccupantAt(c Coord) (Occupant, error) {
	found := g.OccupantsOverlapping(c, Unit)
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	}
	glyphs := make([]string, len(found))
	for i, o := range found {
		glyphs[i] = o.Glyph()
	}
	return nil, fmt.Errorf("%w: %d occupants at %s: %s", ErrInconsistentBoard, len(found), c, strings.Join(glyphs, ","))
}

// MustOccupantAt is OccupantAt for callers that cannot return an error. An
// inconsistent board panics.
func (g *Grid) MustOccupantAt(c Coord) Occupant {
	o, err := g.OccupantAt(c)
	if err != nil {
		panic(err)
	}
	return o
}

// RemoveOccupant removes o by identity and reports whether it was present.
func (g *Grid) RemoveOccupant(o Occupant) bool {
	i := slices.Index(g.occupants, o)
	if i < 0 {
		return false
	}
	g.occupants = slices.Delete(g.occupants, i, i+1)
	return true
}

// ClearSquare removes every occupant covering c and returns them.
func (g *Grid) ClearSquare(c Coord) []Occupant {
	found := g.OccupantsOverlapping(c, Unit)
	for _, o := range found {
		g.RemoveOccupant(o)
	}
	return found
}

// Relocate moves a placed occupant so that its top-left corner is at to.
func (g *Grid) Relocate(o Occupant, to Coord) error {
	if !g.Contains(o) {
		return fmt.Errorf("%w: %s is not on the grid", ErrNoOccupant, o.Glyph())
	}
	if !g.Fits(to, o.Size()) {
		return fmt.Errorf("%w: %s to %s", ErrOutOfBounds, o.Glyph(), to)
	}
	others := slices.DeleteFunc(g.OccupantsOverlapping(to, o.Size()), func(other Occupant) bool {
		return other == o
	})
	if len(others) > 0 {
		return fmt.Errorf("%w: %d occupants under %s at %s", ErrInconsistentBoard, len(others)+1, o.Glyph(), to)
	}
	o.SetPosition(to)
	return nil
}

// OccupantsOnPath returns the occupants strictly between from and to along a
// row, column or diagonal. Neither endpoint is inspected.
func (g *Grid) OccupantsOnPath(from, to Coord) ([]Occupant, error) {
	if !Straight(from, to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrNotAStraightLine, from, to)
	}
	steps := abs(to.Col - from.Col)
	if VerticalOnly(from, to) {
		steps = abs(to.Row - from.Row)
	}
	dc, dr := sign(to.Col-from.Col), sign(to.Row-from.Row)

	var found []Occupant
	for i := 1; i < steps; i++ {
		for _, o := range g.OccupantsOverlapping(from.Add(dc*i, dr*i), Unit) {
			if !slices.Contains(found, o) {
				found = append(found, o)
			}
		}
	}
	return found, nil
}

// PathClear reports whether from and to are aligned and nothing stands
// strictly between them.
func (g *Grid) PathClear(from, to Coord) bool {
	found, err := g.OccupantsOnPath(from, to)
	return err == nil && len(found) == 0
}

// Clone returns a deep copy of the grid: every occupant is cloned.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		width:     g.width,
		height:    g.height,
		occupants: make([]Occupant, len(g.occupants)),
	}
	for i, o := range g.occupants {
		cp.occupants[i] = o.Clone()
	}
	return cp
}

// String draws the grid one row per line, top row first, using glyphs and
// a blank for empty squares. Multi-square occupants are drawn on every
// square they cover.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			found := g.OccupantsOverlapping(Coord{Col: col, Row: row}, Unit)
			switch len(found) {
			case 0:
				sb.WriteString(" ")
			case 1:
				sb.WriteString(found[0].Glyph())
			default:
				sb.WriteString("!")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

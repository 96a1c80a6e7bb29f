package boardgame

import "fmt"

// A Coord is a (column, row) pair on a grid. Column 0 is the left edge and
// row 0 the top edge.
type Coord struct {
	Col int
	Row int
}

// C is shorthand for Coord{Col: col, Row: row}.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String implements the fmt.Stringer interface.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Add returns c shifted by dc columns and dr rows.
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// A Size is the width and height of an occupant footprint.
type Size struct {
	W int
	H int
}

// Unit is the 1×1 footprint used by every chess piece.
var Unit = Size{W: 1, H: 1}

// HorizontalOnly reports whether moving from one square to another changes
// the column and keeps the row.
func HorizontalOnly(from, to Coord) bool {
	return from.Col != to.Col && from.Row == to.Row
}

// VerticalOnly reports whether moving from one square to another changes
// the row and keeps the column.
func VerticalOnly(from, to Coord) bool {
	return from.Row != to.Row && from.Col == to.Col
}

// DiagonalOnly reports whether the row and column deltas are equal in size.
// A zero-length move counts as diagonal; callers rule it out separately.
func DiagonalOnly(from, to Coord) bool {
	return abs(from.Row-to.Row) == abs(from.Col-to.Col)
}

// Straight reports whether the two squares share a row, a column or a diagonal.
func Straight(from, to Coord) bool {
	return HorizontalOnly(from, to) || VerticalOnly(from, to) || DiagonalOnly(from, to)
}

// ManhattanDistance is the sum of the absolute column and row deltas.
func ManhattanDistance(from, to Coord) int {
	return abs(from.Col-to.Col) + abs(from.Row-to.Row)
}

// LinearDistance is the number of squares travelled along a straight line:
// the manhattan distance, halved for diagonal moves.
func LinearDistance(from, to Coord) (int, error) {
	if !Straight(from, to) {
		return 0, fmt.Errorf("%w: %s to %s", ErrNotAStraightLine, from, to)
	}
	d := ManhattanDistance(from, to)
	if DiagonalOnly(from, to) {
		return d / 2, nil
	}
	return d, nil
}

// overlap1D reports whether [aStart, aStart+aLen) and [bStart, bStart+bLen)
// share at least one cell.
func overlap1D(aStart, aLen, bStart, bLen int) bool {
	return aStart < bStart+bLen && bStart < aStart+aLen
}

// boxesOverlap is the 2-D intersection of the per-axis interval tests.
func boxesOverlap(a Coord, as Size, b Coord, bs Size) bool {
	return overlap1D(a.Col, as.W, b.Col, bs.W) && overlap1D(a.Row, as.H, b.Row, bs.H)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

package chess

import "github.com/mway1/boardgame"

// PawnPiece moves towards the opponent's side: one square straight ahead
// onto an empty square, two from its starting row, or one diagonally forward
// onto an enemy piece. Whether it has moved is read from its row.
type PawnPiece struct {
	base
	forward  int
	startRow int
}

func (p *PawnPiece) CanMove(g *boardgame.Grid, to boardgame.Coord) bool {
	from, ok := p.canLand(g, to)
	if !ok {
		return false
	}
	dr := to.Row - from.Row
	if dr*p.forward <= 0 {
		return false
	}
	target := g.MustOccupantAt(to)
	switch steps := abs(dr); {
	case boardgame.DiagonalOnly(from, to) && steps == 1:
		return target != nil
	case boardgame.VerticalOnly(from, to) && steps == 1:
		return target == nil
	case boardgame.VerticalOnly(from, to) && steps == 2 && from.Row == p.startRow:
		return target == nil && g.PathClear(from, to)
	}
	return false
}

func (p *PawnPiece) Clone() boardgame.Occupant {
	cp := *p
	return &cp
}

// KnightPiece moves three squares in manhattan distance without staying on
// a row or column, which on a bounded board is exactly the L shape.
type KnightPiece struct{ base }

func (p *KnightPiece) CanMove(g *boardgame.Grid, to boardgame.Coord) bool {
	from, ok := p.canLand(g, to)
	if !ok {
		return false
	}
	return boardgame.ManhattanDistance(from, to) == 3 &&
		!boardgame.HorizontalOnly(from, to) && !boardgame.VerticalOnly(from, to)
}

func (p *KnightPiece) Clone() boardgame.Occupant {
	cp := *p
	return &cp
}

// BishopPiece slides diagonally.
type BishopPiece struct{ base }

func (p *BishopPiece) CanMove(g *boardgame.Grid, to boardgame.Coord) bool {
	from, ok := p.canLand(g, to)
	if !ok {
		return false
	}
	return boardgame.DiagonalOnly(from, to) && g.PathClear(from, to)
}

func (p *BishopPiece) Clone() boardgame.Occupant {
	cp := *p
	return &cp
}

// RookPiece slides along rows and columns.
type RookPiece struct{ base }

func (p *RookPiece) CanMove(g *boardgame.Grid, to boardgame.Coord) bool {
	from, ok := p.canLand(g, to)
	if !ok {
		return false
	}
	return (boardgame.HorizontalOnly(from, to) || boardgame.VerticalOnly(from, to)) && g.PathClear(from, to)
}

func (p *RookPiece) Clone() boardgame.Occupant {
	cp := *p
	return &cp
}

// QueenPiece slides along rows, columns and diagonals.
type QueenPiece struct{ base }

func (p *QueenPiece) CanMove(g *boardgame.Grid, to boardgame.Coord) bool {
	from, ok := p.canLand(g, to)
	if !ok {
		return false
	}
	return boardgame.Straight(from, to) && g.PathClear(from, to)
}

func (p *QueenPiece) Clone() boardgame.Occupant {
	cp := *p
	return &cp
}

// KingPiece moves one square in any direction. Castling is not supported.
type KingPiece struct{ base }

func (p *KingPiece) CanMove(g *boardgame.Grid, to boardgame.Coord) bool {
	from, ok := p.canLand(g, to)
	if !ok {
		return false
	}
	d, err := boardgame.LinearDistance(from, to)
	return err == nil && d == 1 && boardgame.ManhattanDistance(from, to) <= 2
}

func (p *KingPiece) Clone() boardgame.Occupant {
	cp := *p
	return &cp
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package chess

import (
	"fmt"

	"github.com/mway1/boardgame"
)

// MovePiece moves p to the square on g on behalf of actor, capturing any
// enemy piece standing there. The piece's own rule is checked first; the
// self capture and bounds checks repeat what the rule already covers.
func MovePiece(g *boardgame.Grid, p Piece, to boardgame.Coord, actor boardgame.PlayerID) error {
	if !p.CanMove(g, to) {
		return fmt.Errorf("%w: %s to %s", boardgame.ErrIllegalMove, p, SquareName(to))
	}
	for _, o := range g.OccupantsOverlapping(to, p.Size()) {
		if o != boardgame.Occupant(p) && o.Owner() == actor {
			return fmt.Errorf("%w: %s on %s", boardgame.ErrSelfCapture, o.Glyph(), SquareName(to))
		}
	}
	if !g.InBounds(to) {
		return fmt.Errorf("%w: %s", boardgame.ErrOutOfBounds, to)
	}
	for _, o := range g.OccupantsOverlapping(to, p.Size()) {
		if o != boardgame.Occupant(p) {
			g.RemoveOccupant(o)
		}
	}
	return g.Relocate(p, to)
}

// A Move is the action of moving the piece on From to To.
type Move struct {
	From boardgame.Coord
	To   boardgame.Coord
}

// NewMoveTurn returns a one-action turn for player moving from one square to
// another.
func NewMoveTurn(player boardgame.PlayerID, from, to boardgame.Coord) boardgame.Turn {
	return boardgame.NewTurn(player, Move{From: from, To: to})
}

// Perform implements boardgame.Action. The piece on From must belong to actor.
func (m Move) Perform(s *boardgame.State, actor boardgame.PlayerID) error {
	g := s.Grid()
	o, err := g.OccupantAt(m.From)
	if err != nil {
		return err
	}
	if o == nil {
		return fmt.Errorf("%w: %s", boardgame.ErrNoOccupant, SquareName(m.From))
	}
	p, ok := o.(Piece)
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrNotAPiece, o.Glyph(), SquareName(m.From))
	}
	if p.Owner() != actor {
		return fmt.Errorf("%w: %s moved by %s", boardgame.ErrNotOwner, p, actor)
	}
	return MovePiece(g, p, m.To, actor)
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return SquareName(m.From) + SquareName(m.To)
}

package chess

import (
	"fmt"

	"github.com/mway1/boardgame"
	"golang.org/x/exp/slices"
)

// Pieces returns the chess pieces on g owned by owner, in placement order.
func Pieces(g *boardgame.Grid, owner boardgame.PlayerID) []Piece {
	var pieces []Piece
	for _, o := range g.Occupants() {
		if p, ok := o.(Piece); ok && p.Owner() == owner {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Kings returns every king on g.
func Kings(g *boardgame.Grid) []Piece {
	var kings []Piece
	for _, o := range g.Occupants() {
		if p, ok := o.(Piece); ok && p.Kind() == King {
			kings = append(kings, p)
		}
	}
	return kings
}

// KingOf returns owner's king.
func KingOf(g *boardgame.Grid, owner boardgame.PlayerID) (Piece, error) {
	kings := Kings(g)
	i := slices.IndexFunc(kings, func(k Piece) bool { return k.Owner() == owner })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoKing, owner)
	}
	return kings[i], nil
}

// Attackers returns the pieces of every other player whose movement rule
// currently permits them to move onto owner's king.
func Attackers(g *boardgame.Grid, owner boardgame.PlayerID) ([]Piece, error) {
	king, err := KingOf(g, owner)
	if err != nil {
		return nil, err
	}
	target, _ := king.Position()
	var attackers []Piece
	for _, o := range g.Occupants() {
		p, ok := o.(Piece)
		if !ok || p.Owner() == owner {
			continue
		}
		if p.CanMove(g, target) {
			attackers = append(attackers, p)
		}
	}
	return attackers, nil
}

// InCheck reports whether any enemy piece could legally move onto owner's
// king in s as it stands.
func InCheck(s *boardgame.State, owner boardgame.PlayerID) (bool, error) {
	return inCheck(s.Grid(), owner)
}

func inCheck(g *boardgame.Grid, owner boardgame.PlayerID) (bool, error) {
	king, err := KingOf(g, owner)
	if err != nil {
		return false, err
	}
	target, _ := king.Position()
	return slices.ContainsFunc(g.Occupants(), func(o boardgame.Occupant) bool {
		p, ok := o.(Piece)
		return ok && p.Owner() != owner && p.CanMove(g, target)
	}), nil
}

// Checkmated reports whether owner is in check with no move escaping it.
//
// Check is ignored in hypothetical states, so the search never recurses, and
// when owner is not the player to move, since that position can only be
// reached by a move that should not have been allowed.
func Checkmated(s *boardgame.State, owner boardgame.PlayerID) (bool, error) {
	check, err := InCheck(s, owner)
	if err != nil || !check {
		return false, err
	}
	if s.Hypothetical() || s.CurrentID() != owner {
		return false, nil
	}
	escape, err := firstEscape(s, owner)
	if err != nil {
		return false, err
	}
	return escape == nil, nil
}

// WinConditionMet reports whether the owner of any king on the board is
// checkmated. Stalemate is not detected.
func WinConditionMet(s *boardgame.State) (bool, error) {
	for _, k := range Kings(s.Grid()) {
		mated, err := Checkmated(s, k.Owner())
		if err != nil {
			return false, err
		}
		if mated {
			return true, nil
		}
	}
	return false, nil
}

// Rules plugs checkmate detection into boardgame.State.
type Rules struct{}

// WinConditionMet implements boardgame.Rules.
func (Rules) WinConditionMet(s *boardgame.State) (bool, error) {
	return WinConditionMet(s)
}

// LegalMoves returns every move by owner which the piece rules permit and
// after which owner is not in check. owner must be the player to move.
func LegalMoves(s *boardgame.State, owner boardgame.PlayerID) ([]Move, error) {
	if owner != s.CurrentID() {
		return nil, fmt.Errorf("%w: %s is not to move", boardgame.ErrInvalidTurn, owner)
	}
	var moves []Move
	err := searchMoves(s, owner, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves, err
}

// firstEscape returns the first move found that leaves owner out of check,
// or nil when there is none.
func firstEscape(s *boardgame.State, owner boardgame.PlayerID) (*Move, error) {
	var escape *Move
	err := searchMoves(s, owner, func(m Move) bool {
		escape = &m
		return false
	})
	return escape, err
}

// searchMoves tries every owned piece against every square. Each candidate
// the piece rule permits is played on a hypothetical copy of s and kept when
// owner is not in check afterwards. yield returns false to stop.
func searchMoves(s *boardgame.State, owner boardgame.PlayerID, yield func(Move) bool) error {
	g := s.Grid()
	squares := g.Squares()
	for _, p := range Pieces(g, owner) {
		from, ok := p.Position()
		if !ok {
			continue
		}
		for _, to := range squares {
			if !p.CanMove(g, to) {
				continue
			}
			next, err := s.After(NewMoveTurn(owner, from, to))
			if err != nil {
				return err
			}
			check, err := inCheck(next.Grid(), owner)
			if err != nil {
				return err
			}
			if !check && !yield(Move{From: from, To: to}) {
				return nil
			}
		}
	}
	return nil
}

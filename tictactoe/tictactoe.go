// Package tictactoe is noughts and crosses on the boardgame engine.
package tictactoe

import (
	"errors"
	"fmt"

	"github.com/mway1/boardgame"
)

// The two marks, which double as player ids.
const (
	X boardgame.PlayerID = "X"
	O boardgame.PlayerID = "O"
)

// Size is the side length of the board.
const Size = 3

var (
	// ErrSquareTaken is returned when placing on an occupied square.
	ErrSquareTaken = errors.New("tictactoe: square taken")
	// ErrWrongMark is returned when a player other than X or O places a mark.
	ErrWrongMark = errors.New("tictactoe: player has no mark")
)

// Place is the action of putting the acting player's mark on At.
type Place struct {
	At boardgame.Coord
}

// NewPlaceTurn returns a one-action turn placing player's mark at (col, row).
func NewPlaceTurn(player boardgame.PlayerID, col, row int) boardgame.Turn {
	return boardgame.NewTurn(player, Place{At: boardgame.C(col, row)})
}

// Perform implements boardgame.Action.
func (p Place) Perform(s *boardgame.State, actor boardgame.PlayerID) error {
	if actor != X && actor != O {
		return fmt.Errorf("%w: %q", ErrWrongMark, actor)
	}
	g := s.Grid()
	if !g.InBounds(p.At) {
		return fmt.Errorf("%w: %s", boardgame.ErrOutOfBounds, p.At)
	}
	if len(g.OccupantsOverlapping(p.At, boardgame.Unit)) > 0 {
		return fmt.Errorf("%w: %s", ErrSquareTaken, p.At)
	}
	mark := boardgame.NewToken(string(actor), actor, boardgame.Unit)
	return g.AddOccupant(&mark, p.At)
}

// lines lists every row, column and both diagonals.
func lines() [][Size]boardgame.Coord {
	var ls [][Size]boardgame.Coord
	for i := 0; i < Size; i++ {
		var row, col [Size]boardgame.Coord
		for j := 0; j < Size; j++ {
			row[j] = boardgame.C(j, i)
			col[j] = boardgame.C(i, j)
		}
		ls = append(ls, row, col)
	}
	var diag, anti [Size]boardgame.Coord
	for j := 0; j < Size; j++ {
		diag[j] = boardgame.C(j, j)
		anti[j] = boardgame.C(j, Size-1-j)
	}
	return append(ls, diag, anti)
}

// Winner returns the mark holding a complete line, if any.
func Winner(g *boardgame.Grid) (boardgame.PlayerID, bool) {
	for _, line := range lines() {
		owner, ok := lineOwner(g, line)
		if ok {
			return owner, true
		}
	}
	return boardgame.NoPlayer, false
}

func lineOwner(g *boardgame.Grid, line [Size]boardgame.Coord) (boardgame.PlayerID, bool) {
	first := g.MustOccupantAt(line[0])
	if first == nil {
		return boardgame.NoPlayer, false
	}
	for _, c := range line[1:] {
		o := g.MustOccupantAt(c)
		if o == nil || o.Owner() != first.Owner() {
			return boardgame.NoPlayer, false
		}
	}
	return first.Owner(), true
}

// Full reports whether every square holds a mark.
func Full(g *boardgame.Grid) bool {
	return len(g.Occupants()) >= g.Width()*g.Height()
}

// Rules ends the game on a completed line or a full board.
type Rules struct{}

// WinConditionMet implements boardgame.Rules.
func (Rules) WinConditionMet(s *boardgame.State) (bool, error) {
	if _, ok := Winner(s.Grid()); ok {
		return true, nil
	}
	return Full(s.Grid()), nil
}

// NewGame returns an active game with X to move.
func NewGame(options ...func(*boardgame.State)) (*boardgame.State, error) {
	grid, err := boardgame.NewGrid(Size, Size)
	if err != nil {
		return nil, err
	}
	players := []*boardgame.Player{
		boardgame.NewPlayer(X, "X"),
		boardgame.NewPlayer(O, "O"),
	}
	s, err := boardgame.NewState(grid, players, Rules{}, options...)
	if err != nil {
		return nil, err
	}
	s.Start()
	return s, nil
}

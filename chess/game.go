/*
Package chess specializes the boardgame engine into chess: six piece kinds
with their movement rules, a move action, and check and checkmate detection
by hypothetical look-ahead.

Castling, en passant, promotion and draw rules are not implemented, and a
move that leaves the mover's own king in check is not rejected. Use
LegalMoves to list only the moves that keep the king safe.

Example usage:

	game, _ := chess.NewGame()

	turn := chess.NewMoveTurn(chess.White, chess.MustSquare("e2"), chess.MustSquare("e4"))
	if err := turn.Perform(game); err != nil {
		log.Fatal(err)
	}

	if outcome, method := chess.Result(game); outcome != chess.NoOutcome {
		fmt.Printf("Game ended: %s by %s\n", outcome, method)
	}
*/
package chess

import (
	"fmt"

	"github.com/mway1/boardgame"
	"golang.org/x/exp/slices"
)

// A Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that an outcome hasn't occurred.
	NoMethod Method = iota
	// Checkmate indicates that the game was won by checkmate.
	Checkmate
)

// String implements the fmt.Stringer interface.
func (m Method) String() string {
	switch m {
	case NoMethod:
		return "none"
	case Checkmate:
		return "checkmate"
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Placement pairs a piece with the square it starts on.
type Placement struct {
	Piece  Piece
	Square boardgame.Coord
}

// Place returns a placement of a new piece on the named square.
func Place(kind Kind, owner boardgame.PlayerID, square string) Placement {
	return Placement{Piece: NewPiece(kind, owner), Square: MustSquare(square)}
}

// StartingPlacements returns the standard initial layout.
func StartingPlacements() []Placement {
	placements := make([]Placement, 0, 4*Size)
	for col, kind := range backRank {
		placements = append(placements,
			Placement{Piece: NewPiece(kind, Black), Square: boardgame.C(col, 0)},
			Placement{Piece: NewPiece(Pawn, Black), Square: boardgame.C(col, 1)},
			Placement{Piece: NewPiece(Pawn, White), Square: boardgame.C(col, Size-2)},
			Placement{Piece: NewPiece(kind, White), Square: boardgame.C(col, Size-1)},
		)
	}
	return placements
}

// NewGame returns an active game in the standard starting position with
// White to move. Options are applied to the underlying state.
func NewGame(options ...func(*boardgame.State)) (*boardgame.State, error) {
	return NewGameWith(StartingPlacements(), options...)
}

// NewGameWith returns an active game with the given pieces on an otherwise
// empty board.
//
// Example:
//
//	game, err := chess.NewGameWith([]chess.Placement{
//		chess.Place(chess.King, chess.White, "e1"),
//		chess.Place(chess.King, chess.Black, "e8"),
//	}, boardgame.WithCurrentPlayer(chess.Black))
func NewGameWith(placements []Placement, options ...func(*boardgame.State)) (*boardgame.State, error) {
	grid, err := boardgame.NewGrid(Size, Size)
	if err != nil {
		return nil, err
	}
	for _, pl := range placements {
		if err := grid.AddOccupant(pl.Piece, pl.Square); err != nil {
			return nil, err
		}
	}
	players := []*boardgame.Player{
		boardgame.NewPlayer(White, "white"),
		boardgame.NewPlayer(Black, "black"),
	}
	s, err := boardgame.NewState(grid, players, Rules{}, options...)
	if err != nil {
		return nil, err
	}
	s.Start()
	return s, nil
}

// Result returns the outcome of s. A complete game was ended by checkmate of
// the player left to move.
func Result(s *boardgame.State) (Outcome, Method) {
	if s.Phase() != boardgame.Complete {
		return NoOutcome, NoMethod
	}
	check, err := InCheck(s, s.CurrentID())
	if err != nil || !check {
		return NoOutcome, NoMethod
	}
	if s.CurrentID() == White {
		return BlackWon, Checkmate
	}
	return WhiteWon, Checkmate
}

// FindMover returns the single piece of kind owned by owner whose rule
// permits a move to the square. Notation front ends use it to turn "Nf3"
// into a from square. ErrNoMover or ErrAmbiguousMover is returned when zero
// or several pieces qualify.
func FindMover(s *boardgame.State, kind Kind, owner boardgame.PlayerID, to boardgame.Coord) (Piece, error) {
	g := s.Grid()
	found := slices.DeleteFunc(Pieces(g, owner), func(p Piece) bool {
		return p.Kind() != kind || !p.CanMove(g, to)
	})
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s %s to %s", ErrNoMover, owner, kind, SquareName(to))
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("%w: %d %s %ss can reach %s", ErrAmbiguousMover, len(found), owner, kind, SquareName(to))
}

package chess

import (
	"testing"

	"github.com/mway1/boardgame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roamer is a piece whose rule permits every square, so MovePiece's own
// checks can be reached.
type roamer struct{ base }

func (r *roamer) CanMove(*boardgame.Grid, boardgame.Coord) bool { return true }

func (r *roamer) Clone() boardgame.Occupant {
	cp := *r
	return &cp
}

func newRoamer(owner boardgame.PlayerID) *roamer {
	return &roamer{base: base{Token: boardgame.NewToken("*", owner, boardgame.Unit), kind: Queen}}
}

func TestMovePieceCaptures(t *testing.T) {
	g := board(t, Place(Rook, White, "a1"), Place(Knight, Black, "a5"))
	rook := pieceAt(t, g, "a1")
	knight := pieceAt(t, g, "a5")

	require.NoError(t, MovePiece(g, rook, MustSquare("a5"), White))
	assert.Same(t, rook, pieceAt(t, g, "a5"))
	assert.Nil(t, g.MustOccupantAt(MustSquare("a1")))
	assert.False(t, g.Contains(knight))
	assert.Len(t, g.Occupants(), 1)
}

func TestMovePieceErrors(t *testing.T) {
	g := board(t, Place(Rook, White, "a1"), Place(Pawn, White, "a3"))
	rook := pieceAt(t, g, "a1")

	err := MovePiece(g, rook, MustSquare("b2"), White)
	assert.ErrorIs(t, err, boardgame.ErrIllegalMove)
	err = MovePiece(g, rook, MustSquare("a4"), White)
	assert.ErrorIs(t, err, boardgame.ErrIllegalMove)
	err = MovePiece(g, rook, boardgame.C(0, 8), White)
	assert.ErrorIs(t, err, boardgame.ErrIllegalMove)

	r := newRoamer(White)
	require.NoError(t, g.AddOccupant(r, MustSquare("h8")))
	err = MovePiece(g, r, MustSquare("a3"), White)
	assert.ErrorIs(t, err, boardgame.ErrSelfCapture)
	err = MovePiece(g, r, boardgame.C(9, 9), White)
	assert.ErrorIs(t, err, boardgame.ErrOutOfBounds)

	pos, _ := r.Position()
	assert.Equal(t, MustSquare("h8"), pos)
}

func TestMoveAction(t *testing.T) {
	game, err := NewGame()
	require.NoError(t, err)

	err = NewMoveTurn(White, MustSquare("e3"), MustSquare("e4")).Perform(game)
	assert.ErrorIs(t, err, boardgame.ErrNoOccupant)

	err = NewMoveTurn(White, MustSquare("e7"), MustSquare("e5")).Perform(game)
	assert.ErrorIs(t, err, boardgame.ErrNotOwner)

	err = NewMoveTurn(White, MustSquare("e2"), MustSquare("e5")).Perform(game)
	assert.ErrorIs(t, err, boardgame.ErrIllegalMove)

	err = NewMoveTurn(Black, MustSquare("e7"), MustSquare("e5")).Perform(game)
	assert.ErrorIs(t, err, boardgame.ErrInvalidTurn)

	assert.Empty(t, game.History())
	assert.Equal(t, White, game.CurrentID())
}

func TestMoveActionRejectsForeignOccupant(t *testing.T) {
	game, err := NewGameWith([]Placement{Place(King, White, "e1"), Place(King, Black, "e8")})
	require.NoError(t, err)
	stone := boardgame.NewToken("o", White, boardgame.Unit)
	require.NoError(t, game.Grid().AddOccupant(&stone, MustSquare("d4")))

	err = NewMoveTurn(White, MustSquare("d4"), MustSquare("d5")).Perform(game)
	assert.ErrorIs(t, err, ErrNotAPiece)
}

// Every move the start position allows succeeds, every other one fails, and
// a successful move leaves the piece on the destination only.
func TestMoveSucceedsIffRulePermits(t *testing.T) {
	game, err := NewGame()
	require.NoError(t, err)
	g := game.Grid()

	for _, p := range Pieces(g, White) {
		from, _ := p.Position()
		for _, to := range g.Squares() {
			want := p.CanMove(g, to)
			trial := game.Clone()
			err := NewMoveTurn(White, from, to).Perform(trial)
			if !want {
				assert.Error(t, err, "%s to %s", p, SquareName(to))
				continue
			}
			require.NoError(t, err, "%s to %s", p, SquareName(to))
			moved := trial.Grid().MustOccupantAt(to)
			require.NotNil(t, moved)
			assert.Equal(t, p.Kind(), moved.(Piece).Kind())
			assert.Nil(t, trial.Grid().MustOccupantAt(from))
		}
	}
	assert.Empty(t, game.History())
	assert.Len(t, g.Occupants(), 32)
}

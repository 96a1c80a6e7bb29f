package chess

import (
	"testing"

	"github.com/mway1/boardgame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPosition(t *testing.T, toMove boardgame.PlayerID, placements ...Placement) *boardgame.State {
	t.Helper()
	s, err := NewGameWith(placements, boardgame.WithCurrentPlayer(toMove))
	require.NoError(t, err)
	return s
}

// cornered is Black's king on a8 held by White rooks on h8 and h7.
func cornered() []Placement {
	return []Placement{
		Place(King, Black, "a8"),
		Place(Rook, White, "h8"),
		Place(Rook, White, "h7"),
		Place(King, White, "h1"),
	}
}

func TestInCheckAgreesWithEnumeration(t *testing.T) {
	positions := map[string][]Placement{
		"start":    StartingPlacements(),
		"cornered": cornered(),
		"pawn attack": {
			Place(King, White, "e4"),
			Place(Pawn, Black, "d5"),
			Place(King, Black, "e8"),
		},
		"pawn ahead does not attack": {
			Place(King, White, "e4"),
			Place(Pawn, Black, "e5"),
			Place(King, Black, "e8"),
		},
		"knight": {
			Place(King, White, "e1"),
			Place(Knight, Black, "f3"),
			Place(King, Black, "e8"),
		},
		"blocked bishop": {
			Place(King, White, "e1"),
			Place(Bishop, Black, "a5"),
			Place(Pawn, White, "d2"),
			Place(King, Black, "h8"),
		},
	}
	for name, placements := range positions {
		t.Run(name, func(t *testing.T) {
			s := newPosition(t, White, placements...)
			g := s.Grid()
			for _, owner := range []boardgame.PlayerID{White, Black} {
				king, err := KingOf(g, owner)
				require.NoError(t, err)
				target, _ := king.Position()
				want := false
				for _, p := range Pieces(g, Opponent(owner)) {
					if p.CanMove(g, target) {
						want = true
					}
				}
				got, err := InCheck(s, owner)
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s", owner)

				attackers, err := Attackers(g, owner)
				require.NoError(t, err)
				assert.Equal(t, want, len(attackers) > 0)
			}
		})
	}
}

func TestInCheckPositions(t *testing.T) {
	s := newPosition(t, White, Place(King, White, "e4"), Place(Pawn, Black, "d5"), Place(King, Black, "e8"))
	check, err := InCheck(s, White)
	require.NoError(t, err)
	assert.True(t, check)

	s = newPosition(t, White, Place(King, White, "e1"), Place(Bishop, Black, "a5"), Place(Pawn, White, "d2"), Place(King, Black, "h8"))
	check, err = InCheck(s, White)
	require.NoError(t, err)
	assert.False(t, check)
}

func TestInCheckWithoutKing(t *testing.T) {
	s := newPosition(t, White, Place(King, White, "e1"))
	_, err := InCheck(s, Black)
	assert.ErrorIs(t, err, ErrNoKing)
}

func TestCheckmate(t *testing.T) {
	s := newPosition(t, Black, cornered()...)

	mated, err := Checkmated(s, Black)
	require.NoError(t, err)
	assert.True(t, mated)

	mated, err = Checkmated(s, White)
	require.NoError(t, err)
	assert.False(t, mated)

	met, err := WinConditionMet(s)
	require.NoError(t, err)
	assert.True(t, met)
}

func TestCheckmateByMove(t *testing.T) {
	s := newPosition(t, White,
		Place(King, Black, "a8"),
		Place(Rook, White, "h7"),
		Place(Rook, White, "g1"),
		Place(King, White, "e1"),
	)
	require.NoError(t, NewMoveTurn(White, MustSquare("g1"), MustSquare("g8")).Perform(s))

	assert.Equal(t, boardgame.Complete, s.Phase())
	outcome, method := Result(s)
	assert.Equal(t, WhiteWon, outcome)
	assert.Equal(t, Checkmate, method)

	err := NewMoveTurn(Black, MustSquare("a8"), MustSquare("b8")).Perform(s)
	assert.ErrorIs(t, err, boardgame.ErrGameOver)

	met, err := WinConditionMet(s)
	require.NoError(t, err)
	assert.True(t, met)
}

func TestPredicatesOnCompleteGame(t *testing.T) {
	s := newPosition(t, White,
		Place(King, Black, "a8"),
		Place(Rook, White, "h7"),
		Place(Rook, White, "g1"),
		Place(King, White, "e1"),
	)
	require.NoError(t, NewMoveTurn(White, MustSquare("g1"), MustSquare("g8")).Perform(s))
	require.Equal(t, boardgame.Complete, s.Phase())

	mated, err := Checkmated(s, Black)
	require.NoError(t, err)
	assert.True(t, mated)

	mated, err = Checkmated(s, White)
	require.NoError(t, err)
	assert.False(t, mated)

	moves, err := LegalMoves(s, Black)
	require.NoError(t, err)
	assert.Empty(t, moves)

	_, err = LegalMoves(s, White)
	assert.ErrorIs(t, err, boardgame.ErrInvalidTurn)

	done, err := s.Done()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Len(t, s.History(), 1)
}

func TestCheckEscapes(t *testing.T) {
	tests := []struct {
		name       string
		placements []Placement
		escape     string
	}{
		{
			name: "king captures unprotected checker",
			placements: []Placement{
				Place(King, Black, "a8"),
				Place(Rook, White, "b8"),
				Place(King, White, "h1"),
			},
			escape: "a8b8",
		},
		{
			name: "rook interposes",
			placements: append(cornered(),
				Place(Rook, Black, "d5"),
			),
			escape: "d5d8",
		},
		{
			name: "bishop captures checker",
			placements: append(cornered(),
				Place(Bishop, Black, "a1"),
			),
			escape: "a1h8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPosition(t, Black, tt.placements...)
			check, err := InCheck(s, Black)
			require.NoError(t, err)
			require.True(t, check)

			mated, err := Checkmated(s, Black)
			require.NoError(t, err)
			assert.False(t, mated)

			moves, err := LegalMoves(s, Black)
			require.NoError(t, err)
			names := make([]string, len(moves))
			for i, m := range moves {
				names[i] = m.String()
			}
			assert.Contains(t, names, tt.escape)
		})
	}
}

func TestCheckmateIgnoredWhenCheckedPlayerIsNotToMove(t *testing.T) {
	s := newPosition(t, White, cornered()...)
	check, err := InCheck(s, Black)
	require.NoError(t, err)
	require.True(t, check)

	mated, err := Checkmated(s, Black)
	require.NoError(t, err)
	assert.False(t, mated)
}

func TestCheckmateIgnoredInHypotheticalState(t *testing.T) {
	s := newPosition(t, White,
		Place(King, Black, "a8"),
		Place(Rook, White, "h7"),
		Place(Rook, White, "g1"),
		Place(King, White, "e1"),
	)
	next, err := s.After(NewMoveTurn(White, MustSquare("g1"), MustSquare("g8")))
	require.NoError(t, err)
	require.True(t, next.Hypothetical())
	assert.Equal(t, Black, next.CurrentID())
	assert.NotEqual(t, boardgame.Complete, next.Phase())

	check, err := InCheck(next, Black)
	require.NoError(t, err)
	assert.True(t, check)
	mated, err := Checkmated(next, Black)
	require.NoError(t, err)
	assert.False(t, mated)

	// The real game is untouched.
	assert.Equal(t, White, s.CurrentID())
	assert.Empty(t, s.History())
	assert.NotNil(t, s.Grid().MustOccupantAt(MustSquare("g1")))
}

// Stalemate is not detected: the king is not in check, so the game goes on
// even though Black has no move.
func TestStalemateIsNotDetected(t *testing.T) {
	s := newPosition(t, Black,
		Place(King, Black, "a8"),
		Place(Queen, White, "c7"),
		Place(King, White, "h1"),
	)
	check, err := InCheck(s, Black)
	require.NoError(t, err)
	assert.False(t, check)

	moves, err := LegalMoves(s, Black)
	require.NoError(t, err)
	assert.Empty(t, moves)

	met, err := WinConditionMet(s)
	require.NoError(t, err)
	assert.False(t, met)

	outcome, method := Result(s)
	assert.Equal(t, NoOutcome, outcome)
	assert.Equal(t, NoMethod, method)
}

func TestLegalMovesExcludesSelfCheck(t *testing.T) {
	s := newPosition(t, White,
		Place(King, White, "e1"),
		Place(Rook, White, "e2"),
		Place(Rook, Black, "e8"),
		Place(King, Black, "a8"),
	)
	moves, err := LegalMoves(s, White)
	require.NoError(t, err)
	for _, m := range moves {
		if m.From == MustSquare("e2") {
			assert.Equal(t, 4, m.To.Col, "pinned rook left the file: %s", m)
		}
	}
	assert.NotEmpty(t, moves)

	_, err = LegalMoves(s, Black)
	assert.ErrorIs(t, err, boardgame.ErrInvalidTurn)
}

func TestInitialNumOfLegalMoves(t *testing.T) {
	s, err := NewGame()
	require.NoError(t, err)
	moves, err := LegalMoves(s, White)
	require.NoError(t, err)
	assert.Len(t, moves, 20)
}

func BenchmarkCheckmateSearch(b *testing.B) {
	s, err := NewGameWith(cornered(), boardgame.WithCurrentPlayer(Black))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Checkmated(s, Black); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLegalMovesStart(b *testing.B) {
	s, err := NewGame()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := LegalMoves(s, White); err != nil {
			b.Fatal(err)
		}
	}
}

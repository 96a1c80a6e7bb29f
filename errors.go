package boardgame

import "errors"

var (
	// ErrOutOfBounds is returned when a footprint or coordinate leaves the grid.
	ErrOutOfBounds = errors.New("boardgame: out of bounds")
	// ErrIllegalMove is returned when a movement rule rejects a destination.
	ErrIllegalMove = errors.New("boardgame: illegal move")
	// ErrSelfCapture is returned when a destination holds an occupant of the mover.
	ErrSelfCapture = errors.New("boardgame: cannot capture own occupant")
	// ErrInvalidTurn is returned when a turn is submitted by a player whose turn it is not.
	ErrInvalidTurn = errors.New("boardgame: invalid turn")
	// ErrNotAStraightLine is returned by path queries on unaligned points.
	ErrNotAStraightLine = errors.New("boardgame: not a straight line")
	// ErrInconsistentBoard means more than one occupant covers a single square.
	// It is never a game condition.
	ErrInconsistentBoard = errors.New("boardgame: inconsistent board")
	// ErrGameOver is returned when a turn is submitted to a complete game.
	ErrGameOver = errors.New("boardgame: game is complete")
	// ErrInvalidGrid is returned for non-positive grid dimensions.
	ErrInvalidGrid = errors.New("boardgame: invalid grid dimensions")
	// ErrNoPlayers is returned when a state is built with an empty roster.
	ErrNoPlayers = errors.New("boardgame: no players")
	// ErrUnknownPlayer is returned when a player id is not in the roster.
	ErrUnknownPlayer = errors.New("boardgame: unknown player")
	// ErrDuplicatePlayer is returned when two roster entries share an id.
	ErrDuplicatePlayer = errors.New("boardgame: duplicate player")
	// ErrNoOccupant is returned when an action expects an occupant on an empty square.
	ErrNoOccupant = errors.New("boardgame: no occupant")
	// ErrNotOwner is returned when a player acts on another player's occupant.
	ErrNotOwner = errors.New("boardgame: occupant belongs to another player")
)

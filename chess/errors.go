package chess

import "errors"

var (
	// ErrNoKing is returned when a player has no king on the board.
	ErrNoKing = errors.New("chess: no king")
	// ErrNoMover is returned when no piece of the requested kind can reach a square.
	ErrNoMover = errors.New("chess: no piece can make that move")
	// ErrAmbiguousMover is returned when more than one piece of the requested
	// kind can reach a square.
	ErrAmbiguousMover = errors.New("chess: move is ambiguous")
	// ErrInvalidSquare is returned for malformed square names.
	ErrInvalidSquare = errors.New("chess: invalid square")
	// ErrNotAPiece is returned when an occupant on a chess board is not a chess piece.
	ErrNotAPiece = errors.New("chess: occupant is not a chess piece")
	// ErrInvalidMoveText is returned for coordinate moves that are not of the form "e2e4".
	ErrInvalidMoveText = errors.New("chess: invalid move text")
)

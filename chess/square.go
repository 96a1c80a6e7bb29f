package chess

import (
	"fmt"
	"strings"

	"github.com/mway1/boardgame"
)

// Size is the number of files and ranks on a chess board.
const Size = 8

// ParseSquare converts an algebraic square name such as "e4" to a grid
// coordinate. File a is column 0; rank 8 is row 0, so White's back rank is
// row 7.
func ParseSquare(name string) (boardgame.Coord, error) {
	if len(name) != 2 {
		return boardgame.Coord{}, fmt.Errorf("%w: %q", ErrInvalidSquare, name)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return boardgame.Coord{}, fmt.Errorf("%w: %q", ErrInvalidSquare, name)
	}
	return boardgame.Coord{Col: int(file - 'a'), Row: Size - int(rank-'0')}, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(name string) boardgame.Coord {
	c, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return c
}

// SquareName is the inverse of ParseSquare. Coordinates off the board are
// rendered with Coord.String.
func SquareName(c boardgame.Coord) string {
	if c.Col < 0 || c.Col >= Size || c.Row < 0 || c.Row >= Size {
		return c.String()
	}
	return string(rune('a'+c.Col)) + string(rune('0'+Size-c.Row))
}

// ParseMove parses coordinate move text such as "e2e4" or "e2-e4".
func ParseMove(text string) (Move, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMoveText, text)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMoveText, text, err)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMoveText, text, err)
	}
	return Move{From: from, To: to}, nil
}

package chess

import (
	"fmt"
	"strings"

	"github.com/mway1/boardgame"
)

// The two chess players.
const (
	White boardgame.PlayerID = "white"
	Black boardgame.PlayerID = "black"
)

// Opponent returns the other chess player.
func Opponent(owner boardgame.PlayerID) boardgame.PlayerID {
	if owner == White {
		return Black
	}
	return White
}

// A Kind is the type of a chess piece.
type Kind uint8

const (
	// NoKind represents an unknown piece type.
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds returns every piece kind.
func Kinds() []Kind {
	return []Kind{Pawn, Knight, Bishop, Rook, Queen, King}
}

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Letter is the upper case algebraic letter of the kind.
func (k Kind) Letter() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return "?"
}

// A Piece is a chess occupant with its own movement rule.
type Piece interface {
	boardgame.Occupant
	Kind() Kind
	// CanMove reports whether the piece may move to the square on g as the
	// board stands. It does not consider whether the move leaves the owner's
	// king in check.
	CanMove(g *boardgame.Grid, to boardgame.Coord) bool
}

// NewPiece returns an unplaced piece of the given kind. White's glyphs are
// upper case and Black's lower case.
func NewPiece(kind Kind, owner boardgame.PlayerID) Piece {
	glyph := kind.Letter()
	if owner != White {
		glyph = strings.ToLower(glyph)
	}
	b := base{Token: boardgame.NewToken(glyph, owner, boardgame.Unit), kind: kind}
	switch kind {
	case Pawn:
		p := &PawnPiece{base: b, forward: 1, startRow: 1}
		if owner == White {
			p.forward, p.startRow = -1, Size-2
		}
		return p
	case Knight:
		return &KnightPiece{base: b}
	case Bishop:
		return &BishopPiece{base: b}
	case Rook:
		return &RookPiece{base: b}
	case Queen:
		return &QueenPiece{base: b}
	case King:
		return &KingPiece{base: b}
	}
	panic(fmt.Sprintf("chess: unknown piece kind %d", kind))
}

// base carries what every piece shares: the token and the capture rule.
type base struct {
	boardgame.Token
	kind Kind
}

func (b *base) Kind() Kind { return b.kind }

// String implements the fmt.Stringer interface.
func (b *base) String() string {
	pos, ok := b.Position()
	if !ok {
		return fmt.Sprintf("%s %s", b.Owner(), b.kind)
	}
	return fmt.Sprintf("%s %s on %s", b.Owner(), b.kind, SquareName(pos))
}

// canLand is the rule every piece applies before its own geometry: the
// destination is on the board, differs from the origin and does not hold a
// piece of the same owner.
func (b *base) canLand(g *boardgame.Grid, to boardgame.Coord) (boardgame.Coord, bool) {
	from, ok := b.Position()
	if !ok || from == to || !g.InBounds(to) {
		return from, false
	}
	if target := g.MustOccupantAt(to); target != nil && target.Owner() == b.Owner() {
		return from, false
	}
	return from, true
}

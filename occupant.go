package boardgame

// An Occupant is anything placed on a Grid: a piece, a marker, a tile.
// Implementations are expected to embed Token and override Clone so that a
// cloned grid receives an independent copy of the concrete type.
type Occupant interface {
	// Glyph is the short display string for the occupant.
	Glyph() string
	// Owner is the identity of the owning player, or NoPlayer.
	Owner() PlayerID
	// Size is the footprint covered from the top-left position.
	Size() Size
	// Position returns the top-left square and false if the occupant was
	// never placed.
	Position() (Coord, bool)
	SetPosition(c Coord)
	// Clone returns a deep copy that shares no mutable state with the receiver.
	Clone() Occupant
}

// Token is the embeddable base implementation of Occupant.
type Token struct {
	glyph  string
	owner  PlayerID
	size   Size
	pos    Coord
	placed bool
}

// NewToken returns an unplaced token. A zero size defaults to Unit.
func NewToken(glyph string, owner PlayerID, size Size) Token {
	if size.W <= 0 || size.H <= 0 {
		size = Unit
	}
	return Token{glyph: glyph, owner: owner, size: size}
}

func (t *Token) Glyph() string   { return t.glyph }
func (t *Token) Owner() PlayerID { return t.owner }
func (t *Token) Size() Size      { return t.size }

func (t *Token) Position() (Coord, bool) {
	return t.pos, t.placed
}

func (t *Token) SetPosition(c Coord) {
	t.pos = c
	t.placed = true
}

// Clone implements Occupant for bare tokens.
func (t *Token) Clone() Occupant {
	cp := *t
	return &cp
}

// Covers reports whether the occupant's footprint includes c.
func Covers(o Occupant, c Coord) bool {
	pos, ok := o.Position()
	if !ok {
		return false
	}
	return boxesOverlap(pos, o.Size(), c, Unit)
}

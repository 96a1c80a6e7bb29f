package boardgame

import "fmt"

// A PlayerID is the stable identity of a player. Ownership and turn order are
// compared by id so that a cloned player is still the same player.
type PlayerID string

// NoPlayer is the owner of unowned occupants.
const NoPlayer PlayerID = ""

// A Player is a seat at the table. Left and Right point at the neighbouring
// seats of the roster that owns the player and are rebuilt whenever that
// roster is built or cloned.
type Player struct {
	ID   PlayerID
	Name string

	left  *Player
	right *Player
}

// NewPlayer returns a player with the given id and display name.
func NewPlayer(id PlayerID, name string) *Player {
	return &Player{ID: id, Name: name}
}

// Left is the next player in turn order.
func (p *Player) Left() *Player { return p.left }

// Right is the previous player in turn order.
func (p *Player) Right() *Player { return p.right }

// String implements the fmt.Stringer interface.
func (p *Player) String() string {
	return p.Name + " " + string(p.ID)
}

// Roster is the seating order of a game's players.
type Roster []*Player

// newRoster copies the given players into fresh Player values and links the
// left/right ring. The copies never alias the inputs.
func newRoster(players []*Player) (Roster, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	seen := make(map[PlayerID]bool, len(players))
	r := make(Roster, len(players))
	for i, p := range players {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = true
		r[i] = &Player{ID: p.ID, Name: p.Name}
	}
	r.link()
	return r, nil
}

func (r Roster) link() {
	n := len(r)
	for i, p := range r {
		p.left = r[(i+1)%n]
		p.right = r[(i+n-1)%n]
	}
}

// Find returns the roster entry with the given id.
func (r Roster) Find(id PlayerID) (*Player, bool) {
	for _, p := range r {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// IDs returns the player ids in seating order.
func (r Roster) IDs() []PlayerID {
	ids := make([]PlayerID, len(r))
	for i, p := range r {
		ids[i] = p.ID
	}
	return ids
}

func (r Roster) clone() Roster {
	cp := make(Roster, len(r))
	for i, p := range r {
		cp[i] = &Player{ID: p.ID, Name: p.Name}
	}
	cp.link()
	return cp
}

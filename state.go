/*
Package boardgame provides a generic engine for turn-based games played on
a grid: occupants with rectangular footprints, straight-line geometry,
players seated in a ring, and turns made of actions that are validated
against whose turn it is and applied atomically.

A State can produce hypothetical successors with After, which deep-copies
the whole game before applying a turn. Game rules use these disposable
copies to look one move ahead without touching the real game.

Example usage:

	grid, _ := boardgame.NewGrid(3, 3)
	state, _ := boardgame.NewState(grid, players, rules)

	turn := boardgame.NewTurn("X", placeAt(1, 1))
	if err := turn.Perform(state); err != nil {
		// rejected; state is unchanged
	}
	done, _ := state.Done()
*/
package boardgame

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// A Phase is the lifecycle stage of a game. Phases only move forward.
type Phase uint8

const (
	// Setup is the phase before the first turn.
	Setup Phase = iota
	// Active is the phase of normal play.
	Active
	// Complete is terminal; no further turns are accepted.
	Complete
)

// String implements the fmt.Stringer interface.
func (p Phase) String() string {
	switch p {
	case Setup:
		return "setup"
	case Active:
		return "active"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Rules decides when a game is over.
type Rules interface {
	WinConditionMet(s *State) (bool, error)
}

// RulesFunc adapts an ordinary function to the Rules interface.
type RulesFunc func(s *State) (bool, error)

// WinConditionMet calls f(s).
func (f RulesFunc) WinConditionMet(s *State) (bool, error) {
	return f(s)
}

// A State is the whole of one game: grid, players, whose turn it is, phase
// and history. It is the only owner of everything it references.
type State struct {
	id           string
	grid         *Grid
	players      Roster
	current      PlayerID
	phase        Phase
	history      []Turn
	hypothetical bool
	rules        Rules
}

// WithCurrentPlayer returns a State option that sets whose turn it is.
func WithCurrentPlayer(id PlayerID) func(*State) {
	return func(s *State) {
		s.current = id
	}
}

// WithPhase returns a State option that sets the starting phase.
func WithPhase(p Phase) func(*State) {
	return func(s *State) {
		s.phase = p
	}
}

// WithID returns a State option that overrides the generated game id.
func WithID(id string) func(*State) {
	return func(s *State) {
		s.id = id
	}
}

// NewState returns a game in the Setup phase with the first player to move.
// The grid is owned by the state from here on. Players are copied, so the
// caller's values are never linked into the ring. rules may be nil for games
// that never end on their own.
func NewState(grid *Grid, players []*Player, rules Rules, options ...func(*State)) (*State, error) {
	roster, err := newRoster(players)
	if err != nil {
		return nil, err
	}
	s := &State{
		id:      uuid.NewString(),
		grid:    grid,
		players: roster,
		current: roster[0].ID,
		phase:   Setup,
		history: make([]Turn, 0),
		rules:   rules,
	}
	for _, f := range options {
		if f != nil {
			f(s)
		}
	}
	if _, ok := s.players.Find(s.current); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, s.current)
	}
	return s, nil
}

// ID returns the game id. Clones share the id of the game they came from.
func (s *State) ID() string { return s.id }

// Grid returns the board.
func (s *State) Grid() *Grid { return s.grid }

// Players returns the roster in seating order.
func (s *State) Players() Roster { return s.players }

// Player returns the roster entry for id.
func (s *State) Player(id PlayerID) (*Player, bool) { return s.players.Find(id) }

// CurrentID returns the identity of the player to move.
func (s *State) CurrentID() PlayerID { return s.current }

// Current returns the player to move, resolved against this state's roster.
func (s *State) Current() *Player {
	p, _ := s.players.Find(s.current)
	return p
}

// Phase returns the lifecycle phase.
func (s *State) Phase() Phase { return s.phase }

// History returns the performed turns, oldest first.
func (s *State) History() []Turn { return slices.Clone(s.history) }

// Hypothetical reports whether s was produced by After.
func (s *State) Hypothetical() bool { return s.hypothetical }

// Start moves a game from Setup to Active. It has no effect in later phases.
func (s *State) Start() {
	if s.phase == Setup {
		s.phase = Active
	}
}

// Done evaluates the win condition and moves the game to Complete when it is
// met. A complete game stays complete.
func (s *State) Done() (bool, error) {
	if s.phase == Complete {
		return true, nil
	}
	if s.rules == nil {
		return false, nil
	}
	met, err := s.rules.WinConditionMet(s)
	if err != nil {
		return false, err
	}
	if met {
		s.phase = Complete
	}
	return met, nil
}

// NextPlayer passes the turn to the player on the left of the current one.
func (s *State) NextPlayer() {
	if p := s.Current(); p != nil {
		s.current = p.Left().ID
	}
}

// Clone returns a deep copy of s sharing no mutable state with it.
func (s *State) Clone() *State {
	return s.clone()
}

// After returns an independent copy of s with t already performed. The copy
// is marked hypothetical; s is not modified. Only the acting player is
// checked, so a complete game can still be explored.
func (s *State) After(t Turn) (*State, error) {
	if err := t.validatePlayer(s); err != nil {
		return nil, err
	}
	next := s.clone()
	next.hypothetical = true
	if err := t.apply(next); err != nil {
		return nil, err
	}
	if err := next.commit(t); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *State) clone() *State {
	return &State{
		id:           s.id,
		grid:         s.grid.Clone(),
		players:      s.players.clone(),
		current:      s.current,
		phase:        s.phase,
		history:      slices.Clone(s.history),
		hypothetical: s.hypothetical,
		rules:        s.rules,
	}
}

func (s *State) commit(t Turn) error {
	s.history = append(s.history, t)
	s.Start()
	s.NextPlayer()
	_, err := s.Done()
	return err
}

// String implements the fmt.Stringer interface.
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString(s.grid.String())
	names := make([]string, len(s.players))
	for i, p := range s.players {
		names[i] = p.String()
	}
	fmt.Fprintf(&sb, "players: %s\nto move: %s\nphase: %s\n", strings.Join(names, ", "), s.current, s.phase)
	return sb.String()
}

package boardgame

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// An Action is one mutation a player performs during a turn. Parameters are
// bound when the action is built, so Perform only needs the state and the
// acting player.
type Action interface {
	Perform(s *State, actor PlayerID) error
}

// ActionFunc adapts an ordinary function to the Action interface.
type ActionFunc func(s *State, actor PlayerID) error

// Perform calls f(s, actor).
func (f ActionFunc) Perform(s *State, actor PlayerID) error {
	return f(s, actor)
}

// A Turn is the complete batch of actions one player submits at once. A turn
// is immutable after NewTurn.
type Turn struct {
	player  PlayerID
	actions []Action
}

// NewTurn returns a turn for player made of the given actions in order.
func NewTurn(player PlayerID, actions ...Action) Turn {
	return Turn{player: player, actions: slices.Clone(actions)}
}

// Player returns the acting player.
func (t Turn) Player() PlayerID { return t.player }

// Actions returns a copy of the turn's actions.
func (t Turn) Actions() []Action { return slices.Clone(t.actions) }

// Validate checks that s is still in play and that it is the acting
// player's turn.
func (t Turn) Validate(s *State) error {
	if s.phase == Complete {
		return ErrGameOver
	}
	return t.validatePlayer(s)
}

func (t Turn) validatePlayer(s *State) error {
	if s.current != t.player {
		return fmt.Errorf("%w: %q acted on %q's turn", ErrInvalidTurn, t.player, s.current)
	}
	return nil
}

// Perform validates the turn and applies it to s. The actions run against a
// working copy, which is advanced to the next player and checked against the
// win condition before anything is copied back, so a failed turn leaves s
// unchanged. On success the turn is appended to the history.
func (t Turn) Perform(s *State) error {
	if err := t.Validate(s); err != nil {
		return err
	}
	work := s.clone()
	if err := t.apply(work); err != nil {
		return err
	}
	if err := work.commit(t); err != nil {
		return err
	}
	s.grid = work.grid
	s.players = work.players
	s.current = work.current
	s.phase = work.phase
	s.history = work.history
	return nil
}

func (t Turn) apply(s *State) error {
	for i, a := range t.actions {
		if err := a.Perform(s, t.player); err != nil {
			return fmt.Errorf("action %d of %d: %w", i+1, len(t.actions), err)
		}
	}
	return nil
}

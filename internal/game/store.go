package game

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/pixil98/go-clicker/internal/storage"
)

// Store is the single owner of the game state. Every change goes through
// Dispatch, which applies actions one at a time.
type Store struct {
	mu    sync.Mutex
	state State

	pub   Publisher
	saves storage.Storer[State]
	slot  string
}

func NewStore(initial State, opts ...StoreOpt) *Store {
	s := &Store{
		state: initial.Clone(),
		slot:  DefaultSlot,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Dispatch applies a and reports whether the state changed.
func (s *Store) Dispatch(ctx context.Context, a Action) (State, bool) {
	return s.dispatch(ctx, a, false)
}

// DispatchAndSave is Dispatch followed by writing the new state to storage
// when it changed. Save failures are logged; the new state stands.
func (s *Store) DispatchAndSave(ctx context.Context, a Action) (State, bool) {
	return s.dispatch(ctx, a, true)
}

func (s *Store) dispatch(ctx context.Context, a Action, save bool) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := reduce(s.state, a)
	s.state = next
	if !changed {
		return next.Clone(), false
	}

	if save && s.saves != nil {
		if err := SaveState(s.saves, s.slot, next); err != nil {
			slog.ErrorContext(ctx, "saving game state", "action", a.Name(), "error", err)
		}
	}

	s.publish(ctx, a, next)

	return next.Clone(), true
}

func (s *Store) publish(ctx context.Context, a Action, st State) {
	if s.pub == nil {
		return
	}

	data, err := json.Marshal(NewEvent(a, st))
	if err != nil {
		slog.ErrorContext(ctx, "encoding state event", "action", a.Name(), "error", err)
		return
	}

	if err := s.pub.Publish(StateSubject, data); err != nil {
		slog.DebugContext(ctx, "publishing state event", "action", a.Name(), "error", err)
	}
}

package game

import "github.com/pixil98/go-clicker/internal/storage"

type StoreOpt func(*Store)

// WithPublisher publishes an Event for every state change.
func WithPublisher(p Publisher) StoreOpt {
	return func(s *Store) {
		s.pub = p
	}
}

// WithStorage sets where DispatchAndSave writes the state.
func WithStorage(st storage.Storer[State], slot string) StoreOpt {
	return func(s *Store) {
		s.saves = st
		if slot != "" {
			s.slot = slot
		}
	}
}

package store

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Mutation describes one action after it has been applied.
// IDs sort in the order mutations were recorded.
type Mutation struct {
	ID     ulid.ULID
	Action Action
	At     time.Time
	State  State
}

// OnMutation registers fn to run after every action, on the caller's
// goroutine. The returned func removes the hook.
func (s *Store) OnMutation(fn func(Mutation)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	if s.hooks == nil {
		s.hooks = make(map[int]func(Mutation))
	}
	id := s.next
	s.next++
	s.hooks[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.hooks, id)
		s.mu.Unlock()
	}
}

// LastMutation returns the most recent mutation, if any action has run.
func (s *Store) LastMutation() (Mutation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Mutation{}, false
	}
	return *s.last, true
}

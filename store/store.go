// Package store holds the counter and color code application state.
//
// State is owned by a Store and mutated only through its actions
// (IncreaseCounter, DecreaseCounter, SetColorCode). Consumers read through
// a View, which is bound to the live state and has no way to write to it.
// Derived values such as CounterSquared are recomputed on every read.
package store

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-store/state"
)

// Initial values for a new Store.
const (
	InitialCounter   = 0
	InitialColorCode = "blue"
)

// State is a point-in-time copy of the store's fields.
type State struct {
	Counter   int    `json:"counter" yaml:"counter"`
	ColorCode string `json:"colorCode" yaml:"colorCode"`
}

// Store owns the counter and color code and gates every write.
type Store struct {
	counter   *state.Signal[int]
	colorCode *state.Signal[string]
	squared   *state.Getter[int]
	view      View
	now       func() time.Time

	mu    sync.Mutex
	hooks map[int]func(Mutation)
	next  int
	last  *Mutation
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used to stamp mutations.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates an isolated store holding the initial state.
func New(opts ...Option) *Store {
	s := &Store{
		counter:   state.NewSignal(InitialCounter),
		colorCode: state.NewSignal(InitialColorCode),
		now:       time.Now,
	}
	s.counter.SetEqualFunc(state.EqualComparable[int])
	s.colorCode.SetEqualFunc(state.EqualComparable[string])
	s.squared = state.NewGetter(func() int {
		c := s.counter.Get()
		return c * c
	}, s.counter)
	s.view = View{
		counter:   state.ReadOnly[int](s.counter),
		colorCode: state.ReadOnly[string](s.colorCode),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// State returns the read-only view of the live state.
func (s *Store) State() View {
	return s.view
}

// IncreaseCounter adds one to the counter.
func (s *Store) IncreaseCounter() {
	s.counter.Update(func(v int) int { return v + 1 })
	s.record(Action{Name: ActionIncreaseCounter})
}

// DecreaseCounter subtracts one from the counter. There is no floor.
func (s *Store) DecreaseCounter() {
	s.counter.Update(func(v int) int { return v - 1 })
	s.record(Action{Name: ActionDecreaseCounter})
}

// SetColorCode stores value verbatim. Any string is accepted.
func (s *Store) SetColorCode(value string) {
	s.colorCode.Set(value)
	s.record(Action{Name: ActionSetColorCode, Value: value})
}

// CounterSquared returns counter*counter for the current counter.
// Overflow wraps like any Go int multiplication.
func (s *Store) CounterSquared() int {
	return s.squared.Get()
}

// SquaredGetter exposes CounterSquared as a reactive read-only value.
func (s *Store) SquaredGetter() state.View[int] {
	return state.ReadOnly[int](s.squared)
}

func (s *Store) record(action Action) {
	m := Mutation{
		Action: action,
		At:     s.now(),
		State:  s.view.Snapshot(),
	}
	m.ID = newID(m.At)

	s.mu.Lock()
	s.last = &m
	hooks := make([]func(Mutation), 0, len(s.hooks))
	for _, fn := range s.hooks {
		hooks = append(hooks, fn)
	}
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(m)
	}
}

// newID stamps a ULID with at, clamped to the range a ULID can encode.
// Times before the Unix epoch map to 0.
func newID(at time.Time) ulid.ULID {
	var ms uint64
	if !at.Before(time.UnixMilli(0)) {
		ms = min(ulid.Timestamp(at), ulid.MaxTime())
	}
	id, err := ulid.New(ms, ulid.DefaultEntropy())
	if err != nil {
		// Monotonic entropy overflowed within one millisecond.
		id, err = ulid.New(ms, rand.Reader)
		if err != nil {
			_ = id.SetTime(ms)
		}
	}
	return id
}

// Now reports the time according to the store's clock.
func (s *Store) Now() time.Time {
	return s.now()
}

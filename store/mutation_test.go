package store

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestOnMutation(t *testing.T) {
	s := New()
	var got []Mutation
	unsub := s.OnMutation(func(m Mutation) { got = append(got, m) })

	s.IncreaseCounter()
	s.SetColorCode("red")
	s.DecreaseCounter()

	if len(got) != 3 {
		t.Fatalf("expected 3 mutations, got %d", len(got))
	}
	wantActions := []Action{
		{Name: ActionIncreaseCounter},
		{Name: ActionSetColorCode, Value: "red"},
		{Name: ActionDecreaseCounter},
	}
	wantStates := []State{
		{Counter: 1, ColorCode: "blue"},
		{Counter: 1, ColorCode: "red"},
		{Counter: 0, ColorCode: "red"},
	}
	for i, m := range got {
		if m.Action != wantActions[i] {
			t.Fatalf("mutation %d: expected action %+v, got %+v", i, wantActions[i], m.Action)
		}
		if m.State != wantStates[i] {
			t.Fatalf("mutation %d: expected state %+v, got %+v", i, wantStates[i], m.State)
		}
		if i > 0 && got[i-1].ID.Compare(m.ID) >= 0 {
			t.Fatalf("mutation %d: expected increasing IDs, got %s then %s", i, got[i-1].ID, m.ID)
		}
	}

	unsub()
	s.IncreaseCounter()
	if len(got) != 3 {
		t.Fatalf("expected no hook calls after unsubscribe, got %d", len(got))
	}
}

func TestOnMutation_EqualColorStillRecorded(t *testing.T) {
	s := New()
	calls := 0
	s.OnMutation(func(Mutation) { calls++ })

	s.SetColorCode("blue")
	if calls != 1 {
		t.Fatalf("expected setting the current color to count as an action, got %d", calls)
	}
}

func TestLastMutation_UsesClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return at }))

	s.SetColorCode("green")
	m, ok := s.LastMutation()
	if !ok {
		t.Fatalf("expected a mutation")
	}
	if !m.At.Equal(at) {
		t.Fatalf("expected mutation time %v, got %v", at, m.At)
	}
	if m.ID.Time() != uint64(at.UnixMilli()) {
		t.Fatalf("expected ID timestamp %d, got %d", at.UnixMilli(), m.ID.Time())
	}
	if m.Action.Value != "green" {
		t.Fatalf("expected green payload, got %q", m.Action.Value)
	}
}

func TestLastMutation_ClockOutsideULIDRange(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want uint64
	}{
		{"zero time", time.Time{}, 0},
		{"before epoch", time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC), 0},
		{"past max", time.Date(20000, 1, 1, 0, 0, 0, 0, time.UTC), ulid.MaxTime()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(WithClock(func() time.Time { return tc.at }))
			hooked := 0
			s.OnMutation(func(Mutation) { hooked++ })

			s.IncreaseCounter()
			if s.State().Counter() != 1 {
				t.Fatalf("expected counter 1, got %d", s.State().Counter())
			}
			m, ok := s.LastMutation()
			if !ok || hooked != 1 {
				t.Fatalf("expected one recorded mutation, ok=%v hooks=%d", ok, hooked)
			}
			if !m.At.Equal(tc.at) {
				t.Fatalf("expected mutation time %v, got %v", tc.at, m.At)
			}
			if m.ID.Time() != tc.want {
				t.Fatalf("expected ID timestamp %d, got %d", tc.want, m.ID.Time())
			}
		})
	}
}

func TestOnMutation_HookMayReadStore(t *testing.T) {
	s := New()
	var squared int
	s.OnMutation(func(Mutation) {
		squared = s.CounterSquared()
		if _, ok := s.LastMutation(); !ok {
			t.Errorf("expected last mutation inside hook")
		}
	})

	s.IncreaseCounter()
	s.IncreaseCounter()
	if squared != 4 {
		t.Fatalf("expected hook to read squared 4, got %d", squared)
	}
}

func TestOnMutation_Nil(t *testing.T) {
	s := New()
	s.OnMutation(nil)()
	s.IncreaseCounter()
}

package store

import (
	"math"
	"sync"
	"testing"

	"github.com/odvcencio/furry-store/state"
)

func TestNew_InitialState(t *testing.T) {
	s := New()
	view := s.State()

	if got := view.Counter(); got != 0 {
		t.Fatalf("expected counter 0, got %d", got)
	}
	if got := view.ColorCode(); got != "blue" {
		t.Fatalf("expected colorCode blue, got %q", got)
	}
	if got := s.CounterSquared(); got != 0 {
		t.Fatalf("expected counterSquared 0, got %d", got)
	}
	if _, ok := s.LastMutation(); ok {
		t.Fatalf("expected no mutation before any action")
	}
}

func TestNew_IsolatedInstances(t *testing.T) {
	a := New()
	b := New()

	a.IncreaseCounter()
	a.SetColorCode("red")
	if got := b.State().Snapshot(); got != (State{Counter: 0, ColorCode: "blue"}) {
		t.Fatalf("expected second store untouched, got %+v", got)
	}
}

func TestStore_CounterIsIncreasesMinusDecreases(t *testing.T) {
	cases := []struct {
		name string
		ops  string
		want int
	}{
		{"none", "", 0},
		{"increase only", "+++", 3},
		{"decrease only", "--", -2},
		{"interleaved", "+-+-+", 1},
		{"decrease first", "---+", -2},
		{"grouped", "++++----", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			for _, op := range tc.ops {
				if op == '+' {
					s.IncreaseCounter()
				} else {
					s.DecreaseCounter()
				}
			}
			if got := s.State().Counter(); got != tc.want {
				t.Fatalf("expected counter %d, got %d", tc.want, got)
			}
		})
	}
}

func TestStore_CounterSquared(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.DecreaseCounter()
	}
	if got := s.CounterSquared(); got != 9 {
		t.Fatalf("expected 9 for counter -3, got %d", got)
	}

	for i := 0; i < 7; i++ {
		s.IncreaseCounter()
	}
	if got := s.CounterSquared(); got != 16 {
		t.Fatalf("expected 16 for counter 4, got %d", got)
	}
	if got := s.SquaredGetter().Get(); got != 16 {
		t.Fatalf("expected squared getter 16, got %d", got)
	}
}

func TestStore_CounterSquaredWraps(t *testing.T) {
	s := New()
	big := math.MaxInt
	s.counter.Set(big)
	want := big * big
	if got := s.CounterSquared(); got != want {
		t.Fatalf("expected wrapped square %d, got %d", want, got)
	}
}

func TestStore_SetColorCode(t *testing.T) {
	s := New()
	for _, v := range []string{"red", "red", "", "not-a-color", "#00ff00", "blue"} {
		s.SetColorCode(v)
		if got := s.State().ColorCode(); got != v {
			t.Fatalf("expected colorCode %q, got %q", v, got)
		}
	}
}

func TestView_ObservesLaterActions(t *testing.T) {
	s := New()
	view := s.State()

	s.IncreaseCounter()
	s.IncreaseCounter()
	s.IncreaseCounter()
	s.DecreaseCounter()
	s.SetColorCode("green")

	if got := view.Counter(); got != 2 {
		t.Fatalf("expected held view to read 2, got %d", got)
	}
	if got := view.ColorCode(); got != "green" {
		t.Fatalf("expected held view to read green, got %q", got)
	}
	if got := s.State().Counter(); got != 2 {
		t.Fatalf("expected fresh view to read 2, got %d", got)
	}
}

func TestView_SnapshotIsDetached(t *testing.T) {
	s := New()
	snap := s.State().Snapshot()
	snap.Counter = 42
	snap.ColorCode = "purple"

	if got := s.State().Snapshot(); got != (State{Counter: 0, ColorCode: "blue"}) {
		t.Fatalf("expected writes to a snapshot to leave the store alone, got %+v", got)
	}
}

func TestView_ReactiveValuesAreReadOnly(t *testing.T) {
	s := New()
	var counter state.Readable[int] = s.State().CounterValue()
	if _, ok := counter.(state.Writable[int]); ok {
		t.Fatalf("expected counter value not to be writable")
	}
	var color state.Readable[string] = s.State().ColorCodeValue()
	if _, ok := color.(state.Writable[string]); ok {
		t.Fatalf("expected color value not to be writable")
	}
}

func TestView_Subscribe(t *testing.T) {
	s := New()
	calls := 0
	unsub := s.State().Subscribe(func() { calls++ })

	s.IncreaseCounter()
	s.SetColorCode("red")
	s.SetColorCode("red")
	if calls != 2 {
		t.Fatalf("expected 2 notifications, got %d", calls)
	}

	unsub()
	s.DecreaseCounter()
	if calls != 2 {
		t.Fatalf("expected no notifications after unsubscribe, got %d", calls)
	}
}

func TestView_SubscribeWithScheduler(t *testing.T) {
	s := New()
	queue := state.NewQueue()
	seen := -1
	s.State().SubscribeWithScheduler(queue, func() {
		seen = s.State().Counter()
	})

	s.IncreaseCounter()
	s.IncreaseCounter()
	if seen != -1 {
		t.Fatalf("expected callbacks to wait for flush")
	}
	if flushed := queue.Flush(); flushed != 2 {
		t.Fatalf("expected 2 queued callbacks, got %d", flushed)
	}
	if seen != 2 {
		t.Fatalf("expected callback to read current counter 2, got %d", seen)
	}
}

func TestSquaredGetter_NotifiesOnCounterChange(t *testing.T) {
	s := New()
	squared := s.SquaredGetter()
	var got []int
	squared.Subscribe(func() { got = append(got, squared.Get()) })

	s.DecreaseCounter()
	s.DecreaseCounter()
	s.SetColorCode("red")
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("expected squares [1 4], got %v", got)
	}
}

func TestStore_ConcurrentActions(t *testing.T) {
	s := New()
	const workers, perWorker = 4, 250

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				s.IncreaseCounter()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker/5; j++ {
				s.DecreaseCounter()
			}
		}()
	}
	wg.Wait()

	want := workers*perWorker - workers*(perWorker/5)
	if got := s.State().Counter(); got != want {
		t.Fatalf("expected counter %d, got %d", want, got)
	}
}

package state

import "testing"

func TestGetter_RecomputesOnEveryRead(t *testing.T) {
	a := NewSignal(2)
	computes := 0
	squared := NewGetter(func() int {
		computes++
		v := a.Get()
		return v * v
	}, a)

	if got := squared.Get(); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	squared.Get()
	if computes != 2 {
		t.Fatalf("expected compute per read, got %d", computes)
	}

	a.Set(-3)
	if got := squared.Get(); got != 9 {
		t.Fatalf("expected 9 after change, got %d", got)
	}
}

func TestGetter_SubscribeFansOut(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal(2)
	a.SetEqualFunc(EqualComparable[int])
	b.SetEqualFunc(EqualComparable[int])

	sum := NewGetter(func() int {
		return a.Get() + b.Get()
	}, a, nil, b)

	calls := 0
	unsub := sum.Subscribe(func() { calls++ })

	a.Set(2)
	b.Set(3)
	if calls != 2 {
		t.Fatalf("expected 2 notifications, got %d", calls)
	}
	if got := sum.Get(); got != 5 {
		t.Fatalf("expected sum 5, got %d", got)
	}

	unsub()
	a.Set(10)
	if calls != 2 {
		t.Fatalf("expected no notifications after unsubscribe, got %d", calls)
	}
}

func TestGetter_Scheduler(t *testing.T) {
	a := NewSignal(1)
	queue := NewQueue()
	getter := NewGetter(a.Get, a)
	calls := 0

	getter.SubscribeWithScheduler(queue, func() { calls++ })
	a.Set(2)
	if calls != 0 {
		t.Fatalf("expected callback to be queued, got %d", calls)
	}
	if got := getter.Get(); got != 2 {
		t.Fatalf("expected getter to read through before flush, got %d", got)
	}
	queue.Flush()
	if calls != 1 {
		t.Fatalf("expected callback after flush, got %d", calls)
	}
}

func TestGetter_NilCompute(t *testing.T) {
	getter := NewGetter[string](nil)
	if got := getter.Get(); got != "" {
		t.Fatalf("expected zero value, got %q", got)
	}
	getter.Subscribe(func() {})()
}

package state

import "sync"

// scheduledSource is a Subscribable that can deliver on a Scheduler.
type scheduledSource interface {
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Subscriptions collects the cancel funcs of everything a widget observes.
// Clear releases them newest first.
type Subscriptions struct {
	mu      sync.Mutex
	cancels []func()
	sched   Scheduler
}

// NewSubscriptions returns a set whose Observe delivers on scheduler.
func NewSubscriptions(scheduler Scheduler) *Subscriptions {
	return &Subscriptions{sched: scheduler}
}

// SetScheduler changes where later Observe callbacks are delivered.
// Existing subscriptions keep their scheduler.
func (s *Subscriptions) SetScheduler(scheduler Scheduler) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
}

// Scheduler reports the scheduler Observe uses. Nil means synchronous.
func (s *Subscriptions) Scheduler() Scheduler {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched
}

// Len reports how many cancel funcs are held.
func (s *Subscriptions) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cancels)
}

// Add holds cancel until Clear. Nil is ignored.
func (s *Subscriptions) Add(cancel func()) {
	if s == nil || cancel == nil {
		return
	}
	s.mu.Lock()
	s.cancels = append(s.cancels, cancel)
	s.mu.Unlock()
}

// Observe subscribes fn to sub and holds the cancel func.
// Sources that cannot schedule are subscribed synchronously.
func (s *Subscriptions) Observe(sub Subscribable, fn func()) {
	if s == nil || sub == nil || fn == nil {
		return
	}
	sched := s.Scheduler()
	if src, ok := sub.(scheduledSource); ok && sched != nil {
		s.Add(src.SubscribeWithScheduler(sched, fn))
		return
	}
	s.Add(sub.Subscribe(fn))
}

// Clear cancels everything held, newest first.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	cancels := s.cancels
	s.cancels = nil
	s.mu.Unlock()
	for i := len(cancels) - 1; i >= 0; i-- {
		cancels[i]()
	}
}

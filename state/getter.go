package state

// Getter derives a value from other state on every read.
// Nothing is cached: Get always runs compute against the current inputs.
// Subscribers are notified whenever any dependency changes.
type Getter[T any] struct {
	compute func() T
	deps    []Subscribable
}

// NewGetter creates a derived value over deps.
func NewGetter[T any](compute func() T, deps ...Subscribable) *Getter[T] {
	if compute == nil {
		compute = func() T {
			var zero T
			return zero
		}
	}
	g := &Getter[T]{compute: compute}
	for _, dep := range deps {
		if dep != nil {
			g.deps = append(g.deps, dep)
		}
	}
	return g
}

// Get computes and returns the derived value.
func (g *Getter[T]) Get() T {
	if g == nil {
		var zero T
		return zero
	}
	return g.compute()
}

// Subscribe registers fn on every dependency.
func (g *Getter[T]) Subscribe(fn func()) func() {
	return g.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers fn on every dependency using scheduler.
// Dependencies that cannot schedule fall back to synchronous callbacks.
func (g *Getter[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if g == nil || fn == nil || len(g.deps) == 0 {
		return func() {}
	}
	subs := NewSubscriptions(scheduler)
	for _, dep := range g.deps {
		subs.Observe(dep, fn)
	}
	return subs.Clear
}

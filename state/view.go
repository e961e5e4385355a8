package state

// View is a read-only handle on a live reactive value.
// The source is held unexported, so a View cannot be asserted back into
// something writable; reads always observe the current value.
type View[T any] struct {
	src Readable[T]
}

// ReadOnly wraps src in a View.
func ReadOnly[T any](src Readable[T]) View[T] {
	if v, ok := src.(View[T]); ok {
		return v
	}
	return View[T]{src: src}
}

// Get returns the current value of the source.
func (v View[T]) Get() T {
	if v.src == nil {
		var zero T
		return zero
	}
	return v.src.Get()
}

// Subscribe registers a listener for change notifications.
func (v View[T]) Subscribe(fn func()) func() {
	if v.src == nil {
		return func() {}
	}
	return v.src.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
func (v View[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if v.src == nil {
		return func() {}
	}
	return v.src.SubscribeWithScheduler(scheduler, fn)
}

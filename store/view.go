package store

import "github.com/odvcencio/furry-store/state"

// View is a read-only handle on a Store's live state.
// It has no setters; every read returns the value as of the call.
type View struct {
	counter   state.View[int]
	colorCode state.View[string]
}

// Counter returns the current counter.
func (v View) Counter() int {
	return v.counter.Get()
}

// ColorCode returns the current color code.
func (v View) ColorCode() string {
	return v.colorCode.Get()
}

// CounterValue returns the counter as a reactive read-only value.
func (v View) CounterValue() state.View[int] {
	return v.counter
}

// ColorCodeValue returns the color code as a reactive read-only value.
func (v View) ColorCodeValue() state.View[string] {
	return v.colorCode
}

// Snapshot copies the current fields into a State value.
func (v View) Snapshot() State {
	return State{
		Counter:   v.Counter(),
		ColorCode: v.ColorCode(),
	}
}

// Subscribe calls fn whenever either field changes.
func (v View) Subscribe(fn func()) func() {
	return v.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler calls fn on scheduler whenever either field changes.
func (v View) SubscribeWithScheduler(scheduler state.Scheduler, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	subs := state.NewSubscriptions(scheduler)
	subs.Observe(v.counter, fn)
	subs.Observe(v.colorCode, fn)
	return subs.Clear
}

package runtime

import (
	"time"

	"github.com/odvcencio/furry-store/state"
)

// Services is the handle bound widgets use to reach their app.
// The zero value does nothing.
type Services struct {
	app *App
}

// Services returns a service handle for the app.
func (a *App) Services() Services {
	return Services{app: a}
}

func (s Services) isZero() bool {
	return s.app == nil
}

// Scheduler returns the scheduler that runs callbacks on the app loop.
func (s Services) Scheduler() state.Scheduler {
	return s.app.StateScheduler()
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	s.app.Invalidate()
}

// Post sends a message into the app loop without blocking.
func (s Services) Post(msg Message) bool {
	return s.app.TryPost(msg)
}

// Spawn runs an effect under the app's task context.
func (s Services) Spawn(effect Effect) {
	s.app.Spawn(effect)
}

// After posts msg to the app loop once delay has passed.
func (s Services) After(delay time.Duration, msg Message) {
	s.Spawn(After(delay, msg))
}

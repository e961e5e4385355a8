package runtime

import (
	"sync/atomic"

	"github.com/odvcencio/furry-store/state"
)

// wakeup posts one message at a time to the app loop. Repeated calls
// are dropped until the loop handles the message and calls reset.
// A failed post leaves it unarmed so the next call tries again.
type wakeup struct {
	post    func(Message) bool
	msg     Message
	pending atomic.Bool
}

func (w *wakeup) fire() {
	if w.post == nil {
		return
	}
	if w.pending.CompareAndSwap(false, true) && !w.post(w.msg) {
		w.pending.Store(false)
	}
}

func (w *wakeup) reset() {
	w.pending.Store(false)
}

// Invalidator requests render passes, coalescing bursts into one
// InvalidateMsg.
type Invalidator struct {
	wake wakeup
}

// NewInvalidator creates an invalidator wired to a post function.
func NewInvalidator(post func(Message) bool) *Invalidator {
	return &Invalidator{wake: wakeup{post: post, msg: InvalidateMsg{}}}
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i == nil {
		return
	}
	i.wake.fire()
}

func (i *Invalidator) resetPending() {
	if i == nil {
		return
	}
	i.wake.reset()
}

// QueueScheduler defers callbacks to a state queue and wakes the app
// loop with a QueueFlushMsg so it flushes them on its own goroutine.
type QueueScheduler struct {
	queue *state.Queue
	wake  wakeup
}

// NewQueueScheduler wires a queue to a post function.
func NewQueueScheduler(queue *state.Queue, post func(Message) bool) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{
		queue: queue,
		wake:  wakeup{post: post, msg: QueueFlushMsg{}},
	}
}

// Schedule enqueues fn and wakes the loop.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	s.wake.fire()
}

func (s *QueueScheduler) resetPending() {
	if s == nil {
		return
	}
	s.wake.reset()
}

package runtime

// QueueFlushPolicy chooses which messages make the app flush its state
// queue. A QueueFlushMsg always flushes.
type QueueFlushPolicy int

const (
	// FlushOnMessageAndTick flushes after every message and tick.
	FlushOnMessageAndTick QueueFlushPolicy = iota
	// FlushOnMessage flushes after every message except TickMsg.
	FlushOnMessage
	// FlushOnTick flushes only after TickMsg.
	FlushOnTick
	// FlushManual flushes only after QueueFlushMsg.
	FlushManual
)

func shouldFlushQueue(policy QueueFlushPolicy, msg Message) bool {
	_, isTick := msg.(TickMsg)
	switch {
	case isFlush(msg):
		return true
	case policy == FlushManual:
		return false
	case policy == FlushOnMessage:
		return !isTick
	case policy == FlushOnTick:
		return isTick
	default:
		return true
	}
}

func isFlush(msg Message) bool {
	_, ok := msg.(QueueFlushMsg)
	return ok
}

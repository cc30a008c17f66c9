package pos

import "time"

// TimerName identifies a one-shot timer slot. Each slot holds at most one
// live handle.
type TimerName string

const (
	TimerOutboxFlush TimerName = "outbox-flush"
	TimerScaleSettle TimerName = "scale-settle"
)

// Handle identifies one arming of a timer. Handles are never reused.
type Handle uint64

// Scheduled asks the runtime to call back after a delay with the handle.
type Scheduled struct {
	Name   TimerName
	Handle Handle
	After  time.Duration
}

// Timers tracks the live handle per slot. Arming a slot again or cancelling
// it turns every earlier handle stale, so a late callback can never act.
type Timers struct {
	counter uint64
	live    map[TimerName]Handle
}

// NewTimers returns an empty registry.
func NewTimers() *Timers {
	return &Timers{live: map[TimerName]Handle{}}
}

// Arm replaces any pending handle for name.
func (t *Timers) Arm(name TimerName) Handle {
	t.counter++
	h := Handle(t.counter)
	t.live[name] = h
	return h
}

// Cancel drops the pending handle for name. It reports whether one existed.
func (t *Timers) Cancel(name TimerName) bool {
	_, ok := t.live[name]
	delete(t.live, name)
	return ok
}

// Pending reports whether name has a live handle.
func (t *Timers) Pending(name TimerName) bool {
	_, ok := t.live[name]
	return ok
}

// Fire consumes h if it is the live handle for name.
func (t *Timers) Fire(name TimerName, h Handle) bool {
	current, ok := t.live[name]
	if !ok || current != h {
		return false
	}
	delete(t.live, name)
	return true
}

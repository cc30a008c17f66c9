package pos

import (
	"log"
	"time"
)

// Outbox routes finalized tickets either straight into history or, while the
// link is down, into a queue that is merged back in one piece after the link
// returns and the sync delay passes.
type Outbox struct {
	online  bool
	queue   []Record
	history []Record
	timers  *Timers
	delay   time.Duration
}

// NewOutbox starts with the given history (most recent first).
func NewOutbox(history []Record, online bool, delay time.Duration, timers *Timers) *Outbox {
	if timers == nil {
		timers = NewTimers()
	}
	return &Outbox{
		online:  online,
		history: append([]Record(nil), history...),
		timers:  timers,
		delay:   delay,
	}
}

// Submit files a finalized record. While queued records are still waiting
// for their flush, new records join the queue so history stays newest first.
func (o *Outbox) Submit(r Record) {
	if o.online && len(o.queue) == 0 {
		o.history = prepend(o.history, r)
		log.Printf("[outbox] %s recorded", r.ID)
		return
	}
	o.queue = prepend(o.queue, r)
	log.Printf("[outbox] %s queued (online=%v, %d pending)", r.ID, o.online, len(o.queue))
}

// Online reports the link state.
func (o *Outbox) Online() bool {
	return o.online
}

// SetOnline changes the link state. Coming online with queued records arms a
// flush; the returned Scheduled must be delivered back through Flush. Going
// offline cancels any flush that has not fired yet.
func (o *Outbox) SetOnline(online bool) (Scheduled, bool) {
	if online == o.online {
		return Scheduled{}, false
	}
	o.online = online
	if !online {
		if o.timers.Cancel(TimerOutboxFlush) {
			log.Printf("[outbox] pending sync cancelled (%d still queued)", len(o.queue))
		}
		return Scheduled{}, false
	}
	if len(o.queue) == 0 {
		return Scheduled{}, false
	}
	h := o.timers.Arm(TimerOutboxFlush)
	log.Printf("[outbox] link up, syncing %d record(s) in %s", len(o.queue), o.delay)
	return Scheduled{Name: TimerOutboxFlush, Handle: h, After: o.delay}, true
}

// Toggle flips the link state.
func (o *Outbox) Toggle() (Scheduled, bool) {
	return o.SetOnline(!o.online)
}

// Flush merges the whole queue into history if h is the live flush handle.
// It returns the number of records merged and whether h was live.
func (o *Outbox) Flush(h Handle) (int, bool) {
	if !o.timers.Fire(TimerOutboxFlush, h) {
		return 0, false
	}
	merged := len(o.queue)
	if merged == 0 {
		return 0, true
	}
	history := make([]Record, 0, merged+len(o.history))
	history = append(history, o.queue...)
	o.history = append(history, o.history...)
	o.queue = nil
	log.Printf("[outbox] synced %d record(s)", merged)
	return merged, true
}

// SyncPending reports whether a flush is armed.
func (o *Outbox) SyncPending() bool {
	return o.timers.Pending(TimerOutboxFlush)
}

// Queue returns the queued records, most recent first.
func (o *Outbox) Queue() []Record {
	return append([]Record(nil), o.queue...)
}

// History returns merged records, most recent first.
func (o *Outbox) History() []Record {
	return append([]Record(nil), o.history...)
}

// Latest returns the most recent activity. Queued records are newer than
// anything in history.
func (o *Outbox) Latest() (Record, bool) {
	if len(o.queue) > 0 {
		return o.queue[0], true
	}
	if len(o.history) > 0 {
		return o.history[0], true
	}
	return Record{}, false
}

// Recent lists queued records followed by history, up to limit.
func (o *Outbox) Recent(limit int) []Record {
	out := make([]Record, 0, len(o.queue)+len(o.history))
	out = append(out, o.queue...)
	out = append(out, o.history...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ForCustomer lists history records for a customer, most recent first.
func (o *Outbox) ForCustomer(customerID string, limit int) []Record {
	var out []Record
	for _, r := range o.history {
		if r.CustomerID != customerID {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func prepend(list []Record, r Record) []Record {
	out := make([]Record, 0, len(list)+1)
	out = append(out, r)
	return append(out, list...)
}

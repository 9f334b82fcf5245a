package core

// DefaultQueueSize is the capacity used by NewEventQueue when size <= 0.
const DefaultQueueSize = 32

// EventQueue is a bounded FIFO of events filtered by an enabled-event mask.
// When full, the oldest event is dropped. Not safe for concurrent use;
// platform callbacks run on the main thread.
type EventQueue struct {
	buf     []Event
	head    int
	n       int
	enabled EventFlag
	dropped int
}

func NewEventQueue(size int) *EventQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &EventQueue{buf: make([]Event, size), enabled: AllEventFlags}
}

func (q *EventQueue) SetEnabled(f EventFlag) { q.enabled = f }
func (q *EventQueue) Enabled() EventFlag     { return q.enabled }

// SetState enables or disables the given event types.
func (q *EventQueue) SetState(f EventFlag, on bool) {
	if on {
		q.enabled |= f
	} else {
		q.enabled &^= f
	}
}

// Push appends ev if its type is enabled and reports whether it was kept.
func (q *EventQueue) Push(ev Event) bool {
	if ev == nil || !q.enabled.Allows(ev.Type()) {
		return false
	}
	if q.n == len(q.buf) {
		q.head = (q.head + 1) % len(q.buf)
		q.n--
		q.dropped++
	}
	q.buf[(q.head+q.n)%len(q.buf)] = ev
	q.n++
	return true
}

// Next pops the oldest event.
func (q *EventQueue) Next() (Event, bool) {
	if q.n == 0 {
		return nil, false
	}
	ev := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return ev, true
}

func (q *EventQueue) Len() int { return q.n }

// Dropped counts events discarded because the queue was full.
func (q *EventQueue) Dropped() int { return q.dropped }

func (q *EventQueue) Clear() {
	for q.n > 0 {
		q.Next()
	}
}

package frameclock

import (
	"sort"
	"time"
)

type frameSub struct {
	fn func(time.Time)
}

type manualTimer struct {
	at      time.Time
	seq     int
	fn      func()
	stopped bool
}

// Manual is a Clock advanced explicitly with Step. Nothing fires between
// calls, which makes it the clock of choice for tests and for message-driven
// hosts that already receive a tick per frame.
//
// Manual is not safe for concurrent use; it belongs to whoever calls Step.
type Manual struct {
	now    time.Time
	frame  *frameSub
	timers []*manualTimer
	seq    int
}

// NewManual creates a Manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now reports the clock's current time.
func (m *Manual) Now() time.Time {
	return m.now
}

// Schedule registers the frame callback for the next Step.
func (m *Manual) Schedule(fn func(now time.Time)) CancelFunc {
	sub := &frameSub{fn: fn}
	m.frame = sub
	return func() {
		if m.frame == sub {
			m.frame = nil
		}
	}
}

// AfterFunc arms a timer that fires during the Step that reaches its due
// time. Timers fire in due order; ties fire in arming order.
func (m *Manual) AfterFunc(d time.Duration, fn func()) CancelFunc {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{at: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return func() {
		t.stopped = true
	}
}

// Step advances the clock by d, fires any timers that came due, then fires
// the pending frame callback once at the new time.
func (m *Manual) Step(d time.Duration) {
	if d < 0 {
		d = 0
	}
	m.now = m.now.Add(d)
	m.fireDueTimers()
	if sub := m.frame; sub != nil {
		m.frame = nil
		sub.fn(m.now)
	}
}

func (m *Manual) fireDueTimers() {
	var due []*manualTimer
	var rest []*manualTimer
	for _, t := range m.timers {
		if t.stopped {
			continue
		}
		if !t.at.After(m.now) {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	m.timers = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})
	for _, t := range due {
		if !t.stopped {
			t.fn()
		}
	}
}

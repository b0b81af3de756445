package frameclock

import (
	"sync"
	"time"
)

// Ticker is a self-driving Clock that delivers frames at a fixed rate from a
// background goroutine. Use it when the host has no frame source of its own.
type Ticker struct {
	interval time.Duration

	mu    sync.Mutex
	frame *frameSub

	done     chan struct{}
	stopOnce sync.Once
}

// NewTicker starts a Ticker firing fps frames per second. Values of fps less
// than 1 fall back to 60.
func NewTicker(fps int) *Ticker {
	if fps < 1 {
		fps = 60
	}
	t := &Ticker{
		interval: time.Second / time.Duration(fps),
		done:     make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *Ticker) run() {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()
	for {
		select {
		case <-t.done:
			return
		case now := <-tick.C:
			t.mu.Lock()
			sub := t.frame
			t.frame = nil
			t.mu.Unlock()
			// Invoked without the lock so the callback can reschedule.
			if sub != nil {
				sub.fn(now)
			}
		}
	}
}

// Schedule registers the frame callback for the next tick.
func (t *Ticker) Schedule(fn func(now time.Time)) CancelFunc {
	sub := &frameSub{fn: fn}
	t.mu.Lock()
	t.frame = sub
	t.mu.Unlock()
	return func() {
		t.mu.Lock()
		if t.frame == sub {
			t.frame = nil
		}
		t.mu.Unlock()
	}
}

// AfterFunc delegates to a real timer.
func (t *Ticker) AfterFunc(d time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(d, fn)
	return func() {
		timer.Stop()
	}
}

// Now reports wall-clock time.
func (t *Ticker) Now() time.Time {
	return time.Now()
}

// Stop shuts down the background goroutine. No frames are delivered after
// Stop returns, though timers armed with AfterFunc still fire unless
// cancelled.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
	})
}

package autoscroll

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/owen-vb/creep/internal/frameclock"
)

// pointerSettle is how long after the most recent pointer move ticking stays
// suspended when PauseOnPointerMove is set.
const pointerSettle = 150 * time.Millisecond

// boundaryTolerance absorbs rounding at the ends of the scroll range, in
// scroll units.
const boundaryTolerance = 1.0

// Scroller drives one axis of one viewport. All methods are safe for
// concurrent use; frame callbacks, interaction notifications and timers
// serialize on the same lock as the public API, so the loop never observes
// itself mid-mutation.
type Scroller struct {
	port  ScrollPort
	sink  OffsetSink
	clock frameclock.Clock

	mu  sync.Mutex
	cfg Config

	running   bool
	direction int // +1 toward Max, -1 toward 0

	// lastTick marks the start of the current pacing interval. The zero
	// time means "not started": the next frame adopts its timestamp
	// instead of measuring elapsed time, which is what prevents a burst
	// of catch-up motion after any pause.
	lastTick time.Time

	// selfScroll is set by each tick and cleared on the next frame, after
	// the scroll event the increment triggers has had its chance to fire.
	selfScroll   bool
	lastObserved float64

	// suspended means foreign scrolling cancelled the frame subscription;
	// only the resume timer or a later scroll notification revives it.
	suspended bool

	touchActive  bool
	pointerQuiet time.Time

	cancelFrame  frameclock.CancelFunc
	cancelResume frameclock.CancelFunc
}

// New validates opts, builds a Scroller and, when Autoplay is set and the
// speed is non-zero, starts it. A returned error means nothing was started,
// scheduled or written.
func New(opts Options) (*Scroller, error) {
	cfg, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if opts.Port == nil {
		return nil, ErrMissingTarget
	}
	if opts.Clock == nil {
		return nil, ErrMissingClock
	}
	sink := opts.Offset
	if sink == nil {
		if s, ok := opts.Port.(OffsetSink); ok {
			sink = s
		} else {
			sink = noopSink{}
		}
	}
	s := &Scroller{
		port:      opts.Port,
		sink:      sink,
		clock:     opts.Clock,
		cfg:       cfg,
		direction: 1,
	}
	if cfg.Speed < 0 {
		s.direction = -1
	}
	if cfg.Autoplay {
		if err := s.Start(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Start subscribes to the frame clock and begins ticking. It is a no-op when
// already running, and does nothing when the configured speed is zero.
func (s *Scroller) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked()
}

func (s *Scroller) startLocked() error {
	if s.port == nil {
		return ErrMissingTarget
	}
	if s.clock == nil {
		return ErrMissingClock
	}
	if s.running || s.cfg.Speed == 0 {
		return nil
	}
	s.running = true
	s.direction = 1
	if s.cfg.Speed < 0 {
		s.direction = -1
	}
	s.lastTick = time.Time{}
	s.selfScroll = false
	s.suspended = false
	s.lastObserved = s.port.Position()
	s.scheduleLocked()
	return nil
}

// Stop cancels the frame subscription and all pending timers, clears the
// interaction state and zeroes the visual offset. Stopping a stopped
// scroller is a no-op.
func (s *Scroller) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scroller) stopLocked() {
	if !s.running {
		return
	}
	s.running = false
	s.suspended = false
	s.touchActive = false
	s.pointerQuiet = time.Time{}
	s.lastTick = time.Time{}
	s.selfScroll = false
	if s.cancelFrame != nil {
		s.cancelFrame()
		s.cancelFrame = nil
	}
	if s.cancelResume != nil {
		s.cancelResume()
		s.cancelResume = nil
	}
	s.sink.SetOffset(0, 0)
}

// SetSpeed changes the travel rate. A running scroller restarts so the new
// pacing interval takes effect from a fresh clock; zero stops it. NaN and
// infinities are rejected and leave the current state untouched.
func (s *Scroller) SetSpeed(speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, speed)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wasRunning := s.running
	s.stopLocked()
	s.cfg.Speed = speed
	if wasRunning && speed != 0 {
		return s.startLocked()
	}
	return nil
}

// Running reports whether the scroller currently holds a frame subscription
// or is suspended waiting to resume one.
func (s *Scroller) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Config returns a copy of the current configuration.
func (s *Scroller) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// NotifyScroll reports an observed change of the scroll position. Changes
// caused by the scroller's own ticks are ignored. With foreign-scroll
// reconciliation enabled, a larger external change suspends ticking until
// the position has been quiet for ResumeDelay.
func (s *Scroller) NotifyScroll(pos float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || !s.cfg.ReconcileForeignScroll {
		s.lastObserved = pos
		return
	}
	if s.selfScroll {
		s.lastObserved = pos
		return
	}
	if !s.suspended && math.Abs(pos-s.lastObserved) <= s.cfg.Step {
		s.lastObserved = pos
		return
	}
	s.lastObserved = pos
	s.suspendLocked()
}

func (s *Scroller) suspendLocked() {
	if !s.suspended {
		s.suspended = true
		if s.cancelFrame != nil {
			s.cancelFrame()
			s.cancelFrame = nil
		}
		s.sink.SetOffset(0, 0)
	}
	// Debounce: every foreign event re-arms the timer.
	if s.cancelResume != nil {
		s.cancelResume()
	}
	s.cancelResume = s.clock.AfterFunc(s.cfg.ResumeDelay, s.onResume)
}

func (s *Scroller) onResume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelResume = nil
	if !s.running || !s.suspended {
		return
	}
	pos := s.port.Position()
	if pos < 0 || pos > s.port.Max() {
		// Mid-elastic-bounce. Stay suspended; the next scroll
		// notification re-arms the timer.
		return
	}
	s.suspended = false
	s.lastTick = time.Time{}
	s.lastObserved = pos
	s.scheduleLocked()
}

// NotifyTouchStart marks a touch as active for the PauseOnTouch predicate.
func (s *Scroller) NotifyTouchStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchActive = true
}

// NotifyTouchEnd clears the touch-active flag. Touch cancel reports here
// too.
func (s *Scroller) NotifyTouchEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchActive = false
}

// NotifyPointerMove re-arms the pointer settle window for the
// PauseOnPointerMove predicate.
func (s *Scroller) NotifyPointerMove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointerQuiet = s.clock.Now().Add(pointerSettle)
}

func (s *Scroller) scheduleLocked() {
	s.cancelFrame = s.clock.Schedule(s.onFrame)
}

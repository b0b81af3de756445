package autoscroll

import (
	"math"
	"time"
)

// onFrame is the per-frame entry point. Observer callbacks are collected
// under the lock and invoked after it is released, so a callback may call
// Start, Stop or SetSpeed without deadlocking.
func (s *Scroller) onFrame(now time.Time) {
	var notify func()

	s.mu.Lock()
	if !s.running || s.suspended {
		s.mu.Unlock()
		return
	}
	// The scroll event our previous increment triggered has fired by now.
	s.selfScroll = false

	switch {
	case s.gatedLocked(now):
		// Paused or overscrolled: hold position, reset the pacing
		// clock so no elapsed time accumulates, keep the subscription.
		s.lastTick = time.Time{}
		s.setOffsetLocked(0)
		s.scheduleLocked()

	case s.lastTick.IsZero():
		// First frame after start or after a pause: adopt the
		// timestamp, move nothing.
		s.lastTick = now
		s.scheduleLocked()

	default:
		elapsed := now.Sub(s.lastTick)
		interval := s.tickInterval()
		if elapsed >= interval {
			notify = s.tickLocked(now)
		} else if s.cfg.Interpolate {
			s.interpolateLocked(elapsed, interval)
		}
		if s.running {
			s.scheduleLocked()
		}
	}
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// gatedLocked reports whether this frame must not move anything: elastic
// overscroll, an active touch, or a recent pointer move.
func (s *Scroller) gatedLocked(now time.Time) bool {
	pos := s.port.Position()
	if pos < 0 || pos > s.port.Max() {
		return true
	}
	if s.cfg.PauseOnTouch && s.touchActive {
		return true
	}
	if s.cfg.PauseOnPointerMove && now.Before(s.pointerQuiet) {
		return true
	}
	return false
}

// tickInterval derives the pacing interval from the fixed step size and the
// requested speed. Never called with a zero speed; Start refuses to run one.
func (s *Scroller) tickInterval() time.Duration {
	return time.Duration(s.cfg.Step / math.Abs(s.cfg.Speed) * float64(time.Second))
}

// tickLocked performs one real scroll increment, or applies the boundary
// policy instead when the position has reached an edge. It returns the
// observer callback to run once the lock is released, if any.
func (s *Scroller) tickLocked(now time.Time) func() {
	pos := s.port.Position()
	max := s.port.Max()

	if s.atBoundary(pos, max) {
		if s.cfg.Bounce {
			s.direction = -s.direction
			s.setOffsetLocked(0)
			// The reversed direction takes effect from the next
			// tick; this one moves nothing.
			s.lastTick = now
			if cb := s.cfg.OnDirectionChange; cb != nil {
				dir := directionName(s.cfg.Axis, s.direction)
				return func() { cb(dir) }
			}
			return nil
		}
		edge := edgeName(s.cfg.Axis, s.direction)
		s.stopLocked()
		if cb := s.cfg.OnBoundaryReached; cb != nil {
			return func() { cb(edge) }
		}
		return nil
	}

	s.port.ScrollBy(s.cfg.Step * float64(s.direction))
	s.selfScroll = true
	s.lastObserved = s.port.Position()
	s.setOffsetLocked(0)
	s.lastTick = now
	return nil
}

func (s *Scroller) atBoundary(pos, max float64) bool {
	if s.direction > 0 {
		return pos >= max-boundaryTolerance
	}
	return pos <= boundaryTolerance
}

// interpolateLocked computes the mid-interval visual offset. The negative
// sign pre-compensates: the content appears to lag behind where the next
// real step will land, and the offset resolves to exactly zero at the moment
// the step executes. Within one step of either boundary the offset is forced
// to zero instead, because the upcoming tick will be suppressed or
// redirected and interpolating toward it would just jitter.
func (s *Scroller) interpolateLocked(elapsed, interval time.Duration) {
	pos := s.port.Position()
	if pos <= s.cfg.Step || pos >= s.port.Max()-s.cfg.Step {
		s.setOffsetLocked(0)
		return
	}
	progress := float64(elapsed) / float64(interval)
	s.setOffsetLocked(-s.cfg.Step * progress * float64(s.direction))
}

func (s *Scroller) setOffsetLocked(off float64) {
	if s.cfg.Axis == Horizontal {
		s.sink.SetOffset(off, 0)
		return
	}
	s.sink.SetOffset(0, off)
}

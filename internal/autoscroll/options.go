package autoscroll

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/owen-vb/creep/internal/frameclock"
)

// Configuration errors, returned synchronously from New, Start and SetSpeed.
var (
	ErrMissingTarget    = errors.New("autoscroll: no scroll target")
	ErrMissingClock     = errors.New("autoscroll: no frame clock")
	ErrInvalidDirection = errors.New("autoscroll: invalid direction")
	ErrConflictingAxis  = errors.New("autoscroll: conflicting axis selection")
	ErrInvalidSpeed     = errors.New("autoscroll: speed is not a finite number")
)

// Options configures a Scroller. Start from DefaultOptions and set the
// collaborators plus whatever else differs; a zero Options value is a
// stopped, silent scroller with no defaults applied.
type Options struct {
	// Port is the scroll target. Required.
	Port ScrollPort
	// Offset receives the interpolation offset. When nil, Port is used if
	// it implements OffsetSink, otherwise the offset is discarded.
	Offset OffsetSink
	// Clock supplies frames and timers. Required.
	Clock frameclock.Clock

	// Speed is the travel rate in scroll units per second. The sign picks
	// the initial direction; zero means the scroller never runs.
	Speed float64
	// Step is the fixed increment applied per tick, in scroll units.
	// Non-positive values fall back to 1.
	Step float64
	// Interpolate enables the visual offset between ticks.
	Interpolate bool
	// Bounce reverses direction at boundaries instead of stopping.
	Bounce bool

	// Axis selects the driven axis. Two legacy spellings are also
	// accepted: Horizontal forces the horizontal axis, and Direction
	// ("up", "down", "left", "right") sets both the axis and the sign of
	// travel, overriding the sign of Speed. Contradictory spellings are a
	// configuration error.
	Axis       Axis
	Horizontal bool
	Direction  string

	// Autoplay starts the scroller inside New.
	Autoplay bool

	// PauseOnTouch suspends ticking while a touch is active.
	PauseOnTouch bool
	// PauseOnPointerMove suspends ticking briefly after each pointer move.
	PauseOnPointerMove bool

	// ResumeDelay is how long foreign scrolling must stay quiet before
	// ticking resumes. Only meaningful with ReconcileForeignScroll.
	ResumeDelay time.Duration
	// ReconcileForeignScroll enables foreign-scroll discrimination for
	// hosts whose scroll source keeps reporting momentum or elastic
	// movement after the user lets go.
	ReconcileForeignScroll bool

	// OnDirectionChange is called after a bounce with the new direction.
	OnDirectionChange func(Direction)
	// OnBoundaryReached is called when a boundary stops the scroller.
	OnBoundaryReached func(Edge)
}

// DefaultOptions returns the documented defaults: speed 30, step 1,
// interpolation on, autoplay on, stop at boundaries. Port and Clock must
// still be supplied by the caller.
func DefaultOptions() Options {
	return Options{
		Speed:       30,
		Step:        1,
		Interpolate: true,
		Autoplay:    true,
	}
}

// Config is the normalized, immutable form of Options. Copies returned by
// Scroller.Config reflect the live speed after SetSpeed.
type Config struct {
	Speed                  float64
	Step                   float64
	Interpolate            bool
	Bounce                 bool
	Axis                   Axis
	Autoplay               bool
	PauseOnTouch           bool
	PauseOnPointerMove     bool
	ResumeDelay            time.Duration
	ReconcileForeignScroll bool
	OnDirectionChange      func(Direction)
	OnBoundaryReached      func(Edge)
}

func (o Options) normalize() (Config, error) {
	cfg := Config{
		Speed:                  o.Speed,
		Step:                   o.Step,
		Interpolate:            o.Interpolate,
		Bounce:                 o.Bounce,
		Axis:                   o.Axis,
		Autoplay:               o.Autoplay,
		PauseOnTouch:           o.PauseOnTouch,
		PauseOnPointerMove:     o.PauseOnPointerMove,
		ResumeDelay:            o.ResumeDelay,
		ReconcileForeignScroll: o.ReconcileForeignScroll,
		OnDirectionChange:      o.OnDirectionChange,
		OnBoundaryReached:      o.OnBoundaryReached,
	}
	if math.IsNaN(cfg.Speed) || math.IsInf(cfg.Speed, 0) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidSpeed, cfg.Speed)
	}
	if cfg.Step <= 0 {
		cfg.Step = 1
	}
	if cfg.ResumeDelay < 0 {
		cfg.ResumeDelay = 0
	}
	if o.Horizontal {
		cfg.Axis = Horizontal
	}
	if o.Direction != "" {
		axis, sign, err := parseDirection(o.Direction)
		if err != nil {
			return Config{}, err
		}
		if o.Horizontal && axis == Vertical {
			return Config{}, fmt.Errorf("%w: horizontal with direction %q", ErrConflictingAxis, o.Direction)
		}
		cfg.Axis = axis
		cfg.Speed = math.Abs(cfg.Speed) * float64(sign)
	}
	return cfg, nil
}

func parseDirection(d string) (Axis, int, error) {
	switch Direction(d) {
	case DirUp:
		return Vertical, -1, nil
	case DirDown:
		return Vertical, 1, nil
	case DirLeft:
		return Horizontal, -1, nil
	case DirRight:
		return Horizontal, 1, nil
	}
	return Vertical, 0, fmt.Errorf("%w: %q", ErrInvalidDirection, d)
}

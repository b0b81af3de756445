package util

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration formats a duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatSpeed formats a signed scroll speed as a whole cells-per-second
// figure, e.g. "30 cells/s".
func FormatSpeed(speed float64) string {
	return fmt.Sprintf("%d cells/s", int(math.Abs(speed)+0.5))
}

// FormatPercent formats a [0, 1] fraction as a percentage.
func FormatPercent(frac float64) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return fmt.Sprintf("%d%%", int(frac*100+0.5))
}

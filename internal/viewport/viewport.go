// Package viewport renders scrollable text content and exposes it to the
// autoscroll loop as a scroll target. A terminal can only scroll whole
// cells, so positions are measured in rows (vertical) or columns
// (horizontal) and the interpolation offset carries the sub-cell remainder.
package viewport

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/owen-vb/creep/internal/autoscroll"
)

// Viewport holds text content and a window onto it. It implements
// autoscroll.ScrollPort and autoscroll.OffsetSink for one axis at a time.
type Viewport struct {
	lines    []string
	maxWidth int

	width  int
	height int
	axis   autoscroll.Axis

	pos  float64
	offX float64
	offY float64
}

// New creates a Viewport over content, scrolling along the given axis.
func New(content string, axis autoscroll.Axis) *Viewport {
	v := &Viewport{axis: axis}
	v.SetContent(content)
	return v
}

// SetContent replaces the text and rewinds to the start.
func (v *Viewport) SetContent(content string) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\t", "    ")
	v.lines = strings.Split(content, "\n")
	v.maxWidth = 0
	for _, l := range v.lines {
		if w := runewidth.StringWidth(l); w > v.maxWidth {
			v.maxWidth = w
		}
	}
	v.pos = 0
	v.offX = 0
	v.offY = 0
}

// SetSize sets the window dimensions in cells.
func (v *Viewport) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
	v.pos = clamp(v.pos, 0, v.Max())
}

// SetAxis switches the scrolled axis and rewinds to the start.
func (v *Viewport) SetAxis(axis autoscroll.Axis) {
	v.axis = axis
	v.pos = 0
	v.offX = 0
	v.offY = 0
}

// Axis returns the scrolled axis.
func (v *Viewport) Axis() autoscroll.Axis {
	return v.axis
}

// Position returns the current scroll position in cells along the axis.
func (v *Viewport) Position() float64 {
	return v.pos
}

// Max returns the largest valid scroll position.
func (v *Viewport) Max() float64 {
	var m int
	if v.axis == autoscroll.Horizontal {
		m = v.maxWidth - v.width
	} else {
		m = len(v.lines) - v.height
	}
	if m < 0 {
		m = 0
	}
	return float64(m)
}

// ScrollBy moves the position by delta, clamped to the valid range.
func (v *Viewport) ScrollBy(delta float64) {
	v.pos = clamp(v.pos+delta, 0, v.Max())
}

// SetPosition sets the position without clamping, so hosts can reproduce
// out-of-range (overscroll-like) states.
func (v *Viewport) SetPosition(pos float64) {
	v.pos = pos
}

// SetOffset stores the visual offset from the interpolation loop.
func (v *Viewport) SetOffset(x, y float64) {
	v.offX = x
	v.offY = y
}

// Effective returns the perceived position: the real position minus the
// visual offset. The offset lags the next step by construction, so this
// value rises continuously while ticks land on whole cells.
func (v *Viewport) Effective() float64 {
	if v.axis == autoscroll.Horizontal {
		return v.pos - v.offX
	}
	return v.pos - v.offY
}

// Percent returns the effective position as a fraction of Max in [0, 1].
func (v *Viewport) Percent() float64 {
	max := v.Max()
	if max <= 0 {
		return 0
	}
	return clamp(v.Effective()/max, 0, 1)
}

// View renders the visible window, height lines of width cells each. The
// perceived position is rounded to the nearest cell; the sub-cell remainder
// is the caller's to show (the scrollbar thumb does).
func (v *Viewport) View() string {
	if v.width < 1 || v.height < 1 {
		return ""
	}
	if v.axis == autoscroll.Horizontal {
		return v.viewHorizontal()
	}
	return v.viewVertical()
}

func (v *Viewport) viewVertical() string {
	start := int(math.Round(clamp(v.Effective(), 0, v.Max())))
	rows := make([]string, v.height)
	for i := range rows {
		idx := start + i
		if idx >= 0 && idx < len(v.lines) {
			rows[i] = runewidth.Truncate(v.lines[idx], v.width, "")
		}
	}
	return strings.Join(rows, "\n")
}

func (v *Viewport) viewHorizontal() string {
	start := int(math.Round(clamp(v.Effective(), 0, v.Max())))
	rows := make([]string, v.height)
	for i := range rows {
		if i < len(v.lines) {
			rows[i] = cutCols(v.lines[i], start, v.width)
		}
	}
	return strings.Join(rows, "\n")
}

// cutCols returns the slice of s covering display columns [start, start+width).
// A wide rune straddling either edge is replaced by a space so the window
// keeps its exact width.
func cutCols(s string, start, width int) string {
	if width < 1 {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		switch {
		case col+w <= start:
			// Entirely left of the window.
		case col < start:
			// Straddles the left edge.
			b.WriteString(strings.Repeat(" ", col+w-start))
		case col+w <= start+width:
			b.WriteRune(r)
		case col < start+width:
			// Straddles the right edge.
			b.WriteString(strings.Repeat(" ", start+width-col))
		default:
			return b.String()
		}
		col += w
	}
	return b.String()
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

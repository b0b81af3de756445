// Package autoscroll advances a viewport's scroll position in small fixed
// steps at a paced rate, while smoothing the motion between steps with a
// temporary visual offset. The scroll target moves only by whole steps, so
// the requested speed is realized by the interval between steps rather than
// by their size; the offset fills the visual gap and is always exactly zero
// at the instant a real step lands.
//
// One Scroller drives exactly one viewport/axis pair. Running two instances
// against the same viewport is the caller's mistake and is not guarded
// against.
package autoscroll

// Axis selects which scroll axis an instance drives. It is fixed for the
// lifetime of a Scroller.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// String returns "vertical" or "horizontal".
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Direction names the sign of travel along an axis.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Edge names a boundary of the scroll range.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

func directionName(axis Axis, sign int) Direction {
	if axis == Horizontal {
		if sign > 0 {
			return DirRight
		}
		return DirLeft
	}
	if sign > 0 {
		return DirDown
	}
	return DirUp
}

func edgeName(axis Axis, sign int) Edge {
	if axis == Horizontal {
		if sign > 0 {
			return EdgeRight
		}
		return EdgeLeft
	}
	if sign > 0 {
		return EdgeBottom
	}
	return EdgeTop
}

// ScrollPort exposes one axis of one scrollable viewport. Position is
// measured in scroll units (rows, columns, pixels); valid positions span
// [0, Max]. Positions outside that range are read as elastic overscroll.
type ScrollPort interface {
	Position() float64
	Max() float64
	ScrollBy(delta float64)
}

// OffsetSink receives the temporary visual offset applied between steps. The
// offset shifts what the viewer sees without touching ScrollPort accounting.
// Implementations must not call back into the Scroller.
type OffsetSink interface {
	SetOffset(x, y float64)
}

type noopSink struct{}

func (noopSink) SetOffset(x, y float64) {}

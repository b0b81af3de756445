package ui

import (
	"strings"

	"github.com/charmbracelet/harmonica"
)

// thumbSpring smooths the scrollbar thumb toward the viewport's effective
// position. The scroll core keeps its interpolation strictly linear; the
// spring is presentation only.
type thumbSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newThumbSpring(fps int) *thumbSpring {
	return &thumbSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

// step advances the spring one frame toward target and returns the new
// position.
func (t *thumbSpring) step(target float64) float64 {
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, target)
	return t.pos
}

// snap moves the thumb immediately, for jumps that should not ease.
func (t *thumbSpring) snap(target float64) {
	t.pos = target
	t.vel = 0
}

// renderScrollbar draws a vertical track of the given height with the thumb
// top at frac of its travel. The thumb lands on half-cell positions using
// the block-half glyphs, which is what makes the spring motion visible.
func renderScrollbar(height int, frac float64) string {
	if height < 1 {
		return ""
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	thumbH := height / 5
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH >= height {
		thumbH = height
	}

	// Thumb top in half-cell units.
	halves := int(frac*float64(height-thumbH)*2 + 0.5)
	start := halves / 2
	shifted := halves%2 == 1

	cells := make([]rune, height)
	for i := range cells {
		cells[i] = '░'
	}
	if shifted {
		cells[start] = '▄'
		for i := 1; i < thumbH; i++ {
			if start+i < height {
				cells[start+i] = '█'
			}
		}
		if start+thumbH < height {
			cells[start+thumbH] = '▀'
		}
	} else {
		for i := 0; i < thumbH; i++ {
			if start+i < height {
				cells[start+i] = '█'
			}
		}
	}

	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(c)
	}
	return b.String()
}

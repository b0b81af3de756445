package viewport

import (
	"fmt"
	"strings"
	"testing"

	"github.com/owen-vb/creep/internal/autoscroll"
)

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i)
	}
	return strings.Join(lines, "\n")
}

func TestMaxAccountsForWindowHeight(t *testing.T) {
	v := New(numberedLines(20), autoscroll.Vertical)
	v.SetSize(40, 5)
	if got := v.Max(); got != 15 {
		t.Fatalf("expected max 15, got %v", got)
	}
}

func TestMaxIsZeroWhenContentFits(t *testing.T) {
	v := New(numberedLines(3), autoscroll.Vertical)
	v.SetSize(40, 10)
	if got := v.Max(); got != 0 {
		t.Fatalf("expected max 0, got %v", got)
	}
}

func TestScrollByClampsToRange(t *testing.T) {
	v := New(numberedLines(20), autoscroll.Vertical)
	v.SetSize(40, 5)

	v.ScrollBy(100)
	if got := v.Position(); got != 15 {
		t.Fatalf("expected clamp to 15, got %v", got)
	}
	v.ScrollBy(-100)
	if got := v.Position(); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
}

func TestSetPositionIsUnclamped(t *testing.T) {
	v := New(numberedLines(20), autoscroll.Vertical)
	v.SetSize(40, 5)
	v.SetPosition(-4)
	if got := v.Position(); got != -4 {
		t.Fatalf("expected overscroll position to stick, got %v", got)
	}
}

func TestViewShowsWindowAtPosition(t *testing.T) {
	v := New(numberedLines(20), autoscroll.Vertical)
	v.SetSize(40, 3)
	v.ScrollBy(5)

	rows := strings.Split(v.View(), "\n")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0] != "line 05" || rows[2] != "line 07" {
		t.Fatalf("unexpected window %q", rows)
	}
}

func TestViewAppliesVisualOffset(t *testing.T) {
	v := New(numberedLines(20), autoscroll.Vertical)
	v.SetSize(40, 3)
	v.ScrollBy(5)

	// Offset lags the next step; past the halfway point the window rounds
	// to the next row.
	v.SetOffset(0, -0.6)
	if got := v.Effective(); got != 5.6 {
		t.Fatalf("expected effective 5.6, got %v", got)
	}
	rows := strings.Split(v.View(), "\n")
	if rows[0] != "line 06" {
		t.Fatalf("expected window rounded to row 6, got %q", rows[0])
	}
}

func TestPercentUsesEffectivePosition(t *testing.T) {
	v := New(numberedLines(25), autoscroll.Vertical)
	v.SetSize(40, 5) // max 20
	v.ScrollBy(10)
	if got := v.Percent(); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestHorizontalMaxAndView(t *testing.T) {
	content := "abcdefghij\n0123456789"
	v := New(content, autoscroll.Horizontal)
	v.SetSize(4, 2)
	if got := v.Max(); got != 6 {
		t.Fatalf("expected max 6, got %v", got)
	}

	v.ScrollBy(2)
	rows := strings.Split(v.View(), "\n")
	if rows[0] != "cdef" || rows[1] != "2345" {
		t.Fatalf("unexpected horizontal window %q", rows)
	}
}

func TestCutColsReplacesStraddlingWideRunes(t *testing.T) {
	// 日 and 本 are two columns wide each.
	got := cutCols("日本語abc", 1, 3)
	if got != " 本" {
		t.Fatalf("expected %q, got %q", " 本", got)
	}
}

func TestSetContentRewindsAndExpandsTabs(t *testing.T) {
	v := New(numberedLines(20), autoscroll.Vertical)
	v.SetSize(40, 5)
	v.ScrollBy(7)

	v.SetContent("\tx\r\ny")
	if got := v.Position(); got != 0 {
		t.Fatalf("expected rewind on new content, got %v", got)
	}
	rows := strings.Split(v.View(), "\n")
	if rows[0] != "    x" {
		t.Fatalf("expected tab expansion, got %q", rows[0])
	}
	if rows[1] != "y" {
		t.Fatalf("expected CRLF normalization, got %q", rows[1])
	}
}

func TestSetAxisRewinds(t *testing.T) {
	v := New(numberedLines(20), autoscroll.Vertical)
	v.SetSize(5, 5)
	v.ScrollBy(7)

	v.SetAxis(autoscroll.Horizontal)
	if got := v.Position(); got != 0 {
		t.Fatalf("expected rewind on axis change, got %v", got)
	}
	if got := v.Axis(); got != autoscroll.Horizontal {
		t.Fatalf("expected horizontal, got %v", got)
	}
}

package tui

import (
	"testing"

	"github.com/nmoreau/blockplan/internal/grid"
)

func newTestLayout(width, height int) *Layout {
	l := NewLayout()
	l.Resize(width, height)
	return l
}

func TestGridWidthPx(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		sidebar bool
		want    int
	}{
		{"sidebar visible", 120, true, 100},
		{"sidebar hidden", 120, false, 120},
		{"narrower than sidebar", 10, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLayout(tt.width, 40)
			if !tt.sidebar {
				l.ToggleSidebar()
			}
			if got := l.GridWidthPx(); got != tt.want {
				t.Errorf("GridWidthPx() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPointAt(t *testing.T) {
	l := newTestLayout(120, 40)

	tests := []struct {
		name  string
		cx    int
		cy    int
		wantX float64
		wantY float64
	}{
		{"header cell", 30, 1, 10, 1},
		{"first grid row", 26, 2, 6, 2},
		{"one row down", 26, 3, 6, 2 + 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := l.PointAt(tt.cx, tt.cy)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("PointAt(%d, %d) = (%v, %v), want (%v, %v)",
					tt.cx, tt.cy, p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPointAtScrolled(t *testing.T) {
	l := newTestLayout(120, 40)
	l.ScrollToMinute(6 * 60)

	p := l.PointAt(26, 2)
	wantY := l.HeaderHeightPx() + grid.MinutesToPixels(6*60)
	if p.Y != wantY {
		t.Errorf("PointAt scrolled Y = %v, want %v", p.Y, wantY)
	}
}

func TestMinuteAt(t *testing.T) {
	l := newTestLayout(120, 40)

	if _, ok := l.MinuteAt(0); ok {
		t.Error("MinuteAt(0) should fail on header row")
	}
	if min, ok := l.MinuteAt(2); !ok || min != 0 {
		t.Errorf("MinuteAt(2) = %d, %v, want 0, true", min, ok)
	}
	if min, ok := l.MinuteAt(4); !ok || min != 60 {
		t.Errorf("MinuteAt(4) = %d, %v, want 60, true", min, ok)
	}
}

func TestRowOfMinuteRoundTrip(t *testing.T) {
	l := newTestLayout(120, 40)
	l.ScrollToMinute(8 * 60)

	for cy := headerLines; cy < headerLines+l.GridRows(); cy++ {
		min, ok := l.MinuteAt(cy)
		if !ok {
			continue
		}
		row, ok := l.RowOfMinute(min)
		if !ok || row != cy {
			t.Fatalf("RowOfMinute(%d) = %d, %v, want %d, true", min, row, ok, cy)
		}
	}
}

func TestZoom(t *testing.T) {
	l := newTestLayout(120, 40)

	l.Zoom(15)
	if l.RowMinutes() != 15 {
		t.Errorf("RowMinutes() = %d after Zoom(15)", l.RowMinutes())
	}
	l.Zoom(45)
	if l.RowMinutes() != 15 {
		t.Errorf("invalid zoom changed granularity to %d", l.RowMinutes())
	}
	l.Zoom(60)
	if l.RowMinutes() != 60 {
		t.Errorf("RowMinutes() = %d after Zoom(60)", l.RowMinutes())
	}
}

func TestScrollClamped(t *testing.T) {
	l := newTestLayout(120, 40)

	l.Scroll(-100)
	if l.FirstVisibleMinute() != 0 {
		t.Errorf("scrolled above midnight: first visible %d", l.FirstVisibleMinute())
	}

	l.Scroll(10000)
	last := l.FirstVisibleMinute() + l.GridRows()*l.RowMinutes()
	if last != grid.MinutesPerDay {
		t.Errorf("bottom scroll shows through %d, want %d", last, grid.MinutesPerDay)
	}
}

func TestInSidebar(t *testing.T) {
	l := newTestLayout(120, 40)

	if !l.InSidebar(5) {
		t.Error("column 5 should be inside the sidebar")
	}
	if l.InSidebar(sidebarCells) {
		t.Error("first grid column misclassified as sidebar")
	}
	l.ToggleSidebar()
	if l.InSidebar(5) {
		t.Error("hidden sidebar should never claim a column")
	}
}

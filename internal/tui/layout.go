package tui

import (
	"github.com/nmoreau/blockplan/internal/drag"
	"github.com/nmoreau/blockplan/internal/grid"
)

// Layout constants, in terminal cells.
const (
	headerLines   = 2 // week label row + day name row
	gutterCells   = 6 // "HH:MM "
	sidebarCells  = 20
	footerLines   = 2
	defaultRowMin = 30
)

// Layout maps terminal cells to the engine's pixel space. Vertically one
// grid row covers rowMinutes minutes, and the engine's fixed scale makes a
// minute one pixel, so the mapping is arithmetic only. Horizontally a cell
// is a pixel.
type Layout struct {
	width      int
	height     int
	rowMinutes int
	scrollRow  int // first visible grid row, in rows from midnight
	sidebar    bool
}

// NewLayout creates an unmeasured layout; the first window-size message
// fills in the dimensions.
func NewLayout() *Layout {
	return &Layout{rowMinutes: defaultRowMin, sidebar: true}
}

// Resize records the terminal dimensions.
func (l *Layout) Resize(width, height int) {
	l.width = width
	l.height = height
}

// GridWidthPx implements grid.ViewportMetrics. The grid area is the
// terminal minus the sidebar; zero until the first resize arrives.
func (l *Layout) GridWidthPx() int {
	w := l.width - l.SidebarWidth()
	if w < 0 {
		return 0
	}
	return w
}

// SidebarWidth returns the sidebar width in cells, zero when hidden.
func (l *Layout) SidebarWidth() int {
	if !l.sidebar {
		return 0
	}
	return sidebarCells
}

// ToggleSidebar shows or hides the template palette.
func (l *Layout) ToggleSidebar() {
	l.sidebar = !l.sidebar
}

// SidebarVisible reports whether the palette is shown.
func (l *Layout) SidebarVisible() bool {
	return l.sidebar
}

// InSidebar reports whether a cell column falls inside the palette.
func (l *Layout) InSidebar(cx int) bool {
	return l.sidebar && cx < sidebarCells
}

// RowMinutes returns the minutes covered by one grid row.
func (l *Layout) RowMinutes() int {
	return l.rowMinutes
}

// Zoom switches the per-row granularity. Invalid values are ignored.
func (l *Layout) Zoom(rowMinutes int) {
	switch rowMinutes {
	case 15, 30, 60:
		l.rowMinutes = rowMinutes
		l.clampScroll()
	}
}

// GridRows returns the number of visible grid rows.
func (l *Layout) GridRows() int {
	rows := l.height - headerLines - footerLines
	if rows < 0 {
		return 0
	}
	return rows
}

// Scroll moves the visible window by delta rows, clamped to the day.
func (l *Layout) Scroll(delta int) {
	l.scrollRow += delta
	l.clampScroll()
}

// ScrollToMinute positions the window so the given minute is visible.
func (l *Layout) ScrollToMinute(min int) {
	l.scrollRow = min / l.rowMinutes
	l.clampScroll()
}

func (l *Layout) clampScroll() {
	max := grid.MinutesPerDay/l.rowMinutes - l.GridRows()
	if max < 0 {
		max = 0
	}
	l.scrollRow = grid.Clamp(l.scrollRow, 0, max)
}

// FirstVisibleMinute returns the minute at the top of the grid viewport.
func (l *Layout) FirstVisibleMinute() int {
	return l.scrollRow * l.rowMinutes
}

// HeaderHeightPx returns the header band height in engine pixels.
func (l *Layout) HeaderHeightPx() float64 {
	return float64(headerLines)
}

// PointAt converts a terminal cell position to an engine pixel position.
// Header cells land inside the header band; grid cells land on the minute
// their row starts at.
func (l *Layout) PointAt(cx, cy int) drag.Point {
	x := float64(cx - l.SidebarWidth())
	if cy < headerLines {
		return drag.Point{X: x, Y: float64(cy)}
	}
	min := (l.scrollRow + cy - headerLines) * l.rowMinutes
	return drag.Point{X: x, Y: l.HeaderHeightPx() + grid.MinutesToPixels(min)}
}

// MinuteAt returns the minute of day a grid row starts at, and false for
// header or out-of-day rows.
func (l *Layout) MinuteAt(cy int) (int, bool) {
	if cy < headerLines {
		return 0, false
	}
	min := (l.scrollRow + cy - headerLines) * l.rowMinutes
	if min >= grid.MinutesPerDay {
		return 0, false
	}
	return min, true
}

// RowOfMinute returns the terminal row a minute renders on, and false if
// it is scrolled out of view.
func (l *Layout) RowOfMinute(min int) (int, bool) {
	row := min/l.rowMinutes - l.scrollRow
	if row < 0 || row >= l.GridRows() {
		return 0, false
	}
	return headerLines + row, true
}

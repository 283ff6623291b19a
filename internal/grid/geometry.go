// Package grid provides the time-to-pixel geometry for the weekly grid.
//
// The vertical axis is fixed: a full day renders into GridHeightPx pixels,
// so PixelsPerMinute is a constant. The horizontal axis is measured from
// the viewport and may be temporarily unknown; an unmeasured geometry
// disables position resolution rather than producing wrong values.
package grid

import "math"

// Grid constants.
const (
	// MinutesPerDay is 24 hours * 60 minutes.
	MinutesPerDay = 1440
	// SnapQuantum is the smallest addressable time unit on the grid.
	SnapQuantum = 15
	// MinDuration is the floor for any block duration.
	MinDuration = 15
	// GridHeightPx is the fixed full-day pixel height of the grid.
	GridHeightPx = 1440
	// PixelsPerMinute is derived from the fixed grid height.
	PixelsPerMinute = float64(GridHeightPx) / MinutesPerDay

	// WeekColumns is the column count in week view.
	WeekColumns = 7
	// DayColumns is the column count in single-day view.
	DayColumns = 1
)

// Geometry is a snapshot of the grid's measured dimensions.
type Geometry struct {
	DayColumnWidthPx int
	GutterWidthPx    int
	Columns          int
}

// Measured returns true once the day-column width has been observed.
// A zero width means layout has not settled yet; callers must disable
// position-dependent interactions until this returns true.
func (g Geometry) Measured() bool {
	return g.DayColumnWidthPx > 0 && g.Columns > 0
}

// DayIndexFromX maps a horizontal pixel position to a day column index.
// The result is clamped into [0, Columns-1] for any input, including
// positions far outside the rendered bounds.
func (g Geometry) DayIndexFromX(x float64) int {
	if !g.Measured() {
		return 0
	}
	idx := int(math.Floor((x - float64(g.GutterWidthPx)) / float64(g.DayColumnWidthPx)))
	return Clamp(idx, 0, g.Columns-1)
}

// MinutesToPixels converts a minute offset to a vertical pixel offset.
func MinutesToPixels(mins int) float64 {
	return float64(mins) * PixelsPerMinute
}

// PixelsToMinutes converts a vertical pixel offset to raw minutes.
// The result is not snapped; use SnapMinutes for placement values.
func PixelsToMinutes(px float64) int {
	return int(px / PixelsPerMinute)
}

// SnapMinutes snaps raw minutes to the nearest quantum and clamps the
// result so a block of the given duration stays within the day.
func SnapMinutes(mins, durationMinutes int) int {
	snapped := ((mins + SnapQuantum/2) / SnapQuantum) * SnapQuantum
	maxStart := MinutesPerDay - durationMinutes
	if maxStart < 0 {
		maxStart = 0
	}
	return Clamp(snapped, 0, maxStart)
}

// SnapDelta snaps a minute delta to the nearest quantum, preserving sign.
func SnapDelta(mins int) int {
	if mins < 0 {
		return -SnapMinutes(-mins, 0)
	}
	return SnapMinutes(mins, 0)
}

// Clamp restricts v into [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ViewportMetrics reports the rendered width of the day-columns container,
// in pixels. The TUI implements it from window-size notifications; other
// hosts can implement it from whatever layout observation they have.
type ViewportMetrics interface {
	// GridWidthPx returns the current rendered width of the grid area,
	// including the hour-label gutter. Zero means not yet measured.
	GridWidthPx() int
}

// Provider derives Geometry from a ViewportMetrics source.
// Measurement is eventually consistent: each Geometry() call reads the
// latest observed width, and consumers tolerate an unmeasured result.
type Provider struct {
	metrics  ViewportMetrics
	columns  int
	gutterPx int
}

// NewProvider creates a geometry provider for the given column count.
func NewProvider(metrics ViewportMetrics, columns, gutterPx int) *Provider {
	if columns <= 0 {
		columns = WeekColumns
	}
	return &Provider{
		metrics:  metrics,
		columns:  columns,
		gutterPx: gutterPx,
	}
}

// SetColumns switches between week and day view column counts.
func (p *Provider) SetColumns(columns int) {
	if columns > 0 {
		p.columns = columns
	}
}

// Columns returns the configured column count.
func (p *Provider) Columns() int {
	return p.columns
}

// Geometry returns the current geometry snapshot.
func (p *Provider) Geometry() Geometry {
	width := 0
	if p.metrics != nil {
		width = p.metrics.GridWidthPx()
	}

	colWidth := 0
	if width > p.gutterPx {
		colWidth = (width - p.gutterPx) / p.columns
	}

	return Geometry{
		DayColumnWidthPx: colWidth,
		GutterWidthPx:    p.gutterPx,
		Columns:          p.columns,
	}
}

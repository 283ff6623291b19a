package drag

import (
	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/grid"
)

// Edge identifies which handle of a block is being dragged.
type Edge int

const (
	// EdgeTop adjusts the start while keeping the end fixed.
	EdgeTop Edge = iota
	// EdgeBottom adjusts the duration while keeping the start fixed.
	EdgeBottom
)

// Resize maps vertical pointer deltas on a block's edge handle to
// start/duration changes under clamps. Continuous updates stream through
// OnResize for live feedback; a single OnResizeEnd fires on release.
type Resize struct {
	active  bool
	edge    Edge
	blockID int64

	origStart    int
	origDuration int
	originY      float64

	lastStart    int
	lastDuration int

	onResize    func(id int64, startMinutes, durationMinutes int)
	onResizeEnd func(id int64)
}

// NewResize creates a resize interaction bound to the given callbacks.
func NewResize(cb Callbacks) *Resize {
	return &Resize{
		onResize:    cb.OnResize,
		onResizeEnd: cb.OnResizeEnd,
	}
}

// Active reports whether a resize gesture is in progress.
func (r *Resize) Active() bool {
	return r.active
}

// BlockID returns the block being resized, valid while Active.
func (r *Resize) BlockID() int64 {
	return r.blockID
}

// Begin starts a resize gesture on a block edge. A no-op if a gesture is
// already active or the block is not resizable.
func (r *Resize) Begin(b block.Block, edge Edge, at Point) bool {
	if r.active {
		return false
	}
	if !block.CapabilitiesFor(b).Resizable {
		return false
	}
	r.active = true
	r.edge = edge
	r.blockID = b.ID
	r.origStart = b.StartMinutes
	r.origDuration = b.DurationMinutes
	r.originY = at.Y
	r.lastStart = b.StartMinutes
	r.lastDuration = b.DurationMinutes
	return true
}

// PointerMove applies the vertical delta since Begin, clamps, and reports
// the new values. Clamps hold on every update: duration never drops below
// the floor and the block never extends past midnight.
func (r *Resize) PointerMove(at Point) {
	if !r.active {
		return
	}

	delta := grid.SnapDelta(grid.PixelsToMinutes(at.Y - r.originY))

	var newStart, newDuration int
	switch r.edge {
	case EdgeTop:
		end := r.origStart + r.origDuration
		newStart = grid.Clamp(r.origStart+delta, 0, end-grid.MinDuration)
		newDuration = end - newStart
	default:
		newStart = r.origStart
		newDuration = grid.Clamp(r.origDuration+delta, grid.MinDuration, grid.MinutesPerDay-r.origStart)
	}

	if newStart == r.lastStart && newDuration == r.lastDuration {
		return
	}
	r.lastStart = newStart
	r.lastDuration = newDuration

	if r.onResize != nil {
		r.onResize(r.blockID, newStart, newDuration)
	}
}

// PointerUp ends the gesture and fires the terminal signal exactly once.
func (r *Resize) PointerUp() {
	if !r.active {
		return
	}
	id := r.blockID
	r.reset()
	if r.onResizeEnd != nil {
		r.onResizeEnd(id)
	}
}

// Cancel aborts the gesture, restoring the original values through the
// live channel so any preview resets, without a terminal signal.
func (r *Resize) Cancel() {
	if !r.active {
		return
	}
	id := r.blockID
	origStart, origDuration := r.origStart, r.origDuration
	changed := r.lastStart != origStart || r.lastDuration != origDuration
	r.reset()
	if changed && r.onResize != nil {
		r.onResize(id, origStart, origDuration)
	}
}

func (r *Resize) reset() {
	r.active = false
	r.blockID = 0
	r.origStart = 0
	r.origDuration = 0
	r.originY = 0
	r.lastStart = 0
	r.lastDuration = 0
}

package drag

import "github.com/nmoreau/blockplan/internal/block"

// Reposition wraps an existing block so the whole block acts as a drag
// handle, sharing the Session and drop resolver with new-item placement.
// The live preview is rendered by the owner from Session.Preview; the
// only commit is a single terminal OnDragEnd on drop.
type Reposition struct {
	session   *Session
	pinnedDay int
	onDragEnd func(id int64, day, startMinutes int)
}

// NewReposition creates a reposition interaction on the shared session.
func NewReposition(session *Session, cb Callbacks) *Reposition {
	return &Reposition{
		session:   session,
		pinnedDay: -1,
		onDragEnd: cb.OnDragEnd,
	}
}

// PinDay constrains resolution to a single day index. Used by the
// single-day view, where cross-day dragging is meaningless.
func (r *Reposition) PinDay(day int) {
	r.pinnedDay = day
}

// UnpinDay restores cross-day dragging.
func (r *Reposition) UnpinDay() {
	r.pinnedDay = -1
}

// PinnedDay returns the pinned day index, or -1 when unpinned.
func (r *Reposition) PinnedDay() int {
	return r.pinnedDay
}

// Begin starts a reposition gesture. A no-op (returning false) if the
// block is not draggable or another gesture is already in progress.
func (r *Reposition) Begin(b block.Block, at Point, overlapMode bool) bool {
	if !block.CapabilitiesFor(b).Draggable {
		return false
	}
	return r.session.Begin(ItemFromBlock(b), at, overlapMode)
}

// Drop ends the gesture on pointer release. If the drag activated and the
// preview resolved onto the time grid, the terminal event fires with the
// final day index and start minute. Sub-threshold releases are clicks and
// fire nothing. Returns true if a commit was emitted.
func (r *Reposition) Drop() bool {
	pos, hasPos := r.session.Preview()
	item, wasDragging := r.session.PointerUp()

	if !wasDragging || !hasPos || item.Kind != ItemBlock {
		return false
	}
	if pos.Target != TargetTimeGrid {
		return false
	}
	if r.onDragEnd != nil {
		r.onDragEnd(item.BlockID, pos.Day, pos.StartMinutes)
	}
	return true
}

package drag

import "time"

// Callbacks is the commit contract a consumer of the interaction core
// must implement. The core never persists anything itself; every gesture
// terminates in exactly one of these calls (plus the continuous resize
// stream). Callback failures are the consumer's responsibility; the core
// does not catch them.
type Callbacks struct {
	// OnResize fires continuously during a resize gesture with clamped
	// values.
	OnResize func(id int64, startMinutes, durationMinutes int)
	// OnResizeEnd fires once on resize release, so an undo recorder can
	// capture a single terminal state.
	OnResizeEnd func(id int64)
	// OnDragEnd fires once on reposition release.
	OnDragEnd func(id int64, day, startMinutes int)
	// OnExternalDrop fires once when an external-bridge drag is
	// released over the grid.
	OnExternalDrop func(item Item, pos DropPosition, weekDates []time.Time)
}

package drag

import "time"

// GhostPreview is a renderable projection of an external drag over the
// time grid, derived purely from the current DropPosition.
type GhostPreview struct {
	Day             int
	StartMinutes    int
	DurationMinutes int
	Title           string
	Color           string
}

// Bridge adapts a drag originating outside the calendar (e.g. the
// sidebar palette) into the shared session and resolution pipeline. On
// drop it packages the payload and hands it to a single domain callback;
// it never commits to any block store itself.
type Bridge struct {
	session        *Session
	onExternalDrop func(item Item, pos DropPosition, weekDates []time.Time)
}

// NewBridge creates an external-drag bridge on the shared session.
func NewBridge(session *Session, cb Callbacks) *Bridge {
	return &Bridge{
		session:        session,
		onExternalDrop: cb.OnExternalDrop,
	}
}

// Begin starts an external drag from outside the grid. A no-op if a
// gesture is already in progress.
func (b *Bridge) Begin(item Item, at Point, overlapMode bool) bool {
	if item.Kind != ItemTemplate {
		return false
	}
	return b.session.Begin(item, at, overlapMode)
}

// Ghost derives the renderable preview for the current drag, valid only
// while dragging over the time grid.
func (b *Bridge) Ghost() (GhostPreview, bool) {
	item, ok := b.session.Item()
	if !ok || item.Kind != ItemTemplate {
		return GhostPreview{}, false
	}
	pos, ok := b.session.Preview()
	if !ok || pos.Target != TargetTimeGrid {
		return GhostPreview{}, false
	}
	return GhostPreview{
		Day:             pos.Day,
		StartMinutes:    pos.StartMinutes,
		DurationMinutes: pos.Duration(item),
		Title:           item.Title,
		Color:           item.Color,
	}, true
}

// Drop ends the gesture on pointer release. An activated drag with a
// resolved position emits the domain callback exactly once; sub-threshold
// releases fire nothing. Returns true if the drop event was emitted.
func (b *Bridge) Drop(weekDates []time.Time) bool {
	pos, hasPos := b.session.Preview()
	item, wasDragging := b.session.PointerUp()

	if !wasDragging || !hasPos || item.Kind != ItemTemplate {
		return false
	}
	if b.onExternalDrop != nil {
		b.onExternalDrop(item, pos, weekDates)
	}
	return true
}

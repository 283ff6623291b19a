package drag

import "math"

// DragThresholdPx is the minimum pointer displacement before a press
// becomes a drag rather than a click.
const DragThresholdPx = 4.0

// Phase represents the session's lifecycle state.
type Phase int

const (
	// PhaseIdle means no gesture is in progress.
	PhaseIdle Phase = iota
	// PhasePending means the pointer is down but below the drag threshold.
	// This path may still turn out to be a plain click.
	PhasePending
	// PhaseDragging means the threshold was crossed and a drag is active.
	PhaseDragging
)

// Point is a pointer position in grid pixel space.
type Point struct {
	X float64
	Y float64
}

func (p Point) distance(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Session is the single drag state machine shared by every interaction
// site (grid, resize handles, external bridge). Exactly one session
// exists per interaction surface; it is injected, never a global.
//
// No method returns an error: invalid transition requests are no-ops
// that leave the session untouched.
type Session struct {
	phase       Phase
	item        Item
	start       Point
	current     Point
	overlapMode bool
	preview     DropPosition
	hasPreview  bool
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Item returns the drag payload and whether a gesture is in progress.
func (s *Session) Item() (Item, bool) {
	if s.phase == PhaseIdle {
		return Item{}, false
	}
	return s.item, true
}

// PointerCurrent returns the last observed pointer position.
func (s *Session) PointerCurrent() Point {
	return s.current
}

// OverlapMode reports whether overlap placement is currently enabled.
func (s *Session) OverlapMode() bool {
	return s.overlapMode
}

// Begin starts a gesture. Only legal from Idle; otherwise it is a no-op
// and returns false. The modifier state at press time seeds the overlap
// flag, but the flag is re-snapshotted when the threshold is crossed.
func (s *Session) Begin(item Item, at Point, overlapMode bool) bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.phase = PhasePending
	s.item = item
	s.start = at
	s.current = at
	s.overlapMode = overlapMode
	s.hasPreview = false
	return true
}

// PointerMove feeds a pointer position into the session. While Pending it
// checks the activation threshold; users commonly press the modifier only
// after starting to move, so the overlap flag is re-snapshotted from the
// modifier state at the moment of activation rather than at press time.
// Returns true if the session is (now) dragging.
func (s *Session) PointerMove(at Point, overlapMode bool) bool {
	switch s.phase {
	case PhasePending:
		s.current = at
		if at.distance(s.start) >= DragThresholdPx {
			s.phase = PhaseDragging
			s.overlapMode = overlapMode
		}
		return s.phase == PhaseDragging
	case PhaseDragging:
		s.current = at
		s.overlapMode = overlapMode
		return true
	default:
		return false
	}
}

// SetOverlapMode live-updates the placement policy mid-drag, independent
// of the value captured at activation.
func (s *Session) SetOverlapMode(enabled bool) {
	if s.phase == PhaseIdle {
		return
	}
	s.overlapMode = enabled
}

// SetPreview stores the resolved preview position. The preview is always
// a snapped, clamped projection computed by the drop resolver; the
// session never derives it from raw pixels itself.
func (s *Session) SetPreview(pos DropPosition) {
	if s.phase != PhaseDragging {
		return
	}
	s.preview = pos
	s.hasPreview = true
}

// Preview returns the current preview position, if one has been resolved.
func (s *Session) Preview() (DropPosition, bool) {
	if s.phase != PhaseDragging || !s.hasPreview {
		return DropPosition{}, false
	}
	return s.preview, true
}

// PointerUp ends the gesture. A Pending session was a plain click: the
// session returns to Idle and reports wasDragging=false so the caller can
// run its click logic instead. A Dragging session hands its item back for
// the caller to commit.
func (s *Session) PointerUp() (item Item, wasDragging bool) {
	item = s.item
	wasDragging = s.phase == PhaseDragging
	s.reset()
	return item, wasDragging
}

// Cancel aborts any in-progress gesture with zero side effects.
// Legal (and a no-op) while Idle.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.phase = PhaseIdle
	s.item = Item{}
	s.start = Point{}
	s.current = Point{}
	s.overlapMode = false
	s.preview = DropPosition{}
	s.hasPreview = false
}

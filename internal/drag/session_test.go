package drag

import (
	"testing"

	"github.com/nmoreau/blockplan/internal/block"
)

func templateItem() Item {
	return ItemFromTemplate(block.TypeGoal, "Write report", "#89b4fa")
}

func TestSession_BeginOnlyFromIdle(t *testing.T) {
	s := NewSession()

	if !s.Begin(templateItem(), Point{X: 100, Y: 200}, false) {
		t.Fatal("Begin from Idle should succeed")
	}
	if s.Phase() != PhasePending {
		t.Fatalf("phase = %v, want Pending", s.Phase())
	}

	// Starting a second drag while one is pending is a no-op.
	if s.Begin(templateItem(), Point{X: 0, Y: 0}, true) {
		t.Error("Begin while Pending should be a no-op")
	}
	if s.PointerCurrent() != (Point{X: 100, Y: 200}) {
		t.Error("rejected Begin must leave the session untouched")
	}

	s.PointerMove(Point{X: 110, Y: 200}, false)
	if s.Phase() != PhaseDragging {
		t.Fatalf("phase = %v, want Dragging", s.Phase())
	}
	if s.Begin(templateItem(), Point{X: 0, Y: 0}, false) {
		t.Error("Begin while Dragging should be a no-op")
	}
}

func TestSession_ThresholdActivation(t *testing.T) {
	tests := []struct {
		name     string
		from     Point
		to       Point
		dragging bool
	}{
		{"no movement", Point{100, 200}, Point{100, 200}, false},
		{"below threshold", Point{100, 200}, Point{102, 202}, false},
		{"exactly at threshold", Point{100, 200}, Point{104, 200}, true},
		{"diagonal below", Point{100, 200}, Point{102, 203}, false},
		{"diagonal above", Point{100, 200}, Point{103, 203}, true},
		{"far", Point{100, 200}, Point{300, 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			s.Begin(templateItem(), tt.from, false)
			got := s.PointerMove(tt.to, false)
			if got != tt.dragging {
				t.Errorf("PointerMove -> dragging=%v, want %v", got, tt.dragging)
			}
		})
	}
}

func TestSession_SubThresholdReleaseIsClick(t *testing.T) {
	s := NewSession()
	s.Begin(templateItem(), Point{100, 200}, false)

	// A wandering path whose displacement from the press point never
	// reaches the threshold must never activate.
	path := []Point{{101, 200}, {102, 201}, {100, 202}, {98, 200}, {100, 199}}
	for _, p := range path {
		if s.PointerMove(p, false) {
			t.Fatalf("activated below threshold at %+v", p)
		}
	}

	_, wasDragging := s.PointerUp()
	if wasDragging {
		t.Error("sub-threshold release must report a click, not a drag")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("phase after release = %v, want Idle", s.Phase())
	}
}

func TestSession_PressReleaseSameFrame(t *testing.T) {
	s := NewSession()
	s.Begin(templateItem(), Point{100, 200}, false)
	_, wasDragging := s.PointerUp()
	if wasDragging {
		t.Error("press+release with no movement must be a click")
	}
}

func TestSession_OverlapModeSampling(t *testing.T) {
	// Pressed without the modifier, moved with it held: the activation
	// snapshot wins over the press-time value.
	s := NewSession()
	s.Begin(templateItem(), Point{100, 200}, false)
	s.PointerMove(Point{200, 200}, true)
	if !s.OverlapMode() {
		t.Error("overlap mode must be re-snapshotted at activation")
	}

	// And it keeps updating live during the drag.
	s.PointerMove(Point{210, 200}, false)
	if s.OverlapMode() {
		t.Error("overlap mode must track the modifier mid-drag")
	}
	s.SetOverlapMode(true)
	if !s.OverlapMode() {
		t.Error("SetOverlapMode must update an active session")
	}
}

func TestSession_SetOverlapModeWhileIdle(t *testing.T) {
	s := NewSession()
	s.SetOverlapMode(true)
	if s.OverlapMode() {
		t.Error("SetOverlapMode while Idle should be a no-op")
	}
}

func TestSession_CancelFromEveryPhase(t *testing.T) {
	s := NewSession()

	// Idle: no-op.
	s.Cancel()
	if s.Phase() != PhaseIdle {
		t.Fatal("cancel from Idle should stay Idle")
	}

	// Pending.
	s.Begin(templateItem(), Point{100, 200}, false)
	s.Cancel()
	if s.Phase() != PhaseIdle {
		t.Fatal("cancel from Pending should return to Idle")
	}

	// Dragging, with a preview set: cancellation is total.
	s.Begin(templateItem(), Point{100, 200}, false)
	s.PointerMove(Point{200, 300}, false)
	s.SetPreview(DropPosition{Target: TargetTimeGrid, Day: 2, StartMinutes: 600})
	s.Cancel()
	if s.Phase() != PhaseIdle {
		t.Fatal("cancel from Dragging should return to Idle")
	}
	if _, ok := s.Preview(); ok {
		t.Error("cancel must clear the preview")
	}
	if _, ok := s.Item(); ok {
		t.Error("cancel must clear the item")
	}
}

func TestSession_PreviewOnlyWhileDragging(t *testing.T) {
	s := NewSession()
	s.SetPreview(DropPosition{Day: 3})
	if _, ok := s.Preview(); ok {
		t.Error("preview must not be settable while Idle")
	}

	s.Begin(templateItem(), Point{0, 0}, false)
	s.SetPreview(DropPosition{Day: 3})
	if _, ok := s.Preview(); ok {
		t.Error("preview must not be settable while Pending")
	}

	s.PointerMove(Point{50, 50}, false)
	s.SetPreview(DropPosition{Target: TargetTimeGrid, Day: 3, StartMinutes: 420})
	pos, ok := s.Preview()
	if !ok || pos.Day != 3 || pos.StartMinutes != 420 {
		t.Errorf("preview = %+v ok=%v, want day 3 at 420", pos, ok)
	}
}

func TestSession_PointerUpHandsBackItem(t *testing.T) {
	s := NewSession()
	item := templateItem()
	s.Begin(item, Point{0, 0}, false)
	s.PointerMove(Point{100, 100}, false)

	got, wasDragging := s.PointerUp()
	if !wasDragging {
		t.Fatal("activated drag must report wasDragging")
	}
	if got.Title != item.Title || got.Kind != ItemTemplate {
		t.Errorf("returned item = %+v, want the begun payload", got)
	}
	if s.Phase() != PhaseIdle {
		t.Error("session must be Idle after release")
	}
}

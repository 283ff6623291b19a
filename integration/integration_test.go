package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/db"
	"github.com/nmoreau/blockplan/internal/drag"
	"github.com/nmoreau/blockplan/internal/grid"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testWeekStart() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
}

// createBlock is a helper to create and insert a block.
func createBlock(t *testing.T, repo *db.SQLite, title string, typ block.Type, day, start, duration int) *block.Block {
	t.Helper()
	b, err := block.New(title, typ, day, start, duration)
	if err != nil {
		t.Fatalf("failed to create block: %v", err)
	}
	b.WeekStart = testWeekStart()
	if err := repo.CreateBlock(context.Background(), b); err != nil {
		t.Fatalf("failed to insert block: %v", err)
	}
	return b
}

func TestCreateAndListWeek(t *testing.T) {
	repo := openRepo(t)

	b := createBlock(t, repo, "Integration test block", block.TypeGoal, 0, 480, 60)
	if b.ID == 0 {
		t.Error("expected block ID to be set after insert")
	}

	blocks, err := repo.ListWeek(context.Background(), testWeekStart())
	if err != nil {
		t.Fatalf("failed to list week: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("listed %d blocks, want 1", len(blocks))
	}
	got := blocks[0]
	if got.Title != "Integration test block" {
		t.Errorf("Title: got %q, want %q", got.Title, "Integration test block")
	}
	if got.Type != block.TypeGoal {
		t.Errorf("Type: got %q, want %q", got.Type, block.TypeGoal)
	}
	if got.StartMinutes != 480 || got.DurationMinutes != 60 {
		t.Errorf("placement: got (%d, %d), want (480, 60)", got.StartMinutes, got.DurationMinutes)
	}
}

// TestDragPipelinePersists drives the full gesture pipeline against a real
// database: session activation, drop resolution, commit, persistence.
func TestDragPipelinePersists(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	b := createBlock(t, repo, "Movable", block.TypeTask, 0, 540, 60)

	geom := grid.Geometry{DayColumnWidthPx: 100, GutterWidthPx: 40, Columns: 7}
	session := drag.NewSession()

	var committed []block.TimeUpdate
	cb := drag.Callbacks{
		OnDragEnd: func(id int64, day, start int) {
			committed = append(committed, block.TimeUpdate{ID: id, Day: day, StartMinutes: start, DurationMinutes: b.DurationMinutes})
			if err := repo.UpdateBlockTimes(ctx, id, day, start, b.DurationMinutes); err != nil {
				t.Fatalf("persisting drop: %v", err)
			}
		},
	}
	reposition := drag.NewReposition(session, cb)

	opts := drag.ResolveOptions{HeaderHeightPx: 24, PinnedDay: -1}
	pressAt := drag.Point{X: 40 + 50, Y: 24 + grid.MinutesToPixels(550)}
	if !reposition.Begin(*b, pressAt, false) {
		t.Fatal("Begin refused a draggable block")
	}

	// Move across the threshold into day 3 at minute 600.
	moveAt := drag.Point{X: 40 + 3*100 + 50, Y: 24 + grid.MinutesToPixels(600)}
	session.PointerMove(moveAt, false)
	item, _ := session.Item()
	if pos, ok := drag.Resolve(item, moveAt, geom, false, opts, []block.Block{*b}); ok {
		session.SetPreview(pos)
	}

	if !reposition.Drop() {
		t.Fatal("Drop did not commit")
	}
	if len(committed) != 1 {
		t.Fatalf("committed %d times, want exactly 1", len(committed))
	}

	blocks, err := repo.ListWeek(ctx, testWeekStart())
	if err != nil {
		t.Fatalf("failed to list week: %v", err)
	}
	if blocks[0].Day != 3 || blocks[0].StartMinutes != 600 {
		t.Errorf("persisted placement (%d, %d), want (3, 600)", blocks[0].Day, blocks[0].StartMinutes)
	}
}

// TestUndoRoundTrip moves two blocks, then restores the original layout in
// one batch write, the way the planner's undo does.
func TestUndoRoundTrip(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	a := createBlock(t, repo, "First", block.TypeGoal, 0, 480, 90)
	b := createBlock(t, repo, "Second", block.TypeTask, 1, 600, 45)

	snapshot := []block.TimeUpdate{
		{ID: a.ID, Day: a.Day, StartMinutes: a.StartMinutes, DurationMinutes: a.DurationMinutes},
		{ID: b.ID, Day: b.Day, StartMinutes: b.StartMinutes, DurationMinutes: b.DurationMinutes},
	}

	if err := repo.UpdateBlockTimes(ctx, a.ID, 4, 720, 90); err != nil {
		t.Fatalf("moving first block: %v", err)
	}
	if err := repo.UpdateBlockTimes(ctx, b.ID, 5, 300, 45); err != nil {
		t.Fatalf("moving second block: %v", err)
	}

	if err := repo.BatchUpdateTimes(ctx, testWeekStart(), snapshot); err != nil {
		t.Fatalf("restoring snapshot: %v", err)
	}

	blocks, err := repo.ListWeek(ctx, testWeekStart())
	if err != nil {
		t.Fatalf("failed to list week: %v", err)
	}
	for _, got := range blocks {
		var want block.TimeUpdate
		for _, s := range snapshot {
			if s.ID == got.ID {
				want = s
			}
		}
		if got.Day != want.Day || got.StartMinutes != want.StartMinutes {
			t.Errorf("block #%d at (%d, %d), want (%d, %d)",
				got.ID, got.Day, got.StartMinutes, want.Day, want.StartMinutes)
		}
	}
}

func TestGoalAssignment(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	goal := createBlock(t, repo, "Ship v2", block.TypeGoal, 2, 540, 120)
	task := createBlock(t, repo, "Write tests", block.TypeTask, 0, 600, 45)

	if err := repo.AssignToGoal(ctx, task.ID, goal.ID); err != nil {
		t.Fatalf("assigning to goal: %v", err)
	}

	// Assigning to a non-goal must fail.
	if err := repo.AssignToGoal(ctx, goal.ID, task.ID); err == nil {
		t.Error("assignment to a non-goal block should fail")
	}

	blocks, err := repo.ListWeek(ctx, testWeekStart())
	if err != nil {
		t.Fatalf("failed to list week: %v", err)
	}
	for _, got := range blocks {
		if got.ID != task.ID {
			continue
		}
		if got.GoalID == nil || *got.GoalID != goal.ID {
			t.Errorf("GoalID = %v, want %d", got.GoalID, goal.ID)
		}
	}
}

func TestDeleteBlock(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	b := createBlock(t, repo, "Short lived", block.TypeEssential, 6, 420, 30)

	if err := repo.DeleteBlock(ctx, b.ID); err != nil {
		t.Fatalf("deleting block: %v", err)
	}
	if err := repo.UpdateBlockTimes(ctx, b.ID, 0, 480, 30); !errors.Is(err, block.ErrBlockNotFound) {
		t.Errorf("update after delete: err = %v, want ErrBlockNotFound", err)
	}
}

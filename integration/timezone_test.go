package integration

import (
	"context"
	"testing"
	"time"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/dateutil"
)

// TestWeekBoundaryLocalTime verifies that a block stored for the current
// local week is returned when listing with a locally-computed week anchor.
// Dates round-trip through the database as date strings, so location
// mismatches between writer and reader must not lose blocks.
func TestWeekBoundaryLocalTime(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	now := time.Now()
	weekStart := dateutil.WeekStart(now, time.Monday)
	day := dateutil.DayIndex(now, weekStart)
	if day < 0 {
		t.Fatalf("today %v not inside its own week anchored at %v", now, weekStart)
	}

	b, err := block.New("Today's block", block.TypeTask, day, 600, 60)
	if err != nil {
		t.Fatalf("failed to create block: %v", err)
	}
	b.WeekStart = weekStart
	if err := repo.CreateBlock(ctx, b); err != nil {
		t.Fatalf("failed to insert block: %v", err)
	}

	blocks, err := repo.ListWeek(ctx, weekStart)
	if err != nil {
		t.Fatalf("failed to list week: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("listed %d blocks for the current week, want 1", len(blocks))
	}

	got := blocks[0]
	if got.Day != day {
		t.Errorf("Day = %d, want %d", got.Day, day)
	}
	if !dateutil.TruncateToDay(got.WeekStart).Equal(dateutil.TruncateToDay(weekStart)) {
		t.Errorf("WeekStart round-trip: got %v, want %v", got.WeekStart, weekStart)
	}
	if got.Date().Weekday() != now.Weekday() {
		t.Errorf("Date() weekday = %v, want %v", got.Date().Weekday(), now.Weekday())
	}
}

// TestWeekBoundaryUTCAnchor verifies that listing with a UTC-midnight
// anchor finds blocks written with a local-midnight anchor for the same
// calendar date.
func TestWeekBoundaryUTCAnchor(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	local := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	utc := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	b, err := block.New("Anchor probe", block.TypeGoal, 0, 480, 60)
	if err != nil {
		t.Fatalf("failed to create block: %v", err)
	}
	b.WeekStart = local
	if err := repo.CreateBlock(ctx, b); err != nil {
		t.Fatalf("failed to insert block: %v", err)
	}

	blocks, err := repo.ListWeek(ctx, utc)
	if err != nil {
		t.Fatalf("failed to list week: %v", err)
	}
	if len(blocks) != 1 {
		t.Errorf("UTC anchor listed %d blocks, want 1", len(blocks))
	}
}

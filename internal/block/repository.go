package block

import (
	"context"
	"time"
)

// TimeUpdate carries a single block's new placement for batch persistence.
type TimeUpdate struct {
	ID              int64
	Day             int
	StartMinutes    int
	DurationMinutes int
}

// Repository defines the persistence interface for blocks.
// This layer owns all mutation; the interaction core only proposes values.
type Repository interface {
	CreateBlock(ctx context.Context, b *Block) error
	ListWeek(ctx context.Context, weekStart time.Time) ([]Block, error)
	UpdateBlockTimes(ctx context.Context, id int64, day, startMinutes, durationMinutes int) error
	BatchUpdateTimes(ctx context.Context, weekStart time.Time, updates []TimeUpdate) error
	AssignToGoal(ctx context.Context, id int64, goalID int64) error
	DeleteBlock(ctx context.Context, id int64) error
	Close() error
}

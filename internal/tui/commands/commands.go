// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoreau/blockplan/internal/block"
)

// WeekLoadedMsg is sent when week data is loaded.
type WeekLoadedMsg struct {
	WeekStart time.Time
	Blocks    []block.Block
}

// BlockCreatedMsg is sent after a dropped template becomes a stored block.
type BlockCreatedMsg struct {
	Block block.Block
}

// TimesSavedMsg is sent after a move or resize is persisted.
type TimesSavedMsg struct {
	ID int64
}

// SnapshotRestoredMsg is sent after an undo batch write.
type SnapshotRestoredMsg struct{}

// BlockDeletedMsg is sent after a block is removed.
type BlockDeletedMsg struct {
	ID int64
}

// GoalAssignedMsg is sent after a block is linked to a goal.
type GoalAssignedMsg struct {
	ID     int64
	GoalID int64
}

// CopiedMsg is sent after the week plan lands on the clipboard.
type CopiedMsg struct{}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadWeek loads all blocks for the given week.
func LoadWeek(repo block.Repository, weekStart time.Time) tea.Cmd {
	return func() tea.Msg {
		blocks, err := repo.ListWeek(context.Background(), weekStart)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return WeekLoadedMsg{WeekStart: weekStart, Blocks: blocks}
	}
}

// CreateBlock persists a new block and reports it back with its ID.
func CreateBlock(repo block.Repository, b *block.Block) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateBlock(context.Background(), b); err != nil {
			return ErrMsg{Err: fmt.Errorf("creating block: %w", err)}
		}
		return BlockCreatedMsg{Block: *b}
	}
}

// SaveBlockTimes persists a single block's new placement.
func SaveBlockTimes(repo block.Repository, id int64, day, startMinutes, durationMinutes int) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateBlockTimes(context.Background(), id, day, startMinutes, durationMinutes); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving block: %w", err)}
		}
		return TimesSavedMsg{ID: id}
	}
}

// RestoreSnapshot writes a whole-week placement snapshot back in one
// transaction.
func RestoreSnapshot(repo block.Repository, weekStart time.Time, updates []block.TimeUpdate) tea.Cmd {
	return func() tea.Msg {
		if err := repo.BatchUpdateTimes(context.Background(), weekStart, updates); err != nil {
			return ErrMsg{Err: fmt.Errorf("restoring snapshot: %w", err)}
		}
		return SnapshotRestoredMsg{}
	}
}

// DeleteBlock removes a block.
func DeleteBlock(repo block.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteBlock(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting block: %w", err)}
		}
		return BlockDeletedMsg{ID: id}
	}
}

// AssignToGoal links a block to a goal block.
func AssignToGoal(repo block.Repository, id, goalID int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.AssignToGoal(context.Background(), id, goalID); err != nil {
			return ErrMsg{Err: fmt.Errorf("assigning to goal: %w", err)}
		}
		return GoalAssignedMsg{ID: id, GoalID: goalID}
	}
}

// CopyToClipboard writes the rendered week plan to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{}
	}
}

// ClearStatusAfter schedules the status line to clear.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

package tui

import "github.com/nmoreau/blockplan/internal/block"

// undoLimit caps the history depth; older snapshots fall off the bottom.
const undoLimit = 50

// UndoStack records immutable placement snapshots of the visible week.
// A snapshot is pushed before each committed gesture, so undo restores
// the exact pre-gesture layout in one batch write.
type UndoStack struct {
	snapshots [][]block.TimeUpdate
}

// Push captures the current placement of every block in the week.
func (u *UndoStack) Push(blocks []block.Block) {
	snap := make([]block.TimeUpdate, len(blocks))
	for i, b := range blocks {
		snap[i] = block.TimeUpdate{
			ID:              b.ID,
			Day:             b.Day,
			StartMinutes:    b.StartMinutes,
			DurationMinutes: b.DurationMinutes,
		}
	}
	u.snapshots = append(u.snapshots, snap)
	if len(u.snapshots) > undoLimit {
		u.snapshots = u.snapshots[1:]
	}
}

// Pop returns the most recent snapshot, or false when the history is
// empty.
func (u *UndoStack) Pop() ([]block.TimeUpdate, bool) {
	if len(u.snapshots) == 0 {
		return nil, false
	}
	snap := u.snapshots[len(u.snapshots)-1]
	u.snapshots = u.snapshots[:len(u.snapshots)-1]
	return snap, true
}

// Len returns the history depth.
func (u *UndoStack) Len() int {
	return len(u.snapshots)
}

// Clear drops all history, used when switching weeks.
func (u *UndoStack) Clear() {
	u.snapshots = nil
}

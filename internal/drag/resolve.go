package drag

import (
	"sort"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/grid"
)

// Target classifies what the pointer is over when a position resolves.
type Target int

const (
	// TargetTimeGrid is a droppable time slot on a day column.
	TargetTimeGrid Target = iota
	// TargetDayHeader is the header band above the time grid, used for
	// deadline-style drops with no time component.
	TargetDayHeader
	// TargetBlock is an existing block's rendered rectangle. Assignment
	// semantics are owned by the schedule layer; this core only
	// identifies the hit.
	TargetBlock
)

// DropPosition is a resolved placement proposal. It is always derived by
// Resolve, never hand-constructed by callers except as a default value.
type DropPosition struct {
	Target       Target
	Day          int
	StartMinutes int
	// AdaptiveDuration is the gap-filled duration when truncation
	// applied; zero means "use the item's default".
	AdaptiveDuration int
	// BlockID identifies the hit block for TargetBlock.
	BlockID int64
}

// Duration returns the effective duration for the item, preferring the
// adaptive value when present.
func (p DropPosition) Duration(item Item) int {
	if p.AdaptiveDuration > 0 {
		return p.AdaptiveDuration
	}
	return item.DurationMinutes
}

// ResolveOptions carries the owner-side context for drop resolution.
type ResolveOptions struct {
	// HeaderHeightPx is the height of the day-header band; pointer
	// positions with Y below this resolve to TargetDayHeader.
	HeaderHeightPx float64
	// PinnedDay, when >= 0, bypasses DayIndexFromX and pins the result
	// to a single column (single-day view).
	PinnedDay int
}

// Resolve converts a live pointer position into a snapped, clamped
// calendar placement. It is a pure function: it never mutates blocks and
// only returns a proposal for the caller to commit.
//
// Returns ok=false when the geometry is unmeasured; callers must treat
// that as "gesture disabled", not as an error.
func Resolve(item Item, at Point, geom grid.Geometry, overlapMode bool, opts ResolveOptions, dayBlocks []block.Block) (DropPosition, bool) {
	if !geom.Measured() {
		return DropPosition{}, false
	}

	day := opts.PinnedDay
	if day < 0 || day >= geom.Columns {
		day = geom.DayIndexFromX(at.X)
	}

	if at.Y < opts.HeaderHeightPx {
		return DropPosition{Target: TargetDayHeader, Day: day}, true
	}

	rawMinutes := grid.PixelsToMinutes(at.Y - opts.HeaderHeightPx)

	// Pointer over another block's rectangle resolves to that block.
	// The dragged block itself never counts as a hit target.
	for _, b := range dayBlocks {
		if item.Kind == ItemBlock && b.ID == item.BlockID {
			continue
		}
		if b.Day == day && rawMinutes >= b.StartMinutes && rawMinutes < b.EndMinutes() {
			return DropPosition{Target: TargetBlock, Day: day, BlockID: b.ID}, true
		}
	}

	start := grid.SnapMinutes(rawMinutes, item.DurationMinutes)

	pos := DropPosition{
		Target:       TargetTimeGrid,
		Day:          day,
		StartMinutes: start,
	}

	// Gap-filling: unless overlap mode is enabled, truncate the default
	// duration to end exactly at the next block's start when that block
	// falls inside the default duration window.
	if !overlapMode {
		if next, ok := nextBlockStart(item, day, start, dayBlocks); ok && next < start+item.DurationMinutes {
			adaptive := next - start
			if adaptive < grid.MinDuration {
				adaptive = grid.MinDuration
			}
			pos.AdaptiveDuration = adaptive
		}
	}

	return pos, true
}

// nextBlockStart finds the earliest block start at or after the proposed
// start on the target day, excluding the dragged block itself.
func nextBlockStart(item Item, day, start int, dayBlocks []block.Block) (int, bool) {
	starts := make([]int, 0, len(dayBlocks))
	for _, b := range dayBlocks {
		if b.Day != day {
			continue
		}
		if item.Kind == ItemBlock && b.ID == item.BlockID {
			continue
		}
		if b.StartMinutes >= start {
			starts = append(starts, b.StartMinutes)
		}
	}
	if len(starts) == 0 {
		return 0, false
	}
	sort.Ints(starts)
	return starts[0], true
}

// Package drag implements the pointer-driven interaction core: the drag
// session state machine, drop resolution, and the resize, reposition and
// external-bridge interactions built on top of it.
package drag

import "github.com/nmoreau/blockplan/internal/block"

// ItemKind distinguishes the two drag payload sources.
type ItemKind int

const (
	// ItemBlock references an existing block being repositioned.
	ItemBlock ItemKind = iota
	// ItemTemplate is a new-block candidate from outside the grid.
	ItemTemplate
)

// Item is the payload of an active or pending drag.
type Item struct {
	Kind            ItemKind
	BlockID         int64 // set for ItemBlock
	SourceDay       int   // original day index for ItemBlock
	Type            block.Type
	Title           string
	Color           string
	DurationMinutes int // existing duration, or the type default for templates
}

// ItemFromBlock wraps an existing block for repositioning.
// Duration is preserved, not recomputed.
func ItemFromBlock(b block.Block) Item {
	return Item{
		Kind:            ItemBlock,
		BlockID:         b.ID,
		SourceDay:       b.Day,
		Type:            b.Type,
		Title:           b.Title,
		Color:           b.Color,
		DurationMinutes: b.DurationMinutes,
	}
}

// ItemFromTemplate creates a new-block candidate with the type's default
// duration.
func ItemFromTemplate(typ block.Type, title, color string) Item {
	return Item{
		Kind:            ItemTemplate,
		Type:            typ,
		Title:           title,
		Color:           color,
		DurationMinutes: block.DefaultDuration(typ),
	}
}

// Package block defines the core domain types for blockplan.
package block

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidType      = errors.New("type must be 'goal', 'task' or 'essential'")
	ErrInvalidDay       = errors.New("day index must be between 0 and 6")
	ErrInvalidStart     = errors.New("start must be between 00:00 and 24:00")
	ErrDurationTooShort = errors.New("duration must be at least 15 minutes")
	ErrPastMidnight     = errors.New("block cannot extend past midnight")
)

// Domain errors.
var (
	ErrBlockNotFound = errors.New("block not found")
)

// Time constants shared across the scheduling core.
const (
	MinutesPerDay = 1440
	// MinDuration is the floor for any block duration.
	MinDuration = 15
	DaysPerWeek = 7
)

// Type represents the kind of scheduled block.
type Type string

const (
	TypeGoal      Type = "goal"
	TypeTask      Type = "task"
	TypeEssential Type = "essential"
)

// Valid returns true if the type is a known value.
func (t Type) Valid() bool {
	switch t {
	case TypeGoal, TypeTask, TypeEssential:
		return true
	default:
		return false
	}
}

// DefaultDuration returns the default duration in minutes for a block type.
// Used when a new block is dropped onto the grid without an explicit length.
func DefaultDuration(t Type) int {
	switch t {
	case TypeGoal:
		return 60
	case TypeEssential:
		return 45
	default:
		return 30
	}
}

// Block represents a scheduled interval on the weekly grid.
type Block struct {
	ID              int64
	Title           string
	Type            Type
	Day             int // 0=first day of the configured week, 6=last
	StartMinutes    int // minutes from midnight
	DurationMinutes int
	Color           string // hex color, empty means type default
	GoalID          *int64 // optional linkage: task blocks assigned to a goal
	WeekStart       time.Time
	CreatedAt       time.Time
}

// New creates a Block with validation.
func New(title string, typ Type, day, startMinutes, durationMinutes int) (*Block, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !typ.Valid() {
		return nil, ErrInvalidType
	}
	if day < 0 || day >= DaysPerWeek {
		return nil, ErrInvalidDay
	}
	if startMinutes < 0 || startMinutes >= MinutesPerDay {
		return nil, ErrInvalidStart
	}
	if durationMinutes < MinDuration {
		return nil, ErrDurationTooShort
	}
	if startMinutes+durationMinutes > MinutesPerDay {
		return nil, ErrPastMidnight
	}

	return &Block{
		Title:           title,
		Type:            typ,
		Day:             day,
		StartMinutes:    startMinutes,
		DurationMinutes: durationMinutes,
		CreatedAt:       time.Now(),
	}, nil
}

// EndMinutes returns the minute of day at which the block ends (exclusive).
func (b Block) EndMinutes() int {
	return b.StartMinutes + b.DurationMinutes
}

// Overlaps returns true if two blocks on the same day share any minutes.
func (b Block) Overlaps(o Block) bool {
	if b.Day != o.Day {
		return false
	}
	return b.StartMinutes < o.EndMinutes() && o.StartMinutes < b.EndMinutes()
}

// Date returns the calendar date the block falls on, anchored to WeekStart.
func (b Block) Date() time.Time {
	return b.WeekStart.AddDate(0, 0, b.Day)
}

// TimeRange returns the block's interval as "HH:MM-HH:MM".
func (b Block) TimeRange() string {
	return fmt.Sprintf("%s-%s", MinutesToTime(b.StartMinutes), MinutesToTime(b.EndMinutes()))
}

// MinutesToTime converts minutes since midnight to HH:MM format.
func MinutesToTime(mins int) string {
	h := mins / 60
	m := mins % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// TimeToMinutes converts an HH:MM string to minutes since midnight.
// Malformed input yields 0.
func TimeToMinutes(s string) int {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0
	}
	if h < 0 || m < 0 {
		return 0
	}
	return h*60 + m
}

// Capabilities describes which interactions a rendered block supports.
// Resolved once at construction so interaction sites don't branch on
// callback presence.
type Capabilities struct {
	Draggable bool
	Resizable bool
}

// CapabilitiesFor returns the interaction capabilities for a block.
// Essentials keep their routine length and are not resizable.
func CapabilitiesFor(b Block) Capabilities {
	return Capabilities{
		Draggable: true,
		Resizable: b.Type != TypeEssential,
	}
}

// WeekDates returns the ordered 7-day sequence starting at weekStart.
func WeekDates(weekStart time.Time) []time.Time {
	dates := make([]time.Time, DaysPerWeek)
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i)
	}
	return dates
}

// OnDay filters blocks to those on the given day index, preserving order.
func OnDay(blocks []Block, day int) []Block {
	var result []Block
	for _, b := range blocks {
		if b.Day == day {
			result = append(result, b)
		}
	}
	return result
}

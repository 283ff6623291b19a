package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmoreau/blockplan/internal/block"
)

// promptDays maps day tokens to week column indices relative to a
// Monday-anchored week; the model remaps them for other anchors.
var promptDays = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

// parseQuickAdd parses the quick-add prompt syntax:
//
//	<title> [@day] [HH:MM] [<n>m|<n>h] [goal|task|essential]
//
// e.g. "Write report @tue 10:00 90m goal". Unrecognized tokens stay in
// the title. Missing fields fall back to Monday, 09:00 and the type's
// default duration.
func parseQuickAdd(input string) (*block.Block, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, block.ErrEmptyTitle
	}

	typ := block.TypeTask
	day := 0
	start := 9 * 60
	duration := 0
	var title []string

	for _, f := range fields {
		lower := strings.ToLower(f)
		switch {
		case strings.HasPrefix(f, "@"):
			d, ok := promptDays[strings.ToLower(strings.TrimPrefix(f, "@"))]
			if !ok {
				return nil, fmt.Errorf("unknown day %q", f)
			}
			day = d
		case isClock(f):
			start = block.TimeToMinutes(f)
		case isDuration(lower):
			d, err := parseDuration(lower)
			if err != nil {
				return nil, err
			}
			duration = d
		case lower == "goal" || lower == "task" || lower == "essential":
			typ = block.Type(lower)
		default:
			title = append(title, f)
		}
	}

	if duration == 0 {
		duration = block.DefaultDuration(typ)
	}

	return block.New(strings.Join(title, " "), typ, day, start, duration)
}

// isClock reports whether a token looks like HH:MM.
func isClock(s string) bool {
	if len(s) < 4 || len(s) > 5 {
		return false
	}
	colon := strings.IndexByte(s, ':')
	if colon < 1 || colon > 2 {
		return false
	}
	h, err := strconv.Atoi(s[:colon])
	if err != nil {
		return false
	}
	m, err := strconv.Atoi(s[colon+1:])
	if err != nil {
		return false
	}
	return h >= 0 && h < 24 && m >= 0 && m < 60 && len(s[colon+1:]) == 2
}

// isDuration reports whether a token looks like "90m" or "2h".
func isDuration(s string) bool {
	if len(s) < 2 {
		return false
	}
	unit := s[len(s)-1]
	if unit != 'm' && unit != 'h' {
		return false
	}
	_, err := strconv.Atoi(s[:len(s)-1])
	return err == nil
}

func parseDuration(s string) (int, error) {
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if s[len(s)-1] == 'h' {
		n *= 60
	}
	if n < block.MinDuration {
		return 0, block.ErrDurationTooShort
	}
	return n, nil
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/nmoreau/blockplan/internal/block"
)

// Stats holds aggregated statistics for a set of blocks.
type Stats struct {
	GoalMinutes      int
	TaskMinutes      int
	EssentialMinutes int
	TotalBlocks      int
	DayStats         map[int]DayStats
}

// DayStats holds statistics for a single day.
type DayStats struct {
	GoalMinutes int
	Blocks      int
}

// TotalMinutes returns the scheduled minutes across all block types.
func (s Stats) TotalMinutes() int {
	return s.GoalMinutes + s.TaskMinutes + s.EssentialMinutes
}

// GoalPercent returns the percentage of time spent on goal blocks.
func (s Stats) GoalPercent() int {
	if s.TotalMinutes() == 0 {
		return 0
	}
	return (s.GoalMinutes * 100) / s.TotalMinutes()
}

// BestDay returns the day index with the most goal minutes, -1 when
// nothing is scheduled.
func (s Stats) BestDay() (day, minutes int) {
	day = -1
	for d, ds := range s.DayStats {
		if ds.GoalMinutes > minutes {
			minutes = ds.GoalMinutes
			day = d
		}
	}
	return day, minutes
}

// AccumulateStats updates stats based on a block.
func AccumulateStats(stats *Stats, b block.Block) {
	stats.TotalBlocks++

	if stats.DayStats == nil {
		stats.DayStats = make(map[int]DayStats)
	}
	ds := stats.DayStats[b.Day]
	ds.Blocks++

	switch b.Type {
	case block.TypeGoal:
		stats.GoalMinutes += b.DurationMinutes
		ds.GoalMinutes += b.DurationMinutes
	case block.TypeEssential:
		stats.EssentialMinutes += b.DurationMinutes
	default:
		stats.TaskMinutes += b.DurationMinutes
	}
	stats.DayStats[b.Day] = ds
}

// PrintBlockRow prints a single block row with consistent formatting.
func PrintBlockRow(b block.Block, maxTitleWidth int) {
	title := b.Title
	if len(title) > maxTitleWidth {
		title = title[:maxTitleWidth-3] + "..."
	}

	var typeTag string
	switch b.Type {
	case block.TypeGoal:
		typeTag = formatGoal("[G]")
	case block.TypeEssential:
		typeTag = formatEssential("[E]")
	default:
		typeTag = formatTask("[T]")
	}

	duration := formatMuted(FormatDuration(b.DurationMinutes))
	fmt.Printf("    #%-4d %s  %s  %-*s  %s\n",
		b.ID, b.TimeRange(), typeTag, maxTitleWidth, title, duration)
}

// PrintStats prints the stats summary lines for a week.
func PrintStats(stats Stats, weekStart time.Time) {
	goalStr := formatGoal(fmt.Sprintf("Goals: %s (%d%%)", FormatDuration(stats.GoalMinutes), stats.GoalPercent()))
	taskStr := formatTask(fmt.Sprintf("Tasks: %s", FormatDuration(stats.TaskMinutes)))
	essStr := formatEssential(fmt.Sprintf("Essentials: %s", FormatDuration(stats.EssentialMinutes)))

	fmt.Printf("  %s  |  %s  |  %s  |  Blocks: %d\n", goalStr, taskStr, essStr, stats.TotalBlocks)

	if bestDay, bestMinutes := stats.BestDay(); bestDay >= 0 {
		fmt.Printf("  Best day: %s (%s on goals)\n",
			weekStart.AddDate(0, 0, bestDay).Format("Monday"), formatStats(FormatDuration(bestMinutes)))
	}
}

// FlowBar creates an ASCII progress bar showing goal time percentage.
func FlowBar(goalMinutes, totalMinutes, width int) string {
	if totalMinutes == 0 {
		return "[" + strings.Repeat("░", width) + "] (0% on goals)"
	}

	pct := (goalMinutes * 100) / totalMinutes
	filled := (goalMinutes * width) / totalMinutes

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatGoal(bar), formatStats(fmt.Sprintf("(%d%% on goals)", pct)))
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}


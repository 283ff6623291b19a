package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/dateutil"
)

func (a *App) weekCmd() *cobra.Command {
	var week string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show a week's blocks",
		Long: `Display a week's scheduled blocks with stats.

Shows every block for the week grouped by day, with the time spent
per block type and an ASCII focus bar.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			weekStart, err := a.resolveWeekStart(week)
			if err != nil {
				return err
			}

			blocks, err := a.repo.ListWeek(context.Background(), weekStart)
			if err != nil {
				return fmt.Errorf("listing week: %w", err)
			}

			if len(blocks) == 0 {
				fmt.Println("No blocks scheduled for this week.")
				return nil
			}

			header := fmt.Sprintf("WEEK: %s", dateutil.WeekLabel(weekStart))
			fmt.Printf("\n  %s\n", formatHeader(header))
			fmt.Println(strings.Repeat("─", 74))

			maxTitleWidth := termWidth() - 36
			if maxTitleWidth < 20 {
				maxTitleWidth = 20
			}
			printWeekTable(blocks, weekStart, maxTitleWidth)

			var stats Stats
			for _, b := range blocks {
				AccumulateStats(&stats, b)
			}

			fmt.Println(strings.Repeat("─", 74))
			PrintStats(stats, weekStart)
			if stats.TotalMinutes() > 0 {
				fmt.Printf("  Flow: %s\n", FlowBar(stats.GoalMinutes, stats.TotalMinutes(), 20))
			}

			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week start date (YYYY-MM-DD, default: this week)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printWeekTable(blocks []block.Block, weekStart time.Time, maxTitleWidth int) {
	currentDay := -1
	for _, b := range blocks {
		if b.Day != currentDay {
			if currentDay != -1 {
				fmt.Println()
			}
			dayHeader := weekStart.AddDate(0, 0, b.Day).Format("Mon Jan 2")
			fmt.Printf("  %s\n", formatHeader(dayHeader))
			currentDay = b.Day
		}
		PrintBlockRow(b, maxTitleWidth)
	}
}

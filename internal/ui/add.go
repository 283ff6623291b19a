package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmoreau/blockplan/internal/block"
	"github.com/nmoreau/blockplan/internal/dateutil"
)

func (a *App) addCmd() *cobra.Command {
	var (
		day      string
		start    string
		duration int
		typ      string
		week     string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a block to the week",
		Long: `Add a block to the current week without opening the planner.

Example:
  blockplan add "Write documentation" --day=tue --start=09:00 --duration=90 --type=goal`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			weekStart, err := a.resolveWeekStart(week)
			if err != nil {
				return err
			}

			weekday, err := dateutil.ParseWeekday(day)
			if err != nil {
				return err
			}
			dayIdx := (int(weekday) - int(weekStart.Weekday()) + 7) % 7

			b, err := block.New(args[0], block.Type(typ), dayIdx, block.TimeToMinutes(start), duration)
			if err != nil {
				return err
			}
			b.WeekStart = weekStart

			if err := a.repo.CreateBlock(context.Background(), b); err != nil {
				return fmt.Errorf("creating block: %w", err)
			}

			fmt.Printf("Created block #%d: %s [%s] %s %s\n",
				b.ID,
				b.Title,
				b.Type,
				b.Date().Format("2006-01-02"),
				b.TimeRange(),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "monday", "Day of week (monday..sunday)")
	cmd.Flags().StringVar(&start, "start", "09:00", "Start time (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 60, "Duration in minutes")
	cmd.Flags().StringVar(&typ, "type", "task", "Block type: goal, task or essential")
	cmd.Flags().StringVar(&week, "week", "", "Week start date (YYYY-MM-DD, default: this week)")

	return cmd
}

// resolveWeekStart turns the --week flag into a normalized week anchor.
func (a *App) resolveWeekStart(flag string) (time.Time, error) {
	anchor, err := dateutil.ParseWeekday(a.config.Schedule.WeekStart)
	if err != nil {
		anchor = time.Monday
	}
	if flag == "" {
		return dateutil.WeekStart(time.Now(), anchor), nil
	}
	date, err := dateutil.ParseDate(flag)
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.WeekStart(date, anchor), nil
}

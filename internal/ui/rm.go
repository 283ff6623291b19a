package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nmoreau/blockplan/internal/block"
)

func (a *App) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a block",
		Long: `Remove a block by its ID.

Block IDs are shown in the week listing:
  blockplan week`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid block id %q", args[0])
			}

			if err := a.repo.DeleteBlock(context.Background(), id); err != nil {
				if errors.Is(err, block.ErrBlockNotFound) {
					return fmt.Errorf("block #%d not found", id)
				}
				return fmt.Errorf("removing block: %w", err)
			}

			fmt.Printf("Removed block #%d\n", id)
			return nil
		},
	}
}

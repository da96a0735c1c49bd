package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/offcon/crono/internal/cli/formatter"
)

func newTreeCmd(app *App) *cobra.Command {
	var planID int64

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a plan's activity tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := app.Projections.Tree(cmd.Context(), planID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderWBSTree(roots))
			return nil
		},
	}

	cmd.Flags().Int64Var(&planID, "plan", 0, "plan id")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var planID int64

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a plan's activity summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := time.Now().UTC().Truncate(24 * time.Hour)
			stats, err := app.Projections.Stats(cmd.Context(), planID, today)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("plan stats", formatter.RenderPlanStats(stats)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&planID, "plan", 0, "plan id")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/offcon/crono/internal/cli/formatter"
	"github.com/offcon/crono/internal/domain"
)

func newTemplateCmd(app *App) *cobra.Command {
	var planID int64
	var startStr string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Seed a plan with the standard fabrication schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now().UTC().Truncate(24 * time.Hour)
			if startStr != "" {
				t, err := domain.ParseDate(startStr)
				if err != nil {
					return fmt.Errorf("--start must be YYYY-MM-DD: %w", err)
				}
				start = *t
			}
			stats, err := app.Templates.ApplyStandard(cmd.Context(), planID, start)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderReconcileStats(stats))
			return nil
		},
	}

	cmd.Flags().Int64Var(&planID, "plan", 0, "plan id")
	cmd.Flags().StringVar(&startStr, "start", "", "schedule start date (default today)")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

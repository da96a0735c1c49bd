package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/offcon/crono/internal/cli/formatter"
	"github.com/offcon/crono/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage plans (service orders)",
	}
	cmd.AddCommand(newPlanListCmd(app), newPlanCreateCmd(app), newPlanDeleteCmd(app))
	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("(no plans)"))
				return nil
			}
			for _, p := range plans {
				due := domain.FormatDate(p.DueAt)
				if due == "" {
					due = "—"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %s\n",
					formatter.StyleDim.Render(fmt.Sprintf("#%d", p.ID)),
					formatter.StyleBold.Render(p.Number),
					p.ClientName,
					formatter.Dim("due "+due))
			}
			return nil
		},
	}
}

func newPlanCreateCmd(app *App) *cobra.Command {
	var number, client string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Plan{Number: number, ClientName: client}
			if err := app.Plans.Create(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created plan #%d %s\n", p.ID, p.Number)
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "service-order number")
	cmd.Flags().StringVar(&client, "client", "", "client name")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	var planID int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a plan and its whole activity tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.Delete(cmd.Context(), planID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted plan #%d\n", planID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&planID, "plan", 0, "plan id")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

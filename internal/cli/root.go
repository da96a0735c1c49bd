// Package cli wires the cobra command tree for the crono binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/offcon/crono/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans       service.PlanService
	Reconciler  service.ReconcileService
	Import      service.ImportService
	Projections service.ProjectionService
	Templates   service.TemplateService
	ServeFn     ServeFunc
}

// NewRootCmd creates the top-level "crono" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "crono",
		Short:         "Work-breakdown schedule manager for fabrication orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newPlanCmd(app),
		newImportCmd(app),
		newTemplateCmd(app),
		newTreeCmd(app),
		newStatsCmd(app),
	)

	return root
}

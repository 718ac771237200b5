package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wbsimport/internal/importer"
	"github.com/alexanderramin/wbsimport/internal/service"
)

// App holds the services used by CLI commands.
type App struct {
	Import    service.ImportService
	Schedules service.ScheduleService
	// Registry parses files for "import --into"; the built-in parsers are
	// used when nil.
	Registry *importer.Registry
	// Serve runs the HTTP API until ctx is cancelled. The serve command is
	// omitted when nil.
	Serve func(ctx context.Context) error
}

// NewRootCmd creates the top-level "wbsimport" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "wbsimport",
		Short:         "Import project schedules and their WBS hierarchies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(app),
		newScheduleCmd(app),
		newWBSCmd(app),
	)
	if app.Serve != nil {
		root.AddCommand(newServeCmd(app))
	}
	return root
}

func (a *App) registry() *importer.Registry {
	if a.Registry == nil {
		a.Registry = importer.NewRegistry()
	}
	return a.Registry
}

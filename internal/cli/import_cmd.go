package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/wbsimport/internal/cli/formatter"
	"github.com/alexanderramin/wbsimport/internal/service"
)

func newImportCmd(app *App) *cobra.Command {
	var into string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a schedule file (.xer, .json or .xlsx)",
		Long: "Import every project in FILE. Each project becomes a new schedule unless\n" +
			"--into names an existing schedule to add the WBS nodes to.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				result *service.ImportResult
				err    error
			)
			if into == "" {
				result, err = app.Import.ImportFile(ctx, args[0])
			} else {
				var scheduleID string
				if scheduleID, err = resolveScheduleID(ctx, app, into); err != nil {
					return err
				}
				result, err = importIntoSchedule(cmd, app, scheduleID, args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(result.Projects))
			return nil
		},
	}

	addIntoFlag(cmd.Flags(), &into)
	return cmd
}

func addIntoFlag(fs *pflag.FlagSet, into *string) {
	fs.StringVar(into, "into", "", "Existing schedule ID (or unique prefix) to import into")
}

func importIntoSchedule(cmd *cobra.Command, app *App, scheduleID, path string) (*service.ImportResult, error) {
	src, err := app.registry().ParseFile(path)
	if err != nil {
		return nil, err
	}
	return app.Import.ImportIntoSchedule(cmd.Context(), scheduleID, src)
}

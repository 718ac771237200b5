package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wbsimport/internal/cli/formatter"
)

func newWBSCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wbs",
		Short: "Inspect WBS hierarchies",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "tree SCHEDULE_ID",
		Short: "Print the WBS tree of a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveScheduleID(ctx, app, args[0])
			if err != nil {
				return err
			}
			sch, roots, err := app.Schedules.Tree(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWBSTree(sch, roots))
			return nil
		},
	})
	return cmd
}

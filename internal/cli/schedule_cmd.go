package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wbsimport/internal/cli/formatter"
	"github.com/alexanderramin/wbsimport/internal/service"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Inspect imported schedules",
	}
	cmd.AddCommand(
		newScheduleListCmd(app),
		newScheduleShowCmd(app),
	)
	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := app.Schedules.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScheduleList(schedules))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive schedules")
	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one schedule",
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
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSchedule(sch, countNodes(roots)))
			return nil
		},
	}
}

func countNodes(nodes []*service.WBSTreeNode) int {
	n := len(nodes)
	for _, node := range nodes {
		n += countNodes(node.Children)
	}
	return n
}

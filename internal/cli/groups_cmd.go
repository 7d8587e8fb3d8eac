package cli

import (
	"fmt"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGroupsCmd(a *App) *cobra.Command {
	var from string
	var days int

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Batch reminders that share a task and due day",
		Long: "Group incomplete reminders with the same title, type and due day so the cows\n" +
			"can be handled together. --days 0 groups every reminder regardless of date.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			start, err := parseDay(from, now)
			if err != nil {
				return err
			}
			groups, err := a.Reminders.Groups(cmd.Context(), app.GroupsRequest{From: start, Days: days})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGroups(groups, now))
			return nil
		},
	}
	windowFlags(cmd.Flags(), &from, &days, 7, "Days ahead to include (0 for every reminder)")
	return cmd
}

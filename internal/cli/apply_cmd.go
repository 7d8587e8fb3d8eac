package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newApplyCmd(a *App) *cobra.Command {
	var cow, protocol, start string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Start a synchronization protocol on a cow",
		Long: "Schedule one reminder per protocol step, due on the start date plus the step's day.\n" +
			"Sick, retired and pregnant cows are refused, as is a cow whose current protocol\n" +
			"still has reminders due today or later.",
		Example: "  herdsync apply --cow Daisy --protocol ovsynch --start 2024-06-02",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			startDate, err := parseDay(start, now)
			if err != nil {
				return err
			}

			var resp *app.ApplyProtocolResponse
			err = a.mutate(cmd.Context(), func(ctx context.Context) error {
				cowID, err := resolveCowID(ctx, a, cow)
				if err != nil {
					return err
				}
				resp, err = a.Apply.ApplyProtocol(ctx, app.ApplyProtocolRequest{
					CowID:      cowID,
					ProtocolID: protocol,
					StartDate:  startDate,
					Today:      &now,
				})
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatApplyResult(resp.Cow, resp.Protocol, resp.Reminders, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&cow, "cow", "", "Cow name or id")
	cmd.Flags().StringVar(&protocol, "protocol", "", "Protocol id")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("cow")
	_ = cmd.MarkFlagRequired("protocol")
	return cmd
}

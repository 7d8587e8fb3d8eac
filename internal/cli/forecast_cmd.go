package cli

import (
	"fmt"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newForecastCmd(a *App) *cobra.Command {
	var from string
	var days int

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast workers, technicians and doctors needed per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDay(from, a.now())
			if err != nil {
				return err
			}
			window := days
			if !cmd.Flags().Changed("days") {
				window = a.ForecastDays
			}
			forecast, err := a.Forecast.Forecast(cmd.Context(), app.ForecastRequest{From: start, Days: window})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatForecast(forecast))
			return nil
		},
	}
	windowFlags(cmd.Flags(), &from, &days, 0, "Window length in days (default from config)")
	return cmd
}

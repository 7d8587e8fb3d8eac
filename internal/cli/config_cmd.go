package cli

import (
	"fmt"

	"github.com/alexanderramin/herdsync/internal/cli/formatter"
	"github.com/alexanderramin/herdsync/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if app.Config != nil {
				cfg = *app.Config
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			source := "defaults (no config file)"
			if app.ConfigFound {
				source = app.ConfigPath
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("# "+source))
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

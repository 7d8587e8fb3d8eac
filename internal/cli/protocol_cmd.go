package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/herdsync/internal/catalog"
	"github.com/alexanderramin/herdsync/internal/cli/formatter"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/spf13/cobra"
)

func newProtocolCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "protocol",
		Aliases: []string{"protocols"},
		Short:   "Browse and manage synchronization protocols",
	}
	cmd.AddCommand(
		newProtocolListCmd(app),
		newProtocolShowCmd(app),
		newProtocolCreateCmd(app),
		newProtocolValidateCmd(),
		newProtocolWorkforceCmd(app),
		newProtocolRemoveCmd(app),
	)
	return cmd
}

func newProtocolListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List protocols",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			protocols, err := app.Protocols.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProtocolList(protocols))
			return nil
		},
	}
}

func newProtocolShowCmd(app *App) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a protocol's steps and staffing ratios",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Protocols.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asYAML {
				data, err := catalog.MarshalProtocol(p)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProtocol(p))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the protocol as a YAML file")
	return cmd
}

func newProtocolCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create FILE",
		Short: "Create a custom protocol from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := catalog.LoadFile(args[0])
			if err != nil {
				return describeValidation(err)
			}
			err = app.mutate(cmd.Context(), func(ctx context.Context) error {
				return app.Protocols.CreateCustom(ctx, p)
			})
			if err != nil {
				return describeValidation(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created protocol %s (%s) with %d steps\n", p.Name, p.ID, len(p.Steps))
			return nil
		},
	}
}

func newProtocolValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check protocol YAML files without storing them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				p, err := catalog.LoadFile(path)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, describeValidation(err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %d steps)\n", path, p.Name, len(p.Steps))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d protocol files are invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newProtocolWorkforceCmd(app *App) *cobra.Command {
	var worker, technician, doctor float64

	cmd := &cobra.Command{
		Use:   "workforce ID STEP",
		Short: "Set how many cows one worker, technician or doctor covers for a step",
		Long: "Set the capacity ratios of one step of a custom protocol. A ratio of 20 means one\n" +
			"staff member per 20 cows; 0 leaves the role unstaffed for the step.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio := domain.CapacityRatio{
				WorkerPerSubjects:     worker,
				TechnicianPerSubjects: technician,
				DoctorPerSubjects:     doctor,
			}
			var updated *domain.Protocol
			err := app.mutate(cmd.Context(), func(ctx context.Context) error {
				var err error
				updated, err = app.Protocols.ConfigureWorkforce(ctx, args[0], map[string]domain.CapacityRatio{args[1]: ratio})
				return err
			})
			if err != nil {
				return describeValidation(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProtocol(updated))
			return nil
		},
	}
	cmd.Flags().Float64Var(&worker, "worker", 0, "Cows per worker")
	cmd.Flags().Float64Var(&technician, "technician", 0, "Cows per technician")
	cmd.Flags().Float64Var(&doctor, "doctor", 0, "Cows per doctor")
	return cmd
}

func newProtocolRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a custom protocol",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.mutate(cmd.Context(), func(ctx context.Context) error {
				return app.Protocols.Delete(ctx, args[0])
			})
			if err != nil {
				return describeValidation(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed protocol %s\n", args[0])
			return nil
		},
	}
}

// describeValidation spreads the problems of a validation error over
// separate lines.
func describeValidation(err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Problems) < 2 {
		return err
	}
	msg := fmt.Sprintf("invalid %s:", verr.Subject)
	for _, p := range verr.Problems {
		msg += "\n  - " + p
	}
	return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
}

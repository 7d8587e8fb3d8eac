package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/herdsync/internal/cli/formatter"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/spf13/cobra"
)

func newCowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cow",
		Short: "Manage the herd",
	}
	cmd.AddCommand(
		newCowAddCmd(app),
		newCowListCmd(app),
		newCowShowCmd(app),
		newCowStatusCmd(app),
		newCowRemoveCmd(app),
	)
	return cmd
}

func newCowAddCmd(app *App) *cobra.Command {
	var breed, status, notes string
	var age int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Register a cow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Cow{
				Name:        strings.TrimSpace(args[0]),
				Breed:       strings.TrimSpace(breed),
				Age:         age,
				Status:      domain.CowStatus(strings.ToLower(status)),
				HealthNotes: notes,
			}
			err := app.mutate(cmd.Context(), func(ctx context.Context) error {
				return app.Cows.Add(ctx, c)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added cow %s [%s]\n", c.Name, formatter.ShortID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&breed, "breed", "", "Breed")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&status, "status", string(domain.CowActive), "Status (active, pregnant, sick, retired)")
	cmd.Flags().StringVar(&notes, "notes", "", "Health notes")
	_ = cmd.MarkFlagRequired("breed")
	return cmd
}

func newCowListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List cows",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cows, err := app.Cows.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCowList(cows))
			return nil
		},
	}
}

func newCowShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show COW",
		Short: "Show a cow and its reminders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveCowID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Cows.GetByID(ctx, id)
			if err != nil {
				return err
			}
			reminders, err := app.Reminders.ListByCow(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCow(c, reminders, app.now()))
			return nil
		},
	}
}

func newCowStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status COW STATUS",
		Short: "Change a cow's status (active, pregnant, sick, retired)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var updated *domain.Cow
			err := app.mutate(cmd.Context(), func(ctx context.Context) error {
				id, err := resolveCowID(ctx, app, args[0])
				if err != nil {
					return err
				}
				updated, err = app.Cows.SetStatus(ctx, id, domain.CowStatus(strings.ToLower(args[1])))
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", updated.Name, formatter.CowStatusPill(updated.Status))
			return nil
		},
	}
}

func newCowRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove COW",
		Aliases: []string{"rm"},
		Short:   "Remove a cow and all of its reminders",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			err := app.mutate(cmd.Context(), func(ctx context.Context) error {
				var err error
				if id, err = resolveCowID(ctx, app, args[0]); err != nil {
					return err
				}
				return app.Cows.Delete(ctx, id)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed cow %s\n", formatter.ShortID(id))
			return nil
		},
	}
}

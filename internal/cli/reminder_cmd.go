package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/herdsync/internal/cli/formatter"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/spf13/cobra"
)

func newReminderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"reminders", "r"},
		Short:   "List, add and complete reminders",
	}
	cmd.AddCommand(
		newReminderListCmd(app),
		newReminderAddCmd(app),
		newReminderCompleteCmd(app),
	)
	return cmd
}

func newReminderListCmd(app *App) *cobra.Command {
	var date, cow string
	var all bool
	var days int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List upcoming reminders",
		Long: "Without flags, list incomplete reminders due from today through the next 14 days.\n" +
			"--date shows one day including completed reminders, --cow one cow's history.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := app.now()

			var reminders []domain.Reminder
			var err error
			switch {
			case cow != "":
				var id string
				if id, err = resolveCowID(ctx, app, cow); err != nil {
					return err
				}
				reminders, err = app.Reminders.ListByCow(ctx, id)
			case date != "":
				var day time.Time
				if day, err = parseDay(date, now); err != nil {
					return err
				}
				reminders, err = app.Reminders.ListForDate(ctx, day)
			case all:
				reminders, err = app.Reminders.List(ctx)
			default:
				reminders, err = app.Reminders.Upcoming(ctx, days, now)
			}
			if err != nil {
				return err
			}

			names, err := cowNames(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReminderList(reminders, names, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Show reminders due on this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cow, "cow", "", "Show every reminder of one cow")
	cmd.Flags().BoolVar(&all, "all", false, "Show every reminder")
	cmd.Flags().IntVar(&days, "days", 14, "Days ahead to include")
	cmd.MarkFlagsMutuallyExclusive("date", "cow", "all")
	return cmd
}

func newReminderAddCmd(app *App) *cobra.Command {
	var cow, title, taskType, due, priority, description string
	var count int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an ad-hoc reminder for a cow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDay(due, app.now())
			if err != nil {
				return err
			}
			r := &domain.Reminder{
				Title:       strings.TrimSpace(title),
				Description: description,
				DueDate:     dueDate,
				Type:        domain.TaskType(strings.ToLower(taskType)),
				Priority:    domain.Priority(strings.ToLower(priority)),
			}
			if cmd.Flags().Changed("count") {
				r.EstimatedCowCount = &count
			}

			err = app.mutate(cmd.Context(), func(ctx context.Context) error {
				if r.CowID, err = resolveCowID(ctx, app, cow); err != nil {
					return err
				}
				return app.Reminders.Create(ctx, r)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added reminder %s %q due %s\n",
				formatter.ShortID(r.ID), r.Title, r.DueDate.Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&cow, "cow", "", "Cow name or id")
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&taskType, "type", string(domain.TaskCustom), "Task type (injection, checkup, ai, custom)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority (low, medium, high)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().IntVar(&count, "count", 0, "Estimated number of cows handled together")
	_ = cmd.MarkFlagRequired("cow")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newReminderCompleteCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:     "complete ID",
		Aliases: []string{"done"},
		Short:   "Mark a reminder as done",
		Long:    "Mark a reminder as done. Reminders due after the completion day are refused,\nand --at only backdates a completion.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when := app.now()
			if at != "" {
				day, err := parseDay(at, when)
				if err != nil {
					return err
				}
				if day.After(domain.CivilDay(when)) {
					return fmt.Errorf("--at %s is after today: %w", at, domain.ErrFutureCompletion)
				}
				when = day
			}

			var r *domain.Reminder
			err := app.mutate(cmd.Context(), func(ctx context.Context) error {
				id, err := resolveReminderID(ctx, app, args[0])
				if err != nil {
					return err
				}
				r, err = app.Complete.Complete(ctx, id, when)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s %q\n", formatter.ShortID(r.ID), r.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Completion day (YYYY-MM-DD, default now)")
	return cmd
}

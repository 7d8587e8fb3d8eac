package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/config"
	"github.com/alexanderramin/herdsync/internal/service"
	"github.com/spf13/cobra"
)

// WriterLock serializes mutating commands across processes.
type WriterLock interface {
	Acquire(ctx context.Context) error
	Release() error
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Cows      service.CowService
	Protocols service.ProtocolService
	Reminders service.ReminderService

	Apply    app.ApplyProtocolUseCase
	Complete app.CompleteReminderUseCase
	Forecast app.ForecastUseCase
	Stats    app.HerdStatsUseCase

	// Lock is taken around every mutating command; nil disables locking.
	Lock        WriterLock
	LockTimeout time.Duration

	ForecastDays int
	Now          func() time.Time

	// Config is the loaded configuration shown by "herdsync config".
	Config      *config.Config
	ConfigPath  string
	ConfigFound bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// mutate runs fn while holding the writer lock.
func (a *App) mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	if a.Lock == nil {
		return fn(ctx)
	}
	timeout := a.LockTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := a.Lock.Acquire(lockCtx); err != nil {
		return fmt.Errorf("database is busy: %w", err)
	}
	defer a.Lock.Release()
	return fn(ctx)
}

// NewRootCmd creates the top-level "herdsync" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "herdsync",
		Short:         "Protocol reminders and workforce forecasts for the herd",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCowCmd(app),
		newProtocolCmd(app),
		newApplyCmd(app),
		newReminderCmd(app),
		newGroupsCmd(app),
		newForecastCmd(app),
		newStatsCmd(app),
		newConfigCmd(app),
	)

	return root
}

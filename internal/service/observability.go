package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// UseCaseEvent is emitted once per service call.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// Outcome labels an event: "success", "refused" for business-rule
// rejections the farmer can fix, or "error".
func (e UseCaseEvent) Outcome() string {
	switch {
	case e.Err == nil:
		return "success"
	case isRefusal(e.Err):
		return "refused"
	default:
		return "error"
	}
}

func isRefusal(err error) bool {
	for _, target := range []error{
		domain.ErrValidation,
		domain.ErrIneligibleSubject,
		domain.ErrDuplicateActiveProtocol,
		domain.ErrFutureCompletion,
		domain.ErrNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// LogOptions mirrors the [log] table of the config file.
type LogOptions struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs each use case as one slog record on w.
// Successful calls log at info, refusals at warn, failures at error.
func NewLogUseCaseObserver(w io.Writer, opts LogOptions) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	ho := &slog.HandlerOptions{Level: logLevel(opts.Level)}
	if strings.EqualFold(opts.Format, "json") {
		return &logUseCaseObserver{logger: slog.New(slog.NewJSONHandler(w, ho))}
	}
	return &logUseCaseObserver{logger: slog.New(slog.NewTextHandler(w, ho))}
}

func logLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, ev UseCaseEvent) {
	level := slog.LevelInfo
	switch ev.Outcome() {
	case "refused":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if !o.logger.Enabled(ctx, level) {
		return
	}

	args := []any{
		slog.String("use_case", ev.Name),
		slog.String("outcome", ev.Outcome()),
		slog.Int64("duration_ms", ev.Duration.Milliseconds()),
	}
	for k, v := range ev.Fields {
		args = append(args, slog.Any(k, v))
	}
	if ev.Err != nil {
		args = append(args, slog.String("error", ev.Err.Error()))
	}
	o.logger.Log(ctx, level, "herdsync "+ev.Name, args...)
}

// ObserverChain delivers each event to every member in order.
type ObserverChain []UseCaseObserver

func (c ObserverChain) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range c {
		obs.ObserveUseCase(ctx, event)
	}
}

// useCaseObserverOrNoop drops nil entries and collapses the rest.
func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	chain := make(ObserverChain, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			chain = append(chain, obs)
		}
	}
	if len(chain) == 0 {
		return NoopUseCaseObserver{}
	}
	if len(chain) == 1 {
		return chain[0]
	}
	return chain
}

// track starts a use-case timer; call the returned func with the final error.
func track(ctx context.Context, obs UseCaseObserver, name string, fields map[string]any) func(err error) {
	start := time.Now()
	return func(err error) {
		obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: start,
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}

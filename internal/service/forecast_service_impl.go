package service

import (
	"context"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/repository"
	"github.com/alexanderramin/herdsync/internal/scheduler"
	"github.com/alexanderramin/herdsync/internal/store"
)

type forecastService struct {
	reminders   repository.ReminderRepo
	protocols   repository.ProtocolRepo
	calc        scheduler.Calculator
	defaultDays int
	observer    UseCaseObserver
}

// NewForecastService builds staffing forecasts. Requests without a window
// use defaultDays.
func NewForecastService(
	reminders repository.ReminderRepo,
	protocols repository.ProtocolRepo,
	calc scheduler.Calculator,
	defaultDays int,
	observers ...UseCaseObserver,
) ForecastService {
	if defaultDays <= 0 {
		defaultDays = scheduler.DefaultForecastDays
	}
	return &forecastService{
		reminders:   reminders,
		protocols:   protocols,
		calc:        calc,
		defaultDays: defaultDays,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *forecastService) Forecast(ctx context.Context, req app.ForecastRequest) (days []scheduler.DayForecast, err error) {
	window := req.Days
	if window <= 0 {
		window = s.defaultDays
	}
	from := domain.CivilDay(req.From)
	fields := map[string]any{"from": from.Format(domain.DateLayout), "days": window}
	done := track(ctx, s.observer, "forecast", fields)
	defer func() { done(err) }()

	due, err := s.reminders.ListDueBetween(ctx, from, domain.AddDays(from, window-1))
	if err != nil {
		return nil, err
	}
	protocols, err := s.protocols.List(ctx)
	if err != nil {
		return nil, err
	}

	st := store.New()
	st.Initialize(due, nil, protocols)
	days = scheduler.GenerateForecast(st, s.calc, window, from)
	fields["reminders"] = st.Len()
	return days, nil
}

package app

import (
	"context"
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/scheduler"
)

type ApplyProtocolUseCase interface {
	ApplyProtocol(ctx context.Context, req ApplyProtocolRequest) (*ApplyProtocolResponse, error)
}

type CompleteReminderUseCase interface {
	Complete(ctx context.Context, id string, at time.Time) (*domain.Reminder, error)
}

type ForecastUseCase interface {
	Forecast(ctx context.Context, req ForecastRequest) ([]scheduler.DayForecast, error)
}

type HerdStatsUseCase interface {
	Snapshot(ctx context.Context) (*HerdStats, error)
}

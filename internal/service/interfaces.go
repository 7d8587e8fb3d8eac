package service

import (
	"context"
	"time"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/scheduler"
)

type CowService interface {
	Add(ctx context.Context, c *domain.Cow) error
	GetByID(ctx context.Context, id string) (*domain.Cow, error)
	List(ctx context.Context) ([]*domain.Cow, error)
	SetStatus(ctx context.Context, id string, status domain.CowStatus) (*domain.Cow, error)
	Delete(ctx context.Context, id string) error
}

type ProtocolService interface {
	// SyncCatalog stores the predefined and file-defined protocols.
	SyncCatalog(ctx context.Context) error
	List(ctx context.Context) ([]*domain.Protocol, error)
	GetByID(ctx context.Context, id string) (*domain.Protocol, error)
	CreateCustom(ctx context.Context, p *domain.Protocol) error
	ConfigureWorkforce(ctx context.Context, id string, ratios map[string]domain.CapacityRatio) (*domain.Protocol, error)
	Delete(ctx context.Context, id string) error
}

type ReminderService interface {
	ApplyProtocol(ctx context.Context, req app.ApplyProtocolRequest) (*app.ApplyProtocolResponse, error)
	Create(ctx context.Context, r *domain.Reminder) error
	Complete(ctx context.Context, id string, at time.Time) (*domain.Reminder, error)
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	List(ctx context.Context) ([]domain.Reminder, error)
	ListByCow(ctx context.Context, cowID string) ([]domain.Reminder, error)
	ListForDate(ctx context.Context, day time.Time) ([]domain.Reminder, error)
	Upcoming(ctx context.Context, days int, reference time.Time) ([]domain.Reminder, error)
	Groups(ctx context.Context, req app.GroupsRequest) ([]scheduler.Group, error)
}

type ForecastService interface {
	Forecast(ctx context.Context, req app.ForecastRequest) ([]scheduler.DayForecast, error)
}

type AnalyticsService interface {
	Snapshot(ctx context.Context) (*app.HerdStats, error)
}

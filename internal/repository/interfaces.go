package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
)

type CowRepo interface {
	Create(ctx context.Context, c *domain.Cow) error
	GetByID(ctx context.Context, id string) (*domain.Cow, error)
	List(ctx context.Context) ([]*domain.Cow, error)
	Update(ctx context.Context, c *domain.Cow) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[domain.CowStatus]int, error)
}

// ProtocolRepo stores synchronization methods together with their steps.
type ProtocolRepo interface {
	Save(ctx context.Context, p *domain.Protocol) error
	GetByID(ctx context.Context, id string) (*domain.Protocol, error)
	List(ctx context.Context) ([]*domain.Protocol, error)
	Delete(ctx context.Context, id string) error
}

type ReminderRepo interface {
	Create(ctx context.Context, r *domain.Reminder) error
	CreateBatch(ctx context.Context, rs []domain.Reminder) error
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	List(ctx context.Context) ([]domain.Reminder, error)
	ListByCow(ctx context.Context, cowID string) ([]domain.Reminder, error)
	// ListDueBetween returns reminders due in the inclusive day range [from, to].
	ListDueBetween(ctx context.Context, from, to time.Time) ([]domain.Reminder, error)
	Update(ctx context.Context, r *domain.Reminder) error
}

package service

import (
	"context"
	"time"

	"github.com/alexanderramin/herdsync/internal/db"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/repository"
	"github.com/google/uuid"
)

type cowService struct {
	cows     repository.CowRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCowService(cows repository.CowRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CowService {
	return &cowService{cows: cows, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *cowService) Add(ctx context.Context, c *domain.Cow) (err error) {
	done := track(ctx, s.observer, "add-cow", map[string]any{"name": c.Name})
	defer func() { done(err) }()

	if c.Status == "" {
		c.Status = domain.CowActive
	}
	if err = validateCow(c); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.cows.Create(ctx, c)
}

func (s *cowService) GetByID(ctx context.Context, id string) (*domain.Cow, error) {
	return s.cows.GetByID(ctx, id)
}

func (s *cowService) List(ctx context.Context) ([]*domain.Cow, error) {
	return s.cows.List(ctx)
}

// SetStatus changes a cow's status. Marking a cow sick, retired or pregnant
// makes it ineligible for new protocols but leaves existing reminders alone.
func (s *cowService) SetStatus(ctx context.Context, id string, status domain.CowStatus) (cow *domain.Cow, err error) {
	done := track(ctx, s.observer, "set-cow-status", map[string]any{"cow": id, "status": string(status)})
	defer func() { done(err) }()

	if !domain.ValidCowStatuses[string(status)] {
		return nil, domain.NewValidationError("cow", []string{"unknown status \"" + string(status) + "\""})
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCows := repository.NewSQLCowRepo(tx)
		c, err := txCows.GetByID(ctx, id)
		if err != nil {
			return err
		}
		c.Status = status
		c.UpdatedAt = time.Now().UTC()
		if err := txCows.Update(ctx, c); err != nil {
			return err
		}
		cow = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cow, nil
}

func (s *cowService) Delete(ctx context.Context, id string) (err error) {
	done := track(ctx, s.observer, "delete-cow", map[string]any{"cow": id})
	defer func() { done(err) }()
	return s.cows.Delete(ctx, id)
}

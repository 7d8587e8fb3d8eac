package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/db"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/repository"
	"github.com/alexanderramin/herdsync/internal/scheduler"
	"github.com/alexanderramin/herdsync/internal/store"
	"github.com/google/uuid"
)

type reminderService struct {
	reminders repository.ReminderRepo
	calc      scheduler.Calculator
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewReminderService(
	reminders repository.ReminderRepo,
	calc scheduler.Calculator,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ReminderService {
	return &reminderService{
		reminders: reminders,
		calc:      calc,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// ApplyProtocol schedules every step of a protocol for one cow and records
// the start date as the cow's last sync. Nothing is written on failure.
func (s *reminderService) ApplyProtocol(ctx context.Context, req app.ApplyProtocolRequest) (resp *app.ApplyProtocolResponse, err error) {
	fields := map[string]any{
		"cow":      req.CowID,
		"protocol": req.ProtocolID,
		"start":    domain.CivilDay(req.StartDate).Format(domain.DateLayout),
	}
	done := track(ctx, s.observer, "apply-protocol", fields)
	defer func() { done(err) }()

	today := time.Now()
	if req.Today != nil {
		today = *req.Today
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCows := repository.NewSQLCowRepo(tx)
		txProtocols := repository.NewSQLProtocolRepo(tx)
		txReminders := repository.NewSQLReminderRepo(tx)

		cow, err := txCows.GetByID(ctx, req.CowID)
		if err != nil {
			return err
		}
		protocol, err := txProtocols.GetByID(ctx, req.ProtocolID)
		if err != nil {
			return err
		}
		existing, err := txReminders.ListByCow(ctx, cow.ID)
		if err != nil {
			return err
		}

		created, err := scheduler.ApplyProtocol(scheduler.ApplyInput{
			Cow:        cow,
			Protocol:   protocol,
			StartDate:  req.StartDate,
			Existing:   existing,
			Today:      today,
			Calculator: s.calc,
		})
		if err != nil {
			return err
		}
		if err := txReminders.CreateBatch(ctx, created); err != nil {
			return err
		}

		start := domain.CivilDay(req.StartDate)
		cow.LastSyncDate = &start
		cow.UpdatedAt = time.Now().UTC()
		if err := txCows.Update(ctx, cow); err != nil {
			return err
		}

		resp = &app.ApplyProtocolResponse{Cow: cow, Protocol: protocol, Reminders: created}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["reminders"] = len(resp.Reminders)
	return resp, nil
}

// Create stores an ad-hoc reminder. Priority defaults to medium.
func (s *reminderService) Create(ctx context.Context, r *domain.Reminder) (err error) {
	done := track(ctx, s.observer, "create-reminder", map[string]any{"cow": r.CowID, "type": string(r.Type)})
	defer func() { done(err) }()

	if r.Priority == "" {
		r.Priority = domain.PriorityMedium
	}
	if err = validateReminder(r); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.DueDate = domain.CivilDay(r.DueDate)
	now := time.Now().UTC()
	if r.Completed {
		at := now
		if r.CompletedAt != nil {
			at = *r.CompletedAt
		}
		if domain.CivilDay(at).After(domain.CivilDay(now)) {
			return domain.NewValidationError("reminder", []string{"completed_at is in the future"})
		}
		r.Completed, r.CompletedAt = false, nil
		if err = r.MarkCompleted(at); err != nil {
			return err
		}
	}
	r.CreatedAt = now
	r.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLCowRepo(tx).GetByID(ctx, r.CowID); err != nil {
			return err
		}
		if r.ProtocolID != "" {
			p, err := repository.NewSQLProtocolRepo(tx).GetByID(ctx, r.ProtocolID)
			if err != nil {
				return err
			}
			if _, ok := p.Step(r.StepID); r.StepID != "" && !ok {
				return &domain.NotFoundError{Kind: "protocol step", ID: r.StepID}
			}
		}
		return repository.NewSQLReminderRepo(tx).Create(ctx, r)
	})
}

// Complete marks a reminder done as of at. Completing a reminder that is
// already done returns it unchanged.
func (s *reminderService) Complete(ctx context.Context, id string, at time.Time) (reminder *domain.Reminder, err error) {
	done := track(ctx, s.observer, "complete-reminder", map[string]any{"reminder": id})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReminders := repository.NewSQLReminderRepo(tx)
		current, err := txReminders.GetByID(ctx, id)
		if err != nil {
			return err
		}

		st := store.New()
		st.Initialize([]domain.Reminder{*current}, nil, nil)
		if err := st.Complete(id, at); err != nil {
			return err
		}
		updated, err := st.Get(id)
		if err != nil {
			return err
		}
		if updated.Completed != current.Completed {
			if err := txReminders.Update(ctx, &updated); err != nil {
				return fmt.Errorf("saving completion: %w", err)
			}
		}
		reminder = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *reminderService) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	return s.reminders.GetByID(ctx, id)
}

func (s *reminderService) List(ctx context.Context) ([]domain.Reminder, error) {
	return s.reminders.List(ctx)
}

func (s *reminderService) ListByCow(ctx context.Context, cowID string) ([]domain.Reminder, error) {
	return s.reminders.ListByCow(ctx, cowID)
}

// ListForDate returns every reminder due on day, completed ones included.
func (s *reminderService) ListForDate(ctx context.Context, day time.Time) ([]domain.Reminder, error) {
	due, err := s.reminders.ListDueBetween(ctx, day, day)
	if err != nil {
		return nil, err
	}
	st := store.New()
	st.ReplaceAll(due)
	out := st.ForDate(day)
	scheduler.SortReminders(out)
	return out, nil
}

// Upcoming returns incomplete reminders due within [reference, reference+days].
func (s *reminderService) Upcoming(ctx context.Context, days int, reference time.Time) ([]domain.Reminder, error) {
	if days < 0 {
		return nil, domain.NewValidationError("upcoming window", []string{fmt.Sprintf("days must be >= 0, got %d", days)})
	}
	due, err := s.reminders.ListDueBetween(ctx, reference, domain.AddDays(reference, days))
	if err != nil {
		return nil, err
	}
	st := store.New()
	st.ReplaceAll(due)
	return st.Upcoming(days, reference), nil
}

// Groups collapses incomplete reminders into (title, type, priority, day)
// batches. A positive Days covers [From, From+Days), the same window a
// forecast of that length uses.
func (s *reminderService) Groups(ctx context.Context, req app.GroupsRequest) ([]scheduler.Group, error) {
	var (
		reminders []domain.Reminder
		err       error
	)
	if req.Days > 0 {
		reminders, err = s.reminders.ListDueBetween(ctx, req.From, domain.AddDays(req.From, req.Days-1))
	} else {
		reminders, err = s.reminders.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return scheduler.GroupByTaskAndDate(reminders), nil
}

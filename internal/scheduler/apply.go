package scheduler

import (
	"time"

	"github.com/alexanderramin/herdsync/internal/catalog"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/google/uuid"
)

// ApplyInput is everything ApplyProtocol needs to expand a protocol for one cow.
type ApplyInput struct {
	Cow       *domain.Cow
	Protocol  *domain.Protocol
	StartDate time.Time
	// Existing holds the reminders already on record, used for the
	// one-active-protocol-per-cow check.
	Existing []domain.Reminder
	// Today is the reference day for the active-protocol check and the
	// creation stamp of the new reminders. Zero means StartDate.
	Today time.Time

	NewID      func() string
	Calculator Calculator
}

// ApplyProtocol expands a protocol into one reminder per step for a cow.
// It returns either every reminder or an error and no reminders. Apart
// from NewID the result depends only on the input.
func ApplyProtocol(in ApplyInput) ([]domain.Reminder, error) {
	if in.Cow == nil {
		return nil, &domain.NotFoundError{Kind: "cow"}
	}
	if in.Protocol == nil {
		return nil, &domain.NotFoundError{Kind: "protocol"}
	}

	if !in.Cow.EligibleForProtocol() {
		return nil, &domain.IneligibleSubjectError{CowID: in.Cow.ID, Status: in.Cow.Status}
	}

	today := in.Today
	if today.IsZero() {
		today = domain.CivilDay(in.StartDate)
	}
	if active, ok := ActiveProtocolReminder(in.Existing, in.Cow.ID, today); ok {
		return nil, &domain.DuplicateActiveProtocolError{
			CowID:      in.Cow.ID,
			ProtocolID: active.ProtocolID,
			ReminderID: active.ID,
			DueDate:    domain.CivilDay(active.DueDate),
		}
	}

	if err := catalog.Validate(in.Protocol); err != nil {
		return nil, err
	}

	newID := in.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	start := domain.CivilDay(in.StartDate)
	stamp := today.UTC()

	reminders := make([]domain.Reminder, 0, len(in.Protocol.Steps))
	for _, step := range in.Protocol.Steps {
		count := 1
		r := domain.Reminder{
			ID:                newID(),
			CowID:             in.Cow.ID,
			ProtocolID:        in.Protocol.ID,
			StepID:            step.ID,
			Title:             step.Title,
			Description:       step.Description,
			DueDate:           domain.AddDays(start, step.Day),
			Priority:          domain.PriorityMedium,
			Type:              domain.TaskCustom,
			EstimatedCowCount: &count,
			CreatedAt:         stamp,
			UpdatedAt:         stamp,
		}
		if !step.Ratios.IsZero() {
			snap := in.Calculator.Compute(count, step.Ratios)
			r.WorkforceSnapshot = &snap
		}
		reminders = append(reminders, r)
	}
	return reminders, nil
}

// ActiveProtocolReminder returns the first reminder that keeps a protocol
// active for cowID as of today.
func ActiveProtocolReminder(existing []domain.Reminder, cowID string, today time.Time) (domain.Reminder, bool) {
	for _, r := range existing {
		if r.CowID == cowID && r.Active(today) {
			return r, true
		}
	}
	return domain.Reminder{}, false
}

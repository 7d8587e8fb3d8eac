package testutil

import (
	"strconv"
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/google/uuid"
)

// Cow options
type CowOption func(*domain.Cow)

func WithCowStatus(s domain.CowStatus) CowOption {
	return func(c *domain.Cow) {
		c.Status = s
	}
}

func WithBreed(b string) CowOption {
	return func(c *domain.Cow) {
		c.Breed = b
	}
}

func WithLastSyncDate(d time.Time) CowOption {
	return func(c *domain.Cow) {
		c.LastSyncDate = &d
	}
}

func NewTestCow(name string, opts ...CowOption) *domain.Cow {
	now := time.Now().UTC()
	c := &domain.Cow{
		ID:        uuid.New().String(),
		Name:      name,
		Breed:     "Holstein",
		Age:       4,
		Status:    domain.CowActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reminder options
type ReminderOption func(*domain.Reminder)

func WithDueDate(d time.Time) ReminderOption {
	return func(r *domain.Reminder) {
		r.DueDate = domain.CivilDay(d)
	}
}

func WithTaskType(t domain.TaskType) ReminderOption {
	return func(r *domain.Reminder) {
		r.Type = t
	}
}

func WithPriority(p domain.Priority) ReminderOption {
	return func(r *domain.Reminder) {
		r.Priority = p
	}
}

func WithProtocolStep(protocolID, stepID string) ReminderOption {
	return func(r *domain.Reminder) {
		r.ProtocolID = protocolID
		r.StepID = stepID
	}
}

func WithCompleted(at time.Time) ReminderOption {
	return func(r *domain.Reminder) {
		r.Completed = true
		r.CompletedAt = &at
	}
}

func WithEstimatedCowCount(n int) ReminderOption {
	return func(r *domain.Reminder) {
		r.EstimatedCowCount = &n
	}
}

func WithSnapshot(w domain.WorkforceSnapshot) ReminderOption {
	return func(r *domain.Reminder) {
		r.WorkforceSnapshot = &w
	}
}

func NewTestReminder(cowID, title string, opts ...ReminderOption) *domain.Reminder {
	now := time.Now().UTC()
	r := &domain.Reminder{
		ID:          uuid.New().String(),
		CowID:       cowID,
		Title:       title,
		Description: title + " task",
		DueDate:     domain.CivilDay(now),
		Priority:    domain.PriorityMedium,
		Type:        domain.TaskCustom,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Protocol options
type ProtocolOption func(*domain.Protocol)

func WithStepRatios(stepIndex int, ratio domain.CapacityRatio) ProtocolOption {
	return func(p *domain.Protocol) {
		p.Steps[stepIndex].Ratios = ratio
		p.HasWorkforceSettings = p.HasStepRatios()
	}
}

func WithStepDays(days ...int) ProtocolOption {
	return func(p *domain.Protocol) {
		p.Steps = p.Steps[:0]
		for i, d := range days {
			p.Steps = append(p.Steps, domain.ProtocolStep{
				ID:          strconv.Itoa(i + 1),
				Day:         d,
				Title:       "Step " + strconv.Itoa(i + 1),
				Description: "Step " + strconv.Itoa(i + 1) + " instructions",
			})
		}
	}
}

func NewTestProtocol(name string, opts ...ProtocolOption) *domain.Protocol {
	p := &domain.Protocol{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  name + " protocol",
		DurationDays: 10,
		IsCustom:     true,
		Steps: []domain.ProtocolStep{
			{ID: "1", Day: 0, Title: "GnRH Injection", Description: "Administer GnRH", HormoneType: "GnRH"},
			{ID: "2", Day: 7, Title: "PGF2α Injection", Description: "Administer PGF2α", HormoneType: "PGF2α"},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

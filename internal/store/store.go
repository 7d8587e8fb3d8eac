// Package store holds the per-request in-memory snapshot of reminders, cows
// and protocols the scheduling engine works against. A ReminderStore is not
// safe for concurrent use; callers own one instance per request.
package store

import (
	"sort"
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
)

type ReminderStore struct {
	reminders []domain.Reminder
	index     map[string]int
	cows      map[string]*domain.Cow
	protocols map[string]*domain.Protocol
}

// New returns an empty store.
func New() *ReminderStore {
	return &ReminderStore{
		index:     make(map[string]int),
		cows:      make(map[string]*domain.Cow),
		protocols: make(map[string]*domain.Protocol),
	}
}

// Initialize replaces the whole snapshot.
func (s *ReminderStore) Initialize(reminders []domain.Reminder, cows []*domain.Cow, protocols []*domain.Protocol) {
	s.ReplaceAll(reminders)
	s.cows = make(map[string]*domain.Cow, len(cows))
	for _, c := range cows {
		s.cows[c.ID] = c
	}
	s.protocols = make(map[string]*domain.Protocol, len(protocols))
	for _, p := range protocols {
		s.protocols[p.ID] = p
	}
}

// ReplaceAll overwrites the reminder collection.
func (s *ReminderStore) ReplaceAll(reminders []domain.Reminder) {
	s.reminders = make([]domain.Reminder, len(reminders))
	copy(s.reminders, reminders)
	s.reindex()
}

// Add appends reminders to the collection.
func (s *ReminderStore) Add(reminders ...domain.Reminder) {
	s.reminders = append(s.reminders, reminders...)
	s.reindex()
}

func (s *ReminderStore) reindex() {
	s.index = make(map[string]int, len(s.reminders))
	for i, r := range s.reminders {
		s.index[r.ID] = i
	}
}

// All returns a copy of every reminder in insertion order.
func (s *ReminderStore) All() []domain.Reminder {
	out := make([]domain.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Get returns the reminder with the given id.
func (s *ReminderStore) Get(id string) (domain.Reminder, error) {
	i, ok := s.index[id]
	if !ok {
		return domain.Reminder{}, &domain.NotFoundError{Kind: "reminder", ID: id}
	}
	return s.reminders[i], nil
}

// ForDate returns the reminders due on the same calendar day as date.
func (s *ReminderStore) ForDate(date time.Time) []domain.Reminder {
	var out []domain.Reminder
	for _, r := range s.reminders {
		if domain.SameDay(r.DueDate, date) {
			out = append(out, r)
		}
	}
	return out
}

// Upcoming returns incomplete reminders due within [reference, reference+days],
// ordered by due date.
func (s *ReminderStore) Upcoming(days int, reference time.Time) []domain.Reminder {
	from := domain.CivilDay(reference)
	to := domain.AddDays(from, days)
	var out []domain.Reminder
	for _, r := range s.reminders {
		due := domain.CivilDay(r.DueDate)
		if r.Completed || due.Before(from) || due.After(to) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return domain.CivilDay(out[i].DueDate).Before(domain.CivilDay(out[j].DueDate))
	})
	return out
}

// Complete marks a reminder done as of reference. Completing an already
// completed reminder succeeds without changes.
func (s *ReminderStore) Complete(id string, reference time.Time) error {
	i, ok := s.index[id]
	if !ok {
		return &domain.NotFoundError{Kind: "reminder", ID: id}
	}
	return s.reminders[i].MarkCompleted(reference)
}

// Cow returns the cow with the given id.
func (s *ReminderStore) Cow(id string) (*domain.Cow, error) {
	c, ok := s.cows[id]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "cow", ID: id}
	}
	return c, nil
}

// Protocol returns the protocol with the given id.
func (s *ReminderStore) Protocol(id string) (*domain.Protocol, error) {
	p, ok := s.protocols[id]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "protocol", ID: id}
	}
	return p, nil
}

// StepFor resolves the protocol step a reminder was generated from.
func (s *ReminderStore) StepFor(r domain.Reminder) (*domain.ProtocolStep, bool) {
	if !r.FromProtocol() {
		return nil, false
	}
	p, ok := s.protocols[r.ProtocolID]
	if !ok {
		return nil, false
	}
	return p.Step(r.StepID)
}

// Len returns the number of reminders held.
func (s *ReminderStore) Len() int { return len(s.reminders) }

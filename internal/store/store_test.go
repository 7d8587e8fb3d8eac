package store

import (
	"testing"
	"time"

	"github.com/alexanderramin/herdsync/internal/catalog"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

func seeded(t *testing.T) *ReminderStore {
	t.Helper()
	s := New()
	s.Initialize([]domain.Reminder{
		{ID: "past", CowID: "c1", Title: "GnRH", DueDate: domain.AddDays(today, -2)},
		{ID: "today", CowID: "c1", Title: "PGF", DueDate: domain.CivilDay(today)},
		{ID: "future", CowID: "c2", Title: "AI", DueDate: domain.AddDays(today, 3)},
		{ID: "far", CowID: "c2", Title: "Check", DueDate: domain.AddDays(today, 20)},
	}, []*domain.Cow{{ID: "c1", Status: domain.CowActive}}, catalog.Predefined())
	return s
}

func TestForDate_SameCalendarDay(t *testing.T) {
	s := seeded(t)
	got := s.ForDate(today.Add(10 * time.Hour))
	require.Len(t, got, 1)
	assert.Equal(t, "today", got[0].ID)
	assert.Empty(t, s.ForDate(domain.AddDays(today, 1)))
}

func TestComplete_Idempotent(t *testing.T) {
	s := seeded(t)
	require.NoError(t, s.Complete("past", today))
	once := s.All()

	require.NoError(t, s.Complete("past", today.Add(time.Hour)))
	assert.Equal(t, once, s.All(), "second completion must not change state")

	r, err := s.Get("past")
	require.NoError(t, err)
	assert.True(t, r.Completed)
}

func TestComplete_FutureRefused(t *testing.T) {
	s := seeded(t)
	before := s.All()

	err := s.Complete("future", today)
	assert.ErrorIs(t, err, domain.ErrFutureCompletion)
	assert.Equal(t, before, s.All())
}

func TestComplete_DueToday(t *testing.T) {
	s := seeded(t)
	require.NoError(t, s.Complete("today", today))
	r, _ := s.Get("today")
	assert.True(t, r.Completed)
}

func TestComplete_NotFound(t *testing.T) {
	s := seeded(t)
	var nf *domain.NotFoundError
	require.ErrorAs(t, s.Complete("nope", today), &nf)
	assert.Equal(t, "reminder", nf.Kind)
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := seeded(t)
	all := s.All()
	all[0].Completed = true
	r, _ := s.Get(all[0].ID)
	assert.False(t, r.Completed)
}

func TestReplaceAll(t *testing.T) {
	s := seeded(t)
	s.ReplaceAll([]domain.Reminder{{ID: "only", DueDate: today}})
	assert.Equal(t, 1, s.Len())
	_, err := s.Get("past")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdd(t *testing.T) {
	s := New()
	s.Add(domain.Reminder{ID: "a", DueDate: today}, domain.Reminder{ID: "b", DueDate: today})
	assert.Equal(t, 2, s.Len())
	_, err := s.Get("b")
	assert.NoError(t, err)
}

func TestUpcoming_InclusiveWindow(t *testing.T) {
	s := seeded(t)
	s.Add(domain.Reminder{ID: "edge", DueDate: domain.AddDays(today, 14)})
	require.NoError(t, s.Complete("today", today))

	var ids []string
	for _, r := range s.Upcoming(14, today) {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"future", "edge"}, ids)
}

func TestLookups(t *testing.T) {
	s := seeded(t)
	c, err := s.Cow("c1")
	require.NoError(t, err)
	assert.Equal(t, domain.CowActive, c.Status)
	_, err = s.Cow("c9")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, err := s.Protocol("ovsynch")
	require.NoError(t, err)
	assert.Len(t, p.Steps, 4)
	_, err = s.Protocol("x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	step, ok := s.StepFor(domain.Reminder{ProtocolID: "ovsynch", StepID: "4"})
	require.True(t, ok)
	assert.Equal(t, "Artificial Insemination", step.Title)

	_, ok = s.StepFor(domain.Reminder{StepID: "4"})
	assert.False(t, ok)
	_, ok = s.StepFor(domain.Reminder{ProtocolID: "gone", StepID: "1"})
	assert.False(t, ok)
}

func TestStoreDrivesForecast(t *testing.T) {
	s := New()
	p := catalog.Predefined()[0]
	var rs []domain.Reminder
	for _, id := range []string{"a", "b", "c"} {
		out, err := scheduler.ApplyProtocol(scheduler.ApplyInput{
			Cow:        &domain.Cow{ID: id, Status: domain.CowActive},
			Protocol:   p,
			StartDate:  today,
			Today:      today,
			Calculator: scheduler.NewCalculator(),
		})
		require.NoError(t, err)
		rs = append(rs, out...)
	}
	s.Initialize(rs, nil, []*domain.Protocol{p})

	days := scheduler.GenerateForecast(s, scheduler.NewCalculator(), 14, today)
	require.Len(t, days, 14)
	assert.Equal(t, 1, days[0].Workers)
	assert.Equal(t, 1, days[0].Technicians)
	require.Len(t, days[0].Tasks, 1)
	assert.Equal(t, 3, days[0].Tasks[0].SubjectCount)
	assert.Equal(t, scheduler.RatioFromStep, days[0].Tasks[0].RatioSource)
	assert.Empty(t, days[1].Tasks)
}

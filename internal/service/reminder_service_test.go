package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addCow(t *testing.T, svc testServices, name string, opts ...testutil.CowOption) *domain.Cow {
	t.Helper()
	cow := testutil.NewTestCow(name, opts...)
	require.NoError(t, svc.cowRepo.Create(context.Background(), cow))
	return cow
}

func applyOvsynch(t *testing.T, svc testServices, cowID string, start time.Time) []domain.Reminder {
	t.Helper()
	today := start
	resp, err := svc.reminders.ApplyProtocol(context.Background(), app.ApplyProtocolRequest{
		CowID: cowID, ProtocolID: "ovsynch", StartDate: start, Today: &today,
	})
	require.NoError(t, err)
	return resp.Reminders
}

func TestReminderService_ApplyProtocol_PersistsReminders(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	cow := addCow(t, svc, "Bella")

	today := june2.AddDate(0, 0, -1)
	resp, err := svc.reminders.ApplyProtocol(ctx, app.ApplyProtocolRequest{
		CowID: cow.ID, ProtocolID: "ovsynch", StartDate: june2, Today: &today,
	})
	require.NoError(t, err)
	require.Len(t, resp.Reminders, 4)
	assert.Equal(t, "ovsynch", resp.Protocol.ID)

	stored, err := svc.reminders.ListByCow(ctx, cow.ID)
	require.NoError(t, err)
	require.Len(t, stored, 4)

	wantDue := []string{"2024-06-02", "2024-06-09", "2024-06-11", "2024-06-12"}
	for i, r := range stored {
		assert.Equal(t, wantDue[i], r.DueDate.Format(domain.DateLayout))
		assert.Equal(t, "ovsynch", r.ProtocolID)
		assert.Equal(t, domain.PriorityMedium, r.Priority)
		assert.Equal(t, domain.TaskCustom, r.Type)
		require.NotNil(t, r.EstimatedCowCount)
		assert.Equal(t, 1, *r.EstimatedCowCount)
		require.NotNil(t, r.WorkforceSnapshot)
	}
	assert.Equal(t, domain.WorkforceSnapshot{Workers: 1, Technicians: 1}, *stored[0].WorkforceSnapshot)
	assert.Equal(t, domain.WorkforceSnapshot{Technicians: 1}, *stored[3].WorkforceSnapshot)

	fetched, err := svc.cows.GetByID(ctx, cow.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.LastSyncDate)
	assert.Equal(t, "2024-06-02", fetched.LastSyncDate.Format(domain.DateLayout))
}

func TestReminderService_ApplyProtocol_DuplicateActiveWritesNothing(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	cow := addCow(t, svc, "Bella")
	applyOvsynch(t, svc, cow.ID, june2)

	today := june2.AddDate(0, 0, 3)
	_, err := svc.reminders.ApplyProtocol(ctx, app.ApplyProtocolRequest{
		CowID: cow.ID, ProtocolID: "cidr", StartDate: today, Today: &today,
	})
	require.ErrorIs(t, err, domain.ErrDuplicateActiveProtocol)

	var dup *domain.DuplicateActiveProtocolError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "ovsynch", dup.ProtocolID)

	stored, err := svc.reminders.ListByCow(ctx, cow.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 4)
}

func TestReminderService_ApplyProtocol_AfterProtocolEnds(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	cow := addCow(t, svc, "Bella")
	applyOvsynch(t, svc, cow.ID, june2)

	// the last ovsynch step is due 2024-06-12, so the cow is free the next day
	today := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
	resp, err := svc.reminders.ApplyProtocol(ctx, app.ApplyProtocolRequest{
		CowID: cow.ID, ProtocolID: "cidr", StartDate: today, Today: &today,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reminders, 4)
}

func TestReminderService_ApplyProtocol_Refusals(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sick := addCow(t, svc, "Clover", testutil.WithCowStatus(domain.CowSick))
	healthy := addCow(t, svc, "Bella")

	tests := []struct {
		name    string
		req     app.ApplyProtocolRequest
		wantErr error
	}{
		{"sick cow", app.ApplyProtocolRequest{CowID: sick.ID, ProtocolID: "ovsynch", StartDate: june2}, domain.ErrIneligibleSubject},
		{"unknown cow", app.ApplyProtocolRequest{CowID: "ghost", ProtocolID: "ovsynch", StartDate: june2}, domain.ErrNotFound},
		{"unknown protocol", app.ApplyProtocolRequest{CowID: healthy.ID, ProtocolID: "nope", StartDate: june2}, domain.ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.reminders.ApplyProtocol(ctx, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	all, err := svc.reminders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	fetched, err := svc.cows.GetByID(ctx, sick.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.LastSyncDate)
}

func TestReminderService_Complete(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	cow := addCow(t, svc, "Bella")
	reminders := applyOvsynch(t, svc, cow.ID, june2)
	second := reminders[1] // due 2024-06-09

	_, err := svc.reminders.Complete(ctx, second.ID, june2)
	require.ErrorIs(t, err, domain.ErrFutureCompletion)
	stored, err := svc.reminders.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)

	at := time.Date(2024, 6, 9, 15, 30, 0, 0, time.UTC)
	done, err := svc.reminders.Complete(ctx, second.ID, at)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	again, err := svc.reminders.Complete(ctx, second.ID, at.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.True(t, again.Completed)
	assert.True(t, done.CompletedAt.Equal(*again.CompletedAt), "completion time must not move")

	stored, err = svc.reminders.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.True(t, at.Equal(*stored.CompletedAt))

	_, err = svc.reminders.Complete(ctx, "missing", at)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReminderService_Create(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	cow := addCow(t, svc, "Bella")

	r := &domain.Reminder{CowID: cow.ID, Title: "Hoof trim", Type: domain.TaskCheckup, DueDate: june2}
	require.NoError(t, svc.reminders.Create(ctx, r))
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, domain.PriorityMedium, r.Priority)

	stored, err := svc.reminders.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hoof trim", stored.Title)
	assert.False(t, stored.FromProtocol())

	linked := &domain.Reminder{CowID: cow.ID, Title: "Extra GnRH", Type: domain.TaskInjection, DueDate: june2,
		ProtocolID: "ovsynch", StepID: "1"}
	require.NoError(t, svc.reminders.Create(ctx, linked))

	june5 := domain.AddDays(june2, 3)
	logged := &domain.Reminder{CowID: cow.ID, Title: "Checkup", Type: domain.TaskCheckup, DueDate: june2,
		Completed: true, CompletedAt: &june5}
	require.NoError(t, svc.reminders.Create(ctx, logged))
	stored, err = svc.reminders.GetByID(ctx, logged.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	require.NotNil(t, stored.CompletedAt)
	assert.True(t, domain.SameDay(june5, *stored.CompletedAt))
}

func TestReminderService_Create_Refusals(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	cow := addCow(t, svc, "Bella")
	negative := -2
	nextWeek := domain.AddDays(time.Now(), 7)

	tests := []struct {
		name    string
		r       *domain.Reminder
		wantErr error
	}{
		{"missing fields", &domain.Reminder{Type: domain.TaskAI}, domain.ErrValidation},
		{"bad type", &domain.Reminder{CowID: cow.ID, Title: "x", DueDate: june2, Type: "milking"}, domain.ErrValidation},
		{"bad priority", &domain.Reminder{CowID: cow.ID, Title: "x", DueDate: june2, Type: domain.TaskAI, Priority: "urgent"}, domain.ErrValidation},
		{"negative count", &domain.Reminder{CowID: cow.ID, Title: "x", DueDate: june2, Type: domain.TaskAI, EstimatedCowCount: &negative}, domain.ErrValidation},
		{"negative snapshot", &domain.Reminder{CowID: cow.ID, Title: "x", DueDate: june2, Type: domain.TaskAI,
			WorkforceSnapshot: &domain.WorkforceSnapshot{Doctors: -1}}, domain.ErrValidation},
		{"step without protocol", &domain.Reminder{CowID: cow.ID, Title: "x", DueDate: june2, Type: domain.TaskAI, StepID: "1"}, domain.ErrValidation},
		{"unknown cow", &domain.Reminder{CowID: "ghost", Title: "x", DueDate: june2, Type: domain.TaskAI}, domain.ErrNotFound},
		{"unknown protocol", &domain.Reminder{CowID: cow.ID, Title: "x", DueDate: june2, Type: domain.TaskAI, ProtocolID: "nope"}, domain.ErrNotFound},
		{"unknown step", &domain.Reminder{CowID: cow.ID, Title: "x", DueDate: june2, Type: domain.TaskAI, ProtocolID: "ovsynch", StepID: "9"}, domain.ErrNotFound},
		{"completed before due", &domain.Reminder{CowID: cow.ID, Title: "x", DueDate: nextWeek, Type: domain.TaskAI, Completed: true}, domain.ErrFutureCompletion},
		{"completed in the future", &domain.Reminder{CowID: cow.ID, Title: "x", DueDate: june2, Type: domain.TaskAI, Completed: true, CompletedAt: &nextWeek}, domain.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.reminders.Create(ctx, tc.r), tc.wantErr)
		})
	}

	all, err := svc.reminders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReminderService_ListForDateAndUpcoming(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	bella := addCow(t, svc, "Bella")
	daisy := addCow(t, svc, "Daisy")
	applyOvsynch(t, svc, bella.ID, june2)
	daisyReminders := applyOvsynch(t, svc, daisy.ID, june2)

	onStart, err := svc.reminders.ListForDate(ctx, june2)
	require.NoError(t, err)
	assert.Len(t, onStart, 2)

	_, err = svc.reminders.Complete(ctx, daisyReminders[0].ID, june2)
	require.NoError(t, err)

	onStart, err = svc.reminders.ListForDate(ctx, june2)
	require.NoError(t, err)
	assert.Len(t, onStart, 2, "completed reminders are still listed for their day")

	upcoming, err := svc.reminders.Upcoming(ctx, 7, june2)
	require.NoError(t, err)
	require.Len(t, upcoming, 3, "day 0 for Bella plus both day-7 injections")
	for i := 1; i < len(upcoming); i++ {
		assert.False(t, upcoming[i].DueDate.Before(upcoming[i-1].DueDate))
	}

	_, err = svc.reminders.Upcoming(ctx, -1, june2)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReminderService_Groups(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	for _, name := range []string{"Bella", "Daisy", "Rosie"} {
		cow := addCow(t, svc, name)
		applyOvsynch(t, svc, cow.ID, june2)
	}

	groups, err := svc.reminders.Groups(ctx, app.GroupsRequest{From: june2, Days: 8})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "GnRH Injection", groups[0].Title)
	assert.Equal(t, 3, groups[0].SubjectCount)
	assert.Equal(t, "PGF2α Injection", groups[1].Title)

	// the PGF2α day is the eighth day, outside a seven day window
	week, err := svc.reminders.Groups(ctx, app.GroupsRequest{From: june2, Days: 7})
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.Equal(t, "GnRH Injection", week[0].Title)

	forecast, err := svc.forecast.Forecast(ctx, app.ForecastRequest{From: june2, Days: 7})
	require.NoError(t, err)
	last := forecast[len(forecast)-1].Date
	for _, g := range week {
		assert.False(t, g.DueDate.After(last), "group %s falls outside the forecast window", g.Title)
	}

	all, err := svc.reminders.Groups(ctx, app.GroupsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

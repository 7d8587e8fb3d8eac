package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/herdsync/internal/repository"
	"github.com/alexanderramin/herdsync/internal/scheduler"
	"github.com/alexanderramin/herdsync/internal/testutil"
	"github.com/stretchr/testify/require"
)

var june2 = time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

type testServices struct {
	cows      CowService
	protocols ProtocolService
	reminders ReminderService
	forecast  ForecastService
	analytics AnalyticsService

	cowRepo      repository.CowRepo
	reminderRepo repository.ReminderRepo
}

// setupServices wires every service over a fresh in-memory database with the
// predefined protocols already stored.
func setupServices(t *testing.T, observers ...UseCaseObserver) testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	conn := database.Conn()

	cows := repository.NewSQLCowRepo(conn)
	protocols := repository.NewSQLProtocolRepo(conn)
	reminders := repository.NewSQLReminderRepo(conn)
	calc := scheduler.NewCalculator()

	svc := testServices{
		cows:         NewCowService(cows, uow, observers...),
		protocols:    NewProtocolService(protocols, nil, uow, observers...),
		reminders:    NewReminderService(reminders, calc, uow, observers...),
		forecast:     NewForecastService(reminders, protocols, calc, 14, observers...),
		analytics:    NewAnalyticsService(cows, reminders),
		cowRepo:      cows,
		reminderRepo: reminders,
	}
	require.NoError(t, svc.protocols.SyncCatalog(context.Background()))
	return svc
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) named(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

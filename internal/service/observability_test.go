package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseCaseObserver_RecordsApplyOutcome(t *testing.T) {
	obs := &recordingObserver{}
	svc := setupServices(t, obs)
	ctx := context.Background()
	cow := addCow(t, svc, "Bella")

	applyOvsynch(t, svc, cow.ID, june2)
	_, err := svc.reminders.ApplyProtocol(ctx, app.ApplyProtocolRequest{CowID: cow.ID, ProtocolID: "cidr", StartDate: june2, Today: &june2})
	require.Error(t, err)

	events := obs.named("apply-protocol")
	require.Len(t, events, 2)
	assert.True(t, events[0].Success)
	assert.Equal(t, 4, events[0].Fields["reminders"])
	assert.False(t, events[1].Success)
	assert.ErrorIs(t, events[1].Err, domain.ErrDuplicateActiveProtocol)
}

func TestLogUseCaseObserver_JSON(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, LogOptions{Level: "info", Format: "json"})

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "forecast", Success: true, Fields: map[string]any{"days": 14}})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "complete-reminder", Err: errors.New("boom")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"use_case":"forecast"`)
	assert.Contains(t, lines[0], `"days":14`)
	assert.Contains(t, lines[1], `"level":"ERROR"`)
	assert.Contains(t, lines[1], `"error":"boom"`)
}

func TestLogUseCaseObserver_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, LogOptions{Level: "warn"})

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "forecast", Success: true})
	assert.Empty(t, buf.String())

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "forecast", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "use_case=forecast")

	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, LogOptions{}))
}

func TestLogUseCaseObserver_RefusalsLogAtWarn(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, LogOptions{Level: "WARN", Format: "json"})

	refusal := fmt.Errorf("apply: %w", domain.ErrIneligibleSubject)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "apply-protocol", Err: refusal})

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"outcome":"refused"`)
}

func TestUseCaseEventOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{&domain.NotFoundError{Kind: "cow", ID: "x"}, "refused"},
		{domain.ErrFutureCompletion, "refused"},
		{errors.New("disk full"), "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UseCaseEvent{Err: tt.err}.Outcome())
	}
}

func TestObserverChainFansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := useCaseObserverOrNoop([]UseCaseObserver{a, nil, b})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "x"})

	assert.Len(t, a.named("x"), 1)
	assert.Len(t, b.named("x"), 1)
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.Same(t, a, useCaseObserverOrNoop([]UseCaseObserver{nil, a}))
}

func TestMetricsUseCaseObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := NewMetricsUseCaseObserver(reg)
	require.NoError(t, err)

	svc := setupServices(t, obs)
	cow := addCow(t, svc, "Bella")
	applyOvsynch(t, svc, cow.ID, june2)
	_, err = svc.reminders.Complete(context.Background(), "missing", june2)
	require.Error(t, err)

	m := obs.(*metricsUseCaseObserver)
	assert.Equal(t, 1.0, promtest.ToFloat64(m.total.WithLabelValues("apply-protocol", "success")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.total.WithLabelValues("complete-reminder", "refused")))

	path := filepath.Join(t.TempDir(), "herdsync.prom")
	require.NoError(t, WriteMetricsTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "herdsync_use_case_total")
	assert.Contains(t, string(data), "herdsync_use_case_duration_seconds")

	_, err = NewMetricsUseCaseObserver(reg)
	assert.Error(t, err, "registering twice must fail")
}

package app

import (
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// ApplyProtocolRequest starts a protocol on one cow. Today defaults to the
// current day and decides which reminders count as active.
type ApplyProtocolRequest struct {
	CowID      string
	ProtocolID string
	StartDate  time.Time
	Today      *time.Time
}

type ApplyProtocolResponse struct {
	Cow       *domain.Cow
	Protocol  *domain.Protocol
	Reminders []domain.Reminder
}

// ForecastRequest asks for per-day staffing over [From, From+Days).
type ForecastRequest struct {
	From time.Time
	Days int
}

// NewForecastRequest returns a request for the default window starting today.
func NewForecastRequest(days int) ForecastRequest {
	return ForecastRequest{From: time.Now(), Days: days}
}

// GroupsRequest selects the reminders to group: due within
// [From, From+Days] when Days is positive, every reminder otherwise.
type GroupsRequest struct {
	From time.Time
	Days int
}

// HerdStats is the dashboard snapshot. Rates are whole percentages.
type HerdStats struct {
	TotalCows          int
	CowsByStatus       map[domain.CowStatus]int
	TotalReminders     int
	ActiveReminders    int
	CompletedReminders int
	CompletedSyncs     int
	PregnancyRate      int
	ComplianceRate     int
}

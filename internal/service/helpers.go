package service

import (
	"errors"
	"math"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// percent returns part/whole as a whole percentage rounded half up; an empty
// whole yields 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// aggregateHerdStats computes the dashboard snapshot from the cow status
// counts and every reminder on record.
func aggregateHerdStats(byStatus map[domain.CowStatus]int, reminders []domain.Reminder) *app.HerdStats {
	stats := &app.HerdStats{CowsByStatus: make(map[domain.CowStatus]int, len(byStatus))}
	for status, n := range byStatus {
		stats.CowsByStatus[status] = n
		stats.TotalCows += n
	}

	stats.TotalReminders = len(reminders)
	for _, r := range reminders {
		if !r.Completed {
			stats.ActiveReminders++
			continue
		}
		stats.CompletedReminders++
		if r.Type == domain.TaskAI {
			stats.CompletedSyncs++
		}
	}

	stats.PregnancyRate = percent(byStatus[domain.CowPregnant], stats.TotalCows)
	stats.ComplianceRate = percent(stats.CompletedReminders, stats.TotalReminders)
	return stats
}

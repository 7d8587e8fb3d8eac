package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/domain"
)

const rateBarWidth = 20

// FormatStats renders the herd analytics snapshot.
func FormatStats(s *app.HerdStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-18s %d\n", "Total cows", s.TotalCows)
	for _, status := range []domain.CowStatus{domain.CowActive, domain.CowPregnant, domain.CowSick, domain.CowRetired} {
		fmt.Fprintf(&b, "  %-16s %d\n", Label(string(status)), s.CowsByStatus[status])
	}
	fmt.Fprintf(&b, "%-18s %d\n", "Active reminders", s.ActiveReminders)
	fmt.Fprintf(&b, "%-18s %d\n", "Completed syncs", s.CompletedSyncs)
	fmt.Fprintf(&b, "%-18s %s\n", "Pregnancy rate", RenderRate(s.PregnancyRate, rateBarWidth))
	fmt.Fprintf(&b, "%-18s %s\n", "Compliance rate", RenderRate(s.ComplianceRate, rateBarWidth))
	return RenderBox("Herd", strings.TrimRight(b.String(), "\n")) + "\n"
}

package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// FormatCowList renders the herd as a table.
func FormatCowList(cows []*domain.Cow) string {
	if len(cows) == 0 {
		return Dim("No cows registered. Add one with: herdsync cow add NAME --breed BREED") + "\n"
	}
	rows := make([][]string, 0, len(cows))
	for _, c := range cows {
		lastSync := Dim("--")
		if c.LastSyncDate != nil {
			lastSync = c.LastSyncDate.Format(domain.DateLayout)
		}
		rows = append(rows, []string{
			ShortID(c.ID),
			Bold(c.Name),
			c.Breed,
			strconv.Itoa(c.Age),
			CowStatusPill(c.Status),
			lastSync,
		})
	}
	return Table{
		Headers: []string{"ID", "NAME", "BREED", "AGE", "STATUS", "LAST SYNC"},
		Rows:    rows,
		Numeric: map[int]bool{3: true},
	}.Render()
}

// FormatCow renders one cow with its reminders.
func FormatCow(c *domain.Cow, reminders []domain.Reminder, ref time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(c.Name), CowStatusPill(c.Status))
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:       "), c.ID)
	fmt.Fprintf(&b, "%s %s, %d years\n", Dim("Breed:    "), c.Breed, c.Age)
	if c.LastSyncDate != nil {
		fmt.Fprintf(&b, "%s %s\n", Dim("Last sync:"), c.LastSyncDate.Format(domain.DateLayout))
	}
	if c.HealthNotes != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Notes:    "), c.HealthNotes)
	}
	if !c.EligibleForProtocol() {
		b.WriteString(paint(styleWarn, "Not eligible for synchronization protocols") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(Header("Reminders") + "\n")
	b.WriteString(FormatReminderList(reminders, nil, ref))
	return b.String()
}

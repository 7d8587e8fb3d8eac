package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/scheduler"
)

// FormatReminderList renders reminders as a table. cowNames maps cow ids to
// names; a nil map omits the cow column.
func FormatReminderList(reminders []domain.Reminder, cowNames map[string]string, ref time.Time) string {
	if len(reminders) == 0 {
		return Dim("No reminders.") + "\n"
	}
	headers := []string{"ID", "DUE", "TITLE", "TYPE", "PRIORITY", "STAFF", "DONE"}
	if cowNames != nil {
		headers = append(headers[:2:2], append([]string{"COW"}, headers[2:]...)...)
	}

	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		done := Dim("·")
		if r.Completed {
			done = paint(styleOK, "✔")
		}
		row := []string{ShortID(r.ID), DueStyled(r.DueDate, ref, r.Completed)}
		if cowNames != nil {
			name, ok := cowNames[r.CowID]
			if !ok {
				name = ShortID(r.CowID)
			}
			row = append(row, name)
		}
		row = append(row,
			r.Title,
			Label(string(r.Type)),
			PriorityLabel(r.Priority),
			snapshotString(r.WorkforceSnapshot),
			done,
		)
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// FormatApplyResult summarizes the reminders created for one cow.
func FormatApplyResult(cow *domain.Cow, protocol *domain.Protocol, reminders []domain.Reminder, ref time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Applied %s to %s: %d reminders scheduled\n\n",
		Bold(protocol.Name), Bold(cow.Name), len(reminders))
	b.WriteString(FormatReminderList(reminders, nil, ref))
	return b.String()
}

// FormatGroups renders batched tasks by day.
func FormatGroups(groups []scheduler.Group, ref time.Time) string {
	if len(groups) == 0 {
		return Dim("Nothing to do.") + "\n"
	}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			DueStyled(g.DueDate, ref, false),
			g.Title,
			Label(string(g.Type)),
			PriorityLabel(g.Priority),
			strconv.Itoa(g.SubjectCount),
		})
	}
	return Table{
		Headers: []string{"DUE", "TASK", "TYPE", "PRIORITY", "COWS"},
		Rows:    rows,
		Numeric: map[int]bool{4: true},
	}.Render()
}

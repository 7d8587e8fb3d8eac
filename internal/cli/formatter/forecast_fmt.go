package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/scheduler"
)

// FormatForecast renders the per-day staffing table followed by the task
// breakdown of every busy day.
func FormatForecast(days []scheduler.DayForecast) string {
	if len(days) == 0 {
		return Dim("Empty forecast window.") + "\n"
	}

	rows := make([][]string, 0, len(days))
	var peak domain.WorkforceSnapshot
	for _, d := range days {
		tasks := Dim("--")
		if len(d.Tasks) > 0 {
			tasks = strconv.Itoa(len(d.Tasks))
		}
		rows = append(rows, []string{
			d.Date.Format("Mon 2006-01-02"),
			countCell(d.Workers),
			countCell(d.Technicians),
			countCell(d.Doctors),
			tasks,
		})
		peak.Workers = max(peak.Workers, d.Workers)
		peak.Technicians = max(peak.Technicians, d.Technicians)
		peak.Doctors = max(peak.Doctors, d.Doctors)
	}

	var b strings.Builder
	b.WriteString(Table{
		Headers: []string{"DATE", "WORKERS", "TECHNICIANS", "DOCTORS", "TASKS"},
		Rows:    rows,
		Numeric: map[int]bool{1: true, 2: true, 3: true, 4: true},
	}.Render())
	fmt.Fprintf(&b, "\n%s %d workers, %d technicians, %d doctors\n",
		Dim("Peak:"), peak.Workers, peak.Technicians, peak.Doctors)

	for _, d := range days {
		if len(d.Tasks) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", Header(d.Date.Format("Mon 2006-01-02")))
		for _, t := range d.Tasks {
			fmt.Fprintf(&b, "  %s %s  %d cows  %s  %s\n",
				t.Task,
				Dim("("+Label(string(t.Type))+")"),
				t.SubjectCount,
				snapshotString(&t.Workforce),
				Dim("ratios: "+string(t.RatioSource)),
			)
		}
	}
	return b.String()
}

func countCell(n int) string {
	if n == 0 {
		return Dim("0")
	}
	return strconv.Itoa(n)
}

package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/herdsync/internal/app"
	"github.com/alexanderramin/herdsync/internal/catalog"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	SetPlain(true)
	m.Run()
}

func TestTableAlignsColumns(t *testing.T) {
	out := Table{
		Headers: []string{"NAME", "COWS"},
		Rows:    [][]string{{"GnRH", "3"}, {"AI", "12"}},
		Numeric: map[int]bool{1: true},
	}.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME  COWS", lines[0])
	assert.Equal(t, "────  ────", lines[1])
	assert.Equal(t, "GnRH     3", lines[2])
	assert.Equal(t, "AI      12", lines[3])

	assert.Empty(t, RenderTable(nil, nil))
}

func TestRelativeDay(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{0, "today"},
		{1, "tomorrow"},
		{-1, "yesterday"},
		{5, "in 5d"},
		{-3, "3d overdue"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeDay(domain.AddDays(ref, tc.offset), ref))
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "AI", Label("ai"))
	assert.Equal(t, "Checkup", Label("checkup"))
	assert.Equal(t, "Technician", Label("technician"))
}

func TestRenderRate(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", RenderRate(50, 10))
	assert.Equal(t, "[██████████] 100%", RenderRate(140, 10))
	assert.Equal(t, "[░░]   0%", RenderRate(-5, 1))
}

func TestFormatProtocol(t *testing.T) {
	p, err := catalog.Default().Get("ovsynch")
	require.NoError(t, err)

	out := FormatProtocol(p)
	assert.Contains(t, out, "Ovsynch (ovsynch)")
	assert.Contains(t, out, "Day 10")
	assert.Contains(t, out, "[GnRH]")
	assert.Contains(t, out, "1/20")
	assert.Contains(t, out, "note 4: Use high-quality semen")

	list := FormatProtocolList(catalog.Default().List())
	assert.Contains(t, list, "CIDR Protocol")
	assert.Contains(t, list, "per step")
	assert.Contains(t, list, "defaults", "select synch carries no step ratios")
}

func TestFormatReminderList(t *testing.T) {
	done := ref
	reminders := []domain.Reminder{
		{ID: "aaaa-1", CowID: "c1", Title: "GnRH Injection", DueDate: domain.CivilDay(ref), Type: domain.TaskInjection,
			Priority: domain.PriorityHigh, WorkforceSnapshot: &domain.WorkforceSnapshot{Workers: 1, Technicians: 1}},
		{ID: "bbbb-2", CowID: "c2", Title: "Pregnancy check", DueDate: domain.AddDays(ref, 3), Type: domain.TaskCheckup,
			Priority: domain.PriorityLow, Completed: true, CompletedAt: &done},
	}

	out := FormatReminderList(reminders, map[string]string{"c1": "Bella"}, ref)
	assert.Contains(t, out, "COW")
	assert.Contains(t, out, "Bella")
	assert.Contains(t, out, "c2", "unknown cows fall back to their id")
	assert.Contains(t, out, "2024-06-02 (today)")
	assert.Contains(t, out, "1W 1T 0D")
	assert.Contains(t, out, "✔")

	noCow := FormatReminderList(reminders, nil, ref)
	assert.NotContains(t, noCow, "COW")
	assert.Contains(t, FormatReminderList(nil, nil, ref), "No reminders.")
}

func TestFormatGroups(t *testing.T) {
	out := FormatGroups([]scheduler.Group{
		{Title: "GnRH Injection", Type: domain.TaskInjection, Priority: domain.PriorityMedium, DueDate: domain.CivilDay(ref), SubjectCount: 3},
	}, ref)
	assert.Contains(t, out, "GnRH Injection")
	assert.Contains(t, out, "Injection")
	assert.Contains(t, out, "● medium")
	assert.Contains(t, FormatGroups(nil, ref), "Nothing to do.")
}

func TestFormatForecast(t *testing.T) {
	day0 := domain.CivilDay(ref)
	days := []scheduler.DayForecast{
		{Date: day0, Workers: 1, Technicians: 2, Tasks: []scheduler.TaskLoad{{
			Task: "GnRH Injection", Type: domain.TaskInjection, SubjectCount: 20,
			Workforce: domain.WorkforceSnapshot{Workers: 1, Technicians: 2}, RatioSource: scheduler.RatioFromStep,
		}}},
		{Date: domain.AddDays(day0, 1), Tasks: []scheduler.TaskLoad{}},
	}

	out := FormatForecast(days)
	assert.Contains(t, out, "Sun 2024-06-02")
	assert.Contains(t, out, "Mon 2024-06-03")
	assert.Contains(t, out, "Peak: 1 workers, 2 technicians, 0 doctors")
	assert.Contains(t, out, "20 cows")
	assert.Contains(t, out, "ratios: step")
	assert.Equal(t, 1, strings.Count(out, "GnRH Injection"))
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(&app.HerdStats{
		TotalCows:       3,
		CowsByStatus:    map[domain.CowStatus]int{domain.CowActive: 2, domain.CowPregnant: 1},
		ActiveReminders: 4,
		CompletedSyncs:  1,
		PregnancyRate:   33,
		ComplianceRate:  40,
	})
	assert.Contains(t, out, "HERD")
	assert.Contains(t, out, "Total cows         3")
	assert.Contains(t, out, "Pregnant")
	assert.Contains(t, out, "33%")
	assert.Contains(t, out, "40%")
}

func TestFormatCow(t *testing.T) {
	sync := domain.CivilDay(ref)
	cow := &domain.Cow{ID: "c1", Name: "Clover", Breed: "Jersey", Age: 3, Status: domain.CowSick, LastSyncDate: &sync, HealthNotes: "mastitis"}

	out := FormatCow(cow, nil, ref)
	assert.Contains(t, out, "Clover")
	assert.Contains(t, out, "Sick")
	assert.Contains(t, out, "Jersey, 3 years")
	assert.Contains(t, out, "mastitis")
	assert.Contains(t, out, "Not eligible")

	list := FormatCowList([]*domain.Cow{cow})
	assert.Contains(t, list, "2024-06-02")
	assert.Contains(t, FormatCowList(nil), "No cows registered")
}

package scheduler

import (
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// DefaultForecastDays is the forecast window used when none is configured.
const DefaultForecastDays = 14

// RatioSource records where a task's capacity ratios came from.
type RatioSource string

const (
	RatioFromStep    RatioSource = "step"
	RatioFromDefault RatioSource = "default"
)

// ForecastSource supplies the reminders due on a day and resolves the
// protocol step a reminder was generated from.
type ForecastSource interface {
	ForDate(day time.Time) []domain.Reminder
	StepFor(r domain.Reminder) (*domain.ProtocolStep, bool)
}

// TaskLoad is the staffing needed for one task on one day.
type TaskLoad struct {
	Task         string
	Type         domain.TaskType
	SubjectCount int
	Workforce    domain.WorkforceSnapshot
	RatioSource  RatioSource
}

// DayForecast is the total staffing needed on one calendar day.
type DayForecast struct {
	Date        time.Time
	Workers     int
	Technicians int
	Doctors     int
	Tasks       []TaskLoad
}

// Totals returns the day totals as a snapshot.
func (d DayForecast) Totals() domain.WorkforceSnapshot {
	return domain.WorkforceSnapshot{Workers: d.Workers, Technicians: d.Technicians, Doctors: d.Doctors}
}

// GenerateForecast returns one entry per day in
// [reference, reference+windowDays). Days without incomplete reminders are
// present with zero totals and an empty task list.
func GenerateForecast(src ForecastSource, calc Calculator, windowDays int, reference time.Time) []DayForecast {
	if windowDays <= 0 {
		return []DayForecast{}
	}
	start := domain.CivilDay(reference)
	out := make([]DayForecast, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		out = append(out, forecastDay(src, calc, domain.AddDays(start, i)))
	}
	return out
}

func forecastDay(src ForecastSource, calc Calculator, day time.Time) DayForecast {
	df := DayForecast{Date: day, Tasks: []TaskLoad{}}

	due := src.ForDate(day)
	byID := make(map[string]domain.Reminder, len(due))
	for _, r := range due {
		byID[r.ID] = r
	}

	for _, g := range GroupByTask(due) {
		ratio, source := resolveRatio(src, calc, g, byID)
		need := calc.Compute(g.SubjectCount, ratio)
		df.Tasks = append(df.Tasks, TaskLoad{
			Task:         g.Title,
			Type:         g.Type,
			SubjectCount: g.SubjectCount,
			Workforce:    need,
			RatioSource:  source,
		})
		df.Workers += need.Workers
		df.Technicians += need.Technicians
		df.Doctors += need.Doctors
	}
	return df
}

// resolveRatio uses the ratios of the first member traceable to a protocol
// step that carries them, else the task-type default.
func resolveRatio(src ForecastSource, calc Calculator, g Group, byID map[string]domain.Reminder) (domain.CapacityRatio, RatioSource) {
	for _, id := range g.ReminderIDs {
		r, ok := byID[id]
		if !ok || !r.FromProtocol() {
			continue
		}
		step, ok := src.StepFor(r)
		if ok && step != nil && !step.Ratios.IsZero() {
			return step.Ratios, RatioFromStep
		}
	}
	return calc.UseDefaults(g.Type), RatioFromDefault
}

package scheduler

import (
	"math"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// Required returns the head-count needed to cover count cows when one staff
// member handles ratio cows. A ratio <= 0 means the role is not configured.
func Required(count int, ratio float64) int {
	if ratio <= 0 || count <= 0 {
		return 0
	}
	n := int(math.Ceil(float64(count) / ratio))
	if n < 1 {
		return 1
	}
	return n
}

// RatioTable maps task types to their default capacity ratios.
type RatioTable map[domain.TaskType]domain.CapacityRatio

// DefaultRatios returns the built-in per-task-type capacity ratios.
func DefaultRatios() RatioTable {
	return RatioTable{
		domain.TaskInjection: {WorkerPerSubjects: 20, TechnicianPerSubjects: 15},
		domain.TaskAI:        {TechnicianPerSubjects: 10},
		domain.TaskCheckup:   {WorkerPerSubjects: 25, DoctorPerSubjects: 20},
		domain.TaskCustom:    {WorkerPerSubjects: 15, TechnicianPerSubjects: 12},
	}
}

// Lookup returns the ratio for t, falling back to the custom entry for
// unknown types.
func (rt RatioTable) Lookup(t domain.TaskType) domain.CapacityRatio {
	if r, ok := rt[t]; ok {
		return r
	}
	return rt[domain.TaskCustom]
}

// Merge returns a copy of rt with entries from override replacing whole
// per-type ratios.
func (rt RatioTable) Merge(override RatioTable) RatioTable {
	out := make(RatioTable, len(rt)+len(override))
	for k, v := range rt {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Calculator sizes staffing for a number of cows.
type Calculator struct {
	Defaults RatioTable
}

// NewCalculator returns a calculator over the built-in defaults.
func NewCalculator() Calculator {
	return Calculator{Defaults: DefaultRatios()}
}

// Compute returns the per-role head-count for count cows under ratio.
func (c Calculator) Compute(count int, ratio domain.CapacityRatio) domain.WorkforceSnapshot {
	return domain.WorkforceSnapshot{
		Workers:     Required(count, ratio.WorkerPerSubjects),
		Technicians: Required(count, ratio.TechnicianPerSubjects),
		Doctors:     Required(count, ratio.DoctorPerSubjects),
	}
}

// UseDefaults returns the default ratio for a task type.
func (c Calculator) UseDefaults(t domain.TaskType) domain.CapacityRatio {
	if c.Defaults == nil {
		return DefaultRatios().Lookup(t)
	}
	return c.Defaults.Lookup(t)
}

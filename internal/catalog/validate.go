package catalog

import (
	"fmt"

	"github.com/alexanderramin/herdsync/internal/domain"
)

const (
	MinDurationDays = 1
	MaxDurationDays = 30
	MinSteps        = 2
)

// Validate checks a protocol for structural errors and reports all of them
// in a single *domain.ValidationError. It returns nil for a valid protocol.
func Validate(p *domain.Protocol) error {
	if p == nil {
		return domain.NewValidationError("protocol", []string{"protocol is required"})
	}

	var problems []string

	if p.Name == "" {
		problems = append(problems, "name is required")
	}
	if p.Description == "" {
		problems = append(problems, "description is required")
	}
	if p.DurationDays < MinDurationDays || p.DurationDays > MaxDurationDays {
		problems = append(problems, fmt.Sprintf("duration must be between %d and %d days, got %d",
			MinDurationDays, MaxDurationDays, p.DurationDays))
	}
	if len(p.Steps) < MinSteps {
		problems = append(problems, fmt.Sprintf("at least %d steps are required, got %d", MinSteps, len(p.Steps)))
	}

	stepIDs := map[string]bool{}
	for i, s := range p.Steps {
		if s.Title == "" {
			problems = append(problems, fmt.Sprintf("step[%d]: title is required", i))
		}
		if s.Description == "" {
			problems = append(problems, fmt.Sprintf("step[%d]: description is required", i))
		}
		if s.Day < 0 {
			problems = append(problems, fmt.Sprintf("step[%d]: day must be >= 0, got %d", i, s.Day))
		}
		if s.ID != "" {
			if stepIDs[s.ID] {
				problems = append(problems, fmt.Sprintf("step[%d]: duplicate id %q", i, s.ID))
			}
			stepIDs[s.ID] = true
		}
		problems = append(problems, validateRatios(fmt.Sprintf("step[%d]", i), s.Ratios)...)
	}

	subject := "protocol"
	if p.ID != "" {
		subject = fmt.Sprintf("protocol %q", p.ID)
	}
	return domain.NewValidationError(subject, problems)
}

func validateRatios(prefix string, r domain.CapacityRatio) []string {
	var problems []string
	if r.WorkerPerSubjects < 0 {
		problems = append(problems, prefix+": worker_per_cows must be positive")
	}
	if r.TechnicianPerSubjects < 0 {
		problems = append(problems, prefix+": technician_per_cows must be positive")
	}
	if r.DoctorPerSubjects < 0 {
		problems = append(problems, prefix+": doctor_per_cows must be positive")
	}
	return problems
}

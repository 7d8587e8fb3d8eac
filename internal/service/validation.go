package service

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdsync/internal/domain"
)

func validateCow(c *domain.Cow) error {
	var problems []string
	if strings.TrimSpace(c.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(c.Breed) == "" {
		problems = append(problems, "breed is required")
	}
	if c.Age < 0 {
		problems = append(problems, fmt.Sprintf("age must be >= 0, got %d", c.Age))
	}
	if !domain.ValidCowStatuses[string(c.Status)] {
		problems = append(problems, fmt.Sprintf("unknown status %q", c.Status))
	}
	return domain.NewValidationError("cow", problems)
}

// validateReminder checks an ad-hoc reminder before it is stored.
func validateReminder(r *domain.Reminder) error {
	var problems []string
	if strings.TrimSpace(r.CowID) == "" {
		problems = append(problems, "cow id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		problems = append(problems, "title is required")
	}
	if r.DueDate.IsZero() {
		problems = append(problems, "due date is required")
	}
	if !domain.ValidPriorities[string(r.Priority)] {
		problems = append(problems, fmt.Sprintf("unknown priority %q", r.Priority))
	}
	if !domain.ValidTaskTypes[string(r.Type)] {
		problems = append(problems, fmt.Sprintf("unknown type %q", r.Type))
	}
	if r.StepID != "" && r.ProtocolID == "" {
		problems = append(problems, "step id requires a protocol id")
	}
	if r.EstimatedCowCount != nil && *r.EstimatedCowCount < 0 {
		problems = append(problems, "estimated cow count must be >= 0")
	}
	if w := r.WorkforceSnapshot; w != nil && (w.Workers < 0 || w.Technicians < 0 || w.Doctors < 0) {
		problems = append(problems, "workforce snapshot counts must be >= 0")
	}
	return domain.NewValidationError("reminder", problems)
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrValidation              = errors.New("validation failed")
	ErrIneligibleSubject       = errors.New("cow is not eligible for a protocol")
	ErrDuplicateActiveProtocol = errors.New("cow already has an active protocol")
	ErrFutureCompletion        = errors.New("reminder is not due yet")
	ErrNotFound                = errors.New("not found")
)

// ValidationError collects every structural problem found in one pass.
type ValidationError struct {
	Subject  string
	Problems []string
}

func (e *ValidationError) Error() string {
	if e.Subject == "" {
		return "invalid: " + strings.Join(e.Problems, "; ")
	}
	return fmt.Sprintf("invalid %s: %s", e.Subject, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError returns nil when problems is empty.
func NewValidationError(subject string, problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Subject: subject, Problems: problems}
}

type IneligibleSubjectError struct {
	CowID  string
	Status CowStatus
}

func (e *IneligibleSubjectError) Error() string {
	return fmt.Sprintf("cow %s has status %q: protocols cannot be applied to sick, retired or pregnant cows", e.CowID, e.Status)
}

func (e *IneligibleSubjectError) Unwrap() error { return ErrIneligibleSubject }

type DuplicateActiveProtocolError struct {
	CowID      string
	ProtocolID string
	ReminderID string
	DueDate    time.Time
}

func (e *DuplicateActiveProtocolError) Error() string {
	return fmt.Sprintf("cow %s already has an active protocol %q (reminder %s due %s)",
		e.CowID, e.ProtocolID, e.ReminderID, e.DueDate.Format(DateLayout))
}

func (e *DuplicateActiveProtocolError) Unwrap() error { return ErrDuplicateActiveProtocol }

type FutureCompletionError struct {
	ReminderID string
	DueDate    time.Time
	Reference  time.Time
}

func (e *FutureCompletionError) Error() string {
	return fmt.Sprintf("reminder %s is due %s and cannot be completed on %s",
		e.ReminderID, e.DueDate.Format(DateLayout), e.Reference.Format(DateLayout))
}

func (e *FutureCompletionError) Unwrap() error { return ErrFutureCompletion }

// NotFoundError names the kind of entity (cow, protocol, reminder) that was missing.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

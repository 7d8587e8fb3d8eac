package domain

import "time"

// WorkforceSnapshot is a staff head-count per role.
type WorkforceSnapshot struct {
	Workers     int
	Technicians int
	Doctors     int
}

// Add returns the role-wise sum of two snapshots.
func (w WorkforceSnapshot) Add(o WorkforceSnapshot) WorkforceSnapshot {
	return WorkforceSnapshot{
		Workers:     w.Workers + o.Workers,
		Technicians: w.Technicians + o.Technicians,
		Doctors:     w.Doctors + o.Doctors,
	}
}

// Total is the head-count across all roles.
func (w WorkforceSnapshot) Total() int {
	return w.Workers + w.Technicians + w.Doctors
}

type Reminder struct {
	ID          string
	CowID       string
	ProtocolID  string // empty for ad-hoc reminders
	StepID      string
	Title       string
	Description string
	DueDate     time.Time
	Completed   bool
	CompletedAt *time.Time
	Priority    Priority
	Type        TaskType

	EstimatedCowCount *int
	WorkforceSnapshot *WorkforceSnapshot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromProtocol reports whether the reminder was generated from a protocol step.
func (r *Reminder) FromProtocol() bool {
	return r.ProtocolID != ""
}

// DueOnOrAfter reports whether the reminder falls on day or later.
func (r *Reminder) DueOnOrAfter(day time.Time) bool {
	return !CivilDay(r.DueDate).Before(CivilDay(day))
}

// Active reports whether the reminder keeps its cow's protocol active as of
// today: incomplete, protocol-originated and due today or later.
func (r *Reminder) Active(today time.Time) bool {
	return !r.Completed && r.FromProtocol() && r.DueOnOrAfter(today)
}

// MarkCompleted latches the reminder as done. Completing an already completed
// reminder is a no-op; a reminder due after reference is refused unchanged.
func (r *Reminder) MarkCompleted(reference time.Time) error {
	if r.Completed {
		return nil
	}
	if CivilDay(r.DueDate).After(CivilDay(reference)) {
		return &FutureCompletionError{
			ReminderID: r.ID,
			DueDate:    CivilDay(r.DueDate),
			Reference:  CivilDay(reference),
		}
	}
	at := reference
	r.Completed = true
	r.CompletedAt = &at
	r.UpdatedAt = reference
	return nil
}

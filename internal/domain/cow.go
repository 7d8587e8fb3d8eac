package domain

import "time"

type Cow struct {
	ID           string
	Name         string
	Breed        string
	Age          int
	Status       CowStatus
	HealthNotes  string
	LastSyncDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EligibleForProtocol reports whether a synchronization protocol may be
// started on the cow. Sick, retired and pregnant cows are excluded.
func (c *Cow) EligibleForProtocol() bool {
	switch c.Status {
	case CowSick, CowRetired, CowPregnant:
		return false
	default:
		return true
	}
}

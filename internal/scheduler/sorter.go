package scheduler

import (
	"sort"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// PriorityRank returns a sort rank for a priority (lower = more urgent).
func PriorityRank(p domain.Priority) int {
	switch p {
	case domain.PriorityHigh:
		return 0
	case domain.PriorityMedium:
		return 1
	case domain.PriorityLow:
		return 2
	default:
		return 3
	}
}

// CanonicalSort orders groups deterministically:
// 1. Due date: earliest first
// 2. Title: lexical ascending
// 3. Task type: lexical ascending
// 4. Priority: high before medium before low
func CanonicalSort(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]

		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return PriorityRank(a.Priority) < PriorityRank(b.Priority)
	})
}

// SortReminders orders reminders by due date, then priority, then title and id.
func SortReminders(reminders []domain.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		a, b := reminders[i], reminders[j]
		da, db := domain.CivilDay(a.DueDate), domain.CivilDay(b.DueDate)
		if !da.Equal(db) {
			return da.Before(db)
		}
		if ra, rb := PriorityRank(a.Priority), PriorityRank(b.Priority); ra != rb {
			return ra < rb
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
}

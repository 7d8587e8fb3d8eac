package scheduler

import (
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// Group aggregates incomplete reminders that describe the same task.
type Group struct {
	Title       string
	Type        domain.TaskType
	Priority    domain.Priority
	DueDate     time.Time
	ReminderIDs []string
	// SubjectCount is the number of reminders (one cow each) in the group.
	SubjectCount int
}

type groupKey struct {
	title    string
	typ      domain.TaskType
	priority domain.Priority
	day      time.Time
}

// GroupByTaskAndDate partitions the incomplete reminders by
// (title, type, priority, due day). Every incomplete reminder lands in
// exactly one group; completed reminders are ignored.
func GroupByTaskAndDate(reminders []domain.Reminder) []Group {
	return groupBy(reminders, func(r domain.Reminder) groupKey {
		return groupKey{title: r.Title, typ: r.Type, priority: r.Priority, day: domain.CivilDay(r.DueDate)}
	})
}

// GroupByTask partitions incomplete reminders by (title, type) only. It is
// meant for reminders already restricted to a single day; the group carries
// the priority and due day of its first member.
func GroupByTask(reminders []domain.Reminder) []Group {
	return groupBy(reminders, func(r domain.Reminder) groupKey {
		return groupKey{title: r.Title, typ: r.Type}
	})
}

func groupBy(reminders []domain.Reminder, keyOf func(domain.Reminder) groupKey) []Group {
	index := make(map[groupKey]int)
	groups := make([]Group, 0)
	for _, r := range reminders {
		if r.Completed {
			continue
		}
		k := keyOf(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{
				Title:    r.Title,
				Type:     r.Type,
				Priority: r.Priority,
				DueDate:  domain.CivilDay(r.DueDate),
			})
		}
		groups[i].ReminderIDs = append(groups[i].ReminderIDs, r.ID)
		groups[i].SubjectCount++
	}
	CanonicalSort(groups)
	return groups
}

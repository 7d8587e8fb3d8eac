package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// resolveCowID accepts a full id, an id prefix or a cow name
// (case-insensitive).
func resolveCowID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("cow is required")
	}
	cows, err := app.Cows.List(ctx)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(cows))
	for _, c := range cows {
		if c.ID == input {
			return c.ID, nil
		}
		ids = append(ids, c.ID)
	}
	var byName []string
	for _, c := range cows {
		if strings.EqualFold(c.Name, input) {
			byName = append(byName, c.ID)
		}
	}
	switch len(byName) {
	case 1:
		return byName[0], nil
	case 0:
	default:
		return "", fmt.Errorf("cow name %q is ambiguous (%d matches), use the id", input, len(byName))
	}
	return matchPrefix("cow", input, ids)
}

// resolveReminderID accepts a full reminder id or a unique prefix.
func resolveReminderID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("reminder id is required")
	}
	reminders, err := app.Reminders.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(reminders))
	for _, r := range reminders {
		if r.ID == input {
			return r.ID, nil
		}
		ids = append(ids, r.ID)
	}
	return matchPrefix("reminder", input, ids)
}

func matchPrefix(kind, input string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", &domain.NotFoundError{Kind: kind, ID: input}
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s id prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// parseDay parses a YYYY-MM-DD flag; empty means today.
func parseDay(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return domain.CivilDay(now), nil
	}
	switch strings.ToLower(value) {
	case "today":
		return domain.CivilDay(now), nil
	case "tomorrow":
		return domain.AddDays(now, 1), nil
	case "yesterday":
		return domain.AddDays(now, -1), nil
	}
	day, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return day, nil
}

func cowNames(ctx context.Context, app *App) (map[string]string, error) {
	cows, err := app.Cows.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cows))
	for _, c := range cows {
		names[c.ID] = c.Name
	}
	return names, nil
}

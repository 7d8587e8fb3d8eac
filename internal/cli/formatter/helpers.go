package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label title-cases an enum value for display, e.g. "checkup" -> "Checkup".
// The AI task type is rendered as "AI".
func Label(s string) string {
	if s == string(domain.TaskAI) {
		return "AI"
	}
	return cases.Title(language.English).String(s)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	if plain {
		if title == "" {
			return content
		}
		return Header(title) + "\n" + content
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(paint(styleHeading, strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes due relative to the calendar day of ref.
func RelativeDay(due, ref time.Time) string {
	days := int(domain.CivilDay(due).Sub(domain.CivilDay(ref)).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 0:
		return fmt.Sprintf("in %dd", days)
	default:
		return fmt.Sprintf("%dd overdue", -days)
	}
}

// DueStyled renders a due date with urgency coloring; overdue and due-today
// reminders are red, the coming week yellow.
func DueStyled(due, ref time.Time, completed bool) string {
	text := fmt.Sprintf("%s (%s)", due.Format(domain.DateLayout), RelativeDay(due, ref))
	if completed {
		return paint(styleMuted, due.Format(domain.DateLayout))
	}
	days := int(domain.CivilDay(due).Sub(domain.CivilDay(ref)).Hours() / 24)
	switch {
	case days <= 0:
		return paint(styleAlert, text)
	case days <= 7:
		return paint(styleWarn, text)
	default:
		return paint(styleText, text)
	}
}

// ShortID trims a uuid to its first segment for table display.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func formatRatio(v float64) string {
	if v <= 0 {
		return "-"
	}
	return fmt.Sprintf("1/%g", v)
}

func snapshotString(w *domain.WorkforceSnapshot) string {
	if w == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%dW %dT %dD", w.Workers, w.Technicians, w.Doctors)
}

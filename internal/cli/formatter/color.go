package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. Adaptive colors keep the output readable on light
// and dark backgrounds alike.
var (
	okColor      = lipgloss.AdaptiveColor{Light: "#2f7d32", Dark: "#9ccc65"}
	warnColor    = lipgloss.AdaptiveColor{Light: "#b26a00", Dark: "#ffca28"}
	alertColor   = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ef5350"}
	accentColor  = lipgloss.AdaptiveColor{Light: "#1565c0", Dark: "#64b5f6"}
	calfColor    = lipgloss.AdaptiveColor{Light: "#8e24aa", Dark: "#ce93d8"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9e9e9e"}
	textColor    = lipgloss.AdaptiveColor{Light: "#212121", Dark: "#eeeeee"}
	headingColor = lipgloss.AdaptiveColor{Light: "#6d4c41", Dark: "#ffab40"}
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(okColor)
	styleWarn    = lipgloss.NewStyle().Foreground(warnColor)
	styleAlert   = lipgloss.NewStyle().Foreground(alertColor)
	styleAccent  = lipgloss.NewStyle().Foreground(accentColor)
	styleCalf    = lipgloss.NewStyle().Foreground(calfColor)
	styleMuted   = lipgloss.NewStyle().Foreground(mutedColor)
	styleText    = lipgloss.NewStyle().Foreground(textColor)
	styleHeading = lipgloss.NewStyle().Foreground(headingColor).Bold(true)
	styleStrong  = styleText.Bold(true)
)

var plain bool

// SetPlain turns styling off for pipes and redirected output.
func SetPlain(v bool) { plain = v }

func paint(s lipgloss.Style, text string) string {
	if plain {
		return text
	}
	return s.Render(text)
}

var priorityStyles = map[domain.Priority]lipgloss.Style{
	domain.PriorityHigh:   styleAlert,
	domain.PriorityMedium: styleWarn,
	domain.PriorityLow:    styleMuted,
}

// PriorityLabel renders a priority such as "● high".
func PriorityLabel(p domain.Priority) string {
	s, ok := priorityStyles[p]
	if !ok {
		s = styleMuted
	}
	return paint(s, "● "+string(p))
}

type statusPill struct {
	style lipgloss.Style
	glyph string
}

var statusPills = map[domain.CowStatus]statusPill{
	domain.CowActive:   {styleOK, "●"},
	domain.CowPregnant: {styleCalf, "◆"},
	domain.CowSick:     {styleAlert, "✚"},
	domain.CowRetired:  {styleMuted, "✖"},
}

// CowStatusPill renders a cow status as a glyph and a capitalized word.
func CowStatusPill(status domain.CowStatus) string {
	pill, ok := statusPills[status]
	if !ok {
		return paint(styleMuted, string(status))
	}
	word := string(status)
	if word != "" {
		word = strings.ToUpper(word[:1]) + word[1:]
	}
	return paint(pill.style, pill.glyph+" "+word)
}

// Header renders an upper-cased section title over a rule of equal width.
func Header(text string) string {
	title := strings.ToUpper(text)
	return fmt.Sprintf("%s\n%s", paint(styleHeading, title), paint(styleMuted, strings.Repeat("─", lipgloss.Width(title))))
}

func Dim(text string) string { return paint(styleMuted, text) }

func Bold(text string) string { return paint(styleStrong, text) }

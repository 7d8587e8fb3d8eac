package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// FormatProtocolList renders the available synchronization methods.
func FormatProtocolList(protocols []*domain.Protocol) string {
	if len(protocols) == 0 {
		return Dim("No protocols available.") + "\n"
	}
	rows := make([][]string, 0, len(protocols))
	for _, p := range protocols {
		kind := Dim("predefined")
		if p.IsCustom {
			kind = paint(styleAccent, "custom")
		}
		workforce := Dim("defaults")
		if p.HasWorkforceSettings {
			workforce = paint(styleOK, "per step")
		}
		rows = append(rows, []string{
			p.ID,
			Bold(p.Name),
			strconv.Itoa(p.DurationDays) + "d",
			strconv.Itoa(len(p.Steps)),
			kind,
			workforce,
		})
	}
	return Table{
		Headers: []string{"ID", "NAME", "DURATION", "STEPS", "KIND", "WORKFORCE"},
		Rows:    rows,
		Numeric: map[int]bool{2: true, 3: true},
	}.Render()
}

// FormatProtocol renders a protocol and its step schedule.
func FormatProtocol(p *domain.Protocol) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold(p.Name), Dim("("+p.ID+")"))
	fmt.Fprintf(&b, "%s\n", p.Description)
	fmt.Fprintf(&b, "%s %d days\n\n", Dim("Duration:"), p.DurationDays)

	rows := make([][]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		title := s.Title
		if s.HormoneType != "" {
			title += " " + Dim("["+s.HormoneType+"]")
		}
		rows = append(rows, []string{
			s.ID,
			"Day " + strconv.Itoa(s.Day),
			title,
			formatRatio(s.Ratios.WorkerPerSubjects),
			formatRatio(s.Ratios.TechnicianPerSubjects),
			formatRatio(s.Ratios.DoctorPerSubjects),
		})
	}
	b.WriteString(Table{
		Headers: []string{"STEP", "DAY", "TITLE", "WORKER", "TECHNICIAN", "DOCTOR"},
		Rows:    rows,
	}.Render())

	for _, s := range p.Steps {
		if s.Notes != "" {
			fmt.Fprintf(&b, "%s %s: %s\n", Dim("note"), s.ID, s.Notes)
		}
	}
	return b.String()
}

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/herdsync/internal/domain"
	"gopkg.in/yaml.v3"
)

// ProtocolFile is the on-disk shape of a user-defined synchronization method.
type ProtocolFile struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Duration    int        `yaml:"duration"`
	IsCustom    *bool      `yaml:"isCustom,omitempty"`
	Steps       []StepFile `yaml:"steps"`
}

type StepFile struct {
	ID                string  `yaml:"id"`
	Day               int     `yaml:"day"`
	Title             string  `yaml:"title"`
	Description       string  `yaml:"description"`
	HormoneType       string  `yaml:"hormoneType,omitempty"`
	Notes             string  `yaml:"notes,omitempty"`
	WorkerPerCows     float64 `yaml:"worker_per_cows,omitempty"`
	TechnicianPerCows float64 `yaml:"technician_per_cows,omitempty"`
	DoctorPerCows     float64 `yaml:"doctor_per_cows,omitempty"`
}

// Protocol converts the file form into a domain protocol. Step ids default
// to their 1-based position; files without isCustom are treated as custom.
func (f ProtocolFile) Protocol() *domain.Protocol {
	p := &domain.Protocol{
		ID:           strings.TrimSpace(f.ID),
		Name:         strings.TrimSpace(f.Name),
		Description:  strings.TrimSpace(f.Description),
		DurationDays: f.Duration,
		IsCustom:     f.IsCustom == nil || *f.IsCustom,
		Steps:        make([]domain.ProtocolStep, 0, len(f.Steps)),
	}
	for i, s := range f.Steps {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}
		p.Steps = append(p.Steps, domain.ProtocolStep{
			ID:          id,
			Day:         s.Day,
			Title:       strings.TrimSpace(s.Title),
			Description: strings.TrimSpace(s.Description),
			HormoneType: strings.TrimSpace(s.HormoneType),
			Notes:       strings.TrimSpace(s.Notes),
			Ratios: domain.CapacityRatio{
				WorkerPerSubjects:     s.WorkerPerCows,
				TechnicianPerSubjects: s.TechnicianPerCows,
				DoctorPerSubjects:     s.DoctorPerCows,
			},
		})
	}
	p.HasWorkforceSettings = p.HasStepRatios()
	return p
}

// ParseProtocolYAML decodes and validates a single protocol payload.
func ParseProtocolYAML(data []byte) (*domain.Protocol, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("catalog: protocol payload is empty")
	}
	var f ProtocolFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode protocol: %w", err)
	}
	p := f.Protocol()
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFile reads a protocol definition from disk.
func LoadFile(path string) (*domain.Protocol, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	p, err := ParseProtocolYAML(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	if p.ID == "" {
		p.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// LoadDir scans dir for *.yaml and *.yml protocol files, sorted by path.
// A missing directory yields no protocols.
func LoadDir(dir string) ([]*domain.Protocol, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: read %s: %w", trimmed, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var out []*domain.Protocol
	for _, name := range names {
		p, err := LoadFile(filepath.Join(trimmed, name))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// MarshalProtocol renders p in the file form accepted by ParseProtocolYAML.
func MarshalProtocol(p *domain.Protocol) ([]byte, error) {
	custom := p.IsCustom
	f := ProtocolFile{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Duration:    p.DurationDays,
		IsCustom:    &custom,
	}
	for _, s := range p.Steps {
		f.Steps = append(f.Steps, StepFile{
			ID:                s.ID,
			Day:               s.Day,
			Title:             s.Title,
			Description:       s.Description,
			HormoneType:       s.HormoneType,
			Notes:             s.Notes,
			WorkerPerCows:     s.Ratios.WorkerPerSubjects,
			TechnicianPerCows: s.Ratios.TechnicianPerSubjects,
			DoctorPerCows:     s.Ratios.DoctorPerSubjects,
		})
	}
	return yaml.Marshal(f)
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}

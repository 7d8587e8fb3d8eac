package domain

// CapacityRatio is the number of cows one staff member of each role can cover
// for a task. Zero means the role is not configured for the task.
type CapacityRatio struct {
	WorkerPerSubjects     float64
	TechnicianPerSubjects float64
	DoctorPerSubjects     float64
}

// IsZero reports whether no role carries a ratio.
func (r CapacityRatio) IsZero() bool {
	return r.WorkerPerSubjects <= 0 && r.TechnicianPerSubjects <= 0 && r.DoctorPerSubjects <= 0
}

// For returns the ratio configured for a single role.
func (r CapacityRatio) For(role Role) float64 {
	switch role {
	case RoleWorker:
		return r.WorkerPerSubjects
	case RoleTechnician:
		return r.TechnicianPerSubjects
	case RoleDoctor:
		return r.DoctorPerSubjects
	default:
		return 0
	}
}

type ProtocolStep struct {
	ID          string
	Day         int
	Title       string
	Description string
	HormoneType string
	Notes       string
	Ratios      CapacityRatio
}

// Protocol is a reusable synchronization method: an ordered list of steps,
// each offset in days from the protocol start.
type Protocol struct {
	ID                   string
	Name                 string
	Description          string
	DurationDays         int
	Steps                []ProtocolStep
	IsCustom             bool
	HasWorkforceSettings bool
}

// Step looks up a step by id.
func (p *Protocol) Step(id string) (*ProtocolStep, bool) {
	for i := range p.Steps {
		if p.Steps[i].ID == id {
			return &p.Steps[i], true
		}
	}
	return nil, false
}

// HasStepRatios reports whether at least one step carries a capacity ratio.
func (p *Protocol) HasStepRatios() bool {
	for _, s := range p.Steps {
		if !s.Ratios.IsZero() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hand protocols across package
// boundaries without sharing the step slice.
func (p *Protocol) Clone() *Protocol {
	cp := *p
	cp.Steps = make([]ProtocolStep, len(p.Steps))
	copy(cp.Steps, p.Steps)
	return &cp
}

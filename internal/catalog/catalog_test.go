package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProtocol() *domain.Protocol {
	return &domain.Protocol{
		ID:           "custom-1",
		Name:         "Two Shot",
		Description:  "Two injections a week apart",
		DurationDays: 7,
		IsCustom:     true,
		Steps: []domain.ProtocolStep{
			{ID: "1", Day: 0, Title: "First shot", Description: "GnRH"},
			{ID: "2", Day: 7, Title: "Second shot", Description: "PGF2α"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validProtocol()))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	p := &domain.Protocol{
		DurationDays: 31,
		Steps:        []domain.ProtocolStep{{ID: "1", Day: 0}},
	}
	err := Validate(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Problems, "name is required")
	assert.Contains(t, ve.Problems, "description is required")
	assert.Contains(t, ve.Problems, "duration must be between 1 and 30 days, got 31")
	assert.Contains(t, ve.Problems, "at least 2 steps are required, got 1")
	assert.Contains(t, ve.Problems, "step[0]: title is required")
	assert.Contains(t, ve.Problems, "step[0]: description is required")
}

func TestValidate_StepRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(p *domain.Protocol)
		problem string
	}{
		{"negative day", func(p *domain.Protocol) { p.Steps[1].Day = -1 }, "step[1]: day must be >= 0, got -1"},
		{"duplicate id", func(p *domain.Protocol) { p.Steps[1].ID = "1" }, `step[1]: duplicate id "1"`},
		{"negative ratio", func(p *domain.Protocol) { p.Steps[0].Ratios.TechnicianPerSubjects = -5 },
			"step[0]: technician_per_cows must be positive"},
		{"zero duration", func(p *domain.Protocol) { p.DurationDays = 0 }, "duration must be between 1 and 30 days, got 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProtocol()
			tc.mutate(p)
			var ve *domain.ValidationError
			require.ErrorAs(t, Validate(p), &ve)
			assert.Equal(t, []string{tc.problem}, ve.Problems)
		})
	}
}

func TestValidate_NonIncreasingDaysAllowed(t *testing.T) {
	p := validProtocol()
	p.Steps[0].Day, p.Steps[1].Day = 5, 2
	assert.NoError(t, Validate(p))
}

func TestValidate_Nil(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), domain.ErrValidation)
}

func TestPredefined_AllValid(t *testing.T) {
	for _, p := range Predefined() {
		assert.NoError(t, Validate(p), p.ID)
		assert.False(t, p.IsCustom, p.ID)
	}
}

func TestPredefined_StepDays(t *testing.T) {
	want := map[string][]int{
		"ovsynch":     {0, 7, 9, 10},
		"cidr":        {0, 7, 8, 9},
		"selectsynch": {0, 7, 8, 10},
	}
	for _, p := range Predefined() {
		var days []int
		for _, s := range p.Steps {
			days = append(days, s.Day)
		}
		assert.Equal(t, want[p.ID], days, p.ID)
		assert.Equal(t, p.HasWorkforceSettings, p.HasStepRatios(), p.ID)
	}
}

func TestCatalog_GetAndNotFound(t *testing.T) {
	c := Default()
	p, err := c.Get("ovsynch")
	require.NoError(t, err)
	assert.Equal(t, "Ovsynch", p.Name)

	_, err = c.Get("missing")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "protocol", nf.Kind)
	assert.Equal(t, "missing", nf.ID)
}

func TestCatalog_GetReturnsClone(t *testing.T) {
	c := Default()
	p, err := c.Get("cidr")
	require.NoError(t, err)
	p.Steps[0].Title = "changed"

	again, err := c.Get("cidr")
	require.NoError(t, err)
	assert.Equal(t, "CIDR Insertion", again.Steps[0].Title)
}

func TestCatalog_RegisterRejectsDuplicateAndInvalid(t *testing.T) {
	c := Default()
	dup := validProtocol()
	dup.ID = "ovsynch"
	assert.ErrorIs(t, c.Register(dup), domain.ErrValidation)

	bad := validProtocol()
	bad.Name = ""
	assert.ErrorIs(t, c.Register(bad), domain.ErrValidation)
	assert.Equal(t, 3, c.Len())
}

func TestCatalog_ListOrdersBuiltinThenCustomByName(t *testing.T) {
	c := Default()
	b := validProtocol()
	b.ID, b.Name = "b", "Zeta"
	a := validProtocol()
	a.ID, a.Name = "a", "Alpha"
	require.NoError(t, c.Register(b))
	require.NoError(t, c.Register(a))

	var ids []string
	for _, p := range c.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"ovsynch", "cidr", "selectsynch", "a", "b"}, ids)
}

const twoShotYAML = `
name: Two Shot
description: Two injections a week apart
duration: 7
steps:
  - day: 0
    title: First shot
    description: GnRH injection
    hormoneType: GnRH
    worker_per_cows: 20
    technician_per_cows: 15
  - day: 7
    title: Second shot
    description: PGF2α injection
`

func TestParseProtocolYAML(t *testing.T) {
	p, err := ParseProtocolYAML([]byte(twoShotYAML))
	require.NoError(t, err)
	assert.Equal(t, "Two Shot", p.Name)
	assert.True(t, p.IsCustom)
	assert.True(t, p.HasWorkforceSettings)
	require.Len(t, p.Steps, 2)
	assert.Equal(t, "1", p.Steps[0].ID)
	assert.Equal(t, "2", p.Steps[1].ID)
	assert.Equal(t, 15.0, p.Steps[0].Ratios.TechnicianPerSubjects)
	assert.True(t, p.Steps[1].Ratios.IsZero())
}

func TestParseProtocolYAML_Errors(t *testing.T) {
	_, err := ParseProtocolYAML([]byte("   "))
	assert.Error(t, err)

	_, err = ParseProtocolYAML([]byte("name: [unclosed"))
	assert.Error(t, err)

	_, err = ParseProtocolYAML([]byte("name: Only\nduration: 3\n"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two-shot.yaml"), []byte(twoShotYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yml"), 0o755))

	protocols, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, protocols, 1)
	assert.Equal(t, "two-shot", protocols[0].ID)
}

func TestLoadDir_MissingDirectoryMeansNone(t *testing.T) {
	protocols, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, protocols)

	protocols, err = LoadDir("")
	require.NoError(t, err)
	assert.Empty(t, protocols)
}

func TestLoadDir_InvalidFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: x\n"), 0o644))
	_, err := LoadDir(dir)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMarshalProtocol_RoundTripsThroughParser(t *testing.T) {
	src := Predefined()[0]
	data, err := MarshalProtocol(src)
	require.NoError(t, err)

	got, err := ParseProtocolYAML(data)
	require.NoError(t, err)
	assert.Equal(t, src.Steps, got.Steps)
	assert.False(t, got.IsCustom)
}

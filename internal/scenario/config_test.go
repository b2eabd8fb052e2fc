package scenario

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/coulomb/internal/core/systems/physics"
)

func TestDefaultScenario(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Sources, 2)

	assert.Equal(t, physics.NewPointCharge(0.4, 0, 4.0e-6), cfg.Target.PointCharge())
	assert.Equal(t, physics.NewPointCharge(0, 0.3, 2.0e-6), cfg.Sources[0].PointCharge())
	assert.Equal(t, physics.NewPointCharge(0, 0, -4.0e-6), cfg.Sources[1].PointCharge())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"missing name", func(c *Config) { c.Name = "" }, ErrInvalidScenario},
		{"no sources", func(c *Config) { c.Sources = nil }, ErrNoSources},
		{"nan target", func(c *Config) { c.Target.Q = math.NaN() }, ErrNonFiniteInput},
		{"inf source", func(c *Config) { c.Sources[1].X = math.Inf(-1) }, ErrNonFiniteInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestValidateAcceptsCoincidentCharges(t *testing.T) {
	cfg := Default()
	cfg.Sources = append(cfg.Sources, cfg.Target)
	assert.NoError(t, cfg.Validate())
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "q1", ChargeConfig{Label: "q1"}.label(0))
	assert.Equal(t, "source-3", ChargeConfig{}.label(3))
}

const yamlScenario = `
name: dipole
target:
  label: probe
  x: 0
  y: 0
  q: 1.0e-6
sources:
  - label: plus
    x: -1
    y: 0
    q: 1.0e-6
  - label: minus
    x: 1
    y: 0
    q: -1.0e-6
`

const jsonScenario = `{
  "name": "dipole",
  "target": {"label": "probe", "x": 0, "y": 0, "q": 1e-6},
  "sources": [
    {"label": "plus", "x": -1, "y": 0, "q": 1e-6},
    {"label": "minus", "x": 1, "y": 0, "q": -1e-6}
  ]
}`

func TestLoadYAMLAndJSONAgree(t *testing.T) {
	fromYAML, err := LoadYAML(strings.NewReader(yamlScenario))
	require.NoError(t, err)
	fromJSON, err := LoadJSON(strings.NewReader(jsonScenario))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, "dipole", fromYAML.Name)
	assert.Equal(t, ChargeConfig{Label: "minus", X: 1, Y: 0, Q: -1e-6}, fromYAML.Sources[1])
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("name: x\nmass: 3\n"))
	assert.Error(t, err)

	_, err = LoadJSON(strings.NewReader(`{"name": "x", "mass": 3}`))
	assert.Error(t, err)
}

func TestLoadValidates(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("name: empty\ntarget: {x: 0, y: 0, q: 1}\n"))
	assert.ErrorIs(t, err, ErrNoSources)

	_, err = LoadJSON(strings.NewReader(`{"target": {"x": 0, "y": 0, "q": 1}, "sources": [{"x": 1, "y": 1, "q": 1}]}`))
	assert.ErrorIs(t, err, ErrInvalidScenario)
}

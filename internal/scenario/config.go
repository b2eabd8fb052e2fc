package scenario

import (
	"fmt"
	"math"

	"github.com/zeusync/coulomb/internal/core/systems/physics"
)

// Config describes a target charge and the source charges acting on it.
type Config struct {
	Name    string         `json:"name" yaml:"name"`
	Target  ChargeConfig   `json:"target" yaml:"target"`
	Sources []ChargeConfig `json:"sources" yaml:"sources"`
}

// ChargeConfig is a point charge at (X, Y) metres with signed quantity Q coulombs.
type ChargeConfig struct {
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Q     float64 `json:"q" yaml:"q"`
}

// Default is the built-in three charge setup: q3 feels q1 and q2.
func Default() Config {
	return Config{
		Name:   "three-charges",
		Target: ChargeConfig{Label: "q3", X: 0.4, Y: 0, Q: 4.0e-6},
		Sources: []ChargeConfig{
			{Label: "q1", X: 0, Y: 0.3, Q: 2.0e-6},
			{Label: "q2", X: 0, Y: 0, Q: -4.0e-6},
		},
	}
}

// Validate checks the scenario. Coincident charges are accepted and end up
// as a non-finite net force.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}

	if len(c.Sources) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, ErrNoSources)
	}

	if err := c.Target.Validate(); err != nil {
		return fmt.Errorf("%w: target: %w", ErrInvalidScenario, err)
	}

	for i, src := range c.Sources {
		if err := src.Validate(); err != nil {
			return fmt.Errorf("%w: source %d: %w", ErrInvalidScenario, i, err)
		}
	}

	return nil
}

// Validate rejects NaN and infinite values.
func (cc ChargeConfig) Validate() error {
	for _, v := range []float64{cc.X, cc.Y, cc.Q} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteInput
		}
	}
	return nil
}

// PointCharge converts the config entry.
func (cc ChargeConfig) PointCharge() physics.PointCharge {
	return physics.NewPointCharge(cc.X, cc.Y, cc.Q)
}

func (cc ChargeConfig) label(i int) string {
	if cc.Label != "" {
		return cc.Label
	}
	return fmt.Sprintf("source-%d", i)
}

package scenario

import (
	"github.com/google/uuid"

	"github.com/zeusync/coulomb/internal/core/observability/log"
	"github.com/zeusync/coulomb/internal/core/systems/physics"
)

// Contribution is the force a single source exerts on the target.
type Contribution struct {
	Label       string
	Interaction physics.Interaction
	Distance    float64
	Force       physics.Vector
}

// Result of one solver run.
type Result struct {
	RunID         string
	Scenario      string
	Target        physics.PointCharge
	Contributions []Contribution
	Net           physics.Vector
}

// Degrees returns the direction of the net force in degrees.
func (r *Result) Degrees() float64 {
	return r.Net.Degrees()
}

// Solver computes the net electrostatic force of a scenario.
type Solver struct {
	logger log.Log
}

func NewSolver(logger log.Log) *Solver {
	return &Solver{logger: logger}
}

// Solve validates cfg and superposes the force of every source on the target.
// A non-finite net force is returned as is and only reported through the logger.
func (s *Solver) Solve(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := s.logger.With(log.String("run_id", runID), log.String("scenario", cfg.Name))

	target := cfg.Target.PointCharge()
	sources := make([]physics.PointCharge, len(cfg.Sources))
	contributions := make([]Contribution, len(cfg.Sources))
	for i, sc := range cfg.Sources {
		src := sc.PointCharge()
		sources[i] = src
		contributions[i] = Contribution{
			Label:       sc.label(i),
			Interaction: target.Interaction(src),
			Distance:    target.DistanceTo(src),
			Force:       target.Force(src),
		}

		logger.Debug("pairwise force",
			log.String("source", contributions[i].Label),
			log.String("interaction", contributions[i].Interaction.String()),
			log.Float64("distance", contributions[i].Distance),
			log.Float64("magnitude", contributions[i].Force.Magnitude),
			log.Float64("angle", contributions[i].Force.Angle),
		)
	}

	net := target.NetForce(sources)
	if !net.IsFinite() {
		logger.Warn("net force is not finite, charges may coincide",
			log.Float64("magnitude", net.Magnitude),
			log.Float64("angle", net.Angle),
		)
	} else {
		logger.Info("net force computed",
			log.Int("sources", len(sources)),
			log.Float64("magnitude", net.Magnitude),
			log.Float64("angle", net.Angle),
			log.Float64("degrees", net.Degrees()),
		)
	}

	return &Result{
		RunID:         runID,
		Scenario:      cfg.Name,
		Target:        target,
		Contributions: contributions,
		Net:           net,
	}, nil
}

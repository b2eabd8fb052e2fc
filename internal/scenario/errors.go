package scenario

import "errors"

// Scenario errors
var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrNoSources       = errors.New("scenario has no source charges")
	ErrNonFiniteInput  = errors.New("charge has a non-finite coordinate or quantity")
)

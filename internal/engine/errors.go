package engine

import "errors"

// Configuration errors reported by New. Construction is the only failure
// surface: a built engine never errors while stepping.
var (
	// ErrPopulation indicates a non-positive particle count.
	ErrPopulation = errors.New("engine: population must be positive")

	// ErrArena indicates a non-positive arena extent.
	ErrArena = errors.New("engine: arena extents must be positive")

	// ErrTimeStep indicates a non-positive integration time step.
	ErrTimeStep = errors.New("engine: time step must be positive")

	// ErrMass indicates a non-positive particle mass.
	ErrMass = errors.New("engine: mass must be positive")

	// ErrMinDist indicates a non-positive interaction distance floor.
	ErrMinDist = errors.New("engine: min distance floor must be positive")

	// ErrSpeedRange indicates a negative initial speed range.
	ErrSpeedRange = errors.New("engine: initial speed range must be non-negative")
)

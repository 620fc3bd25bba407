// Package sim drives an engine frame by frame, recording position
// snapshots and feeding metrics, the way an interactive renderer would.
package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/chargebox/internal/engine"
	"github.com/san-kum/chargebox/internal/metrics"
	"github.com/san-kum/chargebox/internal/particle"
)

type Config struct {
	// Frames is the number of recorded snapshots.
	Frames int
	// Substeps is how many engine steps run between snapshots.
	Substeps int
}

type Result struct {
	// Frames[f] is the position snapshot after frame f, in particle
	// index order.
	Frames [][]particle.Vec2
	// Times[f] is the simulated time of Frames[f], in seconds.
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Runner owns the engine for the duration of a run. The engine is stepped
// Substeps times per frame; observers only ever see completed steps.
type Runner struct {
	eng     *engine.Engine
	metrics []metrics.Metric
}

func New(eng *engine.Engine) *Runner {
	return &Runner{eng: eng, metrics: make([]metrics.Metric, 0)}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }

// Engine exposes the driven engine, for live views that render between
// frames.
func (r *Runner) Engine() *engine.Engine { return r.eng }

// Run advances the engine for cfg.Frames frames and returns the recorded
// snapshots. The context is checked once per frame; a canceled run
// returns what was recorded so far along with the context error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Frames:  make([][]particle.Vec2, 0, cfg.Frames+1),
		Times:   make([]float64, 0, cfg.Frames+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	dt := r.eng.Params().Dt
	t := 0.0
	result.Frames = append(result.Frames, r.eng.Positions())
	result.Times = append(result.Times, t)

	for f := 0; f < cfg.Frames; f++ {
		select {
		case <-ctx.Done():
			r.finish(result)
			return result, ctx.Err()
		default:
		}

		for s := 0; s < cfg.Substeps; s++ {
			r.eng.Step()
		}
		result.StepsTaken += cfg.Substeps
		t += float64(cfg.Substeps) * dt

		for _, m := range r.metrics {
			m.Observe(r.eng, t)
		}

		result.Frames = append(result.Frames, r.eng.Positions())
		result.Times = append(result.Times, t)
	}

	r.finish(result)
	return result, nil
}

// RunWithCallback advances frames until the callback returns false or the
// context is canceled, without recording history. The callback receives a
// detached snapshot, never live engine state.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(pos []particle.Vec2, t float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	dt := r.eng.Params().Dt
	t := 0.0

	for f := 0; f < cfg.Frames; f++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for s := 0; s < cfg.Substeps; s++ {
			r.eng.Step()
		}
		t += float64(cfg.Substeps) * dt

		if !callback(r.eng.Positions(), t) {
			return nil
		}
	}

	return nil
}

func (r *Runner) finish(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("sim: frames must be positive, got %d", cfg.Frames)
	}
	if cfg.Substeps <= 0 {
		return fmt.Errorf("sim: substeps must be positive, got %d", cfg.Substeps)
	}
	return nil
}

package sim

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/chargebox/internal/engine"
	"github.com/san-kum/chargebox/internal/metrics"
	"github.com/san-kum/chargebox/internal/particle"
)

func newRunner(t *testing.T) *Runner {
	t.Helper()
	e, err := engine.New(engine.Params{
		Population: 6,
		Width:      0.1,
		Height:     0.08,
		Dt:         5e-7,
		Charge:     -1.602e-19,
		Mass:       9.1093837e-31,
		K:          8.99e9,
		V0:         1e3,
		MinDist:    1e-12,
	}, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return New(e)
}

func TestRunRecordsFrames(t *testing.T) {
	r := newRunner(t)

	result, err := r.Run(context.Background(), Config{Frames: 20, Substeps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Frames) != 21 {
		t.Errorf("expected 21 snapshots (initial + 20), got %d", len(result.Frames))
	}
	if len(result.Times) != 21 {
		t.Errorf("expected 21 times, got %d", len(result.Times))
	}
	if result.StepsTaken != 200 {
		t.Errorf("expected 200 steps, got %d", result.StepsTaken)
	}

	wantT := 200 * 5e-7
	gotT := result.Times[len(result.Times)-1]
	if math.Abs(gotT-wantT) > 1e-12 {
		t.Errorf("expected final time %g, got %g", wantT, gotT)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	r := newRunner(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero frames", Config{Frames: 0, Substeps: 10}},
		{"negative frames", Config{Frames: -1, Substeps: 10}},
		{"zero substeps", Config{Frames: 10, Substeps: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	r := newRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, Config{Frames: 10, Substeps: 5})
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(result.Frames) != 1 {
		t.Errorf("expected only the initial snapshot, got %d", len(result.Frames))
	}
}

func TestRunMetricsObserved(t *testing.T) {
	r := newRunner(t)
	r.AddMetric(metrics.NewKinetic())
	r.AddMetric(metrics.NewWallBounces())

	result, err := r.Run(context.Background(), Config{Frames: 5, Substeps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["kinetic_energy"]; !ok {
		t.Error("missing kinetic_energy metric")
	}
	if _, ok := result.Metrics["wall_bounces"]; !ok {
		t.Error("missing wall_bounces metric")
	}
	if result.Metrics["kinetic_energy"] <= 0 {
		t.Error("expected positive mean kinetic energy")
	}
}

func TestRunWithCallbackStops(t *testing.T) {
	r := newRunner(t)

	calls := 0
	err := r.RunWithCallback(context.Background(), Config{Frames: 100, Substeps: 2},
		func(pos []particle.Vec2, t float64) bool {
			calls++
			return calls < 3
		})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 callbacks, got %d", calls)
	}
}

package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/chargebox/internal/engine"
)

func newEngine(t *testing.T, n int, v0 float64) *engine.Engine {
	t.Helper()
	e, err := engine.New(engine.Params{
		Population: n,
		Width:      0.1,
		Height:     0.08,
		Dt:         5e-7,
		Charge:     -1.602e-19,
		Mass:       9.1093837e-31,
		K:          8.99e9,
		V0:         v0,
		MinDist:    1e-12,
	}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e
}

func TestKineticMatchesEngine(t *testing.T) {
	e := newEngine(t, 5, 1e3)
	m := NewKinetic()

	m.Observe(e, 0)

	if math.Abs(m.Value()-e.KineticEnergy()) > 1e-40 {
		t.Errorf("expected %g, got %g", e.KineticEnergy(), m.Value())
	}
}

func TestKineticReset(t *testing.T) {
	e := newEngine(t, 5, 1e3)
	m := NewKinetic()

	m.Observe(e, 0)
	if m.Value() == 0 {
		t.Error("expected non-zero kinetic energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestSpreadSingleParticle(t *testing.T) {
	e := newEngine(t, 1, 0)
	m := NewSpread()

	m.Observe(e, 0)

	if m.Value() != 0 {
		t.Errorf("expected zero spread with one particle, got %g", m.Value())
	}
}

func TestSpreadPositive(t *testing.T) {
	e := newEngine(t, 8, 1e3)
	m := NewSpread()

	m.Observe(e, 0)

	if m.Value() <= 0 {
		t.Errorf("expected positive mean separation, got %g", m.Value())
	}
}

func TestWallBouncesTracksEngine(t *testing.T) {
	e := newEngine(t, 10, 1e3)
	m := NewWallBounces()

	for i := 0; i < 2000; i++ {
		e.Step()
	}
	m.Observe(e, 0)

	if uint64(m.Value()) != e.Bounces() {
		t.Errorf("expected %d, got %g", e.Bounces(), m.Value())
	}
}

func TestEnergyDriftStartsZero(t *testing.T) {
	e := newEngine(t, 5, 1e3)
	m := NewEnergyDrift()

	m.Observe(e, 0)
	if m.Value() != 0 {
		t.Errorf("first observation should have zero drift, got %g", m.Value())
	}
}

package particle

import (
	"math"
	"testing"
)

func TestVec2Ops(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Len(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Len: expected 5, got %f", got)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("expected zero vector, got %v", got)
	}
}

func TestIntegrateVelocityThenPosition(t *testing.T) {
	p := Particle{ID: 0, Pos: Vec2{1, 1}, Vel: Vec2{2, 0}}

	p.Integrate(Vec2{10, -5}, 0.1, 2.0)

	// v += f/m*dt, then p += v*dt with the updated velocity
	wantVel := Vec2{2 + 10/2.0*0.1, -5 / 2.0 * 0.1}
	wantPos := Vec2{1 + wantVel.X*0.1, 1 + wantVel.Y*0.1}

	if math.Abs(p.Vel.X-wantVel.X) > 1e-12 || math.Abs(p.Vel.Y-wantVel.Y) > 1e-12 {
		t.Errorf("velocity: expected %v, got %v", wantVel, p.Vel)
	}
	if math.Abs(p.Pos.X-wantPos.X) > 1e-12 || math.Abs(p.Pos.Y-wantPos.Y) > 1e-12 {
		t.Errorf("position: expected %v, got %v", wantPos, p.Pos)
	}
}

func TestIntegrateZeroForce(t *testing.T) {
	p := Particle{Pos: Vec2{0, 0}, Vel: Vec2{1, -1}}

	p.Integrate(Vec2{}, 0.5, 1.0)

	if p.Vel != (Vec2{1, -1}) {
		t.Errorf("velocity changed under zero force: %v", p.Vel)
	}
	if p.Pos != (Vec2{0.5, -0.5}) {
		t.Errorf("expected pure drift, got %v", p.Pos)
	}
}

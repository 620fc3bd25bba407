// Package engine advances a fixed population of charged particles in a
// rectangular arena under mutual Coulomb repulsion, with elastic
// reflection at the walls.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/chargebox/internal/particle"
)

// Params holds the physical configuration of a simulation. All quantities
// are SI: meters, seconds, kilograms, coulombs.
type Params struct {
	Population int
	Width      float64 // arena extent along x
	Height     float64 // arena extent along y
	Dt         float64
	Charge     float64 // per-particle charge (sign irrelevant, force uses q²)
	Mass       float64
	K          float64 // Coulomb constant
	V0         float64 // initial velocity uniform in [-V0, +V0] per axis
	MinDist    float64 // pairs closer than this contribute no force
}

// Validate reports the first invalid parameter, wrapping a sentinel from
// this package.
func (p Params) Validate() error {
	switch {
	case p.Population <= 0:
		return fmt.Errorf("%w, got %d", ErrPopulation, p.Population)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w, got %gx%g", ErrArena, p.Width, p.Height)
	case p.Dt <= 0:
		return fmt.Errorf("%w, got %g", ErrTimeStep, p.Dt)
	case p.Mass <= 0:
		return fmt.Errorf("%w, got %g", ErrMass, p.Mass)
	case p.MinDist <= 0:
		return fmt.Errorf("%w, got %g", ErrMinDist, p.MinDist)
	case p.V0 < 0:
		return fmt.Errorf("%w, got %g", ErrSpeedRange, p.V0)
	}
	return nil
}

// Engine owns the particle collection. Particles are created once at
// construction and live for the whole run; Step is the only mutator.
type Engine struct {
	params  Params
	parts   []particle.Particle
	bounces uint64
}

// New builds an engine with randomized initial conditions drawn from rng:
// positions uniform over the arena, velocities uniform in [-V0, +V0] per
// axis. A fixed rng seed makes the run reproducible.
func New(p Params, rng *rand.Rand) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	parts := make([]particle.Particle, p.Population)
	for i := range parts {
		parts[i] = particle.Particle{
			ID: i,
			Pos: particle.Vec2{
				X: rng.Float64() * p.Width,
				Y: rng.Float64() * p.Height,
			},
			Vel: particle.Vec2{
				X: (2*rng.Float64() - 1) * p.V0,
				Y: (2*rng.Float64() - 1) * p.V0,
			},
		}
	}

	return &Engine{params: p, parts: parts}, nil
}

// Params returns the engine's configuration.
func (e *Engine) Params() Params { return e.params }

// Step advances every particle by one time step: all pairwise forces are
// accumulated from the current positions, then every particle integrates,
// then wall reflections are applied. Forces are complete before any
// position moves, so integration order does not matter.
func (e *Engine) Step() {
	e.computeForces()
	for i := range e.parts {
		p := &e.parts[i]
		p.Integrate(p.Force, e.params.Dt, e.params.Mass)
	}
	for i := range e.parts {
		e.reflect(&e.parts[i])
	}
}

// computeForces rebuilds every particle's accumulated force from scratch.
// Each unordered pair is visited once; Newton's third law gives particle j
// the exact opposite of particle i's contribution. Pairs closer than the
// MinDist floor are skipped outright rather than clamped, so coincident
// particles exchange no force that step.
func (e *Engine) computeForces() {
	for i := range e.parts {
		e.parts[i].Force = particle.Vec2{}
	}

	q2 := e.params.Charge * e.params.Charge
	for i := 0; i < len(e.parts); i++ {
		for j := i + 1; j < len(e.parts); j++ {
			d := e.parts[i].Pos.Sub(e.parts[j].Pos)
			r := d.Len()
			if r < e.params.MinDist {
				continue
			}
			// repulsive, directed from j to i
			f := d.Scale(e.params.K * q2 / (r * r * r))
			e.parts[i].Force = e.parts[i].Force.Add(f)
			e.parts[j].Force = e.parts[j].Force.Sub(f)
		}
	}
}

// reflect clamps the particle into the arena and points the velocity back
// inward, independently per axis. The reflection is elastic: only the sign
// of the velocity component changes.
func (e *Engine) reflect(p *particle.Particle) {
	if p.Pos.X <= 0 {
		p.Pos.X = 0
		p.Vel.X = abs(p.Vel.X)
		e.bounces++
	} else if p.Pos.X >= e.params.Width {
		p.Pos.X = e.params.Width
		p.Vel.X = -abs(p.Vel.X)
		e.bounces++
	}

	if p.Pos.Y <= 0 {
		p.Pos.Y = 0
		p.Vel.Y = abs(p.Vel.Y)
		e.bounces++
	} else if p.Pos.Y >= e.params.Height {
		p.Pos.Y = e.params.Height
		p.Vel.Y = -abs(p.Vel.Y)
		e.bounces++
	}
}

// Positions returns a snapshot of all particle positions in index order.
// The slice is freshly allocated on every call: callers never see a live
// view that the next Step could mutate under them.
func (e *Engine) Positions() []particle.Vec2 {
	out := make([]particle.Vec2, len(e.parts))
	for i := range e.parts {
		out[i] = e.parts[i].Pos
	}
	return out
}

// Velocities returns a snapshot of all particle velocities in index order.
func (e *Engine) Velocities() []particle.Vec2 {
	out := make([]particle.Vec2, len(e.parts))
	for i := range e.parts {
		out[i] = e.parts[i].Vel
	}
	return out
}

// Bounces returns the cumulative number of wall reflections since
// construction. A corner hit counts once per axis.
func (e *Engine) Bounces() uint64 { return e.bounces }

// KineticEnergy returns the total kinetic energy in joules.
func (e *Engine) KineticEnergy() float64 {
	ke := 0.0
	for i := range e.parts {
		v := e.parts[i].Vel
		ke += 0.5 * e.params.Mass * (v.X*v.X + v.Y*v.Y)
	}
	return ke
}

// PotentialEnergy returns the total Coulomb potential energy in joules.
// Pairs below the distance floor are excluded, mirroring the force skip.
func (e *Engine) PotentialEnergy() float64 {
	q2 := e.params.Charge * e.params.Charge
	pe := 0.0
	for i := 0; i < len(e.parts); i++ {
		for j := i + 1; j < len(e.parts); j++ {
			r := e.parts[i].Pos.Sub(e.parts[j].Pos).Len()
			if r < e.params.MinDist {
				continue
			}
			pe += e.params.K * q2 / r
		}
	}
	return pe
}

// Momentum returns the total linear momentum in kg·m/s.
func (e *Engine) Momentum() (px, py float64) {
	for i := range e.parts {
		px += e.params.Mass * e.parts[i].Vel.X
		py += e.params.Mass * e.parts[i].Vel.Y
	}
	return
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

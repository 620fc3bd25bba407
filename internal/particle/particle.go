package particle

import "math"

// Vec2 is a 2D vector in physical units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Particle holds the kinematic state of one charged point particle.
// Position is in meters, velocity in meters per second. Force is working
// state: the engine rebuilds it from scratch every step before integrating.
type Particle struct {
	ID    int
	Pos   Vec2
	Vel   Vec2
	Force Vec2
}

// Integrate advances the particle by one explicit Euler step under the
// given net force: velocity first, then position from the new velocity.
// It never reads another particle; all interaction comes in through force.
func (p *Particle) Integrate(force Vec2, dt, mass float64) {
	p.Vel = p.Vel.Add(force.Scale(dt / mass))
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

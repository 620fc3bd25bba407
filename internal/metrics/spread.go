package metrics

import "github.com/san-kum/chargebox/internal/engine"

// Spread reports the mean pairwise separation averaged over the observed
// frames. Repulsion in a closed box drives this toward a stable plateau.
type Spread struct {
	name    string
	samples int
	total   float64
}

func NewSpread() *Spread {
	return &Spread{name: "mean_separation"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(e *engine.Engine, t float64) {
	pos := e.Positions()
	if len(pos) < 2 {
		return
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < len(pos); i++ {
		for j := i + 1; j < len(pos); j++ {
			sum += pos[i].Sub(pos[j]).Len()
			pairs++
		}
	}

	s.total += sum / float64(pairs)
	s.samples++
}

func (s *Spread) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.total / float64(s.samples)
}

func (s *Spread) Reset() {
	s.total = 0
	s.samples = 0
}

// WallBounces reports the cumulative wall reflection count at the last
// observed frame.
type WallBounces struct {
	name  string
	count uint64
}

func NewWallBounces() *WallBounces {
	return &WallBounces{name: "wall_bounces"}
}

func (w *WallBounces) Name() string { return w.name }

func (w *WallBounces) Observe(e *engine.Engine, t float64) {
	w.count = e.Bounces()
}

func (w *WallBounces) Value() float64 { return float64(w.count) }

func (w *WallBounces) Reset() { w.count = 0 }

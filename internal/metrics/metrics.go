// Package metrics provides per-frame observers over a running engine.
package metrics

import "github.com/san-kum/chargebox/internal/engine"

type Metric interface {
	Name() string
	Observe(e *engine.Engine, t float64)
	Value() float64
	Reset()
}

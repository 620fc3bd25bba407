package metrics

import "github.com/san-kum/chargebox/internal/engine"

// Kinetic reports the mean total kinetic energy over the observed frames.
type Kinetic struct {
	name    string
	samples int
	total   float64
}

func NewKinetic() *Kinetic {
	return &Kinetic{name: "kinetic_energy"}
}

func (k *Kinetic) Name() string { return k.name }

func (k *Kinetic) Observe(e *engine.Engine, t float64) {
	k.total += e.KineticEnergy()
	k.samples++
}

func (k *Kinetic) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *Kinetic) Reset() {
	k.total = 0
	k.samples = 0
}

// EnergyDrift tracks the maximum relative excursion of total energy
// (kinetic + potential) from its first observed value. Wall bounces are
// lossless and the force skip only removes energy exchange, so large
// drift points at an integration time step that is too coarse.
type EnergyDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (d *EnergyDrift) Name() string { return d.name }

func (d *EnergyDrift) Observe(e *engine.Engine, t float64) {
	energy := e.KineticEnergy() + e.PotentialEnergy()

	if d.samples == 0 {
		d.initial = energy
	}
	d.samples++

	if d.initial != 0 {
		drift := abs(energy-d.initial) / abs(d.initial)
		if drift > d.maxDrift {
			d.maxDrift = drift
		}
	}
}

func (d *EnergyDrift) Value() float64 { return d.maxDrift }

func (d *EnergyDrift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

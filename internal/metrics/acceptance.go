// Package metrics provides session metrics over car operation events.
package metrics

import "github.com/san-kum/carsim/internal/car"

// AcceptanceRate is the fraction of operations the policy and subsystems
// accepted.
type AcceptanceRate struct {
	name     string
	accepted int
	samples  int
}

func NewAcceptanceRate() *AcceptanceRate {
	return &AcceptanceRate{
		name: "acceptance_rate",
	}
}

func (a *AcceptanceRate) Name() string {
	return a.name
}

func (a *AcceptanceRate) Observe(ev car.Event) {
	a.samples++
	if ev.Accepted {
		a.accepted++
	}
}

func (a *AcceptanceRate) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return float64(a.accepted) / float64(a.samples)
}

func (a *AcceptanceRate) Reset() {
	a.accepted = 0
	a.samples = 0
}

package policy

import "github.com/san-kum/carsim/internal/vehicle"

// Observed is a fixed subsystem view, convenient for evaluating predicates
// against states that are not held by a live car (decision tables, tests,
// the TUI verdict row).
type Observed struct {
	EngineOn bool
	Selector vehicle.Gear
	BrakeOn  bool
}

func (o Observed) Active() bool       { return o.EngineOn }
func (o Observed) Gear() vehicle.Gear { return o.Selector }
func (o Observed) Braking() bool      { return o.BrakeOn }

package policy

import "github.com/san-kum/carsim/internal/vehicle"

// Default is the stock transition policy.
type Default struct{}

func NewDefault() Default { return Default{} }

// CanStart permits starting only at rest: engine off, selector in Park,
// brakes released.
func (Default) CanStart(e EngineState, g GearState, b BrakeState) bool {
	if e.Active() {
		return false
	}
	if g.Gear() != vehicle.Park {
		return false
	}
	if b.Braking() {
		return false
	}
	return true
}

// CanStop permits stopping a running engine unless the selector is already
// in Park.
func (Default) CanStop(e EngineState, g GearState) bool {
	if !e.Active() {
		return false
	}
	if g.Gear() == vehicle.Park {
		return false
	}
	return true
}

// CanAccelerate requires a running engine, a gear other than Park, and
// released brakes.
func (Default) CanAccelerate(e EngineState, g GearState, b BrakeState) bool {
	if !e.Active() {
		return false
	}
	if g.Gear() == vehicle.Park {
		return false
	}
	if b.Braking() {
		return false
	}
	return true
}

// CanReverse requires the selector already in Reverse with the brakes held.
func (Default) CanReverse(g GearState, b BrakeState) bool {
	if g.Gear() != vehicle.Reverse {
		return false
	}
	if !b.Braking() {
		return false
	}
	return true
}

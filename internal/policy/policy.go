// Package policy decides whether high-level vehicle operations may proceed.
//
// A [Policy] is a set of pure predicates over read-only subsystem views. It
// never mutates subsystems and never logs; the car facade owns rejection
// logging so policies stay swappable and independently testable.
package policy

import "github.com/san-kum/carsim/internal/vehicle"

// EngineState is the engine as the policy sees it.
type EngineState interface {
	Active() bool
}

// GearState is the transmission as the policy sees it.
type GearState interface {
	Gear() vehicle.Gear
}

// BrakeState is the braking system as the policy sees it.
type BrakeState interface {
	Braking() bool
}

// Policy gates the four policy-checked car operations.
type Policy interface {
	CanStart(e EngineState, g GearState, b BrakeState) bool
	CanStop(e EngineState, g GearState) bool
	CanAccelerate(e EngineState, g GearState, b BrakeState) bool
	CanReverse(g GearState, b BrakeState) bool
}

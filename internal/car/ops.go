package car

import (
	"fmt"

	"github.com/san-kum/carsim/internal/vehicle"
)

// Op names a car operation. Op values double as the wire names used by
// scenario files and the CLI.
type Op string

const (
	OpStart          Op = "start"
	OpStop           Op = "stop"
	OpAccelerate     Op = "accelerate"
	OpShiftUp        Op = "shift_up"
	OpShiftDown      Op = "shift_down"
	OpReverse        Op = "reverse"
	OpTurnWheel      Op = "turn_wheel"
	OpStraighten     Op = "straighten_wheels"
	OpBrake          Op = "apply_brakes"
	OpEmergencyBrake Op = "emergency_brakes"
)

// Ops lists every operation in a stable order.
func Ops() []Op {
	return []Op{
		OpStart, OpStop, OpAccelerate,
		OpShiftUp, OpShiftDown, OpReverse,
		OpTurnWheel, OpStraighten,
		OpBrake, OpEmergencyBrake,
	}
}

// ValidOp reports whether name is a known operation.
func ValidOp(op Op) bool {
	for _, o := range Ops() {
		if o == op {
			return true
		}
	}
	return false
}

// Apply dispatches an operation by name. The bool mirrors the facade method's
// accepted result; the error fires only for unknown operations.
func (c *Car) Apply(op Op, value int) (bool, error) {
	switch op {
	case OpStart:
		return c.Start(), nil
	case OpStop:
		return c.Stop(), nil
	case OpAccelerate:
		return c.Accelerate(value), nil
	case OpShiftUp:
		return c.ShiftUp(), nil
	case OpShiftDown:
		return c.ShiftDown(), nil
	case OpReverse:
		return c.Reverse(), nil
	case OpTurnWheel:
		return c.TurnWheel(value), nil
	case OpStraighten:
		return c.StraightenWheels(), nil
	case OpBrake:
		return c.ApplyBrakes(value), nil
	case OpEmergencyBrake:
		return c.ApplyEmergencyBrakes(), nil
	default:
		return false, fmt.Errorf("unknown operation: %s", op)
	}
}

// Snapshot is the observable state of all subsystems after an operation.
type Snapshot struct {
	EngineActive  bool         `json:"engine_active"`
	Gear          vehicle.Gear `json:"gear"`
	BrakeForce    int          `json:"brake_force"`
	SteeringAngle int          `json:"steering_angle"`
	Speed         int          `json:"speed"`
}

// Event records one executed operation and the state it left behind.
type Event struct {
	Step     int      `json:"step"`
	Op       Op       `json:"op"`
	Value    int      `json:"value"`
	Accepted bool     `json:"accepted"`
	State    Snapshot `json:"state"`
}

// Observer is notified after every car operation.
type Observer interface {
	OnOp(ev Event)
}

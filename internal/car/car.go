// Package car composes the vehicle subsystems behind a single facade whose
// high-level operations are gated by a transition policy. Rejected operations
// are logged no-ops, never errors.
package car

import (
	"log/slog"

	"github.com/san-kum/carsim/internal/policy"
	"github.com/san-kum/carsim/internal/vehicle"
)

// Engine is the engine as the car drives it.
type Engine interface {
	Start()
	Stop()
	Accelerate(speed int) bool
	Active() bool
	Speed() int
}

// Transmission is the gearbox as the car drives it.
type Transmission interface {
	ToPark() bool
	ToDrive() bool
	ToReverse() bool
	ShiftUp() bool
	ShiftDown() bool
	Gear() vehicle.Gear
	InPark() bool
}

// Steering is the steering system as the car drives it.
type Steering interface {
	TurnWheel(angle int) bool
	Straighten()
	Angle() int
}

// Brakes is the braking system as the car drives it.
type Brakes interface {
	Apply(force int) bool
	ApplyEmergency()
	Force() int
	Braking() bool
}

// Car is the vehicle facade.
type Car struct {
	log       *slog.Logger
	engine    Engine
	trans     Transmission
	steering  Steering
	brakes    Brakes
	policy    policy.Policy
	observers []Observer
	step      int
}

// New wires the subsystems and policy into a facade. A nil logger is a
// constructor invariant violation and panics.
func New(log *slog.Logger, e Engine, t Transmission, s Steering, b Brakes, p policy.Policy) *Car {
	if log == nil {
		panic("car: nil logger")
	}
	c := &Car{log: log, engine: e, trans: t, steering: s, brakes: b, policy: p}
	c.log.Debug("car ready, all systems initialized")
	return c
}

// AddObserver registers an observer notified after every operation.
func (c *Car) AddObserver(o Observer) { c.observers = append(c.observers, o) }

// State reports the current observable state of all subsystems.
func (c *Car) State() Snapshot {
	return Snapshot{
		EngineActive:  c.engine.Active(),
		Gear:          c.trans.Gear(),
		BrakeForce:    c.brakes.Force(),
		SteeringAngle: c.steering.Angle(),
		Speed:         c.engine.Speed(),
	}
}

// Start holds the car on emergency brakes and starts the engine. The policy
// verdict is taken on the state as observed before the holding brakes go on,
// so a vehicle at rest (engine off, Park, brakes released) does start.
func (c *Car) Start() bool {
	permitted := c.policy.CanStart(c.engine, c.trans, c.brakes)
	c.brakes.ApplyEmergency()
	if !permitted {
		c.log.Warn("start rejected by policy")
		return c.emit(OpStart, 0, false)
	}
	c.engine.Start()
	c.log.Info("started, holding on emergency brakes")
	return c.emit(OpStart, 0, true)
}

// Stop brakes to maximum and shuts the engine off, if the policy permits.
func (c *Car) Stop() bool {
	if !c.policy.CanStop(c.engine, c.trans) {
		c.log.Warn("stop rejected by policy")
		return c.emit(OpStop, 0, false)
	}
	c.brakes.ApplyEmergency()
	c.engine.Stop()
	c.log.Info("stopped")
	return c.emit(OpStop, 0, true)
}

// Accelerate commands a new speed, if the policy permits.
func (c *Car) Accelerate(speed int) bool {
	if !c.policy.CanAccelerate(c.engine, c.trans, c.brakes) {
		c.log.Warn("acceleration rejected by policy", "kmh", speed)
		return c.emit(OpAccelerate, speed, false)
	}
	ok := c.engine.Accelerate(speed)
	return c.emit(OpAccelerate, speed, ok)
}

// Reverse holds the car on emergency brakes and selects Reverse, if the
// policy permits.
func (c *Car) Reverse() bool {
	if !c.policy.CanReverse(c.trans, c.brakes) {
		c.log.Warn("reverse rejected by policy")
		return c.emit(OpReverse, 0, false)
	}
	c.brakes.ApplyEmergency()
	c.trans.ToReverse()
	return c.emit(OpReverse, 0, true)
}

// The remaining operations delegate directly without policy gating.

func (c *Car) ShiftUp() bool   { return c.emit(OpShiftUp, 0, c.trans.ShiftUp()) }
func (c *Car) ShiftDown() bool { return c.emit(OpShiftDown, 0, c.trans.ShiftDown()) }

func (c *Car) TurnWheel(angle int) bool {
	return c.emit(OpTurnWheel, angle, c.steering.TurnWheel(angle))
}

func (c *Car) StraightenWheels() bool {
	c.steering.Straighten()
	return c.emit(OpStraighten, 0, true)
}

func (c *Car) ApplyBrakes(force int) bool {
	return c.emit(OpBrake, force, c.brakes.Apply(force))
}

func (c *Car) ApplyEmergencyBrakes() bool {
	c.brakes.ApplyEmergency()
	return c.emit(OpEmergencyBrake, 0, true)
}

func (c *Car) emit(op Op, value int, accepted bool) bool {
	ev := Event{
		Step:     c.step,
		Op:       op,
		Value:    value,
		Accepted: accepted,
		State:    c.State(),
	}
	c.step++
	for _, o := range c.observers {
		o.OnOp(ev)
	}
	return accepted
}

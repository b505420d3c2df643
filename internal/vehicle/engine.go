package vehicle

import "log/slog"

// Engine tracks whether the motor is running and the last commanded speed.
type Engine struct {
	log    *slog.Logger
	active bool
	speed  int
}

func NewEngine(log *slog.Logger) *Engine {
	e := &Engine{log: log}
	e.log.Debug("engine initialized")
	return e
}

func (e *Engine) Start() {
	e.active = true
	e.log.Info("engine started")
}

// Stop deactivates the engine and zeroes the commanded speed.
func (e *Engine) Stop() {
	e.active = false
	e.speed = 0
	e.log.Info("engine stopped")
}

// Accelerate commands a new speed. It is rejected when the engine is off or
// the speed is negative; the previous speed is kept.
func (e *Engine) Accelerate(speed int) bool {
	if !e.active {
		e.log.Warn("cannot accelerate, engine is not running")
		return false
	}
	if speed < 0 {
		e.log.Warn("invalid speed", "kmh", speed)
		return false
	}
	e.speed = speed
	e.log.Info("accelerating", "kmh", speed)
	return true
}

func (e *Engine) Active() bool { return e.active }
func (e *Engine) Speed() int   { return e.speed }

package vehicle

import "log/slog"

// SteeringSystem holds the wheel angle in degrees, negative to the left.
type SteeringSystem struct {
	log   *slog.Logger
	angle int
}

func NewSteeringSystem(log *slog.Logger) *SteeringSystem {
	s := &SteeringSystem{log: log}
	s.log.Debug("steering initialized, wheels straight")
	return s
}

// TurnWheel sets the wheel angle. Angles outside
// [-MaxSteeringAngle, MaxSteeringAngle] are rejected and the prior angle kept.
func (s *SteeringSystem) TurnWheel(angle int) bool {
	if angle < -MaxSteeringAngle || angle > MaxSteeringAngle {
		s.log.Warn("invalid steering angle", "deg", angle, "min", -MaxSteeringAngle, "max", MaxSteeringAngle)
		return false
	}
	s.angle = angle
	s.log.Info("wheels turned", "deg", angle)
	return true
}

func (s *SteeringSystem) Straighten() {
	s.angle = 0
	s.log.Info("wheels straightened")
}

func (s *SteeringSystem) Angle() int { return s.angle }

package vehicle

import "log/slog"

// BrakingSystem holds the applied brake force. The system is braking whenever
// the force is above zero.
type BrakingSystem struct {
	log   *slog.Logger
	force int
}

func NewBrakingSystem(log *slog.Logger) *BrakingSystem {
	b := &BrakingSystem{log: log}
	b.log.Debug("braking system initialized")
	return b
}

// Apply sets the brake force. Force outside [0, MaxBrakeForce] is rejected
// and the prior force kept.
func (b *BrakingSystem) Apply(force int) bool {
	if force < 0 || force > MaxBrakeForce {
		b.log.Warn("invalid brake force", "force", force, "max", MaxBrakeForce)
		return false
	}
	b.force = force
	b.log.Info("brakes applied", "force", force)
	return true
}

// ApplyEmergency sets the brake force to MaxBrakeForce regardless of the
// prior force.
func (b *BrakingSystem) ApplyEmergency() {
	b.force = MaxBrakeForce
	b.log.Info("emergency brakes applied", "force", b.force)
}

func (b *BrakingSystem) Force() int    { return b.force }
func (b *BrakingSystem) Braking() bool { return b.force > 0 }

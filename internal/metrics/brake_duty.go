package metrics

import "github.com/san-kum/carsim/internal/car"

// BrakeDuty is the fraction of steps that ended with the brakes engaged.
type BrakeDuty struct {
	name    string
	braking int
	samples int
}

func NewBrakeDuty() *BrakeDuty {
	return &BrakeDuty{
		name: "brake_duty",
	}
}

func (b *BrakeDuty) Name() string {
	return b.name
}

func (b *BrakeDuty) Observe(ev car.Event) {
	b.samples++
	if ev.State.BrakeForce > 0 {
		b.braking++
	}
}

func (b *BrakeDuty) Value() float64 {
	if b.samples == 0 {
		return 0
	}
	return float64(b.braking) / float64(b.samples)
}

func (b *BrakeDuty) Reset() {
	b.braking = 0
	b.samples = 0
}

package metrics

import "github.com/san-kum/carsim/internal/car"

// TopSpeed is the highest speed observed during the session.
type TopSpeed struct {
	name string
	max  int
}

func NewTopSpeed() *TopSpeed {
	return &TopSpeed{
		name: "top_speed",
	}
}

func (t *TopSpeed) Name() string {
	return t.name
}

func (t *TopSpeed) Observe(ev car.Event) {
	if ev.State.Speed > t.max {
		t.max = ev.State.Speed
	}
}

func (t *TopSpeed) Value() float64 {
	return float64(t.max)
}

func (t *TopSpeed) Reset() {
	t.max = 0
}

// Package session runs a scenario against a car and collects the transcript.
package session

import (
	"context"
	"fmt"

	"github.com/san-kum/carsim/internal/car"
	"github.com/san-kum/carsim/internal/scenario"
)

// Metric accumulates a summary value over the events of one session.
type Metric interface {
	Name() string
	Observe(ev car.Event)
	Value() float64
	Reset()
}

// Result is the transcript and summary of one completed session.
type Result struct {
	Scenario string             `json:"scenario"`
	Events   []car.Event        `json:"events"`
	Accepted int                `json:"accepted"`
	Rejected int                `json:"rejected"`
	Metrics  map[string]float64 `json:"metrics"`
}

// Runner executes scenario steps against a car.
type Runner struct {
	car     *car.Car
	metrics []Metric
}

func New(c *car.Car) *Runner {
	return &Runner{car: c, metrics: make([]Metric, 0)}
}

func (r *Runner) AddMetric(m Metric) { r.metrics = append(r.metrics, m) }

// collector subscribes to the car for the duration of one run. Observers
// cannot be unregistered, so a finished collector goes inert instead.
type collector struct {
	result  *Result
	metrics []Metric
	done    bool
}

func (c *collector) OnOp(ev car.Event) {
	if c.done {
		return
	}
	c.result.Events = append(c.result.Events, ev)
	if ev.Accepted {
		c.result.Accepted++
	} else {
		c.result.Rejected++
	}
	for _, m := range c.metrics {
		m.Observe(ev)
	}
}

// Run executes every step of the scenario in order. Rejected operations do
// not stop the run; only an unknown operation or a cancelled context does.
func (r *Runner) Run(ctx context.Context, sc *scenario.Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	result := &Result{
		Scenario: sc.Name,
		Events:   make([]car.Event, 0, len(sc.Steps)),
		Metrics:  make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	col := &collector{result: result, metrics: r.metrics}
	r.car.AddObserver(col)
	defer func() { col.done = true }()

	for i, step := range sc.Steps {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if _, err := r.car.Apply(step.Op, step.Value); err != nil {
			return result, fmt.Errorf("step %d: %w", i, err)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// Package scenario defines named operation sequences for the session runner.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/carsim/internal/car"
)

// Step is one scripted operation. Value carries the argument for operations
// that take one (accelerate, turn_wheel, apply_brakes) and is ignored
// otherwise.
type Step struct {
	Op    car.Op `yaml:"op"`
	Value int    `yaml:"value,omitempty"`
}

// Scenario is a named ordered list of steps.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load reads a scenario from a yaml file and validates it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Save writes a scenario to a yaml file.
func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every step names a known operation.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		if !car.ValidOp(step.Op) {
			return fmt.Errorf("step %d: unknown operation: %s", i, step.Op)
		}
	}
	return nil
}

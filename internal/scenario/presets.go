package scenario

import (
	"sort"

	"github.com/san-kum/carsim/internal/car"
)

// presets are the built-in scenarios. "demo" reproduces the classic fixed
// demonstration sequence, policy rejections included.
var presets = map[string]*Scenario{
	"demo": {
		Name: "demo",
		Steps: []Step{
			{Op: car.OpStart},
			{Op: car.OpShiftUp},
			{Op: car.OpShiftDown},
			{Op: car.OpReverse},
			{Op: car.OpTurnWheel, Value: 30},
			{Op: car.OpStraighten},
			{Op: car.OpBrake, Value: 50},
			{Op: car.OpEmergencyBrake},
			{Op: car.OpStop},
			{Op: car.OpStop},
		},
	},
	"commute": {
		Name: "commute",
		Steps: []Step{
			{Op: car.OpStart},
			{Op: car.OpBrake, Value: 0},
			{Op: car.OpShiftUp},
			{Op: car.OpShiftUp},
			{Op: car.OpAccelerate, Value: 50},
			{Op: car.OpTurnWheel, Value: 15},
			{Op: car.OpStraighten},
			{Op: car.OpAccelerate, Value: 90},
			{Op: car.OpBrake, Value: 40},
			{Op: car.OpBrake, Value: 0},
			{Op: car.OpAccelerate, Value: 60},
			{Op: car.OpEmergencyBrake},
			{Op: car.OpStop},
		},
	},
	"parking": {
		Name: "parking",
		Steps: []Step{
			{Op: car.OpStart},
			{Op: car.OpBrake, Value: 0},
			{Op: car.OpShiftUp},
			{Op: car.OpBrake, Value: 30},
			{Op: car.OpReverse},
			{Op: car.OpTurnWheel, Value: -40},
			{Op: car.OpBrake, Value: 0},
			{Op: car.OpAccelerate, Value: 10},
			{Op: car.OpStraighten},
			{Op: car.OpEmergencyBrake},
			{Op: car.OpStop},
			{Op: car.OpShiftDown},
		},
	},
}

// Get returns a built-in scenario, or nil if the name is unknown.
func Get(name string) *Scenario {
	sc, ok := presets[name]
	if !ok {
		return nil
	}
	return sc
}

// List returns the built-in scenario names, sorted.
func List() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package vehicle

// Subsystem limits. The brake and steering mutators clamp-reject against
// these; they are not configurable per vehicle.
const (
	MaxBrakeForce    = 100
	MaxSteeringAngle = 45
)

// Gear is the transmission selector position.
type Gear int

const (
	Park Gear = iota
	Reverse
	Drive
)

func (g Gear) String() string {
	switch g {
	case Park:
		return "P"
	case Reverse:
		return "R"
	case Drive:
		return "D"
	default:
		return "?"
	}
}

// MarshalText renders the gear as its selector letter in json/yaml output.
func (g Gear) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}


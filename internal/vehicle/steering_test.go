package vehicle

import "testing"

func TestSteeringTurnWheel(t *testing.T) {
	tests := []struct {
		name  string
		angle int
		want  bool
	}{
		{"straight", 0, true},
		{"left limit", -45, true},
		{"right limit", 45, true},
		{"past left limit", -46, false},
		{"past right limit", 46, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSteeringSystem(testLogger())
			if got := s.TurnWheel(tt.angle); got != tt.want {
				t.Errorf("TurnWheel(%d) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestSteeringRejectKeepsAngle(t *testing.T) {
	s := NewSteeringSystem(testLogger())
	s.TurnWheel(30)

	if s.TurnWheel(90) {
		t.Error("out-of-range angle should be rejected")
	}
	if s.Angle() != 30 {
		t.Errorf("rejected turn should keep prior angle, got %d", s.Angle())
	}
}

func TestSteeringStraighten(t *testing.T) {
	s := NewSteeringSystem(testLogger())
	s.TurnWheel(-20)

	s.Straighten()
	if s.Angle() != 0 {
		t.Errorf("expected angle 0 after straighten, got %d", s.Angle())
	}
}

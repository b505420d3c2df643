package vehicle

import "log/slog"

// Transmission holds the selector gear. Shifts walk the P-R-D ladder; direct
// selection is idempotent (selecting the current gear is a no-op returning
// false, with no transition logged).
type Transmission struct {
	log  *slog.Logger
	gear Gear
}

func NewTransmission(log *slog.Logger) *Transmission {
	t := &Transmission{log: log, gear: Park}
	t.log.Debug("transmission initialized", "gear", t.gear.String())
	return t
}

func (t *Transmission) ToPark() bool    { return t.trySet(Park) }
func (t *Transmission) ToDrive() bool   { return t.trySet(Drive) }
func (t *Transmission) ToReverse() bool { return t.trySet(Reverse) }

// ShiftUp moves one position down the selector ladder (P -> R -> D).
func (t *Transmission) ShiftUp() bool {
	switch t.gear {
	case Park:
		return t.trySet(Reverse)
	case Reverse:
		return t.trySet(Drive)
	default:
		t.log.Warn("already in top gear")
		return false
	}
}

// ShiftDown moves one position up the ladder (D -> R -> P).
func (t *Transmission) ShiftDown() bool {
	switch t.gear {
	case Drive:
		return t.trySet(Reverse)
	case Reverse:
		return t.trySet(Park)
	default:
		t.log.Warn("already in park")
		return false
	}
}

func (t *Transmission) Gear() Gear   { return t.gear }
func (t *Transmission) InPark() bool { return t.gear == Park }

func (t *Transmission) trySet(gear Gear) bool {
	if gear == t.gear {
		return false
	}
	t.gear = gear
	t.log.Info("gear changed", "gear", t.gear.String())
	return true
}

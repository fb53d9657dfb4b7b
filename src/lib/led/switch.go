package led

// Switch is anything that can drive an output line high or low.  TinyGo's
// machine.Pin satisfies it, as does bcm2835.OutputPin.
type Switch interface {
	High()
	Low()
}

// Lamp is an Indicator wired to a Switch.  ActiveLow lamps light when the
// line is pulled low (the pi3's power LED is wired that way).
type Lamp struct {
	Name      string
	Line      Switch
	ActiveLow bool
}

func (l *Lamp) On() {
	if l.ActiveLow {
		l.Line.Low()
		return
	}
	l.Line.High()
}

func (l *Lamp) Off() {
	if l.ActiveLow {
		l.Line.High()
		return
	}
	l.Line.Low()
}

// FromSwitches builds a Bank of active-high lamps, one per switch, in the
// order given.
func FromSwitches(lines ...Switch) *Bank {
	lamps := make([]Indicator, len(lines))
	for i, s := range lines {
		lamps[i] = &Lamp{Line: s}
	}
	return NewBank(lamps...)
}

// Package led is the indicator capability: a finite, order-stable set of
// lamps that can each be switched on and off.  Nothing here can fail; a
// board either has a lamp or it doesn't.
package led

// Indicator is a single lamp.  Both calls are idempotent.
type Indicator interface {
	On()
	Off()
}

// Set enumerates every indicator on the board.  The order returned by All
// must be the same on every call.
type Set interface {
	All() []Indicator
}

// Bank is the simplest Set, a fixed list of indicators.
type Bank struct {
	lamps []Indicator
}

func NewBank(lamps ...Indicator) *Bank {
	return &Bank{lamps: lamps}
}

func (b *Bank) All() []Indicator {
	if b == nil {
		return nil
	}
	return b.lamps
}

func (b *Bank) Len() int {
	return len(b.All())
}

// AllOn switches every indicator in s on, in enumeration order.
func AllOn(s Set) {
	for _, l := range s.All() {
		l.On()
	}
}

// AllOff switches every indicator in s off, in enumeration order.
func AllOff(s Set) {
	for _, l := range s.All() {
		l.Off()
	}
}

//
// Cycler walks a Set forever: first, second, ..., last, first, ...
// The set is read once when the cycler is created.
//
type Cycler struct {
	lamps []Indicator
	next  int
}

func Cycle(s Set) *Cycler {
	return &Cycler{lamps: s.All()}
}

// Next returns the next indicator in the cycle.  On an empty set it
// returns false, every time.
func (c *Cycler) Next() (Indicator, bool) {
	if len(c.lamps) == 0 {
		return nil, false
	}
	l := c.lamps[c.next]
	c.next = (c.next + 1) % len(c.lamps)
	return l, true
}

// Position is the index of the indicator the next call to Next returns.
func (c *Cycler) Position() int {
	return c.next
}

// Package timer is the timing capability.  The only thing the runtime needs
// from a clock is a blocking delay that waits at least as long as it was
// asked to.
package timer

import "time"

// Duration is measured in microseconds, the resolution of the pi's system
// timer.
type Duration uint64

func FromMs(ms uint64) Duration {
	return Duration(ms * 1000)
}

func FromUs(us uint64) Duration {
	return Duration(us)
}

func (d Duration) Ms() uint64 {
	return uint64(d) / 1000
}

// Std converts to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d) * time.Microsecond
}

func (d Duration) String() string {
	return d.Std().String()
}

// Sleeper blocks the caller for at least d.  There is no cancellation.
type Sleeper interface {
	Sleep(d Duration)
}

// SleeperFunc lets an ordinary function be used as a Sleeper.
type SleeperFunc func(d Duration)

func (f SleeperFunc) Sleep(d Duration) {
	f(d)
}

// System sleeps with the runtime's scheduler (time.Sleep).  Under TinyGo
// this ends up in the target's sleepTicks.
type System struct{}

func (System) Sleep(d Duration) {
	time.Sleep(d.Std())
}

//
// Busy waits for at least d by spinning on a free-running microsecond
// counter.  This is what you want before the runtime's timer is up, or on
// boards where sleepTicks is not wired to anything.
//
type Busy struct {
	Now func() uint64
}

func (b Busy) Sleep(d Duration) {
	start := b.Now()
	// unsigned subtraction keeps this right across a counter wrap
	for b.Now()-start < uint64(d) {
	}
}

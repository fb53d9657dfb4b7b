package lang

import (
	"github.com/refugeesus/libtock-go/src/lib/led"
	"github.com/refugeesus/libtock-go/src/lib/timer"
)

// HoldTime is how long a lamp stays in each state in both halt patterns.
const HoldTime timer.Duration = 100 * 1000 // 100ms

// FlashAll is the stock unrecoverable-error handler: every lamp on, wait,
// every lamp off, wait, forever.  The payload is ignored; with no display
// the blink is all we can say.
func FlashAll(leds led.Set, clock timer.Sleeper) func(Payload) {
	return func(Payload) {
		for {
			led.AllOn(leds)
			clock.Sleep(HoldTime)
			led.AllOff(leds)
			clock.Sleep(HoldTime)
		}
	}
}

// Chase is the stock allocation-exhaustion handler.  One lamp at a time is
// lit, walking the board in enumeration order and wrapping around, so it
// can't be mistaken for FlashAll.  A board with no lamps just waits.
func Chase(leds led.Set, clock timer.Sleeper) func() {
	return func() {
		c := led.Cycle(leds)
		for {
			l, ok := c.Next()
			if !ok {
				clock.Sleep(HoldTime)
				continue
			}
			l.On()
			clock.Sleep(HoldTime)
			l.Off()
			clock.Sleep(HoldTime)
		}
	}
}

//go:build tinygo && (rpi3 || rpi3_qemu)

// Package tinygo_runtime is the pi3 side of program start.  It brings up
// the lamps, the delay clock and the serial console, installs the terminal
// handlers and then hands control to lang.Start.
package tinygo_runtime

import (
	"github.com/refugeesus/libtock-go/src/hardware/bcm2835"
	"github.com/refugeesus/libtock-go/src/hardware/rpi"
	"github.com/refugeesus/libtock-go/src/hardware/videocore"
	"github.com/refugeesus/libtock-go/src/lib/lang"
	"github.com/refugeesus/libtock-go/src/lib/led"
	"github.com/refugeesus/libtock-go/src/lib/semihosting"
	"github.com/refugeesus/libtock-go/src/lib/timer"
	"github.com/refugeesus/libtock-go/src/lib/trust"
)

// ExtraLampPins are SoC GPIO lines with lamps wired to them, in addition to
// the two on the board.  Set before calling Run.
var ExtraLampPins []uint8

// Clock is the busy-wait clock on the system timer.  The halt handlers use
// it because it works with interrupts off and the scheduler dead.
var Clock = timer.Busy{Now: bcm2835.MicroTime}

// Lamps is every lamp the board can drive: activity, power, then any extra
// GPIO lamps in the order given.
func Lamps() *led.Bank {
	lamps := []led.Indicator{
		&led.Lamp{Name: "act", Line: videocore.ExpanderLine(rpi.ActivityLEDExpanderPin)},
		&led.Lamp{Name: "pwr", Line: videocore.ExpanderLine(rpi.PowerLEDExpanderPin), ActiveLow: true},
	}
	for _, pin := range ExtraLampPins {
		line, ok := bcm2835.NewOutputPin(pin)
		if !ok {
			trust.Warnf("no such gpio %d, lamp ignored", pin)
			continue
		}
		lamps = append(lamps, &led.Lamp{Line: line})
	}
	return led.NewBank(lamps...)
}

// Run is what a program's main calls.  It never returns: the exit status
// goes back to the host over semihosting.
func Run[T lang.Termination](entry func() T) {
	MiniUART.Configure()
	trust.SetOutput(MiniUART)
	trust.SetExit(func(code int) { semihosting.ExitStatus(int32(code)) })

	lamps := Lamps()
	if err := lang.Install(lamps, Clock); err != nil {
		trust.Fatalf(int(lang.ExitFailure), "installing halt handlers: %v", err)
	}
	trust.Debugf("%d lamps, halt hold %s", lamps.Len(), lang.HoldTime)

	status := lang.Start(entry, 0, nil)
	trust.Infof("program exited with status %d", status)
	semihosting.ExitStatus(status)
}

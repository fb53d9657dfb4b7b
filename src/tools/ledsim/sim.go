package ledsim

import (
	"context"
	"fmt"

	"github.com/refugeesus/libtock-go/src/lib/lang"
	"github.com/refugeesus/libtock-go/src/lib/led"
	"github.com/refugeesus/libtock-go/src/lib/pool"
	"github.com/refugeesus/libtock-go/src/lib/trust"
)

// Mode is how the simulated program ends.
type Mode string

const (
	ModeOK    Mode = "ok"    // returns normally
	ModeExit  Mode = "exit"  // returns a failure code
	ModePanic Mode = "panic" // panics
	ModeFail  Mode = "fail"  // raises an unrecoverable error with a location
	ModeOOM   Mode = "oom"   // allocates until the pool runs dry
)

var Modes = []Mode{ModeOK, ModeExit, ModePanic, ModeFail, ModeOOM}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want one of %v)", s, Modes)
}

type Options struct {
	Mode    Mode
	Message string
	Code    int32
}

type block struct {
	next    *block
	payload [32]byte
}

// Program is the simulated user program for opts.
func Program(opts Options) func() lang.Result {
	return func() lang.Result {
		trust.Debugf("program starting in %s mode", opts.Mode)
		switch opts.Mode {
		case ModeOK:
			return lang.Success()
		case ModeExit:
			return lang.Failure(opts.Code)
		case ModePanic:
			panic(opts.Message)
		case ModeFail:
			lang.Fail(opts.Message)
		case ModeOOM:
			blocks := pool.New[block](64)
			var head *block
			for n := 0; ; n++ {
				b := blocks.Alloc()
				b.next = head
				head = b
				trust.Debugf("allocated block %d", n)
			}
		}
		return lang.Failure(lang.ExitFailure)
	}
}

// Outcome is how a simulation ended.
type Outcome struct {
	Status int32
	// Halted is set when the program ended in a halt handler; Status is
	// meaningless then.
	Halted bool
	State  lang.State
}

//
// Simulate installs the halt handlers on leds and clock, then runs the
// program for opts through lang.Start on its own goroutine.  It returns when
// the program returns, when clock reaches its limit, or when ctx is
// cancelled.  Handlers can only be installed once, so this can only be
// called once per process.
//
func Simulate(ctx context.Context, opts Options, leds led.Set, clock *Clock) (Outcome, error) {
	if err := lang.Install(leds, clock); err != nil {
		return Outcome{}, fmt.Errorf("installing halt handlers: %w", err)
	}
	result := make(chan int32, 1)
	go func() {
		result <- lang.Start(Program(opts), 0, nil)
	}()
	select {
	case s := <-result:
		return Outcome{Status: s, State: lang.Current()}, nil
	case <-clock.Done():
		return Outcome{Halted: true, State: lang.Current()}, nil
	case <-ctx.Done():
		return Outcome{Halted: lang.Current().Terminal(), State: lang.Current()}, ctx.Err()
	}
}

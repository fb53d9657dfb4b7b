package lang

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/refugeesus/libtock-go/src/lib/led"
	"github.com/refugeesus/libtock-go/src/lib/timer"
)

var (
	ErrAlreadyInstalled = errors.New("terminal handlers already installed")
	ErrNilHandler       = errors.New("terminal handler is nil")
)

// Location is where an unrecoverable error was raised, when known.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Payload describes an unrecoverable error.  The stock handler does not
// look at it.
type Payload struct {
	Message  string
	Location *Location
	// Value is what was passed to panic, if the error came from one.
	Value any
}

func (p Payload) String() string {
	if p.Location == nil {
		return p.Message
	}
	return p.Message + " at " + p.Location.String()
}

func payloadOf(v any) Payload {
	switch x := v.(type) {
	case Payload:
		return x
	case *Payload:
		if x == nil {
			return Payload{Message: "nil payload", Value: v}
		}
		return *x
	case error:
		// Sprint survives an Error method that panics on a nil receiver.
		return Payload{Message: fmt.Sprint(x), Value: v}
	case string:
		return Payload{Message: x, Value: v}
	}
	return Payload{Message: fmt.Sprint(v), Value: v}
}

var (
	installMu   sync.Mutex
	installed   bool
	onError     func(Payload)
	onExhausted func()
)

// used when a terminal condition fires before anything is installed, and
// when an installed handler breaks its promise and returns
var fallbackClock timer.Sleeper = timer.System{}

// Install registers the stock handlers, FlashAll for unrecoverable errors
// and Chase for allocation exhaustion, driving leds with clock.  Handlers
// can be installed once per process.
func Install(leds led.Set, clock timer.Sleeper) error {
	if leds == nil {
		leds = led.NewBank()
	}
	if clock == nil {
		clock = timer.System{}
	}
	return InstallHandlers(FlashAll(leds, clock), Chase(leds, clock))
}

// InstallHandlers registers custom terminal handlers.  Neither may return.
func InstallHandlers(errorHandler func(Payload), exhaustedHandler func()) error {
	if errorHandler == nil || exhaustedHandler == nil {
		return ErrNilHandler
	}
	installMu.Lock()
	defer installMu.Unlock()
	if installed {
		return ErrAlreadyInstalled
	}
	onError = errorHandler
	onExhausted = exhaustedHandler
	installed = true
	return nil
}

func handlers() (func(Payload), func()) {
	installMu.Lock()
	defer installMu.Unlock()
	return onError, onExhausted
}

// Unrecoverable is the unrecoverable-error channel.  It never returns.
func Unrecoverable(p Payload) {
	if halt(ErrorHalt) {
		if h, _ := handlers(); h != nil {
			h(p)
		}
	}
	stall()
}

// Exhausted is the allocation-exhaustion channel.  Allocators call it when
// they cannot satisfy a request.  It never returns.
func Exhausted() {
	if halt(OomHalt) {
		if _, h := handlers(); h != nil {
			h()
		}
	}
	stall()
}

// Fail raises an unrecoverable error carrying the caller's source location.
// It never returns.
func Fail(msg string) {
	p := Payload{Message: msg}
	if _, file, line, ok := runtime.Caller(1); ok {
		p.Location = &Location{File: file, Line: line}
	}
	Unrecoverable(p)
}

// stall is the end of the line once the lamps (if any) have been handed to
// a handler.
func stall() {
	for {
		fallbackClock.Sleep(HoldTime)
	}
}

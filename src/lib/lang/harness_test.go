package lang

import (
	"testing"

	"github.com/refugeesus/libtock-go/src/lib/led"
	"github.com/refugeesus/libtock-go/src/lib/timer"
)

// stopLoop is thrown by the test clocks to get out of a handler that would
// otherwise never return.
type stopLoop struct{}

// recorder is both the clock and the log of every capability call.  After
// limit sleeps it throws stopLoop.
type recorder struct {
	calls  []string
	sleeps int
	limit  int
}

func newRecorder(limit int) *recorder {
	return &recorder{limit: limit}
}

func (r *recorder) Sleep(d timer.Duration) {
	r.calls = append(r.calls, "delay("+d.String()+")")
	r.sleeps++
	if r.sleeps >= r.limit {
		panic(stopLoop{})
	}
}

type lamp struct {
	name string
	r    *recorder
}

func (l lamp) On()  { l.r.calls = append(l.r.calls, l.name+".on") }
func (l lamp) Off() { l.r.calls = append(l.r.calls, l.name+".off") }

func board(r *recorder, names ...string) *led.Bank {
	lamps := make([]led.Indicator, len(names))
	for i, n := range names {
		lamps[i] = lamp{name: n, r: r}
	}
	return led.NewBank(lamps...)
}

type stopClock struct{}

func (stopClock) Sleep(timer.Duration) { panic(stopLoop{}) }

// untilStopped runs fn and reports whether it was cut off by stopLoop.  Any
// other panic is passed on.
func untilStopped(t *testing.T, fn func()) (stopped bool) {
	t.Helper()
	defer func() {
		if v := recover(); v != nil {
			if _, ok := v.(stopLoop); !ok {
				panic(v)
			}
			stopped = true
		}
	}()
	fn()
	return false
}

// reset puts the package back the way a fresh process would find it.
func reset(t *testing.T) {
	t.Helper()
	installMu.Lock()
	installed = false
	onError = nil
	onExhausted = nil
	installMu.Unlock()
	state.Store(int32(Idle))
	active.Store(false)
	fallbackClock = stopClock{}
	t.Cleanup(func() { fallbackClock = timer.System{} })
}

const delay = "delay(100ms)"

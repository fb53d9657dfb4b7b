package lang

import "sync/atomic"

type State int32

const (
	Idle State = iota
	Running
	ErrorHalt
	OomHalt
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case ErrorHalt:
		return "error-halt"
	case OomHalt:
		return "oom-halt"
	}
	return "unknown"
}

func (s State) Terminal() bool {
	return s == ErrorHalt || s == OomHalt
}

var state atomic.Int32

// Current is where the process is in its (very short) life.
func Current() State {
	return State(state.Load())
}

// halt moves to a terminal state.  It reports false if the process was
// already halted, in which case the state is left alone.
func halt(to State) bool {
	for {
		from := State(state.Load())
		if from.Terminal() {
			return false
		}
		if state.CompareAndSwap(int32(from), int32(to)) {
			return true
		}
	}
}

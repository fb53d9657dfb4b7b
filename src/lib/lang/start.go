// Package lang is the glue between the platform's raw startup code and a
// program's main.  It runs main, converts what main returns into an exit
// status, and owns the two ways a bare-metal program can die: an
// unrecoverable error, or running out of memory.  Both end with the board's
// lamps blinking until somebody pulls the plug.
package lang

import (
	"sync/atomic"
	"unsafe"
)

var active atomic.Bool

//
// Start is called exactly once by the platform's startup code.  It runs
// entry on the current goroutine and returns entry's result as an exit
// status.  argc and argv are whatever the platform had in its registers;
// they are accepted so the call signature matches and are otherwise
// ignored.
//
// A panic that escapes entry is handed to the unrecoverable-error handler
// and Start does not return.
//
func Start[T Termination](entry func() T, argc int, argv unsafe.Pointer) int32 {
	if !active.CompareAndSwap(false, true) {
		Fail("start re-entered")
	}
	defer active.Store(false)
	state.CompareAndSwap(int32(Idle), int32(Running))
	defer func() {
		if r := recover(); r != nil {
			Unrecoverable(payloadOf(r))
		}
	}()
	return entry().Report()
}

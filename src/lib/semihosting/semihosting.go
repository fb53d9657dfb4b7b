//go:build tinygo

// Package semihosting lets a program running under QEMU or a debug probe
// hand its exit status back to the host.  That is how the status returned
// by lang.Start leaves the board.
package semihosting

import (
	"unsafe"
)

//go:extern semihosting_param_block
var semihosting_param_block uint64

//semihosting_call (the second param may be a value or a pointer)
//if it is a pointer, it will point to semihosting_param_block
//go:linkname semihosting_call semihosting.semihosting_call
func semihosting_call(op uint64, param uint64) uint64

// Exit reports code as the application's exit status and stops the
// emulator.  On real hardware with no debugger attached it traps.
func Exit(code uint64) {
	ptr := unsafe.Pointer(&semihosting_param_block)
	block := exitBlock(code)
	*((*uint64)(ptr)) = block[0]
	ptr = unsafe.Pointer(uintptr(ptr) + 0x8)
	*((*uint64)(ptr)) = block[1]
	semihosting_call(uint64(SemiHostOpExit), uint64(uintptr(unsafe.Pointer(&semihosting_param_block))))
}

// ExitStatus is Exit for a status as returned by lang.Start.
func ExitStatus(status int32) {
	Exit(uint64(uint32(status)))
}

//go:noinline
func Clock() uint64 {
	return semihosting_call(uint64(SemiHostOpClock), 0)
}

//go:build tinygo && (rpi3 || rpi3_qemu)

package rpi

//This file is for things that are specific to the *model* Raspberry Pi 3 and
//are different on other rpi models.
const MemoryMappedIO = uintptr(0x3F000000)

// The pi3B's lamps hang off the firmware's GPIO expander, not the SoC, so
// they are driven through the mailbox.  Expander pins start at 128.
const (
	ActivityLEDExpanderPin = 130
	PowerLEDExpanderPin    = 131 // active low
)

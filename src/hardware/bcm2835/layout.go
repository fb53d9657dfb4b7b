// Package bcm2835 drives the few SoC peripherals the runtime needs to signal
// its state: GPIO output lines for lamps and the free-running system timer
// for delays.
package bcm2835

// NumPins is the number of GPIO lines on the SoC.
const NumPins = 54

type GPIOMode uint32 //3 bits wide
const GPIOInput GPIOMode = 0
const GPIOOutput GPIOMode = 1
const GPIOAltFunc5 GPIOMode = 2
const GPIOAltFunc4 GPIOMode = 3
const GPIOAltFunc0 GPIOMode = 4
const GPIOAltFunc1 GPIOMode = 5
const GPIOAltFunc2 GPIOMode = 6
const GPIOAltFunc3 GPIOMode = 7

// funcSelectSlot is which FuncSelect register controls pin and where in it
// the pin's three bits live.
func funcSelectSlot(pin uint8) (reg int, shift uint8) {
	return int(pin / 10), (pin % 10) * 3
}

// outputBank is which of the Set/Clear register pairs (0 or 1) covers pin
// and the bit for it.
func outputBank(pin uint8) (bank int, bit uint32) {
	return int(pin / 32), 1 << (pin % 32)
}

// combine64 glues the two halves of the system timer counter together.  If
// the low half wrapped between reads, hi2 will differ from hi1 and the low
// half has to be read again, which the caller signals with ok=false.
func combine64(hi1, lo, hi2 uint32) (uint64, bool) {
	if hi1 != hi2 {
		return 0, false
	}
	return uint64(hi1)<<32 | uint64(lo), true
}

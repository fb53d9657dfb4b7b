//go:build tinygo && (rpi3 || rpi3_qemu)

package bcm2835

import "runtime/volatile"

type SysTimerRegisterMap struct {
	ControlStatus       volatile.Register32 //0x00
	FreeRunningLower32  volatile.Register32 //0x04
	FreeRunningHigher32 volatile.Register32 //0x08
	reservedGPU0        volatile.Register32 //0x0C
	Compare1            volatile.Register32 //0x10
	reservedGPU2        volatile.Register32 //0x14
	Compare3            volatile.Register32 //0x18
}

const SystemTimerMatch3 = 1 << 3
const SystemTimerMatch1 = 1 << 1


// MicroTime is the free-running system timer, one tick per microsecond.
// It is the counter behind timer.Busy on this board.
func MicroTime() uint64 {
	for {
		hi := SysTimer.FreeRunningHigher32.Get()
		lo := SysTimer.FreeRunningLower32.Get()
		if t, ok := combine64(hi, lo, SysTimer.FreeRunningHigher32.Get()); ok {
			return t
		}
	}
}

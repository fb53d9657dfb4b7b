//go:build tinygo && (rpi3 || rpi3_qemu)

package videocore

import (
	"unsafe"

	"device/arm"
	"runtime/volatile"

	"github.com/refugeesus/libtock-go/src/hardware/rpi"
)

var Mailbox *MailboxRegisterMap = (*MailboxRegisterMap)(unsafe.Pointer(rpi.MemoryMappedIO + 0x0000B880))

type MailboxRegisterMap struct {
	Read     volatile.Register32    //0x00
	reserved [3]volatile.Register32 //0x04-0x10
	Poll     volatile.Register32    //0x10
	Sender   volatile.Register32    // 0x14
	Status   volatile.Register32    // 0x18
	Config   volatile.Register32    //0x1c
	Write    volatile.Register32    //0x20
}

// The mailbox wants a 16 byte aligned buffer.  The halt handlers drive lamps
// through here after the allocator may have given up, so the buffer is
// static and over-sized by 16 bytes so it can be aligned by hand.
var mboxRaw [gpioStateSlots + 4]volatile.Register32

func mboxBuffer() *[gpioStateSlots]volatile.Register32 {
	ptr := uintptr(unsafe.Pointer(&mboxRaw[0]))
	if ptr&0xf != 0 {
		ptr += 16 - (ptr & 0xf)
	}
	return (*[gpioStateSlots]volatile.Register32)(unsafe.Pointer(ptr))
}

// Uses of this function are NOT multithread safe. This uses a single, shared
// mailbox data area.
func call(ch uint8, buf *[gpioStateSlots]volatile.Register32) bool {
	addr, ok := addressWithChannel(uintptr(unsafe.Pointer(buf)), ch)
	if !ok {
		return false
	}
	for Mailbox.Status.HasBits(MailboxFull) {
		arm.Asm("nop")
	}
	Mailbox.Write.Set(addr)
	for {
		if Mailbox.Status.HasBits(MailboxEmpty) {
			arm.Asm("nop")
			continue
		}
		if Mailbox.Read.Get() == addr {
			//did we get a confirm?
			return buf[1].Get() == MailboxResponse
		}
	}
}

// SetGPIOState drives a firmware expander line.
func SetGPIOState(pin uint32, on bool) bool {
	buf := mboxBuffer()
	for i, v := range gpioStateMessage(pin, on) {
		buf[i].Set(v)
	}
	return call(MailboxChannelProperties, buf)
}

// ExpanderLine is a firmware-owned GPIO line.  It satisfies led.Switch.
type ExpanderLine uint32

func (e ExpanderLine) High() {
	SetGPIOState(uint32(e), true)
}

func (e ExpanderLine) Low() {
	SetGPIOState(uint32(e), false)
}

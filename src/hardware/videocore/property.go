// Package videocore talks to the GPU firmware through the property mailbox.
// The runtime only needs it for the lamps the firmware owns.
package videocore

const MailboxFull = 0x80000000
const MailboxEmpty = 0x40000000
const MailboxResponse = 0x80000000
const MailboxRequest = 0x0

const MailboxChannelProperties = 8

const MailboxTagLast = 0x0
const MailboxTagSetGPIOState = 0x00038041

// gpioStateSlots is the length of a SET_GPIO_STATE property message.
const gpioStateSlots = 8

// gpioStateMessage lays out a request that drives firmware expander line
// pin high (on) or low.
func gpioStateMessage(pin uint32, on bool) [gpioStateSlots]uint32 {
	state := uint32(0)
	if on {
		state = 1
	}
	return [gpioStateSlots]uint32{
		4 * gpioStateSlots, //bytes of total size
		MailboxRequest,
		MailboxTagSetGPIOState,
		8, //value buffer: pin, state
		0, //request
		pin,
		state,
		MailboxTagLast,
	}
}

// addressWithChannel is what gets written to the mailbox: the 16-byte
// aligned buffer address with the channel in the low nibble.
func addressWithChannel(addr uintptr, ch uint8) (uint32, bool) {
	if addr&0xf != 0 {
		return 0, false
	}
	return uint32(addr) | uint32(ch&0xf), true
}

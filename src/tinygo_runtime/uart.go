//go:build tinygo && (rpi3 || rpi3_qemu)

package tinygo_runtime

import (
	"device/arm"

	p "github.com/refugeesus/libtock-go/src/hardware/bcm2835"
)

//
// The "miniuart" is the simplest of the pi's uarts to configure.  Here it is
// transmit only: it is where trust sends log lines during bring-up.
//
type UART struct{}

var MiniUART = &UART{}

// Configure sets up 8 bit, no interrupt, transmit-only at 115200 baud on
// GPIO 14/15.
func (uart *UART) Configure() {
	p.Aux.Enables.SetBits(p.PeripheralMiniUART) //enable AUX Mini uart

	//turn off the transmitter and receiver
	p.Aux.MiniUARTExtraControl.Set(0)

	//see errata for why (bad docs!) uses excuse of compat with 16550
	// https://elinux.org/BCM2835_datasheet_errata#p14
	p.Aux.MiniUARTLineControl.SetBits(p.DataLength8Bits)

	p.Aux.MiniUARTModemControl.ClearBits(p.ReadyToSend) // this asserts the line
	p.Aux.MiniUARTInterruptIdentify.ReplaceBits(p.ClearTransmitFIFO|p.ClearReceiveFIFO, p.ClearFIFOsMask, 0 /*no shift*/)

	// derived from clock speed: BCM2835 ARM Peripheral manual page 11
	p.Aux.MiniUARTBAUD.Set(270) // 115200 baud

	p.Aux.MiniUARTInterruptEnable.ClearBits(p.ReceiveFIFOReady | p.TransmitFIFOEmpty | p.LineStatusError | p.ModemStatusChange)

	// map UART1 to GPIO pins
	p.GPIOSetup(14, p.GPIOAltFunc5)
	p.GPIOSetup(15, p.GPIOAltFunc5)
	spin(150)
	p.GPIO.PullUpDownEnableClock0.SetBits((1 << 14) | (1 << 15))
	spin(150)
	p.GPIO.PullUpDownEnableClock0.Set(0) //flush gpio setup

	p.Aux.MiniUARTExtraControl.SetBits(p.TransmitEnable)
}

func spin(cycles int) {
	for ; cycles > 0; cycles-- {
		arm.Asm("nop")
	}
}

//
// Writing a byte over serial.  Blocking.
//
func (uart *UART) WriteByte(c byte) error {
	for !p.Aux.MiniUARTLineStatus.HasBits(p.TransmitFIFOSpaceAvailable) {
		arm.Asm("nop")
	}
	p.Aux.MiniUARTData.Set(uint32(c)) //really 8 bit write
	return nil
}

// Write makes the uart an io.Writer.  Newlines go out as CR LF.
func (uart *UART) Write(b []byte) (int, error) {
	for _, c := range b {
		if c == '\n' {
			uart.WriteByte('\r')
		}
		uart.WriteByte(c)
	}
	return len(b), nil
}

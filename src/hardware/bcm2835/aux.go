//go:build tinygo && (rpi3 || rpi3_qemu)

package bcm2835

import "runtime/volatile"

// Only the mini UART half of the aux block is mapped; the SPI masters
// behind it are not used.
type AuxPeripheralsRegisterMap struct {
	InterruptStatus           volatile.Register32 //0x00
	Enables                   volatile.Register32 //0x04
	reserved00                [14]uint32
	MiniUARTData              volatile.Register32 //0x40, 8 bits wide
	MiniUARTInterruptEnable   volatile.Register32 //0x44
	MiniUARTInterruptIdentify volatile.Register32 //0x48
	MiniUARTLineControl       volatile.Register32 //0x4C
	MiniUARTModemControl      volatile.Register32 //0x50
	MiniUARTLineStatus        volatile.Register32 //0x54, readonly
	MiniUARTModemStatus       volatile.Register32 //0x58, readonly
	MiniUARTScratch           volatile.Register32 //0x5C
	MiniUARTExtraControl      volatile.Register32 //0x60
	MiniUARTExtraStatus       volatile.Register32 //0x64
	MiniUARTBAUD              volatile.Register32 //0x68
}

// mini uart: peripheral enable
const PeripheralMiniUART = 1 << 0

// mini uart: extra control bitfields
const ReceiveEnable = 1 << 0
const TransmitEnable = 1 << 1

// mini uart: line control register bitfields
//https://elinux.org/BCM2835_datasheet_errata
const DataLength8Bits = 3 << 0

// mini uart: modem control register bitfields
const ReadyToSend = 1 << 1

const ClearFIFOsMask = 0x6       //use with register32.ReplaceBits
const ClearReceiveFIFO = 1 << 1  //Write
const ClearTransmitFIFO = 1 << 2 //Write

// mini uart: line status register bitfields
const TransmitFIFOSpaceAvailable = 1 << 5

// mini uart: interrupt enable register bitfields
const ReceiveFIFOReady = 1 << 0
const TransmitFIFOEmpty = 1 << 1
const LineStatusError = 1 << 2   //overrun error, parity error, framing error
const ModemStatusChange = 1 << 3 //changes to DSR/CTS

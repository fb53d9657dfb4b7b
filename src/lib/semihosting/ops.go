package semihosting

type SemiHostingOp uint64

const (
	SemiHostOpExit  SemiHostingOp = 0x18
	SemiHostOpClock SemiHostingOp = 0x10
)

type SemihostingStopCode int

const (
	SemihostingStopBreakpoint          SemihostingStopCode = 0x20020
	SemihostingStopWatchpoint          SemihostingStopCode = 0x20021
	SemihostingStopStepComplete        SemihostingStopCode = 0x20022
	SemihostingStopRuntimeErrorUnknown SemihostingStopCode = 0x20023
	SemihostingStopInternalError       SemihostingStopCode = 0x20024
	SemihostingStopUserInterruption    SemihostingStopCode = 0x20025
	SemihostingStopApplicationExit     SemihostingStopCode = 0x20026
	SemihostingStopStackOverflow       SemihostingStopCode = 0x20027
	SemihostingStopDivisionByZero      SemihostingStopCode = 0x20028
	SemihostingStopOSSpecific          SemihostingStopCode = 0x20029
)

// exitBlock is the two-word parameter block for an AArch64 SYS_EXIT: the
// reason, then the status.
func exitBlock(code uint64) [2]uint64 {
	return [2]uint64{uint64(SemihostingStopApplicationExit), code}
}

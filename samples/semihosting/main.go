//go:build tinygo && (rpi3 || rpi3_qemu)

// semihosting shows a result making it all the way out to the host.  Run it
// under qemu with -semihosting and the emulator exits with status 27.
package main

import (
	"github.com/refugeesus/libtock-go/src/lib/lang"
	rt "github.com/refugeesus/libtock-go/src/tinygo_runtime"
)

func main() {
	rt.Run(func() lang.ExitCode {
		return 27
	})
}

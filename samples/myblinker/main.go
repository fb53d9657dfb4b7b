//go:build tinygo && (rpi3 || rpi3_qemu)

// myblinker is a program that goes wrong on purpose so you can learn the
// lamp patterns.  Pick how it dies at link time:
//
//	tinygo build -tags rpi3 -ldflags "-X main.mode=oom" ./samples/myblinker
//
// ok returns normally, panic blinks every lamp together, oom chases one lamp
// around the board.
package main

import (
	rt "github.com/refugeesus/libtock-go/src/tinygo_runtime"

	"github.com/refugeesus/libtock-go/src/lib/lang"
	"github.com/refugeesus/libtock-go/src/lib/pool"
	"github.com/refugeesus/libtock-go/src/lib/trust"
)

var mode = "panic"

type frame struct {
	next *frame
	seq  uint64
}

var frames = pool.New[frame](128)

func program() lang.Result {
	trust.Infof("myblinker running in %s mode", mode)
	switch mode {
	case "ok":
		return lang.Success()
	case "panic":
		panic("stack overflow")
	case "oom":
		// never freed, so this runs the pool dry
		var head *frame
		for seq := uint64(0); ; seq++ {
			f := frames.Alloc()
			f.next, f.seq = head, seq
			head = f
		}
	}
	return lang.Failure(2)
}

func main() {
	rt.ExtraLampPins = []uint8{5, 6, 13}
	rt.Run(program)
}

package main

import (
	"os"

	"github.com/refugeesus/libtock-go/src/tools/ledsim"
)

func main() {
	os.Exit(ledsim.Execute())
}

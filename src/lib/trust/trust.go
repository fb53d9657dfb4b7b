// Package trust is a tiny masked-level logger.  It is what the board
// bring-up code and the host tools log through; the halt handlers never
// use it because by then there may be nowhere to write.
package trust

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type MaskLevel int

const (
	Nothing   MaskLevel = 0x0
	ErrorMask MaskLevel = 0x1
	WarnMask  MaskLevel = 0x2
	InfoMask  MaskLevel = 0x4
	DebugMask MaskLevel = 0x8
	StatsMask MaskLevel = 0x10
	fatalMask MaskLevel = 0x80
)

const allLevels = ErrorMask | WarnMask | InfoMask | DebugMask | StatsMask

var (
	mu    sync.Mutex
	level = fatalMask | ErrorMask | WarnMask | InfoMask
	out   io.Writer = os.Stdout
	exit            = os.Exit
)

// SetLevel lets you set the mask directly. You can pass in something like
// ErrorMask | DebugMask to control exactly what gets printed.  It returns the
// previous mask.  Fatal messages cannot be masked.
func SetLevel(mask MaskLevel) MaskLevel {
	mu.Lock()
	defer mu.Unlock()
	if mask&allLevels == 0 {
		fmt.Fprintf(out, " WARN: trust.SetLevel is turning off log messages\n")
	}
	r := level & allLevels
	level = (mask & allLevels) | fatalMask
	return r
}

// UpTo sets the mask to l and every level more severe than it.
func UpTo(l MaskLevel) MaskLevel {
	mask := Nothing
	for _, m := range []MaskLevel{ErrorMask, WarnMask, InfoMask, DebugMask} {
		mask |= m
		if m == l {
			break
		}
	}
	return SetLevel(mask)
}

func Level() MaskLevel {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// SetOutput sends log lines to w and returns the old writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	old := out
	out = w
	return old
}

// SetExit replaces what Fatalf calls after printing.  On the board this is
// semihosting.Exit.
func SetExit(fn func(int)) {
	mu.Lock()
	defer mu.Unlock()
	exit = fn
}

func LevelToString() string {
	l := Level()
	result := ""
	for _, p := range []struct {
		m    MaskLevel
		name string
	}{{ErrorMask, "error"}, {WarnMask, "warn"}, {InfoMask, "info"}, {DebugMask, "debug"}, {StatsMask, "stats"}} {
		if l&p.m == 0 {
			continue
		}
		if result != "" {
			result += " "
		}
		result += p.name
	}
	return result
}

func logf(l MaskLevel, format string, params ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if level&l == 0 {
		return
	}
	prefix := ""
	switch {
	case l&fatalMask > 0:
		prefix = "FATAL:"
	case l&ErrorMask > 0:
		prefix = "ERROR:"
	case l&WarnMask > 0:
		prefix = " WARN:"
	case l&InfoMask > 0:
		prefix = " INFO:"
	case l&DebugMask > 0:
		prefix = "DEBUG:"
	case l&StatsMask > 0:
		s, ok := params[0].(string)
		if !ok {
			s = "unknown"
		}
		prefix = "STATS[" + s + "]:"
		params = params[1:]
	}
	if len(format) == 0 {
		format = "\n"
	} else if format[len(format)-1] != '\n' {
		format += "\n"
	}
	fmt.Fprintf(out, prefix+format, params...)
}

//Fatalf prints the given log message (format + params) and then
//exits with the exitCode provided.  Fatalf is not maskable.
func Fatalf(exitCode int, format string, params ...interface{}) {
	logf(fatalMask, format, params...)
	mu.Lock()
	fn := exit
	mu.Unlock()
	fn(exitCode)
}

//Errorf prints the given log message (format + params) using the ErrorMask level.
func Errorf(format string, params ...interface{}) {
	logf(ErrorMask, format, params...)
}

//Warnf prints the given log message (format + params) using the WarnMask level.
func Warnf(format string, params ...interface{}) {
	logf(WarnMask, format, params...)
}

//Infof prints the given log message (format + params) using the InfoMask level.
func Infof(format string, params ...interface{}) {
	logf(InfoMask, format, params...)
}

//Debugf prints the given log message (format + params) using the DebugMask level.
func Debugf(format string, params ...interface{}) {
	logf(DebugMask, format, params...)
}

//Statsf prints the given log message (format + params) using the StatsMask level and
//takes an extra parameter that will be visible in the log message as the category
//of stats that is reported.
func Statsf(category string, format string, params ...interface{}) {
	logf(StatsMask, format, append([]interface{}{category}, params...)...)
}

package ledsim

import (
	"io"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"

	"github.com/refugeesus/libtock-go/src/lib/timer"
)

// Event is one call into the indicator or timing capability.
type Event struct {
	Step   int
	Lamp   string
	Pin    int
	Action string // on, off or delay
	Hold   timer.Duration
}

// Trace is the ordered log of capability calls made by a halt handler.
type Trace struct {
	mu     sync.Mutex
	events []Event
}

// record appends e, numbering it.
func (t *Trace) record(e Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e.Step = len(t.events) + 1
	t.events = append(t.events, e)
}

func (t *Trace) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Event(nil), t.events...)
}

// Compact renders the trace the way the patterns are usually written down:
// "act.on", "delay", ...
func (t *Trace) Compact() []string {
	var out []string
	for _, e := range t.Events() {
		if e.Action == "delay" {
			out = append(out, "delay")
			continue
		}
		out = append(out, e.Lamp+"."+e.Action)
	}
	return out
}

// WriteTable prints the trace as a table.
func (t *Trace) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.Header("Step", "Lamp", "Pin", "Action", "Hold")
	for _, e := range t.Events() {
		pin, hold := "", ""
		if e.Action == "delay" {
			hold = e.Hold.String()
		} else {
			pin = strconv.Itoa(e.Pin)
		}
		table.Append([]string{strconv.Itoa(e.Step), e.Lamp, pin, e.Action, hold})
	}
	table.Render()
}

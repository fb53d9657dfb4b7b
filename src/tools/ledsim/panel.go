package ledsim

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/refugeesus/libtock-go/src/lib/led"
)

const (
	litGlyph  = "●"
	darkGlyph = "○"
)

//
// Panel is the simulated board.  Each lamp is a led.Lamp on a simulated
// output line, so active-low wiring behaves the way it does on hardware.
// Every change redraws the panel on out, in place.
//
type Panel struct {
	mu    sync.Mutex
	out   io.Writer
	trace *Trace

	names []string
	pins  []int
	level []bool // line levels, not lamp states
	lows  []bool
	bank  *led.Bank
}

type simLine struct {
	p *Panel
	i int
}

func (l simLine) High() { l.p.drive(l.i, true) }
func (l simLine) Low()  { l.p.drive(l.i, false) }

// NewPanel builds the lamps for b.  out and trace may be nil.
func NewPanel(b *Board, out io.Writer, trace *Trace) *Panel {
	p := &Panel{out: out, trace: trace}
	lamps := make([]led.Indicator, len(b.Lamps))
	for i, c := range b.Lamps {
		p.names = append(p.names, c.Name)
		p.pins = append(p.pins, c.Pin)
		p.lows = append(p.lows, c.ActiveLow)
		// dark at power on
		p.level = append(p.level, c.ActiveLow)
		lamps[i] = &led.Lamp{Name: c.Name, Line: simLine{p: p, i: i}, ActiveLow: c.ActiveLow}
	}
	p.bank = led.NewBank(lamps...)
	return p
}

func (p *Panel) All() []led.Indicator {
	return p.bank.All()
}

func (p *Panel) drive(i int, high bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level[i] = high
	if p.trace != nil {
		action := "off"
		if p.lit(i) {
			action = "on"
		}
		p.trace.record(Event{Lamp: p.names[i], Pin: p.pins[i], Action: action})
	}
	if p.out != nil {
		fmt.Fprintf(p.out, "\r%s", p.render())
	}
}

// Quiesce stops redrawing.  The lamps keep their state, so a handler still
// running after the terminal is handed back does no harm.  Once Quiesce
// returns nothing more is written to out.
func (p *Panel) Quiesce() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = nil
}

func (p *Panel) lit(i int) bool {
	return p.level[i] != p.lows[i]
}

// Lit reports whether lamp i is shining.
func (p *Panel) Lit(i int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lit(i)
}

func (p *Panel) Render() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.render()
}

func (p *Panel) render() string {
	if len(p.names) == 0 {
		return "(no lamps)"
	}
	parts := make([]string, len(p.names))
	for i, n := range p.names {
		g := darkGlyph
		if p.lit(i) {
			g = litGlyph
		}
		parts[i] = n + " " + g
	}
	return strings.Join(parts, "  ")
}

package ledsim

import (
	"sync"
	"time"

	"github.com/refugeesus/libtock-go/src/lib/timer"
)

//
// Clock is the simulator's timing capability.  It sleeps for the requested
// hold divided by Speed, and once Limit holds have gone by it signals Done
// and parks the caller for good.  A halt handler never returns, so that is
// the only way to get a finite run out of one.
//
type Clock struct {
	Speed float64 // 0 means don't sleep at all
	Limit int     // 0 means no limit
	trace *Trace

	mu     sync.Mutex
	sleeps int
	once   sync.Once
	done   chan struct{}
}

func NewClock(speed float64, limit int, trace *Trace) *Clock {
	return &Clock{Speed: speed, Limit: limit, trace: trace, done: make(chan struct{})}
}

func (c *Clock) Sleep(d timer.Duration) {
	if c.trace != nil {
		c.trace.record(Event{Action: "delay", Hold: d})
	}
	if c.Speed > 0 {
		time.Sleep(time.Duration(float64(d.Std()) / c.Speed))
	}
	c.mu.Lock()
	c.sleeps++
	n := c.sleeps
	c.mu.Unlock()
	if c.Limit > 0 && n >= c.Limit {
		c.once.Do(func() { close(c.done) })
		select {}
	}
}

// Sleeps is how many holds have been asked for so far.
func (c *Clock) Sleeps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sleeps
}

// Done is closed when Limit is reached.
func (c *Clock) Done() <-chan struct{} {
	return c.done
}

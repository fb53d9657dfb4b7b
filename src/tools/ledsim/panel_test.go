package ledsim

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refugeesus/libtock-go/src/lib/lang"
)

func threeLamps() *Board {
	return &Board{Name: "t", Speed: 1, Lamps: []LampConfig{{Name: "A"}, {Name: "B"}, {Name: "C", ActiveLow: true}}}
}

func TestPanelActiveLow(t *testing.T) {
	var buf bytes.Buffer
	p := NewPanel(threeLamps(), &buf, nil)
	assert.Equal(t, "A ○  B ○  C ○", p.Render())

	p.All()[2].On()
	assert.True(t, p.Lit(2))
	assert.Equal(t, "A ○  B ○  C ●", p.Render())
	assert.True(t, strings.HasPrefix(buf.String(), "\r"))

	p.All()[2].Off()
	assert.False(t, p.Lit(2))
}

func TestPanelNoLamps(t *testing.T) {
	p := NewPanel(&Board{Speed: 1}, nil, nil)
	assert.Empty(t, p.All())
	assert.Equal(t, "(no lamps)", p.Render())
}

// waitDone runs a halt handler until the clock's limit parks it.
func waitDone(t *testing.T, clock *Clock, handler func()) {
	t.Helper()
	go handler()
	select {
	case <-clock.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("clock limit never reached")
	}
}

func TestTraceFlashAll(t *testing.T) {
	trace := &Trace{}
	p := NewPanel(threeLamps(), nil, trace)
	clock := NewClock(0, 4, trace)
	waitDone(t, clock, func() { lang.FlashAll(p, clock)(lang.Payload{Message: "stack overflow"}) })

	once := []string{"A.on", "B.on", "C.on", "delay", "A.off", "B.off", "C.off", "delay"}
	assert.Equal(t, append(once, once...), trace.Compact())
}

func TestTraceChase(t *testing.T) {
	trace := &Trace{}
	p := NewPanel(threeLamps(), nil, trace)
	clock := NewClock(0, 8, trace)
	waitDone(t, clock, lang.Chase(p, clock))

	assert.Equal(t, []string{
		"A.on", "delay", "A.off", "delay",
		"B.on", "delay", "B.off", "delay",
		"C.on", "delay", "C.off", "delay",
		"A.on", "delay", "A.off", "delay",
	}, trace.Compact())

	events := trace.Events()
	require.Len(t, events, 16)
	assert.Equal(t, 1, events[0].Step)
	assert.Equal(t, lang.HoldTime, events[1].Hold)
	assert.Equal(t, 8, clock.Sleeps())
}

func TestClockPacing(t *testing.T) {
	clock := NewClock(1000, 0, nil)
	start := time.Now()
	clock.Sleep(lang.HoldTime) // 100ms at 1000x is 100us
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.Equal(t, 1, clock.Sleeps())
}

func TestTraceTable(t *testing.T) {
	trace := &Trace{}
	trace.record(Event{Lamp: "A", Pin: 130, Action: "on"})
	trace.record(Event{Action: "delay", Hold: lang.HoldTime})
	var buf bytes.Buffer
	trace.WriteTable(&buf)
	assert.Contains(t, buf.String(), "100ms")
	assert.Contains(t, buf.String(), "A")
	assert.Contains(t, buf.String(), "130")
	assert.Equal(t, 2, trace.Events()[1].Step)
}

func TestTraceRecordsPins(t *testing.T) {
	trace := &Trace{}
	p := NewPanel(DefaultBoard(), nil, trace)
	p.All()[1].On()
	events := trace.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "pwr", events[0].Lamp)
	assert.Equal(t, 131, events[0].Pin)
}

func TestPanelQuiesce(t *testing.T) {
	var buf bytes.Buffer
	p := NewPanel(threeLamps(), &buf, nil)
	p.All()[0].On()
	drawn := buf.Len()
	require.NotZero(t, drawn)

	p.Quiesce()
	p.All()[0].Off()
	p.All()[1].On()
	assert.Equal(t, drawn, buf.Len(), "nothing drawn after quiesce")
	assert.True(t, p.Lit(1))
	assert.False(t, p.Lit(0))
}

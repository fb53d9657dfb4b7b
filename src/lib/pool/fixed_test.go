package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	next  *node
	value uint64
}

type diverted struct{ why string }

// trap replaces the terminal channels so a test can see them fire.
func trap[T any](p *Fixed[T]) {
	p.exhausted = func() { panic(diverted{"exhausted"}) }
	p.fail = func(msg string) { panic(diverted{msg}) }
}

func catch(t *testing.T, fn func()) (why string) {
	t.Helper()
	defer func() {
		if v := recover(); v != nil {
			d, ok := v.(diverted)
			if !ok {
				panic(v)
			}
			why = d.why
		}
	}()
	fn()
	return ""
}

func TestAllocUntilExhausted(t *testing.T) {
	p := New[node](64)
	trap(p)
	require.True(t, p.Empty())

	seen := map[*node]bool{}
	for i := 0; i < 64; i++ {
		n := p.Alloc()
		require.NotNil(t, n)
		require.False(t, seen[n], "element handed out twice")
		seen[n] = true
	}
	assert.True(t, p.Full())
	assert.Equal(t, 64, p.Len())

	_, ok := p.TryAlloc()
	assert.False(t, ok)
	assert.Equal(t, "exhausted", catch(t, func() { p.Alloc() }))
}

func TestFreeMakesRoom(t *testing.T) {
	p := New[node](64)
	trap(p)
	var all []*node
	for i := 0; i < 64; i++ {
		all = append(all, p.Alloc())
	}
	all[17].value = 99
	p.Free(all[17])
	assert.False(t, p.Full())

	n := p.Alloc()
	assert.Same(t, all[17], n)
	assert.Equal(t, uint64(0), n.value, "reused elements come back zeroed")
}

func TestFreeForeignPointer(t *testing.T) {
	p := New[node](128)
	trap(p)
	var outsider node
	assert.Equal(t, "pointer passed to Free that is not from pool", catch(t, func() { p.Free(&outsider) }))
	assert.Equal(t, "pointer passed to Free that is not from pool", catch(t, func() { p.Free(nil) }))
}

func TestDoubleFree(t *testing.T) {
	p := New[node](64)
	trap(p)
	n := p.Alloc()
	p.Free(n)
	assert.Equal(t, "element freed twice", catch(t, func() { p.Free(n) }))
	assert.True(t, p.Empty())
}

func TestNewRefusesBadPools(t *testing.T) {
	old := failHard
	failHard = func(msg string) { panic(diverted{msg}) }
	t.Cleanup(func() { failHard = old })

	assert.Equal(t, "pool element type has zero size", catch(t, func() { New[struct{}](64) }))
	assert.Equal(t, "requested size is not valid for a pool", catch(t, func() { New[node](65) }))
	assert.Equal(t, "requested size is not valid for a pool", catch(t, func() { New[node](0) }))
	assert.Equal(t, "requested size is not valid for a pool", catch(t, func() { New[node](MaxElements + 64) }))
}

func TestBitSet(t *testing.T) {
	if NewBitSet(65) != nil {
		t.Errorf("expected bitset of 65 to be refused")
	}
	b := NewBitSet(128)
	for i := 0; i < 70; i++ {
		b.Set(BitIndex(i))
	}
	i, ok := b.FirstClear(128)
	if !ok || i != 70 {
		t.Errorf("expected first clear bit 70, got %d (%v)", i, ok)
	}
	b.Clear(3)
	if b.On(3) {
		t.Errorf("bit 3 should be clear")
	}
	i, _ = b.FirstClear(128)
	if i != 3 {
		t.Errorf("expected first clear bit 3, got %d", i)
	}
	b.ClearAll()
	for i := 0; i < 128; i++ {
		if b.On(BitIndex(i)) {
			t.Errorf("bit %d set after ClearAll", i)
		}
	}
	if _, ok := b.FirstClear(0); ok {
		t.Errorf("nothing should be found below a limit of 0")
	}
}

// Package pool hands out elements from a fixed, preallocated array.  There
// is no heap to grow into, so when a pool runs dry the program is out of
// memory and Alloc goes down the allocation-exhaustion channel.
package pool

import (
	"unsafe"

	"github.com/refugeesus/libtock-go/src/lib/lang"
)

// MaxElements bounds a single pool; anything bigger wants a real allocator.
const MaxElements = 2048

// failHard is where New reports a pool it cannot build.
var failHard = lang.Fail

type Fixed[T any] struct {
	elements []T
	inUse    *BitSet
	live     int

	// terminal channels, lang.Exhausted and lang.Fail outside of tests
	exhausted func()
	fail      func(string)
}

// New returns a pool of n elements.  n must be a positive multiple of 64 no
// larger than MaxElements, and T must take up space: elements of a
// zero-size type share an address, so Free could not tell them apart.
// Asking for anything else is a programming error and fails hard.
func New[T any](n uint32) *Fixed[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		failHard("pool element type has zero size")
		return nil
	}
	if n == 0 || n > MaxElements || n%64 != 0 {
		failHard("requested size is not valid for a pool")
		return nil
	}
	return &Fixed[T]{
		elements:  make([]T, n),
		inUse:     NewBitSet(n),
		exhausted: lang.Exhausted,
		fail:      lang.Fail,
	}
}

// TryAlloc returns a zeroed element, or false if the pool is exhausted.  A
// pool can go from exhausted to working when Free is called.
func (p *Fixed[T]) TryAlloc() (*T, bool) {
	i, ok := p.inUse.FirstClear(uint32(len(p.elements)))
	if !ok {
		return nil, false
	}
	p.inUse.Set(i)
	p.live++
	var zero T
	p.elements[i] = zero
	return &p.elements[i], true
}

// Alloc is TryAlloc for callers that have no way to cope with running out.
// On exhaustion it never returns.
func (p *Fixed[T]) Alloc() *T {
	e, ok := p.TryAlloc()
	if !ok {
		p.exhausted()
	}
	return e
}

// Free returns e to the pool.  Freeing something that did not come from
// this pool, or freeing twice, is an unrecoverable error.
func (p *Fixed[T]) Free(e *T) {
	i, ok := p.indexOf(e)
	if !ok {
		p.fail("pointer passed to Free that is not from pool")
		return
	}
	if !p.inUse.On(BitIndex(i)) {
		p.fail("element freed twice")
		return
	}
	p.inUse.Clear(BitIndex(i))
	p.live--
}

func (p *Fixed[T]) indexOf(e *T) (int, bool) {
	if e == nil || len(p.elements) == 0 {
		return 0, false
	}
	size := unsafe.Sizeof(p.elements[0])
	base := uintptr(unsafe.Pointer(&p.elements[0]))
	addr := uintptr(unsafe.Pointer(e))
	if addr < base {
		return 0, false
	}
	offset := addr - base
	if offset%size != 0 || offset/size >= uintptr(len(p.elements)) {
		return 0, false
	}
	return int(offset / size), true
}

func (p *Fixed[T]) Len() int {
	return p.live
}

func (p *Fixed[T]) Cap() int {
	return len(p.elements)
}

// Full reports that every element is handed out.
func (p *Fixed[T]) Full() bool {
	return p.live == len(p.elements)
}

// Empty reports that nothing is handed out.
func (p *Fixed[T]) Empty() bool {
	return p.live == 0
}

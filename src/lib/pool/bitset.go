package pool

type BitSet struct {
	size uint32
	data []uint64
}

type BitIndex uint32

// bitsets have to be multiples of 64.  NewBitSet returns nil for any
// other size.
func NewBitSet(size uint32) *BitSet {
	mask := ^(uint32(0x3f))
	if size&mask != size {
		return nil
	}
	return &BitSet{
		size: size,
		data: make([]uint64, size>>6),
	}
}

func (b *BitSet) Size() uint32 {
	return b.size
}

func (b *BitSet) On(bit BitIndex) bool {
	mask := uint64(1) << (bit % 64) //which bit in the word
	return b.data[bit>>6]&mask != 0
}

func (b *BitSet) Set(bit BitIndex) {
	b.data[bit>>6] |= uint64(1) << (bit % 64)
}

func (b *BitSet) Clear(bit BitIndex) {
	b.data[bit>>6] &^= uint64(1) << (bit % 64)
}

func (b *BitSet) ClearAll() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// FirstClear is the lowest index below limit that is not set.
func (b *BitSet) FirstClear(limit uint32) (BitIndex, bool) {
	for i := uint32(0); i < limit && i < b.size; i++ {
		if b.data[i>>6] == ^uint64(0) {
			i |= 0x3f // whole word is taken
			continue
		}
		if !b.On(BitIndex(i)) {
			return BitIndex(i), true
		}
	}
	return 0, false
}

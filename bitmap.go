package hashfuncs

// Bitmap is a validity bitmap with one bit per physical slot, where a set
// bit marks the slot as holding a valid (non-null) value. The nil bitmap
// is valid everywhere, so vectors without nulls carry no mask at all and
// validity checks stay a single comparison per row.
type Bitmap []uint64

func makeBitmap(numSlots int) Bitmap {
	b := make(Bitmap, (numSlots+63)/64)
	for i := range b {
		b[i] = ^uint64(0)
	}
	return b
}

// IsValid returns true if slot i holds a valid value.
func (b Bitmap) IsValid(i int) bool {
	return b == nil || (b[uint(i)>>6]>>(uint(i)&63))&1 != 0
}

func (b Bitmap) setInvalid(i int) {
	b[uint(i)>>6] &^= 1 << (uint(i) & 63)
}

package chunkbits

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ToRoaring returns a roaring bitmap holding the position of every set bit,
// including set padding bits at or above Bits().
func (v *Vector) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.New()
	v.ForEach(func(i int) bool {
		rb.Add(uint64(i))
		return true
	})
	return rb
}

// SetRoaring sets every bit whose position is in rb.
// It panics with ErrIndexOutOfRange, leaving v untouched, if any position is
// not below Cap().
func (v *Vector) SetRoaring(rb *roaring64.Bitmap) {
	if rb.IsEmpty() {
		return
	}
	if limit := uint64(v.Cap()); rb.Maximum() >= limit {
		panicIndex("Vector.SetRoaring", int(rb.Maximum()), v.Cap())
	}

	it := rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		v.chunks[i/ChunkBits].set(i % ChunkBits)
	}
}

package chunkbits

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/chunkbits/internal/mem"
	"github.com/hupe1980/chunkbits/testutil"
)

func randomVector(rng *testutil.RNG, n int) *Vector {
	v := NewVector(n)
	rng.FillWords(v.words)
	return v
}

func TestNewVectorLen(t *testing.T) {
	tests := []struct {
		bits int
		want int
	}{
		{bits: 0, want: 1},
		{bits: 1, want: 1},
		{bits: 10, want: 1},
		{bits: 511, want: 1},
		{bits: 512, want: 2},
		{bits: 513, want: 2},
		{bits: 1023, want: 2},
		{bits: 1024, want: 3},
		{bits: 100_000, want: 1 + 100_000/512},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("bits=%d", tt.bits), func(t *testing.T) {
			v := NewVector(tt.bits)
			assert.Equal(t, tt.want, v.Len())
			assert.Equal(t, tt.want, ChunksFor(tt.bits))
			assert.Equal(t, tt.bits, v.Bits())
			assert.Equal(t, tt.want*ChunkBits, v.Cap())
		})
	}
}

func TestNewVectorNegative(t *testing.T) {
	assert.PanicsWithError(t, "chunkbits: NewVector: negative bit count: -1", func() {
		NewVector(-1)
	})
}

func TestNewVectorZeroedAndAligned(t *testing.T) {
	v := NewVector(5000)

	assert.True(t, v.IsZero())
	assert.Equal(t, 0, v.Count())
	for i := range v.Len() {
		c := v.Chunk(i)
		require.True(t, mem.IsAligned(unsafe.Pointer(c)), "chunk %d at %p not aligned", i, c)
		for w := range WordsPerChunk {
			assert.Zero(t, c.Word(w))
		}
	}
}

func TestVectorChunkIdentity(t *testing.T) {
	v := NewVector(2048)

	c := v.Chunk(2)
	assert.Same(t, c, v.Chunk(2))

	c.SetWord(3, 0xABCD)
	assert.Equal(t, uint64(0xABCD), v.Chunk(2).Word(3))
	assert.True(t, v.Test(2*ChunkBits+3*WordBits))

	v.Invert()
	assert.Equal(t, ^uint64(0xABCD), c.Word(3), "chunk pointer must track vector mutations")
}

func TestVectorChunkOutOfRange(t *testing.T) {
	v := NewVector(1024)

	assert.PanicsWithError(t, "chunkbits: Vector.Chunk: index out of range: 3 not in [0,3)", func() {
		v.Chunk(v.Len())
	})
	assert.Panics(t, func() { v.Chunk(-1) })
	assert.NotPanics(t, func() { v.Chunk(v.Len() - 1) })
}

func TestVectorInvert(t *testing.T) {
	rng := testutil.NewRNG(4711)

	t.Run("fresh vector becomes all ones", func(t *testing.T) {
		v := NewVector(700)
		v.Invert()
		assert.Equal(t, v.Cap(), v.Count())
	})

	t.Run("double invert is identity", func(t *testing.T) {
		v := randomVector(rng, 3000)
		orig := v.Clone()

		v.Invert()
		assert.False(t, v.Equal(orig))
		v.Invert()
		assert.True(t, v.Equal(orig))
	})

	t.Run("equivalent to xor with all ones", func(t *testing.T) {
		v := randomVector(rng, 3000)
		w := v.Clone()

		ones := NewVector(3000)
		ones.Invert()

		v.Invert()
		w.Xor(ones)
		assert.True(t, v.Equal(w))
	})
}

func TestVectorXor(t *testing.T) {
	rng := testutil.NewRNG(4711)

	t.Run("self xor zeroes", func(t *testing.T) {
		v := randomVector(rng, 5000)
		require.False(t, v.IsZero())

		v.Xor(v)
		assert.True(t, v.IsZero())
		for i := range v.Len() {
			assert.True(t, v.Chunk(i).IsZero())
		}
	})

	t.Run("commutative", func(t *testing.T) {
		a := randomVector(rng, 5000)
		b := randomVector(rng, 5000)
		a2, b2 := a.Clone(), b.Clone()

		a.Xor(b)
		b2.Xor(a2)
		assert.True(t, a.Equal(b2))
	})

	t.Run("chunk by chunk", func(t *testing.T) {
		a := randomVector(rng, 2000)
		b := randomVector(rng, 2000)
		orig := a.Clone()

		a.Xor(b)
		for i := range a.Len() {
			want := *orig.Chunk(i)
			want.XorWith(b.Chunk(i))
			assert.True(t, a.Chunk(i).Equal(&want), "chunk %d", i)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		a := NewVector(10)
		b := NewVector(600)

		assert.PanicsWithError(t, "chunkbits: Vector.Xor: chunk count mismatch: got 2, want 1", func() {
			a.Xor(b)
		})
		assert.True(t, a.IsZero())
	})
}

// Two 10-bit vectors: XOR with the zero vector keeps A, XOR with itself clears it.
func TestVectorXorScenario(t *testing.T) {
	a := NewVector(10)
	b := NewVector(10)
	require.Equal(t, 1, a.Len())
	require.Equal(t, 1, b.Len())

	const pattern = uint64(0b1011_0110_1100_0011)
	a.Chunk(0).SetWord(0, pattern)

	a.Xor(b)
	assert.Equal(t, pattern, a.Chunk(0).Word(0))
	for w := 1; w < WordsPerChunk; w++ {
		assert.Zero(t, a.Chunk(0).Word(w))
	}
	assert.True(t, b.IsZero())

	a.Xor(a)
	assert.True(t, a.IsZero())
	assert.Zero(t, a.Chunk(0).Word(0))
}

func TestVectorBits(t *testing.T) {
	v := NewVector(1000)

	positions := []int{0, 1, 63, 64, 511, 512, 999, v.Cap() - 1}
	for _, p := range positions {
		assert.False(t, v.Test(p))
		v.Set(p)
		assert.True(t, v.Test(p), "bit %d", p)
	}
	assert.Equal(t, len(positions), v.Count())

	assert.Equal(t, uint64(1), v.Chunk(1).Word(0), "bit 512 is bit 0 of chunk 1")

	v.Clear(63)
	assert.False(t, v.Test(63))
	v.Clear(63)
	assert.False(t, v.Test(63))

	v.Flip(2)
	v.Flip(512)
	assert.True(t, v.Test(2))
	assert.False(t, v.Test(512))

	var got []int
	v.ForEach(func(i int) bool {
		got = append(got, i)
		return true
	})
	assert.Equal(t, []int{0, 1, 2, 64, 511, 999, v.Cap() - 1}, got)

	got = got[:0]
	v.ForEach(func(i int) bool {
		got = append(got, i)
		return i < 64
	})
	assert.Equal(t, []int{0, 1, 2, 64}, got)
}

func TestVectorBitsOutOfRange(t *testing.T) {
	v := NewVector(10)

	assert.PanicsWithError(t, "chunkbits: Vector.Set: index out of range: 512 not in [0,512)", func() {
		v.Set(v.Cap())
	})
	assert.Panics(t, func() { v.Test(-1) })
	assert.Panics(t, func() { v.Clear(v.Cap()) })
	assert.Panics(t, func() { v.Flip(v.Cap()) })

	// Padding bits between Bits() and Cap() are addressable.
	assert.NotPanics(t, func() { v.Set(v.Bits()) })
}

func TestVectorCloneEqualReset(t *testing.T) {
	rng := testutil.NewRNG(4711)
	v := randomVector(rng, 1500)

	c := v.Clone()
	assert.True(t, v.Equal(c))
	assert.Equal(t, v.Len(), c.Len())
	assert.Equal(t, v.Bits(), c.Bits())
	assert.True(t, mem.IsAligned(unsafe.Pointer(c.Chunk(0))))
	assert.NotSame(t, v.Chunk(0), c.Chunk(0))

	c.Flip(7)
	assert.False(t, v.Equal(c))

	assert.False(t, v.Equal(NewVector(10)), "different chunk counts are never equal")

	v.Reset()
	assert.True(t, v.IsZero())
	assert.False(t, c.IsZero(), "clone must not share storage")
}

func BenchmarkVectorXor(b *testing.B) {
	for _, n := range []int{512, 64 * 1024, 1 << 20} {
		rng := testutil.NewRNG(42)
		x, y := randomVector(rng, n), randomVector(rng, n)

		b.Run(fmt.Sprintf("bits=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(x.Len() * CacheLineSize))
			for i := 0; i < b.N; i++ {
				x.Xor(y)
			}
		})
	}
}

func BenchmarkVectorInvert(b *testing.B) {
	for _, n := range []int{512, 64 * 1024, 1 << 20} {
		v := randomVector(testutil.NewRNG(42), n)

		b.Run(fmt.Sprintf("bits=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(v.Len() * CacheLineSize))
			for i := 0; i < b.N; i++ {
				v.Invert()
			}
		})
	}
}

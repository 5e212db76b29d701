package chunkbits

import (
	"unsafe"

	"github.com/hupe1980/chunkbits/internal/mem"
	"github.com/hupe1980/chunkbits/internal/wordops"
)

// Vector is a fixed-length sequence of cache-line-aligned chunks covering a
// requested number of logical bits.
//
// Memory layout:
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│  Chunk 0 (64B)  │  Chunk 1 (64B)  │  Chunk 2 (64B)   │ ...          │
//	│  8 × uint64     │  8 × uint64     │  8 × uint64      │              │
//	│  bits [0,511]   │  bits [512,1023]│  bits [1024,1535]│              │
//	└─────────────────────────────────────────────────────────────────────┘
//
// All chunks live in a single 64-byte-aligned allocation, so every chunk
// occupies exactly one cache line. The chunk count is fixed at construction.
//
// A Vector is not safe for concurrent mutation. Callers that split work across
// goroutines must hand each goroutine a disjoint range of chunk indices.
type Vector struct {
	// chunks is the chunk view of the aligned backing array.
	chunks []Chunk

	// words is the flat word view of the same backing array.
	words []uint64

	// bits is the logical bit count requested at construction.
	bits int
}

// ChunksFor returns the number of chunks NewVector allocates for n bits.
//
// The count is 1 + n/ChunkBits, so an exact multiple of ChunkBits gets one
// spare chunk (512 bits -> 2 chunks).
func ChunksFor(n int) int {
	return 1 + n/ChunkBits
}

// NewVector creates a zeroed vector able to hold n logical bits.
// It panics with ErrNegativeSize if n < 0.
func NewVector(n int) *Vector {
	if n < 0 {
		panicNegative("NewVector", n)
	}
	return newVector(ChunksFor(n), n)
}

func newVector(numChunks, n int) *Vector {
	words := mem.AllocAlignedUint64(numChunks * WordsPerChunk)
	chunks := unsafe.Slice((*Chunk)(unsafe.Pointer(&words[0])), numChunks) //nolint:gosec // words is 64-byte aligned and a whole number of chunks

	return &Vector{
		chunks: chunks,
		words:  words,
		bits:   n,
	}
}

// Len returns the number of chunks.
func (v *Vector) Len() int {
	return len(v.chunks)
}

// Bits returns the logical bit count the vector was created for.
func (v *Vector) Bits() int {
	return v.bits
}

// Cap returns the number of addressable bits, Len() * ChunkBits.
func (v *Vector) Cap() int {
	return len(v.chunks) * ChunkBits
}

// Chunk returns a pointer to the chunk at index i. The pointer stays valid
// and refers to the same chunk for the lifetime of v.
// It panics with ErrIndexOutOfRange unless 0 <= i < Len().
func (v *Vector) Chunk(i int) *Chunk {
	checkIndex("Vector.Chunk", i, len(v.chunks))
	return &v.chunks[i]
}

// Xor sets v ^= other chunk by chunk. other may be v itself, which zeroes v.
// It panics with ErrLengthMismatch if the chunk counts differ.
func (v *Vector) Xor(other *Vector) {
	if len(v.chunks) != len(other.chunks) {
		panicLength("Vector.Xor", len(other.chunks), len(v.chunks))
	}
	for i := range v.chunks {
		v.chunks[i].XorWith(&other.chunks[i])
	}
}

// Invert negates every chunk, equivalent to XOR with an all-ones vector.
func (v *Vector) Invert() {
	for i := range v.chunks {
		v.chunks[i].Negate()
	}
}

// Test reports whether bit i is set.
// It panics with ErrIndexOutOfRange unless 0 <= i < Cap().
func (v *Vector) Test(i int) bool {
	checkIndex("Vector.Test", i, v.Cap())
	return v.chunks[i/ChunkBits].test(i % ChunkBits)
}

// Set sets bit i.
// It panics with ErrIndexOutOfRange unless 0 <= i < Cap().
func (v *Vector) Set(i int) {
	checkIndex("Vector.Set", i, v.Cap())
	v.chunks[i/ChunkBits].set(i % ChunkBits)
}

// Clear clears bit i.
// It panics with ErrIndexOutOfRange unless 0 <= i < Cap().
func (v *Vector) Clear(i int) {
	checkIndex("Vector.Clear", i, v.Cap())
	v.chunks[i/ChunkBits].clear(i % ChunkBits)
}

// Flip toggles bit i.
// It panics with ErrIndexOutOfRange unless 0 <= i < Cap().
func (v *Vector) Flip(i int) {
	checkIndex("Vector.Flip", i, v.Cap())
	v.chunks[i/ChunkBits].flip(i % ChunkBits)
}

// Count returns the number of set bits across all chunks, padding included.
func (v *Vector) Count() int {
	return wordops.Popcount(v.words)
}

// IsZero reports whether no bit is set.
func (v *Vector) IsZero() bool {
	return wordops.IsZero(v.words)
}

// Equal reports whether v and other have the same chunk count and bits.
func (v *Vector) Equal(other *Vector) bool {
	return wordops.Equal(v.words, other.words)
}

// Clone returns an independent copy of v with its own aligned storage.
func (v *Vector) Clone() *Vector {
	c := newVector(len(v.chunks), v.bits)
	copy(c.words, v.words)
	return c
}

// Reset clears every bit.
func (v *Vector) Reset() {
	wordops.Zero(v.words)
}

// ForEach calls fn with the position of every set bit in ascending order
// until fn returns false.
func (v *Vector) ForEach(fn func(i int) bool) {
	for ci := range v.chunks {
		base := ci * ChunkBits
		if !v.chunks[ci].forEach(func(b int) bool { return fn(base + b) }) {
			return
		}
	}
}

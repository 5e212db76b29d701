package chunkbits

import (
	"math/bits"
	"unsafe"

	"github.com/hupe1980/chunkbits/internal/mem"
	"github.com/hupe1980/chunkbits/internal/wordops"
)

const (
	// CacheLineSize is the number of bytes in one chunk (one hardware cache line).
	CacheLineSize = 64

	// WordBits is the number of bits per word.
	WordBits = 64

	// WordsPerChunk is the number of uint64 words in one chunk.
	WordsPerChunk = CacheLineSize * 8 / WordBits // 8

	// ChunkBits is the number of bits in one chunk.
	ChunkBits = WordsPerChunk * WordBits // 512
)

// Chunk is one cache line worth of bits: 8 uint64 words, 512 bits, 64 bytes.
//
// Chunks obtained from NewChunk or Vector.Chunk start on a 64-byte boundary.
// A Chunk declared as a plain variable is a valid zero chunk but carries no
// alignment guarantee.
//
// Bit b of the chunk lives in word b/64 at position b%64 (least significant first).
type Chunk struct {
	words [WordsPerChunk]uint64
}

// Compile-time layout checks: a chunk is exactly one cache line.
var (
	_ [unsafe.Sizeof(Chunk{}) - CacheLineSize]struct{}
	_ [CacheLineSize - unsafe.Sizeof(Chunk{})]struct{}
)

// NewChunk returns a zeroed chunk aligned to CacheLineSize.
func NewChunk() *Chunk {
	buf := mem.AllocAlignedUint64(WordsPerChunk)
	return (*Chunk)(unsafe.Pointer(&buf[0])) //nolint:gosec // buf is 64-byte aligned and exactly one chunk long
}

// Negate flips every bit in place.
func (c *Chunk) Negate() {
	wordops.Not(c.words[:])
}

// XorWith sets c ^= other, word by word. other may be c itself.
func (c *Chunk) XorWith(other *Chunk) {
	wordops.Xor(c.words[:], other.words[:])
}

// Word returns the word at index i.
// It panics with ErrIndexOutOfRange unless 0 <= i < WordsPerChunk.
func (c *Chunk) Word(i int) uint64 {
	checkIndex("Chunk.Word", i, WordsPerChunk)
	return c.words[i]
}

// SetWord overwrites the word at index i.
// It panics with ErrIndexOutOfRange unless 0 <= i < WordsPerChunk.
func (c *Chunk) SetWord(i int, w uint64) {
	checkIndex("Chunk.SetWord", i, WordsPerChunk)
	c.words[i] = w
}

// Words returns a copy of the chunk's words.
func (c *Chunk) Words() [WordsPerChunk]uint64 {
	return c.words
}

// Count returns the number of set bits.
func (c *Chunk) Count() int {
	return wordops.Popcount(c.words[:])
}

// IsZero reports whether no bit is set.
func (c *Chunk) IsZero() bool {
	return wordops.IsZero(c.words[:])
}

// Equal reports whether c and other hold the same bits.
func (c *Chunk) Equal(other *Chunk) bool {
	return c.words == other.words
}

// Reset clears every bit.
func (c *Chunk) Reset() {
	wordops.Zero(c.words[:])
}

// bit helpers; b is assumed to be in [0, ChunkBits).

func (c *Chunk) test(b int) bool {
	return c.words[b/WordBits]&(uint64(1)<<(b%WordBits)) != 0
}

func (c *Chunk) set(b int) {
	c.words[b/WordBits] |= uint64(1) << (b % WordBits)
}

func (c *Chunk) clear(b int) {
	c.words[b/WordBits] &^= uint64(1) << (b % WordBits)
}

func (c *Chunk) flip(b int) {
	c.words[b/WordBits] ^= uint64(1) << (b % WordBits)
}

// forEach calls fn with the chunk-relative position of every set bit, in
// ascending order, until fn returns false.
func (c *Chunk) forEach(fn func(b int) bool) bool {
	for w, word := range c.words {
		for word != 0 {
			if !fn(w*WordBits + bits.TrailingZeros64(word)) {
				return false
			}
			word &= word - 1
		}
	}
	return true
}

// Package chunkbits provides a cache-line-aligned bit vector for large binary
// state vectors, such as per-qubit indicator bits in a stabilizer simulation.
//
// # Layout
//
// The unit of storage is the Chunk: 8 uint64 words, 512 bits, exactly one
// 64-byte cache line. A Vector owns a fixed number of chunks in one aligned
// allocation, so chunk i never shares a cache line with chunk i+1 on
// 64-byte-line hardware:
//
//	v := chunkbits.NewVector(1000) // 1 + 1000/512 = 2 chunks
//	v.Len()                        // 2
//	v.Chunk(0).Word(0)             // first 64 bits
//
// The chunk count is 1 + n/ChunkBits. An exact multiple of ChunkBits therefore
// gets one spare chunk: NewVector(512).Len() == 2.
//
// # Operations
//
// Whole-vector operations are applied chunk by chunk:
//
//	a := chunkbits.NewVector(n)
//	b := chunkbits.NewVector(n)
//	a.Set(3)
//	a.Xor(b)    // a ^= b
//	a.Invert()  // a = ^a
//	a.Xor(a)    // zero
//
// # Contract Violations
//
// Out-of-range chunk, word or bit indices, XOR of vectors with different chunk
// counts and negative sizes are programming errors. They panic immediately with
// a *PreconditionError wrapping ErrIndexOutOfRange, ErrLengthMismatch or
// ErrNegativeSize. No operation returns an error.
//
// # Concurrency
//
// Nothing is synchronized. A Vector may be mutated from several goroutines only
// if each goroutine owns a disjoint range of chunk indices; see
// examples/partition.
package chunkbits

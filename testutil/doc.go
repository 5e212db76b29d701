// Package testutil provides testing utilities for chunkbits.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Bit Patterns
//
//	rng := testutil.NewRNG(seed)
//	words := make([]uint64, 8)
//	rng.FillWords(words)            // uniform random words
//	pos := rng.Positions(16, 1024)  // 16 distinct bit positions in [0, 1024)
package testutil

// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte (cache line) aligned allocation for chunk storage, so that
// each 512-bit chunk starts on its own cache line.
package mem

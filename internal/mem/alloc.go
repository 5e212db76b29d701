package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every allocation (one cache line, 64 bytes).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
// It returns nil for size <= 0.
//
// Note: This function allocates up to Alignment-1 extra bytes to find an aligned offset.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment-1)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Cap the slice so appends can never walk into the padding.
	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// AllocAlignedUint64 allocates a zeroed uint64 slice of n words with 64-byte alignment.
// It returns nil for n <= 0.
func AllocAlignedUint64(n int) []uint64 {
	if n <= 0 {
		return nil
	}

	byteSlice := AllocAligned(n * 8)

	// 64-byte alignment implies the 8-byte alignment uint64 needs.
	ptr := unsafe.Pointer(&byteSlice[0])   //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint64)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether p is aligned to Alignment.
func IsAligned(p unsafe.Pointer) bool {
	return uintptr(p)&(Alignment-1) == 0
}

package chunkbits

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// HostCacheLineSize returns the cache line size the Go toolchain assumes for
// the current architecture (64 on amd64 and arm64, 128 on ppc64, 256 on s390x).
func HostCacheLineSize() int {
	return int(unsafe.Sizeof(cpu.CacheLinePad{}))
}

// ChunkFitsCacheLine reports whether one chunk spans exactly one host cache
// line. Chunks are CacheLineSize bytes on every platform; on hosts with wider
// lines several chunks share a line and disjoint chunk ranges handed to
// different goroutines should be rounded to HostCacheLineSize/CacheLineSize.
func ChunkFitsCacheLine() bool {
	return HostCacheLineSize() == CacheLineSize
}

// Package wordops provides bulk bitwise kernels over []uint64 word slices.
//
// All kernels are portable Go with 4-way unrolled loops. A 512-bit chunk is
// exactly two unrolled iterations, so the loops compile to straight-line code
// for the common chunk-sized input.
//
// Binary kernels assume len(dst) == len(src); callers own that invariant.
package wordops

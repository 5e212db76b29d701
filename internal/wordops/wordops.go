package wordops

import "math/bits"

// Xor performs dst[i] ^= src[i] for all words.
// dst and src may be the same slice, in which case dst becomes all zero.
func Xor(dst, src []uint64) {
	_ = src[:len(dst)] // hoist bounds check

	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

// Not performs dst[i] = ^dst[i] for all words.
func Not(dst []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = ^dst[i]
		dst[i+1] = ^dst[i+1]
		dst[i+2] = ^dst[i+2]
		dst[i+3] = ^dst[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = ^dst[i]
	}
}

// Zero clears all words.
func Zero(dst []uint64) {
	for i := range dst {
		dst[i] = 0
	}
}

// Popcount counts all set bits across words.
func Popcount(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

// IsZero reports whether every word is zero.
func IsZero(words []uint64) bool {
	var acc uint64
	i := 0
	for ; i+4 <= len(words); i += 4 {
		acc |= words[i] | words[i+1] | words[i+2] | words[i+3]
	}
	for ; i < len(words); i++ {
		acc |= words[i]
	}
	return acc == 0
}

// Equal reports whether a and b hold the same words.
func Equal(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}

	var diff uint64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		diff |= (a[i] ^ b[i]) | (a[i+1] ^ b[i+1]) | (a[i+2] ^ b[i+2]) | (a[i+3] ^ b[i+3])
	}
	for ; i < len(a); i++ {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

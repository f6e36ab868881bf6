// Package hash provides the seeded MurmurHash2 variants used for sketch row
// indexing.
package hash

import (
	"encoding/binary"
	"hash/maphash"
	"unsafe"
)

// DefaultSeed is the seed used by the sketches unless overridden.
const DefaultSeed = 42

const (
	mixM = 0xc6a4a7935bd1e995
	mixR = 47
)

// Sum64 computes the 64-bit MurmurHash2 (variant 64A) of data with the given
// seed.
func Sum64(data []byte, seed uint64) uint64 {
	h := seed ^ (uint64(len(data)) * mixM)

	for len(data) >= 8 {
		k := binary.LittleEndian.Uint64(data)
		k *= mixM
		k ^= k >> mixR
		k *= mixM
		h ^= k
		h *= mixM
		data = data[8:]
	}

	if len(data) > 0 {
		var tail uint64
		for i := len(data) - 1; i >= 0; i-- {
			tail = tail<<8 | uint64(data[i])
		}
		h ^= tail
		h *= mixM
	}

	h ^= h >> mixR
	h *= mixM
	h ^= h >> mixR
	return h
}

// Sum64String computes Sum64 over the bytes of s without allocating.
func Sum64String(s string, seed uint64) uint64 {
	if len(s) == 0 {
		return Sum64(nil, seed)
	}
	return Sum64(unsafe.Slice(unsafe.StringData(s), len(s)), seed)
}

// Uint64 hashes the 8 little-endian bytes of v. Equivalent to Sum64 on the
// byte representation, specialized to avoid the slice round trip.
func Uint64(v uint64, seed uint64) uint64 {
	eight := uint64(8)
	h := seed ^ (eight * mixM)

	k := v
	k *= mixM
	k ^= k >> mixR
	k *= mixM
	h ^= k
	h *= mixM

	h ^= h >> mixR
	h *= mixM
	h ^= h >> mixR
	return h
}

// Uint32 hashes the 4 little-endian bytes of v.
func Uint32(v uint32, seed uint64) uint64 {
	four := uint64(4)
	h := seed ^ (four * mixM)

	h ^= uint64(v)
	h *= mixM

	h ^= h >> mixR
	h *= mixM
	h ^= h >> mixR
	return h
}

// ForKey returns a hash function for keys of type K using the given seed.
// Integer keys hash by their little-endian byte representation and strings by
// their bytes. Other comparable types fall back to hash/maphash, which ignores
// seed; each call draws a fresh maphash seed, so the returned function is
// stable but two functions from separate calls disagree.
func ForKey[K comparable](seed uint64) func(K) uint64 {
	var zero K
	switch any(zero).(type) {
	case string:
		return func(k K) uint64 { return Sum64String(any(k).(string), seed) }
	case int:
		return func(k K) uint64 { return Uint64(uint64(any(k).(int)), seed) }
	case int64:
		return func(k K) uint64 { return Uint64(uint64(any(k).(int64)), seed) }
	case uint64:
		return func(k K) uint64 { return Uint64(any(k).(uint64), seed) }
	case uint:
		return func(k K) uint64 { return Uint64(uint64(any(k).(uint)), seed) }
	case uintptr:
		return func(k K) uint64 { return Uint64(uint64(any(k).(uintptr)), seed) }
	case int32:
		return func(k K) uint64 { return Uint32(uint32(any(k).(int32)), seed) }
	case uint32:
		return func(k K) uint64 { return Uint32(any(k).(uint32), seed) }
	case int16:
		return func(k K) uint64 { return Uint32(uint32(uint16(any(k).(int16))), seed) }
	case uint16:
		return func(k K) uint64 { return Uint32(uint32(any(k).(uint16)), seed) }
	case int8:
		return func(k K) uint64 { return Uint32(uint32(uint8(any(k).(int8))), seed) }
	case uint8:
		return func(k K) uint64 { return Uint32(uint32(any(k).(uint8)), seed) }
	default:
		mseed := maphash.MakeSeed()
		return func(k K) uint64 { return maphash.Comparable(mseed, k) }
	}
}

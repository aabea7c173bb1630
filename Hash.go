package structures

import (
	"golang.org/x/exp/constraints"
	"math/bits"
	"unsafe"
)

// FNV-1a parameters for the platform's word size.
const (
	fnvPrime  = 1099511628211*(bits.UintSize/64) + 16777619*(1-bits.UintSize/64)
	fnvOffset = 14695981039346656037*(bits.UintSize/64) + 2166136261*(1-bits.UintSize/64)
)

// Mix is Robert Jenkins' integer mix. It's a quick way to build hash policies
// for small integer keys whose values cluster.
func Mix(a uint) uint {
	a = (a + 0x7ed55d16) + (a << 12)
	a = (a ^ 0xc761c23c) ^ (a >> 19)
	a = (a + 0x165667b1) + (a << 5)
	a = (a + 0xd3a2646c) ^ (a << 9)
	a = (a + 0xfd7046c5) + (a << 3)
	a = (a ^ 0xb55a4f09) ^ (a >> 16)
	return a
}

// FNV hashes bs with the FNV-1a function.
func FNV(bs []byte) uint {
	h := uint(fnvOffset)
	for _, b := range bs {
		h ^= uint(b)
		h *= fnvPrime
	}
	return h
}

// FNVString hashes s with the FNV-1a function, without converting it to a
// byte slice.
func FNVString(s string) uint {
	h := uint(fnvOffset)
	for i := 0; i < len(s); i++ {
		h ^= uint(s[i])
		h *= fnvPrime
	}
	return h
}

// FNVOf hashes the memory contents of v with the FNV-1a function.
func FNVOf[T constraints.Integer](v T) uint {
	return FNV(unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
}

// FNVCombine cascades two hashes into one. Use it for keys that hash in
// parts:
//
//	h := FNVCombine(FNVString("foo"), FNVString("bar"))
func FNVCombine(h0, h1 uint) uint {
	for i := 0; i < bits.UintSize/8; i++ {
		h0 ^= uint(byte(h1 >> (i * 8)))
		h0 *= fnvPrime
	}
	return h0
}

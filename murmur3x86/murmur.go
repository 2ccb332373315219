// Package murmur3x86 implements the 128-bit x86 variant of MurmurHash3
// as a pure one-shot hash over a byte slice.
//
// This is a distinct algorithm from the x64 128-bit variant: it mixes
// four 32-bit lanes instead of two 64-bit ones and produces different
// digests for the same input. The Go murmur3 modules only implement the
// x86_32 and x64_128 variants, so this port carries the missing one,
// following the reference MurmurHash3.cpp.
package murmur3x86

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1 = 0x239b961b
	c2 = 0xab0e9789
	c3 = 0x38b34ae5
	c4 = 0xa1e38b93
)

func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Sum128 returns the MurmurHash3_x86_128 digest of data, as the low and
// high halves of the 128-bit value the reference writes out as four
// little-endian 32-bit words.
func Sum128(data []byte, seed uint32) (lo, hi uint64) {
	h1, h2, h3, h4 := seed, seed, seed, seed

	p := data
	for len(p) >= 16 {
		k1 := binary.LittleEndian.Uint32(p[0:4])
		k2 := binary.LittleEndian.Uint32(p[4:8])
		k3 := binary.LittleEndian.Uint32(p[8:12])
		k4 := binary.LittleEndian.Uint32(p[12:16])
		p = p[16:]

		k1 *= c1
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2
		h1 ^= k1
		h1 = bits.RotateLeft32(h1, 19)
		h1 += h2
		h1 = h1*5 + 0x561ccd1b

		k2 *= c2
		k2 = bits.RotateLeft32(k2, 16)
		k2 *= c3
		h2 ^= k2
		h2 = bits.RotateLeft32(h2, 17)
		h2 += h3
		h2 = h2*5 + 0x0bcaa747

		k3 *= c3
		k3 = bits.RotateLeft32(k3, 17)
		k3 *= c4
		h3 ^= k3
		h3 = bits.RotateLeft32(h3, 15)
		h3 += h4
		h3 = h3*5 + 0x96cd1c35

		k4 *= c4
		k4 = bits.RotateLeft32(k4, 18)
		k4 *= c1
		h4 ^= k4
		h4 = bits.RotateLeft32(h4, 13)
		h4 += h1
		h4 = h4*5 + 0x32ac3b17
	}

	var k1, k2, k3, k4 uint32
	switch len(p) {
	case 15:
		k4 ^= uint32(p[14]) << 16
		fallthrough
	case 14:
		k4 ^= uint32(p[13]) << 8
		fallthrough
	case 13:
		k4 ^= uint32(p[12])
		k4 *= c4
		k4 = bits.RotateLeft32(k4, 18)
		k4 *= c1
		h4 ^= k4
		fallthrough
	case 12:
		k3 ^= uint32(p[11]) << 24
		fallthrough
	case 11:
		k3 ^= uint32(p[10]) << 16
		fallthrough
	case 10:
		k3 ^= uint32(p[9]) << 8
		fallthrough
	case 9:
		k3 ^= uint32(p[8])
		k3 *= c3
		k3 = bits.RotateLeft32(k3, 17)
		k3 *= c4
		h3 ^= k3
		fallthrough
	case 8:
		k2 ^= uint32(p[7]) << 24
		fallthrough
	case 7:
		k2 ^= uint32(p[6]) << 16
		fallthrough
	case 6:
		k2 ^= uint32(p[5]) << 8
		fallthrough
	case 5:
		k2 ^= uint32(p[4])
		k2 *= c2
		k2 = bits.RotateLeft32(k2, 16)
		k2 *= c3
		h2 ^= k2
		fallthrough
	case 4:
		k1 ^= uint32(p[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint32(p[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(p[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(p[0])
		k1 *= c1
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2
		h1 ^= k1
	}

	n := uint32(len(data))
	h1 ^= n
	h2 ^= n
	h3 ^= n
	h4 ^= n

	h1 += h2 + h3 + h4
	h2 += h1
	h3 += h1
	h4 += h1

	h1 = fmix32(h1)
	h2 = fmix32(h2)
	h3 = fmix32(h3)
	h4 = fmix32(h4)

	h1 += h2 + h3 + h4
	h2 += h1
	h3 += h1
	h4 += h1

	return uint64(h1) | uint64(h2)<<32, uint64(h3) | uint64(h4)<<32
}

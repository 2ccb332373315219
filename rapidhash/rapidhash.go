// Package rapidhash implements the rapidhash algorithm, the wyhash
// successor, as a pure one-shot 64-bit hash over a byte slice.
//
// The port follows version 3 of the reference C implementation
// (rapidhash.h, protected multiplication disabled, the default
// compile-time configuration). The unseeded entry point applies a zero
// seed.
package rapidhash

import (
	"encoding/binary"
	"math/bits"
)

const (
	secret0 = 0x2d358dccaa6c78a5
	secret1 = 0x8bb84b93962eacc9
	secret2 = 0x4b33a62ed433d4a3
	secret3 = 0x4d5a2da51de1aa47
	secret4 = 0xa0761d6478bd642f
	secret5 = 0xe7037ed1a0b428db
	secret6 = 0x90ed1765281c388c
	secret7 = 0xaaaaaaaaaaaaaaaa
)

func mum(a, b uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return lo ^ hi
}

func read64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func read32(b []byte) uint64 {
	return uint64(binary.LittleEndian.Uint32(b))
}

// readSmall reads 1 to 3 bytes, spreading the first, middle and last byte
// across the word the way the reference does.
func readSmall(b []byte) uint64 {
	n := len(b)
	return uint64(b[0])<<56 | uint64(b[n>>1])<<32 | uint64(b[n-1])
}

// Sum64 returns the rapidhash digest of data with a zero seed.
func Sum64(data []byte) uint64 {
	return Sum64Seed(data, 0)
}

// Sum64Seed returns the rapidhash digest of data with the given seed.
func Sum64Seed(data []byte, seed uint64) uint64 {
	n := len(data)
	seed ^= mix(seed^secret2, secret1)

	var a, b uint64
	if n <= 16 {
		switch {
		case n >= 8:
			seed ^= uint64(n)
			a = read64(data)
			b = read64(data[n-8:])
		case n >= 4:
			seed ^= uint64(n)
			a = read32(data)
			b = read32(data[n-4:])
		case n > 0:
			a = readSmall(data)
		}
	} else {
		i := n
		p := data
		if i > 112 {
			see1, see2 := seed, seed
			see3, see4 := seed, seed
			see5, see6 := seed, seed
			for i > 112 {
				seed = mix(read64(p)^secret0, read64(p[8:])^seed)
				see1 = mix(read64(p[16:])^secret1, read64(p[24:])^see1)
				see2 = mix(read64(p[32:])^secret2, read64(p[40:])^see2)
				see3 = mix(read64(p[48:])^secret3, read64(p[56:])^see3)
				see4 = mix(read64(p[64:])^secret4, read64(p[72:])^see4)
				see5 = mix(read64(p[80:])^secret5, read64(p[88:])^see5)
				see6 = mix(read64(p[96:])^secret6, read64(p[104:])^see6)
				p = p[112:]
				i -= 112
			}
			seed ^= see1
			see2 ^= see3
			see4 ^= see5
			seed ^= see6
			see2 ^= see4
			seed ^= see2
		}
		if i > 16 {
			seed = mix(read64(p)^secret2, read64(p[8:])^seed^secret1)
			if i > 32 {
				seed = mix(read64(p[16:])^secret2, read64(p[24:])^seed)
				if i > 48 {
					seed = mix(read64(p[32:])^secret1, read64(p[40:])^seed)
					if i > 64 {
						seed = mix(read64(p[48:])^secret1, read64(p[56:])^seed)
						if i > 80 {
							seed = mix(read64(p[64:])^secret2, read64(p[72:])^seed)
							if i > 96 {
								seed = mix(read64(p[80:])^secret1, read64(p[88:])^seed)
							}
						}
					}
				}
			}
		}
		// The reference reads the final two words relative to the end of
		// the input, which may overlap bytes already consumed above.
		a = read64(data[n-16:])
		b = read64(data[n-8:])
	}

	a ^= secret1
	b ^= seed
	a, b = mum(a, b)
	return mix(a^secret7, b^secret1^uint64(n))
}

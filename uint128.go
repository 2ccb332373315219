package hashfuncs

import (
	"encoding/binary"
	"math/big"
)

// 128-bit values are represented as 16 bytes holding the low 64 bits
// first, then the high 64 bits, each in little-endian byte order. This is
// the layout of a native 128-bit integer on little-endian hosts, so
// 128-bit digest columns can themselves be hashed with reproducible
// results there; cross-platform byte-order normalization is a non-goal.

// MakeUint128 packs the two 64-bit halves of a 128-bit value, low bits
// occupying the numerically lower half.
func MakeUint128(lo, hi uint64) [16]byte {
	v := [16]byte{}
	binary.LittleEndian.PutUint64(v[:8], lo)
	binary.LittleEndian.PutUint64(v[8:], hi)
	return v
}

// Uint128Lo returns the low 64 bits of v.
func Uint128Lo(v [16]byte) uint64 { return binary.LittleEndian.Uint64(v[:8]) }

// Uint128Hi returns the high 64 bits of v.
func Uint128Hi(v [16]byte) uint64 { return binary.LittleEndian.Uint64(v[8:]) }

// Uint128Int converts v to a big.Int representation.
func Uint128Int(v [16]byte) *big.Int {
	z := new(big.Int).SetUint64(Uint128Hi(v))
	z.Lsh(z, 64)
	return z.Or(z, new(big.Int).SetUint64(Uint128Lo(v)))
}

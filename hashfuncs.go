// Package hashfuncs computes non-cryptographic digests over batches of
// columnar, heterogeneously-typed data.
//
// Each supported algorithm is described by an immutable descriptor fixing
// its output width, its seed width, and its two collaborator entry points
// (seeded and unseeded). The evaluation engine applies an algorithm to an
// input column row by row, resolving dictionary/selection indirection,
// propagating nulls without hashing invalid rows, and extracting for each
// value the byte span mandated by its type: the raw native-width bit
// pattern for fixed-width types, the exact payload bytes for
// variable-length types. Digests are over raw representations, not
// canonicalized values, so equal numbers of different widths hash
// differently and results are sensitive to host byte order.
package hashfuncs

import (
	oneofone "github.com/OneOfOne/xxhash"
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	"github.com/segmentio/hashfuncs/murmur3x86"
	"github.com/segmentio/hashfuncs/rapidhash"
)

// Algorithm identifies one of the supported hash algorithm families.
type Algorithm int32

const (
	XXH32 Algorithm = iota
	XXH64
	XXH3_64
	XXH3_128
	RapidHash
	MurmurHash3_32
	MurmurHash3_128
	MurmurHash3_X64_128
	numAlgorithms
)

func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return "INVALID"
	}
	return algorithms[a].name
}

// Output returns the kind of the digests produced by the algorithm.
func (a Algorithm) Output() Kind { return algorithms[a].output }

// Seed returns the kind a seed column for the algorithm must have.
func (a Algorithm) Seed() Kind { return algorithms[a].seed }

type digest interface{ uint32 | uint64 | [16]byte }

// hashFuncs holds the two entry points of one algorithm collaborator.
// The seed is passed widened to 64 bits; entry points of algorithms with
// 32-bit seeds truncate it back to the width it was read at.
type hashFuncs[D digest] struct {
	unseeded func(b []byte) D
	seeded   func(b []byte, seed uint64) D
}

type algorithm struct {
	name   string
	output Kind
	seed   Kind
	sum32  hashFuncs[uint32]
	sum64  hashFuncs[uint64]
	sum128 hashFuncs[[16]byte]
}

// The algorithm descriptor table, constructed once and never mutated, so
// concurrent evaluations read it without locking. Every family defines
// its unseeded entry point as the seeded one applied to a zero seed.
var algorithms = [numAlgorithms]algorithm{
	XXH32: {
		name:   "xxh32",
		output: Uint32,
		seed:   Uint32,
		sum32: hashFuncs[uint32]{
			unseeded: oneofone.Checksum32,
			seeded:   func(b []byte, seed uint64) uint32 { return oneofone.Checksum32S(b, uint32(seed)) },
		},
	},
	XXH64: {
		name:   "xxh64",
		output: Uint64,
		seed:   Uint64,
		sum64: hashFuncs[uint64]{
			unseeded: xxhash.Sum64,
			seeded:   oneofone.Checksum64S,
		},
	},
	XXH3_64: {
		name:   "xxh3_64",
		output: Uint64,
		seed:   Uint64,
		sum64: hashFuncs[uint64]{
			unseeded: xxh3.Hash,
			seeded:   xxh3.HashSeed,
		},
	},
	XXH3_128: {
		name:   "xxh3_128",
		output: Uint128,
		seed:   Uint64,
		sum128: hashFuncs[[16]byte]{
			unseeded: func(b []byte) [16]byte {
				h := xxh3.Hash128(b)
				return MakeUint128(h.Lo, h.Hi)
			},
			seeded: func(b []byte, seed uint64) [16]byte {
				h := xxh3.Hash128Seed(b, seed)
				return MakeUint128(h.Lo, h.Hi)
			},
		},
	},
	RapidHash: {
		name:   "rapidhash",
		output: Uint64,
		seed:   Uint64,
		sum64: hashFuncs[uint64]{
			unseeded: rapidhash.Sum64,
			seeded:   rapidhash.Sum64Seed,
		},
	},
	MurmurHash3_32: {
		name:   "murmurhash3_32",
		output: Uint32,
		seed:   Uint32,
		sum32: hashFuncs[uint32]{
			unseeded: murmur3.Sum32,
			seeded:   func(b []byte, seed uint64) uint32 { return murmur3.Sum32WithSeed(b, uint32(seed)) },
		},
	},
	MurmurHash3_128: {
		name:   "murmurhash3_128",
		output: Uint128,
		seed:   Uint32,
		sum128: hashFuncs[[16]byte]{
			unseeded: func(b []byte) [16]byte {
				lo, hi := murmur3x86.Sum128(b, 0)
				return MakeUint128(lo, hi)
			},
			seeded: func(b []byte, seed uint64) [16]byte {
				lo, hi := murmur3x86.Sum128(b, uint32(seed))
				return MakeUint128(lo, hi)
			},
		},
	},
	MurmurHash3_X64_128: {
		name:   "murmurhash3_x64_128",
		output: Uint128,
		seed:   Uint32,
		sum128: hashFuncs[[16]byte]{
			unseeded: func(b []byte) [16]byte {
				lo, hi := murmur3.Sum128(b)
				return MakeUint128(lo, hi)
			},
			seeded: func(b []byte, seed uint64) [16]byte {
				lo, hi := murmur3.Sum128WithSeed(b, uint32(seed))
				return MakeUint128(lo, hi)
			},
		},
	},
}

package hashfuncs

import (
	"errors"
	"fmt"

	"github.com/segmentio/hashfuncs/internal/debug"
	"github.com/segmentio/hashfuncs/internal/unsafecast"
)

// ErrUnsupportedType is returned by Evaluate when the input column's kind
// has no byte-span rule in the type registry. It is raised once per
// column, before any row is processed, and aborts the evaluation with no
// partial output.
var ErrUnsupportedType = errors.New("unsupported input type")

// Evaluate applies the hash algorithm to the input column and returns the
// output column, with one digest per valid logical row. When a seed
// column is given, each row is hashed with the seed resolved at that row;
// its kind must be the algorithm's seed kind, which the registration
// boundary guarantees for functions bound through a Registry.
//
// An output row is null if the input row is null, or a seed column is
// present and its row is null; no hashing work is performed for such
// rows. Every call is a pure function of its inputs and evaluations may
// run concurrently.
func Evaluate(alg Algorithm, input, seed *Vector) (*Vector, error) {
	if alg < 0 || alg >= numAlgorithms {
		return nil, fmt.Errorf("invalid hash algorithm: %d", int32(alg))
	}
	info := &algorithms[alg]
	if input.Len() == 0 {
		// Degenerate batch: a constant output carrying no values, decided
		// before the type registry is even consulted.
		out := NewVector(info.output, 0)
		out.constant = true
		return out, nil
	}
	if !input.kind.hashable() {
		debug.Format("hashfuncs: aborting %s: no byte-span rule for %s", info.name, input.kind)
		return nil, fmt.Errorf("%w for %s: %s", ErrUnsupportedType, info.name, input.kind)
	}
	if seed != nil && seed.kind != info.seed {
		return nil, fmt.Errorf("seed column of %s must be %s, not %s", info.name, info.seed, seed.kind)
	}
	switch info.output {
	case Uint32:
		return evaluate(info, info.sum32, input, seed), nil
	case Uint64:
		return evaluate(info, info.sum64, input, seed), nil
	default:
		return evaluate(info, info.sum128, input, seed), nil
	}
}

func evaluate[D digest](info *algorithm, fn hashFuncs[D], input, seed *Vector) *Vector {
	numRows := input.Len()

	// The output is always dense: digests land at physical row i no
	// matter how the input rows were resolved.
	out := NewVector(info.output, numRows)
	results := unsafecast.BytesToSlice[D](out.data)

	if seed != nil {
		hashSeededRows(fn, input, seed, out, results)
	} else {
		hashRows(fn, input, out, results)
	}

	if numRows == 1 {
		out.constant = true
	}
	return out
}

func hashRows[D digest](fn hashFuncs[D], input, out *Vector, results []D) {
	span := input.spanOf()
	for i := range results {
		slot := input.slotOf(i)
		if !input.validity.IsValid(slot) {
			out.SetNull(i)
			continue
		}
		results[i] = fn.unseeded(span(slot))
	}
}

func hashSeededRows[D digest](fn hashFuncs[D], input, seed, out *Vector, results []D) {
	span := input.spanOf()
	seedAt := seed.seedOf()
	for i := range results {
		slot := input.slotOf(i)
		seedSlot := seed.slotOf(i)
		if !input.validity.IsValid(slot) || !seed.validity.IsValid(seedSlot) {
			out.SetNull(i)
			continue
		}
		results[i] = fn.seeded(span(slot), seedAt(seedSlot))
	}
}

// spanOf returns the byte-span extraction rule for the vector's kind:
// fixed-width kinds expose the raw bit pattern of the value at its native
// width, variable-length kinds expose the payload at its exact length.
// The rule is resolved once per column, before the row loop.
func (v *Vector) spanOf() func(slot int) []byte {
	if v.kind.Variable() {
		values := v.values
		return func(slot int) []byte { return values[slot] }
	}
	size := v.kind.Size()
	data := v.data
	return func(slot int) []byte { return data[slot*size : (slot+1)*size] }
}

// seedOf returns the seed read for the vector, a native read at the
// vector's width widened to 64 bits.
func (v *Vector) seedOf() func(slot int) uint64 {
	if v.kind.Size() == 4 {
		seeds := unsafecast.BytesToSlice[uint32](v.data)
		return func(slot int) uint64 { return uint64(seeds[slot]) }
	}
	seeds := unsafecast.BytesToSlice[uint64](v.data)
	return func(slot int) uint64 { return seeds[slot] }
}

package hashfuncs

import (
	"github.com/segmentio/hashfuncs/internal/unsafecast"
)

// Vector is one batch's worth of values for a single logical field: a
// kind, a dense physical buffer of typed values, a validity bitmap, and
// an optional indirection map translating logical rows to physical slots
// so a buffer can be shared across more rows than it physically stores.
//
// Vectors are created for one evaluation, consumed read-only by the
// dispatcher, and do not persist across calls.
type Vector struct {
	kind   Kind
	length int
	// Fixed-width kinds pack their values in data at the kind's size;
	// variable-length kinds hold one payload per physical slot in values.
	data   []byte
	values [][]byte
	// Optional map from logical row to physical slot; when nil, logical
	// row i maps to physical slot i.
	index    []int32
	validity Bitmap
	// A constant vector stores a single physical value standing for all
	// logical rows.
	constant bool
}

// NewVector constructs a flat vector of the given kind with storage for
// length dense values, all valid.
func NewVector(kind Kind, length int) *Vector {
	v := &Vector{kind: kind, length: length}
	if kind.Variable() {
		v.values = make([][]byte, length)
	} else {
		v.data = make([]byte, length*kind.Size())
	}
	return v
}

func makeFixedVector[T unsafecast.Type](kind Kind, values []T) *Vector {
	return &Vector{
		kind:   kind,
		length: len(values),
		data:   unsafecast.SliceToBytes(values),
	}
}

func MakeBooleanVector(values []bool) *Vector { return makeFixedVector(Boolean, values) }

func MakeInt8Vector(values []int8) *Vector { return makeFixedVector(Int8, values) }

func MakeInt16Vector(values []int16) *Vector { return makeFixedVector(Int16, values) }

func MakeInt32Vector(values []int32) *Vector { return makeFixedVector(Int32, values) }

func MakeInt64Vector(values []int64) *Vector { return makeFixedVector(Int64, values) }

func MakeInt128Vector(values [][16]byte) *Vector { return makeFixedVector(Int128, values) }

func MakeUint8Vector(values []uint8) *Vector { return makeFixedVector(Uint8, values) }

func MakeUint16Vector(values []uint16) *Vector { return makeFixedVector(Uint16, values) }

func MakeUint32Vector(values []uint32) *Vector { return makeFixedVector(Uint32, values) }

func MakeUint64Vector(values []uint64) *Vector { return makeFixedVector(Uint64, values) }

func MakeUint128Vector(values [][16]byte) *Vector { return makeFixedVector(Uint128, values) }

func MakeFloat32Vector(values []float32) *Vector { return makeFixedVector(Float32, values) }

func MakeFloat64Vector(values []float64) *Vector { return makeFixedVector(Float64, values) }

// MakeDateVector constructs a DATE vector from 32-bit days-since-epoch
// encodings.
func MakeDateVector(values []int32) *Vector { return makeFixedVector(Date, values) }

// MakeTimeVector constructs a TIME vector from 64-bit time-of-day
// encodings.
func MakeTimeVector(values []int64) *Vector { return makeFixedVector(Time, values) }

func MakeTimestampVector(values []int64) *Vector { return makeFixedVector(Timestamp, values) }

func MakeStringVector(values []string) *Vector {
	payloads := make([][]byte, len(values))
	for i, s := range values {
		payloads[i] = unsafecast.StringToBytes(s)
	}
	return &Vector{kind: String, length: len(values), values: payloads}
}

func MakeBinaryVector(values [][]byte) *Vector {
	return &Vector{kind: Binary, length: len(values), values: values}
}

// Kind returns the logical type tag of the vector.
func (v *Vector) Kind() Kind { return v.kind }

// Len returns the number of logical rows.
func (v *Vector) Len() int { return v.length }

// Const returns true if a single physical value stands for all logical
// rows of the vector.
func (v *Vector) Const() bool { return v.constant }

// SetIndex installs an indirection map on the vector; the logical length
// becomes the length of the map, and logical row i resolves to physical
// slot index[i].
func (v *Vector) SetIndex(index []int32) {
	v.index = index
	v.length = len(index)
}

// SetNull marks physical slot i as holding no value.
func (v *Vector) SetNull(i int) {
	if v.validity == nil {
		v.validity = makeBitmap(v.numSlots())
	}
	v.validity.setInvalid(i)
}

// IsNull returns true if logical row i resolves to an invalid slot.
func (v *Vector) IsNull(i int) bool {
	return !v.validity.IsValid(v.slotOf(i))
}

func (v *Vector) numSlots() int {
	if v.kind.Variable() {
		return len(v.values)
	}
	if size := v.kind.Size(); size > 0 {
		return len(v.data) / size
	}
	return 0
}

func (v *Vector) slotOf(i int) int {
	switch {
	case v.constant:
		return 0
	case v.index != nil:
		return int(v.index[i])
	default:
		return i
	}
}

// Broadcast returns a constant view of the first physical value of v,
// standing for length logical rows. The returned vector shares the
// physical buffer of v.
func (v *Vector) Broadcast(length int) *Vector {
	return &Vector{
		kind:     v.kind,
		length:   length,
		data:     v.data,
		values:   v.values,
		validity: v.validity,
		constant: true,
	}
}

// Uint32Index returns the value at logical row i of a UINT32-sized
// vector.
func (v *Vector) Uint32Index(i int) uint32 {
	return unsafecast.BytesToSlice[uint32](v.data)[v.slotOf(i)]
}

// Uint64Index returns the value at logical row i of a UINT64-sized
// vector.
func (v *Vector) Uint64Index(i int) uint64 {
	return unsafecast.BytesToSlice[uint64](v.data)[v.slotOf(i)]
}

// Uint128Index returns the value at logical row i of a 128-bit vector.
func (v *Vector) Uint128Index(i int) [16]byte {
	return unsafecast.BytesToSlice[[16]byte](v.data)[v.slotOf(i)]
}

// BytesIndex returns the payload at logical row i of a variable-length
// vector.
func (v *Vector) BytesIndex(i int) []byte {
	return v.values[v.slotOf(i)]
}

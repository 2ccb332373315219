package hashfuncs

// Kind is the tag identifying the logical type of the values held by a
// vector. The physical representation of each kind is fixed: fixed-width
// kinds store their values packed at their native width and byte order,
// variable-length kinds store one byte payload per physical slot.
type Kind int32

const (
	Boolean Kind = iota
	Int8
	Int16
	Int32
	Int64
	Int128
	Uint8
	Uint16
	Uint32
	Uint64
	Uint128
	Float32
	Float64
	Date
	Time
	Timestamp
	String
	Binary
	numKinds
)

// Any is a pseudo-kind used in function signatures to declare that an
// argument accepts a value of any kind which has a byte-span rule.
const Any Kind = -1

type typeInfo struct {
	name string
	// Payload size in bytes for fixed-width kinds, 0 for variable-length
	// kinds.
	size int32
	// Whether the kind has a byte-span rule; kinds without one are
	// representable in vectors but cannot be hashed.
	span bool
}

// The type registry. Fixed-width kinds hash the in-memory bit pattern of
// the value at its native width; variable-length kinds hash the payload
// bytes at their exact length, with no length prefix or terminator.
// Boolean and Timestamp carry no span rule and fail dispatch.
var types = [numKinds]typeInfo{
	Boolean:   {name: "BOOLEAN", size: 1},
	Int8:      {name: "INT8", size: 1, span: true},
	Int16:     {name: "INT16", size: 2, span: true},
	Int32:     {name: "INT32", size: 4, span: true},
	Int64:     {name: "INT64", size: 8, span: true},
	Int128:    {name: "INT128", size: 16, span: true},
	Uint8:     {name: "UINT8", size: 1, span: true},
	Uint16:    {name: "UINT16", size: 2, span: true},
	Uint32:    {name: "UINT32", size: 4, span: true},
	Uint64:    {name: "UINT64", size: 8, span: true},
	Uint128:   {name: "UINT128", size: 16, span: true},
	Float32:   {name: "FLOAT", size: 4, span: true},
	Float64:   {name: "DOUBLE", size: 8, span: true},
	Date:      {name: "DATE", size: 4, span: true},
	Time:      {name: "TIME", size: 8, span: true},
	Timestamp: {name: "TIMESTAMP", size: 8},
	String:    {name: "STRING", span: true},
	Binary:    {name: "BINARY", span: true},
}

func (k Kind) String() string {
	if k == Any {
		return "ANY"
	}
	if k < 0 || k >= numKinds {
		return "INVALID"
	}
	return types[k].name
}

// Size returns the payload size of the kind in bytes, or zero for
// variable-length kinds.
func (k Kind) Size() int {
	if k < 0 || k >= numKinds {
		return 0
	}
	return int(types[k].size)
}

// Variable returns true for kinds storing one byte payload per value
// instead of a packed fixed-width buffer.
func (k Kind) Variable() bool {
	return k == String || k == Binary
}

func (k Kind) hashable() bool {
	return k >= 0 && k < numKinds && types[k].span
}

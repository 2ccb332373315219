package hashfuncs_test

import (
	"bytes"
	"testing"

	"github.com/segmentio/hashfuncs"
)

func TestKinds(t *testing.T) {
	for _, tt := range []struct {
		kind     hashfuncs.Kind
		name     string
		size     int
		variable bool
	}{
		{hashfuncs.Boolean, "BOOLEAN", 1, false},
		{hashfuncs.Int8, "INT8", 1, false},
		{hashfuncs.Int16, "INT16", 2, false},
		{hashfuncs.Int32, "INT32", 4, false},
		{hashfuncs.Int64, "INT64", 8, false},
		{hashfuncs.Int128, "INT128", 16, false},
		{hashfuncs.Uint8, "UINT8", 1, false},
		{hashfuncs.Uint16, "UINT16", 2, false},
		{hashfuncs.Uint32, "UINT32", 4, false},
		{hashfuncs.Uint64, "UINT64", 8, false},
		{hashfuncs.Uint128, "UINT128", 16, false},
		{hashfuncs.Float32, "FLOAT", 4, false},
		{hashfuncs.Float64, "DOUBLE", 8, false},
		{hashfuncs.Date, "DATE", 4, false},
		{hashfuncs.Time, "TIME", 8, false},
		{hashfuncs.Timestamp, "TIMESTAMP", 8, false},
		{hashfuncs.String, "STRING", 0, true},
		{hashfuncs.Binary, "BINARY", 0, true},
		{hashfuncs.Any, "ANY", 0, false},
	} {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("name of kind %d: want=%s got=%s", tt.kind, tt.name, got)
		}
		if got := tt.kind.Size(); got != tt.size {
			t.Errorf("size of %s: want=%d got=%d", tt.name, tt.size, got)
		}
		if got := tt.kind.Variable(); got != tt.variable {
			t.Errorf("variable flag of %s: want=%t got=%t", tt.name, tt.variable, got)
		}
	}
}

func TestVectorAccessors(t *testing.T) {
	v := hashfuncs.MakeUint64Vector([]uint64{10, 20, 30})
	if v.Kind() != hashfuncs.Uint64 {
		t.Errorf("kind: want=%s got=%s", hashfuncs.Uint64, v.Kind())
	}
	if v.Len() != 3 {
		t.Errorf("length: want=3 got=%d", v.Len())
	}
	if v.Const() {
		t.Error("flat vector reports being constant")
	}
	for i, want := range []uint64{10, 20, 30} {
		if got := v.Uint64Index(i); got != want {
			t.Errorf("value of row %d: want=%d got=%d", i, want, got)
		}
	}

	s := hashfuncs.MakeStringVector([]string{"ab", "cd"})
	if got := s.BytesIndex(1); !bytes.Equal(got, []byte("cd")) {
		t.Errorf("payload of row 1: want=%q got=%q", "cd", got)
	}
}

func TestVectorIndex(t *testing.T) {
	v := hashfuncs.MakeUint32Vector([]uint32{100, 200})
	v.SetIndex([]int32{1, 1, 0, 1})
	if v.Len() != 4 {
		t.Errorf("length after SetIndex: want=4 got=%d", v.Len())
	}
	for i, want := range []uint32{200, 200, 100, 200} {
		if got := v.Uint32Index(i); got != want {
			t.Errorf("value of logical row %d: want=%d got=%d", i, want, got)
		}
	}
}

func TestVectorNulls(t *testing.T) {
	v := hashfuncs.MakeUint32Vector([]uint32{100, 200})
	v.SetNull(0)
	v.SetIndex([]int32{1, 0, 0, 1})
	for i, want := range []bool{false, true, true, false} {
		if got := v.IsNull(i); got != want {
			t.Errorf("null flag of logical row %d: want=%t got=%t", i, want, got)
		}
	}
}

func TestVectorBroadcast(t *testing.T) {
	v := hashfuncs.MakeUint64Vector([]uint64{42, 43}).Broadcast(3)
	if !v.Const() {
		t.Error("broadcast vector does not report being constant")
	}
	if v.Len() != 3 {
		t.Errorf("length: want=3 got=%d", v.Len())
	}
	for i := 0; i < 3; i++ {
		if got := v.Uint64Index(i); got != 42 {
			t.Errorf("value of logical row %d: want=42 got=%d", i, got)
		}
	}
}

func TestMakeBatchLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("creating a batch from columns of different lengths did not panic")
		}
	}()
	hashfuncs.MakeBatch(
		hashfuncs.MakeUint64Vector([]uint64{1, 2}),
		hashfuncs.MakeUint64Vector([]uint64{1}),
	)
}

func TestUint128(t *testing.T) {
	v := hashfuncs.MakeUint128(0xd4b3a2f1e8c97766, 0x0123456789abcdef)
	if got := hashfuncs.Uint128Lo(v); got != 0xd4b3a2f1e8c97766 {
		t.Errorf("low half: want=%#x got=%#x", uint64(0xd4b3a2f1e8c97766), got)
	}
	if got := hashfuncs.Uint128Hi(v); got != 0x0123456789abcdef {
		t.Errorf("high half: want=%#x got=%#x", uint64(0x0123456789abcdef), got)
	}
	if got, want := hashfuncs.Uint128Int(hashfuncs.MakeUint128(1, 1)).String(), "18446744073709551617"; got != want {
		t.Errorf("integer value: want=%s got=%s", want, got)
	}
}

// Package unsafecast exposes helpers to reinterpret slices of fixed-width
// values as slices of other fixed-width types sharing the same backing
// array, which the hot paths of the package use to avoid copying column
// buffers.
package unsafecast

import "unsafe"

type Uint128 = [16]byte

type Type interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~Uint128
}

func Slice[To, From Type](data []From) []To {
	var zf From
	var zt To
	return unsafe.Slice(*(**To)(unsafe.Pointer(&data)), (uintptr(len(data))*unsafe.Sizeof(zf))/unsafe.Sizeof(zt))
}

func SliceToBytes[T Type](data []T) []byte {
	return Slice[byte](data)
}

func BytesToSlice[T Type](data []byte) []T {
	return Slice[T](data)
}

// StringToBytes returns a byte slice sharing the memory of s; the returned
// slice must not be written to.
func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

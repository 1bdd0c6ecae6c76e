// Command libpolyline is the c-shared build target exposing the
// polyline codec over a C ABI:
//
//	go build -buildmode=c-shared -o libpolyline.so ./cmd/libpolyline
//
// The exported functions are thin shims over the boundary package;
// no marshaling logic lives here.
package main

// #include "libpolyline.h"
import "C"

import (
	"unsafe"

	"github.com/flatroute/polyline-ffi/boundary"
)

// decode_polyline_ffi converts NUL-terminated polyline text into an
// array of (x, y) coordinate pairs. precision must be 5 (Google) or 6
// (OSRM, Valhalla). On failure the returned array has a null data
// pointer and zero length. The caller must pass the result to
// drop_float_array exactly once.
//
//export decode_polyline_ffi
func decode_polyline_ffi(pl *C.char, precision C.uint32_t) C.coordinate_array_t {
	arr := boundary.Decode(unsafe.Pointer(pl), uint32(precision))
	return C.coordinate_array_t{
		data: (*C.double)(arr.Data),
		len:  C.size_t(arr.Len),
	}
}

// encode_coordinates_ffi converts an array of (x, y) coordinate pairs
// into NUL-terminated polyline text. The input buffer remains owned by
// the caller. On failure the result is null. The caller must pass a
// non-null result to drop_cstring exactly once.
//
//export encode_coordinates_ffi
func encode_coordinates_ffi(coords C.coordinate_array_t, precision C.uint32_t) *C.char {
	arr := boundary.CoordArray{
		Data: unsafe.Pointer(coords.data),
		Len:  uintptr(coords.len),
	}
	return (*C.char)(boundary.Encode(arr, uint32(precision)))
}

// drop_float_array frees an array previously returned by
// decode_polyline_ffi. Dropping the null sentinel is a safe no-op.
//
//export drop_float_array
func drop_float_array(coords C.coordinate_array_t) {
	boundary.FreeCoordArray(boundary.CoordArray{
		Data: unsafe.Pointer(coords.data),
		Len:  uintptr(coords.len),
	})
}

// drop_cstring frees polyline text previously returned by
// encode_coordinates_ffi. Dropping null is a safe no-op.
//
//export drop_cstring
func drop_cstring(p *C.char) {
	boundary.FreeCString(unsafe.Pointer(p))
}

func main() {}

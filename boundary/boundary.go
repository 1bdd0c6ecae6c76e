package boundary

import (
	"unicode/utf8"
	"unsafe"

	"go.uber.org/zap"

	polylineffi "github.com/flatroute/polyline-ffi"
)

// Decode reads NUL-terminated polyline text and returns a
// library-owned CoordArray of (x, y) pairs. Any failure (nil text,
// invalid UTF-8, malformed polyline, unsupported precision) returns
// the zero sentinel. The caller owns the result and must release it
// with FreeCoordArray.
func Decode(text unsafe.Pointer, precision uint32) CoordArray {
	return DecodeWith(cAlloc, text, precision)
}

// DecodeWith is Decode with an explicit allocator.
func DecodeWith(alloc Allocator, text unsafe.Pointer, precision uint32) CoordArray {
	if text == nil {
		return CoordArray{}
	}
	s := goString(text)
	if !utf8.ValidString(s) {
		polylineffi.Logger().Debug("boundary decode rejected",
			zap.String("reason", "invalid utf-8"))
		return CoordArray{}
	}
	coords, err := polylineffi.DecodeCoords(s, precision)
	if err != nil {
		polylineffi.Logger().Debug("boundary decode rejected", zap.Error(err))
		return CoordArray{}
	}
	return copyOutPairs(alloc, coords)
}

// Encode converts a caller-owned CoordArray of (x, y) pairs into
// NUL-terminated polyline text allocated by the library. The input
// buffer is borrowed read-only for the duration of the call. Failure
// (non-finite or out-of-range coordinates, unsupported precision)
// returns nil. The caller owns the result and must release it with
// FreeCString.
func Encode(coords CoordArray, precision uint32) unsafe.Pointer {
	return EncodeWith(cAlloc, coords, precision)
}

// EncodeWith is Encode with an explicit allocator.
func EncodeWith(alloc Allocator, coords CoordArray, precision uint32) unsafe.Pointer {
	if coords.Data == nil && coords.Len > 0 {
		return nil
	}
	s, err := polylineffi.EncodeCoords(borrowPairs(coords), precision)
	if err != nil {
		polylineffi.Logger().Debug("boundary encode rejected", zap.Error(err))
		return nil
	}
	return newCString(alloc, s)
}

// FreeCoordArray releases a CoordArray previously returned by Decode.
// The zero sentinel is a safe no-op. Passing any other array not
// produced by this library, or the same array twice, is undefined
// behavior.
func FreeCoordArray(a CoordArray) {
	FreeCoordArrayWith(cAlloc, a)
}

// FreeCoordArrayWith is FreeCoordArray with an explicit allocator.
func FreeCoordArrayWith(alloc Allocator, a CoordArray) {
	if a.Data == nil {
		return
	}
	alloc.Free(a.Data)
}

// FreeCString releases polyline text previously returned by Encode.
// A nil pointer is a safe no-op.
func FreeCString(p unsafe.Pointer) {
	FreeCStringWith(cAlloc, p)
}

// FreeCStringWith is FreeCString with an explicit allocator.
func FreeCStringWith(alloc Allocator, p unsafe.Pointer) {
	if p == nil {
		return
	}
	alloc.Free(p)
}

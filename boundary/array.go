package boundary

import (
	"unsafe"
)

const pairSize = 2 * unsafe.Sizeof(float64(0))

// CoordArray is the foreign-visible view over a buffer of contiguous
// (x, y) double pairs. Data points at Len pairs, i.e. 2*Len doubles.
//
// The zero value (nil data, zero length) doubles as the failure
// sentinel returned by Decode and as the empty coordinate sequence.
type CoordArray struct {
	Data unsafe.Pointer
	Len  uintptr
}

// IsSentinel reports whether the array is the nil/zero sentinel.
func (a CoordArray) IsSentinel() bool {
	return a.Data == nil
}

// borrowPairs views a caller-owned buffer as coordinate pairs without
// copying. The returned slices alias the foreign buffer and must not
// outlive the boundary call. Len is trusted per the boundary contract.
func borrowPairs(a CoordArray) [][]float64 {
	if a.Data == nil || a.Len == 0 {
		return nil
	}
	flat := unsafe.Slice((*float64)(a.Data), 2*a.Len)
	pairs := make([][]float64, a.Len)
	for i := range pairs {
		pairs[i] = flat[2*i : 2*i+2 : 2*i+2]
	}
	return pairs
}

// copyOutPairs allocates a library-owned buffer, copies coords into it
// and returns the handle. Ownership of the buffer transfers to the
// caller of the boundary function. An empty sequence yields the zero
// handle, which FreeCoordArray accepts as a no-op.
func copyOutPairs(alloc Allocator, coords [][]float64) CoordArray {
	if len(coords) == 0 {
		return CoordArray{}
	}
	p := alloc.Alloc(uintptr(len(coords)) * pairSize)
	flat := unsafe.Slice((*float64)(p), 2*len(coords))
	for i, c := range coords {
		flat[2*i] = c[0]
		flat[2*i+1] = c[1]
	}
	return CoordArray{Data: p, Len: uintptr(len(coords))}
}

// goString copies a NUL-terminated foreign buffer into a Go string.
// The read is bounded by the first NUL byte; the caller guarantees
// termination since no length is supplied.
func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// newCString allocates a NUL-terminated copy of s with the library
// allocator. Ownership transfers to the caller.
func newCString(alloc Allocator, s string) unsafe.Pointer {
	p := alloc.Alloc(uintptr(len(s)) + 1)
	b := unsafe.Slice((*byte)(p), len(s)+1)
	copy(b, s)
	b[len(s)] = 0
	return p
}

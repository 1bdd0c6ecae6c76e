// Package boundary implements the C boundary marshaling layer: raw
// pointer conversion between foreign coordinate buffers and Go
// coordinate sequences, and ownership management for memory that
// crosses the boundary.
//
// All unsafe pointer handling in the library is confined to this
// package. Values cross the boundary in two shapes:
//
//	CoordArray   {data, len} view over contiguous (x, y) double pairs
//	C string     NUL-terminated byte buffer holding polyline text
//
// # Ownership
//
// Input buffers are borrowed read-only for the duration of a call and
// remain owned by the caller. Output buffers are allocated with the
// library's own allocator (C malloc) and ownership transfers to the
// caller, who must release them with exactly one matching call to
// FreeCoordArray or FreeCString. Releasing the zero-value sentinel is
// a safe no-op. Passing a pointer this library did not allocate, or
// releasing the same buffer twice, is undefined behavior.
//
// # Errors
//
// The boundary has no exception ABI. Failures inside a call (malformed
// text, non-finite coordinates, unsupported precision) are reported as
// sentinel return values: the zero CoordArray from Decode, a nil
// pointer from Encode. Callers must test for the sentinel before use.
//
// Caller-supplied lengths are trusted as-is; an invalid pointer or a
// length that overstates the buffer is a contract violation and not
// detected.
package boundary

// Package errors provides structured error types for the polyline-ffi
// library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). These errors are internal to the Go side: the C
// boundary has no exception ABI, so the boundary package converts them
// to sentinel return values before they become visible to a foreign
// caller.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.InvalidPrecision(errors.PhaseEncode, 7)
//	err := errors.OutOfRange(errors.PhaseEncode, 3, "latitude", 91.2, 90)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors

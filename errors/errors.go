package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // coordinates to polyline text
	PhaseDecode   Phase = "decode"   // polyline text to coordinates
	PhaseValidate Phase = "validate" // input validation
	PhaseBoundary Phase = "boundary" // C boundary marshaling
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidPrecision Kind = "invalid_precision"
	KindNonFinite        Kind = "non_finite"
	KindOutOfRange       Kind = "out_of_range"
	KindInvalidData      Kind = "invalid_data"
	KindInvalidUTF8      Kind = "invalid_utf8"
	KindAllocation       Kind = "allocation"
	KindNilPointer       Kind = "nil_pointer"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// InvalidPrecision creates an error for a precision value outside the
// accepted set
func InvalidPrecision(phase Phase, got uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidPrecision,
		Detail: fmt.Sprintf("precision %d not supported, expected 5 or 6", got),
		Value:  got,
	}
}

// NonFinite creates an error for a NaN or infinite coordinate value
func NonFinite(phase Phase, index int, x, y float64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNonFinite,
		Detail: fmt.Sprintf("coordinate pair %d (%v, %v) is not finite", index, x, y),
		Value:  index,
	}
}

// OutOfRange creates an error for a coordinate outside its valid range
func OutOfRange(phase Phase, index int, axis string, value, limit float64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("%s %v at pair %d outside ±%v", axis, value, index, limit),
		Value:  value,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: fmt.Sprintf("nil %s pointer", what),
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Package polylineffi exposes polyline encoding and decoding to foreign
// callers through a C-compatible boundary.
//
// The polyline format is a compact text encoding of coordinate sequences
// (Google Polyline Algorithm Format). The codec itself is provided by
// github.com/twpayne/go-polyline; this library's job is the boundary:
// marshaling coordinate buffers and NUL-terminated strings across a C ABI,
// and managing ownership of memory that crosses it.
//
// # Architecture Overview
//
// The library is organized into a small set of packages with distinct
// responsibilities:
//
//	polylineffi/        Root package: codec wrapper with validation
//	├── boundary/       Raw-pointer marshaling and the C allocator
//	├── errors/         Structured error types
//	└── cmd/
//	    ├── libpolyline/  c-shared export shim (the C ABI surface)
//	    └── polyline/     Inspector CLI and interactive TUI
//
// # Coordinate Order
//
// Coordinate pairs are (x, y), i.e. (longitude, latitude). The polyline
// wire format is latitude-first; the conversion happens inside this
// package. Pay attention to the order of the coordinates you pass in;
// most polyline documentation assumes the opposite convention.
//
// # Quick Start
//
//	s, err := polylineffi.EncodeCoords([][]float64{{-120.2, 38.5}}, 5)
//	coords, err := polylineffi.DecodeCoords(s, 5)
//
// # The C Boundary
//
// Foreign callers link against the c-shared build of cmd/libpolyline and
// call decode_polyline_ffi, encode_coordinates_ffi, drop_float_array and
// drop_cstring. Every buffer returned by an allocating function must be
// passed back to its matching drop function exactly once; see the
// boundary package for the ownership contract.
package polylineffi

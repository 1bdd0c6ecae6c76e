package boundary

// #include <stdlib.h>
import "C"

import (
	"unsafe"
)

// Allocator allocates memory that can be handed across the C boundary
// and released from either side. Implementations must not return
// Go-managed memory.
type Allocator interface {
	// Alloc returns a pointer to size bytes. Allocation failure is
	// fatal: there is no recovery path once a buffer has been promised
	// to a foreign caller.
	Alloc(size uintptr) unsafe.Pointer

	// Free releases a pointer previously returned by Alloc. Free of a
	// nil pointer is a no-op.
	Free(p unsafe.Pointer)
}

// CAllocator allocates with the C runtime's malloc and free, the
// library allocator referred to by the boundary ownership contract.
type CAllocator struct{}

func (CAllocator) Alloc(size uintptr) unsafe.Pointer {
	if size == 0 {
		// malloc(0) may legally return nil, which would be
		// indistinguishable from the failure sentinel.
		size = 1
	}
	// cgo's C.malloc aborts the process on failure, so the result is
	// always non-nil.
	return C.malloc(C.size_t(size))
}

func (CAllocator) Free(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// cAlloc is the allocator used by the package-level boundary functions.
var cAlloc Allocator = CAllocator{}

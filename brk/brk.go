package brk

import (
	"unsafe"
)

//go:generate mockgen -destination mocks/break.go github.com/Pipe930/memheap/brk Break

// Break abstracts the operating-system primitive that extends a process's
// managed address space, in the manner of sbrk(2). Implementations hand out
// contiguous regions at a monotonically advancing soft break and never take
// them back: once a span has been granted it belongs to the caller for the
// life of the provider.
//
// Consumers must treat a failed request as final- the provider will not
// succeed on an identical retry.
type Break interface {
	// RequestSpace advances the soft break by span bytes and returns a pointer
	// to the start of the newly granted region. The region's contents are
	// unspecified. It returns an error wrapping memutils.OutOfMemoryError when
	// the underlying reservation cannot cover the request.
	RequestSpace(span int) (unsafe.Pointer, error)
}

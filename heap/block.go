package heap

import (
	"unsafe"

	"github.com/Pipe930/memheap/memutils"
)

// blockHeader is the metadata view written at the front of every block in the
// arena. The payload region begins immediately after the header, so a user
// pointer can be stepped back one header width to recover its block. The
// successor link is stored as a raw address rather than a Go pointer because
// header memory lives inside the arena reservation, which the Break provider
// keeps alive for the life of the heap.
type blockHeader struct {
	capacity int
	free     bool
	next     uintptr
}

// headerSize is the reserved span of every header, rounded up so that payload
// regions stay word-aligned.
var headerSize = memutils.AlignWord(int(unsafe.Sizeof(blockHeader{})))

// HeaderSize returns the per-block metadata overhead in bytes.
func HeaderSize() int {
	return headerSize
}

func (b *blockHeader) addr() uintptr {
	return uintptr(unsafe.Pointer(b))
}

func (b *blockHeader) payload() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(b), headerSize)
}

func (b *blockHeader) nextBlock() *blockHeader {
	if b.next == 0 {
		return nil
	}
	return (*blockHeader)(unsafe.Pointer(b.next))
}

func (b *blockHeader) setNext(next *blockHeader) {
	if next == nil {
		b.next = 0
		return
	}
	b.next = uintptr(unsafe.Pointer(next))
}

func blockForPayload(ptr unsafe.Pointer) *blockHeader {
	return (*blockHeader)(unsafe.Add(ptr, -headerSize))
}

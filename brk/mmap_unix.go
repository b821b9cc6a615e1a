//go:build unix

package brk

import (
	"unsafe"

	"github.com/Pipe930/memheap/memutils"
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// MmapBreak is a Break implementation whose reservation is an anonymous
// private mapping obtained from the operating system. Pages are committed
// lazily by the kernel as the soft break advances through them, so large
// reservations cost only address space until they are actually used.
type MmapBreak struct {
	mapping []byte
	brk     int
}

var _ Break = &MmapBreak{}

// NewMmapBreak maps capacity bytes of anonymous memory. The mapping is
// page-aligned, which satisfies the word alignment the heap requires.
func NewMmapBreak(capacity int) (*MmapBreak, error) {
	if capacity <= 0 {
		capacity = DefaultReservation
	}

	mapping, err := unix.Mmap(-1, 0, capacity,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, errors.Wrapf(memutils.OutOfMemoryError, "mmap of %d bytes failed: %s", capacity, err)
	}

	return &MmapBreak{mapping: mapping}, nil
}

func (b *MmapBreak) RequestSpace(span int) (unsafe.Pointer, error) {
	if span <= 0 {
		return nil, errors.Wrapf(memutils.InvalidSizeError, "requested span is %d", span)
	}

	if b.brk+span > len(b.mapping) {
		return nil, errors.Wrapf(memutils.OutOfMemoryError,
			"soft break at %d of a %d-byte mapping, %d more bytes requested",
			b.brk, len(b.mapping), span)
	}

	region := unsafe.Pointer(&b.mapping[b.brk])
	b.brk += span
	return region, nil
}

// BreakOffset returns the number of mapped bytes granted so far.
func (b *MmapBreak) BreakOffset() int {
	return b.brk
}

// Close unmaps the reservation. The provider and every block handed out from
// it are invalid afterward.
func (b *MmapBreak) Close() error {
	mapping := b.mapping
	b.mapping = nil
	b.brk = 0
	return unix.Munmap(mapping)
}

package brk

import (
	"unsafe"

	"github.com/Pipe930/memheap/memutils"
	"github.com/cockroachdb/errors"
)

// DefaultReservation is the reservation size used by NewArenaBreak when the
// caller passes a non-positive capacity.
const DefaultReservation = 64 << 20

// ArenaBreak is a Break implementation backed by a byte region reserved
// in-process up front. The soft break advances through the reservation and
// requests fail once it is exhausted, which makes small ArenaBreak instances
// a convenient stand-in for a full process heap in tests.
type ArenaBreak struct {
	arena []byte
	brk   int
}

var _ Break = &ArenaBreak{}

// NewArenaBreak reserves capacity bytes and positions the soft break at the
// first word-aligned byte of the reservation.
func NewArenaBreak(capacity int) *ArenaBreak {
	if capacity <= 0 {
		capacity = DefaultReservation
	}
	// Leave room to align the base up to a word boundary.
	arena := make([]byte, capacity+memutils.WordSize)

	base := uintptr(unsafe.Pointer(&arena[0]))
	word := uintptr(memutils.WordSize)
	aligned := (base + word - 1) &^ (word - 1)

	return &ArenaBreak{
		arena: arena,
		brk:   int(aligned - base),
	}
}

func (b *ArenaBreak) RequestSpace(span int) (unsafe.Pointer, error) {
	if span <= 0 {
		return nil, errors.Wrapf(memutils.InvalidSizeError, "requested span is %d", span)
	}

	if b.brk+span > len(b.arena) {
		return nil, errors.Wrapf(memutils.OutOfMemoryError,
			"soft break at %d of a %d-byte reservation, %d more bytes requested",
			b.brk, len(b.arena), span)
	}

	region := unsafe.Pointer(&b.arena[b.brk])
	b.brk += span
	return region, nil
}

// BreakOffset returns the number of reservation bytes granted so far.
func (b *ArenaBreak) BreakOffset() int {
	return b.brk
}

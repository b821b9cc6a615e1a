package heap

import (
	"context"
	"unsafe"

	"github.com/Pipe930/memheap/brk"
	"github.com/Pipe930/memheap/memutils"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// Heap is a dynamic memory allocator managing a single contiguous arena. It
// reserves payload regions with Malloc, Calloc and Realloc, recycles them
// with Free, and asks its brk.Break source for more address space only when
// no existing free block can satisfy a request. Address space obtained from
// the break source is never returned; released capacity is recycled
// internally.
//
// A Heap is an explicit context value: independent instances manage
// independent arenas, and a fresh instance over a fresh break source is a
// fully reset allocator. It is not safe for concurrent use- callers on
// multiple goroutines would race on the block chain.
type Heap struct {
	breakSource brk.Break
	logger      *slog.Logger

	head *blockHeader
}

// New creates a Heap over the provided break source. The heap requests no
// space until the first allocation. A nil logger falls back to slog.Default.
func New(breakSource brk.Break, logger *slog.Logger) *Heap {
	if logger == nil {
		logger = slog.Default()
	}

	return &Heap{
		breakSource: breakSource,
		logger:      logger,
	}
}

// alignedPayloadSpan is the payload byte count actually reserved for a
// request: the requested size plus the debug margin, rounded up to the native
// word size. The total footprint of a grown block is this plus headerSize.
func alignedPayloadSpan(size int) int {
	return memutils.AlignWord(size + memutils.DebugMargin)
}

// Malloc reserves size bytes and returns a pointer to the start of the
// writable payload region, or nil when size is not positive or the break
// source cannot extend the arena. The region's contents are unspecified.
//
// The returned pointer is a view into the arena. It stays valid until it is
// passed to Free, or until a Realloc moves the allocation.
func (h *Heap) Malloc(size int) unsafe.Pointer {
	block, err := h.allocateBlock(size)
	if err != nil {
		h.logger.LogAttrs(context.Background(), slog.LevelDebug, "allocation failed",
			slog.Int("size", size),
			slog.Any("error", err))
		return nil
	}

	payload := block.payload()
	memutils.WriteMagicValue(payload, block.capacity-memutils.DebugMargin)
	memutils.DebugValidate(h)

	return payload
}

func (h *Heap) allocateBlock(size int) (*blockHeader, error) {
	if size <= 0 {
		return nil, errors.Wrapf(memutils.InvalidSizeError, "requested size is %d", size)
	}

	payloadSpan := alignedPayloadSpan(size)

	if h.head == nil {
		block, err := h.growBlock(headerSize + payloadSpan)
		if err != nil {
			return nil, err
		}

		h.head = block
		return block, nil
	}

	block := h.findFirstFit(payloadSpan)
	if block == nil {
		grown, err := h.growBlock(headerSize + payloadSpan)
		if err != nil {
			return nil, err
		}

		h.appendBlock(grown)
		return grown, nil
	}

	block.free = false
	h.splitBlock(block, payloadSpan)
	return block, nil
}

// growBlock asks the break source for span fresh bytes and formats them as a
// new tail block holding the entire grant.
func (h *Heap) growBlock(span int) (*blockHeader, error) {
	region, err := h.breakSource.RequestSpace(span)
	if err != nil {
		return nil, err
	}

	block := (*blockHeader)(region)
	block.capacity = span - headerSize
	block.free = false
	block.next = 0

	h.logger.LogAttrs(context.Background(), slog.LevelDebug, "extended the managed arena",
		slog.Int("span", span),
		slog.Int("capacity", block.capacity))

	return block, nil
}

// Free releases a payload region previously returned by Malloc, Calloc or
// Realloc, marking its block free and coalescing it with any adjacent free
// neighbors. Free(nil) is a safe no-op. Passing a pointer that did not come
// from this heap, or passing the same pointer twice, is undefined behavior.
func (h *Heap) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	block := blockForPayload(ptr)
	if memutils.DebugMargin > 0 && !memutils.ValidateMagicValue(ptr, block.capacity-memutils.DebugMargin) {
		panic("memory corruption detected past the end of a payload region")
	}

	block.free = true

	// Forward first, so the backward step finds the already-enlarged block
	// and a freed block between two free neighbors collapses in one call.
	h.mergeForward(block)
	h.mergeBackward(block)

	memutils.DebugValidate(h)
}

// Realloc resizes a payload region. A nil ptr behaves as Malloc(size) and
// size zero behaves as Free(ptr), returning nil. When the existing block
// already has the capacity the same pointer is returned unchanged; otherwise
// the contents are copied into a fresh allocation and the old region is
// released. On allocation failure the old block is left intact and the
// caller's pointer remains valid.
func (h *Heap) Realloc(ptr unsafe.Pointer, size int) unsafe.Pointer {
	if ptr == nil {
		return h.Malloc(size)
	}

	if size == 0 {
		h.Free(ptr)
		return nil
	}

	if size < 0 {
		h.logger.LogAttrs(context.Background(), slog.LevelDebug, "resize failed",
			slog.Int("size", size),
			slog.Any("error", memutils.InvalidSizeError))
		return nil
	}

	block := blockForPayload(ptr)
	usable := block.capacity - memutils.DebugMargin
	if usable >= size {
		return ptr
	}

	newPtr := h.Malloc(size)
	if newPtr == nil {
		return nil
	}

	copySize := usable
	if size < copySize {
		copySize = size
	}
	copy(unsafe.Slice((*byte)(newPtr), copySize), unsafe.Slice((*byte)(ptr), copySize))

	h.Free(ptr)
	return newPtr
}

// Calloc reserves room for count elements of size bytes each and zero-fills
// the whole span before returning it. It returns nil when the element counts
// are negative, when count*size overflows, or when the underlying allocation
// fails.
func (h *Heap) Calloc(count int, size int) unsafe.Pointer {
	if count < 0 || size < 0 {
		h.logger.LogAttrs(context.Background(), slog.LevelDebug, "zeroed allocation failed",
			slog.Int("count", count),
			slog.Int("size", size),
			slog.Any("error", memutils.InvalidSizeError))
		return nil
	}

	total := count * size
	if count != 0 && total/count != size {
		h.logger.LogAttrs(context.Background(), slog.LevelDebug, "zeroed allocation failed",
			slog.Int("count", count),
			slog.Int("size", size),
			slog.Any("error", memutils.SizeOverflowError))
		return nil
	}

	ptr := h.Malloc(total)
	if ptr == nil {
		return nil
	}

	span := unsafe.Slice((*byte)(ptr), total)
	for i := range span {
		span[i] = 0
	}

	return ptr
}

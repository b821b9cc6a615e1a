package heap

import (
	"github.com/Pipe930/memheap/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
)

// Stats walks the block chain and reports how the arena's payload bytes are
// currently divided between live and free blocks. It never mutates the chain.
func (h *Heap) Stats() memutils.Statistics {
	var stats memutils.Statistics
	stats.Clear()

	for block := h.head; block != nil; block = block.nextBlock() {
		if block.free {
			stats.AddFreeBlock(block.capacity)
		} else {
			stats.AddUsedBlock(block.capacity)
		}
	}

	return stats
}

// VisitAllBlocks calls the provided callback once per block in address order,
// with the block's offset from the arena head, its payload capacity and its
// free state. Visiting stops at the first error, which is returned.
func (h *Heap) VisitAllBlocks(handleBlock func(offset int, capacity int, free bool) error) error {
	if h.head == nil {
		return nil
	}

	base := h.head.addr()
	for block := h.head; block != nil; block = block.nextBlock() {
		err := handleBlock(int(block.addr()-base), block.capacity, block.free)
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate performs internal consistency checks on the block chain. When the
// allocator is functioning correctly it cannot return an error, but it helps
// diagnose corruption of chain links or capacities.
func (h *Heap) Validate() error {
	if h.head == nil {
		return nil
	}

	if h.head.addr()%uintptr(memutils.WordSize) != 0 {
		return errors.Errorf("the chain head at %#x is not word-aligned", h.head.addr())
	}

	index := 0
	for block := h.head; block != nil; block = block.nextBlock() {
		if block.capacity <= 0 {
			return errors.Errorf("block %d has a non-positive capacity %d", index, block.capacity)
		}

		if block.capacity%memutils.WordSize != 0 {
			return errors.Errorf("block %d has an unaligned capacity %d", index, block.capacity)
		}

		next := block.nextBlock()
		if next != nil {
			if next.addr() <= block.addr() {
				return errors.Errorf("block %d at %#x does not follow its predecessor at %#x in address order", index+1, next.addr(), block.addr())
			}

			contiguous := block.addr() + uintptr(headerSize) + uintptr(block.capacity)
			if next.addr() != contiguous {
				return errors.Errorf("block %d at %#x is not contiguous with its predecessor- expected %#x", index+1, next.addr(), contiguous)
			}
		}

		index++
	}

	return nil
}

// BlockJsonData populates a json object with the chain's statistics and a
// per-block breakdown, for diagnostic dumps.
func (h *Heap) BlockJsonData(json jwriter.ObjectState) {
	stats := h.Stats()
	stats.StatsJsonData(json)

	arrayState := json.Name("BlockChain").Array()
	defer arrayState.End()

	_ = h.VisitAllBlocks(func(offset, capacity int, free bool) error {
		obj := arrayState.Object()
		defer obj.End()

		obj.Name("Offset").Int(offset)
		obj.Name("Capacity").Int(capacity)
		obj.Name("Free").Bool(free)
		return nil
	})
}

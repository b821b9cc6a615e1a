package heap

import "unsafe"

// findFirstFit returns the first free block in address order whose capacity
// can hold minCapacity bytes, or nil when no block qualifies. The policy is
// strictly first-fit: the scan always starts at the chain head and takes the
// first match, never the best one.
func (h *Heap) findFirstFit(minCapacity int) *blockHeader {
	for block := h.head; block != nil; block = block.nextBlock() {
		if block.free && block.capacity >= minCapacity {
			return block
		}
	}

	return nil
}

// appendBlock links a freshly grown block behind the current chain tail.
func (h *Heap) appendBlock(block *blockHeader) {
	tail := h.head
	for tail.nextBlock() != nil {
		tail = tail.nextBlock()
	}

	tail.setNext(block)
}

// splitBlock carves the slack of an oversized block into a new free block
// spliced in behind it, shrinking the original to payloadSpan bytes. When the
// slack cannot host another header the block is left whole and the extra
// bytes ride along as internal fragmentation.
func (h *Heap) splitBlock(block *blockHeader, payloadSpan int) {
	if block.capacity <= payloadSpan+headerSize {
		return
	}

	remainder := (*blockHeader)(unsafe.Add(block.payload(), payloadSpan))
	remainder.capacity = block.capacity - payloadSpan - headerSize
	remainder.free = true
	remainder.next = block.next

	block.capacity = payloadSpan
	block.setNext(remainder)
}

// mergeForward absorbs the whole run of free successors into block, leaving a
// single block spanning the run. Each absorbed block contributes its payload
// capacity plus the header bytes reclaimed when it leaves the chain.
func (h *Heap) mergeForward(block *blockHeader) {
	for next := block.nextBlock(); next != nil && next.free; next = block.nextBlock() {
		block.capacity += headerSize + next.capacity
		block.next = next.next
	}
}

// mergeBackward absorbs block into its predecessor when that predecessor is
// free. One step suffices to restore full coalescing: the predecessor has
// already swallowed any free run in front of it during its own release.
func (h *Heap) mergeBackward(block *blockHeader) {
	for prev := h.head; prev != nil; prev = prev.nextBlock() {
		if prev.nextBlock() != block {
			continue
		}

		if prev.free {
			prev.capacity += headerSize + block.capacity
			prev.next = block.next
		}
		return
	}
}

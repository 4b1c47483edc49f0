package heap

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/heapkit/internal/osmem"
)

// extendSegment moves the program break up by size+headerSize bytes and
// builds an in-use header at the old break. The caller links the header into
// the list; until then the region is live but unreachable, which is harmless
// because no other goroutine holds a pointer into it.
func (h *Heap) extendSegment(size uintptr) (*header, error) {
	h.memMu.Lock()
	base, err := osmem.Sbrk(size + headerSize)
	h.memMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("extend segment by %d bytes: %w: %v", size+headerSize, ErrOutOfMemory, err)
	}

	hdr := (*header)(base)
	hdr.size = size
	hdr.next = nil
	hdr.free = false
	return hdr, nil
}

// bootstrap creates the very first block. Exactly one caller installs head;
// a caller that loses the install race still owns the block it extended the
// segment for and links it at the tail instead. head is never reset once set.
func (h *Heap) bootstrap(size uintptr) (*header, error) {
	hdr, err := h.extendSegment(size)
	if err != nil {
		return nil, err
	}

	h.listMu.Lock()
	if h.head == nil {
		h.head = hdr
	} else {
		h.appendLocked(h.head, hdr)
	}
	h.stats.SegmentGrows++
	h.listMu.Unlock()
	return hdr, nil
}

// growSegment serves a small request with a freshly extended data-segment
// block appended at the tail of the list.
func (h *Heap) growSegment(size uintptr, last *header) (*header, error) {
	hdr, err := h.extendSegment(size)
	if err != nil {
		return nil, err
	}

	h.listMu.Lock()
	h.appendLocked(last, hdr)
	h.stats.SegmentGrows++
	h.listMu.Unlock()
	return hdr, nil
}

// mapPages serves a request of at least a page with a dedicated anonymous
// mapping, rounded up to a whole number of pages. When the rounding leaves
// room for a second header plus at least one byte, the tail of the mapping
// becomes a synthetic free block linked directly after the new in-use block.
// This is the only place the allocator ever pre-splits a region; reuse never
// splits again.
func (h *Heap) mapPages(size uintptr, last *header) (*header, error) {
	need := size + headerSize
	pages := need / h.pageSize
	if need%h.pageSize != 0 {
		pages++
	}
	length := pages * h.pageSize

	h.memMu.Lock()
	base, err := osmem.Map(length, h.shared)
	h.memMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("map %d bytes for %d-byte request: %w: %v", length, size, ErrOutOfMemory, err)
	}

	hdr := (*header)(base)
	hdr.next = nil
	hdr.free = false

	var tail *header
	if leftover := length - need; leftover < headerSize+1 {
		// Too small to ever satisfy a request; the block keeps the slack.
		hdr.size = length - headerSize
	} else {
		hdr.size = size
		tail = (*header)(unsafe.Add(base, headerSize+size))
		tail.size = length - size - 2*headerSize
		tail.next = nil
		tail.free = true
		hdr.next = tail
	}

	h.listMu.Lock()
	h.appendLocked(last, hdr)
	h.stats.PageMaps++
	h.stats.BytesMapped += int64(length)
	if tail != nil {
		h.stats.SplitCount++
	}
	h.listMu.Unlock()
	return hdr, nil
}

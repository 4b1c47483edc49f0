package heap

import (
	"fmt"
	"unsafe"
)

// Alloc returns a pointer to size usable bytes. Zero is a legal size and
// yields a distinct zero-length region. On failure the heap is unchanged and
// the returned error wraps ErrOutOfMemory.
func (h *Heap) Alloc(size uintptr) (unsafe.Pointer, error) {
	h.listMu.Lock()
	h.stats.AllocCalls++
	empty := h.head == nil
	h.listMu.Unlock()

	var (
		hdr *header
		err error
	)
	if empty {
		hdr, err = h.bootstrap(size)
	} else {
		hdr, err = h.nextBlock(size)
	}
	if err != nil {
		h.log.Error("alloc failed", "bytes", size, "err", err)
		return nil, err
	}

	h.listMu.Lock()
	h.stats.BytesRequested += int64(size)
	h.listMu.Unlock()

	h.log.Debug("alloc", "bytes", size)
	return hdr.payload(), nil
}

// AllocZero allocates count*elemSize bytes and zeroes every byte before
// returning. The size multiplication is overflow-checked: a wrapped product
// fails with ErrOverflow rather than producing a short allocation.
func (h *Heap) AllocZero(count, elemSize uintptr) (unsafe.Pointer, error) {
	total := count * elemSize
	if elemSize != 0 && total/elemSize != count {
		return nil, fmt.Errorf("zero-alloc %d x %d bytes: %w", count, elemSize, ErrOverflow)
	}

	ptr, err := h.Alloc(total)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		// Reused blocks still hold their previous contents.
		clear(unsafe.Slice((*byte)(ptr), total))
	}
	h.log.Debug("zero-alloc", "bytes", total)
	return ptr, nil
}

// Free marks the region at ptr reusable. ptr must have been returned by Alloc
// or AllocZero on this heap and not already freed; no validation is performed
// and violating the contract corrupts the allocator silently. Free(nil) is a
// no-op. Freed blocks are never coalesced, split, or returned to the OS.
func (h *Heap) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	hdr := headerOf(ptr)

	h.listMu.Lock()
	hdr.free = true
	size := hdr.size
	h.stats.FreeCalls++
	h.listMu.Unlock()

	h.log.Debug("free", "bytes", size)
}

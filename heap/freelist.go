package heap

// nextBlock satisfies a request from the existing list, growing memory when
// no free block fits. Called only with a non-empty list.
//
// The scan is strict first-fit: the first free block whose size covers the
// request wins, no matter how much larger it is. Flipping the free flag under
// the list lock is the sole admission control on the reuse path; once a block
// is claimed here no other goroutine can claim it until it is freed again.
func (h *Heap) nextBlock(size uintptr) (*header, error) {
	h.listMu.Lock()
	last := h.head
	for hdr := h.head; hdr != nil; hdr = hdr.next {
		if hdr.free && hdr.size >= size {
			hdr.free = false
			h.stats.ReuseHits++
			h.listMu.Unlock()
			return hdr, nil
		}
		last = hdr
	}
	h.listMu.Unlock()

	// No reusable block. Requests of at least a page (header included) get a
	// dedicated mapping; everything smaller extends the data segment.
	if size+headerSize >= h.pageSize {
		return h.mapPages(size, last)
	}
	return h.growSegment(size, last)
}

// appendLocked links hdr after the current tail. last is a hint from an
// earlier traversal; the walk resumes from it because other goroutines may
// have appended while the list lock was dropped for the OS call. Callers
// hold listMu.
func (h *Heap) appendLocked(last, hdr *header) {
	for last.next != nil {
		last = last.next
	}
	last.next = hdr
}

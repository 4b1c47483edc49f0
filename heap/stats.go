package heap

// Stats holds cumulative allocator counters. Counters are observational only
// and never feed back into allocation decisions.
type Stats struct {
	AllocCalls     int   // Alloc and AllocZero entries
	FreeCalls      int   // Free entries (nil frees excluded)
	ReuseHits      int   // allocations satisfied by an existing free block
	SegmentGrows   int   // blocks created by extending the data segment
	PageMaps       int   // direct mappings created
	SplitCount     int   // mappings split into an in-use / free pair
	BytesRequested int64 // sum of requested sizes over successful allocations
	BytesMapped    int64 // total bytes obtained from the OS via mapping
}

// Stats returns a snapshot of the allocator counters.
func (h *Heap) Stats() Stats {
	h.listMu.Lock()
	defer h.listMu.Unlock()
	return h.stats
}

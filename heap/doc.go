// Package heap implements a drop-in first-fit allocator built directly on the
// process's program break and on anonymous memory mappings.
//
// # Overview
//
// A Heap owns a single free list spanning every block it has ever created,
// whether the block came from extending the contiguous data segment (brk) or
// from a dedicated anonymous mapping (mmap). Each usable region is preceded by
// a fixed-size header recording the region's size, a link to the next header,
// and whether the region is currently free. The list is append-only: headers
// are created once, linked at the tail, and recycled in place forever.
//
// # Allocation policy
//
// Alloc scans the list from the head and claims the first free block whose
// size covers the request (first-fit, never best-fit). When no block fits,
// the request either extends the data segment (small requests) or maps whole
// OS pages directly (requests of at least a page, including the header).
// A direct mapping whose page rounding leaves a usable tail is split once, at
// creation, into an in-use block and a synthetic free block; blocks are never
// split again on reuse, and adjacent free blocks are never coalesced.
//
// # Usage Example
//
//	h := heap.New()
//
//	p, err := h.Alloc(128)
//	if err != nil {
//	    return err
//	}
//
//	// Use the region through p...
//	b := unsafe.Slice((*byte)(p), 128)
//	copy(b, payload)
//
//	// Later, hand the block back for reuse.
//	h.Free(p)
//
// # Locking
//
// Two mutexes with disjoint domains keep concurrent callers consistent. The
// memory lock is held only around the brk and mmap system calls, so at most
// one in-flight request can move the break or create a mapping. The list lock
// is held only around reads and writes of the head reference and of header
// fields. The memory lock is always released before the list lock is taken;
// a freshly obtained region is physically live but unreachable during that
// gap, which is harmless because no other goroutine holds a pointer into it.
//
// # Caller contract
//
// Free performs no validation. Passing a pointer that did not come from Alloc
// or AllocZero on the same Heap, freeing twice, or touching a region after
// freeing it corrupts the allocator silently. Nothing is ever unmapped or
// returned to the OS; all memory is reclaimed by process exit.
//
// # Platform support
//
// The allocator requires a movable program break and is implemented for
// linux via github.com/joshuapare/heapkit/internal/osmem. On other platforms
// every allocation fails with osmem.ErrUnsupported.
package heap

package heap

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/joshuapare/heapkit/internal/osmem"
)

// Runtime trace flag for allocation logging - controlled by HEAP_LOG_ALLOC env var.
var logAlloc = os.Getenv("HEAP_LOG_ALLOC") != ""

// Heap is a first-fit allocator over the process data segment and anonymous
// mappings. A single shared free list spans both kinds of memory. The zero
// value is not usable; construct with New.
type Heap struct {
	memMu  sync.Mutex // serializes brk and mmap requests against the OS
	listMu sync.Mutex // guards head, every header field, and stats

	// head is the first header ever created. It stays nil until the first
	// allocation and is never reset once installed.
	head *header

	pageSize uintptr // direct-mapping threshold and mapping granularity
	shared   bool    // MAP_SHARED instead of MAP_PRIVATE for direct mappings
	log      *slog.Logger

	stats Stats
}

// Option configures a Heap.
type Option func(*Heap)

// WithLogger installs a trace sink for one-line alloc/free events. The sink
// is purely observational and never affects allocation behavior.
func WithLogger(l *slog.Logger) Option {
	return func(h *Heap) { h.log = l }
}

// WithSharedMapping makes direct mappings MAP_SHARED rather than the default
// MAP_PRIVATE.
func WithSharedMapping() Option {
	return func(h *Heap) { h.shared = true }
}

// New returns an empty Heap. No memory is requested from the OS until the
// first allocation. Trace output is discarded unless WithLogger is given or
// the HEAP_LOG_ALLOC environment variable is set.
func New(opts ...Option) *Heap {
	h := &Heap{
		pageSize: osmem.Pagesize(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if logAlloc {
		h.log = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

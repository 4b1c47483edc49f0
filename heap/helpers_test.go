//go:build linux

package heap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helpers
// ============================================================================

// mustAlloc allocates size bytes or stops the test.
func mustAlloc(t *testing.T, h *Heap, size uintptr) unsafe.Pointer {
	t.Helper()
	p, err := h.Alloc(size)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

// asBytes views the size-byte region at p as a slice.
func asBytes(p unsafe.Pointer, size uintptr) []byte {
	return unsafe.Slice((*byte)(p), size)
}

// fill writes b over the whole region at p.
func fill(p unsafe.Pointer, size uintptr, b byte) {
	buf := asBytes(p, size)
	for i := range buf {
		buf[i] = b
	}
}

//go:build linux

package heap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_BootstrapFirstAllocation verifies the first allocation installs the
// list head with the exact requested size, marked in use.
func Test_BootstrapFirstAllocation(t *testing.T) {
	h := New()

	p := mustAlloc(t, h, 100)

	hdr := headerOf(p)
	require.Equal(t, uintptr(100), hdr.size)
	require.False(t, hdr.free)
	require.Nil(t, hdr.next)
	require.True(t, h.head == hdr, "first header must become the list head")
	require.Equal(t, 1, h.Blocks())

	// The region must be writable end to end.
	fill(p, 100, 0xa5)
	for i, b := range asBytes(p, 100) {
		require.Equal(t, byte(0xa5), b, "byte %d", i)
	}
}

// Test_FreeThenReuseRoundTrip covers the release-then-reuse round trip: a freed
// block is reclaimed by the next fitting request, in place, without a new
// block appearing.
func Test_FreeThenReuseRoundTrip(t *testing.T) {
	h := New()

	a := mustAlloc(t, h, 100)
	h.Free(a)
	require.True(t, headerOf(a).free)

	b := mustAlloc(t, h, 50)
	require.True(t, headerOf(b) == headerOf(a), "smaller request must reuse the freed block")
	require.Equal(t, uintptr(100), headerOf(b).size, "reuse never shrinks a block")
	require.False(t, headerOf(b).free)
	require.Equal(t, 1, h.Blocks())
}

// Test_FirstFitNotBestFit verifies that with free blocks [200, 50] in
// creation order, a request for 40 takes the 200-byte block, never the
// tighter 50-byte one.
func Test_FirstFitNotBestFit(t *testing.T) {
	h := New()

	a := mustAlloc(t, h, 200)
	b := mustAlloc(t, h, 50)
	h.Free(a)
	h.Free(b)

	c := mustAlloc(t, h, 40)
	require.True(t, headerOf(c) == headerOf(a), "first fitting block in list order wins")
	require.True(t, headerOf(b).free, "the tighter block must stay free")
	require.Equal(t, 2, h.Blocks())
}

// Test_NoReuseWhenFreeBlockTooSmall verifies a request larger than every free
// block grows a new block instead of handing out a short region.
func Test_NoReuseWhenFreeBlockTooSmall(t *testing.T) {
	h := New()

	a := mustAlloc(t, h, 64)
	h.Free(a)

	b := mustAlloc(t, h, 100)
	require.True(t, headerOf(b) != headerOf(a))
	require.Equal(t, uintptr(100), headerOf(b).size)
	require.True(t, headerOf(a).free, "undersized block must stay free")
	require.Equal(t, 2, h.Blocks())
}

// Test_AllocZeroZeroFills dirties a block, frees it, and reclaims it through
// AllocZero: every byte must read zero and the header must look exactly like
// a plain allocation of the same size.
func Test_AllocZeroZeroFills(t *testing.T) {
	h := New()

	p := mustAlloc(t, h, 64)
	fill(p, 64, 0xff)
	h.Free(p)

	q, err := h.AllocZero(8, 8)
	require.NoError(t, err)
	require.True(t, headerOf(q) == headerOf(p), "AllocZero must reuse through the same search path")
	for i, b := range asBytes(q, 64) {
		require.Equal(t, byte(0), b, "byte %d not zeroed", i)
	}

	hdr := headerOf(q)
	require.Equal(t, uintptr(64), hdr.size)
	require.False(t, hdr.free)
}

// Test_AllocZeroOverflowDetected verifies a wrapping count*elemSize product
// fails up front; no allocation and no zero-fill happens.
func Test_AllocZeroOverflowDetected(t *testing.T) {
	h := New()

	p, err := h.AllocZero(^uintptr(0)/2, 3)
	require.ErrorIs(t, err, ErrOverflow)
	require.Nil(t, p)
	require.Equal(t, 0, h.Blocks(), "failed request must leave no state behind")
}

// Test_AllocZeroZeroTotal covers the degenerate zero-byte product.
func Test_AllocZeroZeroTotal(t *testing.T) {
	h := New()

	p, err := h.AllocZero(0, 8)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, uintptr(0), headerOf(p).size)
}

// Test_ZeroSizeAllocationIsLegal verifies size 0 is treated as a valid
// request with its own header, and that the block round-trips through Free.
func Test_ZeroSizeAllocationIsLegal(t *testing.T) {
	h := New()

	p := mustAlloc(t, h, 0)
	require.Equal(t, uintptr(0), headerOf(p).size)
	require.False(t, headerOf(p).free)

	q := mustAlloc(t, h, 0)
	require.True(t, headerOf(q) != headerOf(p), "in-use zero-length block must not be handed out twice")

	h.Free(p)
	r := mustAlloc(t, h, 0)
	require.True(t, headerOf(r) == headerOf(p), "freed zero-length block is reusable")
}

// Test_FreeNilIsNoop verifies Free(nil) neither panics nor counts.
func Test_FreeNilIsNoop(t *testing.T) {
	h := New()
	h.Free(nil)
	require.Equal(t, 0, h.Stats().FreeCalls)
}

// Test_StatsAccounting checks the counter block across the three paths.
func Test_StatsAccounting(t *testing.T) {
	h := New()

	a := mustAlloc(t, h, 64) // bootstrap
	mustAlloc(t, h, 64)      // segment growth
	h.Free(a)
	mustAlloc(t, h, 32) // reuse

	st := h.Stats()
	require.Equal(t, 3, st.AllocCalls)
	require.Equal(t, 1, st.FreeCalls)
	require.Equal(t, 1, st.ReuseHits)
	require.Equal(t, 2, st.SegmentGrows)
	require.Equal(t, 0, st.PageMaps)
	require.Equal(t, 0, st.SplitCount)
	require.Equal(t, int64(64+64+32), st.BytesRequested)
	require.Equal(t, int64(0), st.BytesMapped)
}

// Test_DumpListsBlocksInOrder checks the one-line-per-block debug dump.
func Test_DumpListsBlocksInOrder(t *testing.T) {
	h := New()

	a := mustAlloc(t, h, 64)
	mustAlloc(t, h, 128)
	h.Free(a)

	var buf bytes.Buffer
	require.NoError(t, h.Dump(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "block 0: 64 bytes, free", lines[0])
	require.Equal(t, "block 1: 128 bytes, in-use", lines[1])
}

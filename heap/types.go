package heap

import "unsafe"

// header is the fixed-size metadata record embedded immediately before every
// usable region. size counts the usable bytes that follow the header and
// never includes the header itself. next links headers in creation order;
// the list is append-only and headers are never unlinked, only toggled
// between in-use and free.
type header struct {
	size uintptr
	next *header
	free bool
}

// headerSize is the fixed offset between a header and the region it
// describes. Release relies on this offset to recover metadata from a bare
// region pointer.
const headerSize = unsafe.Sizeof(header{})

// payload returns the usable region immediately following h.
func (h *header) payload() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(h), headerSize)
}

// headerOf recovers the header describing the region at ptr. ptr must have
// been returned by Alloc or AllocZero.
func headerOf(ptr unsafe.Pointer) *header {
	return (*header)(unsafe.Add(ptr, -int(headerSize)))
}

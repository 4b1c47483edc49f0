//go:build !linux

package osmem

import (
	"os"
	"unsafe"
)

// Pagesize returns the size of an OS page in bytes.
func Pagesize() uintptr {
	return uintptr(os.Getpagesize())
}

// Sbrk is unavailable: the platform has no movable program break.
func Sbrk(delta uintptr) (unsafe.Pointer, error) {
	return nil, ErrUnsupported
}

// Map is unavailable on platforms without Sbrk; the allocator is linux-only.
func Map(length uintptr, shared bool) (unsafe.Pointer, error) {
	return nil, ErrUnsupported
}

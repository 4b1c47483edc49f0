//go:build linux

package osmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Pagesize returns the size of an OS page in bytes.
func Pagesize() uintptr {
	return uintptr(unix.Getpagesize())
}

// brk asks the kernel to set the program break to addr and returns the
// resulting break. The kernel never moves the break for brk(0), so that form
// reads the current break.
func brk(addr uintptr) uintptr {
	r, _, _ := unix.Syscall(unix.SYS_BRK, addr, 0, 0)
	return r
}

// Sbrk moves the program break up by delta bytes and returns the previous
// break, i.e. the start of the newly usable region. Sbrk(0) reports the
// current break without moving it. Callers must serialize concurrent calls;
// two overlapping moves would both start from the same break.
func Sbrk(delta uintptr) (unsafe.Pointer, error) {
	prev := brk(0)
	if prev == 0 {
		return nil, fmt.Errorf("osmem: read program break: %w", unix.ENOMEM)
	}
	if delta == 0 {
		return unsafe.Pointer(prev), nil
	}
	if got := brk(prev + delta); got < prev+delta {
		return nil, fmt.Errorf("osmem: extend program break by %d bytes: %w", delta, unix.ENOMEM)
	}
	return unsafe.Pointer(prev), nil
}

// Map creates an anonymous read/write mapping of exactly length bytes; length
// must be a whole number of pages. The mapping is process-private unless
// shared is set. The kernel hands the pages back zero-filled.
func Map(length uintptr, shared bool) (unsafe.Pointer, error) {
	flags := unix.MAP_ANON | unix.MAP_PRIVATE
	if shared {
		flags = unix.MAP_ANON | unix.MAP_SHARED
	}
	data, err := unix.Mmap(-1, 0, int(length), unix.PROT_READ|unix.PROT_WRITE, flags)
	if err != nil {
		return nil, fmt.Errorf("osmem: map %d anonymous bytes: %w", length, err)
	}
	return unsafe.Pointer(unsafe.SliceData(data)), nil
}

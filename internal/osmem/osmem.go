// Package osmem wraps the two OS memory primitives the allocator is built on:
// moving the program break (brk) and creating anonymous read/write mappings
// (mmap). Neither primitive is ever undone; this package has no free or unmap
// operation because the allocator never returns memory to the OS.
package osmem

import "errors"

// ErrUnsupported indicates the platform lacks a movable program break.
var ErrUnsupported = errors.New("osmem: program-break allocation not supported on this platform")

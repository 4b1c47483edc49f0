package heap

import "errors"

var (
	// ErrOutOfMemory indicates the OS refused to extend the data segment or
	// to create a new anonymous mapping.
	ErrOutOfMemory = errors.New("heap: out of memory")

	// ErrOverflow indicates an AllocZero size computation wrapped around.
	ErrOverflow = errors.New("heap: allocation size overflows uintptr")
)

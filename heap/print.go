package heap

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dump writes one line per block in list order: position, usable size, and
// whether the block is free. Byte counts are grouped for readability, so a
// 10 MB mapping prints as "10,000,000 bytes". Debugging aid only; the list
// lock is held for the whole walk.
//
// Example:
//
//	h := heap.New()
//	p, _ := h.Alloc(64)
//	h.Free(p)
//	h.Dump(os.Stdout)
//	// block 0: 64 bytes, free
func (h *Heap) Dump(w io.Writer) error {
	p := message.NewPrinter(language.English)

	h.listMu.Lock()
	defer h.listMu.Unlock()

	i := 0
	for hdr := h.head; hdr != nil; hdr = hdr.next {
		state := "in-use"
		if hdr.free {
			state = "free"
		}
		if _, err := p.Fprintf(w, "block %d: %d bytes, %s\n", i, uint64(hdr.size), state); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Blocks returns the number of headers ever created. Headers are never
// destroyed, so the count only grows.
func (h *Heap) Blocks() int {
	h.listMu.Lock()
	defer h.listMu.Unlock()

	n := 0
	for hdr := h.head; hdr != nil; hdr = hdr.next {
		n++
	}
	return n
}

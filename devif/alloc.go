package devif

import "unsafe"

// allocAligned returns a byte slice of exactly size bytes whose first
// element sits on an address aligned to align. The contents are garbage
// until populated; callers reinterpret the region only into layouts whose
// size and alignment match what was requested here.
//
// size must be positive and align a power of two. Violations panic: they
// are implementation bugs, the same tier as the runtime's own out of
// memory condition.
func allocAligned(size, align int) []byte {
	if size <= 0 {
		panic("devif: allocAligned: non-positive size")
	}
	if align <= 0 || align&(align-1) != 0 {
		panic("devif: allocAligned: alignment is not a power of two")
	}
	buf := make([]byte, size+align-1)
	off := int(uintptr(unsafe.Pointer(unsafe.SliceData(buf))) & uintptr(align-1))
	shift := 0
	if off != 0 {
		shift = align - off
	}
	return buf[shift : shift+size : shift+size]
}

package devif

import (
	"encoding/binary"
	"unicode/utf16"
)

// utf16BytesToWords reinterprets a little-endian UTF-16 byte buffer as
// code units. An odd byte count means the buffer cannot be what its type
// tag claims.
func utf16BytesToWords(b []byte) []uint16 {
	if len(b)%2 != 0 {
		decodeFault("UTF-16 buffer has odd length %d", len(b))
	}
	words := make([]uint16, len(b)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return words
}

// utf16BytesToString decodes a little-endian UTF-16 buffer up to its first
// NUL code unit (or the whole buffer if none is embedded).
func utf16BytesToString(b []byte) string {
	words := utf16BytesToWords(b)
	for i, w := range words {
		if w == 0 {
			words = words[:i]
			break
		}
	}
	return string(utf16.Decode(words))
}

// decodePropString decodes a DEVPROP_TYPE_STRING payload: UTF-16LE whose
// trailing NUL belongs to the wire form, not to the logical value.
func decodePropString(raw []byte) string {
	words := utf16BytesToWords(raw)
	if n := len(words); n > 0 && words[n-1] == 0 {
		words = words[:n-1]
	}
	return string(utf16.Decode(words))
}

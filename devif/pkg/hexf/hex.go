// Package hexf is a small allocation-friendly hex encoder used for GUID
// and binary-blob formatting. Ported from encoding/hex so the upper and
// lowercase variants share one table-driven loop.
package hexf

import "unsafe"

var hextableUpper = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}
var hextableLower = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// EncodeU encodes src into len(src)*2 bytes of dst using UPPERCASE digits
// and returns the number of bytes written.
func EncodeU(dst, src []byte) int {
	return encode(dst, src, &hextableUpper)
}

// Encode encodes src into len(src)*2 bytes of dst using lowercase digits
// and returns the number of bytes written.
func Encode(dst, src []byte) int {
	return encode(dst, src, &hextableLower)
}

func encode(dst, src []byte, hexTable *[16]byte) int {
	j := 0
	for _, v := range src {
		dst[j] = hexTable[v>>4]
		dst[j+1] = hexTable[v&0x0f]
		j += 2
	}
	return len(src) * 2
}

// EncodeToString returns the lowercase hexadecimal encoding of src.
// Single allocation, unlike hex.EncodeToString.
func EncodeToString(src []byte) string {
	dst := make([]byte, len(src)*2)
	Encode(dst, src)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

// EncodeToStringU returns the UPPERCASE hexadecimal encoding of src.
func EncodeToStringU(src []byte) string {
	dst := make([]byte, len(src)*2)
	EncodeU(dst, src)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

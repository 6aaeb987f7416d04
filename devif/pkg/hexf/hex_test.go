package hexf

import "testing"

func TestEncodeToString(t *testing.T) {
	tests := []struct {
		src         []byte
		want, wantU string
	}{
		{nil, "", ""},
		{[]byte{0x00}, "00", "00"},
		{[]byte{0xde, 0xad, 0xbe, 0xef}, "deadbeef", "DEADBEEF"},
		{[]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, "0123456789abcdef", "0123456789ABCDEF"},
	}

	for _, tt := range tests {
		if got := EncodeToString(tt.src); got != tt.want {
			t.Errorf("EncodeToString(% x) = %q, want %q", tt.src, got, tt.want)
		}
		if got := EncodeToStringU(tt.src); got != tt.wantU {
			t.Errorf("EncodeToStringU(% x) = %q, want %q", tt.src, got, tt.wantU)
		}
	}
}

func TestEncodeInPlace(t *testing.T) {
	dst := make([]byte, 4)
	n := EncodeU(dst, []byte{0xa5, 0x0f})
	if n != 4 || string(dst) != "A50F" {
		t.Errorf("EncodeU wrote %d bytes: %q", n, dst)
	}
}

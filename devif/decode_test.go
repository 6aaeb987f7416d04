package devif

import (
	"math"
	"testing"

	"github.com/0xrawsec/toast"

	"github.com/Rimpampa/winapi-sd-test/internal/test"
)

func TestDecodeScalars(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	tt.Assert(decodeProperty(DEVPROP_TYPE_EMPTY, nil) == PropEmpty{})
	tt.Assert(decodeProperty(DEVPROP_TYPE_NULL, nil) == PropNull{})

	tt.Assert(decodeProperty(DEVPROP_TYPE_SBYTE, []byte{0xFF}) == PropI8(-1))
	tt.Assert(decodeProperty(DEVPROP_TYPE_BYTE, []byte{0xFF}) == PropU8(255))
	tt.Assert(decodeProperty(DEVPROP_TYPE_INT16, []byte{0xFE, 0xFF}) == PropI16(-2))
	tt.Assert(decodeProperty(DEVPROP_TYPE_UINT16, []byte{0x34, 0x12}) == PropU16(0x1234))
	tt.Assert(decodeProperty(DEVPROP_TYPE_INT32, []byte{0xFF, 0xFF, 0xFF, 0xFF}) == PropI32(-1))
	tt.Assert(decodeProperty(DEVPROP_TYPE_UINT32, []byte{0x2A, 0x00, 0x00, 0x00}) == PropU32(42))
	tt.Assert(decodeProperty(DEVPROP_TYPE_INT64,
		[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}) == PropI64(-1))
	tt.Assert(decodeProperty(DEVPROP_TYPE_UINT64,
		[]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}) == PropU64(1<<63|1))

	f32 := []byte{0x00, 0x00, 0x80, 0x3F} // 1.0f
	tt.Assert(decodeProperty(DEVPROP_TYPE_FLOAT, f32) == PropF32(1.0))
	var f64 [8]byte
	bits := math.Float64bits(2.5)
	for i := range f64 {
		f64[i] = byte(bits >> (8 * i))
	}
	tt.Assert(decodeProperty(DEVPROP_TYPE_DOUBLE, f64[:]) == PropF64(2.5))
}

func TestDecodeBoolean(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	// The canonical sentinels plus the nonzero values the subsystem
	// produces in practice.
	tt.Assert(decodeProperty(DEVPROP_TYPE_BOOLEAN, []byte{DEVPROP_TRUE}) == PropBool(true))
	tt.Assert(decodeProperty(DEVPROP_TYPE_BOOLEAN, []byte{DEVPROP_FALSE}) == PropBool(false))
	tt.Assert(decodeProperty(DEVPROP_TYPE_BOOLEAN, []byte{0x01}) == PropBool(true))

	prop := decodeProperty(DEVPROP_TYPEMOD_ARRAY|DEVPROP_TYPE_BOOLEAN, []byte{0x01, 0x00, 0x01})
	arr, ok := prop.(PropBoolArray)
	tt.Assert(ok)
	tt.Assert(len(arr) == 3)
	tt.Assert(arr[0] && !arr[1] && arr[2])
}

func TestDecodeGUID(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	raw := []byte{
		0x07, 0x63, 0xF5, 0x53,
		0xBF, 0xB6,
		0xD0, 0x11,
		0x94, 0xF2, 0x00, 0xA0, 0xC9, 0x1E, 0xFB, 0x8B,
	}
	prop := decodeProperty(DEVPROP_TYPE_GUID, raw)
	g, ok := prop.(PropGUID)
	tt.Assert(ok)
	gg := GUID(g)
	tt.Assert(gg.Equals(&GUID_DEVINTERFACE_DISK))

	two := append(append([]byte{}, raw...), raw...)
	arr, ok := decodeProperty(DEVPROP_TYPEMOD_ARRAY|DEVPROP_TYPE_GUID, two).(PropGUIDArray)
	tt.Assert(ok)
	tt.Assert(len(arr) == 2)
	tt.Assert(arr[0].Equals(&arr[1]))
}

func TestDecodeString(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	// "ab" with the trailing NUL terminator the subsystem stores.
	raw := []byte{'a', 0x00, 'b', 0x00, 0x00, 0x00}
	tt.Assert(decodeProperty(DEVPROP_TYPE_STRING, raw) == PropString("ab"))

	// Without terminator the payload is taken whole.
	raw = []byte{'a', 0x00, 'b', 0x00}
	tt.Assert(decodeProperty(DEVPROP_TYPE_STRING, raw) == PropString("ab"))

	// Only the final terminator is stripped; embedded NULs survive, as in
	// the REG_MULTI_SZ style packing of string lists.
	raw = []byte{'a', 0x00, 0x00, 0x00, 'b', 0x00, 0x00, 0x00}
	tt.Assert(decodeProperty(DEVPROP_TYPE_STRING, raw) == PropString("a\x00b"))
}

func TestDecodeBinaryAndArrays(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	bin, ok := decodeProperty(DEVPROP_TYPE_BINARY, []byte{0xDE, 0xAD}).(PropBinary)
	tt.Assert(ok)
	tt.Assert(bin.String() == "dead")

	u32s, ok := decodeProperty(DEVPROP_TYPEMOD_ARRAY|DEVPROP_TYPE_UINT32,
		[]byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}).(PropU32Array)
	tt.Assert(ok)
	tt.Assert(len(u32s) == 2 && u32s[0] == 1 && u32s[1] == 2)

	// Zero elements is a valid array.
	empty, ok := decodeProperty(DEVPROP_TYPEMOD_ARRAY|DEVPROP_TYPE_UINT32, nil).(PropU32Array)
	tt.Assert(ok)
	tt.Assert(len(empty) == 0)
}

func TestDecodeUnsupported(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	prop := decodeProperty(0xFFFF, []byte{0x01})
	up, ok := prop.(PropUnsupported)
	tt.Assert(ok)
	tt.Assert(DevPropType(up) == 0xFFFF)
	tt.Assert(up.String() == "#UNSUP{0xffff}")

	// The string list modifier is outside the closed table.
	_, ok = decodeProperty(DEVPROP_TYPE_STRING_LIST, nil).(PropUnsupported)
	tt.Assert(ok)
}

func TestDecodeFaults(t *testing.T) {
	t.Parallel()

	tt := test.FromT(t)

	// Scalar buffers must match their wire width exactly.
	tt.ShouldPanicWith("decode fault", func() {
		decodeProperty(DEVPROP_TYPE_UINT32, []byte{0x2A, 0x00})
	})
	tt.ShouldPanicWith("decode fault", func() {
		decodeProperty(DEVPROP_TYPE_BOOLEAN, []byte{0x01, 0x00})
	})
	tt.ShouldPanicWith("decode fault", func() {
		decodeProperty(DEVPROP_TYPE_GUID, make([]byte, 15))
	})

	// Array buffers must hold whole elements.
	tt.ShouldPanicWith("decode fault", func() {
		decodeProperty(DEVPROP_TYPEMOD_ARRAY|DEVPROP_TYPE_UINT32, make([]byte, 6))
	})

	// UTF-16 payloads come in whole words.
	tt.ShouldPanicWith("decode fault", func() {
		decodeProperty(DEVPROP_TYPE_STRING, []byte{'a', 0x00, 'b'})
	})
}

func TestDevPropTypeParts(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	pt := DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_UINT32
	tt.Assert(pt.Base() == DEVPROP_TYPE_UINT32)
	tt.Assert(pt.Mod() == DEVPROP_TYPEMOD_ARRAY)
	tt.Assert(pt.IsArray())
	tt.Assert(!DEVPROP_TYPE_UINT32.IsArray())

	tt.Assert(DEVPROP_TYPE_BINARY == DEVPROP_TYPEMOD_ARRAY|DEVPROP_TYPE_BYTE)
	tt.Assert(DEVPROP_TYPE_STRING_LIST == DEVPROP_TYPEMOD_LIST|DEVPROP_TYPE_STRING)
}

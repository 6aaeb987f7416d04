package devif

import (
	"testing"

	"github.com/0xrawsec/toast"
)

func TestPropertyStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prop DevProperty
		want string
	}{
		{"Empty", PropEmpty{}, "#EMPTY"},
		{"Null", PropNull{}, "#NULL"},
		{"I8", PropI8(-5), "-5"},
		{"U8", PropU8(200), "200"},
		{"I32", PropI32(-42), "-42"},
		{"U32", PropU32(42), "42"},
		{"U64", PropU64(1 << 40), "1099511627776"},
		{"F64", PropF64(2.5), "2.5"},
		{"BoolTrue", PropBool(true), "true"},
		{"BoolFalse", PropBool(false), "false"},
		{"String", PropString("PCI\\VEN_8086"), "PCI\\VEN_8086"},
		{"Binary", PropBinary{0xDE, 0xAD, 0xBE, 0xEF}, "deadbeef"},
		{"GUID", PropGUID(GUID_DEVINTERFACE_DISK), "{53f56307-b6bf-11d0-94f2-00a0c91efb8b}"},
		{"U32Array", PropU32Array{1, 2, 3}, "[1 2 3]"},
		{"BoolArray", PropBoolArray{true, false}, "[true false]"},
		{"GUIDArray", PropGUIDArray{GUID_DEVINTERFACE_DISK, GUID_DEVINTERFACE_CDROM},
			"[{53f56307-b6bf-11d0-94f2-00a0c91efb8b}, {53f56308-b6bf-11d0-94f2-00a0c91efb8b}]"},
		{"Unsupported", PropUnsupported(0x2012), "#UNSUP{0x2012}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt := toast.FromT(t)
			tt.Assert(tc.prop.String() == tc.want, "got "+tc.prop.String())
		})
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)
	key := DevPropKey{Fmtid: GUID_DEVINTERFACE_DISK, Pid: 10}
	tt.Assert(key.String() == "{53f56307-b6bf-11d0-94f2-00a0c91efb8b}::10")
}

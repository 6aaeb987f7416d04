package devif

import "strconv"

// DevPropType is the runtime type tag attached to every property value by
// the plug-and-play subsystem: a base type in the low bits plus an optional
// modifier. The modifier is orthogonal to the base type, except for the two
// combinations Windows defines as types of their own (BINARY, STRING_LIST).
//
// https://learn.microsoft.com/en-us/windows-hardware/drivers/install/devprop-type
type DevPropType uint32

const (
	DEVPROP_TYPEMOD_ARRAY DevPropType = 0x00001000
	DEVPROP_TYPEMOD_LIST  DevPropType = 0x00002000

	DEVPROP_MASK_TYPE    DevPropType = 0x00000FFF
	DEVPROP_MASK_TYPEMOD DevPropType = 0x0000F000
)

const (
	DEVPROP_TYPE_EMPTY    DevPropType = 0x00000000
	DEVPROP_TYPE_NULL     DevPropType = 0x00000001
	DEVPROP_TYPE_SBYTE    DevPropType = 0x00000002
	DEVPROP_TYPE_BYTE     DevPropType = 0x00000003
	DEVPROP_TYPE_INT16    DevPropType = 0x00000004
	DEVPROP_TYPE_UINT16   DevPropType = 0x00000005
	DEVPROP_TYPE_INT32    DevPropType = 0x00000006
	DEVPROP_TYPE_UINT32   DevPropType = 0x00000007
	DEVPROP_TYPE_INT64    DevPropType = 0x00000008
	DEVPROP_TYPE_UINT64   DevPropType = 0x00000009
	DEVPROP_TYPE_FLOAT    DevPropType = 0x0000000A
	DEVPROP_TYPE_DOUBLE   DevPropType = 0x0000000B
	DEVPROP_TYPE_DECIMAL  DevPropType = 0x0000000C
	DEVPROP_TYPE_GUID     DevPropType = 0x0000000D
	DEVPROP_TYPE_CURRENCY DevPropType = 0x0000000E
	DEVPROP_TYPE_DATE     DevPropType = 0x0000000F
	DEVPROP_TYPE_FILETIME DevPropType = 0x00000010
	DEVPROP_TYPE_BOOLEAN  DevPropType = 0x00000011
	DEVPROP_TYPE_STRING   DevPropType = 0x00000012

	// There is no BYTE_ARRAY: DEVPROP_TYPE_BINARY is defined as
	// DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_BYTE.
	DEVPROP_TYPE_BINARY      = DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_BYTE
	DEVPROP_TYPE_STRING_LIST = DEVPROP_TYPEMOD_LIST | DEVPROP_TYPE_STRING
)

// Wire encoding of DEVPROP_BOOLEAN: one byte, -1 for true, 0 for false.
const (
	DEVPROP_TRUE  = 0xFF
	DEVPROP_FALSE = 0x00
)

// Base returns the type tag without its modifier bits.
func (t DevPropType) Base() DevPropType { return t & DEVPROP_MASK_TYPE }

// Mod returns only the modifier bits of the type tag.
func (t DevPropType) Mod() DevPropType { return t & DEVPROP_MASK_TYPEMOD }

// IsArray reports whether the tag carries the array modifier.
func (t DevPropType) IsArray() bool { return t.Mod() == DEVPROP_TYPEMOD_ARRAY }

func (t DevPropType) String() string {
	return "0x" + strconv.FormatUint(uint64(t), 16)
}

/*
typedef struct _DEVPROPKEY {
	DEVPROPGUID fmtid;
	DEVPROPID   pid;
} DEVPROPKEY;
*/

// DevPropKey identifies one property of a device interface: a 128-bit
// category GUID plus a property id within that category. Pure value type,
// comparable with ==.
type DevPropKey struct {
	Fmtid GUID
	Pid   uint32
}

func (k DevPropKey) String() string {
	return k.Fmtid.StringL() + "::" + strconv.FormatUint(uint64(k.Pid), 10)
}

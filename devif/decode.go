package devif

import (
	"encoding/binary"
	"log/slog"
	"math"
	"time"

	"github.com/Rimpampa/winapi-sd-test/logsampler"
)

// Unknown type tags are a normal occurrence (newer OS versions keep
// defining new DEVPROP types), so they only log at debug level, and the
// sampler keeps a dump over thousands of properties from repeating the
// same line per key.
var unsupportedSampler = logsampler.NewDeduplicatingSampler(time.Minute, nil)

func logUnsupported(pt DevPropType) {
	if ok, suppressed := unsupportedSampler.ShouldLog(pt.String()); ok {
		slog.Debug("unsupported property type", "type", pt, "suppressed", suppressed)
	}
}

// Fixed-width little-endian element converters. Each consumes exactly its
// wire width from the front of the slice; the dispatch below guarantees
// the slice is long enough before they run.
func i8conv(b []byte) int8    { return int8(b[0]) }
func u8conv(b []byte) uint8   { return b[0] }
func i16conv(b []byte) int16  { return int16(binary.LittleEndian.Uint16(b)) }
func u16conv(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func i32conv(b []byte) int32  { return int32(binary.LittleEndian.Uint32(b)) }
func u32conv(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func i64conv(b []byte) int64  { return int64(binary.LittleEndian.Uint64(b)) }
func u64conv(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
func f32conv(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
func f64conv(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// wireBool interprets one DEVPROP_BOOLEAN byte. The header defines the
// DEVPROP_TRUE sentinel as 0xFF, but the subsystem is not consistent
// about it, so any nonzero byte counts as true.
func wireBool(b byte) bool { return b != DEVPROP_FALSE }

func guidconv(b []byte) GUID { return guidFromLE(b) }

// scalar validates that a scalar buffer holds exactly one element of the
// given wire width before conversion runs.
func scalar[E any](pt DevPropType, raw []byte, width int, conv func([]byte) E) E {
	if len(raw) != width {
		decodeFault("scalar %s has %d bytes, wire width is %d", pt, len(raw), width)
	}
	return conv(raw)
}

// array reinterprets raw as a sequence of fixed-width elements. A byte
// count that is not a whole multiple of the width cannot produce a valid
// array, partially filled or otherwise.
func array[E any](pt DevPropType, raw []byte, width int, conv func([]byte) E) []E {
	if len(raw)%width != 0 {
		decodeFault("array %s has %d bytes, not a multiple of element width %d", pt, len(raw), width)
	}
	out := make([]E, len(raw)/width)
	for i := range out {
		out[i] = conv(raw[i*width:])
	}
	return out
}

// decodeProperty dispatches on the full (base type, modifier) tag and
// decodes raw into the matching DevProperty variant. The tag table is
// closed: every combination outside it falls through to PropUnsupported
// instead of failing, so unknown property types never abort an
// enumeration.
func decodeProperty(pt DevPropType, raw []byte) DevProperty {
	switch pt {
	case DEVPROP_TYPE_EMPTY:
		return PropEmpty{}
	case DEVPROP_TYPE_NULL:
		return PropNull{}

	case DEVPROP_TYPE_SBYTE:
		return PropI8(scalar(pt, raw, 1, i8conv))
	case DEVPROP_TYPE_BYTE:
		return PropU8(scalar(pt, raw, 1, u8conv))
	case DEVPROP_TYPE_INT16:
		return PropI16(scalar(pt, raw, 2, i16conv))
	case DEVPROP_TYPE_UINT16:
		return PropU16(scalar(pt, raw, 2, u16conv))
	case DEVPROP_TYPE_INT32:
		return PropI32(scalar(pt, raw, 4, i32conv))
	case DEVPROP_TYPE_UINT32:
		return PropU32(scalar(pt, raw, 4, u32conv))
	case DEVPROP_TYPE_INT64:
		return PropI64(scalar(pt, raw, 8, i64conv))
	case DEVPROP_TYPE_UINT64:
		return PropU64(scalar(pt, raw, 8, u64conv))
	case DEVPROP_TYPE_FLOAT:
		return PropF32(scalar(pt, raw, 4, f32conv))
	case DEVPROP_TYPE_DOUBLE:
		return PropF64(scalar(pt, raw, 8, f64conv))
	case DEVPROP_TYPE_BOOLEAN:
		return PropBool(wireBool(scalar(pt, raw, 1, u8conv)))
	case DEVPROP_TYPE_GUID:
		return PropGUID(scalar(pt, raw, 16, guidconv))

	case DEVPROP_TYPE_STRING:
		return PropString(decodePropString(raw))
	case DEVPROP_TYPE_BINARY:
		return PropBinary(raw)

	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_SBYTE:
		return PropI8Array(array(pt, raw, 1, i8conv))
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_INT16:
		return PropI16Array(array(pt, raw, 2, i16conv))
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_UINT16:
		return PropU16Array(array(pt, raw, 2, u16conv))
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_INT32:
		return PropI32Array(array(pt, raw, 4, i32conv))
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_UINT32:
		return PropU32Array(array(pt, raw, 4, u32conv))
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_INT64:
		return PropI64Array(array(pt, raw, 8, i64conv))
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_UINT64:
		return PropU64Array(array(pt, raw, 8, u64conv))
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_FLOAT:
		return PropF32Array(array(pt, raw, 4, f32conv))
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_DOUBLE:
		return PropF64Array(array(pt, raw, 8, f64conv))
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_BOOLEAN:
		out := make([]bool, len(raw))
		for i, b := range raw {
			out[i] = wireBool(b)
		}
		return PropBoolArray(out)
	case DEVPROP_TYPEMOD_ARRAY | DEVPROP_TYPE_GUID:
		return PropGUIDArray(array(pt, raw, 16, guidconv))

	default:
		logUnsupported(pt)
		return PropUnsupported(pt)
	}
}
